// Package attempts enforces the bounded-attempt policy on quiz questions:
// a configurable number of graded tries, a lock once the budget is spent,
// and an unlock-by-explanation escape valve.
package attempts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mviorel/learninghub/internal/progress"
)

// ErrLocked rejects graded submissions on a locked question. It is a
// routine gating outcome, not a failure: callers redirect the learner to
// the unlock flow.
var ErrLocked = errors.New("question is locked")

// ExplanationTooShortError rejects an unlock explanation below the
// configured minimum length.
type ExplanationTooShortError struct {
	Min int
	Got int
}

func (e *ExplanationTooShortError) Error() string {
	return fmt.Sprintf("explanation needs at least %d characters (currently %d)", e.Min, e.Got)
}

// Config holds the gate thresholds.
type Config struct {
	// LockThreshold is the attempt count at which an unsolved question
	// locks.
	LockThreshold int

	// MinExplanationChars is the minimum trimmed length of an unlock
	// explanation.
	MinExplanationChars int
}

// DefaultConfig returns the platform defaults.
func DefaultConfig() Config {
	return Config{
		LockThreshold:       3,
		MinExplanationChars: 20,
	}
}

// Gate records graded attempts and manages locks for one profile.
type Gate struct {
	tracker *progress.Tracker
	cfg     Config
	now     func() time.Time
}

// Option configures a Gate.
type Option func(*Gate)

// WithClock overrides the unlock-audit timestamp source.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// NewGate creates a Gate over tracker with the given thresholds.
func NewGate(tracker *progress.Tracker, cfg Config, opts ...Option) *Gate {
	if cfg.LockThreshold <= 0 {
		cfg.LockThreshold = DefaultConfig().LockThreshold
	}
	if cfg.MinExplanationChars <= 0 {
		cfg.MinExplanationChars = DefaultConfig().MinExplanationChars
	}
	g := &Gate{tracker: tracker, cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the gate's thresholds.
func (g *Gate) Config() Config {
	return g.cfg
}

// Record returns the current attempt record for (lessonID, questionID),
// zero-valued when the question was never attempted.
func (g *Gate) Record(ctx context.Context, lessonID, questionID string) (progress.QuizAttemptRecord, error) {
	state, _, err := g.tracker.Quiz(ctx)
	if err != nil {
		return progress.QuizAttemptRecord{}, err
	}
	return state.Record(lessonID, questionID), nil
}

// Lesson returns every attempt record for lessonID, keyed by question id.
func (g *Gate) Lesson(ctx context.Context, lessonID string) (map[string]progress.QuizAttemptRecord, error) {
	state, _, err := g.tracker.Quiz(ctx)
	if err != nil {
		return nil, err
	}
	return state[lessonID], nil
}

// RecordAttempt registers one graded submission.
//
// A solved question is inert: further calls neither increment attempts nor
// revert correctness. A locked question returns ErrLocked without counting.
// Otherwise the attempt increments; a correct answer marks the record
// solved, and the attempt that reaches the lock threshold without a correct
// answer locks it.
func (g *Gate) RecordAttempt(ctx context.Context, lessonID, questionID string, isCorrect bool) (progress.QuizAttemptRecord, error) {
	state, _, err := g.tracker.Quiz(ctx)
	if err != nil {
		return progress.QuizAttemptRecord{}, err
	}
	rec := state.Record(lessonID, questionID)

	if rec.Correct {
		return rec, nil
	}
	if rec.Locked {
		return rec, ErrLocked
	}

	rec.Attempts++
	if isCorrect {
		rec.Correct = true
	} else if rec.Attempts >= g.cfg.LockThreshold {
		rec.Locked = true
	}

	if err := g.tracker.SaveQuizRecord(ctx, lessonID, questionID, rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// Unlock lifts the lock on a question in exchange for a written
// explanation. On a non-locked record it is a no-op that alters nothing.
// A qualifying explanation clears the lock, resets attempts to zero and
// appends the explanation to the record's audit history.
func (g *Gate) Unlock(ctx context.Context, lessonID, questionID, explanation string) (progress.QuizAttemptRecord, error) {
	state, _, err := g.tracker.Quiz(ctx)
	if err != nil {
		return progress.QuizAttemptRecord{}, err
	}
	rec := state.Record(lessonID, questionID)

	if !rec.Locked {
		return rec, nil
	}

	trimmed := strings.TrimSpace(explanation)
	if got := len([]rune(trimmed)); got < g.cfg.MinExplanationChars {
		return rec, &ExplanationTooShortError{Min: g.cfg.MinExplanationChars, Got: got}
	}

	rec.Locked = false
	rec.Attempts = 0
	rec.UnlockHistory = append(rec.UnlockHistory, progress.UnlockNote{
		Text: trimmed,
		At:   g.now(),
	})

	if err := g.tracker.SaveQuizRecord(ctx, lessonID, questionID, rec); err != nil {
		return rec, err
	}
	return rec, nil
}
