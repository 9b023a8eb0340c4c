package checkpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/mviorel/learninghub/internal/progress"
)

// Status classifies a submission outcome.
type Status int

const (
	// StatusInvalid means validation failed; see Outcome.Result.
	StatusInvalid Status = iota

	// StatusCompleted means the lesson was just marked complete.
	StatusCompleted

	// StatusAlreadyCompleted means a completed record already existed.
	// The submission was a no-op: the stored record is untouched.
	StatusAlreadyCompleted
)

// Outcome is the result of a Submit call.
type Outcome struct {
	Status Status
	Result Result

	// Record is the stored completion record for StatusCompleted and
	// StatusAlreadyCompleted.
	Record progress.CompletionRecord
}

// CompletionEvent notifies listeners that a lesson checkpoint passed.
type CompletionEvent struct {
	LessonID string
	Fields   map[string]string
}

// Engine validates checkpoint submissions and records completion. Listeners
// are registered explicitly at construction time; gating correctness never
// depends on any listener being attached.
type Engine struct {
	tracker   *progress.Tracker
	now       func() time.Time
	listeners []func(CompletionEvent)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the completion timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine writing through tracker.
func NewEngine(tracker *progress.Tracker, opts ...Option) *Engine {
	e := &Engine{
		tracker: tracker,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OnComplete registers a listener for completion events. Listeners run
// synchronously, after the record is durably written.
func (e *Engine) OnComplete(fn func(CompletionEvent)) {
	e.listeners = append(e.listeners, fn)
}

// Submit validates values against spec and, on success, marks lessonID
// complete. Resubmitting a completed lesson is idempotent: no second record,
// no change to CompletedAt, no event. A store write failure is returned as
// an error so the caller can tell the learner their progress was not saved.
func (e *Engine) Submit(ctx context.Context, lessonID string, values map[string]string, spec Spec) (Outcome, error) {
	existing, err := e.tracker.Completion(ctx, lessonID)
	if err != nil {
		return Outcome{}, fmt.Errorf("check existing completion: %w", err)
	}
	if existing.Completed {
		return Outcome{Status: StatusAlreadyCompleted, Record: existing}, nil
	}

	res := Validate(values, spec)
	if !res.Valid() {
		return Outcome{Status: StatusInvalid, Result: res}, nil
	}

	rec := progress.CompletionRecord{
		Completed:   true,
		CompletedAt: e.now(),
		Fields:      copyValues(values),
	}
	if err := e.tracker.SaveCompletion(ctx, lessonID, rec); err != nil {
		return Outcome{}, fmt.Errorf("progress not saved: %w", err)
	}

	event := CompletionEvent{LessonID: lessonID, Fields: rec.Fields}
	for _, fn := range e.listeners {
		fn(event)
	}

	return Outcome{Status: StatusCompleted, Record: rec}, nil
}

// Completed reports whether lessonID has a completed record.
func (e *Engine) Completed(ctx context.Context, lessonID string) (bool, error) {
	rec, err := e.tracker.Completion(ctx, lessonID)
	if err != nil {
		return false, err
	}
	return rec.Completed, nil
}

func copyValues(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
