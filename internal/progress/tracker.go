package progress

import (
	"context"
	"fmt"

	"github.com/mviorel/learninghub/internal/store"
)

// Tracker binds a StateRepo to one profile and exposes typed load/save for
// the progress documents. Trackers hold no cache: every load reads the store,
// so a write through one tracker is visible to the next read through any
// other. Construct a fresh Tracker on profile switch.
type Tracker struct {
	states    store.StateRepo
	profileID string
}

// NewTracker creates a Tracker scoped to profileID.
func NewTracker(states store.StateRepo, profileID string) *Tracker {
	return &Tracker{states: states, profileID: profileID}
}

// ProfileID returns the profile this tracker is scoped to.
func (t *Tracker) ProfileID() string {
	return t.profileID
}

// Completions loads the checkpoints document. recovered reports that stored
// bytes were unreadable and an empty default was substituted; callers may
// log it but must treat the empty set as valid history.
func (t *Tracker) Completions(ctx context.Context) (set CompletionSet, recovered bool, err error) {
	raw, err := t.states.Read(ctx, t.profileID, store.NamespaceCheckpoints)
	if err != nil {
		return nil, false, fmt.Errorf("load completions: %w", err)
	}
	set, recovered = decodeCompletions(raw)
	return set, recovered, nil
}

// Completion returns the record for lessonID, zero-valued if absent.
func (t *Tracker) Completion(ctx context.Context, lessonID string) (CompletionRecord, error) {
	set, _, err := t.Completions(ctx)
	if err != nil {
		return CompletionRecord{}, err
	}
	return set[lessonID], nil
}

// SaveCompletion persists rec for lessonID via read-modify-write of the
// whole checkpoints document. A write failure must surface to the caller:
// silently dropping it would break completion monotonicity.
func (t *Tracker) SaveCompletion(ctx context.Context, lessonID string, rec CompletionRecord) error {
	set, _, err := t.Completions(ctx)
	if err != nil {
		return err
	}
	set[lessonID] = rec

	raw, err := encodeDocument(CompletionVersion, set)
	if err != nil {
		return fmt.Errorf("encode completions: %w", err)
	}
	if err := t.states.Write(ctx, t.profileID, store.NamespaceCheckpoints, raw); err != nil {
		return fmt.Errorf("save completions: %w", err)
	}
	return nil
}

// Quiz loads the quiz attempts document with the same recovery contract as
// Completions.
func (t *Tracker) Quiz(ctx context.Context) (state QuizState, recovered bool, err error) {
	raw, err := t.states.Read(ctx, t.profileID, store.NamespaceQuiz)
	if err != nil {
		return nil, false, fmt.Errorf("load quiz state: %w", err)
	}
	state, recovered = decodeQuiz(raw)
	return state, recovered, nil
}

// SaveQuizRecord persists rec for (lessonID, questionID).
func (t *Tracker) SaveQuizRecord(ctx context.Context, lessonID, questionID string, rec QuizAttemptRecord) error {
	state, _, err := t.Quiz(ctx)
	if err != nil {
		return err
	}
	state.Set(lessonID, questionID, rec)

	raw, err := encodeDocument(QuizVersion, state)
	if err != nil {
		return fmt.Errorf("encode quiz state: %w", err)
	}
	if err := t.states.Write(ctx, t.profileID, store.NamespaceQuiz, raw); err != nil {
		return fmt.Errorf("save quiz state: %w", err)
	}
	return nil
}

// ResetLesson is the explicit reset collaborator: it clears the completion
// record and quiz attempts for one lesson. This is the only path that may
// revert Completed to false.
func (t *Tracker) ResetLesson(ctx context.Context, lessonID string) error {
	set, _, err := t.Completions(ctx)
	if err != nil {
		return err
	}
	delete(set, lessonID)
	raw, err := encodeDocument(CompletionVersion, set)
	if err != nil {
		return fmt.Errorf("encode completions: %w", err)
	}
	if err := t.states.Write(ctx, t.profileID, store.NamespaceCheckpoints, raw); err != nil {
		return fmt.Errorf("save completions: %w", err)
	}

	quiz, _, err := t.Quiz(ctx)
	if err != nil {
		return err
	}
	delete(quiz, lessonID)
	raw, err = encodeDocument(QuizVersion, quiz)
	if err != nil {
		return fmt.Errorf("encode quiz state: %w", err)
	}
	if err := t.states.Write(ctx, t.profileID, store.NamespaceQuiz, raw); err != nil {
		return fmt.Errorf("save quiz state: %w", err)
	}
	return nil
}

// ResetAll wipes every progress document for this profile.
func (t *Tracker) ResetAll(ctx context.Context) error {
	if err := t.states.DeleteProfile(ctx, t.profileID); err != nil {
		return fmt.Errorf("reset profile %s: %w", t.profileID, err)
	}
	return nil
}
