package progress

import (
	"context"
	"testing"
	"time"
)

// memStateRepo is an in-memory StateRepo for domain tests. It mirrors the
// real store's contract: missing records read as nil, writes replace.
type memStateRepo struct {
	rows map[string][]byte
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{rows: make(map[string][]byte)}
}

func (m *memStateRepo) key(profileID, namespace string) string {
	return profileID + "\x00" + namespace
}

func (m *memStateRepo) Read(_ context.Context, profileID, namespace string) ([]byte, error) {
	return m.rows[m.key(profileID, namespace)], nil
}

func (m *memStateRepo) Write(_ context.Context, profileID, namespace string, data []byte) error {
	m.rows[m.key(profileID, namespace)] = data
	return nil
}

func (m *memStateRepo) Delete(_ context.Context, profileID, namespace string) error {
	delete(m.rows, m.key(profileID, namespace))
	return nil
}

func (m *memStateRepo) DeleteProfile(_ context.Context, profileID string) error {
	for k := range m.rows {
		if len(k) > len(profileID) && k[:len(profileID)+1] == profileID+"\x00" {
			delete(m.rows, k)
		}
	}
	return nil
}

func TestTrackerCompletionRoundTrip(t *testing.T) {
	repo := newMemStateRepo()
	tr := NewTracker(repo, "p1")
	ctx := context.Background()

	rec, err := tr.Completion(ctx, "l1")
	if err != nil {
		t.Fatalf("completion (empty): %v", err)
	}
	if rec.Completed {
		t.Error("fresh profile must have no completion")
	}

	at := time.Now().UTC().Truncate(time.Second)
	err = tr.SaveCompletion(ctx, "l1", CompletionRecord{
		Completed:   true,
		CompletedAt: at,
		Fields:      map[string]string{"whatLearned": "memoria RAM este volatila"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err = tr.Completion(ctx, "l1")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !rec.Completed || !rec.CompletedAt.Equal(at) {
		t.Errorf("got %+v", rec)
	}
}

func TestTrackerProfileScoping(t *testing.T) {
	repo := newMemStateRepo()
	ctx := context.Background()

	trA := NewTracker(repo, "ana")
	trB := NewTracker(repo, "bogdan")

	if err := trA.SaveCompletion(ctx, "l1", CompletionRecord{Completed: true}); err != nil {
		t.Fatal(err)
	}

	rec, err := trB.Completion(ctx, "l1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Completed {
		t.Error("completion leaked across profiles")
	}
}

func TestTrackerQuizRoundTrip(t *testing.T) {
	repo := newMemStateRepo()
	tr := NewTracker(repo, "p1")
	ctx := context.Background()

	err := tr.SaveQuizRecord(ctx, "l1", "q1", QuizAttemptRecord{Attempts: 2, Correct: true})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	state, recovered, err := tr.Quiz(ctx)
	if err != nil {
		t.Fatalf("quiz: %v", err)
	}
	if recovered {
		t.Error("unexpected recovery")
	}
	rec := state.Record("l1", "q1")
	if rec.Attempts != 2 || !rec.Correct {
		t.Errorf("got %+v", rec)
	}
}

func TestTrackerRecoversFromCorruptBytes(t *testing.T) {
	repo := newMemStateRepo()
	ctx := context.Background()
	repo.rows[repo.key("p1", "checkpoints")] = []byte("not json")

	tr := NewTracker(repo, "p1")
	set, recovered, err := tr.Completions(ctx)
	if err != nil {
		t.Fatalf("corrupt bytes must not error: %v", err)
	}
	if !recovered {
		t.Error("expected recovered flag")
	}
	if len(set) != 0 {
		t.Errorf("expected empty default, got %d", len(set))
	}

	// A subsequent save repairs the document.
	if err := tr.SaveCompletion(ctx, "l1", CompletionRecord{Completed: true}); err != nil {
		t.Fatalf("save after recovery: %v", err)
	}
	set, recovered, err = tr.Completions(ctx)
	if err != nil || recovered {
		t.Fatalf("post-repair load: recovered=%v err=%v", recovered, err)
	}
	if !set["l1"].Completed {
		t.Error("repaired document lost the new record")
	}
}

func TestTrackerResetLesson(t *testing.T) {
	repo := newMemStateRepo()
	tr := NewTracker(repo, "p1")
	ctx := context.Background()

	if err := tr.SaveCompletion(ctx, "l1", CompletionRecord{Completed: true}); err != nil {
		t.Fatal(err)
	}
	if err := tr.SaveCompletion(ctx, "l2", CompletionRecord{Completed: true}); err != nil {
		t.Fatal(err)
	}
	if err := tr.SaveQuizRecord(ctx, "l1", "q1", QuizAttemptRecord{Attempts: 3, Locked: true}); err != nil {
		t.Fatal(err)
	}

	if err := tr.ResetLesson(ctx, "l1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	rec, _ := tr.Completion(ctx, "l1")
	if rec.Completed {
		t.Error("reset did not clear completion")
	}
	rec, _ = tr.Completion(ctx, "l2")
	if !rec.Completed {
		t.Error("reset cleared an unrelated lesson")
	}
	state, _, _ := tr.Quiz(ctx)
	if state.Record("l1", "q1").Attempts != 0 {
		t.Error("reset did not clear quiz attempts")
	}
}
