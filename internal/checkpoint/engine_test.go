package checkpoint

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mviorel/learninghub/internal/progress"
)

// memStateRepo duplicates the minimal in-memory StateRepo used across the
// domain packages' tests.
type memStateRepo struct {
	rows     map[string][]byte
	failNext error
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{rows: make(map[string][]byte)}
}

func (m *memStateRepo) Read(_ context.Context, profileID, namespace string) ([]byte, error) {
	return m.rows[profileID+"/"+namespace], nil
}

func (m *memStateRepo) Write(_ context.Context, profileID, namespace string, data []byte) error {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	m.rows[profileID+"/"+namespace] = data
	return nil
}

func (m *memStateRepo) Delete(_ context.Context, profileID, namespace string) error {
	delete(m.rows, profileID+"/"+namespace)
	return nil
}

func (m *memStateRepo) DeleteProfile(_ context.Context, profileID string) error {
	for k := range m.rows {
		if len(k) > len(profileID) && k[:len(profileID)+1] == profileID+"/" {
			delete(m.rows, k)
		}
	}
	return nil
}

var testSpec = Spec{Fields: []Field{
	{Name: "whatLearned", Kind: FieldTextarea, Required: true, MinChars: 10},
}}

func newTestEngine(t *testing.T, repo *memStateRepo, now time.Time) *Engine {
	t.Helper()
	tracker := progress.NewTracker(repo, "p1")
	return NewEngine(tracker, WithClock(func() time.Time { return now }))
}

func TestSubmitValidCompletesAndNotifies(t *testing.T) {
	repo := newMemStateRepo()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	e := newTestEngine(t, repo, now)

	var events []CompletionEvent
	e.OnComplete(func(ev CompletionEvent) { events = append(events, ev) })

	out, err := e.Submit(context.Background(), "l1",
		map[string]string{"whatLearned": "memoria RAM este volatila"}, testSpec)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Status != StatusCompleted {
		t.Fatalf("status = %v", out.Status)
	}
	if !out.Record.CompletedAt.Equal(now) {
		t.Errorf("completedAt = %v", out.Record.CompletedAt)
	}
	if len(events) != 1 || events[0].LessonID != "l1" {
		t.Errorf("events = %+v", events)
	}
	if events[0].Fields["whatLearned"] != "memoria RAM este volatila" {
		t.Errorf("event fields = %+v", events[0].Fields)
	}
}

func TestSubmitInvalidDoesNotPersist(t *testing.T) {
	repo := newMemStateRepo()
	e := newTestEngine(t, repo, time.Now())

	out, err := e.Submit(context.Background(), "l1",
		map[string]string{"whatLearned": "scurt"}, testSpec)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Status != StatusInvalid {
		t.Fatalf("status = %v", out.Status)
	}
	if len(out.Result.Errors("whatLearned")) == 0 {
		t.Error("expected field errors")
	}

	done, err := e.Completed(context.Background(), "l1")
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Error("invalid submission must not complete the lesson")
	}
}

func TestSubmitIdempotentAfterCompletion(t *testing.T) {
	repo := newMemStateRepo()
	first := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	e := newTestEngine(t, repo, first)
	ctx := context.Background()

	if _, err := e.Submit(ctx, "l1",
		map[string]string{"whatLearned": "memoria RAM este volatila"}, testSpec); err != nil {
		t.Fatal(err)
	}

	// Second submission, later clock, different answers, and with a
	// listener attached: nothing may change and nothing may fire.
	later := first.Add(time.Hour)
	e2 := NewEngine(progress.NewTracker(repo, "p1"), WithClock(func() time.Time { return later }))
	fired := false
	e2.OnComplete(func(CompletionEvent) { fired = true })

	out, err := e2.Submit(ctx, "l1",
		map[string]string{"whatLearned": "alt raspuns complet diferit"}, testSpec)
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != StatusAlreadyCompleted {
		t.Fatalf("status = %v", out.Status)
	}
	if !out.Record.CompletedAt.Equal(first) {
		t.Errorf("completedAt changed: %v", out.Record.CompletedAt)
	}
	if out.Record.Fields["whatLearned"] != "memoria RAM este volatila" {
		t.Errorf("fields overwritten: %+v", out.Record.Fields)
	}
	if fired {
		t.Error("resubmission fired a completion event")
	}
}

func TestSubmitWorksWithNoListeners(t *testing.T) {
	repo := newMemStateRepo()
	e := newTestEngine(t, repo, time.Now())

	out, err := e.Submit(context.Background(), "l1",
		map[string]string{"whatLearned": "memoria RAM este volatila"}, testSpec)
	if err != nil {
		t.Fatalf("gating must not require listeners: %v", err)
	}
	if out.Status != StatusCompleted {
		t.Errorf("status = %v", out.Status)
	}
}

func TestSubmitSurfacesWriteFailure(t *testing.T) {
	repo := newMemStateRepo()
	repo.failNext = errors.New("disk full")
	e := newTestEngine(t, repo, time.Now())

	fired := false
	e.OnComplete(func(CompletionEvent) { fired = true })

	_, err := e.Submit(context.Background(), "l1",
		map[string]string{"whatLearned": "memoria RAM este volatila"}, testSpec)
	if err == nil {
		t.Fatal("write failure must surface as an error")
	}
	if fired {
		t.Error("no event may fire when the write failed")
	}

	done, _ := e.Completed(context.Background(), "l1")
	if done {
		t.Error("failed write must not leave the lesson completed")
	}
}
