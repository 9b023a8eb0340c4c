package nav

import (
	"context"
	"strings"
	"testing"

	"github.com/mviorel/learninghub/internal/access"
	"github.com/mviorel/learninghub/internal/checkpoint"
	"github.com/mviorel/learninghub/internal/progress"
)

type memStateRepo struct {
	rows map[string][]byte
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{rows: make(map[string][]byte)}
}

func (m *memStateRepo) Read(_ context.Context, profileID, namespace string) ([]byte, error) {
	return m.rows[profileID+"/"+namespace], nil
}

func (m *memStateRepo) Write(_ context.Context, profileID, namespace string, data []byte) error {
	m.rows[profileID+"/"+namespace] = data
	return nil
}

func (m *memStateRepo) Delete(_ context.Context, profileID, namespace string) error {
	delete(m.rows, profileID+"/"+namespace)
	return nil
}

func (m *memStateRepo) DeleteProfile(_ context.Context, profileID string) error {
	for k := range m.rows {
		if strings.HasPrefix(k, profileID+"/") {
			delete(m.rows, k)
		}
	}
	return nil
}

var testChain = access.Chain{"l0", "l1", "l2"}

func newTestEnforcer(t *testing.T, reviewer bool) (*Enforcer, *checkpoint.Engine) {
	t.Helper()
	tracker := progress.NewTracker(newMemStateRepo(), "p1")
	engine := checkpoint.NewEngine(tracker)
	resolver := access.NewResolver(tracker, reviewer)
	return NewEnforcer(resolver, engine), engine
}

func complete(t *testing.T, engine *checkpoint.Engine, lessonID string) {
	t.Helper()
	spec := checkpoint.Spec{Fields: []checkpoint.Field{{Name: "note", Kind: checkpoint.FieldText}}}
	out, err := engine.Submit(context.Background(), lessonID, map[string]string{"note": "done"}, spec)
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != checkpoint.StatusCompleted {
		t.Fatalf("submit status = %v", out.Status)
	}
}

func TestNextBlockedWithoutCheckpoint(t *testing.T) {
	e, _ := newTestEnforcer(t, false)

	tr, err := e.Next(context.Background(), testChain, "l0")
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if tr.Allowed {
		t.Error("advance permitted without completing the checkpoint")
	}
	if tr.Target != "l0" {
		t.Errorf("target = %q, want the current lesson", tr.Target)
	}
	if tr.Reason == "" {
		t.Error("blocked transition must carry a reason")
	}
}

func TestNextAllowedAfterCompletion(t *testing.T) {
	e, engine := newTestEnforcer(t, false)
	complete(t, engine, "l0")

	tr, err := e.Next(context.Background(), testChain, "l0")
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Allowed || tr.Target != "l1" {
		t.Errorf("got %+v", tr)
	}
}

func TestNextCompletionVisibleImmediately(t *testing.T) {
	// A completion recorded through the engine must flip the very next
	// navigation decision. Neither side caches.
	e, engine := newTestEnforcer(t, false)
	ctx := context.Background()

	if tr, _ := e.Next(ctx, testChain, "l0"); tr.Allowed {
		t.Fatal("l0 not completed yet")
	}
	complete(t, engine, "l0")
	if tr, _ := e.Next(ctx, testChain, "l0"); !tr.Allowed {
		t.Error("fresh completion not honored")
	}
}

func TestNextAtEndOfModule(t *testing.T) {
	e, engine := newTestEnforcer(t, false)
	complete(t, engine, "l2")

	tr, err := e.Next(context.Background(), testChain, "l2")
	if err != nil {
		t.Fatal(err)
	}
	if tr.Allowed || tr.Reason != "end of module" {
		t.Errorf("got %+v", tr)
	}
}

func TestNextUnknownLesson(t *testing.T) {
	e, _ := newTestEnforcer(t, false)

	tr, err := e.Next(context.Background(), testChain, "nope")
	if err != nil {
		t.Fatal(err)
	}
	if tr.Allowed {
		t.Errorf("got %+v", tr)
	}
}

func TestNextReviewerBypassesCompletion(t *testing.T) {
	e, _ := newTestEnforcer(t, true)

	tr, err := e.Next(context.Background(), testChain, "l0")
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Allowed || tr.Target != "l1" {
		t.Errorf("reviewer must advance freely: %+v", tr)
	}
}

func TestEnterRedirectsPastGate(t *testing.T) {
	e, engine := newTestEnforcer(t, false)
	complete(t, engine, "l0")
	ctx := context.Background()

	tests := []struct {
		lessonID string
		allowed  bool
		target   string
	}{
		{"l0", true, "l0"},
		{"l1", true, "l1"},
		{"l2", false, "l1"},
		{"nope", false, "l0"},
	}
	for _, tt := range tests {
		tr, err := e.Enter(ctx, testChain, tt.lessonID)
		if err != nil {
			t.Fatalf("enter %s: %v", tt.lessonID, err)
		}
		if tr.Allowed != tt.allowed || tr.Target != tt.target {
			t.Errorf("enter %s = %+v, want allowed=%v target=%q", tt.lessonID, tr, tt.allowed, tt.target)
		}
	}
}
