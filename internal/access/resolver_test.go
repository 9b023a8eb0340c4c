package access

import (
	"context"
	"strings"
	"testing"

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

var testChain = Chain{"l0", "l1", "l2", "l3", "l4"}

func newTestTracker(t *testing.T, completed ...string) *progress.Tracker {
	t.Helper()
	tr := progress.NewTracker(newMemStateRepo(), "p1")
	for _, id := range completed {
		if err := tr.SaveCompletion(context.Background(), id, progress.CompletionRecord{Completed: true}); err != nil {
			t.Fatal(err)
		}
	}
	return tr
}

func TestResolveFreshProfile(t *testing.T) {
	// Scenario: no records → only lesson 0 accessible.
	r := NewResolver(newTestTracker(t), false)

	acc, err := r.Resolve(context.Background(), testChain)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if acc.NextUnlockedIndex != 0 {
		t.Errorf("nextUnlockedIndex = %d", acc.NextUnlockedIndex)
	}
	for i := range testChain {
		want := i == 0
		if acc.Accessible(i) != want {
			t.Errorf("lesson %d accessible = %v, want %v", i, acc.Accessible(i), want)
		}
	}
}

func TestResolveSequentialProgress(t *testing.T) {
	r := NewResolver(newTestTracker(t, "l0", "l1"), false)

	acc, err := r.Resolve(context.Background(), testChain)
	if err != nil {
		t.Fatal(err)
	}
	if acc.NextUnlockedIndex != 2 {
		t.Errorf("nextUnlockedIndex = %d", acc.NextUnlockedIndex)
	}
	for i, want := range []bool{true, true, true, false, false} {
		if acc.Accessible(i) != want {
			t.Errorf("lesson %d accessible = %v, want %v", i, acc.Accessible(i), want)
		}
	}
}

func TestResolveGapIsPermissive(t *testing.T) {
	// l3 completed out of band (teacher override); l1, l2 untouched.
	// Accessibility derives from the highest completed index: everything
	// through l4 opens, and nothing already reachable re-locks.
	r := NewResolver(newTestTracker(t, "l0", "l3"), false)

	acc, err := r.Resolve(context.Background(), testChain)
	if err != nil {
		t.Fatal(err)
	}
	if acc.NextUnlockedIndex != 4 {
		t.Errorf("nextUnlockedIndex = %d", acc.NextUnlockedIndex)
	}
	for i := range testChain {
		if !acc.Accessible(i) {
			t.Errorf("lesson %d must be accessible despite the gap", i)
		}
	}
}

func TestResolveReviewerModeBypassesAll(t *testing.T) {
	r := NewResolver(newTestTracker(t), true)

	acc, err := r.Resolve(context.Background(), testChain)
	if err != nil {
		t.Fatal(err)
	}
	for i := range testChain {
		if !acc.Accessible(i) {
			t.Errorf("reviewer mode must open lesson %d", i)
		}
	}
}

func TestAccessibleOutOfRange(t *testing.T) {
	r := NewResolver(newTestTracker(t), true)
	acc, _ := r.Resolve(context.Background(), testChain)

	if acc.Accessible(-1) || acc.Accessible(len(testChain)) {
		t.Error("out-of-range indexes are never accessible, even for reviewers")
	}
}

func TestCheckDirectAccess(t *testing.T) {
	tests := []struct {
		name      string
		completed []string
		reviewer  bool
		lessonID  string
		allowed   bool
		redirect  string
	}{
		{"chain head always permitted", nil, false, "l0", true, ""},
		{"predecessor complete", []string{"l0"}, false, "l1", true, ""},
		{"predecessor incomplete", nil, false, "l1", false, "l0"},
		{"deep link past gap", []string{"l0"}, false, "l3", false, "l2"},
		{"reviewer bypass", nil, true, "l4", true, ""},
		{"unknown lesson", []string{"l0"}, false, "nope", false, "l0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(newTestTracker(t, tt.completed...), tt.reviewer)
			dec, err := r.CheckDirectAccess(context.Background(), testChain, tt.lessonID)
			if err != nil {
				t.Fatalf("check: %v", err)
			}
			if dec.Allowed != tt.allowed {
				t.Errorf("allowed = %v, want %v (%s)", dec.Allowed, tt.allowed, dec.Reason)
			}
			if !dec.Allowed && dec.RedirectTo != tt.redirect {
				t.Errorf("redirect = %q, want %q", dec.RedirectTo, tt.redirect)
			}
		})
	}
}

func TestCompletionWriteVisibleToNextResolve(t *testing.T) {
	// Ordering guarantee: a synchronous completion write must be visible
	// to the resolver's next read. The resolver holds no cache, so this
	// follows by construction; asserted here to keep it that way.
	repo := newMemStateRepo()
	tr := progress.NewTracker(repo, "p1")
	r := NewResolver(tr, false)
	ctx := context.Background()

	acc, _ := r.Resolve(ctx, testChain)
	if acc.Accessible(1) {
		t.Fatal("l1 accessible before l0 completion")
	}

	if err := tr.SaveCompletion(ctx, "l0", progress.CompletionRecord{Completed: true}); err != nil {
		t.Fatal(err)
	}

	acc, _ = r.Resolve(ctx, testChain)
	if !acc.Accessible(1) {
		t.Error("completion write not visible to next resolve")
	}
}

func TestAccessibilityMonotonic(t *testing.T) {
	// Property: if lesson i is completed, lessons 0..i stay accessible
	// regardless of the state of lessons in between.
	for i := range testChain {
		r := NewResolver(newTestTracker(t, testChain[i]), false)
		acc, err := r.Resolve(context.Background(), testChain)
		if err != nil {
			t.Fatal(err)
		}
		for j := 0; j <= i; j++ {
			if !acc.Accessible(j) {
				t.Errorf("completed index %d: lesson %d not accessible", i, j)
			}
		}
	}
}
