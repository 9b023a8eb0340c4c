package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestStateReadMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()

	data, err := repo.Read(context.Background(), "p1", NamespaceCheckpoints)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if data != nil {
		t.Errorf("data = %q, want nil for missing record", data)
	}
}

func TestStateWriteReadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	if err := repo.Write(ctx, "p1", NamespaceQuiz, []byte(`{"version":1}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := repo.Read(ctx, "p1", NamespaceQuiz)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("data = %q", data)
	}
}

func TestStateWriteReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	if err := repo.Write(ctx, "p1", NamespaceQuiz, []byte("old")); err != nil {
		t.Fatalf("write old: %v", err)
	}
	if err := repo.Write(ctx, "p1", NamespaceQuiz, []byte("new")); err != nil {
		t.Fatalf("write new: %v", err)
	}

	data, _ := repo.Read(ctx, "p1", NamespaceQuiz)
	if string(data) != "new" {
		t.Errorf("data = %q, want new", data)
	}

	// Exactly one row per (profile, namespace).
	var n int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM state_records").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
}

func TestStateNamespaceIsolation(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	if err := repo.Write(ctx, "p1", NamespaceCheckpoints, []byte("cp")); err != nil {
		t.Fatal(err)
	}
	if err := repo.Write(ctx, "p1", NamespaceQuiz, []byte("qz")); err != nil {
		t.Fatal(err)
	}
	if err := repo.Write(ctx, "p2", NamespaceCheckpoints, []byte("other")); err != nil {
		t.Fatal(err)
	}

	data, _ := repo.Read(ctx, "p1", NamespaceCheckpoints)
	if string(data) != "cp" {
		t.Errorf("p1/checkpoints = %q", data)
	}
	data, _ = repo.Read(ctx, "p2", NamespaceCheckpoints)
	if string(data) != "other" {
		t.Errorf("p2/checkpoints = %q", data)
	}
	data, _ = repo.Read(ctx, "p2", NamespaceQuiz)
	if data != nil {
		t.Errorf("p2/quiz = %q, want nil", data)
	}
}

func TestStateDeleteProfileCascades(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	for _, ns := range []string{NamespaceCheckpoints, NamespaceQuiz, NamespaceMeta} {
		if err := repo.Write(ctx, "p1", ns, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.Write(ctx, "p2", NamespaceQuiz, []byte("keep")); err != nil {
		t.Fatal(err)
	}

	if err := repo.DeleteProfile(ctx, "p1"); err != nil {
		t.Fatalf("delete profile: %v", err)
	}

	for _, ns := range []string{NamespaceCheckpoints, NamespaceQuiz, NamespaceMeta} {
		data, _ := repo.Read(ctx, "p1", ns)
		if data != nil {
			t.Errorf("p1/%s survived cascade: %q", ns, data)
		}
	}
	data, _ := repo.Read(ctx, "p2", NamespaceQuiz)
	if string(data) != "keep" {
		t.Errorf("p2/quiz = %q, cascade leaked across profiles", data)
	}
}

// TestTwoHandlesLastWriteWins documents the accepted concurrency hazard: two
// open handles on the same database (two browser tabs in the original
// platform, two terminal sessions here) performing read-modify-write on the
// same record do not merge. The second write silently discards the first.
// This must neither error nor corrupt: last-write-wins by contract.
func TestTwoHandlesLastWriteWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.db")
	a := openFileStore(t, path)
	b := openFileStore(t, path)

	ctx := context.Background()
	repoA := a.StateRepo()
	repoB := b.StateRepo()

	if err := repoA.Write(ctx, "p1", NamespaceQuiz, []byte(`{"attempts":1}`)); err != nil {
		t.Fatalf("seed write: %v", err)
	}

	// Both handles read the same starting state.
	fromA, err := repoA.Read(ctx, "p1", NamespaceQuiz)
	if err != nil {
		t.Fatalf("read A: %v", err)
	}
	fromB, err := repoB.Read(ctx, "p1", NamespaceQuiz)
	if err != nil {
		t.Fatalf("read B: %v", err)
	}
	if string(fromA) != string(fromB) {
		t.Fatalf("handles disagree before writes: %q vs %q", fromA, fromB)
	}

	// Each handle writes its own modification; B lands second.
	if err := repoA.Write(ctx, "p1", NamespaceQuiz, []byte(`{"attempts":2}`)); err != nil {
		t.Fatalf("write A: %v", err)
	}
	if err := repoB.Write(ctx, "p1", NamespaceQuiz, []byte(`{"attempts":5}`)); err != nil {
		t.Fatalf("write B: %v", err)
	}

	// A's increment is gone; B's state is what both handles now see.
	got, err := repoA.Read(ctx, "p1", NamespaceQuiz)
	if err != nil {
		t.Fatalf("read after race: %v", err)
	}
	if string(got) != `{"attempts":5}` {
		t.Errorf("final state = %q, want B's write to win", got)
	}
}
