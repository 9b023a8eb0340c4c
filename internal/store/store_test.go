package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// openFileStore opens a store backed by a real file so a second handle can
// observe the first's writes.
func openFileStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is exercised in the file-backed tests.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"profiles", "state_records", "export_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestProfileLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p := &ProfileRecord{ProfileID: "p1", DisplayName: "Ana", Avatar: "🦊"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set on create")
	}

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DisplayName != "Ana" || got.Avatar != "🦊" {
		t.Errorf("got %+v", got)
	}

	if err := repo.Rename(ctx, "p1", "Ana Maria"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, _ = repo.Get(ctx, "p1")
	if got.DisplayName != "Ana Maria" {
		t.Errorf("display name = %q after rename", got.DisplayName)
	}

	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "p1"); err != ErrProfileNotFound {
		t.Errorf("get after delete: err = %v, want ErrProfileNotFound", err)
	}
}

func TestProfileNotFoundErrors(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if err := repo.Rename(ctx, "ghost", "x"); err != ErrProfileNotFound {
		t.Errorf("rename missing: err = %v", err)
	}
	if err := repo.Delete(ctx, "ghost"); err != ErrProfileNotFound {
		t.Errorf("delete missing: err = %v", err)
	}
}

func TestExportEventAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ExportRepo()
	ctx := context.Background()

	for i, lesson := range []string{"l1", "l2", "l3"} {
		err := repo.Append(ctx, ExportEventData{
			ProfileID:   "p1",
			LessonID:    lesson,
			Grade:       7 + i,
			Checksum:    "abc",
			Fingerprint: "fp",
		})
		if err != nil {
			t.Fatalf("append %s: %v", lesson, err)
		}
	}

	recs, err := repo.List(ctx, "p1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}

	all, err := repo.List(ctx, "p1", 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len = %d, want 3", len(all))
	}

	other, err := repo.List(ctx, "p2", 0)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("cross-profile leak: %d records", len(other))
	}
}

func TestJournalModeWALOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hub.db")
	s := openFileStore(t, path)

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}
