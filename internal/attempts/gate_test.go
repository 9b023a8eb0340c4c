package attempts

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

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

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	tracker := progress.NewTracker(newMemStateRepo(), "p1")
	return NewGate(tracker, DefaultConfig())
}

// checkInvariant asserts the record-level invariants that must hold after
// every gate operation.
func checkInvariant(t *testing.T, rec progress.QuizAttemptRecord, threshold int) {
	t.Helper()
	if rec.Locked && (rec.Attempts < threshold || rec.Correct) {
		t.Errorf("lock invariant violated: %+v", rec)
	}
	if rec.Correct && rec.Locked {
		t.Errorf("correct record may never be locked: %+v", rec)
	}
}

func TestRecordAttemptCorrectFirstTry(t *testing.T) {
	g := newTestGate(t)
	ctx := context.Background()

	rec, err := g.RecordAttempt(ctx, "l1", "q1", true)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.Attempts != 1 || !rec.Correct || rec.Locked {
		t.Errorf("got %+v", rec)
	}
	checkInvariant(t, rec, g.Config().LockThreshold)
}

func TestRecordAttemptSolvedIsInert(t *testing.T) {
	g := newTestGate(t)
	ctx := context.Background()

	if _, err := g.RecordAttempt(ctx, "l1", "q1", true); err != nil {
		t.Fatal(err)
	}

	// Further submissions, right or wrong, change nothing.
	for _, answer := range []bool{false, true, false} {
		rec, err := g.RecordAttempt(ctx, "l1", "q1", answer)
		if err != nil {
			t.Fatalf("inert call errored: %v", err)
		}
		if rec.Attempts != 1 || !rec.Correct {
			t.Errorf("solved question mutated: %+v", rec)
		}
	}
}

func TestRecordAttemptLocksAtThreshold(t *testing.T) {
	g := newTestGate(t)
	ctx := context.Background()

	var rec progress.QuizAttemptRecord
	var err error
	for i := 1; i <= 3; i++ {
		rec, err = g.RecordAttempt(ctx, "l1", "q1", false)
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		checkInvariant(t, rec, g.Config().LockThreshold)
		wantLocked := i == 3
		if rec.Locked != wantLocked {
			t.Errorf("attempt %d: locked = %v, want %v", i, rec.Locked, wantLocked)
		}
	}
	if rec.Attempts != 3 {
		t.Errorf("attempts = %d", rec.Attempts)
	}

	// Locked: graded submissions are rejected and do not count.
	rec, err = g.RecordAttempt(ctx, "l1", "q1", true)
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("err = %v, want ErrLocked", err)
	}
	if rec.Attempts != 3 || rec.Correct {
		t.Errorf("rejected submission mutated record: %+v", rec)
	}
}

func TestCorrectOnLastAllowedAttemptDoesNotLock(t *testing.T) {
	g := newTestGate(t)
	ctx := context.Background()

	g.RecordAttempt(ctx, "l1", "q1", false)
	g.RecordAttempt(ctx, "l1", "q1", false)
	rec, err := g.RecordAttempt(ctx, "l1", "q1", true)
	if err != nil {
		t.Fatal(err)
	}
	if !rec.Correct || rec.Locked {
		t.Errorf("third-attempt success must solve, not lock: %+v", rec)
	}
}

func TestUnlockScenario(t *testing.T) {
	// Scenario: 3 wrong answers lock the question; a 19-character
	// explanation is rejected; a 20-character one unlocks and resets.
	at := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	tracker := progress.NewTracker(newMemStateRepo(), "p1")
	g := NewGate(tracker, DefaultConfig(), WithClock(func() time.Time { return at }))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := g.RecordAttempt(ctx, "l1", "q1", false); err != nil {
			t.Fatal(err)
		}
	}

	short := strings.Repeat("a", 19)
	rec, err := g.Unlock(ctx, "l1", "q1", short)
	var tooShort *ExplanationTooShortError
	if !errors.As(err, &tooShort) {
		t.Fatalf("err = %v, want ExplanationTooShortError", err)
	}
	if tooShort.Min != 20 || tooShort.Got != 19 {
		t.Errorf("counts = %+v", tooShort)
	}
	if !rec.Locked || rec.Attempts != 3 {
		t.Errorf("rejected unlock mutated record: %+v", rec)
	}

	long := strings.Repeat("a", 20)
	rec, err = g.Unlock(ctx, "l1", "q1", long)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if rec.Locked || rec.Attempts != 0 {
		t.Errorf("got %+v", rec)
	}
	if rec.LastUnlockText() != long {
		t.Errorf("explanation not stored: %+v", rec.UnlockHistory)
	}
	if len(rec.UnlockHistory) != 1 || !rec.UnlockHistory[0].At.Equal(at) {
		t.Errorf("audit entry = %+v", rec.UnlockHistory)
	}
}

func TestUnlockPadsDoNotCount(t *testing.T) {
	g := newTestGate(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		g.RecordAttempt(ctx, "l1", "q1", false)
	}

	// 20 chars of content wrapped in whitespace qualifies; whitespace
	// padding alone does not.
	if _, err := g.Unlock(ctx, "l1", "q1", "   "+strings.Repeat("x", 19)+"   "); err == nil {
		t.Error("19 trimmed chars must be rejected")
	}
	if _, err := g.Unlock(ctx, "l1", "q1", "  "+strings.Repeat("x", 20)+"  "); err != nil {
		t.Errorf("20 trimmed chars must qualify: %v", err)
	}
}

func TestUnlockOnNonLockedIsNoOp(t *testing.T) {
	g := newTestGate(t)
	ctx := context.Background()

	g.RecordAttempt(ctx, "l1", "q1", false)

	rec, err := g.Unlock(ctx, "l1", "q1", strings.Repeat("a", 30))
	if err != nil {
		t.Fatalf("unlock on unlocked record must not error: %v", err)
	}
	if rec.Attempts != 1 || len(rec.UnlockHistory) != 0 {
		t.Errorf("no-op unlock altered record: %+v", rec)
	}
}

func TestUnlockPreservesHistoryAcrossRelocks(t *testing.T) {
	g := newTestGate(t)
	ctx := context.Background()

	lockAndUnlock := func(text string) {
		t.Helper()
		for i := 0; i < 3; i++ {
			g.RecordAttempt(ctx, "l1", "q1", false)
		}
		if _, err := g.Unlock(ctx, "l1", "q1", text); err != nil {
			t.Fatalf("unlock: %v", err)
		}
	}

	lockAndUnlock("prima explicatie destul de lunga")
	lockAndUnlock("a doua explicatie destul de lunga")

	rec, err := g.Record(ctx, "l1", "q1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.UnlockHistory) != 2 {
		t.Fatalf("history = %+v", rec.UnlockHistory)
	}
	if rec.UnlockHistory[0].Text != "prima explicatie destul de lunga" {
		t.Errorf("earlier explanation lost: %+v", rec.UnlockHistory)
	}
	if rec.LastUnlockText() != "a doua explicatie destul de lunga" {
		t.Errorf("latest explanation wrong: %q", rec.LastUnlockText())
	}
}

func TestCustomThresholds(t *testing.T) {
	tracker := progress.NewTracker(newMemStateRepo(), "p1")
	g := NewGate(tracker, Config{LockThreshold: 2, MinExplanationChars: 5})
	ctx := context.Background()

	g.RecordAttempt(ctx, "l1", "q1", false)
	rec, _ := g.RecordAttempt(ctx, "l1", "q1", false)
	if !rec.Locked {
		t.Error("threshold 2 must lock on the second wrong attempt")
	}

	if _, err := g.Unlock(ctx, "l1", "q1", "12345"); err != nil {
		t.Errorf("5-char explanation with min 5: %v", err)
	}
}
