package attempts

import (
	"context"
	"testing"

	"github.com/mviorel/learninghub/internal/progress"
)

func TestXPMultiplierTiers(t *testing.T) {
	tests := []struct {
		name string
		// attempts per question before a correct answer
		attemptsPerQuestion []int
		want                float64
	}{
		{"no questions answered", nil, 1.0},
		{"all first try", []int{1, 1, 1}, 1.0},
		{"average exactly 2 rounds up to full", []int{1, 3}, 1.0},
		{"average 2.5", []int{2, 3}, 0.5},
		{"average exactly 3 rounds up to half", []int{3, 3}, 0.5},
		{"average above 3", []int{4, 4}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := progress.NewTracker(newMemStateRepo(), "p1")
			// Thresholds high enough that nothing locks while seeding.
			g := NewGate(tracker, Config{LockThreshold: 100, MinExplanationChars: 20})
			ctx := context.Background()

			for qi, n := range tt.attemptsPerQuestion {
				qid := string(rune('a' + qi))
				for i := 0; i < n-1; i++ {
					if _, err := g.RecordAttempt(ctx, "l1", qid, false); err != nil {
						t.Fatal(err)
					}
				}
				if _, err := g.RecordAttempt(ctx, "l1", qid, true); err != nil {
					t.Fatal(err)
				}
			}

			got, err := g.XPMultiplier(ctx, "l1")
			if err != nil {
				t.Fatalf("multiplier: %v", err)
			}
			if got != tt.want {
				t.Errorf("multiplier = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestXPMultiplierScopedToLesson(t *testing.T) {
	tracker := progress.NewTracker(newMemStateRepo(), "p1")
	g := NewGate(tracker, Config{LockThreshold: 100, MinExplanationChars: 20})
	ctx := context.Background()

	// Lesson l1: clean. Lesson l2: struggling.
	g.RecordAttempt(ctx, "l1", "q1", true)
	for i := 0; i < 5; i++ {
		g.RecordAttempt(ctx, "l2", "q1", false)
	}

	got, err := g.XPMultiplier(ctx, "l1")
	if err != nil {
		t.Fatal(err)
	}
	if got != 1.0 {
		t.Errorf("l1 multiplier = %v, polluted by l2", got)
	}
}
