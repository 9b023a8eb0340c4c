// Package access derives which lessons of a module a learner may enter.
// Accessibility is never stored: it is recomputed from completion records on
// every query, so a completion write is visible to the very next check.
package access

import (
	"context"

	"github.com/mviorel/learninghub/internal/progress"
)

// Chain is the externally supplied lesson ordering for one module. It is
// rebuilt from content metadata on every resolution, never persisted.
type Chain []string

// Index returns the position of lessonID in the chain, or -1.
func (c Chain) Index(lessonID string) int {
	for i, id := range c {
		if id == lessonID {
			return i
		}
	}
	return -1
}

// Accessibility is the derived entry state for every lesson in a chain.
type Accessibility struct {
	Chain             Chain
	Completed         []bool
	NextUnlockedIndex int
	ReviewerMode      bool
}

// Accessible reports whether the lesson at index i may be entered.
// The rule is monotonic and permissive toward gaps: entry is allowed up to
// one past the highest completed index, so a lesson completed out of band
// (teacher override) unlocks everything before and one after it, and an
// already-reachable lesson is never re-locked by earlier gaps.
func (a Accessibility) Accessible(i int) bool {
	if i < 0 || i >= len(a.Chain) {
		return false
	}
	return a.ReviewerMode || i <= a.NextUnlockedIndex
}

// Decision is the outcome of a direct-entry check. Denials carry a redirect
// target; they are routine navigation outcomes, never errors.
type Decision struct {
	Allowed    bool
	RedirectTo string
	Reason     string
}

// Resolver computes lesson accessibility for one profile.
type Resolver struct {
	tracker      *progress.Tracker
	reviewerMode bool
}

// NewResolver creates a Resolver. reviewerMode bypasses all sequential
// locking, for auditing and testing.
func NewResolver(tracker *progress.Tracker, reviewerMode bool) *Resolver {
	return &Resolver{tracker: tracker, reviewerMode: reviewerMode}
}

// Resolve scans the chain once against the profile's completion records.
func (r *Resolver) Resolve(ctx context.Context, chain Chain) (Accessibility, error) {
	set, _, err := r.tracker.Completions(ctx)
	if err != nil {
		return Accessibility{}, err
	}

	completed := make([]bool, len(chain))
	lastCompleted := -1
	for i, id := range chain {
		if set[id].Completed {
			completed[i] = true
			lastCompleted = i
		}
	}

	return Accessibility{
		Chain:             chain,
		Completed:         completed,
		NextUnlockedIndex: lastCompleted + 1,
		ReviewerMode:      r.reviewerMode,
	}, nil
}

// CheckDirectAccess guards deep links: entering lessonID requires its
// immediate predecessor to be completed, unless it is the chain head or
// reviewer mode is on. An unknown lesson id redirects to the chain head.
func (r *Resolver) CheckDirectAccess(ctx context.Context, chain Chain, lessonID string) (Decision, error) {
	idx := chain.Index(lessonID)
	if idx < 0 {
		target := ""
		if len(chain) > 0 {
			target = chain[0]
		}
		return Decision{RedirectTo: target, Reason: "unknown lesson"}, nil
	}

	if idx == 0 || r.reviewerMode {
		return Decision{Allowed: true}, nil
	}

	prev := chain[idx-1]
	rec, err := r.tracker.Completion(ctx, prev)
	if err != nil {
		return Decision{}, err
	}
	if rec.Completed {
		return Decision{Allowed: true}, nil
	}
	return Decision{
		RedirectTo: prev,
		Reason:     "previous lesson not completed",
	}, nil
}
