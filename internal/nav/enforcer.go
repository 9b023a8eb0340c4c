// Package nav enforces lesson navigation at the UI boundary. It owns no
// state: every decision is derived freshly from the checkpoint engine and
// the accessibility resolver, so a completion recorded a moment ago is
// honored by the very next navigation attempt.
package nav

import (
	"context"

	"github.com/mviorel/learninghub/internal/access"
	"github.com/mviorel/learninghub/internal/checkpoint"
)

// Transition is a navigation verdict. A blocked transition is an expected,
// routine outcome surfaced as a notice or redirect, never an error.
type Transition struct {
	Allowed bool
	Target  string
	Reason  string
}

// Enforcer gates lesson-to-lesson movement.
type Enforcer struct {
	resolver *access.Resolver
	engine   *checkpoint.Engine
}

// NewEnforcer creates an Enforcer over the resolver and checkpoint engine.
func NewEnforcer(resolver *access.Resolver, engine *checkpoint.Engine) *Enforcer {
	return &Enforcer{resolver: resolver, engine: engine}
}

// Next decides whether the learner may advance from currentLessonID to its
// successor in the chain. Advancing requires the current lesson's
// checkpoint to have been passed.
func (e *Enforcer) Next(ctx context.Context, chain access.Chain, currentLessonID string) (Transition, error) {
	idx := chain.Index(currentLessonID)
	if idx < 0 {
		return Transition{Reason: "unknown lesson"}, nil
	}
	if idx == len(chain)-1 {
		return Transition{Reason: "end of module"}, nil
	}

	next := chain[idx+1]

	// Reviewer mode short-circuits through the direct-access guard so
	// the completion requirement is waived consistently with deep links.
	dec, err := e.resolver.CheckDirectAccess(ctx, chain, next)
	if err != nil {
		return Transition{}, err
	}
	if dec.Allowed {
		return Transition{Allowed: true, Target: next}, nil
	}

	completed, err := e.engine.Completed(ctx, currentLessonID)
	if err != nil {
		return Transition{}, err
	}
	if !completed {
		return Transition{
			Target: currentLessonID,
			Reason: "finish the checkpoint before moving on",
		}, nil
	}
	return Transition{Allowed: true, Target: next}, nil
}

// Enter decides whether the learner may open lessonID directly (deep link,
// bookmark, lesson list selection). Denials carry the redirect target.
func (e *Enforcer) Enter(ctx context.Context, chain access.Chain, lessonID string) (Transition, error) {
	dec, err := e.resolver.CheckDirectAccess(ctx, chain, lessonID)
	if err != nil {
		return Transition{}, err
	}
	if dec.Allowed {
		return Transition{Allowed: true, Target: lessonID}, nil
	}
	return Transition{Target: dec.RedirectTo, Reason: dec.Reason}, nil
}
