// Package session wires the per-profile service set. Every component reads
// through a Tracker scoped to one profile, so switching profiles means
// building a fresh Session; nothing here caches across the switch.
package session

import (
	"context"

	"github.com/mviorel/learninghub/internal/access"
	"github.com/mviorel/learninghub/internal/attempts"
	"github.com/mviorel/learninghub/internal/checkpoint"
	"github.com/mviorel/learninghub/internal/config"
	"github.com/mviorel/learninghub/internal/grading"
	"github.com/mviorel/learninghub/internal/nav"
	"github.com/mviorel/learninghub/internal/progress"
	"github.com/mviorel/learninghub/internal/store"
)

// Session is the working context for one active profile.
type Session struct {
	ProfileID string

	// Profile is the identity row, nil for the guest scope.
	Profile *store.ProfileRecord

	Tracker  *progress.Tracker
	Engine   *checkpoint.Engine
	Gate     *attempts.Gate
	Resolver *access.Resolver
	Enforcer *nav.Enforcer
	Exporter *grading.Exporter
}

// New builds a Session for profileID against st, configured by cfg.
func New(ctx context.Context, st *store.Store, cfg config.Config, profileID string) (*Session, error) {
	var rec *store.ProfileRecord
	if profileID != store.GuestProfileID {
		var err error
		rec, err = st.ProfileRepo().Get(ctx, profileID)
		if err != nil {
			return nil, err
		}
	}

	tracker := progress.NewTracker(st.StateRepo(), profileID)
	engine := checkpoint.NewEngine(tracker)
	gate := attempts.NewGate(tracker, attempts.Config{
		LockThreshold:       cfg.Attempts.LockThreshold,
		MinExplanationChars: cfg.Attempts.MinExplanationChars,
	})
	resolver := access.NewResolver(tracker, cfg.ReviewerMode)

	return &Session{
		ProfileID: profileID,
		Profile:   rec,
		Tracker:   tracker,
		Engine:    engine,
		Gate:      gate,
		Resolver:  resolver,
		Enforcer:  nav.NewEnforcer(resolver, engine),
		Exporter:  grading.NewExporter(st.ExportRepo(), cfg.ClientID),
	}, nil
}

// DisplayName returns the profile's display name, or "Guest".
func (s *Session) DisplayName() string {
	if s.Profile == nil {
		return "Guest"
	}
	return s.Profile.DisplayName
}
