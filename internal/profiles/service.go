// Package profiles manages learner identities and the active-profile
// selection. All progress data is keyed by profile id; this package owns the
// identity rows and the cascade when one is deleted.
package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mviorel/learninghub/internal/store"
)

// DefaultAvatar is assigned when a profile is created without one.
const DefaultAvatar = "🙂"

// activeDoc is the persisted active-profile selection. It lives in the meta
// namespace of the reserved guest scope so it survives profile deletion.
type activeDoc struct {
	Version         int    `json:"version"`
	ActiveProfileID string `json:"activeProfileId"`
}

const activeDocVersion = 1

// Service manages profiles over the identity and state repositories.
type Service struct {
	profiles store.ProfileRepo
	states   store.StateRepo
	now      func() time.Time
	newID    func() string
}

// NewService creates a Service.
func NewService(profiles store.ProfileRepo, states store.StateRepo) *Service {
	return &Service{
		profiles: profiles,
		states:   states,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create registers a new profile and returns it. The display name must be
// non-empty after trimming; the avatar falls back to DefaultAvatar.
func (s *Service) Create(ctx context.Context, displayName, avatar string) (*store.ProfileRecord, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("create profile: display name is empty")
	}
	if avatar == "" {
		avatar = DefaultAvatar
	}

	rec := &store.ProfileRecord{
		ProfileID:   s.newID(),
		DisplayName: displayName,
		Avatar:      avatar,
		CreatedAt:   s.now(),
	}
	if err := s.profiles.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return rec, nil
}

// Get returns one profile by id.
func (s *Service) Get(ctx context.Context, profileID string) (*store.ProfileRecord, error) {
	return s.profiles.Get(ctx, profileID)
}

// List returns all profiles.
func (s *Service) List(ctx context.Context) ([]*store.ProfileRecord, error) {
	return s.profiles.List(ctx)
}

// Rename changes a profile's display name, the only permitted mutation.
func (s *Service) Rename(ctx context.Context, profileID, displayName string) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return fmt.Errorf("rename profile: display name is empty")
	}
	if err := s.profiles.Rename(ctx, profileID, displayName); err != nil {
		return fmt.Errorf("rename profile: %w", err)
	}
	return nil
}

// Delete removes a profile and cascades deletion of every state record keyed
// to it. If the deleted profile was active, the selection falls back to the
// guest scope.
func (s *Service) Delete(ctx context.Context, profileID string) error {
	if profileID == store.GuestProfileID {
		return fmt.Errorf("delete profile: the guest scope cannot be deleted")
	}
	if err := s.profiles.Delete(ctx, profileID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if err := s.states.DeleteProfile(ctx, profileID); err != nil {
		return fmt.Errorf("delete profile state: %w", err)
	}

	active, err := s.ActiveProfileID(ctx)
	if err != nil {
		return err
	}
	if active == profileID {
		if err := s.SetActive(ctx, ""); err != nil {
			return err
		}
	}
	return nil
}

// ActiveProfileID returns the persisted active profile id, or GuestProfileID
// when none is set or the stored selection is unreadable or points at a
// profile that no longer exists.
func (s *Service) ActiveProfileID(ctx context.Context) (string, error) {
	raw, err := s.states.Read(ctx, store.GuestProfileID, store.NamespaceMeta)
	if err != nil {
		return "", fmt.Errorf("load active profile: %w", err)
	}
	if raw == nil {
		return store.GuestProfileID, nil
	}

	var doc activeDoc
	if err := json.Unmarshal(raw, &doc); err != nil || doc.ActiveProfileID == "" {
		return store.GuestProfileID, nil
	}
	if _, err := s.profiles.Get(ctx, doc.ActiveProfileID); err != nil {
		return store.GuestProfileID, nil
	}
	return doc.ActiveProfileID, nil
}

// SetActive persists profileID as the active selection. Empty or guest
// clears the selection back to the guest scope. A named profile must exist.
func (s *Service) SetActive(ctx context.Context, profileID string) error {
	if profileID != "" && profileID != store.GuestProfileID {
		if _, err := s.profiles.Get(ctx, profileID); err != nil {
			return fmt.Errorf("activate profile: %w", err)
		}
	}

	raw, err := json.Marshal(activeDoc{Version: activeDocVersion, ActiveProfileID: profileID})
	if err != nil {
		return fmt.Errorf("encode active profile: %w", err)
	}
	if err := s.states.Write(ctx, store.GuestProfileID, store.NamespaceMeta, raw); err != nil {
		return fmt.Errorf("save active profile: %w", err)
	}
	return nil
}
