package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mviorel/learninghub/ent"
	"github.com/mviorel/learninghub/ent/profile"
)

// ErrProfileNotFound is returned when a profile id has no identity row.
var ErrProfileNotFound = errors.New("profile not found")

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Create(ctx context.Context, p *ProfileRecord) error {
	created, err := r.client.Profile.Create().
		SetProfileID(p.ProfileID).
		SetDisplayName(p.DisplayName).
		SetAvatar(p.Avatar).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create profile %s: %w", p.ProfileID, err)
	}
	p.CreatedAt = created.CreatedAt
	return nil
}

func (r *profileRepo) Get(ctx context.Context, profileID string) (*ProfileRecord, error) {
	rec, err := r.client.Profile.Query().
		Where(profile.ProfileID(profileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile %s: %w", profileID, err)
	}
	return entProfileToRecord(rec), nil
}

func (r *profileRepo) List(ctx context.Context) ([]*ProfileRecord, error) {
	recs, err := r.client.Profile.Query().
		Order(ent.Asc(profile.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	out := make([]*ProfileRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entProfileToRecord(rec))
	}
	return out, nil
}

func (r *profileRepo) Rename(ctx context.Context, profileID, displayName string) error {
	n, err := r.client.Profile.Update().
		Where(profile.ProfileID(profileID)).
		SetDisplayName(displayName).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("rename profile %s: %w", profileID, err)
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, profileID string) error {
	n, err := r.client.Profile.Delete().
		Where(profile.ProfileID(profileID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", profileID, err)
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func entProfileToRecord(rec *ent.Profile) *ProfileRecord {
	return &ProfileRecord{
		ProfileID:   rec.ProfileID,
		DisplayName: rec.DisplayName,
		Avatar:      rec.Avatar,
		CreatedAt:   rec.CreatedAt,
	}
}
