package store

import (
	"context"
	"fmt"

	"github.com/mviorel/learninghub/ent"
	"github.com/mviorel/learninghub/ent/staterecord"
)

// stateRepo implements StateRepo using the ent client.
type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) Read(ctx context.Context, profileID, namespace string) ([]byte, error) {
	rec, err := r.client.StateRecord.Query().
		Where(
			staterecord.ProfileID(profileID),
			staterecord.Namespace(namespace),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state %s/%s: %w", profileID, namespace, err)
	}
	return rec.Data, nil
}

func (r *stateRepo) Write(ctx context.Context, profileID, namespace string, data []byte) error {
	// Query-then-write rather than a SQL upsert: two handles racing here
	// simply overwrite each other, which is the documented last-write-wins
	// contract for this store.
	existing, err := r.client.StateRecord.Query().
		Where(
			staterecord.ProfileID(profileID),
			staterecord.Namespace(namespace),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = r.client.StateRecord.UpdateOne(existing).
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update state %s/%s: %w", profileID, namespace, err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.StateRecord.Create().
			SetProfileID(profileID).
			SetNamespace(namespace).
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create state %s/%s: %w", profileID, namespace, err)
		}
		return nil
	default:
		return fmt.Errorf("query state %s/%s: %w", profileID, namespace, err)
	}
}

func (r *stateRepo) Delete(ctx context.Context, profileID, namespace string) error {
	_, err := r.client.StateRecord.Delete().
		Where(
			staterecord.ProfileID(profileID),
			staterecord.Namespace(namespace),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete state %s/%s: %w", profileID, namespace, err)
	}
	return nil
}

func (r *stateRepo) DeleteProfile(ctx context.Context, profileID string) error {
	_, err := r.client.StateRecord.Delete().
		Where(staterecord.ProfileID(profileID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete profile state %s: %w", profileID, err)
	}
	return nil
}
