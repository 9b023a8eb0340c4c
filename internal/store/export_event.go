package store

import (
	"context"
	"fmt"

	"github.com/mviorel/learninghub/ent"
	"github.com/mviorel/learninghub/ent/exportevent"
)

// exportRepo implements ExportRepo using the ent client.
type exportRepo struct {
	client *ent.Client
}

func (r *exportRepo) Append(ctx context.Context, data ExportEventData) error {
	_, err := r.client.ExportEvent.Create().
		SetProfileID(data.ProfileID).
		SetLessonID(data.LessonID).
		SetGrade(data.Grade).
		SetChecksum(data.Checksum).
		SetFingerprint(data.Fingerprint).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save export event: %w", err)
	}
	return nil
}

func (r *exportRepo) List(ctx context.Context, profileID string, limit int) ([]*ExportRecord, error) {
	q := r.client.ExportEvent.Query().
		Where(exportevent.ProfileID(profileID)).
		Order(ent.Desc(exportevent.FieldExportedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	recs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list export events: %w", err)
	}
	out := make([]*ExportRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, &ExportRecord{
			ID:          rec.ID,
			ProfileID:   rec.ProfileID,
			LessonID:    rec.LessonID,
			Grade:       rec.Grade,
			Checksum:    rec.Checksum,
			Fingerprint: rec.Fingerprint,
			ExportedAt:  rec.ExportedAt,
		})
	}
	return out, nil
}
