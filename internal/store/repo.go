package store

import (
	"context"
	"time"
)

// GuestProfileID is the reserved profile id used when no named profile is
// active. Guest records persist like any other but carry no guarantee of
// surviving a reset.
const GuestProfileID = "_guest"

// Well-known namespaces. Every persisted document lives in exactly one
// (profile, namespace) row; the bytes carry their own version envelope.
const (
	NamespaceCheckpoints = "checkpoints"
	NamespaceQuiz        = "quiz"
	NamespaceMeta        = "meta"
)

// StateRepo is the profile-scoped persistent key-value store. It owns the
// on-disk representation; callers own (de)serialization. Reads are total for
// the missing-row case: no row means (nil, nil), and callers must treat nil
// bytes as "no history".
type StateRepo interface {
	// Read returns the stored bytes for (profileID, namespace), or nil if
	// no record exists.
	Read(ctx context.Context, profileID, namespace string) ([]byte, error)

	// Write stores data under (profileID, namespace), replacing any
	// previous value. Synchronous; last write wins.
	Write(ctx context.Context, profileID, namespace string, data []byte) error

	// Delete removes the record for (profileID, namespace). Deleting a
	// missing record is not an error.
	Delete(ctx context.Context, profileID, namespace string) error

	// DeleteProfile removes every record owned by profileID.
	DeleteProfile(ctx context.Context, profileID string) error
}

// ProfileRecord is a learner identity row.
type ProfileRecord struct {
	ProfileID   string
	DisplayName string
	Avatar      string
	CreatedAt   time.Time
}

// ProfileRepo manages learner identities.
type ProfileRepo interface {
	Create(ctx context.Context, p *ProfileRecord) error
	Get(ctx context.Context, profileID string) (*ProfileRecord, error)
	List(ctx context.Context) ([]*ProfileRecord, error)

	// Rename changes the display name. The only permitted mutation.
	Rename(ctx context.Context, profileID, displayName string) error

	// Delete removes the identity row only; callers cascade state
	// deletion through StateRepo.DeleteProfile.
	Delete(ctx context.Context, profileID string) error
}

// ExportEventData captures one grade export for the audit trail.
type ExportEventData struct {
	ProfileID   string
	LessonID    string
	Grade       int
	Checksum    string
	Fingerprint string
}

// ExportRecord is a stored export event.
type ExportRecord struct {
	ID          int
	ProfileID   string
	LessonID    string
	Grade       int
	Checksum    string
	Fingerprint string
	ExportedAt  time.Time
}

// ExportRepo records and lists grade export events.
type ExportRepo interface {
	Append(ctx context.Context, data ExportEventData) error

	// List returns exports for a profile, newest first. limit 0 means all.
	List(ctx context.Context, profileID string, limit int) ([]*ExportRecord, error)
}
