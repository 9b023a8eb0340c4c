package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExportEvent records that a grade report was exported, with the checksum of
// the exported payload so a bundle handed to a teacher can later be matched
// against the export that actually happened on this device.
type ExportEvent struct {
	ent.Schema
}

func (ExportEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.Int("grade"),
		field.String("checksum").
			NotEmpty(),
		field.String("fingerprint").
			NotEmpty(),
		field.Time("exported_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ExportEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("lesson_id"),
		index.Fields("exported_at"),
	}
}
