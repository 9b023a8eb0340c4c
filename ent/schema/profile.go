package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is a learner identity on this device. All persisted progress is
// keyed to a profile; deleting a profile cascades to its state records.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Opaque identifier; the reserved _guest id never has a row here"),
		field.String("display_name").
			NotEmpty(),
		field.String("avatar").
			Default("🙂"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id").Unique(),
	}
}
