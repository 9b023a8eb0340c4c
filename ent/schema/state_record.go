package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StateRecord holds one serialized progress document per (profile, namespace)
// pair. The bytes carry their own version envelope; this layer only stores
// and namespaces them. Writes are upserts: last write wins.
type StateRecord struct {
	ent.Schema
}

func (StateRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			NotEmpty(),
		field.String("namespace").
			NotEmpty().
			Comment("Subsystem tag, e.g. checkpoints, quiz, meta"),
		field.Bytes("data"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (StateRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "namespace").Unique(),
		index.Fields("profile_id"),
	}
}
