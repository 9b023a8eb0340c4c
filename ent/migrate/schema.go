// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExportEventsColumns holds the columns for the "export_events" table.
	ExportEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt},
		{Name: "checksum", Type: field.TypeString},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "exported_at", Type: field.TypeTime},
	}
	// ExportEventsTable holds the schema information for the "export_events" table.
	ExportEventsTable = &schema.Table{
		Name:       "export_events",
		Columns:    ExportEventsColumns,
		PrimaryKey: []*schema.Column{ExportEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exportevent_profile_id",
				Unique:  false,
				Columns: []*schema.Column{ExportEventsColumns[1]},
			},
			{
				Name:    "exportevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{ExportEventsColumns[2]},
			},
			{
				Name:    "exportevent_exported_at",
				Unique:  false,
				Columns: []*schema.Column{ExportEventsColumns[6]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile_id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "avatar", Type: field.TypeString, Default: "🙂"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_profile_id",
				Unique:  true,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
		},
	}
	// StateRecordsColumns holds the columns for the "state_records" table.
	StateRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile_id", Type: field.TypeString},
		{Name: "namespace", Type: field.TypeString},
		{Name: "data", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StateRecordsTable holds the schema information for the "state_records" table.
	StateRecordsTable = &schema.Table{
		Name:       "state_records",
		Columns:    StateRecordsColumns,
		PrimaryKey: []*schema.Column{StateRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "staterecord_profile_id_namespace",
				Unique:  true,
				Columns: []*schema.Column{StateRecordsColumns[1], StateRecordsColumns[2]},
			},
			{
				Name:    "staterecord_profile_id",
				Unique:  false,
				Columns: []*schema.Column{StateRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExportEventsTable,
		ProfilesTable,
		StateRecordsTable,
	}
)

func init() {
}
