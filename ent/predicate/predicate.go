// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExportEvent is the predicate function for exportevent builders.
type ExportEvent func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// StateRecord is the predicate function for staterecord builders.
type StateRecord func(*sql.Selector)
