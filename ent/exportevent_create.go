// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mviorel/learninghub/ent/exportevent"
)

// ExportEventCreate is the builder for creating a ExportEvent entity.
type ExportEventCreate struct {
	config
	mutation *ExportEventMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *ExportEventCreate) SetProfileID(v string) *ExportEventCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *ExportEventCreate) SetLessonID(v string) *ExportEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *ExportEventCreate) SetGrade(v int) *ExportEventCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetChecksum sets the "checksum" field.
func (_c *ExportEventCreate) SetChecksum(v string) *ExportEventCreate {
	_c.mutation.SetChecksum(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *ExportEventCreate) SetFingerprint(v string) *ExportEventCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetExportedAt sets the "exported_at" field.
func (_c *ExportEventCreate) SetExportedAt(v time.Time) *ExportEventCreate {
	_c.mutation.SetExportedAt(v)
	return _c
}

// SetNillableExportedAt sets the "exported_at" field if the given value is not nil.
func (_c *ExportEventCreate) SetNillableExportedAt(v *time.Time) *ExportEventCreate {
	if v != nil {
		_c.SetExportedAt(*v)
	}
	return _c
}

// Mutation returns the ExportEventMutation object of the builder.
func (_c *ExportEventCreate) Mutation() *ExportEventMutation {
	return _c.mutation
}

// Save creates the ExportEvent in the database.
func (_c *ExportEventCreate) Save(ctx context.Context) (*ExportEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExportEventCreate) SaveX(ctx context.Context) *ExportEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExportEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExportEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExportEventCreate) defaults() {
	if _, ok := _c.mutation.ExportedAt(); !ok {
		v := exportevent.DefaultExportedAt()
		_c.mutation.SetExportedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExportEventCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "ExportEvent.profile_id"`)}
	}
	if v, ok := _c.mutation.ProfileID(); ok {
		if err := exportevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "ExportEvent.profile_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "ExportEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := exportevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "ExportEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "ExportEvent.grade"`)}
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		return &ValidationError{Name: "checksum", err: errors.New(`ent: missing required field "ExportEvent.checksum"`)}
	}
	if v, ok := _c.mutation.Checksum(); ok {
		if err := exportevent.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "ExportEvent.checksum": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "ExportEvent.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := exportevent.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "ExportEvent.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExportedAt(); !ok {
		return &ValidationError{Name: "exported_at", err: errors.New(`ent: missing required field "ExportEvent.exported_at"`)}
	}
	return nil
}

func (_c *ExportEventCreate) sqlSave(ctx context.Context) (*ExportEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExportEventCreate) createSpec() (*ExportEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExportEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exportevent.Table, sqlgraph.NewFieldSpec(exportevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(exportevent.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(exportevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(exportevent.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Checksum(); ok {
		_spec.SetField(exportevent.FieldChecksum, field.TypeString, value)
		_node.Checksum = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(exportevent.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.ExportedAt(); ok {
		_spec.SetField(exportevent.FieldExportedAt, field.TypeTime, value)
		_node.ExportedAt = value
	}
	return _node, _spec
}

// ExportEventCreateBulk is the builder for creating many ExportEvent entities in bulk.
type ExportEventCreateBulk struct {
	config
	err      error
	builders []*ExportEventCreate
}

// Save creates the ExportEvent entities in the database.
func (_c *ExportEventCreateBulk) Save(ctx context.Context) ([]*ExportEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExportEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExportEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExportEventCreateBulk) SaveX(ctx context.Context) []*ExportEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExportEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExportEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
