// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mviorel/learninghub/ent/exportevent"
	"github.com/mviorel/learninghub/ent/predicate"
)

// ExportEventUpdate is the builder for updating ExportEvent entities.
type ExportEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExportEventMutation
}

// Where appends a list predicates to the ExportEventUpdate builder.
func (_u *ExportEventUpdate) Where(ps ...predicate.ExportEvent) *ExportEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *ExportEventUpdate) SetProfileID(v string) *ExportEventUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ExportEventUpdate) SetNillableProfileID(v *string) *ExportEventUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ExportEventUpdate) SetLessonID(v string) *ExportEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ExportEventUpdate) SetNillableLessonID(v *string) *ExportEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ExportEventUpdate) SetGrade(v int) *ExportEventUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ExportEventUpdate) SetNillableGrade(v *int) *ExportEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *ExportEventUpdate) AddGrade(v int) *ExportEventUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *ExportEventUpdate) SetChecksum(v string) *ExportEventUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *ExportEventUpdate) SetNillableChecksum(v *string) *ExportEventUpdate {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *ExportEventUpdate) SetFingerprint(v string) *ExportEventUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *ExportEventUpdate) SetNillableFingerprint(v *string) *ExportEventUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// Mutation returns the ExportEventMutation object of the builder.
func (_u *ExportEventUpdate) Mutation() *ExportEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExportEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExportEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExportEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExportEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExportEventUpdate) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := exportevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "ExportEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := exportevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "ExportEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Checksum(); ok {
		if err := exportevent.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "ExportEvent.checksum": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := exportevent.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "ExportEvent.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *ExportEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exportevent.Table, exportevent.Columns, sqlgraph.NewFieldSpec(exportevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(exportevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(exportevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(exportevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(exportevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(exportevent.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(exportevent.FieldFingerprint, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exportevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExportEventUpdateOne is the builder for updating a single ExportEvent entity.
type ExportEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExportEventMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *ExportEventUpdateOne) SetProfileID(v string) *ExportEventUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ExportEventUpdateOne) SetNillableProfileID(v *string) *ExportEventUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ExportEventUpdateOne) SetLessonID(v string) *ExportEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ExportEventUpdateOne) SetNillableLessonID(v *string) *ExportEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ExportEventUpdateOne) SetGrade(v int) *ExportEventUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ExportEventUpdateOne) SetNillableGrade(v *int) *ExportEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *ExportEventUpdateOne) AddGrade(v int) *ExportEventUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *ExportEventUpdateOne) SetChecksum(v string) *ExportEventUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *ExportEventUpdateOne) SetNillableChecksum(v *string) *ExportEventUpdateOne {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *ExportEventUpdateOne) SetFingerprint(v string) *ExportEventUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *ExportEventUpdateOne) SetNillableFingerprint(v *string) *ExportEventUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// Mutation returns the ExportEventMutation object of the builder.
func (_u *ExportEventUpdateOne) Mutation() *ExportEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExportEventUpdate builder.
func (_u *ExportEventUpdateOne) Where(ps ...predicate.ExportEvent) *ExportEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExportEventUpdateOne) Select(field string, fields ...string) *ExportEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExportEvent entity.
func (_u *ExportEventUpdateOne) Save(ctx context.Context) (*ExportEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExportEventUpdateOne) SaveX(ctx context.Context) *ExportEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExportEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExportEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExportEventUpdateOne) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := exportevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "ExportEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := exportevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "ExportEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Checksum(); ok {
		if err := exportevent.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "ExportEvent.checksum": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := exportevent.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "ExportEvent.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *ExportEventUpdateOne) sqlSave(ctx context.Context) (_node *ExportEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exportevent.Table, exportevent.Columns, sqlgraph.NewFieldSpec(exportevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExportEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exportevent.FieldID)
		for _, f := range fields {
			if !exportevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exportevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(exportevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(exportevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(exportevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(exportevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(exportevent.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(exportevent.FieldFingerprint, field.TypeString, value)
	}
	_node = &ExportEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exportevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
