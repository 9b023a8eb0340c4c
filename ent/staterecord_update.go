// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mviorel/learninghub/ent/predicate"
	"github.com/mviorel/learninghub/ent/staterecord"
)

// StateRecordUpdate is the builder for updating StateRecord entities.
type StateRecordUpdate struct {
	config
	hooks    []Hook
	mutation *StateRecordMutation
}

// Where appends a list predicates to the StateRecordUpdate builder.
func (_u *StateRecordUpdate) Where(ps ...predicate.StateRecord) *StateRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *StateRecordUpdate) SetProfileID(v string) *StateRecordUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *StateRecordUpdate) SetNillableProfileID(v *string) *StateRecordUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetNamespace sets the "namespace" field.
func (_u *StateRecordUpdate) SetNamespace(v string) *StateRecordUpdate {
	_u.mutation.SetNamespace(v)
	return _u
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_u *StateRecordUpdate) SetNillableNamespace(v *string) *StateRecordUpdate {
	if v != nil {
		_u.SetNamespace(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *StateRecordUpdate) SetData(v []byte) *StateRecordUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StateRecordUpdate) SetUpdatedAt(v time.Time) *StateRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StateRecordMutation object of the builder.
func (_u *StateRecordUpdate) Mutation() *StateRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StateRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StateRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StateRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staterecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StateRecordUpdate) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := staterecord.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "StateRecord.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Namespace(); ok {
		if err := staterecord.NamespaceValidator(v); err != nil {
			return &ValidationError{Name: "namespace", err: fmt.Errorf(`ent: validator failed for field "StateRecord.namespace": %w`, err)}
		}
	}
	return nil
}

func (_u *StateRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(staterecord.Table, staterecord.Columns, sqlgraph.NewFieldSpec(staterecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(staterecord.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Namespace(); ok {
		_spec.SetField(staterecord.FieldNamespace, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(staterecord.FieldData, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(staterecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staterecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StateRecordUpdateOne is the builder for updating a single StateRecord entity.
type StateRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StateRecordMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *StateRecordUpdateOne) SetProfileID(v string) *StateRecordUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *StateRecordUpdateOne) SetNillableProfileID(v *string) *StateRecordUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetNamespace sets the "namespace" field.
func (_u *StateRecordUpdateOne) SetNamespace(v string) *StateRecordUpdateOne {
	_u.mutation.SetNamespace(v)
	return _u
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_u *StateRecordUpdateOne) SetNillableNamespace(v *string) *StateRecordUpdateOne {
	if v != nil {
		_u.SetNamespace(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *StateRecordUpdateOne) SetData(v []byte) *StateRecordUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StateRecordUpdateOne) SetUpdatedAt(v time.Time) *StateRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StateRecordMutation object of the builder.
func (_u *StateRecordUpdateOne) Mutation() *StateRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the StateRecordUpdate builder.
func (_u *StateRecordUpdateOne) Where(ps ...predicate.StateRecord) *StateRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StateRecordUpdateOne) Select(field string, fields ...string) *StateRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StateRecord entity.
func (_u *StateRecordUpdateOne) Save(ctx context.Context) (*StateRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StateRecordUpdateOne) SaveX(ctx context.Context) *StateRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StateRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StateRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StateRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staterecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StateRecordUpdateOne) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := staterecord.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "StateRecord.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Namespace(); ok {
		if err := staterecord.NamespaceValidator(v); err != nil {
			return &ValidationError{Name: "namespace", err: fmt.Errorf(`ent: validator failed for field "StateRecord.namespace": %w`, err)}
		}
	}
	return nil
}

func (_u *StateRecordUpdateOne) sqlSave(ctx context.Context) (_node *StateRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(staterecord.Table, staterecord.Columns, sqlgraph.NewFieldSpec(staterecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StateRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, staterecord.FieldID)
		for _, f := range fields {
			if !staterecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != staterecord.FieldID {
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
		_spec.SetField(staterecord.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Namespace(); ok {
		_spec.SetField(staterecord.FieldNamespace, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(staterecord.FieldData, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(staterecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StateRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staterecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
