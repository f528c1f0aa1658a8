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
	"github.com/existential-birds/amelia-sub003/ent/predicate"
	"github.com/existential-birds/amelia-sub003/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTracker sets the "tracker" field.
func (_u *ProfileUpdate) SetTracker(v string) *ProfileUpdate {
	_u.mutation.SetTracker(v)
	return _u
}

// SetNillableTracker sets the "tracker" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTracker(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetTracker(*v)
	}
	return _u
}

// SetWorkingDir sets the "working_dir" field.
func (_u *ProfileUpdate) SetWorkingDir(v string) *ProfileUpdate {
	_u.mutation.SetWorkingDir(v)
	return _u
}

// SetNillableWorkingDir sets the "working_dir" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableWorkingDir(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetWorkingDir(*v)
	}
	return _u
}

// SetPlanOutputDir sets the "plan_output_dir" field.
func (_u *ProfileUpdate) SetPlanOutputDir(v string) *ProfileUpdate {
	_u.mutation.SetPlanOutputDir(v)
	return _u
}

// SetNillablePlanOutputDir sets the "plan_output_dir" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePlanOutputDir(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetPlanOutputDir(*v)
	}
	return _u
}

// SetAgents sets the "agents" field.
func (_u *ProfileUpdate) SetAgents(v map[string]interface{}) *ProfileUpdate {
	_u.mutation.SetAgents(v)
	return _u
}

// ClearAgents clears the value of the "agents" field.
func (_u *ProfileUpdate) ClearAgents() *ProfileUpdate {
	_u.mutation.ClearAgents()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tracker(); ok {
		_spec.SetField(profile.FieldTracker, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkingDir(); ok {
		_spec.SetField(profile.FieldWorkingDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanOutputDir(); ok {
		_spec.SetField(profile.FieldPlanOutputDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agents(); ok {
		_spec.SetField(profile.FieldAgents, field.TypeJSON, value)
	}
	if _u.mutation.AgentsCleared() {
		_spec.ClearField(profile.FieldAgents, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetTracker sets the "tracker" field.
func (_u *ProfileUpdateOne) SetTracker(v string) *ProfileUpdateOne {
	_u.mutation.SetTracker(v)
	return _u
}

// SetNillableTracker sets the "tracker" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTracker(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetTracker(*v)
	}
	return _u
}

// SetWorkingDir sets the "working_dir" field.
func (_u *ProfileUpdateOne) SetWorkingDir(v string) *ProfileUpdateOne {
	_u.mutation.SetWorkingDir(v)
	return _u
}

// SetNillableWorkingDir sets the "working_dir" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableWorkingDir(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetWorkingDir(*v)
	}
	return _u
}

// SetPlanOutputDir sets the "plan_output_dir" field.
func (_u *ProfileUpdateOne) SetPlanOutputDir(v string) *ProfileUpdateOne {
	_u.mutation.SetPlanOutputDir(v)
	return _u
}

// SetNillablePlanOutputDir sets the "plan_output_dir" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePlanOutputDir(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetPlanOutputDir(*v)
	}
	return _u
}

// SetAgents sets the "agents" field.
func (_u *ProfileUpdateOne) SetAgents(v map[string]interface{}) *ProfileUpdateOne {
	_u.mutation.SetAgents(v)
	return _u
}

// ClearAgents clears the value of the "agents" field.
func (_u *ProfileUpdateOne) ClearAgents() *ProfileUpdateOne {
	_u.mutation.ClearAgents()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Tracker(); ok {
		_spec.SetField(profile.FieldTracker, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkingDir(); ok {
		_spec.SetField(profile.FieldWorkingDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanOutputDir(); ok {
		_spec.SetField(profile.FieldPlanOutputDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.Agents(); ok {
		_spec.SetField(profile.FieldAgents, field.TypeJSON, value)
	}
	if _u.mutation.AgentsCleared() {
		_spec.ClearField(profile.FieldAgents, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
