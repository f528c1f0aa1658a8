// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/existential-birds/amelia-sub003/ent/profile"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTracker sets the "tracker" field.
func (_c *ProfileCreate) SetTracker(v string) *ProfileCreate {
	_c.mutation.SetTracker(v)
	return _c
}

// SetWorkingDir sets the "working_dir" field.
func (_c *ProfileCreate) SetWorkingDir(v string) *ProfileCreate {
	_c.mutation.SetWorkingDir(v)
	return _c
}

// SetPlanOutputDir sets the "plan_output_dir" field.
func (_c *ProfileCreate) SetPlanOutputDir(v string) *ProfileCreate {
	_c.mutation.SetPlanOutputDir(v)
	return _c
}

// SetAgents sets the "agents" field.
func (_c *ProfileCreate) SetAgents(v map[string]interface{}) *ProfileCreate {
	_c.mutation.SetAgents(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProfileCreate) SetID(v string) *ProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.Tracker(); !ok {
		return &ValidationError{Name: "tracker", err: errors.New(`ent: missing required field "Profile.tracker"`)}
	}
	if _, ok := _c.mutation.WorkingDir(); !ok {
		return &ValidationError{Name: "working_dir", err: errors.New(`ent: missing required field "Profile.working_dir"`)}
	}
	if _, ok := _c.mutation.PlanOutputDir(); !ok {
		return &ValidationError{Name: "plan_output_dir", err: errors.New(`ent: missing required field "Profile.plan_output_dir"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Profile.updated_at"`)}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Profile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tracker(); ok {
		_spec.SetField(profile.FieldTracker, field.TypeString, value)
		_node.Tracker = value
	}
	if value, ok := _c.mutation.WorkingDir(); ok {
		_spec.SetField(profile.FieldWorkingDir, field.TypeString, value)
		_node.WorkingDir = value
	}
	if value, ok := _c.mutation.PlanOutputDir(); ok {
		_spec.SetField(profile.FieldPlanOutputDir, field.TypeString, value)
		_node.PlanOutputDir = value
	}
	if value, ok := _c.mutation.Agents(); ok {
		_spec.SetField(profile.FieldAgents, field.TypeJSON, value)
		_node.Agents = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.Create().
//		SetTracker(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetTracker(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileCreate) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertOne {
	_c.conflict = opts
	return &ProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileCreate) OnConflictColumns(columns ...string) *ProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertOne{
		create: _c,
	}
}

type (
	// ProfileUpsertOne is the builder for "upsert"-ing
	//  one Profile node.
	ProfileUpsertOne struct {
		create *ProfileCreate
	}

	// ProfileUpsert is the "OnConflict" setter.
	ProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetTracker sets the "tracker" field.
func (u *ProfileUpsert) SetTracker(v string) *ProfileUpsert {
	u.Set(profile.FieldTracker, v)
	return u
}

// UpdateTracker sets the "tracker" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateTracker() *ProfileUpsert {
	u.SetExcluded(profile.FieldTracker)
	return u
}

// SetWorkingDir sets the "working_dir" field.
func (u *ProfileUpsert) SetWorkingDir(v string) *ProfileUpsert {
	u.Set(profile.FieldWorkingDir, v)
	return u
}

// UpdateWorkingDir sets the "working_dir" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateWorkingDir() *ProfileUpsert {
	u.SetExcluded(profile.FieldWorkingDir)
	return u
}

// SetPlanOutputDir sets the "plan_output_dir" field.
func (u *ProfileUpsert) SetPlanOutputDir(v string) *ProfileUpsert {
	u.Set(profile.FieldPlanOutputDir, v)
	return u
}

// UpdatePlanOutputDir sets the "plan_output_dir" field to the value that was provided on create.
func (u *ProfileUpsert) UpdatePlanOutputDir() *ProfileUpsert {
	u.SetExcluded(profile.FieldPlanOutputDir)
	return u
}

// SetAgents sets the "agents" field.
func (u *ProfileUpsert) SetAgents(v map[string]interface{}) *ProfileUpsert {
	u.Set(profile.FieldAgents, v)
	return u
}

// UpdateAgents sets the "agents" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateAgents() *ProfileUpsert {
	u.SetExcluded(profile.FieldAgents)
	return u
}

// ClearAgents clears the value of the "agents" field.
func (u *ProfileUpsert) ClearAgents() *ProfileUpsert {
	u.SetNull(profile.FieldAgents)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsert) SetUpdatedAt(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateUpdatedAt() *ProfileUpsert {
	u.SetExcluded(profile.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileUpsertOne) UpdateNewValues() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(profile.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProfileUpsertOne) Ignore() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertOne) DoNothing() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreate.OnConflict
// documentation for more info.
func (u *ProfileUpsertOne) Update(set func(*ProfileUpsert)) *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetTracker sets the "tracker" field.
func (u *ProfileUpsertOne) SetTracker(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetTracker(v)
	})
}

// UpdateTracker sets the "tracker" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateTracker() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateTracker()
	})
}

// SetWorkingDir sets the "working_dir" field.
func (u *ProfileUpsertOne) SetWorkingDir(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetWorkingDir(v)
	})
}

// UpdateWorkingDir sets the "working_dir" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateWorkingDir() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateWorkingDir()
	})
}

// SetPlanOutputDir sets the "plan_output_dir" field.
func (u *ProfileUpsertOne) SetPlanOutputDir(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPlanOutputDir(v)
	})
}

// UpdatePlanOutputDir sets the "plan_output_dir" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdatePlanOutputDir() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePlanOutputDir()
	})
}

// SetAgents sets the "agents" field.
func (u *ProfileUpsertOne) SetAgents(v map[string]interface{}) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetAgents(v)
	})
}

// UpdateAgents sets the "agents" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateAgents() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateAgents()
	})
}

// ClearAgents clears the value of the "agents" field.
func (u *ProfileUpsertOne) ClearAgents() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearAgents()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsertOne) SetUpdatedAt(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateUpdatedAt() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProfileUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProfileUpsertOne.ID is not supported by MySQL driver. Use ProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProfileUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetTracker(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertBulk {
	_c.conflict = opts
	return &ProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileCreateBulk) OnConflictColumns(columns ...string) *ProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertBulk{
		create: _c,
	}
}

// ProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of Profile nodes.
type ProfileUpsertBulk struct {
	create *ProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(profile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProfileUpsertBulk) UpdateNewValues() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(profile.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProfileUpsertBulk) Ignore() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertBulk) DoNothing() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreateBulk.OnConflict
// documentation for more info.
func (u *ProfileUpsertBulk) Update(set func(*ProfileUpsert)) *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetTracker sets the "tracker" field.
func (u *ProfileUpsertBulk) SetTracker(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetTracker(v)
	})
}

// UpdateTracker sets the "tracker" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateTracker() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateTracker()
	})
}

// SetWorkingDir sets the "working_dir" field.
func (u *ProfileUpsertBulk) SetWorkingDir(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetWorkingDir(v)
	})
}

// UpdateWorkingDir sets the "working_dir" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateWorkingDir() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateWorkingDir()
	})
}

// SetPlanOutputDir sets the "plan_output_dir" field.
func (u *ProfileUpsertBulk) SetPlanOutputDir(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPlanOutputDir(v)
	})
}

// UpdatePlanOutputDir sets the "plan_output_dir" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdatePlanOutputDir() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePlanOutputDir()
	})
}

// SetAgents sets the "agents" field.
func (u *ProfileUpsertBulk) SetAgents(v map[string]interface{}) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetAgents(v)
	})
}

// UpdateAgents sets the "agents" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateAgents() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateAgents()
	})
}

// ClearAgents clears the value of the "agents" field.
func (u *ProfileUpsertBulk) ClearAgents() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearAgents()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsertBulk) SetUpdatedAt(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateUpdatedAt() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
