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
	"github.com/existential-birds/amelia-sub003/ent/promptversion"
	"github.com/existential-birds/amelia-sub003/ent/workflow"
	"github.com/existential-birds/amelia-sub003/ent/workflowpromptversion"
)

// WorkflowPromptVersionCreate is the builder for creating a WorkflowPromptVersion entity.
type WorkflowPromptVersionCreate struct {
	config
	mutation *WorkflowPromptVersionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *WorkflowPromptVersionCreate) SetWorkflowID(v string) *WorkflowPromptVersionCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetPromptVersionID sets the "prompt_version_id" field.
func (_c *WorkflowPromptVersionCreate) SetPromptVersionID(v string) *WorkflowPromptVersionCreate {
	_c.mutation.SetPromptVersionID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowPromptVersionCreate) SetCreatedAt(v time.Time) *WorkflowPromptVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowPromptVersionCreate) SetNillableCreatedAt(v *time.Time) *WorkflowPromptVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *WorkflowPromptVersionCreate) SetWorkflow(v *Workflow) *WorkflowPromptVersionCreate {
	return _c.SetWorkflowID(v.ID)
}

// SetPromptVersion sets the "prompt_version" edge to the PromptVersion entity.
func (_c *WorkflowPromptVersionCreate) SetPromptVersion(v *PromptVersion) *WorkflowPromptVersionCreate {
	return _c.SetPromptVersionID(v.ID)
}

// Mutation returns the WorkflowPromptVersionMutation object of the builder.
func (_c *WorkflowPromptVersionCreate) Mutation() *WorkflowPromptVersionMutation {
	return _c.mutation
}

// Save creates the WorkflowPromptVersion in the database.
func (_c *WorkflowPromptVersionCreate) Save(ctx context.Context) (*WorkflowPromptVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowPromptVersionCreate) SaveX(ctx context.Context) *WorkflowPromptVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowPromptVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowPromptVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowPromptVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowpromptversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowPromptVersionCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "WorkflowPromptVersion.workflow_id"`)}
	}
	if _, ok := _c.mutation.PromptVersionID(); !ok {
		return &ValidationError{Name: "prompt_version_id", err: errors.New(`ent: missing required field "WorkflowPromptVersion.prompt_version_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowPromptVersion.created_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "WorkflowPromptVersion.workflow"`)}
	}
	if len(_c.mutation.PromptVersionIDs()) == 0 {
		return &ValidationError{Name: "prompt_version", err: errors.New(`ent: missing required edge "WorkflowPromptVersion.prompt_version"`)}
	}
	return nil
}

func (_c *WorkflowPromptVersionCreate) sqlSave(ctx context.Context) (*WorkflowPromptVersion, error) {
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

func (_c *WorkflowPromptVersionCreate) createSpec() (*WorkflowPromptVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowPromptVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowpromptversion.Table, sqlgraph.NewFieldSpec(workflowpromptversion.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowpromptversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowpromptversion.WorkflowTable,
			Columns: []string{workflowpromptversion.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PromptVersionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowpromptversion.PromptVersionTable,
			Columns: []string{workflowpromptversion.PromptVersionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PromptVersionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowPromptVersion.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowPromptVersionUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowPromptVersionCreate) OnConflict(opts ...sql.ConflictOption) *WorkflowPromptVersionUpsertOne {
	_c.conflict = opts
	return &WorkflowPromptVersionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowPromptVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowPromptVersionCreate) OnConflictColumns(columns ...string) *WorkflowPromptVersionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowPromptVersionUpsertOne{
		create: _c,
	}
}

type (
	// WorkflowPromptVersionUpsertOne is the builder for "upsert"-ing
	//  one WorkflowPromptVersion node.
	WorkflowPromptVersionUpsertOne struct {
		create *WorkflowPromptVersionCreate
	}

	// WorkflowPromptVersionUpsert is the "OnConflict" setter.
	WorkflowPromptVersionUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.WorkflowPromptVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WorkflowPromptVersionUpsertOne) UpdateNewValues() *WorkflowPromptVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.WorkflowID(); exists {
			s.SetIgnore(workflowpromptversion.FieldWorkflowID)
		}
		if _, exists := u.create.mutation.PromptVersionID(); exists {
			s.SetIgnore(workflowpromptversion.FieldPromptVersionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workflowpromptversion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowPromptVersion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkflowPromptVersionUpsertOne) Ignore() *WorkflowPromptVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowPromptVersionUpsertOne) DoNothing() *WorkflowPromptVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowPromptVersionCreate.OnConflict
// documentation for more info.
func (u *WorkflowPromptVersionUpsertOne) Update(set func(*WorkflowPromptVersionUpsert)) *WorkflowPromptVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowPromptVersionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *WorkflowPromptVersionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowPromptVersionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowPromptVersionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkflowPromptVersionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkflowPromptVersionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkflowPromptVersionCreateBulk is the builder for creating many WorkflowPromptVersion entities in bulk.
type WorkflowPromptVersionCreateBulk struct {
	config
	err      error
	builders []*WorkflowPromptVersionCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkflowPromptVersion entities in the database.
func (_c *WorkflowPromptVersionCreateBulk) Save(ctx context.Context) ([]*WorkflowPromptVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowPromptVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowPromptVersionMutation)
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
func (_c *WorkflowPromptVersionCreateBulk) SaveX(ctx context.Context) []*WorkflowPromptVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowPromptVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowPromptVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowPromptVersion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowPromptVersionUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowPromptVersionCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkflowPromptVersionUpsertBulk {
	_c.conflict = opts
	return &WorkflowPromptVersionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowPromptVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowPromptVersionCreateBulk) OnConflictColumns(columns ...string) *WorkflowPromptVersionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowPromptVersionUpsertBulk{
		create: _c,
	}
}

// WorkflowPromptVersionUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkflowPromptVersion nodes.
type WorkflowPromptVersionUpsertBulk struct {
	create *WorkflowPromptVersionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkflowPromptVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WorkflowPromptVersionUpsertBulk) UpdateNewValues() *WorkflowPromptVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.WorkflowID(); exists {
				s.SetIgnore(workflowpromptversion.FieldWorkflowID)
			}
			if _, exists := b.mutation.PromptVersionID(); exists {
				s.SetIgnore(workflowpromptversion.FieldPromptVersionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workflowpromptversion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowPromptVersion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkflowPromptVersionUpsertBulk) Ignore() *WorkflowPromptVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowPromptVersionUpsertBulk) DoNothing() *WorkflowPromptVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowPromptVersionCreateBulk.OnConflict
// documentation for more info.
func (u *WorkflowPromptVersionUpsertBulk) Update(set func(*WorkflowPromptVersionUpsert)) *WorkflowPromptVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowPromptVersionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *WorkflowPromptVersionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkflowPromptVersionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowPromptVersionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowPromptVersionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
