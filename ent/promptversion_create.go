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
	"github.com/existential-birds/amelia-sub003/ent/prompt"
	"github.com/existential-birds/amelia-sub003/ent/promptversion"
	"github.com/existential-birds/amelia-sub003/ent/workflowpromptversion"
)

// PromptVersionCreate is the builder for creating a PromptVersion entity.
type PromptVersionCreate struct {
	config
	mutation *PromptVersionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPromptID sets the "prompt_id" field.
func (_c *PromptVersionCreate) SetPromptID(v string) *PromptVersionCreate {
	_c.mutation.SetPromptID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PromptVersionCreate) SetVersion(v int) *PromptVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *PromptVersionCreate) SetContent(v string) *PromptVersionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptVersionCreate) SetCreatedAt(v time.Time) *PromptVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptVersionCreate) SetNillableCreatedAt(v *time.Time) *PromptVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptVersionCreate) SetID(v string) *PromptVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPrompt sets the "prompt" edge to the Prompt entity.
func (_c *PromptVersionCreate) SetPrompt(v *Prompt) *PromptVersionCreate {
	return _c.SetPromptID(v.ID)
}

// AddWorkflowLinkIDs adds the "workflow_links" edge to the WorkflowPromptVersion entity by IDs.
func (_c *PromptVersionCreate) AddWorkflowLinkIDs(ids ...int) *PromptVersionCreate {
	_c.mutation.AddWorkflowLinkIDs(ids...)
	return _c
}

// AddWorkflowLinks adds the "workflow_links" edges to the WorkflowPromptVersion entity.
func (_c *PromptVersionCreate) AddWorkflowLinks(v ...*WorkflowPromptVersion) *PromptVersionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWorkflowLinkIDs(ids...)
}

// Mutation returns the PromptVersionMutation object of the builder.
func (_c *PromptVersionCreate) Mutation() *PromptVersionMutation {
	return _c.mutation
}

// Save creates the PromptVersion in the database.
func (_c *PromptVersionCreate) Save(ctx context.Context) (*PromptVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptVersionCreate) SaveX(ctx context.Context) *PromptVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promptversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptVersionCreate) check() error {
	if _, ok := _c.mutation.PromptID(); !ok {
		return &ValidationError{Name: "prompt_id", err: errors.New(`ent: missing required field "PromptVersion.prompt_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "PromptVersion.version"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "PromptVersion.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptVersion.created_at"`)}
	}
	if len(_c.mutation.PromptIDs()) == 0 {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required edge "PromptVersion.prompt"`)}
	}
	return nil
}

func (_c *PromptVersionCreate) sqlSave(ctx context.Context) (*PromptVersion, error) {
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
			return nil, fmt.Errorf("unexpected PromptVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptVersionCreate) createSpec() (*PromptVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptversion.Table, sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(promptversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(promptversion.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PromptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promptversion.PromptTable,
			Columns: []string{promptversion.PromptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PromptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WorkflowLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   promptversion.WorkflowLinksTable,
			Columns: []string{promptversion.WorkflowLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowpromptversion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PromptVersion.Create().
//		SetPromptID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PromptVersionUpsert) {
//			SetPromptID(v+v).
//		}).
//		Exec(ctx)
func (_c *PromptVersionCreate) OnConflict(opts ...sql.ConflictOption) *PromptVersionUpsertOne {
	_c.conflict = opts
	return &PromptVersionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PromptVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PromptVersionCreate) OnConflictColumns(columns ...string) *PromptVersionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PromptVersionUpsertOne{
		create: _c,
	}
}

type (
	// PromptVersionUpsertOne is the builder for "upsert"-ing
	//  one PromptVersion node.
	PromptVersionUpsertOne struct {
		create *PromptVersionCreate
	}

	// PromptVersionUpsert is the "OnConflict" setter.
	PromptVersionUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PromptVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(promptversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PromptVersionUpsertOne) UpdateNewValues() *PromptVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(promptversion.FieldID)
		}
		if _, exists := u.create.mutation.PromptID(); exists {
			s.SetIgnore(promptversion.FieldPromptID)
		}
		if _, exists := u.create.mutation.Version(); exists {
			s.SetIgnore(promptversion.FieldVersion)
		}
		if _, exists := u.create.mutation.Content(); exists {
			s.SetIgnore(promptversion.FieldContent)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(promptversion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PromptVersion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PromptVersionUpsertOne) Ignore() *PromptVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PromptVersionUpsertOne) DoNothing() *PromptVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PromptVersionCreate.OnConflict
// documentation for more info.
func (u *PromptVersionUpsertOne) Update(set func(*PromptVersionUpsert)) *PromptVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PromptVersionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *PromptVersionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PromptVersionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PromptVersionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PromptVersionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PromptVersionUpsertOne.ID is not supported by MySQL driver. Use PromptVersionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PromptVersionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PromptVersionCreateBulk is the builder for creating many PromptVersion entities in bulk.
type PromptVersionCreateBulk struct {
	config
	err      error
	builders []*PromptVersionCreate
	conflict []sql.ConflictOption
}

// Save creates the PromptVersion entities in the database.
func (_c *PromptVersionCreateBulk) Save(ctx context.Context) ([]*PromptVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptVersionMutation)
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
func (_c *PromptVersionCreateBulk) SaveX(ctx context.Context) []*PromptVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PromptVersion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PromptVersionUpsert) {
//			SetPromptID(v+v).
//		}).
//		Exec(ctx)
func (_c *PromptVersionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PromptVersionUpsertBulk {
	_c.conflict = opts
	return &PromptVersionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PromptVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PromptVersionCreateBulk) OnConflictColumns(columns ...string) *PromptVersionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PromptVersionUpsertBulk{
		create: _c,
	}
}

// PromptVersionUpsertBulk is the builder for "upsert"-ing
// a bulk of PromptVersion nodes.
type PromptVersionUpsertBulk struct {
	create *PromptVersionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PromptVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(promptversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PromptVersionUpsertBulk) UpdateNewValues() *PromptVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(promptversion.FieldID)
			}
			if _, exists := b.mutation.PromptID(); exists {
				s.SetIgnore(promptversion.FieldPromptID)
			}
			if _, exists := b.mutation.Version(); exists {
				s.SetIgnore(promptversion.FieldVersion)
			}
			if _, exists := b.mutation.Content(); exists {
				s.SetIgnore(promptversion.FieldContent)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(promptversion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PromptVersion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PromptVersionUpsertBulk) Ignore() *PromptVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PromptVersionUpsertBulk) DoNothing() *PromptVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PromptVersionCreateBulk.OnConflict
// documentation for more info.
func (u *PromptVersionUpsertBulk) Update(set func(*PromptVersionUpsert)) *PromptVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PromptVersionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *PromptVersionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PromptVersionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PromptVersionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PromptVersionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
