// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/existential-birds/amelia-sub003/ent/predicate"
	"github.com/existential-birds/amelia-sub003/ent/promptversion"
	"github.com/existential-birds/amelia-sub003/ent/workflowpromptversion"
)

// PromptVersionUpdate is the builder for updating PromptVersion entities.
type PromptVersionUpdate struct {
	config
	hooks    []Hook
	mutation *PromptVersionMutation
}

// Where appends a list predicates to the PromptVersionUpdate builder.
func (_u *PromptVersionUpdate) Where(ps ...predicate.PromptVersion) *PromptVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// AddWorkflowLinkIDs adds the "workflow_links" edge to the WorkflowPromptVersion entity by IDs.
func (_u *PromptVersionUpdate) AddWorkflowLinkIDs(ids ...int) *PromptVersionUpdate {
	_u.mutation.AddWorkflowLinkIDs(ids...)
	return _u
}

// AddWorkflowLinks adds the "workflow_links" edges to the WorkflowPromptVersion entity.
func (_u *PromptVersionUpdate) AddWorkflowLinks(v ...*WorkflowPromptVersion) *PromptVersionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowLinkIDs(ids...)
}

// Mutation returns the PromptVersionMutation object of the builder.
func (_u *PromptVersionUpdate) Mutation() *PromptVersionMutation {
	return _u.mutation
}

// ClearWorkflowLinks clears all "workflow_links" edges to the WorkflowPromptVersion entity.
func (_u *PromptVersionUpdate) ClearWorkflowLinks() *PromptVersionUpdate {
	_u.mutation.ClearWorkflowLinks()
	return _u
}

// RemoveWorkflowLinkIDs removes the "workflow_links" edge to WorkflowPromptVersion entities by IDs.
func (_u *PromptVersionUpdate) RemoveWorkflowLinkIDs(ids ...int) *PromptVersionUpdate {
	_u.mutation.RemoveWorkflowLinkIDs(ids...)
	return _u
}

// RemoveWorkflowLinks removes "workflow_links" edges to WorkflowPromptVersion entities.
func (_u *PromptVersionUpdate) RemoveWorkflowLinks(v ...*WorkflowPromptVersion) *PromptVersionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptVersionUpdate) check() error {
	if _u.mutation.PromptCleared() && len(_u.mutation.PromptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptVersion.prompt"`)
	}
	return nil
}

func (_u *PromptVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptversion.Table, promptversion.Columns, sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.WorkflowLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowLinksIDs(); len(nodes) > 0 && !_u.mutation.WorkflowLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptVersionUpdateOne is the builder for updating a single PromptVersion entity.
type PromptVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptVersionMutation
}

// AddWorkflowLinkIDs adds the "workflow_links" edge to the WorkflowPromptVersion entity by IDs.
func (_u *PromptVersionUpdateOne) AddWorkflowLinkIDs(ids ...int) *PromptVersionUpdateOne {
	_u.mutation.AddWorkflowLinkIDs(ids...)
	return _u
}

// AddWorkflowLinks adds the "workflow_links" edges to the WorkflowPromptVersion entity.
func (_u *PromptVersionUpdateOne) AddWorkflowLinks(v ...*WorkflowPromptVersion) *PromptVersionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowLinkIDs(ids...)
}

// Mutation returns the PromptVersionMutation object of the builder.
func (_u *PromptVersionUpdateOne) Mutation() *PromptVersionMutation {
	return _u.mutation
}

// ClearWorkflowLinks clears all "workflow_links" edges to the WorkflowPromptVersion entity.
func (_u *PromptVersionUpdateOne) ClearWorkflowLinks() *PromptVersionUpdateOne {
	_u.mutation.ClearWorkflowLinks()
	return _u
}

// RemoveWorkflowLinkIDs removes the "workflow_links" edge to WorkflowPromptVersion entities by IDs.
func (_u *PromptVersionUpdateOne) RemoveWorkflowLinkIDs(ids ...int) *PromptVersionUpdateOne {
	_u.mutation.RemoveWorkflowLinkIDs(ids...)
	return _u
}

// RemoveWorkflowLinks removes "workflow_links" edges to WorkflowPromptVersion entities.
func (_u *PromptVersionUpdateOne) RemoveWorkflowLinks(v ...*WorkflowPromptVersion) *PromptVersionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowLinkIDs(ids...)
}

// Where appends a list predicates to the PromptVersionUpdate builder.
func (_u *PromptVersionUpdateOne) Where(ps ...predicate.PromptVersion) *PromptVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptVersionUpdateOne) Select(field string, fields ...string) *PromptVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptVersion entity.
func (_u *PromptVersionUpdateOne) Save(ctx context.Context) (*PromptVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptVersionUpdateOne) SaveX(ctx context.Context) *PromptVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptVersionUpdateOne) check() error {
	if _u.mutation.PromptCleared() && len(_u.mutation.PromptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptVersion.prompt"`)
	}
	return nil
}

func (_u *PromptVersionUpdateOne) sqlSave(ctx context.Context) (_node *PromptVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptversion.Table, promptversion.Columns, sqlgraph.NewFieldSpec(promptversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptversion.FieldID)
		for _, f := range fields {
			if !promptversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptversion.FieldID {
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
	if _u.mutation.WorkflowLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowLinksIDs(); len(nodes) > 0 && !_u.mutation.WorkflowLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PromptVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
