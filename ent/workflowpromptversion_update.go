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
	"github.com/existential-birds/amelia-sub003/ent/workflowpromptversion"
)

// WorkflowPromptVersionUpdate is the builder for updating WorkflowPromptVersion entities.
type WorkflowPromptVersionUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowPromptVersionMutation
}

// Where appends a list predicates to the WorkflowPromptVersionUpdate builder.
func (_u *WorkflowPromptVersionUpdate) Where(ps ...predicate.WorkflowPromptVersion) *WorkflowPromptVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the WorkflowPromptVersionMutation object of the builder.
func (_u *WorkflowPromptVersionUpdate) Mutation() *WorkflowPromptVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowPromptVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowPromptVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowPromptVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowPromptVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowPromptVersionUpdate) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowPromptVersion.workflow"`)
	}
	if _u.mutation.PromptVersionCleared() && len(_u.mutation.PromptVersionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowPromptVersion.prompt_version"`)
	}
	return nil
}

func (_u *WorkflowPromptVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowpromptversion.Table, workflowpromptversion.Columns, sqlgraph.NewFieldSpec(workflowpromptversion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowpromptversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowPromptVersionUpdateOne is the builder for updating a single WorkflowPromptVersion entity.
type WorkflowPromptVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowPromptVersionMutation
}

// Mutation returns the WorkflowPromptVersionMutation object of the builder.
func (_u *WorkflowPromptVersionUpdateOne) Mutation() *WorkflowPromptVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowPromptVersionUpdate builder.
func (_u *WorkflowPromptVersionUpdateOne) Where(ps ...predicate.WorkflowPromptVersion) *WorkflowPromptVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowPromptVersionUpdateOne) Select(field string, fields ...string) *WorkflowPromptVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowPromptVersion entity.
func (_u *WorkflowPromptVersionUpdateOne) Save(ctx context.Context) (*WorkflowPromptVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowPromptVersionUpdateOne) SaveX(ctx context.Context) *WorkflowPromptVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowPromptVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowPromptVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowPromptVersionUpdateOne) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowPromptVersion.workflow"`)
	}
	if _u.mutation.PromptVersionCleared() && len(_u.mutation.PromptVersionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowPromptVersion.prompt_version"`)
	}
	return nil
}

func (_u *WorkflowPromptVersionUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowPromptVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowpromptversion.Table, workflowpromptversion.Columns, sqlgraph.NewFieldSpec(workflowpromptversion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowPromptVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowpromptversion.FieldID)
		for _, f := range fields {
			if !workflowpromptversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowpromptversion.FieldID {
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
	_node = &WorkflowPromptVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowpromptversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
