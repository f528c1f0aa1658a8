// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/existential-birds/amelia-sub003/ent/predicate"
	"github.com/existential-birds/amelia-sub003/ent/workflowpromptversion"
)

// WorkflowPromptVersionDelete is the builder for deleting a WorkflowPromptVersion entity.
type WorkflowPromptVersionDelete struct {
	config
	hooks    []Hook
	mutation *WorkflowPromptVersionMutation
}

// Where appends a list predicates to the WorkflowPromptVersionDelete builder.
func (_d *WorkflowPromptVersionDelete) Where(ps ...predicate.WorkflowPromptVersion) *WorkflowPromptVersionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WorkflowPromptVersionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkflowPromptVersionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WorkflowPromptVersionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workflowpromptversion.Table, sqlgraph.NewFieldSpec(workflowpromptversion.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WorkflowPromptVersionDeleteOne is the builder for deleting a single WorkflowPromptVersion entity.
type WorkflowPromptVersionDeleteOne struct {
	_d *WorkflowPromptVersionDelete
}

// Where appends a list predicates to the WorkflowPromptVersionDelete builder.
func (_d *WorkflowPromptVersionDeleteOne) Where(ps ...predicate.WorkflowPromptVersion) *WorkflowPromptVersionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WorkflowPromptVersionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workflowpromptversion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkflowPromptVersionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
