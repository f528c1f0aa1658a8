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
	"github.com/existential-birds/amelia-sub003/ent/checkpoint"
	"github.com/existential-birds/amelia-sub003/ent/event"
	"github.com/existential-birds/amelia-sub003/ent/predicate"
	"github.com/existential-birds/amelia-sub003/ent/tokenusage"
	"github.com/existential-birds/amelia-sub003/ent/workflow"
	"github.com/existential-birds/amelia-sub003/ent/workflowpromptversion"
)

// WorkflowUpdate is the builder for updating Workflow entities.
type WorkflowUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowMutation
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdate) Where(ps ...predicate.Workflow) *WorkflowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIssueID sets the "issue_id" field.
func (_u *WorkflowUpdate) SetIssueID(v string) *WorkflowUpdate {
	_u.mutation.SetIssueID(v)
	return _u
}

// SetNillableIssueID sets the "issue_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableIssueID(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetIssueID(*v)
	}
	return _u
}

// SetWorktreePath sets the "worktree_path" field.
func (_u *WorkflowUpdate) SetWorktreePath(v string) *WorkflowUpdate {
	_u.mutation.SetWorktreePath(v)
	return _u
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableWorktreePath(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetWorktreePath(*v)
	}
	return _u
}

// SetWorktreeName sets the "worktree_name" field.
func (_u *WorkflowUpdate) SetWorktreeName(v string) *WorkflowUpdate {
	_u.mutation.SetWorktreeName(v)
	return _u
}

// SetNillableWorktreeName sets the "worktree_name" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableWorktreeName(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetWorktreeName(*v)
	}
	return _u
}

// ClearWorktreeName clears the value of the "worktree_name" field.
func (_u *WorkflowUpdate) ClearWorktreeName() *WorkflowUpdate {
	_u.mutation.ClearWorktreeName()
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *WorkflowUpdate) SetProfileID(v string) *WorkflowUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableProfileID(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetWorkflowType sets the "workflow_type" field.
func (_u *WorkflowUpdate) SetWorkflowType(v workflow.WorkflowType) *WorkflowUpdate {
	_u.mutation.SetWorkflowType(v)
	return _u
}

// SetNillableWorkflowType sets the "workflow_type" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableWorkflowType(v *workflow.WorkflowType) *WorkflowUpdate {
	if v != nil {
		_u.SetWorkflowType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowUpdate) SetStatus(v workflow.Status) *WorkflowUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableStatus(v *workflow.Status) *WorkflowUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowUpdate) SetStartedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableStartedAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowUpdate) ClearStartedAt() *WorkflowUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowUpdate) SetCompletedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowUpdate) ClearCompletedAt() *WorkflowUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdate) SetUpdatedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *WorkflowUpdate) SetFailureReason(v string) *WorkflowUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableFailureReason(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *WorkflowUpdate) ClearFailureReason() *WorkflowUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetPlanCache sets the "plan_cache" field.
func (_u *WorkflowUpdate) SetPlanCache(v map[string]interface{}) *WorkflowUpdate {
	_u.mutation.SetPlanCache(v)
	return _u
}

// ClearPlanCache clears the value of the "plan_cache" field.
func (_u *WorkflowUpdate) ClearPlanCache() *WorkflowUpdate {
	_u.mutation.ClearPlanCache()
	return _u
}

// SetIssueCache sets the "issue_cache" field.
func (_u *WorkflowUpdate) SetIssueCache(v map[string]interface{}) *WorkflowUpdate {
	_u.mutation.SetIssueCache(v)
	return _u
}

// ClearIssueCache clears the value of the "issue_cache" field.
func (_u *WorkflowUpdate) ClearIssueCache() *WorkflowUpdate {
	_u.mutation.ClearIssueCache()
	return _u
}

// SetReviewIteration sets the "review_iteration" field.
func (_u *WorkflowUpdate) SetReviewIteration(v int) *WorkflowUpdate {
	_u.mutation.ResetReviewIteration()
	_u.mutation.SetReviewIteration(v)
	return _u
}

// SetNillableReviewIteration sets the "review_iteration" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableReviewIteration(v *int) *WorkflowUpdate {
	if v != nil {
		_u.SetReviewIteration(*v)
	}
	return _u
}

// AddReviewIteration adds value to the "review_iteration" field.
func (_u *WorkflowUpdate) AddReviewIteration(v int) *WorkflowUpdate {
	_u.mutation.AddReviewIteration(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowUpdate) SetPodID(v string) *WorkflowUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillablePodID(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowUpdate) ClearPodID() *WorkflowUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowUpdate) SetLastHeartbeatAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowUpdate) ClearLastHeartbeatAt() *WorkflowUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *WorkflowUpdate) AddEventIDs(ids ...int) *WorkflowUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *WorkflowUpdate) AddEvents(v ...*Event) *WorkflowUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *WorkflowUpdate) AddCheckpointIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *WorkflowUpdate) AddCheckpoints(v ...*Checkpoint) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddTokenUsageIDs adds the "token_usages" edge to the TokenUsage entity by IDs.
func (_u *WorkflowUpdate) AddTokenUsageIDs(ids ...int) *WorkflowUpdate {
	_u.mutation.AddTokenUsageIDs(ids...)
	return _u
}

// AddTokenUsages adds the "token_usages" edges to the TokenUsage entity.
func (_u *WorkflowUpdate) AddTokenUsages(v ...*TokenUsage) *WorkflowUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTokenUsageIDs(ids...)
}

// AddPromptVersionIDs adds the "prompt_versions" edge to the WorkflowPromptVersion entity by IDs.
func (_u *WorkflowUpdate) AddPromptVersionIDs(ids ...int) *WorkflowUpdate {
	_u.mutation.AddPromptVersionIDs(ids...)
	return _u
}

// AddPromptVersions adds the "prompt_versions" edges to the WorkflowPromptVersion entity.
func (_u *WorkflowUpdate) AddPromptVersions(v ...*WorkflowPromptVersion) *WorkflowUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptVersionIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdate) Mutation() *WorkflowMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *WorkflowUpdate) ClearEvents() *WorkflowUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *WorkflowUpdate) RemoveEventIDs(ids ...int) *WorkflowUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *WorkflowUpdate) RemoveEvents(v ...*Event) *WorkflowUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *WorkflowUpdate) ClearCheckpoints() *WorkflowUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *WorkflowUpdate) RemoveCheckpointIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *WorkflowUpdate) RemoveCheckpoints(v ...*Checkpoint) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearTokenUsages clears all "token_usages" edges to the TokenUsage entity.
func (_u *WorkflowUpdate) ClearTokenUsages() *WorkflowUpdate {
	_u.mutation.ClearTokenUsages()
	return _u
}

// RemoveTokenUsageIDs removes the "token_usages" edge to TokenUsage entities by IDs.
func (_u *WorkflowUpdate) RemoveTokenUsageIDs(ids ...int) *WorkflowUpdate {
	_u.mutation.RemoveTokenUsageIDs(ids...)
	return _u
}

// RemoveTokenUsages removes "token_usages" edges to TokenUsage entities.
func (_u *WorkflowUpdate) RemoveTokenUsages(v ...*TokenUsage) *WorkflowUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTokenUsageIDs(ids...)
}

// ClearPromptVersions clears all "prompt_versions" edges to the WorkflowPromptVersion entity.
func (_u *WorkflowUpdate) ClearPromptVersions() *WorkflowUpdate {
	_u.mutation.ClearPromptVersions()
	return _u
}

// RemovePromptVersionIDs removes the "prompt_versions" edge to WorkflowPromptVersion entities by IDs.
func (_u *WorkflowUpdate) RemovePromptVersionIDs(ids ...int) *WorkflowUpdate {
	_u.mutation.RemovePromptVersionIDs(ids...)
	return _u
}

// RemovePromptVersions removes "prompt_versions" edges to WorkflowPromptVersion entities.
func (_u *WorkflowUpdate) RemovePromptVersions(v ...*WorkflowPromptVersion) *WorkflowUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptVersionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdate) check() error {
	if v, ok := _u.mutation.WorkflowType(); ok {
		if err := workflow.WorkflowTypeValidator(v); err != nil {
			return &ValidationError{Name: "workflow_type", err: fmt.Errorf(`ent: validator failed for field "Workflow.workflow_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IssueID(); ok {
		_spec.SetField(workflow.FieldIssueID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorktreePath(); ok {
		_spec.SetField(workflow.FieldWorktreePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorktreeName(); ok {
		_spec.SetField(workflow.FieldWorktreeName, field.TypeString, value)
	}
	if _u.mutation.WorktreeNameCleared() {
		_spec.ClearField(workflow.FieldWorktreeName, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(workflow.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkflowType(); ok {
		_spec.SetField(workflow.FieldWorkflowType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflow.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflow.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflow.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(workflow.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(workflow.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.PlanCache(); ok {
		_spec.SetField(workflow.FieldPlanCache, field.TypeJSON, value)
	}
	if _u.mutation.PlanCacheCleared() {
		_spec.ClearField(workflow.FieldPlanCache, field.TypeJSON)
	}
	if value, ok := _u.mutation.IssueCache(); ok {
		_spec.SetField(workflow.FieldIssueCache, field.TypeJSON, value)
	}
	if _u.mutation.IssueCacheCleared() {
		_spec.ClearField(workflow.FieldIssueCache, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewIteration(); ok {
		_spec.SetField(workflow.FieldReviewIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewIteration(); ok {
		_spec.AddField(workflow.FieldReviewIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflow.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflow.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflow.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflow.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.CheckpointsTable,
			Columns: []string{workflow.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.CheckpointsTable,
			Columns: []string{workflow.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.CheckpointsTable,
			Columns: []string{workflow.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TokenUsagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.TokenUsagesTable,
			Columns: []string{workflow.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTokenUsagesIDs(); len(nodes) > 0 && !_u.mutation.TokenUsagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.TokenUsagesTable,
			Columns: []string{workflow.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TokenUsagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.TokenUsagesTable,
			Columns: []string{workflow.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromptVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PromptVersionsTable,
			Columns: []string{workflow.PromptVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowpromptversion.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptVersionsIDs(); len(nodes) > 0 && !_u.mutation.PromptVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PromptVersionsTable,
			Columns: []string{workflow.PromptVersionsColumn},
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
	if nodes := _u.mutation.PromptVersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PromptVersionsTable,
			Columns: []string{workflow.PromptVersionsColumn},
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
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowUpdateOne is the builder for updating a single Workflow entity.
type WorkflowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowMutation
}

// SetIssueID sets the "issue_id" field.
func (_u *WorkflowUpdateOne) SetIssueID(v string) *WorkflowUpdateOne {
	_u.mutation.SetIssueID(v)
	return _u
}

// SetNillableIssueID sets the "issue_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableIssueID(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetIssueID(*v)
	}
	return _u
}

// SetWorktreePath sets the "worktree_path" field.
func (_u *WorkflowUpdateOne) SetWorktreePath(v string) *WorkflowUpdateOne {
	_u.mutation.SetWorktreePath(v)
	return _u
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableWorktreePath(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetWorktreePath(*v)
	}
	return _u
}

// SetWorktreeName sets the "worktree_name" field.
func (_u *WorkflowUpdateOne) SetWorktreeName(v string) *WorkflowUpdateOne {
	_u.mutation.SetWorktreeName(v)
	return _u
}

// SetNillableWorktreeName sets the "worktree_name" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableWorktreeName(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetWorktreeName(*v)
	}
	return _u
}

// ClearWorktreeName clears the value of the "worktree_name" field.
func (_u *WorkflowUpdateOne) ClearWorktreeName() *WorkflowUpdateOne {
	_u.mutation.ClearWorktreeName()
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *WorkflowUpdateOne) SetProfileID(v string) *WorkflowUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableProfileID(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetWorkflowType sets the "workflow_type" field.
func (_u *WorkflowUpdateOne) SetWorkflowType(v workflow.WorkflowType) *WorkflowUpdateOne {
	_u.mutation.SetWorkflowType(v)
	return _u
}

// SetNillableWorkflowType sets the "workflow_type" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableWorkflowType(v *workflow.WorkflowType) *WorkflowUpdateOne {
	if v != nil {
		_u.SetWorkflowType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowUpdateOne) SetStatus(v workflow.Status) *WorkflowUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableStatus(v *workflow.Status) *WorkflowUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowUpdateOne) SetStartedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowUpdateOne) ClearStartedAt() *WorkflowUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowUpdateOne) SetCompletedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowUpdateOne) ClearCompletedAt() *WorkflowUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdateOne) SetUpdatedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *WorkflowUpdateOne) SetFailureReason(v string) *WorkflowUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableFailureReason(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *WorkflowUpdateOne) ClearFailureReason() *WorkflowUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetPlanCache sets the "plan_cache" field.
func (_u *WorkflowUpdateOne) SetPlanCache(v map[string]interface{}) *WorkflowUpdateOne {
	_u.mutation.SetPlanCache(v)
	return _u
}

// ClearPlanCache clears the value of the "plan_cache" field.
func (_u *WorkflowUpdateOne) ClearPlanCache() *WorkflowUpdateOne {
	_u.mutation.ClearPlanCache()
	return _u
}

// SetIssueCache sets the "issue_cache" field.
func (_u *WorkflowUpdateOne) SetIssueCache(v map[string]interface{}) *WorkflowUpdateOne {
	_u.mutation.SetIssueCache(v)
	return _u
}

// ClearIssueCache clears the value of the "issue_cache" field.
func (_u *WorkflowUpdateOne) ClearIssueCache() *WorkflowUpdateOne {
	_u.mutation.ClearIssueCache()
	return _u
}

// SetReviewIteration sets the "review_iteration" field.
func (_u *WorkflowUpdateOne) SetReviewIteration(v int) *WorkflowUpdateOne {
	_u.mutation.ResetReviewIteration()
	_u.mutation.SetReviewIteration(v)
	return _u
}

// SetNillableReviewIteration sets the "review_iteration" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableReviewIteration(v *int) *WorkflowUpdateOne {
	if v != nil {
		_u.SetReviewIteration(*v)
	}
	return _u
}

// AddReviewIteration adds value to the "review_iteration" field.
func (_u *WorkflowUpdateOne) AddReviewIteration(v int) *WorkflowUpdateOne {
	_u.mutation.AddReviewIteration(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowUpdateOne) SetPodID(v string) *WorkflowUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillablePodID(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowUpdateOne) ClearPodID() *WorkflowUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowUpdateOne) SetLastHeartbeatAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowUpdateOne) ClearLastHeartbeatAt() *WorkflowUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *WorkflowUpdateOne) AddEventIDs(ids ...int) *WorkflowUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *WorkflowUpdateOne) AddEvents(v ...*Event) *WorkflowUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *WorkflowUpdateOne) AddCheckpointIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *WorkflowUpdateOne) AddCheckpoints(v ...*Checkpoint) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddTokenUsageIDs adds the "token_usages" edge to the TokenUsage entity by IDs.
func (_u *WorkflowUpdateOne) AddTokenUsageIDs(ids ...int) *WorkflowUpdateOne {
	_u.mutation.AddTokenUsageIDs(ids...)
	return _u
}

// AddTokenUsages adds the "token_usages" edges to the TokenUsage entity.
func (_u *WorkflowUpdateOne) AddTokenUsages(v ...*TokenUsage) *WorkflowUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTokenUsageIDs(ids...)
}

// AddPromptVersionIDs adds the "prompt_versions" edge to the WorkflowPromptVersion entity by IDs.
func (_u *WorkflowUpdateOne) AddPromptVersionIDs(ids ...int) *WorkflowUpdateOne {
	_u.mutation.AddPromptVersionIDs(ids...)
	return _u
}

// AddPromptVersions adds the "prompt_versions" edges to the WorkflowPromptVersion entity.
func (_u *WorkflowUpdateOne) AddPromptVersions(v ...*WorkflowPromptVersion) *WorkflowUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptVersionIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdateOne) Mutation() *WorkflowMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *WorkflowUpdateOne) ClearEvents() *WorkflowUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *WorkflowUpdateOne) RemoveEventIDs(ids ...int) *WorkflowUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *WorkflowUpdateOne) RemoveEvents(v ...*Event) *WorkflowUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *WorkflowUpdateOne) ClearCheckpoints() *WorkflowUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *WorkflowUpdateOne) RemoveCheckpointIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *WorkflowUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearTokenUsages clears all "token_usages" edges to the TokenUsage entity.
func (_u *WorkflowUpdateOne) ClearTokenUsages() *WorkflowUpdateOne {
	_u.mutation.ClearTokenUsages()
	return _u
}

// RemoveTokenUsageIDs removes the "token_usages" edge to TokenUsage entities by IDs.
func (_u *WorkflowUpdateOne) RemoveTokenUsageIDs(ids ...int) *WorkflowUpdateOne {
	_u.mutation.RemoveTokenUsageIDs(ids...)
	return _u
}

// RemoveTokenUsages removes "token_usages" edges to TokenUsage entities.
func (_u *WorkflowUpdateOne) RemoveTokenUsages(v ...*TokenUsage) *WorkflowUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTokenUsageIDs(ids...)
}

// ClearPromptVersions clears all "prompt_versions" edges to the WorkflowPromptVersion entity.
func (_u *WorkflowUpdateOne) ClearPromptVersions() *WorkflowUpdateOne {
	_u.mutation.ClearPromptVersions()
	return _u
}

// RemovePromptVersionIDs removes the "prompt_versions" edge to WorkflowPromptVersion entities by IDs.
func (_u *WorkflowUpdateOne) RemovePromptVersionIDs(ids ...int) *WorkflowUpdateOne {
	_u.mutation.RemovePromptVersionIDs(ids...)
	return _u
}

// RemovePromptVersions removes "prompt_versions" edges to WorkflowPromptVersion entities.
func (_u *WorkflowUpdateOne) RemovePromptVersions(v ...*WorkflowPromptVersion) *WorkflowUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptVersionIDs(ids...)
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdateOne) Where(ps ...predicate.Workflow) *WorkflowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowUpdateOne) Select(field string, fields ...string) *WorkflowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workflow entity.
func (_u *WorkflowUpdateOne) Save(ctx context.Context) (*Workflow, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdateOne) SaveX(ctx context.Context) *Workflow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdateOne) check() error {
	if v, ok := _u.mutation.WorkflowType(); ok {
		if err := workflow.WorkflowTypeValidator(v); err != nil {
			return &ValidationError{Name: "workflow_type", err: fmt.Errorf(`ent: validator failed for field "Workflow.workflow_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowUpdateOne) sqlSave(ctx context.Context) (_node *Workflow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workflow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflow.FieldID)
		for _, f := range fields {
			if !workflow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflow.FieldID {
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
	if value, ok := _u.mutation.IssueID(); ok {
		_spec.SetField(workflow.FieldIssueID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorktreePath(); ok {
		_spec.SetField(workflow.FieldWorktreePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorktreeName(); ok {
		_spec.SetField(workflow.FieldWorktreeName, field.TypeString, value)
	}
	if _u.mutation.WorktreeNameCleared() {
		_spec.ClearField(workflow.FieldWorktreeName, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(workflow.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkflowType(); ok {
		_spec.SetField(workflow.FieldWorkflowType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflow.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflow.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflow.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(workflow.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(workflow.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.PlanCache(); ok {
		_spec.SetField(workflow.FieldPlanCache, field.TypeJSON, value)
	}
	if _u.mutation.PlanCacheCleared() {
		_spec.ClearField(workflow.FieldPlanCache, field.TypeJSON)
	}
	if value, ok := _u.mutation.IssueCache(); ok {
		_spec.SetField(workflow.FieldIssueCache, field.TypeJSON, value)
	}
	if _u.mutation.IssueCacheCleared() {
		_spec.ClearField(workflow.FieldIssueCache, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewIteration(); ok {
		_spec.SetField(workflow.FieldReviewIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewIteration(); ok {
		_spec.AddField(workflow.FieldReviewIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflow.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflow.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflow.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflow.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.CheckpointsTable,
			Columns: []string{workflow.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.CheckpointsTable,
			Columns: []string{workflow.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.CheckpointsTable,
			Columns: []string{workflow.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TokenUsagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.TokenUsagesTable,
			Columns: []string{workflow.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTokenUsagesIDs(); len(nodes) > 0 && !_u.mutation.TokenUsagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.TokenUsagesTable,
			Columns: []string{workflow.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TokenUsagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.TokenUsagesTable,
			Columns: []string{workflow.TokenUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromptVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PromptVersionsTable,
			Columns: []string{workflow.PromptVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowpromptversion.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptVersionsIDs(); len(nodes) > 0 && !_u.mutation.PromptVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PromptVersionsTable,
			Columns: []string{workflow.PromptVersionsColumn},
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
	if nodes := _u.mutation.PromptVersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PromptVersionsTable,
			Columns: []string{workflow.PromptVersionsColumn},
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
	_node = &Workflow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
