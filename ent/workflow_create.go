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
	"github.com/existential-birds/amelia-sub003/ent/checkpoint"
	"github.com/existential-birds/amelia-sub003/ent/event"
	"github.com/existential-birds/amelia-sub003/ent/tokenusage"
	"github.com/existential-birds/amelia-sub003/ent/workflow"
	"github.com/existential-birds/amelia-sub003/ent/workflowpromptversion"
)

// WorkflowCreate is the builder for creating a Workflow entity.
type WorkflowCreate struct {
	config
	mutation *WorkflowMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIssueID sets the "issue_id" field.
func (_c *WorkflowCreate) SetIssueID(v string) *WorkflowCreate {
	_c.mutation.SetIssueID(v)
	return _c
}

// SetWorktreePath sets the "worktree_path" field.
func (_c *WorkflowCreate) SetWorktreePath(v string) *WorkflowCreate {
	_c.mutation.SetWorktreePath(v)
	return _c
}

// SetWorktreeName sets the "worktree_name" field.
func (_c *WorkflowCreate) SetWorktreeName(v string) *WorkflowCreate {
	_c.mutation.SetWorktreeName(v)
	return _c
}

// SetNillableWorktreeName sets the "worktree_name" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableWorktreeName(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetWorktreeName(*v)
	}
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *WorkflowCreate) SetProfileID(v string) *WorkflowCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetWorkflowType sets the "workflow_type" field.
func (_c *WorkflowCreate) SetWorkflowType(v workflow.WorkflowType) *WorkflowCreate {
	_c.mutation.SetWorkflowType(v)
	return _c
}

// SetNillableWorkflowType sets the "workflow_type" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableWorkflowType(v *workflow.WorkflowType) *WorkflowCreate {
	if v != nil {
		_c.SetWorkflowType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowCreate) SetStatus(v workflow.Status) *WorkflowCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableStatus(v *workflow.Status) *WorkflowCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowCreate) SetCreatedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCreatedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkflowCreate) SetStartedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableStartedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WorkflowCreate) SetCompletedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCompletedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowCreate) SetUpdatedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *WorkflowCreate) SetFailureReason(v string) *WorkflowCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableFailureReason(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetPlanCache sets the "plan_cache" field.
func (_c *WorkflowCreate) SetPlanCache(v map[string]interface{}) *WorkflowCreate {
	_c.mutation.SetPlanCache(v)
	return _c
}

// SetIssueCache sets the "issue_cache" field.
func (_c *WorkflowCreate) SetIssueCache(v map[string]interface{}) *WorkflowCreate {
	_c.mutation.SetIssueCache(v)
	return _c
}

// SetReviewIteration sets the "review_iteration" field.
func (_c *WorkflowCreate) SetReviewIteration(v int) *WorkflowCreate {
	_c.mutation.SetReviewIteration(v)
	return _c
}

// SetNillableReviewIteration sets the "review_iteration" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableReviewIteration(v *int) *WorkflowCreate {
	if v != nil {
		_c.SetReviewIteration(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *WorkflowCreate) SetPodID(v string) *WorkflowCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillablePodID(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *WorkflowCreate) SetLastHeartbeatAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowCreate) SetID(v string) *WorkflowCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *WorkflowCreate) AddEventIDs(ids ...int) *WorkflowCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *WorkflowCreate) AddEvents(v ...*Event) *WorkflowCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *WorkflowCreate) AddCheckpointIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *WorkflowCreate) AddCheckpoints(v ...*Checkpoint) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// AddTokenUsageIDs adds the "token_usages" edge to the TokenUsage entity by IDs.
func (_c *WorkflowCreate) AddTokenUsageIDs(ids ...int) *WorkflowCreate {
	_c.mutation.AddTokenUsageIDs(ids...)
	return _c
}

// AddTokenUsages adds the "token_usages" edges to the TokenUsage entity.
func (_c *WorkflowCreate) AddTokenUsages(v ...*TokenUsage) *WorkflowCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTokenUsageIDs(ids...)
}

// AddPromptVersionIDs adds the "prompt_versions" edge to the WorkflowPromptVersion entity by IDs.
func (_c *WorkflowCreate) AddPromptVersionIDs(ids ...int) *WorkflowCreate {
	_c.mutation.AddPromptVersionIDs(ids...)
	return _c
}

// AddPromptVersions adds the "prompt_versions" edges to the WorkflowPromptVersion entity.
func (_c *WorkflowCreate) AddPromptVersions(v ...*WorkflowPromptVersion) *WorkflowCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPromptVersionIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_c *WorkflowCreate) Mutation() *WorkflowMutation {
	return _c.mutation
}

// Save creates the Workflow in the database.
func (_c *WorkflowCreate) Save(ctx context.Context) (*Workflow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowCreate) SaveX(ctx context.Context) *Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowCreate) defaults() {
	if _, ok := _c.mutation.WorkflowType(); !ok {
		v := workflow.DefaultWorkflowType
		_c.mutation.SetWorkflowType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := workflow.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflow.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ReviewIteration(); !ok {
		v := workflow.DefaultReviewIteration
		_c.mutation.SetReviewIteration(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowCreate) check() error {
	if _, ok := _c.mutation.IssueID(); !ok {
		return &ValidationError{Name: "issue_id", err: errors.New(`ent: missing required field "Workflow.issue_id"`)}
	}
	if _, ok := _c.mutation.WorktreePath(); !ok {
		return &ValidationError{Name: "worktree_path", err: errors.New(`ent: missing required field "Workflow.worktree_path"`)}
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Workflow.profile_id"`)}
	}
	if _, ok := _c.mutation.WorkflowType(); !ok {
		return &ValidationError{Name: "workflow_type", err: errors.New(`ent: missing required field "Workflow.workflow_type"`)}
	}
	if v, ok := _c.mutation.WorkflowType(); ok {
		if err := workflow.WorkflowTypeValidator(v); err != nil {
			return &ValidationError{Name: "workflow_type", err: fmt.Errorf(`ent: validator failed for field "Workflow.workflow_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Workflow.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Workflow.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Workflow.updated_at"`)}
	}
	if _, ok := _c.mutation.ReviewIteration(); !ok {
		return &ValidationError{Name: "review_iteration", err: errors.New(`ent: missing required field "Workflow.review_iteration"`)}
	}
	return nil
}

func (_c *WorkflowCreate) sqlSave(ctx context.Context) (*Workflow, error) {
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
			return nil, fmt.Errorf("unexpected Workflow.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowCreate) createSpec() (*Workflow, *sqlgraph.CreateSpec) {
	var (
		_node = &Workflow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflow.Table, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IssueID(); ok {
		_spec.SetField(workflow.FieldIssueID, field.TypeString, value)
		_node.IssueID = value
	}
	if value, ok := _c.mutation.WorktreePath(); ok {
		_spec.SetField(workflow.FieldWorktreePath, field.TypeString, value)
		_node.WorktreePath = value
	}
	if value, ok := _c.mutation.WorktreeName(); ok {
		_spec.SetField(workflow.FieldWorktreeName, field.TypeString, value)
		_node.WorktreeName = value
	}
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(workflow.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.WorkflowType(); ok {
		_spec.SetField(workflow.FieldWorkflowType, field.TypeEnum, value)
		_node.WorkflowType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workflow.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(workflow.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.PlanCache(); ok {
		_spec.SetField(workflow.FieldPlanCache, field.TypeJSON, value)
		_node.PlanCache = value
	}
	if value, ok := _c.mutation.IssueCache(); ok {
		_spec.SetField(workflow.FieldIssueCache, field.TypeJSON, value)
		_node.IssueCache = value
	}
	if value, ok := _c.mutation.ReviewIteration(); ok {
		_spec.SetField(workflow.FieldReviewIteration, field.TypeInt, value)
		_node.ReviewIteration = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(workflow.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflow.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TokenUsagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PromptVersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workflow.Create().
//		SetIssueID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowUpsert) {
//			SetIssueID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowCreate) OnConflict(opts ...sql.ConflictOption) *WorkflowUpsertOne {
	_c.conflict = opts
	return &WorkflowUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowCreate) OnConflictColumns(columns ...string) *WorkflowUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowUpsertOne{
		create: _c,
	}
}

type (
	// WorkflowUpsertOne is the builder for "upsert"-ing
	//  one Workflow node.
	WorkflowUpsertOne struct {
		create *WorkflowCreate
	}

	// WorkflowUpsert is the "OnConflict" setter.
	WorkflowUpsert struct {
		*sql.UpdateSet
	}
)

// SetIssueID sets the "issue_id" field.
func (u *WorkflowUpsert) SetIssueID(v string) *WorkflowUpsert {
	u.Set(workflow.FieldIssueID, v)
	return u
}

// UpdateIssueID sets the "issue_id" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateIssueID() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldIssueID)
	return u
}

// SetWorktreePath sets the "worktree_path" field.
func (u *WorkflowUpsert) SetWorktreePath(v string) *WorkflowUpsert {
	u.Set(workflow.FieldWorktreePath, v)
	return u
}

// UpdateWorktreePath sets the "worktree_path" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateWorktreePath() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldWorktreePath)
	return u
}

// SetWorktreeName sets the "worktree_name" field.
func (u *WorkflowUpsert) SetWorktreeName(v string) *WorkflowUpsert {
	u.Set(workflow.FieldWorktreeName, v)
	return u
}

// UpdateWorktreeName sets the "worktree_name" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateWorktreeName() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldWorktreeName)
	return u
}

// ClearWorktreeName clears the value of the "worktree_name" field.
func (u *WorkflowUpsert) ClearWorktreeName() *WorkflowUpsert {
	u.SetNull(workflow.FieldWorktreeName)
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *WorkflowUpsert) SetProfileID(v string) *WorkflowUpsert {
	u.Set(workflow.FieldProfileID, v)
	return u
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateProfileID() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldProfileID)
	return u
}

// SetWorkflowType sets the "workflow_type" field.
func (u *WorkflowUpsert) SetWorkflowType(v workflow.WorkflowType) *WorkflowUpsert {
	u.Set(workflow.FieldWorkflowType, v)
	return u
}

// UpdateWorkflowType sets the "workflow_type" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateWorkflowType() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldWorkflowType)
	return u
}

// SetStatus sets the "status" field.
func (u *WorkflowUpsert) SetStatus(v workflow.Status) *WorkflowUpsert {
	u.Set(workflow.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateStatus() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowUpsert) SetStartedAt(v time.Time) *WorkflowUpsert {
	u.Set(workflow.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateStartedAt() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *WorkflowUpsert) ClearStartedAt() *WorkflowUpsert {
	u.SetNull(workflow.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowUpsert) SetCompletedAt(v time.Time) *WorkflowUpsert {
	u.Set(workflow.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateCompletedAt() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowUpsert) ClearCompletedAt() *WorkflowUpsert {
	u.SetNull(workflow.FieldCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowUpsert) SetUpdatedAt(v time.Time) *WorkflowUpsert {
	u.Set(workflow.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateUpdatedAt() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldUpdatedAt)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *WorkflowUpsert) SetFailureReason(v string) *WorkflowUpsert {
	u.Set(workflow.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateFailureReason() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldFailureReason)
	return u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *WorkflowUpsert) ClearFailureReason() *WorkflowUpsert {
	u.SetNull(workflow.FieldFailureReason)
	return u
}

// SetPlanCache sets the "plan_cache" field.
func (u *WorkflowUpsert) SetPlanCache(v map[string]interface{}) *WorkflowUpsert {
	u.Set(workflow.FieldPlanCache, v)
	return u
}

// UpdatePlanCache sets the "plan_cache" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdatePlanCache() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldPlanCache)
	return u
}

// ClearPlanCache clears the value of the "plan_cache" field.
func (u *WorkflowUpsert) ClearPlanCache() *WorkflowUpsert {
	u.SetNull(workflow.FieldPlanCache)
	return u
}

// SetIssueCache sets the "issue_cache" field.
func (u *WorkflowUpsert) SetIssueCache(v map[string]interface{}) *WorkflowUpsert {
	u.Set(workflow.FieldIssueCache, v)
	return u
}

// UpdateIssueCache sets the "issue_cache" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateIssueCache() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldIssueCache)
	return u
}

// ClearIssueCache clears the value of the "issue_cache" field.
func (u *WorkflowUpsert) ClearIssueCache() *WorkflowUpsert {
	u.SetNull(workflow.FieldIssueCache)
	return u
}

// SetReviewIteration sets the "review_iteration" field.
func (u *WorkflowUpsert) SetReviewIteration(v int) *WorkflowUpsert {
	u.Set(workflow.FieldReviewIteration, v)
	return u
}

// UpdateReviewIteration sets the "review_iteration" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateReviewIteration() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldReviewIteration)
	return u
}

// AddReviewIteration adds v to the "review_iteration" field.
func (u *WorkflowUpsert) AddReviewIteration(v int) *WorkflowUpsert {
	u.Add(workflow.FieldReviewIteration, v)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowUpsert) SetPodID(v string) *WorkflowUpsert {
	u.Set(workflow.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdatePodID() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowUpsert) ClearPodID() *WorkflowUpsert {
	u.SetNull(workflow.FieldPodID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *WorkflowUpsert) SetLastHeartbeatAt(v time.Time) *WorkflowUpsert {
	u.Set(workflow.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateLastHeartbeatAt() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *WorkflowUpsert) ClearLastHeartbeatAt() *WorkflowUpsert {
	u.SetNull(workflow.FieldLastHeartbeatAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflow.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowUpsertOne) UpdateNewValues() *WorkflowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workflow.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workflow.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workflow.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkflowUpsertOne) Ignore() *WorkflowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowUpsertOne) DoNothing() *WorkflowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowCreate.OnConflict
// documentation for more info.
func (u *WorkflowUpsertOne) Update(set func(*WorkflowUpsert)) *WorkflowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowUpsert{UpdateSet: update})
	}))
	return u
}

// SetIssueID sets the "issue_id" field.
func (u *WorkflowUpsertOne) SetIssueID(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetIssueID(v)
	})
}

// UpdateIssueID sets the "issue_id" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateIssueID() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateIssueID()
	})
}

// SetWorktreePath sets the "worktree_path" field.
func (u *WorkflowUpsertOne) SetWorktreePath(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetWorktreePath(v)
	})
}

// UpdateWorktreePath sets the "worktree_path" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateWorktreePath() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateWorktreePath()
	})
}

// SetWorktreeName sets the "worktree_name" field.
func (u *WorkflowUpsertOne) SetWorktreeName(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetWorktreeName(v)
	})
}

// UpdateWorktreeName sets the "worktree_name" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateWorktreeName() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateWorktreeName()
	})
}

// ClearWorktreeName clears the value of the "worktree_name" field.
func (u *WorkflowUpsertOne) ClearWorktreeName() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearWorktreeName()
	})
}

// SetProfileID sets the "profile_id" field.
func (u *WorkflowUpsertOne) SetProfileID(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateProfileID() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateProfileID()
	})
}

// SetWorkflowType sets the "workflow_type" field.
func (u *WorkflowUpsertOne) SetWorkflowType(v workflow.WorkflowType) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetWorkflowType(v)
	})
}

// UpdateWorkflowType sets the "workflow_type" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateWorkflowType() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateWorkflowType()
	})
}

// SetStatus sets the "status" field.
func (u *WorkflowUpsertOne) SetStatus(v workflow.Status) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateStatus() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowUpsertOne) SetStartedAt(v time.Time) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateStartedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *WorkflowUpsertOne) ClearStartedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowUpsertOne) SetCompletedAt(v time.Time) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateCompletedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowUpsertOne) ClearCompletedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowUpsertOne) SetUpdatedAt(v time.Time) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateUpdatedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *WorkflowUpsertOne) SetFailureReason(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateFailureReason() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *WorkflowUpsertOne) ClearFailureReason() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearFailureReason()
	})
}

// SetPlanCache sets the "plan_cache" field.
func (u *WorkflowUpsertOne) SetPlanCache(v map[string]interface{}) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetPlanCache(v)
	})
}

// UpdatePlanCache sets the "plan_cache" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdatePlanCache() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdatePlanCache()
	})
}

// ClearPlanCache clears the value of the "plan_cache" field.
func (u *WorkflowUpsertOne) ClearPlanCache() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearPlanCache()
	})
}

// SetIssueCache sets the "issue_cache" field.
func (u *WorkflowUpsertOne) SetIssueCache(v map[string]interface{}) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetIssueCache(v)
	})
}

// UpdateIssueCache sets the "issue_cache" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateIssueCache() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateIssueCache()
	})
}

// ClearIssueCache clears the value of the "issue_cache" field.
func (u *WorkflowUpsertOne) ClearIssueCache() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearIssueCache()
	})
}

// SetReviewIteration sets the "review_iteration" field.
func (u *WorkflowUpsertOne) SetReviewIteration(v int) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetReviewIteration(v)
	})
}

// AddReviewIteration adds v to the "review_iteration" field.
func (u *WorkflowUpsertOne) AddReviewIteration(v int) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.AddReviewIteration(v)
	})
}

// UpdateReviewIteration sets the "review_iteration" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateReviewIteration() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateReviewIteration()
	})
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowUpsertOne) SetPodID(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdatePodID() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowUpsertOne) ClearPodID() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *WorkflowUpsertOne) SetLastHeartbeatAt(v time.Time) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateLastHeartbeatAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *WorkflowUpsertOne) ClearLastHeartbeatAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// Exec executes the query.
func (u *WorkflowUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkflowUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkflowUpsertOne.ID is not supported by MySQL driver. Use WorkflowUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkflowUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkflowCreateBulk is the builder for creating many Workflow entities in bulk.
type WorkflowCreateBulk struct {
	config
	err      error
	builders []*WorkflowCreate
	conflict []sql.ConflictOption
}

// Save creates the Workflow entities in the database.
func (_c *WorkflowCreateBulk) Save(ctx context.Context) ([]*Workflow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workflow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowMutation)
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
func (_c *WorkflowCreateBulk) SaveX(ctx context.Context) []*Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workflow.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowUpsert) {
//			SetIssueID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkflowUpsertBulk {
	_c.conflict = opts
	return &WorkflowUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowCreateBulk) OnConflictColumns(columns ...string) *WorkflowUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowUpsertBulk{
		create: _c,
	}
}

// WorkflowUpsertBulk is the builder for "upsert"-ing
// a bulk of Workflow nodes.
type WorkflowUpsertBulk struct {
	create *WorkflowCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflow.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowUpsertBulk) UpdateNewValues() *WorkflowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workflow.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workflow.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkflowUpsertBulk) Ignore() *WorkflowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowUpsertBulk) DoNothing() *WorkflowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowCreateBulk.OnConflict
// documentation for more info.
func (u *WorkflowUpsertBulk) Update(set func(*WorkflowUpsert)) *WorkflowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowUpsert{UpdateSet: update})
	}))
	return u
}

// SetIssueID sets the "issue_id" field.
func (u *WorkflowUpsertBulk) SetIssueID(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetIssueID(v)
	})
}

// UpdateIssueID sets the "issue_id" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateIssueID() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateIssueID()
	})
}

// SetWorktreePath sets the "worktree_path" field.
func (u *WorkflowUpsertBulk) SetWorktreePath(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetWorktreePath(v)
	})
}

// UpdateWorktreePath sets the "worktree_path" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateWorktreePath() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateWorktreePath()
	})
}

// SetWorktreeName sets the "worktree_name" field.
func (u *WorkflowUpsertBulk) SetWorktreeName(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetWorktreeName(v)
	})
}

// UpdateWorktreeName sets the "worktree_name" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateWorktreeName() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateWorktreeName()
	})
}

// ClearWorktreeName clears the value of the "worktree_name" field.
func (u *WorkflowUpsertBulk) ClearWorktreeName() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearWorktreeName()
	})
}

// SetProfileID sets the "profile_id" field.
func (u *WorkflowUpsertBulk) SetProfileID(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateProfileID() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateProfileID()
	})
}

// SetWorkflowType sets the "workflow_type" field.
func (u *WorkflowUpsertBulk) SetWorkflowType(v workflow.WorkflowType) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetWorkflowType(v)
	})
}

// UpdateWorkflowType sets the "workflow_type" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateWorkflowType() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateWorkflowType()
	})
}

// SetStatus sets the "status" field.
func (u *WorkflowUpsertBulk) SetStatus(v workflow.Status) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateStatus() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowUpsertBulk) SetStartedAt(v time.Time) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateStartedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *WorkflowUpsertBulk) ClearStartedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowUpsertBulk) SetCompletedAt(v time.Time) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateCompletedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowUpsertBulk) ClearCompletedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowUpsertBulk) SetUpdatedAt(v time.Time) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateUpdatedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *WorkflowUpsertBulk) SetFailureReason(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateFailureReason() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *WorkflowUpsertBulk) ClearFailureReason() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearFailureReason()
	})
}

// SetPlanCache sets the "plan_cache" field.
func (u *WorkflowUpsertBulk) SetPlanCache(v map[string]interface{}) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetPlanCache(v)
	})
}

// UpdatePlanCache sets the "plan_cache" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdatePlanCache() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdatePlanCache()
	})
}

// ClearPlanCache clears the value of the "plan_cache" field.
func (u *WorkflowUpsertBulk) ClearPlanCache() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearPlanCache()
	})
}

// SetIssueCache sets the "issue_cache" field.
func (u *WorkflowUpsertBulk) SetIssueCache(v map[string]interface{}) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetIssueCache(v)
	})
}

// UpdateIssueCache sets the "issue_cache" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateIssueCache() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateIssueCache()
	})
}

// ClearIssueCache clears the value of the "issue_cache" field.
func (u *WorkflowUpsertBulk) ClearIssueCache() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearIssueCache()
	})
}

// SetReviewIteration sets the "review_iteration" field.
func (u *WorkflowUpsertBulk) SetReviewIteration(v int) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetReviewIteration(v)
	})
}

// AddReviewIteration adds v to the "review_iteration" field.
func (u *WorkflowUpsertBulk) AddReviewIteration(v int) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.AddReviewIteration(v)
	})
}

// UpdateReviewIteration sets the "review_iteration" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateReviewIteration() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateReviewIteration()
	})
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowUpsertBulk) SetPodID(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdatePodID() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowUpsertBulk) ClearPodID() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *WorkflowUpsertBulk) SetLastHeartbeatAt(v time.Time) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateLastHeartbeatAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *WorkflowUpsertBulk) ClearLastHeartbeatAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// Exec executes the query.
func (u *WorkflowUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkflowCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
