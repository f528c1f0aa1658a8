// Code generated by ent, DO NOT EDIT.

package workflow

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/existential-birds/amelia-sub003/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldID, id))
}

// IssueID applies equality check predicate on the "issue_id" field. It's identical to IssueIDEQ.
func IssueID(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldIssueID, v))
}

// WorktreePath applies equality check predicate on the "worktree_path" field. It's identical to WorktreePathEQ.
func WorktreePath(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldWorktreePath, v))
}

// WorktreeName applies equality check predicate on the "worktree_name" field. It's identical to WorktreeNameEQ.
func WorktreeName(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldWorktreeName, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldProfileID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCompletedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldUpdatedAt, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldFailureReason, v))
}

// ReviewIteration applies equality check predicate on the "review_iteration" field. It's identical to ReviewIterationEQ.
func ReviewIteration(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldReviewIteration, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// IssueIDEQ applies the EQ predicate on the "issue_id" field.
func IssueIDEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldIssueID, v))
}

// IssueIDNEQ applies the NEQ predicate on the "issue_id" field.
func IssueIDNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldIssueID, v))
}

// IssueIDIn applies the In predicate on the "issue_id" field.
func IssueIDIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldIssueID, vs...))
}

// IssueIDNotIn applies the NotIn predicate on the "issue_id" field.
func IssueIDNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldIssueID, vs...))
}

// IssueIDGT applies the GT predicate on the "issue_id" field.
func IssueIDGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldIssueID, v))
}

// IssueIDGTE applies the GTE predicate on the "issue_id" field.
func IssueIDGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldIssueID, v))
}

// IssueIDLT applies the LT predicate on the "issue_id" field.
func IssueIDLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldIssueID, v))
}

// IssueIDLTE applies the LTE predicate on the "issue_id" field.
func IssueIDLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldIssueID, v))
}

// IssueIDContains applies the Contains predicate on the "issue_id" field.
func IssueIDContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldIssueID, v))
}

// IssueIDHasPrefix applies the HasPrefix predicate on the "issue_id" field.
func IssueIDHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldIssueID, v))
}

// IssueIDHasSuffix applies the HasSuffix predicate on the "issue_id" field.
func IssueIDHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldIssueID, v))
}

// IssueIDEqualFold applies the EqualFold predicate on the "issue_id" field.
func IssueIDEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldIssueID, v))
}

// IssueIDContainsFold applies the ContainsFold predicate on the "issue_id" field.
func IssueIDContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldIssueID, v))
}

// WorktreePathEQ applies the EQ predicate on the "worktree_path" field.
func WorktreePathEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldWorktreePath, v))
}

// WorktreePathNEQ applies the NEQ predicate on the "worktree_path" field.
func WorktreePathNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldWorktreePath, v))
}

// WorktreePathIn applies the In predicate on the "worktree_path" field.
func WorktreePathIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldWorktreePath, vs...))
}

// WorktreePathNotIn applies the NotIn predicate on the "worktree_path" field.
func WorktreePathNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldWorktreePath, vs...))
}

// WorktreePathGT applies the GT predicate on the "worktree_path" field.
func WorktreePathGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldWorktreePath, v))
}

// WorktreePathGTE applies the GTE predicate on the "worktree_path" field.
func WorktreePathGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldWorktreePath, v))
}

// WorktreePathLT applies the LT predicate on the "worktree_path" field.
func WorktreePathLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldWorktreePath, v))
}

// WorktreePathLTE applies the LTE predicate on the "worktree_path" field.
func WorktreePathLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldWorktreePath, v))
}

// WorktreePathContains applies the Contains predicate on the "worktree_path" field.
func WorktreePathContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldWorktreePath, v))
}

// WorktreePathHasPrefix applies the HasPrefix predicate on the "worktree_path" field.
func WorktreePathHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldWorktreePath, v))
}

// WorktreePathHasSuffix applies the HasSuffix predicate on the "worktree_path" field.
func WorktreePathHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldWorktreePath, v))
}

// WorktreePathEqualFold applies the EqualFold predicate on the "worktree_path" field.
func WorktreePathEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldWorktreePath, v))
}

// WorktreePathContainsFold applies the ContainsFold predicate on the "worktree_path" field.
func WorktreePathContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldWorktreePath, v))
}

// WorktreeNameEQ applies the EQ predicate on the "worktree_name" field.
func WorktreeNameEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldWorktreeName, v))
}

// WorktreeNameNEQ applies the NEQ predicate on the "worktree_name" field.
func WorktreeNameNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldWorktreeName, v))
}

// WorktreeNameIn applies the In predicate on the "worktree_name" field.
func WorktreeNameIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldWorktreeName, vs...))
}

// WorktreeNameNotIn applies the NotIn predicate on the "worktree_name" field.
func WorktreeNameNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldWorktreeName, vs...))
}

// WorktreeNameGT applies the GT predicate on the "worktree_name" field.
func WorktreeNameGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldWorktreeName, v))
}

// WorktreeNameGTE applies the GTE predicate on the "worktree_name" field.
func WorktreeNameGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldWorktreeName, v))
}

// WorktreeNameLT applies the LT predicate on the "worktree_name" field.
func WorktreeNameLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldWorktreeName, v))
}

// WorktreeNameLTE applies the LTE predicate on the "worktree_name" field.
func WorktreeNameLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldWorktreeName, v))
}

// WorktreeNameContains applies the Contains predicate on the "worktree_name" field.
func WorktreeNameContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldWorktreeName, v))
}

// WorktreeNameHasPrefix applies the HasPrefix predicate on the "worktree_name" field.
func WorktreeNameHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldWorktreeName, v))
}

// WorktreeNameHasSuffix applies the HasSuffix predicate on the "worktree_name" field.
func WorktreeNameHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldWorktreeName, v))
}

// WorktreeNameIsNil applies the IsNil predicate on the "worktree_name" field.
func WorktreeNameIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldWorktreeName))
}

// WorktreeNameNotNil applies the NotNil predicate on the "worktree_name" field.
func WorktreeNameNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldWorktreeName))
}

// WorktreeNameEqualFold applies the EqualFold predicate on the "worktree_name" field.
func WorktreeNameEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldWorktreeName, v))
}

// WorktreeNameContainsFold applies the ContainsFold predicate on the "worktree_name" field.
func WorktreeNameContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldWorktreeName, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldProfileID, v))
}

// ProfileIDContains applies the Contains predicate on the "profile_id" field.
func ProfileIDContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldProfileID, v))
}

// ProfileIDHasPrefix applies the HasPrefix predicate on the "profile_id" field.
func ProfileIDHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldProfileID, v))
}

// ProfileIDHasSuffix applies the HasSuffix predicate on the "profile_id" field.
func ProfileIDHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldProfileID, v))
}

// ProfileIDEqualFold applies the EqualFold predicate on the "profile_id" field.
func ProfileIDEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldProfileID, v))
}

// ProfileIDContainsFold applies the ContainsFold predicate on the "profile_id" field.
func ProfileIDContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldProfileID, v))
}

// WorkflowTypeEQ applies the EQ predicate on the "workflow_type" field.
func WorkflowTypeEQ(v WorkflowType) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldWorkflowType, v))
}

// WorkflowTypeNEQ applies the NEQ predicate on the "workflow_type" field.
func WorkflowTypeNEQ(v WorkflowType) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldWorkflowType, v))
}

// WorkflowTypeIn applies the In predicate on the "workflow_type" field.
func WorkflowTypeIn(vs ...WorkflowType) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldWorkflowType, vs...))
}

// WorkflowTypeNotIn applies the NotIn predicate on the "workflow_type" field.
func WorkflowTypeNotIn(vs ...WorkflowType) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldWorkflowType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldCompletedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldUpdatedAt, v))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldFailureReason, v))
}

// PlanCacheIsNil applies the IsNil predicate on the "plan_cache" field.
func PlanCacheIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldPlanCache))
}

// PlanCacheNotNil applies the NotNil predicate on the "plan_cache" field.
func PlanCacheNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldPlanCache))
}

// IssueCacheIsNil applies the IsNil predicate on the "issue_cache" field.
func IssueCacheIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldIssueCache))
}

// IssueCacheNotNil applies the NotNil predicate on the "issue_cache" field.
func IssueCacheNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldIssueCache))
}

// ReviewIterationEQ applies the EQ predicate on the "review_iteration" field.
func ReviewIterationEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldReviewIteration, v))
}

// ReviewIterationNEQ applies the NEQ predicate on the "review_iteration" field.
func ReviewIterationNEQ(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldReviewIteration, v))
}

// ReviewIterationIn applies the In predicate on the "review_iteration" field.
func ReviewIterationIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldReviewIteration, vs...))
}

// ReviewIterationNotIn applies the NotIn predicate on the "review_iteration" field.
func ReviewIterationNotIn(vs ...int) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldReviewIteration, vs...))
}

// ReviewIterationGT applies the GT predicate on the "review_iteration" field.
func ReviewIterationGT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldReviewIteration, v))
}

// ReviewIterationGTE applies the GTE predicate on the "review_iteration" field.
func ReviewIterationGTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldReviewIteration, v))
}

// ReviewIterationLT applies the LT predicate on the "review_iteration" field.
func ReviewIterationLT(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldReviewIteration, v))
}

// ReviewIterationLTE applies the LTE predicate on the "review_iteration" field.
func ReviewIterationLTE(v int) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldReviewIteration, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.Checkpoint) predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTokenUsages applies the HasEdge predicate on the "token_usages" edge.
func HasTokenUsages() predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TokenUsagesTable, TokenUsagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTokenUsagesWith applies the HasEdge predicate on the "token_usages" edge with a given conditions (other predicates).
func HasTokenUsagesWith(preds ...predicate.TokenUsage) predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := newTokenUsagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPromptVersions applies the HasEdge predicate on the "prompt_versions" edge.
func HasPromptVersions() predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PromptVersionsTable, PromptVersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPromptVersionsWith applies the HasEdge predicate on the "prompt_versions" edge with a given conditions (other predicates).
func HasPromptVersionsWith(preds ...predicate.WorkflowPromptVersion) predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := newPromptVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.NotPredicates(p))
}
