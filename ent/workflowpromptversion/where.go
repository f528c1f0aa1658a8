// Code generated by ent, DO NOT EDIT.

package workflowpromptversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/existential-birds/amelia-sub003/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldLTE(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldEQ(FieldWorkflowID, v))
}

// PromptVersionID applies equality check predicate on the "prompt_version_id" field. It's identical to PromptVersionIDEQ.
func PromptVersionID(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldEQ(FieldPromptVersionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldContainsFold(FieldWorkflowID, v))
}

// PromptVersionIDEQ applies the EQ predicate on the "prompt_version_id" field.
func PromptVersionIDEQ(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldEQ(FieldPromptVersionID, v))
}

// PromptVersionIDNEQ applies the NEQ predicate on the "prompt_version_id" field.
func PromptVersionIDNEQ(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldNEQ(FieldPromptVersionID, v))
}

// PromptVersionIDIn applies the In predicate on the "prompt_version_id" field.
func PromptVersionIDIn(vs ...string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldIn(FieldPromptVersionID, vs...))
}

// PromptVersionIDNotIn applies the NotIn predicate on the "prompt_version_id" field.
func PromptVersionIDNotIn(vs ...string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldNotIn(FieldPromptVersionID, vs...))
}

// PromptVersionIDGT applies the GT predicate on the "prompt_version_id" field.
func PromptVersionIDGT(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldGT(FieldPromptVersionID, v))
}

// PromptVersionIDGTE applies the GTE predicate on the "prompt_version_id" field.
func PromptVersionIDGTE(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldGTE(FieldPromptVersionID, v))
}

// PromptVersionIDLT applies the LT predicate on the "prompt_version_id" field.
func PromptVersionIDLT(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldLT(FieldPromptVersionID, v))
}

// PromptVersionIDLTE applies the LTE predicate on the "prompt_version_id" field.
func PromptVersionIDLTE(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldLTE(FieldPromptVersionID, v))
}

// PromptVersionIDContains applies the Contains predicate on the "prompt_version_id" field.
func PromptVersionIDContains(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldContains(FieldPromptVersionID, v))
}

// PromptVersionIDHasPrefix applies the HasPrefix predicate on the "prompt_version_id" field.
func PromptVersionIDHasPrefix(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldHasPrefix(FieldPromptVersionID, v))
}

// PromptVersionIDHasSuffix applies the HasSuffix predicate on the "prompt_version_id" field.
func PromptVersionIDHasSuffix(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldHasSuffix(FieldPromptVersionID, v))
}

// PromptVersionIDEqualFold applies the EqualFold predicate on the "prompt_version_id" field.
func PromptVersionIDEqualFold(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldEqualFold(FieldPromptVersionID, v))
}

// PromptVersionIDContainsFold applies the ContainsFold predicate on the "prompt_version_id" field.
func PromptVersionIDContainsFold(v string) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldContainsFold(FieldPromptVersionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWorkflow applies the HasEdge predicate on the "workflow" edge.
func HasWorkflow() predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkflowWith applies the HasEdge predicate on the "workflow" edge with a given conditions (other predicates).
func HasWorkflowWith(preds ...predicate.Workflow) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(func(s *sql.Selector) {
		step := newWorkflowStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPromptVersion applies the HasEdge predicate on the "prompt_version" edge.
func HasPromptVersion() predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PromptVersionTable, PromptVersionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPromptVersionWith applies the HasEdge predicate on the "prompt_version" edge with a given conditions (other predicates).
func HasPromptVersionWith(preds ...predicate.PromptVersion) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(func(s *sql.Selector) {
		step := newPromptVersionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowPromptVersion) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowPromptVersion) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowPromptVersion) predicate.WorkflowPromptVersion {
	return predicate.WorkflowPromptVersion(sql.NotPredicates(p))
}
