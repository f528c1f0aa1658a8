// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/existential-birds/amelia-sub003/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldID, id))
}

// Tracker applies equality check predicate on the "tracker" field. It's identical to TrackerEQ.
func Tracker(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTracker, v))
}

// WorkingDir applies equality check predicate on the "working_dir" field. It's identical to WorkingDirEQ.
func WorkingDir(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldWorkingDir, v))
}

// PlanOutputDir applies equality check predicate on the "plan_output_dir" field. It's identical to PlanOutputDirEQ.
func PlanOutputDir(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldPlanOutputDir, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// TrackerEQ applies the EQ predicate on the "tracker" field.
func TrackerEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTracker, v))
}

// TrackerNEQ applies the NEQ predicate on the "tracker" field.
func TrackerNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldTracker, v))
}

// TrackerIn applies the In predicate on the "tracker" field.
func TrackerIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldTracker, vs...))
}

// TrackerNotIn applies the NotIn predicate on the "tracker" field.
func TrackerNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldTracker, vs...))
}

// TrackerGT applies the GT predicate on the "tracker" field.
func TrackerGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldTracker, v))
}

// TrackerGTE applies the GTE predicate on the "tracker" field.
func TrackerGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldTracker, v))
}

// TrackerLT applies the LT predicate on the "tracker" field.
func TrackerLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldTracker, v))
}

// TrackerLTE applies the LTE predicate on the "tracker" field.
func TrackerLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldTracker, v))
}

// TrackerContains applies the Contains predicate on the "tracker" field.
func TrackerContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldTracker, v))
}

// TrackerHasPrefix applies the HasPrefix predicate on the "tracker" field.
func TrackerHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldTracker, v))
}

// TrackerHasSuffix applies the HasSuffix predicate on the "tracker" field.
func TrackerHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldTracker, v))
}

// TrackerEqualFold applies the EqualFold predicate on the "tracker" field.
func TrackerEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldTracker, v))
}

// TrackerContainsFold applies the ContainsFold predicate on the "tracker" field.
func TrackerContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldTracker, v))
}

// WorkingDirEQ applies the EQ predicate on the "working_dir" field.
func WorkingDirEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldWorkingDir, v))
}

// WorkingDirNEQ applies the NEQ predicate on the "working_dir" field.
func WorkingDirNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldWorkingDir, v))
}

// WorkingDirIn applies the In predicate on the "working_dir" field.
func WorkingDirIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldWorkingDir, vs...))
}

// WorkingDirNotIn applies the NotIn predicate on the "working_dir" field.
func WorkingDirNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldWorkingDir, vs...))
}

// WorkingDirGT applies the GT predicate on the "working_dir" field.
func WorkingDirGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldWorkingDir, v))
}

// WorkingDirGTE applies the GTE predicate on the "working_dir" field.
func WorkingDirGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldWorkingDir, v))
}

// WorkingDirLT applies the LT predicate on the "working_dir" field.
func WorkingDirLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldWorkingDir, v))
}

// WorkingDirLTE applies the LTE predicate on the "working_dir" field.
func WorkingDirLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldWorkingDir, v))
}

// WorkingDirContains applies the Contains predicate on the "working_dir" field.
func WorkingDirContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldWorkingDir, v))
}

// WorkingDirHasPrefix applies the HasPrefix predicate on the "working_dir" field.
func WorkingDirHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldWorkingDir, v))
}

// WorkingDirHasSuffix applies the HasSuffix predicate on the "working_dir" field.
func WorkingDirHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldWorkingDir, v))
}

// WorkingDirEqualFold applies the EqualFold predicate on the "working_dir" field.
func WorkingDirEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldWorkingDir, v))
}

// WorkingDirContainsFold applies the ContainsFold predicate on the "working_dir" field.
func WorkingDirContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldWorkingDir, v))
}

// PlanOutputDirEQ applies the EQ predicate on the "plan_output_dir" field.
func PlanOutputDirEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldPlanOutputDir, v))
}

// PlanOutputDirNEQ applies the NEQ predicate on the "plan_output_dir" field.
func PlanOutputDirNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldPlanOutputDir, v))
}

// PlanOutputDirIn applies the In predicate on the "plan_output_dir" field.
func PlanOutputDirIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldPlanOutputDir, vs...))
}

// PlanOutputDirNotIn applies the NotIn predicate on the "plan_output_dir" field.
func PlanOutputDirNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldPlanOutputDir, vs...))
}

// PlanOutputDirGT applies the GT predicate on the "plan_output_dir" field.
func PlanOutputDirGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldPlanOutputDir, v))
}

// PlanOutputDirGTE applies the GTE predicate on the "plan_output_dir" field.
func PlanOutputDirGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldPlanOutputDir, v))
}

// PlanOutputDirLT applies the LT predicate on the "plan_output_dir" field.
func PlanOutputDirLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldPlanOutputDir, v))
}

// PlanOutputDirLTE applies the LTE predicate on the "plan_output_dir" field.
func PlanOutputDirLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldPlanOutputDir, v))
}

// PlanOutputDirContains applies the Contains predicate on the "plan_output_dir" field.
func PlanOutputDirContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldPlanOutputDir, v))
}

// PlanOutputDirHasPrefix applies the HasPrefix predicate on the "plan_output_dir" field.
func PlanOutputDirHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldPlanOutputDir, v))
}

// PlanOutputDirHasSuffix applies the HasSuffix predicate on the "plan_output_dir" field.
func PlanOutputDirHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldPlanOutputDir, v))
}

// PlanOutputDirEqualFold applies the EqualFold predicate on the "plan_output_dir" field.
func PlanOutputDirEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldPlanOutputDir, v))
}

// PlanOutputDirContainsFold applies the ContainsFold predicate on the "plan_output_dir" field.
func PlanOutputDirContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldPlanOutputDir, v))
}

// AgentsIsNil applies the IsNil predicate on the "agents" field.
func AgentsIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldAgents))
}

// AgentsNotNil applies the NotNil predicate on the "agents" field.
func AgentsNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldAgents))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
