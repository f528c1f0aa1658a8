// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/existential-birds/amelia-sub003/ent/promptversion"
	"github.com/existential-birds/amelia-sub003/ent/workflow"
	"github.com/existential-birds/amelia-sub003/ent/workflowpromptversion"
)

// WorkflowPromptVersion is the model entity for the WorkflowPromptVersion schema.
type WorkflowPromptVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// PromptVersionID holds the value of the "prompt_version_id" field.
	PromptVersionID string `json:"prompt_version_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowPromptVersionQuery when eager-loading is set.
	Edges        WorkflowPromptVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowPromptVersionEdges holds the relations/edges for other nodes in the graph.
type WorkflowPromptVersionEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// PromptVersion holds the value of the prompt_version edge.
	PromptVersion *PromptVersion `json:"prompt_version,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowPromptVersionEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// PromptVersionOrErr returns the PromptVersion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowPromptVersionEdges) PromptVersionOrErr() (*PromptVersion, error) {
	if e.PromptVersion != nil {
		return e.PromptVersion, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: promptversion.Label}
	}
	return nil, &NotLoadedError{edge: "prompt_version"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowPromptVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowpromptversion.FieldID:
			values[i] = new(sql.NullInt64)
		case workflowpromptversion.FieldWorkflowID, workflowpromptversion.FieldPromptVersionID:
			values[i] = new(sql.NullString)
		case workflowpromptversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowPromptVersion fields.
func (_m *WorkflowPromptVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowpromptversion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case workflowpromptversion.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case workflowpromptversion.FieldPromptVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version_id", values[i])
			} else if value.Valid {
				_m.PromptVersionID = value.String
			}
		case workflowpromptversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowPromptVersion.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowPromptVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the WorkflowPromptVersion entity.
func (_m *WorkflowPromptVersion) QueryWorkflow() *WorkflowQuery {
	return NewWorkflowPromptVersionClient(_m.config).QueryWorkflow(_m)
}

// QueryPromptVersion queries the "prompt_version" edge of the WorkflowPromptVersion entity.
func (_m *WorkflowPromptVersion) QueryPromptVersion() *PromptVersionQuery {
	return NewWorkflowPromptVersionClient(_m.config).QueryPromptVersion(_m)
}

// Update returns a builder for updating this WorkflowPromptVersion.
// Note that you need to call WorkflowPromptVersion.Unwrap() before calling this method if this WorkflowPromptVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowPromptVersion) Update() *WorkflowPromptVersionUpdateOne {
	return NewWorkflowPromptVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowPromptVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowPromptVersion) Unwrap() *WorkflowPromptVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowPromptVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowPromptVersion) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowPromptVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("prompt_version_id=")
	builder.WriteString(_m.PromptVersionID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowPromptVersions is a parsable slice of WorkflowPromptVersion.
type WorkflowPromptVersions []*WorkflowPromptVersion
