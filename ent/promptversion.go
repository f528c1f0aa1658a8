// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/existential-birds/amelia-sub003/ent/prompt"
	"github.com/existential-birds/amelia-sub003/ent/promptversion"
)

// PromptVersion is the model entity for the PromptVersion schema.
type PromptVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PromptID holds the value of the "prompt_id" field.
	PromptID string `json:"prompt_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PromptVersionQuery when eager-loading is set.
	Edges        PromptVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PromptVersionEdges holds the relations/edges for other nodes in the graph.
type PromptVersionEdges struct {
	// Prompt holds the value of the prompt edge.
	Prompt *Prompt `json:"prompt,omitempty"`
	// WorkflowLinks holds the value of the workflow_links edge.
	WorkflowLinks []*WorkflowPromptVersion `json:"workflow_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PromptOrErr returns the Prompt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PromptVersionEdges) PromptOrErr() (*Prompt, error) {
	if e.Prompt != nil {
		return e.Prompt, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: prompt.Label}
	}
	return nil, &NotLoadedError{edge: "prompt"}
}

// WorkflowLinksOrErr returns the WorkflowLinks value or an error if the edge
// was not loaded in eager-loading.
func (e PromptVersionEdges) WorkflowLinksOrErr() ([]*WorkflowPromptVersion, error) {
	if e.loadedTypes[1] {
		return e.WorkflowLinks, nil
	}
	return nil, &NotLoadedError{edge: "workflow_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PromptVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case promptversion.FieldVersion:
			values[i] = new(sql.NullInt64)
		case promptversion.FieldID, promptversion.FieldPromptID, promptversion.FieldContent:
			values[i] = new(sql.NullString)
		case promptversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PromptVersion fields.
func (_m *PromptVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case promptversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case promptversion.FieldPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_id", values[i])
			} else if value.Valid {
				_m.PromptID = value.String
			}
		case promptversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case promptversion.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case promptversion.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PromptVersion.
// This includes values selected through modifiers, order, etc.
func (_m *PromptVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPrompt queries the "prompt" edge of the PromptVersion entity.
func (_m *PromptVersion) QueryPrompt() *PromptQuery {
	return NewPromptVersionClient(_m.config).QueryPrompt(_m)
}

// QueryWorkflowLinks queries the "workflow_links" edge of the PromptVersion entity.
func (_m *PromptVersion) QueryWorkflowLinks() *WorkflowPromptVersionQuery {
	return NewPromptVersionClient(_m.config).QueryWorkflowLinks(_m)
}

// Update returns a builder for updating this PromptVersion.
// Note that you need to call PromptVersion.Unwrap() before calling this method if this PromptVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PromptVersion) Update() *PromptVersionUpdateOne {
	return NewPromptVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PromptVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PromptVersion) Unwrap() *PromptVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PromptVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PromptVersion) String() string {
	var builder strings.Builder
	builder.WriteString("PromptVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("prompt_id=")
	builder.WriteString(_m.PromptID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PromptVersions is a parsable slice of PromptVersion.
type PromptVersions []*PromptVersion
