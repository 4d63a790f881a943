// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"crewpulse.io/crewpulse/ent/shift"
	"crewpulse.io/crewpulse/ent/shiftswaprequest"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// ShiftSwapRequest is the model entity for the ShiftSwapRequest schema.
type ShiftSwapRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Status holds the value of the "status" field.
	Status shiftswaprequest.Status `json:"status,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// RespondedBy holds the value of the "responded_by" field.
	RespondedBy string `json:"responded_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ShiftSwapRequestQuery when eager-loading is set.
	Edges               ShiftSwapRequestEdges `json:"edges"`
	shift_swap_requests *string
	user_swap_requests  *string
	user_swap_targets   *string
	selectValues        sql.SelectValues
}

// ShiftSwapRequestEdges holds the relations/edges for other nodes in the graph.
type ShiftSwapRequestEdges struct {
	// Requester holds the value of the requester edge.
	Requester *User `json:"requester,omitempty"`
	// Target holds the value of the target edge.
	Target *User `json:"target,omitempty"`
	// Shift holds the value of the shift edge.
	Shift *Shift `json:"shift,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// RequesterOrErr returns the Requester value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ShiftSwapRequestEdges) RequesterOrErr() (*User, error) {
	if e.Requester != nil {
		return e.Requester, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "requester"}
}

// TargetOrErr returns the Target value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ShiftSwapRequestEdges) TargetOrErr() (*User, error) {
	if e.Target != nil {
		return e.Target, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "target"}
}

// ShiftOrErr returns the Shift value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ShiftSwapRequestEdges) ShiftOrErr() (*Shift, error) {
	if e.Shift != nil {
		return e.Shift, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: shift.Label}
	}
	return nil, &NotLoadedError{edge: "shift"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ShiftSwapRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case shiftswaprequest.FieldID, shiftswaprequest.FieldStatus, shiftswaprequest.FieldReason, shiftswaprequest.FieldRespondedBy:
			values[i] = new(sql.NullString)
		case shiftswaprequest.FieldCreatedAt, shiftswaprequest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case shiftswaprequest.ForeignKeys[0]: // shift_swap_requests
			values[i] = new(sql.NullString)
		case shiftswaprequest.ForeignKeys[1]: // user_swap_requests
			values[i] = new(sql.NullString)
		case shiftswaprequest.ForeignKeys[2]: // user_swap_targets
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ShiftSwapRequest fields.
func (_m *ShiftSwapRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case shiftswaprequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case shiftswaprequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case shiftswaprequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case shiftswaprequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = shiftswaprequest.Status(value.String)
			}
		case shiftswaprequest.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case shiftswaprequest.FieldRespondedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field responded_by", values[i])
			} else if value.Valid {
				_m.RespondedBy = value.String
			}
		case shiftswaprequest.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shift_swap_requests", values[i])
			} else if value.Valid {
				_m.shift_swap_requests = new(string)
				*_m.shift_swap_requests = value.String
			}
		case shiftswaprequest.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_swap_requests", values[i])
			} else if value.Valid {
				_m.user_swap_requests = new(string)
				*_m.user_swap_requests = value.String
			}
		case shiftswaprequest.ForeignKeys[2]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_swap_targets", values[i])
			} else if value.Valid {
				_m.user_swap_targets = new(string)
				*_m.user_swap_targets = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ShiftSwapRequest.
// This includes values selected through modifiers, order, etc.
func (_m *ShiftSwapRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRequester queries the "requester" edge of the ShiftSwapRequest entity.
func (_m *ShiftSwapRequest) QueryRequester() *UserQuery {
	return NewShiftSwapRequestClient(_m.config).QueryRequester(_m)
}

// QueryTarget queries the "target" edge of the ShiftSwapRequest entity.
func (_m *ShiftSwapRequest) QueryTarget() *UserQuery {
	return NewShiftSwapRequestClient(_m.config).QueryTarget(_m)
}

// QueryShift queries the "shift" edge of the ShiftSwapRequest entity.
func (_m *ShiftSwapRequest) QueryShift() *ShiftQuery {
	return NewShiftSwapRequestClient(_m.config).QueryShift(_m)
}

// Update returns a builder for updating this ShiftSwapRequest.
// Note that you need to call ShiftSwapRequest.Unwrap() before calling this method if this ShiftSwapRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ShiftSwapRequest) Update() *ShiftSwapRequestUpdateOne {
	return NewShiftSwapRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ShiftSwapRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ShiftSwapRequest) Unwrap() *ShiftSwapRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ShiftSwapRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ShiftSwapRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ShiftSwapRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("responded_by=")
	builder.WriteString(_m.RespondedBy)
	builder.WriteByte(')')
	return builder.String()
}

// ShiftSwapRequests is a parsable slice of ShiftSwapRequest.
type ShiftSwapRequests []*ShiftSwapRequest
