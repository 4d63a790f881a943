// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"crewpulse.io/crewpulse/ent/timeoffrequest"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// TimeOffRequest is the model entity for the TimeOffRequest schema.
type TimeOffRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// StartsOn holds the value of the "starts_on" field.
	StartsOn time.Time `json:"starts_on,omitempty"`
	// EndsOn holds the value of the "ends_on" field.
	EndsOn time.Time `json:"ends_on,omitempty"`
	// Status holds the value of the "status" field.
	Status timeoffrequest.Status `json:"status,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// RespondedBy holds the value of the "responded_by" field.
	RespondedBy string `json:"responded_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TimeOffRequestQuery when eager-loading is set.
	Edges                  TimeOffRequestEdges `json:"edges"`
	user_time_off_requests *string
	selectValues           sql.SelectValues
}

// TimeOffRequestEdges holds the relations/edges for other nodes in the graph.
type TimeOffRequestEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TimeOffRequestEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TimeOffRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case timeoffrequest.FieldID, timeoffrequest.FieldStatus, timeoffrequest.FieldReason, timeoffrequest.FieldRespondedBy:
			values[i] = new(sql.NullString)
		case timeoffrequest.FieldCreatedAt, timeoffrequest.FieldUpdatedAt, timeoffrequest.FieldStartsOn, timeoffrequest.FieldEndsOn:
			values[i] = new(sql.NullTime)
		case timeoffrequest.ForeignKeys[0]: // user_time_off_requests
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TimeOffRequest fields.
func (_m *TimeOffRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case timeoffrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case timeoffrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case timeoffrequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case timeoffrequest.FieldStartsOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field starts_on", values[i])
			} else if value.Valid {
				_m.StartsOn = value.Time
			}
		case timeoffrequest.FieldEndsOn:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ends_on", values[i])
			} else if value.Valid {
				_m.EndsOn = value.Time
			}
		case timeoffrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = timeoffrequest.Status(value.String)
			}
		case timeoffrequest.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case timeoffrequest.FieldRespondedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field responded_by", values[i])
			} else if value.Valid {
				_m.RespondedBy = value.String
			}
		case timeoffrequest.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_time_off_requests", values[i])
			} else if value.Valid {
				_m.user_time_off_requests = new(string)
				*_m.user_time_off_requests = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TimeOffRequest.
// This includes values selected through modifiers, order, etc.
func (_m *TimeOffRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the TimeOffRequest entity.
func (_m *TimeOffRequest) QueryUser() *UserQuery {
	return NewTimeOffRequestClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this TimeOffRequest.
// Note that you need to call TimeOffRequest.Unwrap() before calling this method if this TimeOffRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TimeOffRequest) Update() *TimeOffRequestUpdateOne {
	return NewTimeOffRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TimeOffRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TimeOffRequest) Unwrap() *TimeOffRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TimeOffRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TimeOffRequest) String() string {
	var builder strings.Builder
	builder.WriteString("TimeOffRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("starts_on=")
	builder.WriteString(_m.StartsOn.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ends_on=")
	builder.WriteString(_m.EndsOn.Format(time.ANSIC))
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

// TimeOffRequests is a parsable slice of TimeOffRequest.
type TimeOffRequests []*TimeOffRequest
