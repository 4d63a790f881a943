// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"crewpulse.io/crewpulse/ent/company"
	"crewpulse.io/crewpulse/ent/notificationpreference"
	"crewpulse.io/crewpulse/ent/team"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName string `json:"first_name,omitempty"`
	// LastName holds the value of the "last_name" field.
	LastName string `json:"last_name,omitempty"`
	// Role holds the value of the "role" field.
	Role user.Role `json:"role,omitempty"`
	// PasswordHash holds the value of the "password_hash" field.
	PasswordHash string `json:"-"`
	// Month+day drive the daily birthday job; year drives age
	BirthDate *time.Time `json:"birth_date,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// LastLoginAt holds the value of the "last_login_at" field.
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges         UserEdges `json:"edges"`
	company_users *string
	team_members  *string
	selectValues  sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// Team holds the value of the team edge.
	Team *Team `json:"team,omitempty"`
	// Notifications holds the value of the notifications edge.
	Notifications []*Notification `json:"notifications,omitempty"`
	// Preference holds the value of the preference edge.
	Preference *NotificationPreference `json:"preference,omitempty"`
	// PushSubscriptions holds the value of the push_subscriptions edge.
	PushSubscriptions []*PushSubscription `json:"push_subscriptions,omitempty"`
	// CreatedTasks holds the value of the created_tasks edge.
	CreatedTasks []*Task `json:"created_tasks,omitempty"`
	// AssignedTasks holds the value of the assigned_tasks edge.
	AssignedTasks []*Task `json:"assigned_tasks,omitempty"`
	// SentMessages holds the value of the sent_messages edge.
	SentMessages []*Message `json:"sent_messages,omitempty"`
	// ReceivedMessages holds the value of the received_messages edge.
	ReceivedMessages []*Message `json:"received_messages,omitempty"`
	// Shifts holds the value of the shifts edge.
	Shifts []*Shift `json:"shifts,omitempty"`
	// SwapRequests holds the value of the swap_requests edge.
	SwapRequests []*ShiftSwapRequest `json:"swap_requests,omitempty"`
	// SwapTargets holds the value of the swap_targets edge.
	SwapTargets []*ShiftSwapRequest `json:"swap_targets,omitempty"`
	// TimeOffRequests holds the value of the time_off_requests edge.
	TimeOffRequests []*TimeOffRequest `json:"time_off_requests,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [13]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// TeamOrErr returns the Team value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserEdges) TeamOrErr() (*Team, error) {
	if e.Team != nil {
		return e.Team, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: team.Label}
	}
	return nil, &NotLoadedError{edge: "team"}
}

// NotificationsOrErr returns the Notifications value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) NotificationsOrErr() ([]*Notification, error) {
	if e.loadedTypes[2] {
		return e.Notifications, nil
	}
	return nil, &NotLoadedError{edge: "notifications"}
}

// PreferenceOrErr returns the Preference value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserEdges) PreferenceOrErr() (*NotificationPreference, error) {
	if e.Preference != nil {
		return e.Preference, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: notificationpreference.Label}
	}
	return nil, &NotLoadedError{edge: "preference"}
}

// PushSubscriptionsOrErr returns the PushSubscriptions value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) PushSubscriptionsOrErr() ([]*PushSubscription, error) {
	if e.loadedTypes[4] {
		return e.PushSubscriptions, nil
	}
	return nil, &NotLoadedError{edge: "push_subscriptions"}
}

// CreatedTasksOrErr returns the CreatedTasks value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) CreatedTasksOrErr() ([]*Task, error) {
	if e.loadedTypes[5] {
		return e.CreatedTasks, nil
	}
	return nil, &NotLoadedError{edge: "created_tasks"}
}

// AssignedTasksOrErr returns the AssignedTasks value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) AssignedTasksOrErr() ([]*Task, error) {
	if e.loadedTypes[6] {
		return e.AssignedTasks, nil
	}
	return nil, &NotLoadedError{edge: "assigned_tasks"}
}

// SentMessagesOrErr returns the SentMessages value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) SentMessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[7] {
		return e.SentMessages, nil
	}
	return nil, &NotLoadedError{edge: "sent_messages"}
}

// ReceivedMessagesOrErr returns the ReceivedMessages value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ReceivedMessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[8] {
		return e.ReceivedMessages, nil
	}
	return nil, &NotLoadedError{edge: "received_messages"}
}

// ShiftsOrErr returns the Shifts value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ShiftsOrErr() ([]*Shift, error) {
	if e.loadedTypes[9] {
		return e.Shifts, nil
	}
	return nil, &NotLoadedError{edge: "shifts"}
}

// SwapRequestsOrErr returns the SwapRequests value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) SwapRequestsOrErr() ([]*ShiftSwapRequest, error) {
	if e.loadedTypes[10] {
		return e.SwapRequests, nil
	}
	return nil, &NotLoadedError{edge: "swap_requests"}
}

// SwapTargetsOrErr returns the SwapTargets value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) SwapTargetsOrErr() ([]*ShiftSwapRequest, error) {
	if e.loadedTypes[11] {
		return e.SwapTargets, nil
	}
	return nil, &NotLoadedError{edge: "swap_targets"}
}

// TimeOffRequestsOrErr returns the TimeOffRequests value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) TimeOffRequestsOrErr() ([]*TimeOffRequest, error) {
	if e.loadedTypes[12] {
		return e.TimeOffRequests, nil
	}
	return nil, &NotLoadedError{edge: "time_off_requests"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldEnabled:
			values[i] = new(sql.NullBool)
		case user.FieldID, user.FieldEmail, user.FieldFirstName, user.FieldLastName, user.FieldRole, user.FieldPasswordHash:
			values[i] = new(sql.NullString)
		case user.FieldCreatedAt, user.FieldUpdatedAt, user.FieldBirthDate, user.FieldLastLoginAt:
			values[i] = new(sql.NullTime)
		case user.ForeignKeys[0]: // company_users
			values[i] = new(sql.NullString)
		case user.ForeignKeys[1]: // team_members
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case user.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case user.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = user.Role(value.String)
			}
		case user.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = value.String
			}
		case user.FieldBirthDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field birth_date", values[i])
			} else if value.Valid {
				_m.BirthDate = new(time.Time)
				*_m.BirthDate = value.Time
			}
		case user.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case user.FieldLastLoginAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_login_at", values[i])
			} else if value.Valid {
				_m.LastLoginAt = new(time.Time)
				*_m.LastLoginAt = value.Time
			}
		case user.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_users", values[i])
			} else if value.Valid {
				_m.company_users = new(string)
				*_m.company_users = value.String
			}
		case user.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team_members", values[i])
			} else if value.Valid {
				_m.team_members = new(string)
				*_m.team_members = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the User entity.
func (_m *User) QueryCompany() *CompanyQuery {
	return NewUserClient(_m.config).QueryCompany(_m)
}

// QueryTeam queries the "team" edge of the User entity.
func (_m *User) QueryTeam() *TeamQuery {
	return NewUserClient(_m.config).QueryTeam(_m)
}

// QueryNotifications queries the "notifications" edge of the User entity.
func (_m *User) QueryNotifications() *NotificationQuery {
	return NewUserClient(_m.config).QueryNotifications(_m)
}

// QueryPreference queries the "preference" edge of the User entity.
func (_m *User) QueryPreference() *NotificationPreferenceQuery {
	return NewUserClient(_m.config).QueryPreference(_m)
}

// QueryPushSubscriptions queries the "push_subscriptions" edge of the User entity.
func (_m *User) QueryPushSubscriptions() *PushSubscriptionQuery {
	return NewUserClient(_m.config).QueryPushSubscriptions(_m)
}

// QueryCreatedTasks queries the "created_tasks" edge of the User entity.
func (_m *User) QueryCreatedTasks() *TaskQuery {
	return NewUserClient(_m.config).QueryCreatedTasks(_m)
}

// QueryAssignedTasks queries the "assigned_tasks" edge of the User entity.
func (_m *User) QueryAssignedTasks() *TaskQuery {
	return NewUserClient(_m.config).QueryAssignedTasks(_m)
}

// QuerySentMessages queries the "sent_messages" edge of the User entity.
func (_m *User) QuerySentMessages() *MessageQuery {
	return NewUserClient(_m.config).QuerySentMessages(_m)
}

// QueryReceivedMessages queries the "received_messages" edge of the User entity.
func (_m *User) QueryReceivedMessages() *MessageQuery {
	return NewUserClient(_m.config).QueryReceivedMessages(_m)
}

// QueryShifts queries the "shifts" edge of the User entity.
func (_m *User) QueryShifts() *ShiftQuery {
	return NewUserClient(_m.config).QueryShifts(_m)
}

// QuerySwapRequests queries the "swap_requests" edge of the User entity.
func (_m *User) QuerySwapRequests() *ShiftSwapRequestQuery {
	return NewUserClient(_m.config).QuerySwapRequests(_m)
}

// QuerySwapTargets queries the "swap_targets" edge of the User entity.
func (_m *User) QuerySwapTargets() *ShiftSwapRequestQuery {
	return NewUserClient(_m.config).QuerySwapTargets(_m)
}

// QueryTimeOffRequests queries the "time_off_requests" edge of the User entity.
func (_m *User) QueryTimeOffRequests() *TimeOffRequestQuery {
	return NewUserClient(_m.config).QueryTimeOffRequests(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	if v := _m.BirthDate; v != nil {
		builder.WriteString("birth_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	if v := _m.LastLoginAt; v != nil {
		builder.WriteString("last_login_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
