// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"crewpulse.io/crewpulse/ent/notificationpreference"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// NotificationPreference is the model entity for the NotificationPreference schema.
type NotificationPreference struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// EmailOnTaskAssigned holds the value of the "email_on_task_assigned" field.
	EmailOnTaskAssigned bool `json:"email_on_task_assigned,omitempty"`
	// EmailOnTaskCompleted holds the value of the "email_on_task_completed" field.
	EmailOnTaskCompleted bool `json:"email_on_task_completed,omitempty"`
	// EmailOnTaskComment holds the value of the "email_on_task_comment" field.
	EmailOnTaskComment bool `json:"email_on_task_comment,omitempty"`
	// EmailOnMention holds the value of the "email_on_mention" field.
	EmailOnMention bool `json:"email_on_mention,omitempty"`
	// EmailOnDeadline holds the value of the "email_on_deadline" field.
	EmailOnDeadline bool `json:"email_on_deadline,omitempty"`
	// EmailOnShiftAssigned holds the value of the "email_on_shift_assigned" field.
	EmailOnShiftAssigned bool `json:"email_on_shift_assigned,omitempty"`
	// EmailOnShiftSwap holds the value of the "email_on_shift_swap" field.
	EmailOnShiftSwap bool `json:"email_on_shift_swap,omitempty"`
	// EmailOnTimeOff holds the value of the "email_on_time_off" field.
	EmailOnTimeOff bool `json:"email_on_time_off,omitempty"`
	// EmailOnMessage holds the value of the "email_on_message" field.
	EmailOnMessage bool `json:"email_on_message,omitempty"`
	// PushOnTaskAssigned holds the value of the "push_on_task_assigned" field.
	PushOnTaskAssigned bool `json:"push_on_task_assigned,omitempty"`
	// PushOnTaskComment holds the value of the "push_on_task_comment" field.
	PushOnTaskComment bool `json:"push_on_task_comment,omitempty"`
	// PushOnMention holds the value of the "push_on_mention" field.
	PushOnMention bool `json:"push_on_mention,omitempty"`
	// PushOnMessage holds the value of the "push_on_message" field.
	PushOnMessage bool `json:"push_on_message,omitempty"`
	// PushOnShiftSwap holds the value of the "push_on_shift_swap" field.
	PushOnShiftSwap bool `json:"push_on_shift_swap,omitempty"`
	// PushOnTimeOff holds the value of the "push_on_time_off" field.
	PushOnTimeOff bool `json:"push_on_time_off,omitempty"`
	// Master switch checked before any per-event push gate
	PushEnabled bool `json:"push_enabled,omitempty"`
	// DailyDigest holds the value of the "daily_digest" field.
	DailyDigest bool `json:"daily_digest,omitempty"`
	// WeeklyDigest holds the value of the "weekly_digest" field.
	WeeklyDigest bool `json:"weekly_digest,omitempty"`
	// MonthlyDigest holds the value of the "monthly_digest" field.
	MonthlyDigest bool `json:"monthly_digest,omitempty"`
	// HH:mm, matched by exact string equality
	DigestTime string `json:"digest_time,omitempty"`
	// DigestDayOfWeek holds the value of the "digest_day_of_week" field.
	DigestDayOfWeek int `json:"digest_day_of_week,omitempty"`
	// Clamped to 28 so short months never skip a send
	DigestDayOfMonth int `json:"digest_day_of_month,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NotificationPreferenceQuery when eager-loading is set.
	Edges           NotificationPreferenceEdges `json:"edges"`
	user_preference *string
	selectValues    sql.SelectValues
}

// NotificationPreferenceEdges holds the relations/edges for other nodes in the graph.
type NotificationPreferenceEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NotificationPreferenceEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationPreference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationpreference.FieldEmailOnTaskAssigned, notificationpreference.FieldEmailOnTaskCompleted, notificationpreference.FieldEmailOnTaskComment, notificationpreference.FieldEmailOnMention, notificationpreference.FieldEmailOnDeadline, notificationpreference.FieldEmailOnShiftAssigned, notificationpreference.FieldEmailOnShiftSwap, notificationpreference.FieldEmailOnTimeOff, notificationpreference.FieldEmailOnMessage, notificationpreference.FieldPushOnTaskAssigned, notificationpreference.FieldPushOnTaskComment, notificationpreference.FieldPushOnMention, notificationpreference.FieldPushOnMessage, notificationpreference.FieldPushOnShiftSwap, notificationpreference.FieldPushOnTimeOff, notificationpreference.FieldPushEnabled, notificationpreference.FieldDailyDigest, notificationpreference.FieldWeeklyDigest, notificationpreference.FieldMonthlyDigest:
			values[i] = new(sql.NullBool)
		case notificationpreference.FieldDigestDayOfWeek, notificationpreference.FieldDigestDayOfMonth:
			values[i] = new(sql.NullInt64)
		case notificationpreference.FieldID, notificationpreference.FieldDigestTime:
			values[i] = new(sql.NullString)
		case notificationpreference.FieldCreatedAt, notificationpreference.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case notificationpreference.ForeignKeys[0]: // user_preference
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationPreference fields.
func (_m *NotificationPreference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationpreference.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case notificationpreference.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case notificationpreference.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case notificationpreference.FieldEmailOnTaskAssigned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_on_task_assigned", values[i])
			} else if value.Valid {
				_m.EmailOnTaskAssigned = value.Bool
			}
		case notificationpreference.FieldEmailOnTaskCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_on_task_completed", values[i])
			} else if value.Valid {
				_m.EmailOnTaskCompleted = value.Bool
			}
		case notificationpreference.FieldEmailOnTaskComment:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_on_task_comment", values[i])
			} else if value.Valid {
				_m.EmailOnTaskComment = value.Bool
			}
		case notificationpreference.FieldEmailOnMention:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_on_mention", values[i])
			} else if value.Valid {
				_m.EmailOnMention = value.Bool
			}
		case notificationpreference.FieldEmailOnDeadline:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_on_deadline", values[i])
			} else if value.Valid {
				_m.EmailOnDeadline = value.Bool
			}
		case notificationpreference.FieldEmailOnShiftAssigned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_on_shift_assigned", values[i])
			} else if value.Valid {
				_m.EmailOnShiftAssigned = value.Bool
			}
		case notificationpreference.FieldEmailOnShiftSwap:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_on_shift_swap", values[i])
			} else if value.Valid {
				_m.EmailOnShiftSwap = value.Bool
			}
		case notificationpreference.FieldEmailOnTimeOff:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_on_time_off", values[i])
			} else if value.Valid {
				_m.EmailOnTimeOff = value.Bool
			}
		case notificationpreference.FieldEmailOnMessage:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_on_message", values[i])
			} else if value.Valid {
				_m.EmailOnMessage = value.Bool
			}
		case notificationpreference.FieldPushOnTaskAssigned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field push_on_task_assigned", values[i])
			} else if value.Valid {
				_m.PushOnTaskAssigned = value.Bool
			}
		case notificationpreference.FieldPushOnTaskComment:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field push_on_task_comment", values[i])
			} else if value.Valid {
				_m.PushOnTaskComment = value.Bool
			}
		case notificationpreference.FieldPushOnMention:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field push_on_mention", values[i])
			} else if value.Valid {
				_m.PushOnMention = value.Bool
			}
		case notificationpreference.FieldPushOnMessage:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field push_on_message", values[i])
			} else if value.Valid {
				_m.PushOnMessage = value.Bool
			}
		case notificationpreference.FieldPushOnShiftSwap:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field push_on_shift_swap", values[i])
			} else if value.Valid {
				_m.PushOnShiftSwap = value.Bool
			}
		case notificationpreference.FieldPushOnTimeOff:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field push_on_time_off", values[i])
			} else if value.Valid {
				_m.PushOnTimeOff = value.Bool
			}
		case notificationpreference.FieldPushEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field push_enabled", values[i])
			} else if value.Valid {
				_m.PushEnabled = value.Bool
			}
		case notificationpreference.FieldDailyDigest:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field daily_digest", values[i])
			} else if value.Valid {
				_m.DailyDigest = value.Bool
			}
		case notificationpreference.FieldWeeklyDigest:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field weekly_digest", values[i])
			} else if value.Valid {
				_m.WeeklyDigest = value.Bool
			}
		case notificationpreference.FieldMonthlyDigest:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_digest", values[i])
			} else if value.Valid {
				_m.MonthlyDigest = value.Bool
			}
		case notificationpreference.FieldDigestTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field digest_time", values[i])
			} else if value.Valid {
				_m.DigestTime = value.String
			}
		case notificationpreference.FieldDigestDayOfWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field digest_day_of_week", values[i])
			} else if value.Valid {
				_m.DigestDayOfWeek = int(value.Int64)
			}
		case notificationpreference.FieldDigestDayOfMonth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field digest_day_of_month", values[i])
			} else if value.Valid {
				_m.DigestDayOfMonth = int(value.Int64)
			}
		case notificationpreference.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_preference", values[i])
			} else if value.Valid {
				_m.user_preference = new(string)
				*_m.user_preference = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationPreference.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationPreference) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the NotificationPreference entity.
func (_m *NotificationPreference) QueryUser() *UserQuery {
	return NewNotificationPreferenceClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this NotificationPreference.
// Note that you need to call NotificationPreference.Unwrap() before calling this method if this NotificationPreference
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationPreference) Update() *NotificationPreferenceUpdateOne {
	return NewNotificationPreferenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationPreference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationPreference) Unwrap() *NotificationPreference {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NotificationPreference is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationPreference) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationPreference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("email_on_task_assigned=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailOnTaskAssigned))
	builder.WriteString(", ")
	builder.WriteString("email_on_task_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailOnTaskCompleted))
	builder.WriteString(", ")
	builder.WriteString("email_on_task_comment=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailOnTaskComment))
	builder.WriteString(", ")
	builder.WriteString("email_on_mention=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailOnMention))
	builder.WriteString(", ")
	builder.WriteString("email_on_deadline=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailOnDeadline))
	builder.WriteString(", ")
	builder.WriteString("email_on_shift_assigned=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailOnShiftAssigned))
	builder.WriteString(", ")
	builder.WriteString("email_on_shift_swap=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailOnShiftSwap))
	builder.WriteString(", ")
	builder.WriteString("email_on_time_off=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailOnTimeOff))
	builder.WriteString(", ")
	builder.WriteString("email_on_message=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailOnMessage))
	builder.WriteString(", ")
	builder.WriteString("push_on_task_assigned=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushOnTaskAssigned))
	builder.WriteString(", ")
	builder.WriteString("push_on_task_comment=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushOnTaskComment))
	builder.WriteString(", ")
	builder.WriteString("push_on_mention=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushOnMention))
	builder.WriteString(", ")
	builder.WriteString("push_on_message=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushOnMessage))
	builder.WriteString(", ")
	builder.WriteString("push_on_shift_swap=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushOnShiftSwap))
	builder.WriteString(", ")
	builder.WriteString("push_on_time_off=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushOnTimeOff))
	builder.WriteString(", ")
	builder.WriteString("push_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushEnabled))
	builder.WriteString(", ")
	builder.WriteString("daily_digest=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyDigest))
	builder.WriteString(", ")
	builder.WriteString("weekly_digest=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeeklyDigest))
	builder.WriteString(", ")
	builder.WriteString("monthly_digest=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlyDigest))
	builder.WriteString(", ")
	builder.WriteString("digest_time=")
	builder.WriteString(_m.DigestTime)
	builder.WriteString(", ")
	builder.WriteString("digest_day_of_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.DigestDayOfWeek))
	builder.WriteString(", ")
	builder.WriteString("digest_day_of_month=")
	builder.WriteString(fmt.Sprintf("%v", _m.DigestDayOfMonth))
	builder.WriteByte(')')
	return builder.String()
}

// NotificationPreferences is a parsable slice of NotificationPreference.
type NotificationPreferences []*NotificationPreference
