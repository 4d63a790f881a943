// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"crewpulse.io/crewpulse/ent/company"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Company is the model entity for the Company schema.
type Company struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email header gradient start color
	PrimaryColor string `json:"primary_color,omitempty"`
	// Email header gradient end color
	SecondaryColor string `json:"secondary_color,omitempty"`
	// LogoURL holds the value of the "logo_url" field.
	LogoURL string `json:"logo_url,omitempty"`
	// FooterMessage holds the value of the "footer_message" field.
	FooterMessage string `json:"footer_message,omitempty"`
	// BirthdayNotificationsEnabled holds the value of the "birthday_notifications_enabled" field.
	BirthdayNotificationsEnabled bool `json:"birthday_notifications_enabled,omitempty"`
	// BirthdayNotifySelf holds the value of the "birthday_notify_self" field.
	BirthdayNotifySelf bool `json:"birthday_notify_self,omitempty"`
	// BirthdayNotifyManagers holds the value of the "birthday_notify_managers" field.
	BirthdayNotifyManagers bool `json:"birthday_notify_managers,omitempty"`
	// BirthdayNotifyTeam holds the value of the "birthday_notify_team" field.
	BirthdayNotifyTeam bool `json:"birthday_notify_team,omitempty"`
	// PUBLIC additionally posts into the company general chat room
	BirthdayVisibility company.BirthdayVisibility `json:"birthday_visibility,omitempty"`
	// BirthdayMessageTemplate holds the value of the "birthday_message_template" field.
	BirthdayMessageTemplate string `json:"birthday_message_template,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompanyQuery when eager-loading is set.
	Edges        CompanyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompanyEdges holds the relations/edges for other nodes in the graph.
type CompanyEdges struct {
	// Users holds the value of the users edge.
	Users []*User `json:"users,omitempty"`
	// Teams holds the value of the teams edge.
	Teams []*Team `json:"teams,omitempty"`
	// EmailTemplates holds the value of the email_templates edge.
	EmailTemplates []*EmailTemplate `json:"email_templates,omitempty"`
	// ChatRooms holds the value of the chat_rooms edge.
	ChatRooms []*ChatRoom `json:"chat_rooms,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// UsersOrErr returns the Users value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) UsersOrErr() ([]*User, error) {
	if e.loadedTypes[0] {
		return e.Users, nil
	}
	return nil, &NotLoadedError{edge: "users"}
}

// TeamsOrErr returns the Teams value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) TeamsOrErr() ([]*Team, error) {
	if e.loadedTypes[1] {
		return e.Teams, nil
	}
	return nil, &NotLoadedError{edge: "teams"}
}

// EmailTemplatesOrErr returns the EmailTemplates value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) EmailTemplatesOrErr() ([]*EmailTemplate, error) {
	if e.loadedTypes[2] {
		return e.EmailTemplates, nil
	}
	return nil, &NotLoadedError{edge: "email_templates"}
}

// ChatRoomsOrErr returns the ChatRooms value or an error if the edge
// was not loaded in eager-loading.
func (e CompanyEdges) ChatRoomsOrErr() ([]*ChatRoom, error) {
	if e.loadedTypes[3] {
		return e.ChatRooms, nil
	}
	return nil, &NotLoadedError{edge: "chat_rooms"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Company) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case company.FieldBirthdayNotificationsEnabled, company.FieldBirthdayNotifySelf, company.FieldBirthdayNotifyManagers, company.FieldBirthdayNotifyTeam:
			values[i] = new(sql.NullBool)
		case company.FieldID, company.FieldName, company.FieldPrimaryColor, company.FieldSecondaryColor, company.FieldLogoURL, company.FieldFooterMessage, company.FieldBirthdayVisibility, company.FieldBirthdayMessageTemplate:
			values[i] = new(sql.NullString)
		case company.FieldCreatedAt, company.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Company fields.
func (_m *Company) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case company.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case company.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case company.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case company.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case company.FieldPrimaryColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_color", values[i])
			} else if value.Valid {
				_m.PrimaryColor = value.String
			}
		case company.FieldSecondaryColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_color", values[i])
			} else if value.Valid {
				_m.SecondaryColor = value.String
			}
		case company.FieldLogoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logo_url", values[i])
			} else if value.Valid {
				_m.LogoURL = value.String
			}
		case company.FieldFooterMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field footer_message", values[i])
			} else if value.Valid {
				_m.FooterMessage = value.String
			}
		case company.FieldBirthdayNotificationsEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field birthday_notifications_enabled", values[i])
			} else if value.Valid {
				_m.BirthdayNotificationsEnabled = value.Bool
			}
		case company.FieldBirthdayNotifySelf:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field birthday_notify_self", values[i])
			} else if value.Valid {
				_m.BirthdayNotifySelf = value.Bool
			}
		case company.FieldBirthdayNotifyManagers:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field birthday_notify_managers", values[i])
			} else if value.Valid {
				_m.BirthdayNotifyManagers = value.Bool
			}
		case company.FieldBirthdayNotifyTeam:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field birthday_notify_team", values[i])
			} else if value.Valid {
				_m.BirthdayNotifyTeam = value.Bool
			}
		case company.FieldBirthdayVisibility:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field birthday_visibility", values[i])
			} else if value.Valid {
				_m.BirthdayVisibility = company.BirthdayVisibility(value.String)
			}
		case company.FieldBirthdayMessageTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field birthday_message_template", values[i])
			} else if value.Valid {
				_m.BirthdayMessageTemplate = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Company.
// This includes values selected through modifiers, order, etc.
func (_m *Company) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUsers queries the "users" edge of the Company entity.
func (_m *Company) QueryUsers() *UserQuery {
	return NewCompanyClient(_m.config).QueryUsers(_m)
}

// QueryTeams queries the "teams" edge of the Company entity.
func (_m *Company) QueryTeams() *TeamQuery {
	return NewCompanyClient(_m.config).QueryTeams(_m)
}

// QueryEmailTemplates queries the "email_templates" edge of the Company entity.
func (_m *Company) QueryEmailTemplates() *EmailTemplateQuery {
	return NewCompanyClient(_m.config).QueryEmailTemplates(_m)
}

// QueryChatRooms queries the "chat_rooms" edge of the Company entity.
func (_m *Company) QueryChatRooms() *ChatRoomQuery {
	return NewCompanyClient(_m.config).QueryChatRooms(_m)
}

// Update returns a builder for updating this Company.
// Note that you need to call Company.Unwrap() before calling this method if this Company
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Company) Update() *CompanyUpdateOne {
	return NewCompanyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Company entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Company) Unwrap() *Company {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Company is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Company) String() string {
	var builder strings.Builder
	builder.WriteString("Company(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("primary_color=")
	builder.WriteString(_m.PrimaryColor)
	builder.WriteString(", ")
	builder.WriteString("secondary_color=")
	builder.WriteString(_m.SecondaryColor)
	builder.WriteString(", ")
	builder.WriteString("logo_url=")
	builder.WriteString(_m.LogoURL)
	builder.WriteString(", ")
	builder.WriteString("footer_message=")
	builder.WriteString(_m.FooterMessage)
	builder.WriteString(", ")
	builder.WriteString("birthday_notifications_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.BirthdayNotificationsEnabled))
	builder.WriteString(", ")
	builder.WriteString("birthday_notify_self=")
	builder.WriteString(fmt.Sprintf("%v", _m.BirthdayNotifySelf))
	builder.WriteString(", ")
	builder.WriteString("birthday_notify_managers=")
	builder.WriteString(fmt.Sprintf("%v", _m.BirthdayNotifyManagers))
	builder.WriteString(", ")
	builder.WriteString("birthday_notify_team=")
	builder.WriteString(fmt.Sprintf("%v", _m.BirthdayNotifyTeam))
	builder.WriteString(", ")
	builder.WriteString("birthday_visibility=")
	builder.WriteString(fmt.Sprintf("%v", _m.BirthdayVisibility))
	builder.WriteString(", ")
	builder.WriteString("birthday_message_template=")
	builder.WriteString(_m.BirthdayMessageTemplate)
	builder.WriteByte(')')
	return builder.String()
}

// Companies is a parsable slice of Company.
type Companies []*Company
