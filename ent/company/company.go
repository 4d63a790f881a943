// Code generated by ent, DO NOT EDIT.

package company

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the company type in the database.
	Label = "company"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPrimaryColor holds the string denoting the primary_color field in the database.
	FieldPrimaryColor = "primary_color"
	// FieldSecondaryColor holds the string denoting the secondary_color field in the database.
	FieldSecondaryColor = "secondary_color"
	// FieldLogoURL holds the string denoting the logo_url field in the database.
	FieldLogoURL = "logo_url"
	// FieldFooterMessage holds the string denoting the footer_message field in the database.
	FieldFooterMessage = "footer_message"
	// FieldBirthdayNotificationsEnabled holds the string denoting the birthday_notifications_enabled field in the database.
	FieldBirthdayNotificationsEnabled = "birthday_notifications_enabled"
	// FieldBirthdayNotifySelf holds the string denoting the birthday_notify_self field in the database.
	FieldBirthdayNotifySelf = "birthday_notify_self"
	// FieldBirthdayNotifyManagers holds the string denoting the birthday_notify_managers field in the database.
	FieldBirthdayNotifyManagers = "birthday_notify_managers"
	// FieldBirthdayNotifyTeam holds the string denoting the birthday_notify_team field in the database.
	FieldBirthdayNotifyTeam = "birthday_notify_team"
	// FieldBirthdayVisibility holds the string denoting the birthday_visibility field in the database.
	FieldBirthdayVisibility = "birthday_visibility"
	// FieldBirthdayMessageTemplate holds the string denoting the birthday_message_template field in the database.
	FieldBirthdayMessageTemplate = "birthday_message_template"
	// EdgeUsers holds the string denoting the users edge name in mutations.
	EdgeUsers = "users"
	// EdgeTeams holds the string denoting the teams edge name in mutations.
	EdgeTeams = "teams"
	// EdgeEmailTemplates holds the string denoting the email_templates edge name in mutations.
	EdgeEmailTemplates = "email_templates"
	// EdgeChatRooms holds the string denoting the chat_rooms edge name in mutations.
	EdgeChatRooms = "chat_rooms"
	// Table holds the table name of the company in the database.
	Table = "companies"
	// UsersTable is the table that holds the users relation/edge.
	UsersTable = "users"
	// UsersInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UsersInverseTable = "users"
	// UsersColumn is the table column denoting the users relation/edge.
	UsersColumn = "company_users"
	// TeamsTable is the table that holds the teams relation/edge.
	TeamsTable = "teams"
	// TeamsInverseTable is the table name for the Team entity.
	// It exists in this package in order to avoid circular dependency with the "team" package.
	TeamsInverseTable = "teams"
	// TeamsColumn is the table column denoting the teams relation/edge.
	TeamsColumn = "company_teams"
	// EmailTemplatesTable is the table that holds the email_templates relation/edge.
	EmailTemplatesTable = "email_templates"
	// EmailTemplatesInverseTable is the table name for the EmailTemplate entity.
	// It exists in this package in order to avoid circular dependency with the "emailtemplate" package.
	EmailTemplatesInverseTable = "email_templates"
	// EmailTemplatesColumn is the table column denoting the email_templates relation/edge.
	EmailTemplatesColumn = "company_email_templates"
	// ChatRoomsTable is the table that holds the chat_rooms relation/edge.
	ChatRoomsTable = "chat_rooms"
	// ChatRoomsInverseTable is the table name for the ChatRoom entity.
	// It exists in this package in order to avoid circular dependency with the "chatroom" package.
	ChatRoomsInverseTable = "chat_rooms"
	// ChatRoomsColumn is the table column denoting the chat_rooms relation/edge.
	ChatRoomsColumn = "company_chat_rooms"
)

// Columns holds all SQL columns for company fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldPrimaryColor,
	FieldSecondaryColor,
	FieldLogoURL,
	FieldFooterMessage,
	FieldBirthdayNotificationsEnabled,
	FieldBirthdayNotifySelf,
	FieldBirthdayNotifyManagers,
	FieldBirthdayNotifyTeam,
	FieldBirthdayVisibility,
	FieldBirthdayMessageTemplate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultPrimaryColor holds the default value on creation for the "primary_color" field.
	DefaultPrimaryColor string
	// DefaultSecondaryColor holds the default value on creation for the "secondary_color" field.
	DefaultSecondaryColor string
	// FooterMessageValidator is a validator for the "footer_message" field. It is called by the builders before save.
	FooterMessageValidator func(string) error
	// DefaultBirthdayNotificationsEnabled holds the default value on creation for the "birthday_notifications_enabled" field.
	DefaultBirthdayNotificationsEnabled bool
	// DefaultBirthdayNotifySelf holds the default value on creation for the "birthday_notify_self" field.
	DefaultBirthdayNotifySelf bool
	// DefaultBirthdayNotifyManagers holds the default value on creation for the "birthday_notify_managers" field.
	DefaultBirthdayNotifyManagers bool
	// DefaultBirthdayNotifyTeam holds the default value on creation for the "birthday_notify_team" field.
	DefaultBirthdayNotifyTeam bool
	// DefaultBirthdayMessageTemplate holds the default value on creation for the "birthday_message_template" field.
	DefaultBirthdayMessageTemplate string
	// BirthdayMessageTemplateValidator is a validator for the "birthday_message_template" field. It is called by the builders before save.
	BirthdayMessageTemplateValidator func(string) error
)

// BirthdayVisibility defines the type for the "birthday_visibility" enum field.
type BirthdayVisibility string

// BirthdayVisibilityPRIVATE is the default value of the BirthdayVisibility enum.
const DefaultBirthdayVisibility = BirthdayVisibilityPRIVATE

// BirthdayVisibility values.
const (
	BirthdayVisibilityPUBLIC  BirthdayVisibility = "PUBLIC"
	BirthdayVisibilityPRIVATE BirthdayVisibility = "PRIVATE"
)

func (bv BirthdayVisibility) String() string {
	return string(bv)
}

// BirthdayVisibilityValidator is a validator for the "birthday_visibility" field enum values. It is called by the builders before save.
func BirthdayVisibilityValidator(bv BirthdayVisibility) error {
	switch bv {
	case BirthdayVisibilityPUBLIC, BirthdayVisibilityPRIVATE:
		return nil
	default:
		return fmt.Errorf("company: invalid enum value for birthday_visibility field: %q", bv)
	}
}

// OrderOption defines the ordering options for the Company queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPrimaryColor orders the results by the primary_color field.
func ByPrimaryColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryColor, opts...).ToFunc()
}

// BySecondaryColor orders the results by the secondary_color field.
func BySecondaryColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecondaryColor, opts...).ToFunc()
}

// ByLogoURL orders the results by the logo_url field.
func ByLogoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogoURL, opts...).ToFunc()
}

// ByFooterMessage orders the results by the footer_message field.
func ByFooterMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFooterMessage, opts...).ToFunc()
}

// ByBirthdayNotificationsEnabled orders the results by the birthday_notifications_enabled field.
func ByBirthdayNotificationsEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthdayNotificationsEnabled, opts...).ToFunc()
}

// ByBirthdayNotifySelf orders the results by the birthday_notify_self field.
func ByBirthdayNotifySelf(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthdayNotifySelf, opts...).ToFunc()
}

// ByBirthdayNotifyManagers orders the results by the birthday_notify_managers field.
func ByBirthdayNotifyManagers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthdayNotifyManagers, opts...).ToFunc()
}

// ByBirthdayNotifyTeam orders the results by the birthday_notify_team field.
func ByBirthdayNotifyTeam(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthdayNotifyTeam, opts...).ToFunc()
}

// ByBirthdayVisibility orders the results by the birthday_visibility field.
func ByBirthdayVisibility(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthdayVisibility, opts...).ToFunc()
}

// ByBirthdayMessageTemplate orders the results by the birthday_message_template field.
func ByBirthdayMessageTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthdayMessageTemplate, opts...).ToFunc()
}

// ByUsersCount orders the results by users count.
func ByUsersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUsersStep(), opts...)
	}
}

// ByUsers orders the results by users terms.
func ByUsers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTeamsCount orders the results by teams count.
func ByTeamsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTeamsStep(), opts...)
	}
}

// ByTeams orders the results by teams terms.
func ByTeams(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTeamsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEmailTemplatesCount orders the results by email_templates count.
func ByEmailTemplatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEmailTemplatesStep(), opts...)
	}
}

// ByEmailTemplates orders the results by email_templates terms.
func ByEmailTemplates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEmailTemplatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChatRoomsCount orders the results by chat_rooms count.
func ByChatRoomsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatRoomsStep(), opts...)
	}
}

// ByChatRooms orders the results by chat_rooms terms.
func ByChatRooms(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatRoomsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUsersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UsersTable, UsersColumn),
	)
}
func newTeamsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TeamsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TeamsTable, TeamsColumn),
	)
}
func newEmailTemplatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EmailTemplatesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EmailTemplatesTable, EmailTemplatesColumn),
	)
}
func newChatRoomsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatRoomsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatRoomsTable, ChatRoomsColumn),
	)
}
