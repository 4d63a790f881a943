// Code generated by ent, DO NOT EDIT.

package notificationpreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the notificationpreference type in the database.
	Label = "notification_preference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldEmailOnTaskAssigned holds the string denoting the email_on_task_assigned field in the database.
	FieldEmailOnTaskAssigned = "email_on_task_assigned"
	// FieldEmailOnTaskCompleted holds the string denoting the email_on_task_completed field in the database.
	FieldEmailOnTaskCompleted = "email_on_task_completed"
	// FieldEmailOnTaskComment holds the string denoting the email_on_task_comment field in the database.
	FieldEmailOnTaskComment = "email_on_task_comment"
	// FieldEmailOnMention holds the string denoting the email_on_mention field in the database.
	FieldEmailOnMention = "email_on_mention"
	// FieldEmailOnDeadline holds the string denoting the email_on_deadline field in the database.
	FieldEmailOnDeadline = "email_on_deadline"
	// FieldEmailOnShiftAssigned holds the string denoting the email_on_shift_assigned field in the database.
	FieldEmailOnShiftAssigned = "email_on_shift_assigned"
	// FieldEmailOnShiftSwap holds the string denoting the email_on_shift_swap field in the database.
	FieldEmailOnShiftSwap = "email_on_shift_swap"
	// FieldEmailOnTimeOff holds the string denoting the email_on_time_off field in the database.
	FieldEmailOnTimeOff = "email_on_time_off"
	// FieldEmailOnMessage holds the string denoting the email_on_message field in the database.
	FieldEmailOnMessage = "email_on_message"
	// FieldPushOnTaskAssigned holds the string denoting the push_on_task_assigned field in the database.
	FieldPushOnTaskAssigned = "push_on_task_assigned"
	// FieldPushOnTaskComment holds the string denoting the push_on_task_comment field in the database.
	FieldPushOnTaskComment = "push_on_task_comment"
	// FieldPushOnMention holds the string denoting the push_on_mention field in the database.
	FieldPushOnMention = "push_on_mention"
	// FieldPushOnMessage holds the string denoting the push_on_message field in the database.
	FieldPushOnMessage = "push_on_message"
	// FieldPushOnShiftSwap holds the string denoting the push_on_shift_swap field in the database.
	FieldPushOnShiftSwap = "push_on_shift_swap"
	// FieldPushOnTimeOff holds the string denoting the push_on_time_off field in the database.
	FieldPushOnTimeOff = "push_on_time_off"
	// FieldPushEnabled holds the string denoting the push_enabled field in the database.
	FieldPushEnabled = "push_enabled"
	// FieldDailyDigest holds the string denoting the daily_digest field in the database.
	FieldDailyDigest = "daily_digest"
	// FieldWeeklyDigest holds the string denoting the weekly_digest field in the database.
	FieldWeeklyDigest = "weekly_digest"
	// FieldMonthlyDigest holds the string denoting the monthly_digest field in the database.
	FieldMonthlyDigest = "monthly_digest"
	// FieldDigestTime holds the string denoting the digest_time field in the database.
	FieldDigestTime = "digest_time"
	// FieldDigestDayOfWeek holds the string denoting the digest_day_of_week field in the database.
	FieldDigestDayOfWeek = "digest_day_of_week"
	// FieldDigestDayOfMonth holds the string denoting the digest_day_of_month field in the database.
	FieldDigestDayOfMonth = "digest_day_of_month"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the notificationpreference in the database.
	Table = "notification_preferences"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "notification_preferences"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_preference"
)

// Columns holds all SQL columns for notificationpreference fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldEmailOnTaskAssigned,
	FieldEmailOnTaskCompleted,
	FieldEmailOnTaskComment,
	FieldEmailOnMention,
	FieldEmailOnDeadline,
	FieldEmailOnShiftAssigned,
	FieldEmailOnShiftSwap,
	FieldEmailOnTimeOff,
	FieldEmailOnMessage,
	FieldPushOnTaskAssigned,
	FieldPushOnTaskComment,
	FieldPushOnMention,
	FieldPushOnMessage,
	FieldPushOnShiftSwap,
	FieldPushOnTimeOff,
	FieldPushEnabled,
	FieldDailyDigest,
	FieldWeeklyDigest,
	FieldMonthlyDigest,
	FieldDigestTime,
	FieldDigestDayOfWeek,
	FieldDigestDayOfMonth,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "notification_preferences"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"user_preference",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
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
	// DefaultEmailOnTaskAssigned holds the default value on creation for the "email_on_task_assigned" field.
	DefaultEmailOnTaskAssigned bool
	// DefaultEmailOnTaskCompleted holds the default value on creation for the "email_on_task_completed" field.
	DefaultEmailOnTaskCompleted bool
	// DefaultEmailOnTaskComment holds the default value on creation for the "email_on_task_comment" field.
	DefaultEmailOnTaskComment bool
	// DefaultEmailOnMention holds the default value on creation for the "email_on_mention" field.
	DefaultEmailOnMention bool
	// DefaultEmailOnDeadline holds the default value on creation for the "email_on_deadline" field.
	DefaultEmailOnDeadline bool
	// DefaultEmailOnShiftAssigned holds the default value on creation for the "email_on_shift_assigned" field.
	DefaultEmailOnShiftAssigned bool
	// DefaultEmailOnShiftSwap holds the default value on creation for the "email_on_shift_swap" field.
	DefaultEmailOnShiftSwap bool
	// DefaultEmailOnTimeOff holds the default value on creation for the "email_on_time_off" field.
	DefaultEmailOnTimeOff bool
	// DefaultEmailOnMessage holds the default value on creation for the "email_on_message" field.
	DefaultEmailOnMessage bool
	// DefaultPushOnTaskAssigned holds the default value on creation for the "push_on_task_assigned" field.
	DefaultPushOnTaskAssigned bool
	// DefaultPushOnTaskComment holds the default value on creation for the "push_on_task_comment" field.
	DefaultPushOnTaskComment bool
	// DefaultPushOnMention holds the default value on creation for the "push_on_mention" field.
	DefaultPushOnMention bool
	// DefaultPushOnMessage holds the default value on creation for the "push_on_message" field.
	DefaultPushOnMessage bool
	// DefaultPushOnShiftSwap holds the default value on creation for the "push_on_shift_swap" field.
	DefaultPushOnShiftSwap bool
	// DefaultPushOnTimeOff holds the default value on creation for the "push_on_time_off" field.
	DefaultPushOnTimeOff bool
	// DefaultPushEnabled holds the default value on creation for the "push_enabled" field.
	DefaultPushEnabled bool
	// DefaultDailyDigest holds the default value on creation for the "daily_digest" field.
	DefaultDailyDigest bool
	// DefaultWeeklyDigest holds the default value on creation for the "weekly_digest" field.
	DefaultWeeklyDigest bool
	// DefaultMonthlyDigest holds the default value on creation for the "monthly_digest" field.
	DefaultMonthlyDigest bool
	// DefaultDigestTime holds the default value on creation for the "digest_time" field.
	DefaultDigestTime string
	// DigestTimeValidator is a validator for the "digest_time" field. It is called by the builders before save.
	DigestTimeValidator func(string) error
	// DefaultDigestDayOfWeek holds the default value on creation for the "digest_day_of_week" field.
	DefaultDigestDayOfWeek int
	// DigestDayOfWeekValidator is a validator for the "digest_day_of_week" field. It is called by the builders before save.
	DigestDayOfWeekValidator func(int) error
	// DefaultDigestDayOfMonth holds the default value on creation for the "digest_day_of_month" field.
	DefaultDigestDayOfMonth int
	// DigestDayOfMonthValidator is a validator for the "digest_day_of_month" field. It is called by the builders before save.
	DigestDayOfMonthValidator func(int) error
)

// OrderOption defines the ordering options for the NotificationPreference queries.
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

// ByEmailOnTaskAssigned orders the results by the email_on_task_assigned field.
func ByEmailOnTaskAssigned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailOnTaskAssigned, opts...).ToFunc()
}

// ByEmailOnTaskCompleted orders the results by the email_on_task_completed field.
func ByEmailOnTaskCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailOnTaskCompleted, opts...).ToFunc()
}

// ByEmailOnTaskComment orders the results by the email_on_task_comment field.
func ByEmailOnTaskComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailOnTaskComment, opts...).ToFunc()
}

// ByEmailOnMention orders the results by the email_on_mention field.
func ByEmailOnMention(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailOnMention, opts...).ToFunc()
}

// ByEmailOnDeadline orders the results by the email_on_deadline field.
func ByEmailOnDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailOnDeadline, opts...).ToFunc()
}

// ByEmailOnShiftAssigned orders the results by the email_on_shift_assigned field.
func ByEmailOnShiftAssigned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailOnShiftAssigned, opts...).ToFunc()
}

// ByEmailOnShiftSwap orders the results by the email_on_shift_swap field.
func ByEmailOnShiftSwap(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailOnShiftSwap, opts...).ToFunc()
}

// ByEmailOnTimeOff orders the results by the email_on_time_off field.
func ByEmailOnTimeOff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailOnTimeOff, opts...).ToFunc()
}

// ByEmailOnMessage orders the results by the email_on_message field.
func ByEmailOnMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailOnMessage, opts...).ToFunc()
}

// ByPushOnTaskAssigned orders the results by the push_on_task_assigned field.
func ByPushOnTaskAssigned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushOnTaskAssigned, opts...).ToFunc()
}

// ByPushOnTaskComment orders the results by the push_on_task_comment field.
func ByPushOnTaskComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushOnTaskComment, opts...).ToFunc()
}

// ByPushOnMention orders the results by the push_on_mention field.
func ByPushOnMention(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushOnMention, opts...).ToFunc()
}

// ByPushOnMessage orders the results by the push_on_message field.
func ByPushOnMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushOnMessage, opts...).ToFunc()
}

// ByPushOnShiftSwap orders the results by the push_on_shift_swap field.
func ByPushOnShiftSwap(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushOnShiftSwap, opts...).ToFunc()
}

// ByPushOnTimeOff orders the results by the push_on_time_off field.
func ByPushOnTimeOff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushOnTimeOff, opts...).ToFunc()
}

// ByPushEnabled orders the results by the push_enabled field.
func ByPushEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushEnabled, opts...).ToFunc()
}

// ByDailyDigest orders the results by the daily_digest field.
func ByDailyDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyDigest, opts...).ToFunc()
}

// ByWeeklyDigest orders the results by the weekly_digest field.
func ByWeeklyDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeeklyDigest, opts...).ToFunc()
}

// ByMonthlyDigest orders the results by the monthly_digest field.
func ByMonthlyDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyDigest, opts...).ToFunc()
}

// ByDigestTime orders the results by the digest_time field.
func ByDigestTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDigestTime, opts...).ToFunc()
}

// ByDigestDayOfWeek orders the results by the digest_day_of_week field.
func ByDigestDayOfWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDigestDayOfWeek, opts...).ToFunc()
}

// ByDigestDayOfMonth orders the results by the digest_day_of_month field.
func ByDigestDayOfMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDigestDayOfMonth, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
	)
}
