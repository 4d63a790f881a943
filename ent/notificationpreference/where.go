// Code generated by ent, DO NOT EDIT.

package notificationpreference

import (
	"time"

	"crewpulse.io/crewpulse/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmailOnTaskAssigned applies equality check predicate on the "email_on_task_assigned" field. It's identical to EmailOnTaskAssignedEQ.
func EmailOnTaskAssigned(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnTaskAssigned, v))
}

// EmailOnTaskCompleted applies equality check predicate on the "email_on_task_completed" field. It's identical to EmailOnTaskCompletedEQ.
func EmailOnTaskCompleted(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnTaskCompleted, v))
}

// EmailOnTaskComment applies equality check predicate on the "email_on_task_comment" field. It's identical to EmailOnTaskCommentEQ.
func EmailOnTaskComment(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnTaskComment, v))
}

// EmailOnMention applies equality check predicate on the "email_on_mention" field. It's identical to EmailOnMentionEQ.
func EmailOnMention(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnMention, v))
}

// EmailOnDeadline applies equality check predicate on the "email_on_deadline" field. It's identical to EmailOnDeadlineEQ.
func EmailOnDeadline(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnDeadline, v))
}

// EmailOnShiftAssigned applies equality check predicate on the "email_on_shift_assigned" field. It's identical to EmailOnShiftAssignedEQ.
func EmailOnShiftAssigned(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnShiftAssigned, v))
}

// EmailOnShiftSwap applies equality check predicate on the "email_on_shift_swap" field. It's identical to EmailOnShiftSwapEQ.
func EmailOnShiftSwap(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnShiftSwap, v))
}

// EmailOnTimeOff applies equality check predicate on the "email_on_time_off" field. It's identical to EmailOnTimeOffEQ.
func EmailOnTimeOff(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnTimeOff, v))
}

// EmailOnMessage applies equality check predicate on the "email_on_message" field. It's identical to EmailOnMessageEQ.
func EmailOnMessage(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnMessage, v))
}

// PushOnTaskAssigned applies equality check predicate on the "push_on_task_assigned" field. It's identical to PushOnTaskAssignedEQ.
func PushOnTaskAssigned(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushOnTaskAssigned, v))
}

// PushOnTaskComment applies equality check predicate on the "push_on_task_comment" field. It's identical to PushOnTaskCommentEQ.
func PushOnTaskComment(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushOnTaskComment, v))
}

// PushOnMention applies equality check predicate on the "push_on_mention" field. It's identical to PushOnMentionEQ.
func PushOnMention(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushOnMention, v))
}

// PushOnMessage applies equality check predicate on the "push_on_message" field. It's identical to PushOnMessageEQ.
func PushOnMessage(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushOnMessage, v))
}

// PushOnShiftSwap applies equality check predicate on the "push_on_shift_swap" field. It's identical to PushOnShiftSwapEQ.
func PushOnShiftSwap(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushOnShiftSwap, v))
}

// PushOnTimeOff applies equality check predicate on the "push_on_time_off" field. It's identical to PushOnTimeOffEQ.
func PushOnTimeOff(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushOnTimeOff, v))
}

// PushEnabled applies equality check predicate on the "push_enabled" field. It's identical to PushEnabledEQ.
func PushEnabled(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushEnabled, v))
}

// DailyDigest applies equality check predicate on the "daily_digest" field. It's identical to DailyDigestEQ.
func DailyDigest(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldDailyDigest, v))
}

// WeeklyDigest applies equality check predicate on the "weekly_digest" field. It's identical to WeeklyDigestEQ.
func WeeklyDigest(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldWeeklyDigest, v))
}

// MonthlyDigest applies equality check predicate on the "monthly_digest" field. It's identical to MonthlyDigestEQ.
func MonthlyDigest(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldMonthlyDigest, v))
}

// DigestTime applies equality check predicate on the "digest_time" field. It's identical to DigestTimeEQ.
func DigestTime(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldDigestTime, v))
}

// DigestDayOfWeek applies equality check predicate on the "digest_day_of_week" field. It's identical to DigestDayOfWeekEQ.
func DigestDayOfWeek(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldDigestDayOfWeek, v))
}

// DigestDayOfMonth applies equality check predicate on the "digest_day_of_month" field. It's identical to DigestDayOfMonthEQ.
func DigestDayOfMonth(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldDigestDayOfMonth, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldUpdatedAt, v))
}

// EmailOnTaskAssignedEQ applies the EQ predicate on the "email_on_task_assigned" field.
func EmailOnTaskAssignedEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnTaskAssigned, v))
}

// EmailOnTaskAssignedNEQ applies the NEQ predicate on the "email_on_task_assigned" field.
func EmailOnTaskAssignedNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldEmailOnTaskAssigned, v))
}

// EmailOnTaskCompletedEQ applies the EQ predicate on the "email_on_task_completed" field.
func EmailOnTaskCompletedEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnTaskCompleted, v))
}

// EmailOnTaskCompletedNEQ applies the NEQ predicate on the "email_on_task_completed" field.
func EmailOnTaskCompletedNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldEmailOnTaskCompleted, v))
}

// EmailOnTaskCommentEQ applies the EQ predicate on the "email_on_task_comment" field.
func EmailOnTaskCommentEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnTaskComment, v))
}

// EmailOnTaskCommentNEQ applies the NEQ predicate on the "email_on_task_comment" field.
func EmailOnTaskCommentNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldEmailOnTaskComment, v))
}

// EmailOnMentionEQ applies the EQ predicate on the "email_on_mention" field.
func EmailOnMentionEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnMention, v))
}

// EmailOnMentionNEQ applies the NEQ predicate on the "email_on_mention" field.
func EmailOnMentionNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldEmailOnMention, v))
}

// EmailOnDeadlineEQ applies the EQ predicate on the "email_on_deadline" field.
func EmailOnDeadlineEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnDeadline, v))
}

// EmailOnDeadlineNEQ applies the NEQ predicate on the "email_on_deadline" field.
func EmailOnDeadlineNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldEmailOnDeadline, v))
}

// EmailOnShiftAssignedEQ applies the EQ predicate on the "email_on_shift_assigned" field.
func EmailOnShiftAssignedEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnShiftAssigned, v))
}

// EmailOnShiftAssignedNEQ applies the NEQ predicate on the "email_on_shift_assigned" field.
func EmailOnShiftAssignedNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldEmailOnShiftAssigned, v))
}

// EmailOnShiftSwapEQ applies the EQ predicate on the "email_on_shift_swap" field.
func EmailOnShiftSwapEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnShiftSwap, v))
}

// EmailOnShiftSwapNEQ applies the NEQ predicate on the "email_on_shift_swap" field.
func EmailOnShiftSwapNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldEmailOnShiftSwap, v))
}

// EmailOnTimeOffEQ applies the EQ predicate on the "email_on_time_off" field.
func EmailOnTimeOffEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnTimeOff, v))
}

// EmailOnTimeOffNEQ applies the NEQ predicate on the "email_on_time_off" field.
func EmailOnTimeOffNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldEmailOnTimeOff, v))
}

// EmailOnMessageEQ applies the EQ predicate on the "email_on_message" field.
func EmailOnMessageEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldEmailOnMessage, v))
}

// EmailOnMessageNEQ applies the NEQ predicate on the "email_on_message" field.
func EmailOnMessageNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldEmailOnMessage, v))
}

// PushOnTaskAssignedEQ applies the EQ predicate on the "push_on_task_assigned" field.
func PushOnTaskAssignedEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushOnTaskAssigned, v))
}

// PushOnTaskAssignedNEQ applies the NEQ predicate on the "push_on_task_assigned" field.
func PushOnTaskAssignedNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldPushOnTaskAssigned, v))
}

// PushOnTaskCommentEQ applies the EQ predicate on the "push_on_task_comment" field.
func PushOnTaskCommentEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushOnTaskComment, v))
}

// PushOnTaskCommentNEQ applies the NEQ predicate on the "push_on_task_comment" field.
func PushOnTaskCommentNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldPushOnTaskComment, v))
}

// PushOnMentionEQ applies the EQ predicate on the "push_on_mention" field.
func PushOnMentionEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushOnMention, v))
}

// PushOnMentionNEQ applies the NEQ predicate on the "push_on_mention" field.
func PushOnMentionNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldPushOnMention, v))
}

// PushOnMessageEQ applies the EQ predicate on the "push_on_message" field.
func PushOnMessageEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushOnMessage, v))
}

// PushOnMessageNEQ applies the NEQ predicate on the "push_on_message" field.
func PushOnMessageNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldPushOnMessage, v))
}

// PushOnShiftSwapEQ applies the EQ predicate on the "push_on_shift_swap" field.
func PushOnShiftSwapEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushOnShiftSwap, v))
}

// PushOnShiftSwapNEQ applies the NEQ predicate on the "push_on_shift_swap" field.
func PushOnShiftSwapNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldPushOnShiftSwap, v))
}

// PushOnTimeOffEQ applies the EQ predicate on the "push_on_time_off" field.
func PushOnTimeOffEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushOnTimeOff, v))
}

// PushOnTimeOffNEQ applies the NEQ predicate on the "push_on_time_off" field.
func PushOnTimeOffNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldPushOnTimeOff, v))
}

// PushEnabledEQ applies the EQ predicate on the "push_enabled" field.
func PushEnabledEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldPushEnabled, v))
}

// PushEnabledNEQ applies the NEQ predicate on the "push_enabled" field.
func PushEnabledNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldPushEnabled, v))
}

// DailyDigestEQ applies the EQ predicate on the "daily_digest" field.
func DailyDigestEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldDailyDigest, v))
}

// DailyDigestNEQ applies the NEQ predicate on the "daily_digest" field.
func DailyDigestNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldDailyDigest, v))
}

// WeeklyDigestEQ applies the EQ predicate on the "weekly_digest" field.
func WeeklyDigestEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldWeeklyDigest, v))
}

// WeeklyDigestNEQ applies the NEQ predicate on the "weekly_digest" field.
func WeeklyDigestNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldWeeklyDigest, v))
}

// MonthlyDigestEQ applies the EQ predicate on the "monthly_digest" field.
func MonthlyDigestEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldMonthlyDigest, v))
}

// MonthlyDigestNEQ applies the NEQ predicate on the "monthly_digest" field.
func MonthlyDigestNEQ(v bool) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldMonthlyDigest, v))
}

// DigestTimeEQ applies the EQ predicate on the "digest_time" field.
func DigestTimeEQ(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldDigestTime, v))
}

// DigestTimeNEQ applies the NEQ predicate on the "digest_time" field.
func DigestTimeNEQ(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldDigestTime, v))
}

// DigestTimeIn applies the In predicate on the "digest_time" field.
func DigestTimeIn(vs ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldDigestTime, vs...))
}

// DigestTimeNotIn applies the NotIn predicate on the "digest_time" field.
func DigestTimeNotIn(vs ...string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldDigestTime, vs...))
}

// DigestTimeGT applies the GT predicate on the "digest_time" field.
func DigestTimeGT(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldDigestTime, v))
}

// DigestTimeGTE applies the GTE predicate on the "digest_time" field.
func DigestTimeGTE(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldDigestTime, v))
}

// DigestTimeLT applies the LT predicate on the "digest_time" field.
func DigestTimeLT(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldDigestTime, v))
}

// DigestTimeLTE applies the LTE predicate on the "digest_time" field.
func DigestTimeLTE(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldDigestTime, v))
}

// DigestTimeContains applies the Contains predicate on the "digest_time" field.
func DigestTimeContains(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldContains(FieldDigestTime, v))
}

// DigestTimeHasPrefix applies the HasPrefix predicate on the "digest_time" field.
func DigestTimeHasPrefix(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldHasPrefix(FieldDigestTime, v))
}

// DigestTimeHasSuffix applies the HasSuffix predicate on the "digest_time" field.
func DigestTimeHasSuffix(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldHasSuffix(FieldDigestTime, v))
}

// DigestTimeEqualFold applies the EqualFold predicate on the "digest_time" field.
func DigestTimeEqualFold(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEqualFold(FieldDigestTime, v))
}

// DigestTimeContainsFold applies the ContainsFold predicate on the "digest_time" field.
func DigestTimeContainsFold(v string) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldContainsFold(FieldDigestTime, v))
}

// DigestDayOfWeekEQ applies the EQ predicate on the "digest_day_of_week" field.
func DigestDayOfWeekEQ(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldDigestDayOfWeek, v))
}

// DigestDayOfWeekNEQ applies the NEQ predicate on the "digest_day_of_week" field.
func DigestDayOfWeekNEQ(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldDigestDayOfWeek, v))
}

// DigestDayOfWeekIn applies the In predicate on the "digest_day_of_week" field.
func DigestDayOfWeekIn(vs ...int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldDigestDayOfWeek, vs...))
}

// DigestDayOfWeekNotIn applies the NotIn predicate on the "digest_day_of_week" field.
func DigestDayOfWeekNotIn(vs ...int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldDigestDayOfWeek, vs...))
}

// DigestDayOfWeekGT applies the GT predicate on the "digest_day_of_week" field.
func DigestDayOfWeekGT(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldDigestDayOfWeek, v))
}

// DigestDayOfWeekGTE applies the GTE predicate on the "digest_day_of_week" field.
func DigestDayOfWeekGTE(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldDigestDayOfWeek, v))
}

// DigestDayOfWeekLT applies the LT predicate on the "digest_day_of_week" field.
func DigestDayOfWeekLT(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldDigestDayOfWeek, v))
}

// DigestDayOfWeekLTE applies the LTE predicate on the "digest_day_of_week" field.
func DigestDayOfWeekLTE(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldDigestDayOfWeek, v))
}

// DigestDayOfMonthEQ applies the EQ predicate on the "digest_day_of_month" field.
func DigestDayOfMonthEQ(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldEQ(FieldDigestDayOfMonth, v))
}

// DigestDayOfMonthNEQ applies the NEQ predicate on the "digest_day_of_month" field.
func DigestDayOfMonthNEQ(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNEQ(FieldDigestDayOfMonth, v))
}

// DigestDayOfMonthIn applies the In predicate on the "digest_day_of_month" field.
func DigestDayOfMonthIn(vs ...int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldIn(FieldDigestDayOfMonth, vs...))
}

// DigestDayOfMonthNotIn applies the NotIn predicate on the "digest_day_of_month" field.
func DigestDayOfMonthNotIn(vs ...int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldNotIn(FieldDigestDayOfMonth, vs...))
}

// DigestDayOfMonthGT applies the GT predicate on the "digest_day_of_month" field.
func DigestDayOfMonthGT(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGT(FieldDigestDayOfMonth, v))
}

// DigestDayOfMonthGTE applies the GTE predicate on the "digest_day_of_month" field.
func DigestDayOfMonthGTE(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldGTE(FieldDigestDayOfMonth, v))
}

// DigestDayOfMonthLT applies the LT predicate on the "digest_day_of_month" field.
func DigestDayOfMonthLT(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLT(FieldDigestDayOfMonth, v))
}

// DigestDayOfMonthLTE applies the LTE predicate on the "digest_day_of_month" field.
func DigestDayOfMonthLTE(v int) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.FieldLTE(FieldDigestDayOfMonth, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.NotificationPreference {
	return predicate.NotificationPreference(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.NotificationPreference {
	return predicate.NotificationPreference(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationPreference) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationPreference) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationPreference) predicate.NotificationPreference {
	return predicate.NotificationPreference(sql.NotPredicates(p))
}
