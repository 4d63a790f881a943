// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewpulse.io/crewpulse/ent/notificationpreference"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// NotificationPreferenceCreate is the builder for creating a NotificationPreference entity.
type NotificationPreferenceCreate struct {
	config
	mutation *NotificationPreferenceMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationPreferenceCreate) SetCreatedAt(v time.Time) *NotificationPreferenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableCreatedAt(v *time.Time) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NotificationPreferenceCreate) SetUpdatedAt(v time.Time) *NotificationPreferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableUpdatedAt(v *time.Time) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEmailOnTaskAssigned sets the "email_on_task_assigned" field.
func (_c *NotificationPreferenceCreate) SetEmailOnTaskAssigned(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetEmailOnTaskAssigned(v)
	return _c
}

// SetNillableEmailOnTaskAssigned sets the "email_on_task_assigned" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableEmailOnTaskAssigned(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetEmailOnTaskAssigned(*v)
	}
	return _c
}

// SetEmailOnTaskCompleted sets the "email_on_task_completed" field.
func (_c *NotificationPreferenceCreate) SetEmailOnTaskCompleted(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetEmailOnTaskCompleted(v)
	return _c
}

// SetNillableEmailOnTaskCompleted sets the "email_on_task_completed" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableEmailOnTaskCompleted(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetEmailOnTaskCompleted(*v)
	}
	return _c
}

// SetEmailOnTaskComment sets the "email_on_task_comment" field.
func (_c *NotificationPreferenceCreate) SetEmailOnTaskComment(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetEmailOnTaskComment(v)
	return _c
}

// SetNillableEmailOnTaskComment sets the "email_on_task_comment" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableEmailOnTaskComment(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetEmailOnTaskComment(*v)
	}
	return _c
}

// SetEmailOnMention sets the "email_on_mention" field.
func (_c *NotificationPreferenceCreate) SetEmailOnMention(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetEmailOnMention(v)
	return _c
}

// SetNillableEmailOnMention sets the "email_on_mention" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableEmailOnMention(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetEmailOnMention(*v)
	}
	return _c
}

// SetEmailOnDeadline sets the "email_on_deadline" field.
func (_c *NotificationPreferenceCreate) SetEmailOnDeadline(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetEmailOnDeadline(v)
	return _c
}

// SetNillableEmailOnDeadline sets the "email_on_deadline" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableEmailOnDeadline(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetEmailOnDeadline(*v)
	}
	return _c
}

// SetEmailOnShiftAssigned sets the "email_on_shift_assigned" field.
func (_c *NotificationPreferenceCreate) SetEmailOnShiftAssigned(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetEmailOnShiftAssigned(v)
	return _c
}

// SetNillableEmailOnShiftAssigned sets the "email_on_shift_assigned" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableEmailOnShiftAssigned(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetEmailOnShiftAssigned(*v)
	}
	return _c
}

// SetEmailOnShiftSwap sets the "email_on_shift_swap" field.
func (_c *NotificationPreferenceCreate) SetEmailOnShiftSwap(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetEmailOnShiftSwap(v)
	return _c
}

// SetNillableEmailOnShiftSwap sets the "email_on_shift_swap" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableEmailOnShiftSwap(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetEmailOnShiftSwap(*v)
	}
	return _c
}

// SetEmailOnTimeOff sets the "email_on_time_off" field.
func (_c *NotificationPreferenceCreate) SetEmailOnTimeOff(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetEmailOnTimeOff(v)
	return _c
}

// SetNillableEmailOnTimeOff sets the "email_on_time_off" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableEmailOnTimeOff(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetEmailOnTimeOff(*v)
	}
	return _c
}

// SetEmailOnMessage sets the "email_on_message" field.
func (_c *NotificationPreferenceCreate) SetEmailOnMessage(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetEmailOnMessage(v)
	return _c
}

// SetNillableEmailOnMessage sets the "email_on_message" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableEmailOnMessage(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetEmailOnMessage(*v)
	}
	return _c
}

// SetPushOnTaskAssigned sets the "push_on_task_assigned" field.
func (_c *NotificationPreferenceCreate) SetPushOnTaskAssigned(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetPushOnTaskAssigned(v)
	return _c
}

// SetNillablePushOnTaskAssigned sets the "push_on_task_assigned" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillablePushOnTaskAssigned(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetPushOnTaskAssigned(*v)
	}
	return _c
}

// SetPushOnTaskComment sets the "push_on_task_comment" field.
func (_c *NotificationPreferenceCreate) SetPushOnTaskComment(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetPushOnTaskComment(v)
	return _c
}

// SetNillablePushOnTaskComment sets the "push_on_task_comment" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillablePushOnTaskComment(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetPushOnTaskComment(*v)
	}
	return _c
}

// SetPushOnMention sets the "push_on_mention" field.
func (_c *NotificationPreferenceCreate) SetPushOnMention(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetPushOnMention(v)
	return _c
}

// SetNillablePushOnMention sets the "push_on_mention" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillablePushOnMention(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetPushOnMention(*v)
	}
	return _c
}

// SetPushOnMessage sets the "push_on_message" field.
func (_c *NotificationPreferenceCreate) SetPushOnMessage(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetPushOnMessage(v)
	return _c
}

// SetNillablePushOnMessage sets the "push_on_message" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillablePushOnMessage(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetPushOnMessage(*v)
	}
	return _c
}

// SetPushOnShiftSwap sets the "push_on_shift_swap" field.
func (_c *NotificationPreferenceCreate) SetPushOnShiftSwap(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetPushOnShiftSwap(v)
	return _c
}

// SetNillablePushOnShiftSwap sets the "push_on_shift_swap" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillablePushOnShiftSwap(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetPushOnShiftSwap(*v)
	}
	return _c
}

// SetPushOnTimeOff sets the "push_on_time_off" field.
func (_c *NotificationPreferenceCreate) SetPushOnTimeOff(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetPushOnTimeOff(v)
	return _c
}

// SetNillablePushOnTimeOff sets the "push_on_time_off" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillablePushOnTimeOff(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetPushOnTimeOff(*v)
	}
	return _c
}

// SetPushEnabled sets the "push_enabled" field.
func (_c *NotificationPreferenceCreate) SetPushEnabled(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetPushEnabled(v)
	return _c
}

// SetNillablePushEnabled sets the "push_enabled" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillablePushEnabled(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetPushEnabled(*v)
	}
	return _c
}

// SetDailyDigest sets the "daily_digest" field.
func (_c *NotificationPreferenceCreate) SetDailyDigest(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetDailyDigest(v)
	return _c
}

// SetNillableDailyDigest sets the "daily_digest" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableDailyDigest(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetDailyDigest(*v)
	}
	return _c
}

// SetWeeklyDigest sets the "weekly_digest" field.
func (_c *NotificationPreferenceCreate) SetWeeklyDigest(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetWeeklyDigest(v)
	return _c
}

// SetNillableWeeklyDigest sets the "weekly_digest" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableWeeklyDigest(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetWeeklyDigest(*v)
	}
	return _c
}

// SetMonthlyDigest sets the "monthly_digest" field.
func (_c *NotificationPreferenceCreate) SetMonthlyDigest(v bool) *NotificationPreferenceCreate {
	_c.mutation.SetMonthlyDigest(v)
	return _c
}

// SetNillableMonthlyDigest sets the "monthly_digest" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableMonthlyDigest(v *bool) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetMonthlyDigest(*v)
	}
	return _c
}

// SetDigestTime sets the "digest_time" field.
func (_c *NotificationPreferenceCreate) SetDigestTime(v string) *NotificationPreferenceCreate {
	_c.mutation.SetDigestTime(v)
	return _c
}

// SetNillableDigestTime sets the "digest_time" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableDigestTime(v *string) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetDigestTime(*v)
	}
	return _c
}

// SetDigestDayOfWeek sets the "digest_day_of_week" field.
func (_c *NotificationPreferenceCreate) SetDigestDayOfWeek(v int) *NotificationPreferenceCreate {
	_c.mutation.SetDigestDayOfWeek(v)
	return _c
}

// SetNillableDigestDayOfWeek sets the "digest_day_of_week" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableDigestDayOfWeek(v *int) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetDigestDayOfWeek(*v)
	}
	return _c
}

// SetDigestDayOfMonth sets the "digest_day_of_month" field.
func (_c *NotificationPreferenceCreate) SetDigestDayOfMonth(v int) *NotificationPreferenceCreate {
	_c.mutation.SetDigestDayOfMonth(v)
	return _c
}

// SetNillableDigestDayOfMonth sets the "digest_day_of_month" field if the given value is not nil.
func (_c *NotificationPreferenceCreate) SetNillableDigestDayOfMonth(v *int) *NotificationPreferenceCreate {
	if v != nil {
		_c.SetDigestDayOfMonth(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationPreferenceCreate) SetID(v string) *NotificationPreferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *NotificationPreferenceCreate) SetUserID(id string) *NotificationPreferenceCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *NotificationPreferenceCreate) SetUser(v *User) *NotificationPreferenceCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the NotificationPreferenceMutation object of the builder.
func (_c *NotificationPreferenceCreate) Mutation() *NotificationPreferenceMutation {
	return _c.mutation
}

// Save creates the NotificationPreference in the database.
func (_c *NotificationPreferenceCreate) Save(ctx context.Context) (*NotificationPreference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationPreferenceCreate) SaveX(ctx context.Context) *NotificationPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationPreferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationPreferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationPreferenceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationpreference.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := notificationpreference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.EmailOnTaskAssigned(); !ok {
		v := notificationpreference.DefaultEmailOnTaskAssigned
		_c.mutation.SetEmailOnTaskAssigned(v)
	}
	if _, ok := _c.mutation.EmailOnTaskCompleted(); !ok {
		v := notificationpreference.DefaultEmailOnTaskCompleted
		_c.mutation.SetEmailOnTaskCompleted(v)
	}
	if _, ok := _c.mutation.EmailOnTaskComment(); !ok {
		v := notificationpreference.DefaultEmailOnTaskComment
		_c.mutation.SetEmailOnTaskComment(v)
	}
	if _, ok := _c.mutation.EmailOnMention(); !ok {
		v := notificationpreference.DefaultEmailOnMention
		_c.mutation.SetEmailOnMention(v)
	}
	if _, ok := _c.mutation.EmailOnDeadline(); !ok {
		v := notificationpreference.DefaultEmailOnDeadline
		_c.mutation.SetEmailOnDeadline(v)
	}
	if _, ok := _c.mutation.EmailOnShiftAssigned(); !ok {
		v := notificationpreference.DefaultEmailOnShiftAssigned
		_c.mutation.SetEmailOnShiftAssigned(v)
	}
	if _, ok := _c.mutation.EmailOnShiftSwap(); !ok {
		v := notificationpreference.DefaultEmailOnShiftSwap
		_c.mutation.SetEmailOnShiftSwap(v)
	}
	if _, ok := _c.mutation.EmailOnTimeOff(); !ok {
		v := notificationpreference.DefaultEmailOnTimeOff
		_c.mutation.SetEmailOnTimeOff(v)
	}
	if _, ok := _c.mutation.EmailOnMessage(); !ok {
		v := notificationpreference.DefaultEmailOnMessage
		_c.mutation.SetEmailOnMessage(v)
	}
	if _, ok := _c.mutation.PushOnTaskAssigned(); !ok {
		v := notificationpreference.DefaultPushOnTaskAssigned
		_c.mutation.SetPushOnTaskAssigned(v)
	}
	if _, ok := _c.mutation.PushOnTaskComment(); !ok {
		v := notificationpreference.DefaultPushOnTaskComment
		_c.mutation.SetPushOnTaskComment(v)
	}
	if _, ok := _c.mutation.PushOnMention(); !ok {
		v := notificationpreference.DefaultPushOnMention
		_c.mutation.SetPushOnMention(v)
	}
	if _, ok := _c.mutation.PushOnMessage(); !ok {
		v := notificationpreference.DefaultPushOnMessage
		_c.mutation.SetPushOnMessage(v)
	}
	if _, ok := _c.mutation.PushOnShiftSwap(); !ok {
		v := notificationpreference.DefaultPushOnShiftSwap
		_c.mutation.SetPushOnShiftSwap(v)
	}
	if _, ok := _c.mutation.PushOnTimeOff(); !ok {
		v := notificationpreference.DefaultPushOnTimeOff
		_c.mutation.SetPushOnTimeOff(v)
	}
	if _, ok := _c.mutation.PushEnabled(); !ok {
		v := notificationpreference.DefaultPushEnabled
		_c.mutation.SetPushEnabled(v)
	}
	if _, ok := _c.mutation.DailyDigest(); !ok {
		v := notificationpreference.DefaultDailyDigest
		_c.mutation.SetDailyDigest(v)
	}
	if _, ok := _c.mutation.WeeklyDigest(); !ok {
		v := notificationpreference.DefaultWeeklyDigest
		_c.mutation.SetWeeklyDigest(v)
	}
	if _, ok := _c.mutation.MonthlyDigest(); !ok {
		v := notificationpreference.DefaultMonthlyDigest
		_c.mutation.SetMonthlyDigest(v)
	}
	if _, ok := _c.mutation.DigestTime(); !ok {
		v := notificationpreference.DefaultDigestTime
		_c.mutation.SetDigestTime(v)
	}
	if _, ok := _c.mutation.DigestDayOfWeek(); !ok {
		v := notificationpreference.DefaultDigestDayOfWeek
		_c.mutation.SetDigestDayOfWeek(v)
	}
	if _, ok := _c.mutation.DigestDayOfMonth(); !ok {
		v := notificationpreference.DefaultDigestDayOfMonth
		_c.mutation.SetDigestDayOfMonth(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationPreferenceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NotificationPreference.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "NotificationPreference.updated_at"`)}
	}
	if _, ok := _c.mutation.EmailOnTaskAssigned(); !ok {
		return &ValidationError{Name: "email_on_task_assigned", err: errors.New(`ent: missing required field "NotificationPreference.email_on_task_assigned"`)}
	}
	if _, ok := _c.mutation.EmailOnTaskCompleted(); !ok {
		return &ValidationError{Name: "email_on_task_completed", err: errors.New(`ent: missing required field "NotificationPreference.email_on_task_completed"`)}
	}
	if _, ok := _c.mutation.EmailOnTaskComment(); !ok {
		return &ValidationError{Name: "email_on_task_comment", err: errors.New(`ent: missing required field "NotificationPreference.email_on_task_comment"`)}
	}
	if _, ok := _c.mutation.EmailOnMention(); !ok {
		return &ValidationError{Name: "email_on_mention", err: errors.New(`ent: missing required field "NotificationPreference.email_on_mention"`)}
	}
	if _, ok := _c.mutation.EmailOnDeadline(); !ok {
		return &ValidationError{Name: "email_on_deadline", err: errors.New(`ent: missing required field "NotificationPreference.email_on_deadline"`)}
	}
	if _, ok := _c.mutation.EmailOnShiftAssigned(); !ok {
		return &ValidationError{Name: "email_on_shift_assigned", err: errors.New(`ent: missing required field "NotificationPreference.email_on_shift_assigned"`)}
	}
	if _, ok := _c.mutation.EmailOnShiftSwap(); !ok {
		return &ValidationError{Name: "email_on_shift_swap", err: errors.New(`ent: missing required field "NotificationPreference.email_on_shift_swap"`)}
	}
	if _, ok := _c.mutation.EmailOnTimeOff(); !ok {
		return &ValidationError{Name: "email_on_time_off", err: errors.New(`ent: missing required field "NotificationPreference.email_on_time_off"`)}
	}
	if _, ok := _c.mutation.EmailOnMessage(); !ok {
		return &ValidationError{Name: "email_on_message", err: errors.New(`ent: missing required field "NotificationPreference.email_on_message"`)}
	}
	if _, ok := _c.mutation.PushOnTaskAssigned(); !ok {
		return &ValidationError{Name: "push_on_task_assigned", err: errors.New(`ent: missing required field "NotificationPreference.push_on_task_assigned"`)}
	}
	if _, ok := _c.mutation.PushOnTaskComment(); !ok {
		return &ValidationError{Name: "push_on_task_comment", err: errors.New(`ent: missing required field "NotificationPreference.push_on_task_comment"`)}
	}
	if _, ok := _c.mutation.PushOnMention(); !ok {
		return &ValidationError{Name: "push_on_mention", err: errors.New(`ent: missing required field "NotificationPreference.push_on_mention"`)}
	}
	if _, ok := _c.mutation.PushOnMessage(); !ok {
		return &ValidationError{Name: "push_on_message", err: errors.New(`ent: missing required field "NotificationPreference.push_on_message"`)}
	}
	if _, ok := _c.mutation.PushOnShiftSwap(); !ok {
		return &ValidationError{Name: "push_on_shift_swap", err: errors.New(`ent: missing required field "NotificationPreference.push_on_shift_swap"`)}
	}
	if _, ok := _c.mutation.PushOnTimeOff(); !ok {
		return &ValidationError{Name: "push_on_time_off", err: errors.New(`ent: missing required field "NotificationPreference.push_on_time_off"`)}
	}
	if _, ok := _c.mutation.PushEnabled(); !ok {
		return &ValidationError{Name: "push_enabled", err: errors.New(`ent: missing required field "NotificationPreference.push_enabled"`)}
	}
	if _, ok := _c.mutation.DailyDigest(); !ok {
		return &ValidationError{Name: "daily_digest", err: errors.New(`ent: missing required field "NotificationPreference.daily_digest"`)}
	}
	if _, ok := _c.mutation.WeeklyDigest(); !ok {
		return &ValidationError{Name: "weekly_digest", err: errors.New(`ent: missing required field "NotificationPreference.weekly_digest"`)}
	}
	if _, ok := _c.mutation.MonthlyDigest(); !ok {
		return &ValidationError{Name: "monthly_digest", err: errors.New(`ent: missing required field "NotificationPreference.monthly_digest"`)}
	}
	if _, ok := _c.mutation.DigestTime(); !ok {
		return &ValidationError{Name: "digest_time", err: errors.New(`ent: missing required field "NotificationPreference.digest_time"`)}
	}
	if v, ok := _c.mutation.DigestTime(); ok {
		if err := notificationpreference.DigestTimeValidator(v); err != nil {
			return &ValidationError{Name: "digest_time", err: fmt.Errorf(`ent: validator failed for field "NotificationPreference.digest_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DigestDayOfWeek(); !ok {
		return &ValidationError{Name: "digest_day_of_week", err: errors.New(`ent: missing required field "NotificationPreference.digest_day_of_week"`)}
	}
	if v, ok := _c.mutation.DigestDayOfWeek(); ok {
		if err := notificationpreference.DigestDayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "digest_day_of_week", err: fmt.Errorf(`ent: validator failed for field "NotificationPreference.digest_day_of_week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DigestDayOfMonth(); !ok {
		return &ValidationError{Name: "digest_day_of_month", err: errors.New(`ent: missing required field "NotificationPreference.digest_day_of_month"`)}
	}
	if v, ok := _c.mutation.DigestDayOfMonth(); ok {
		if err := notificationpreference.DigestDayOfMonthValidator(v); err != nil {
			return &ValidationError{Name: "digest_day_of_month", err: fmt.Errorf(`ent: validator failed for field "NotificationPreference.digest_day_of_month": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "NotificationPreference.user"`)}
	}
	return nil
}

func (_c *NotificationPreferenceCreate) sqlSave(ctx context.Context) (*NotificationPreference, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected NotificationPreference.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationPreferenceCreate) createSpec() (*NotificationPreference, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationPreference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationpreference.Table, sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationpreference.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpreference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.EmailOnTaskAssigned(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnTaskAssigned, field.TypeBool, value)
		_node.EmailOnTaskAssigned = value
	}
	if value, ok := _c.mutation.EmailOnTaskCompleted(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnTaskCompleted, field.TypeBool, value)
		_node.EmailOnTaskCompleted = value
	}
	if value, ok := _c.mutation.EmailOnTaskComment(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnTaskComment, field.TypeBool, value)
		_node.EmailOnTaskComment = value
	}
	if value, ok := _c.mutation.EmailOnMention(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnMention, field.TypeBool, value)
		_node.EmailOnMention = value
	}
	if value, ok := _c.mutation.EmailOnDeadline(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnDeadline, field.TypeBool, value)
		_node.EmailOnDeadline = value
	}
	if value, ok := _c.mutation.EmailOnShiftAssigned(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnShiftAssigned, field.TypeBool, value)
		_node.EmailOnShiftAssigned = value
	}
	if value, ok := _c.mutation.EmailOnShiftSwap(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnShiftSwap, field.TypeBool, value)
		_node.EmailOnShiftSwap = value
	}
	if value, ok := _c.mutation.EmailOnTimeOff(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnTimeOff, field.TypeBool, value)
		_node.EmailOnTimeOff = value
	}
	if value, ok := _c.mutation.EmailOnMessage(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnMessage, field.TypeBool, value)
		_node.EmailOnMessage = value
	}
	if value, ok := _c.mutation.PushOnTaskAssigned(); ok {
		_spec.SetField(notificationpreference.FieldPushOnTaskAssigned, field.TypeBool, value)
		_node.PushOnTaskAssigned = value
	}
	if value, ok := _c.mutation.PushOnTaskComment(); ok {
		_spec.SetField(notificationpreference.FieldPushOnTaskComment, field.TypeBool, value)
		_node.PushOnTaskComment = value
	}
	if value, ok := _c.mutation.PushOnMention(); ok {
		_spec.SetField(notificationpreference.FieldPushOnMention, field.TypeBool, value)
		_node.PushOnMention = value
	}
	if value, ok := _c.mutation.PushOnMessage(); ok {
		_spec.SetField(notificationpreference.FieldPushOnMessage, field.TypeBool, value)
		_node.PushOnMessage = value
	}
	if value, ok := _c.mutation.PushOnShiftSwap(); ok {
		_spec.SetField(notificationpreference.FieldPushOnShiftSwap, field.TypeBool, value)
		_node.PushOnShiftSwap = value
	}
	if value, ok := _c.mutation.PushOnTimeOff(); ok {
		_spec.SetField(notificationpreference.FieldPushOnTimeOff, field.TypeBool, value)
		_node.PushOnTimeOff = value
	}
	if value, ok := _c.mutation.PushEnabled(); ok {
		_spec.SetField(notificationpreference.FieldPushEnabled, field.TypeBool, value)
		_node.PushEnabled = value
	}
	if value, ok := _c.mutation.DailyDigest(); ok {
		_spec.SetField(notificationpreference.FieldDailyDigest, field.TypeBool, value)
		_node.DailyDigest = value
	}
	if value, ok := _c.mutation.WeeklyDigest(); ok {
		_spec.SetField(notificationpreference.FieldWeeklyDigest, field.TypeBool, value)
		_node.WeeklyDigest = value
	}
	if value, ok := _c.mutation.MonthlyDigest(); ok {
		_spec.SetField(notificationpreference.FieldMonthlyDigest, field.TypeBool, value)
		_node.MonthlyDigest = value
	}
	if value, ok := _c.mutation.DigestTime(); ok {
		_spec.SetField(notificationpreference.FieldDigestTime, field.TypeString, value)
		_node.DigestTime = value
	}
	if value, ok := _c.mutation.DigestDayOfWeek(); ok {
		_spec.SetField(notificationpreference.FieldDigestDayOfWeek, field.TypeInt, value)
		_node.DigestDayOfWeek = value
	}
	if value, ok := _c.mutation.DigestDayOfMonth(); ok {
		_spec.SetField(notificationpreference.FieldDigestDayOfMonth, field.TypeInt, value)
		_node.DigestDayOfMonth = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   notificationpreference.UserTable,
			Columns: []string{notificationpreference.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_preference = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NotificationPreferenceCreateBulk is the builder for creating many NotificationPreference entities in bulk.
type NotificationPreferenceCreateBulk struct {
	config
	err      error
	builders []*NotificationPreferenceCreate
}

// Save creates the NotificationPreference entities in the database.
func (_c *NotificationPreferenceCreateBulk) Save(ctx context.Context) ([]*NotificationPreference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationPreference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationPreferenceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *NotificationPreferenceCreateBulk) SaveX(ctx context.Context) []*NotificationPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationPreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationPreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
