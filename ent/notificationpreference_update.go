// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewpulse.io/crewpulse/ent/notificationpreference"
	"crewpulse.io/crewpulse/ent/predicate"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// NotificationPreferenceUpdate is the builder for updating NotificationPreference entities.
type NotificationPreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationPreferenceMutation
}

// Where appends a list predicates to the NotificationPreferenceUpdate builder.
func (_u *NotificationPreferenceUpdate) Where(ps ...predicate.NotificationPreference) *NotificationPreferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationPreferenceUpdate) SetUpdatedAt(v time.Time) *NotificationPreferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmailOnTaskAssigned sets the "email_on_task_assigned" field.
func (_u *NotificationPreferenceUpdate) SetEmailOnTaskAssigned(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetEmailOnTaskAssigned(v)
	return _u
}

// SetNillableEmailOnTaskAssigned sets the "email_on_task_assigned" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableEmailOnTaskAssigned(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetEmailOnTaskAssigned(*v)
	}
	return _u
}

// SetEmailOnTaskCompleted sets the "email_on_task_completed" field.
func (_u *NotificationPreferenceUpdate) SetEmailOnTaskCompleted(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetEmailOnTaskCompleted(v)
	return _u
}

// SetNillableEmailOnTaskCompleted sets the "email_on_task_completed" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableEmailOnTaskCompleted(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetEmailOnTaskCompleted(*v)
	}
	return _u
}

// SetEmailOnTaskComment sets the "email_on_task_comment" field.
func (_u *NotificationPreferenceUpdate) SetEmailOnTaskComment(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetEmailOnTaskComment(v)
	return _u
}

// SetNillableEmailOnTaskComment sets the "email_on_task_comment" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableEmailOnTaskComment(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetEmailOnTaskComment(*v)
	}
	return _u
}

// SetEmailOnMention sets the "email_on_mention" field.
func (_u *NotificationPreferenceUpdate) SetEmailOnMention(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetEmailOnMention(v)
	return _u
}

// SetNillableEmailOnMention sets the "email_on_mention" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableEmailOnMention(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetEmailOnMention(*v)
	}
	return _u
}

// SetEmailOnDeadline sets the "email_on_deadline" field.
func (_u *NotificationPreferenceUpdate) SetEmailOnDeadline(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetEmailOnDeadline(v)
	return _u
}

// SetNillableEmailOnDeadline sets the "email_on_deadline" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableEmailOnDeadline(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetEmailOnDeadline(*v)
	}
	return _u
}

// SetEmailOnShiftAssigned sets the "email_on_shift_assigned" field.
func (_u *NotificationPreferenceUpdate) SetEmailOnShiftAssigned(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetEmailOnShiftAssigned(v)
	return _u
}

// SetNillableEmailOnShiftAssigned sets the "email_on_shift_assigned" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableEmailOnShiftAssigned(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetEmailOnShiftAssigned(*v)
	}
	return _u
}

// SetEmailOnShiftSwap sets the "email_on_shift_swap" field.
func (_u *NotificationPreferenceUpdate) SetEmailOnShiftSwap(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetEmailOnShiftSwap(v)
	return _u
}

// SetNillableEmailOnShiftSwap sets the "email_on_shift_swap" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableEmailOnShiftSwap(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetEmailOnShiftSwap(*v)
	}
	return _u
}

// SetEmailOnTimeOff sets the "email_on_time_off" field.
func (_u *NotificationPreferenceUpdate) SetEmailOnTimeOff(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetEmailOnTimeOff(v)
	return _u
}

// SetNillableEmailOnTimeOff sets the "email_on_time_off" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableEmailOnTimeOff(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetEmailOnTimeOff(*v)
	}
	return _u
}

// SetEmailOnMessage sets the "email_on_message" field.
func (_u *NotificationPreferenceUpdate) SetEmailOnMessage(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetEmailOnMessage(v)
	return _u
}

// SetNillableEmailOnMessage sets the "email_on_message" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableEmailOnMessage(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetEmailOnMessage(*v)
	}
	return _u
}

// SetPushOnTaskAssigned sets the "push_on_task_assigned" field.
func (_u *NotificationPreferenceUpdate) SetPushOnTaskAssigned(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetPushOnTaskAssigned(v)
	return _u
}

// SetNillablePushOnTaskAssigned sets the "push_on_task_assigned" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillablePushOnTaskAssigned(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetPushOnTaskAssigned(*v)
	}
	return _u
}

// SetPushOnTaskComment sets the "push_on_task_comment" field.
func (_u *NotificationPreferenceUpdate) SetPushOnTaskComment(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetPushOnTaskComment(v)
	return _u
}

// SetNillablePushOnTaskComment sets the "push_on_task_comment" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillablePushOnTaskComment(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetPushOnTaskComment(*v)
	}
	return _u
}

// SetPushOnMention sets the "push_on_mention" field.
func (_u *NotificationPreferenceUpdate) SetPushOnMention(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetPushOnMention(v)
	return _u
}

// SetNillablePushOnMention sets the "push_on_mention" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillablePushOnMention(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetPushOnMention(*v)
	}
	return _u
}

// SetPushOnMessage sets the "push_on_message" field.
func (_u *NotificationPreferenceUpdate) SetPushOnMessage(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetPushOnMessage(v)
	return _u
}

// SetNillablePushOnMessage sets the "push_on_message" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillablePushOnMessage(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetPushOnMessage(*v)
	}
	return _u
}

// SetPushOnShiftSwap sets the "push_on_shift_swap" field.
func (_u *NotificationPreferenceUpdate) SetPushOnShiftSwap(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetPushOnShiftSwap(v)
	return _u
}

// SetNillablePushOnShiftSwap sets the "push_on_shift_swap" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillablePushOnShiftSwap(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetPushOnShiftSwap(*v)
	}
	return _u
}

// SetPushOnTimeOff sets the "push_on_time_off" field.
func (_u *NotificationPreferenceUpdate) SetPushOnTimeOff(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetPushOnTimeOff(v)
	return _u
}

// SetNillablePushOnTimeOff sets the "push_on_time_off" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillablePushOnTimeOff(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetPushOnTimeOff(*v)
	}
	return _u
}

// SetPushEnabled sets the "push_enabled" field.
func (_u *NotificationPreferenceUpdate) SetPushEnabled(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetPushEnabled(v)
	return _u
}

// SetNillablePushEnabled sets the "push_enabled" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillablePushEnabled(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetPushEnabled(*v)
	}
	return _u
}

// SetDailyDigest sets the "daily_digest" field.
func (_u *NotificationPreferenceUpdate) SetDailyDigest(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetDailyDigest(v)
	return _u
}

// SetNillableDailyDigest sets the "daily_digest" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableDailyDigest(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetDailyDigest(*v)
	}
	return _u
}

// SetWeeklyDigest sets the "weekly_digest" field.
func (_u *NotificationPreferenceUpdate) SetWeeklyDigest(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetWeeklyDigest(v)
	return _u
}

// SetNillableWeeklyDigest sets the "weekly_digest" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableWeeklyDigest(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetWeeklyDigest(*v)
	}
	return _u
}

// SetMonthlyDigest sets the "monthly_digest" field.
func (_u *NotificationPreferenceUpdate) SetMonthlyDigest(v bool) *NotificationPreferenceUpdate {
	_u.mutation.SetMonthlyDigest(v)
	return _u
}

// SetNillableMonthlyDigest sets the "monthly_digest" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableMonthlyDigest(v *bool) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetMonthlyDigest(*v)
	}
	return _u
}

// SetDigestTime sets the "digest_time" field.
func (_u *NotificationPreferenceUpdate) SetDigestTime(v string) *NotificationPreferenceUpdate {
	_u.mutation.SetDigestTime(v)
	return _u
}

// SetNillableDigestTime sets the "digest_time" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableDigestTime(v *string) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetDigestTime(*v)
	}
	return _u
}

// SetDigestDayOfWeek sets the "digest_day_of_week" field.
func (_u *NotificationPreferenceUpdate) SetDigestDayOfWeek(v int) *NotificationPreferenceUpdate {
	_u.mutation.ResetDigestDayOfWeek()
	_u.mutation.SetDigestDayOfWeek(v)
	return _u
}

// SetNillableDigestDayOfWeek sets the "digest_day_of_week" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableDigestDayOfWeek(v *int) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetDigestDayOfWeek(*v)
	}
	return _u
}

// AddDigestDayOfWeek adds value to the "digest_day_of_week" field.
func (_u *NotificationPreferenceUpdate) AddDigestDayOfWeek(v int) *NotificationPreferenceUpdate {
	_u.mutation.AddDigestDayOfWeek(v)
	return _u
}

// SetDigestDayOfMonth sets the "digest_day_of_month" field.
func (_u *NotificationPreferenceUpdate) SetDigestDayOfMonth(v int) *NotificationPreferenceUpdate {
	_u.mutation.ResetDigestDayOfMonth()
	_u.mutation.SetDigestDayOfMonth(v)
	return _u
}

// SetNillableDigestDayOfMonth sets the "digest_day_of_month" field if the given value is not nil.
func (_u *NotificationPreferenceUpdate) SetNillableDigestDayOfMonth(v *int) *NotificationPreferenceUpdate {
	if v != nil {
		_u.SetDigestDayOfMonth(*v)
	}
	return _u
}

// AddDigestDayOfMonth adds value to the "digest_day_of_month" field.
func (_u *NotificationPreferenceUpdate) AddDigestDayOfMonth(v int) *NotificationPreferenceUpdate {
	_u.mutation.AddDigestDayOfMonth(v)
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *NotificationPreferenceUpdate) SetUserID(id string) *NotificationPreferenceUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *NotificationPreferenceUpdate) SetUser(v *User) *NotificationPreferenceUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the NotificationPreferenceMutation object of the builder.
func (_u *NotificationPreferenceUpdate) Mutation() *NotificationPreferenceMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *NotificationPreferenceUpdate) ClearUser() *NotificationPreferenceUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationPreferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationPreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationPreferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationPreferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationPreferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationPreferenceUpdate) check() error {
	if v, ok := _u.mutation.DigestTime(); ok {
		if err := notificationpreference.DigestTimeValidator(v); err != nil {
			return &ValidationError{Name: "digest_time", err: fmt.Errorf(`ent: validator failed for field "NotificationPreference.digest_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DigestDayOfWeek(); ok {
		if err := notificationpreference.DigestDayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "digest_day_of_week", err: fmt.Errorf(`ent: validator failed for field "NotificationPreference.digest_day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DigestDayOfMonth(); ok {
		if err := notificationpreference.DigestDayOfMonthValidator(v); err != nil {
			return &ValidationError{Name: "digest_day_of_month", err: fmt.Errorf(`ent: validator failed for field "NotificationPreference.digest_day_of_month": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NotificationPreference.user"`)
	}
	return nil
}

func (_u *NotificationPreferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationpreference.Table, notificationpreference.Columns, sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmailOnTaskAssigned(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnTaskAssigned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnTaskCompleted(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnTaskCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnTaskComment(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnTaskComment, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnMention(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnMention, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnDeadline(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnDeadline, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnShiftAssigned(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnShiftAssigned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnShiftSwap(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnShiftSwap, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnTimeOff(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnTimeOff, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnMessage(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnMessage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushOnTaskAssigned(); ok {
		_spec.SetField(notificationpreference.FieldPushOnTaskAssigned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushOnTaskComment(); ok {
		_spec.SetField(notificationpreference.FieldPushOnTaskComment, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushOnMention(); ok {
		_spec.SetField(notificationpreference.FieldPushOnMention, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushOnMessage(); ok {
		_spec.SetField(notificationpreference.FieldPushOnMessage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushOnShiftSwap(); ok {
		_spec.SetField(notificationpreference.FieldPushOnShiftSwap, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushOnTimeOff(); ok {
		_spec.SetField(notificationpreference.FieldPushOnTimeOff, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushEnabled(); ok {
		_spec.SetField(notificationpreference.FieldPushEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DailyDigest(); ok {
		_spec.SetField(notificationpreference.FieldDailyDigest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WeeklyDigest(); ok {
		_spec.SetField(notificationpreference.FieldWeeklyDigest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MonthlyDigest(); ok {
		_spec.SetField(notificationpreference.FieldMonthlyDigest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DigestTime(); ok {
		_spec.SetField(notificationpreference.FieldDigestTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.DigestDayOfWeek(); ok {
		_spec.SetField(notificationpreference.FieldDigestDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDigestDayOfWeek(); ok {
		_spec.AddField(notificationpreference.FieldDigestDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DigestDayOfMonth(); ok {
		_spec.SetField(notificationpreference.FieldDigestDayOfMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDigestDayOfMonth(); ok {
		_spec.AddField(notificationpreference.FieldDigestDayOfMonth, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationPreferenceUpdateOne is the builder for updating a single NotificationPreference entity.
type NotificationPreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationPreferenceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationPreferenceUpdateOne) SetUpdatedAt(v time.Time) *NotificationPreferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmailOnTaskAssigned sets the "email_on_task_assigned" field.
func (_u *NotificationPreferenceUpdateOne) SetEmailOnTaskAssigned(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetEmailOnTaskAssigned(v)
	return _u
}

// SetNillableEmailOnTaskAssigned sets the "email_on_task_assigned" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableEmailOnTaskAssigned(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetEmailOnTaskAssigned(*v)
	}
	return _u
}

// SetEmailOnTaskCompleted sets the "email_on_task_completed" field.
func (_u *NotificationPreferenceUpdateOne) SetEmailOnTaskCompleted(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetEmailOnTaskCompleted(v)
	return _u
}

// SetNillableEmailOnTaskCompleted sets the "email_on_task_completed" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableEmailOnTaskCompleted(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetEmailOnTaskCompleted(*v)
	}
	return _u
}

// SetEmailOnTaskComment sets the "email_on_task_comment" field.
func (_u *NotificationPreferenceUpdateOne) SetEmailOnTaskComment(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetEmailOnTaskComment(v)
	return _u
}

// SetNillableEmailOnTaskComment sets the "email_on_task_comment" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableEmailOnTaskComment(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetEmailOnTaskComment(*v)
	}
	return _u
}

// SetEmailOnMention sets the "email_on_mention" field.
func (_u *NotificationPreferenceUpdateOne) SetEmailOnMention(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetEmailOnMention(v)
	return _u
}

// SetNillableEmailOnMention sets the "email_on_mention" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableEmailOnMention(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetEmailOnMention(*v)
	}
	return _u
}

// SetEmailOnDeadline sets the "email_on_deadline" field.
func (_u *NotificationPreferenceUpdateOne) SetEmailOnDeadline(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetEmailOnDeadline(v)
	return _u
}

// SetNillableEmailOnDeadline sets the "email_on_deadline" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableEmailOnDeadline(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetEmailOnDeadline(*v)
	}
	return _u
}

// SetEmailOnShiftAssigned sets the "email_on_shift_assigned" field.
func (_u *NotificationPreferenceUpdateOne) SetEmailOnShiftAssigned(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetEmailOnShiftAssigned(v)
	return _u
}

// SetNillableEmailOnShiftAssigned sets the "email_on_shift_assigned" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableEmailOnShiftAssigned(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetEmailOnShiftAssigned(*v)
	}
	return _u
}

// SetEmailOnShiftSwap sets the "email_on_shift_swap" field.
func (_u *NotificationPreferenceUpdateOne) SetEmailOnShiftSwap(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetEmailOnShiftSwap(v)
	return _u
}

// SetNillableEmailOnShiftSwap sets the "email_on_shift_swap" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableEmailOnShiftSwap(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetEmailOnShiftSwap(*v)
	}
	return _u
}

// SetEmailOnTimeOff sets the "email_on_time_off" field.
func (_u *NotificationPreferenceUpdateOne) SetEmailOnTimeOff(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetEmailOnTimeOff(v)
	return _u
}

// SetNillableEmailOnTimeOff sets the "email_on_time_off" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableEmailOnTimeOff(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetEmailOnTimeOff(*v)
	}
	return _u
}

// SetEmailOnMessage sets the "email_on_message" field.
func (_u *NotificationPreferenceUpdateOne) SetEmailOnMessage(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetEmailOnMessage(v)
	return _u
}

// SetNillableEmailOnMessage sets the "email_on_message" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableEmailOnMessage(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetEmailOnMessage(*v)
	}
	return _u
}

// SetPushOnTaskAssigned sets the "push_on_task_assigned" field.
func (_u *NotificationPreferenceUpdateOne) SetPushOnTaskAssigned(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetPushOnTaskAssigned(v)
	return _u
}

// SetNillablePushOnTaskAssigned sets the "push_on_task_assigned" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillablePushOnTaskAssigned(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetPushOnTaskAssigned(*v)
	}
	return _u
}

// SetPushOnTaskComment sets the "push_on_task_comment" field.
func (_u *NotificationPreferenceUpdateOne) SetPushOnTaskComment(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetPushOnTaskComment(v)
	return _u
}

// SetNillablePushOnTaskComment sets the "push_on_task_comment" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillablePushOnTaskComment(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetPushOnTaskComment(*v)
	}
	return _u
}

// SetPushOnMention sets the "push_on_mention" field.
func (_u *NotificationPreferenceUpdateOne) SetPushOnMention(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetPushOnMention(v)
	return _u
}

// SetNillablePushOnMention sets the "push_on_mention" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillablePushOnMention(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetPushOnMention(*v)
	}
	return _u
}

// SetPushOnMessage sets the "push_on_message" field.
func (_u *NotificationPreferenceUpdateOne) SetPushOnMessage(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetPushOnMessage(v)
	return _u
}

// SetNillablePushOnMessage sets the "push_on_message" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillablePushOnMessage(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetPushOnMessage(*v)
	}
	return _u
}

// SetPushOnShiftSwap sets the "push_on_shift_swap" field.
func (_u *NotificationPreferenceUpdateOne) SetPushOnShiftSwap(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetPushOnShiftSwap(v)
	return _u
}

// SetNillablePushOnShiftSwap sets the "push_on_shift_swap" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillablePushOnShiftSwap(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetPushOnShiftSwap(*v)
	}
	return _u
}

// SetPushOnTimeOff sets the "push_on_time_off" field.
func (_u *NotificationPreferenceUpdateOne) SetPushOnTimeOff(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetPushOnTimeOff(v)
	return _u
}

// SetNillablePushOnTimeOff sets the "push_on_time_off" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillablePushOnTimeOff(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetPushOnTimeOff(*v)
	}
	return _u
}

// SetPushEnabled sets the "push_enabled" field.
func (_u *NotificationPreferenceUpdateOne) SetPushEnabled(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetPushEnabled(v)
	return _u
}

// SetNillablePushEnabled sets the "push_enabled" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillablePushEnabled(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetPushEnabled(*v)
	}
	return _u
}

// SetDailyDigest sets the "daily_digest" field.
func (_u *NotificationPreferenceUpdateOne) SetDailyDigest(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetDailyDigest(v)
	return _u
}

// SetNillableDailyDigest sets the "daily_digest" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableDailyDigest(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetDailyDigest(*v)
	}
	return _u
}

// SetWeeklyDigest sets the "weekly_digest" field.
func (_u *NotificationPreferenceUpdateOne) SetWeeklyDigest(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetWeeklyDigest(v)
	return _u
}

// SetNillableWeeklyDigest sets the "weekly_digest" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableWeeklyDigest(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetWeeklyDigest(*v)
	}
	return _u
}

// SetMonthlyDigest sets the "monthly_digest" field.
func (_u *NotificationPreferenceUpdateOne) SetMonthlyDigest(v bool) *NotificationPreferenceUpdateOne {
	_u.mutation.SetMonthlyDigest(v)
	return _u
}

// SetNillableMonthlyDigest sets the "monthly_digest" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableMonthlyDigest(v *bool) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetMonthlyDigest(*v)
	}
	return _u
}

// SetDigestTime sets the "digest_time" field.
func (_u *NotificationPreferenceUpdateOne) SetDigestTime(v string) *NotificationPreferenceUpdateOne {
	_u.mutation.SetDigestTime(v)
	return _u
}

// SetNillableDigestTime sets the "digest_time" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableDigestTime(v *string) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetDigestTime(*v)
	}
	return _u
}

// SetDigestDayOfWeek sets the "digest_day_of_week" field.
func (_u *NotificationPreferenceUpdateOne) SetDigestDayOfWeek(v int) *NotificationPreferenceUpdateOne {
	_u.mutation.ResetDigestDayOfWeek()
	_u.mutation.SetDigestDayOfWeek(v)
	return _u
}

// SetNillableDigestDayOfWeek sets the "digest_day_of_week" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableDigestDayOfWeek(v *int) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetDigestDayOfWeek(*v)
	}
	return _u
}

// AddDigestDayOfWeek adds value to the "digest_day_of_week" field.
func (_u *NotificationPreferenceUpdateOne) AddDigestDayOfWeek(v int) *NotificationPreferenceUpdateOne {
	_u.mutation.AddDigestDayOfWeek(v)
	return _u
}

// SetDigestDayOfMonth sets the "digest_day_of_month" field.
func (_u *NotificationPreferenceUpdateOne) SetDigestDayOfMonth(v int) *NotificationPreferenceUpdateOne {
	_u.mutation.ResetDigestDayOfMonth()
	_u.mutation.SetDigestDayOfMonth(v)
	return _u
}

// SetNillableDigestDayOfMonth sets the "digest_day_of_month" field if the given value is not nil.
func (_u *NotificationPreferenceUpdateOne) SetNillableDigestDayOfMonth(v *int) *NotificationPreferenceUpdateOne {
	if v != nil {
		_u.SetDigestDayOfMonth(*v)
	}
	return _u
}

// AddDigestDayOfMonth adds value to the "digest_day_of_month" field.
func (_u *NotificationPreferenceUpdateOne) AddDigestDayOfMonth(v int) *NotificationPreferenceUpdateOne {
	_u.mutation.AddDigestDayOfMonth(v)
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *NotificationPreferenceUpdateOne) SetUserID(id string) *NotificationPreferenceUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *NotificationPreferenceUpdateOne) SetUser(v *User) *NotificationPreferenceUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the NotificationPreferenceMutation object of the builder.
func (_u *NotificationPreferenceUpdateOne) Mutation() *NotificationPreferenceMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *NotificationPreferenceUpdateOne) ClearUser() *NotificationPreferenceUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the NotificationPreferenceUpdate builder.
func (_u *NotificationPreferenceUpdateOne) Where(ps ...predicate.NotificationPreference) *NotificationPreferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationPreferenceUpdateOne) Select(field string, fields ...string) *NotificationPreferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationPreference entity.
func (_u *NotificationPreferenceUpdateOne) Save(ctx context.Context) (*NotificationPreference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationPreferenceUpdateOne) SaveX(ctx context.Context) *NotificationPreference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationPreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationPreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationPreferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationPreferenceUpdateOne) check() error {
	if v, ok := _u.mutation.DigestTime(); ok {
		if err := notificationpreference.DigestTimeValidator(v); err != nil {
			return &ValidationError{Name: "digest_time", err: fmt.Errorf(`ent: validator failed for field "NotificationPreference.digest_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DigestDayOfWeek(); ok {
		if err := notificationpreference.DigestDayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "digest_day_of_week", err: fmt.Errorf(`ent: validator failed for field "NotificationPreference.digest_day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DigestDayOfMonth(); ok {
		if err := notificationpreference.DigestDayOfMonthValidator(v); err != nil {
			return &ValidationError{Name: "digest_day_of_month", err: fmt.Errorf(`ent: validator failed for field "NotificationPreference.digest_day_of_month": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NotificationPreference.user"`)
	}
	return nil
}

func (_u *NotificationPreferenceUpdateOne) sqlSave(ctx context.Context) (_node *NotificationPreference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationpreference.Table, notificationpreference.Columns, sqlgraph.NewFieldSpec(notificationpreference.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotificationPreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationpreference.FieldID)
		for _, f := range fields {
			if !notificationpreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notificationpreference.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmailOnTaskAssigned(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnTaskAssigned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnTaskCompleted(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnTaskCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnTaskComment(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnTaskComment, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnMention(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnMention, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnDeadline(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnDeadline, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnShiftAssigned(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnShiftAssigned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnShiftSwap(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnShiftSwap, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnTimeOff(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnTimeOff, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailOnMessage(); ok {
		_spec.SetField(notificationpreference.FieldEmailOnMessage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushOnTaskAssigned(); ok {
		_spec.SetField(notificationpreference.FieldPushOnTaskAssigned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushOnTaskComment(); ok {
		_spec.SetField(notificationpreference.FieldPushOnTaskComment, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushOnMention(); ok {
		_spec.SetField(notificationpreference.FieldPushOnMention, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushOnMessage(); ok {
		_spec.SetField(notificationpreference.FieldPushOnMessage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushOnShiftSwap(); ok {
		_spec.SetField(notificationpreference.FieldPushOnShiftSwap, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushOnTimeOff(); ok {
		_spec.SetField(notificationpreference.FieldPushOnTimeOff, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushEnabled(); ok {
		_spec.SetField(notificationpreference.FieldPushEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DailyDigest(); ok {
		_spec.SetField(notificationpreference.FieldDailyDigest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WeeklyDigest(); ok {
		_spec.SetField(notificationpreference.FieldWeeklyDigest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MonthlyDigest(); ok {
		_spec.SetField(notificationpreference.FieldMonthlyDigest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DigestTime(); ok {
		_spec.SetField(notificationpreference.FieldDigestTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.DigestDayOfWeek(); ok {
		_spec.SetField(notificationpreference.FieldDigestDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDigestDayOfWeek(); ok {
		_spec.AddField(notificationpreference.FieldDigestDayOfWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DigestDayOfMonth(); ok {
		_spec.SetField(notificationpreference.FieldDigestDayOfMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDigestDayOfMonth(); ok {
		_spec.AddField(notificationpreference.FieldDigestDayOfMonth, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &NotificationPreference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
