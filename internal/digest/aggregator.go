// Package digest computes periodic activity summaries per user and selects
// the recipients due for a send at a given wall-clock tick.
package digest

import (
	"context"
	"fmt"
	"time"

	"crewpulse.io/crewpulse/ent"
	entmessage "crewpulse.io/crewpulse/ent/message"
	"crewpulse.io/crewpulse/ent/notificationpreference"
	"crewpulse.io/crewpulse/ent/predicate"
	entshift "crewpulse.io/crewpulse/ent/shift"
	"crewpulse.io/crewpulse/ent/shiftswaprequest"
	enttask "crewpulse.io/crewpulse/ent/task"
	"crewpulse.io/crewpulse/ent/timeoffrequest"
	entuser "crewpulse.io/crewpulse/ent/user"
)

// Period is a digest cadence.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Detail list caps. Summaries carry full counts; lists are previews.
const (
	maxTasks    = 10
	maxMessages = 10
	maxShifts   = 10
	maxSwaps    = 5
	maxTimeOff  = 5
)

// maxDigestDayOfMonth caps the day-of-month match so users configured for
// day 29-31 still fire in short months (on day 28).
const maxDigestDayOfMonth = 28

// Summary holds the aggregate counts for a digest window.
type Summary struct {
	TasksCreated     int `json:"tasksCreated"`
	TasksCompleted   int `json:"tasksCompleted"`
	MessagesReceived int `json:"messagesReceived"`
	MessagesUnread   int `json:"messagesUnread"`
	ShiftsScheduled  int `json:"shiftsScheduled"`
	SwapRequests     int `json:"swapRequests"`
	TimeOffRequests  int `json:"timeOffRequests"`
}

// UserDigest is the computed value object for one user and window. Built
// fresh per send, never persisted.
type UserDigest struct {
	UserID    string
	Period    Period
	StartDate time.Time
	EndDate   time.Time
	Summary   Summary

	// Capped detail lists. Tasks, messages, swap and time-off requests are
	// newest-first; shifts are ordered by start time ascending.
	Tasks             []*ent.Task
	Messages          []*ent.Message
	Shifts            []*ent.Shift
	ShiftSwapRequests []*ent.ShiftSwapRequest
	TimeOffRequests   []*ent.TimeOffRequest
}

// Aggregator builds user digests from the primary store.
type Aggregator struct {
	client *ent.Client
}

// NewAggregator creates a digest aggregator.
func NewAggregator(client *ent.Client) *Aggregator {
	return &Aggregator{client: client}
}

// WindowFor computes the [start, end] window for a period relative to now.
//
// Daily covers the previous full calendar day rather than the trailing 24
// hours, so a digest sent at a fixed time always covers a clean,
// non-overlapping prior day. Weekly covers the current Monday-start week;
// monthly the current calendar month.
func WindowFor(period Period, now time.Time) (time.Time, time.Time, error) {
	switch period {
	case PeriodDaily:
		yesterday := now.AddDate(0, 0, -1)
		return startOfDay(yesterday), endOfDay(yesterday), nil
	case PeriodWeekly:
		// Monday-start: time.Weekday has Sunday == 0.
		offset := (int(now.Weekday()) + 6) % 7
		monday := startOfDay(now.AddDate(0, 0, -offset))
		return monday, endOfDay(monday.AddDate(0, 0, 6)), nil
	case PeriodMonthly:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first, first.AddDate(0, 1, 0).Add(-time.Nanosecond), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown digest period: %s", period)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Generate builds the digest for one user and period, windowed at now.
func (a *Aggregator) Generate(ctx context.Context, userID string, period Period, now time.Time) (*UserDigest, error) {
	start, end, err := WindowFor(period, now)
	if err != nil {
		return nil, err
	}

	d := &UserDigest{
		UserID:    userID,
		Period:    period,
		StartDate: start,
		EndDate:   end,
	}

	// Tasks created by or assigned to the user within the window.
	taskPred := enttask.And(
		enttask.Or(
			enttask.HasCreatorWith(entuser.ID(userID)),
			enttask.HasAssigneeWith(entuser.ID(userID)),
		),
		enttask.CreatedAtGTE(start),
		enttask.CreatedAtLTE(end),
	)
	d.Summary.TasksCreated, err = a.client.Task.Query().Where(taskPred).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	d.Summary.TasksCompleted, err = a.client.Task.Query().
		Where(taskPred, enttask.StatusEQ(enttask.StatusCOMPLETED)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count completed tasks: %w", err)
	}
	d.Tasks, err = a.client.Task.Query().
		Where(taskPred).
		Order(ent.Desc(enttask.FieldCreatedAt)).
		Limit(maxTasks).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	// Messages received within the window.
	msgPred := entmessage.And(
		entmessage.HasRecipientWith(entuser.ID(userID)),
		entmessage.CreatedAtGTE(start),
		entmessage.CreatedAtLTE(end),
	)
	d.Summary.MessagesReceived, err = a.client.Message.Query().Where(msgPred).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}
	d.Summary.MessagesUnread, err = a.client.Message.Query().
		Where(msgPred, entmessage.Read(false)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unread messages: %w", err)
	}
	d.Messages, err = a.client.Message.Query().
		Where(msgPred).
		Order(ent.Desc(entmessage.FieldCreatedAt)).
		Limit(maxMessages).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	// Shifts whose start time falls inside the window.
	shiftPred := entshift.And(
		entshift.HasUserWith(entuser.ID(userID)),
		entshift.StartsAtGTE(start),
		entshift.StartsAtLTE(end),
	)
	d.Summary.ShiftsScheduled, err = a.client.Shift.Query().Where(shiftPred).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count shifts: %w", err)
	}
	d.Shifts, err = a.client.Shift.Query().
		Where(shiftPred).
		Order(ent.Asc(entshift.FieldStartsAt)).
		Limit(maxShifts).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}

	// Swap requests where the user is requester or target.
	swapPred := shiftswaprequest.And(
		shiftswaprequest.Or(
			shiftswaprequest.HasRequesterWith(entuser.ID(userID)),
			shiftswaprequest.HasTargetWith(entuser.ID(userID)),
		),
		shiftswaprequest.CreatedAtGTE(start),
		shiftswaprequest.CreatedAtLTE(end),
	)
	d.Summary.SwapRequests, err = a.client.ShiftSwapRequest.Query().Where(swapPred).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count swap requests: %w", err)
	}
	d.ShiftSwapRequests, err = a.client.ShiftSwapRequest.Query().
		Where(swapPred).
		Order(ent.Desc(shiftswaprequest.FieldCreatedAt)).
		Limit(maxSwaps).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list swap requests: %w", err)
	}

	// Time-off requests created by the user.
	timeOffPred := timeoffrequest.And(
		timeoffrequest.HasUserWith(entuser.ID(userID)),
		timeoffrequest.CreatedAtGTE(start),
		timeoffrequest.CreatedAtLTE(end),
	)
	d.Summary.TimeOffRequests, err = a.client.TimeOffRequest.Query().Where(timeOffPred).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count time-off requests: %w", err)
	}
	d.TimeOffRequests, err = a.client.TimeOffRequest.Query().
		Where(timeOffPred).
		Order(ent.Desc(timeoffrequest.FieldCreatedAt)).
		Limit(maxTimeOff).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list time-off requests: %w", err)
	}

	return d, nil
}

// UsersFor selects the user IDs whose stored cadence matches the given
// tick. hhmm must equal the stored digest_time exactly; no fuzzy matching.
// dayOfMonth is clamped to 28 before comparison so a cadence of 29-31
// fires on the 28th in months that never reach it.
func (a *Aggregator) UsersFor(ctx context.Context, period Period, hhmm string, dayOfWeek, dayOfMonth int) ([]string, error) {
	preds := []predicate.NotificationPreference{
		notificationpreference.DigestTime(hhmm),
	}
	switch period {
	case PeriodDaily:
		preds = append(preds, notificationpreference.DailyDigest(true))
	case PeriodWeekly:
		preds = append(preds,
			notificationpreference.WeeklyDigest(true),
			notificationpreference.DigestDayOfWeek(dayOfWeek),
		)
	case PeriodMonthly:
		if dayOfMonth > maxDigestDayOfMonth {
			dayOfMonth = maxDigestDayOfMonth
		}
		preds = append(preds,
			notificationpreference.MonthlyDigest(true),
			notificationpreference.DigestDayOfMonth(dayOfMonth),
		)
	default:
		return nil, fmt.Errorf("unknown digest period: %s", period)
	}

	prefs, err := a.client.NotificationPreference.Query().
		Where(preds...).
		WithUser().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query digest preferences: %w", err)
	}

	userIDs := make([]string, 0, len(prefs))
	for _, pref := range prefs {
		if pref.Edges.User != nil && pref.Edges.User.Enabled {
			userIDs = append(userIDs, pref.Edges.User.ID)
		}
	}
	return userIDs, nil
}
