package digest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crewpulse.io/crewpulse/ent"
	enttask "crewpulse.io/crewpulse/ent/task"
	"crewpulse.io/crewpulse/internal/pkg/logger"
	"crewpulse.io/crewpulse/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func TestWindowFor_Daily(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	start, end, err := WindowFor(PeriodDaily, now)
	require.NoError(t, err)

	// Previous full calendar day, not trailing 24 hours.
	require.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, 14, end.Day())
	require.Equal(t, 23, end.Hour())
	require.True(t, end.Before(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
}

func TestWindowFor_WeeklyMondayStart(t *testing.T) {
	cases := []struct {
		now        time.Time
		wantMonday time.Time
	}{
		// A Wednesday.
		{time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC), time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)},
		// A Monday maps to itself.
		{time.Date(2026, 3, 16, 0, 30, 0, 0, time.UTC), time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)},
		// A Sunday belongs to the week that started six days earlier.
		{time.Date(2026, 3, 22, 23, 0, 0, 0, time.UTC), time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		start, end, err := WindowFor(PeriodWeekly, tc.now)
		require.NoError(t, err)
		require.Equal(t, time.Monday, start.Weekday())
		require.Equal(t, tc.wantMonday, start)
		require.Equal(t, time.Sunday, end.Weekday())
		require.True(t, start.Before(tc.now) || start.Equal(tc.now) || tc.now.Before(end))
	}
}

func TestWindowFor_Monthly(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	start, end, err := WindowFor(PeriodMonthly, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
	// 2026 is not a leap year: February ends on the 28th.
	require.Equal(t, 28, end.Day())
	require.Equal(t, time.February, end.Month())
}

func TestWindowFor_UnknownPeriod(t *testing.T) {
	_, _, err := WindowFor(Period("hourly"), time.Now())
	require.Error(t, err)
}

func seedDigestFixtures(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := context.Background()

	_, err := client.Company.Create().SetID("co-1").SetName("Acme Retail").Save(ctx)
	require.NoError(t, err)
	for _, id := range []string{"user-1", "user-2"} {
		_, err := client.User.Create().
			SetID(id).
			SetEmail(id + "@acme.test").
			SetFirstName(id).
			SetCompanyID("co-1").
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestAggregator_GenerateCountsAndCaps(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "digest_generate")
	seedDigestFixtures(t, client)
	ctx := context.Background()

	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	inWindow := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)  // yesterday
	outWindow := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC) // two days before

	// 12 tasks in window (3 completed), one task outside.
	for i := 0; i < 12; i++ {
		status := "TODO"
		if i < 3 {
			status = "COMPLETED"
		}
		_, err := client.Task.Create().
			SetID(fmt.Sprintf("task-%d", i)).
			SetTitle(fmt.Sprintf("Task %d", i)).
			SetStatus(enttask.Status(status)).
			SetCreatorID("user-2").
			SetAssigneeID("user-1").
			SetCreatedAt(inWindow.Add(time.Duration(i) * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}
	_, err := client.Task.Create().
		SetID("task-out").
		SetTitle("Out of window").
		SetCreatorID("user-1").
		SetCreatedAt(outWindow).
		Save(ctx)
	require.NoError(t, err)

	// 3 messages received, 2 unread.
	for i := 0; i < 3; i++ {
		_, err := client.Message.Create().
			SetID(fmt.Sprintf("msg-%d", i)).
			SetBody("hello").
			SetRead(i == 0).
			SetSenderID("user-2").
			SetRecipientID("user-1").
			SetCreatedAt(inWindow.Add(time.Duration(i) * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}

	// 2 shifts, deliberately created out of start order.
	_, err = client.Shift.Create().
		SetID("shift-late").
		SetUserID("user-1").
		SetStartsAt(inWindow.Add(6 * time.Hour)).
		SetEndsAt(inWindow.Add(10 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Shift.Create().
		SetID("shift-early").
		SetUserID("user-1").
		SetStartsAt(inWindow).
		SetEndsAt(inWindow.Add(4 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	digest, err := NewAggregator(client).Generate(ctx, "user-1", PeriodDaily, now)
	require.NoError(t, err)

	require.Equal(t, 12, digest.Summary.TasksCreated)
	require.Equal(t, 3, digest.Summary.TasksCompleted)
	require.Len(t, digest.Tasks, 10, "task list is capped at 10")
	require.Equal(t, "task-11", digest.Tasks[0].ID, "tasks are newest-first")

	require.Equal(t, 3, digest.Summary.MessagesReceived)
	require.Equal(t, 2, digest.Summary.MessagesUnread)

	require.Equal(t, 2, digest.Summary.ShiftsScheduled)
	require.Equal(t, "shift-early", digest.Shifts[0].ID, "shifts are ordered by start ascending")
}

func TestAggregator_UsersForMatchesExactly(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "digest_users_for")
	seedDigestFixtures(t, client)
	ctx := context.Background()

	_, err := client.NotificationPreference.Create().
		SetID("pref-1").
		SetUserID("user-1").
		SetDailyDigest(true).
		SetDigestTime("08:00").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.NotificationPreference.Create().
		SetID("pref-2").
		SetUserID("user-2").
		SetDailyDigest(true).
		SetDigestTime("09:30").
		Save(ctx)
	require.NoError(t, err)

	agg := NewAggregator(client)

	ids, err := agg.UsersFor(ctx, PeriodDaily, "08:00", 0, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"user-1"}, ids)

	// Exact string equality, no fuzzy matching.
	ids, err = agg.UsersFor(ctx, PeriodDaily, "08:01", 0, 1)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestAggregator_UsersForMonthlyClampsDayOfMonth(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "digest_dom_clamp")
	seedDigestFixtures(t, client)
	ctx := context.Background()

	// A cadence of "last day of the month" is stored clamped at 28.
	_, err := client.NotificationPreference.Create().
		SetID("pref-1").
		SetUserID("user-1").
		SetMonthlyDigest(true).
		SetDigestTime("08:00").
		SetDigestDayOfMonth(28).
		Save(ctx)
	require.NoError(t, err)

	agg := NewAggregator(client)

	// Caller reports day 31 (a long month's last day): clamps to 28 and matches.
	ids, err := agg.UsersFor(ctx, PeriodMonthly, "08:00", 0, 31)
	require.NoError(t, err)
	require.Equal(t, []string{"user-1"}, ids)

	ids, err = agg.UsersFor(ctx, PeriodMonthly, "08:00", 0, 27)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestAggregator_UsersForWeeklyMatchesDayOfWeek(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "digest_dow")
	seedDigestFixtures(t, client)
	ctx := context.Background()

	_, err := client.NotificationPreference.Create().
		SetID("pref-1").
		SetUserID("user-1").
		SetWeeklyDigest(true).
		SetDigestTime("08:00").
		SetDigestDayOfWeek(5).
		Save(ctx)
	require.NoError(t, err)

	agg := NewAggregator(client)

	ids, err := agg.UsersFor(ctx, PeriodWeekly, "08:00", 5, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"user-1"}, ids)

	ids, err = agg.UsersFor(ctx, PeriodWeekly, "08:00", 4, 1)
	require.NoError(t, err)
	require.Empty(t, ids)
}
