package digest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/internal/testutil"
)

// failSomeMailer fails for a chosen recipient email.
type failSomeMailer struct {
	failFor string
	sent    []string
}

func (m *failSomeMailer) SendDigest(ctx context.Context, user *ent.User, d *UserDigest) error {
	if user.Email == m.failFor {
		return errors.New("smtp said no")
	}
	m.sent = append(m.sent, user.Email)
	return nil
}

func TestRunner_EmptyTickSucceedsWithZeroCounts(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "digest_runner_empty")
	runner := NewRunner(client, NewAggregator(client), &failSomeMailer{})

	summary, err := runner.RunTick(context.Background(), time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, summary.Success)
	require.Zero(t, summary.Found)
	require.Zero(t, summary.Sent)
	require.Zero(t, summary.Errors)
	require.Empty(t, summary.Details)
}

func TestRunner_OneFailureDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "digest_runner_isolation")
	seedDigestFixtures(t, client)
	ctx := context.Background()

	for _, userID := range []string{"user-1", "user-2"} {
		_, err := client.NotificationPreference.Create().
			SetID("pref-" + userID).
			SetUserID(userID).
			SetDailyDigest(true).
			SetDigestTime("08:00").
			Save(ctx)
		require.NoError(t, err)
	}

	mailer := &failSomeMailer{failFor: "user-1@acme.test"}
	runner := NewRunner(client, NewAggregator(client), mailer)

	summary, err := runner.RunTick(ctx, time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, summary.Success)
	require.Equal(t, 2, summary.Found)
	require.Equal(t, 1, summary.Sent)
	require.Equal(t, 1, summary.Errors)
	require.Equal(t, []string{"user-2@acme.test"}, mailer.sent)

	var failedDetail *Detail
	for i := range summary.Details {
		if summary.Details[i].Status == "error" {
			failedDetail = &summary.Details[i]
		}
	}
	require.NotNil(t, failedDetail)
	require.Contains(t, failedDetail.Error, "smtp said no")
}

func TestRunner_OnlyMatchingTimeFires(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "digest_runner_time")
	seedDigestFixtures(t, client)
	ctx := context.Background()

	_, err := client.NotificationPreference.Create().
		SetID("pref-1").
		SetUserID("user-1").
		SetDailyDigest(true).
		SetDigestTime("08:00").
		Save(ctx)
	require.NoError(t, err)

	mailer := &failSomeMailer{}
	runner := NewRunner(client, NewAggregator(client), mailer)

	summary, err := runner.RunTick(ctx, time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Zero(t, summary.Found)
	require.Empty(t, mailer.sent)
}
