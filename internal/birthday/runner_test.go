package birthday

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crewpulse.io/crewpulse/ent"
	entcompany "crewpulse.io/crewpulse/ent/company"
	entnotification "crewpulse.io/crewpulse/ent/notification"
	entuser "crewpulse.io/crewpulse/ent/user"
	"crewpulse.io/crewpulse/internal/notification"
	"crewpulse.io/crewpulse/internal/pkg/logger"
	"crewpulse.io/crewpulse/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

var today = time.Date(2026, 6, 15, 7, 0, 0, 0, time.UTC)

func mustCreateCompany(t *testing.T, client *ent.Client, id string, mutate func(*ent.CompanyCreate)) {
	t.Helper()
	create := client.Company.Create().SetID(id).SetName("Acme " + id)
	if mutate != nil {
		mutate(create)
	}
	_, err := create.Save(context.Background())
	require.NoError(t, err)
}

func mustCreateUser(t *testing.T, client *ent.Client, companyID, id string, mutate func(*ent.UserCreate)) {
	t.Helper()
	create := client.User.Create().
		SetID(id).
		SetEmail(id + "@acme.test").
		SetFirstName(id).
		SetCompanyID(companyID)
	if mutate != nil {
		mutate(create)
	}
	_, err := create.Save(context.Background())
	require.NoError(t, err)
}

func birthDate(year int) time.Time {
	return time.Date(year, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
}

func TestRun_EmptyCandidateSetSucceeds(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "bday_empty")
	mustCreateCompany(t, client, "co-1", nil)
	mustCreateUser(t, client, "co-1", "user-1", func(c *ent.UserCreate) {
		c.SetBirthDate(time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC))
	})

	runner := NewRunner(client, notification.NewInboxSender(client))
	summary, err := runner.Run(context.Background(), today)
	require.NoError(t, err)
	require.True(t, summary.Success)
	require.Zero(t, summary.BirthdaysFound)
	require.Zero(t, summary.NotificationsSent)
}

func TestRun_SelfAndManagersAndTeamDeduplicated(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "bday_recipients")
	mustCreateCompany(t, client, "co-1", func(c *ent.CompanyCreate) {
		c.SetBirthdayNotifySelf(true).
			SetBirthdayNotifyManagers(true).
			SetBirthdayNotifyTeam(true)
	})
	_, err := client.Team.Create().SetID("team-1").SetName("Front").SetCompanyID("co-1").Save(context.Background())
	require.NoError(t, err)

	mustCreateUser(t, client, "co-1", "bday-user", func(c *ent.UserCreate) {
		c.SetBirthDate(birthDate(1996)).SetTeamID("team-1")
	})
	// A manager who is also on the same team: must receive exactly one row.
	mustCreateUser(t, client, "co-1", "mgr-teammate", func(c *ent.UserCreate) {
		c.SetRole(entuser.RoleMANAGER).SetTeamID("team-1")
	})
	mustCreateUser(t, client, "co-1", "teammate", func(c *ent.UserCreate) {
		c.SetTeamID("team-1")
	})
	mustCreateUser(t, client, "co-1", "outsider", nil)

	runner := NewRunner(client, notification.NewInboxSender(client))
	ctx := context.Background()
	summary, err := runner.Run(ctx, today)
	require.NoError(t, err)
	require.Equal(t, 1, summary.BirthdaysFound)
	require.Equal(t, 3, summary.NotificationsSent, "self + manager + teammate, deduplicated")

	rows := client.Notification.Query().
		Where(entnotification.TypeEQ(entnotification.TypeBIRTHDAY)).
		AllX(ctx)
	require.Len(t, rows, 3)

	recipients := map[string]int{}
	for _, row := range rows {
		uid := row.QueryUser().OnlyX(ctx).ID
		recipients[uid]++
	}
	require.Equal(t, map[string]int{"bday-user": 1, "mgr-teammate": 1, "teammate": 1}, recipients)

	// Age from the stored birth year.
	require.Equal(t, 30, summary.Details[0].Age)
}

func TestRun_CompanyDisableSkips(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "bday_disabled")
	mustCreateCompany(t, client, "co-1", func(c *ent.CompanyCreate) {
		c.SetBirthdayNotificationsEnabled(false)
	})
	mustCreateUser(t, client, "co-1", "bday-user", func(c *ent.UserCreate) {
		c.SetBirthDate(birthDate(1990))
	})

	runner := NewRunner(client, notification.NewInboxSender(client))
	summary, err := runner.Run(context.Background(), today)
	require.NoError(t, err)
	require.Equal(t, 1, summary.BirthdaysFound)
	require.Zero(t, summary.NotificationsSent)
	require.Zero(t, summary.Errors, "a disabled company is a skip, not an error")
	require.Equal(t, "skipped", summary.Details[0].Status)
}

func TestRun_PublicVisibilityPostsToGeneralChat(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "bday_public_chat")
	mustCreateCompany(t, client, "co-1", func(c *ent.CompanyCreate) {
		c.SetBirthdayVisibility(entcompany.BirthdayVisibilityPUBLIC).
			SetBirthdayMessageTemplate("Happy birthday, {{name}}! You are {{age}} today.")
	})
	ctx := context.Background()
	_, err := client.ChatRoom.Create().
		SetID("room-1").
		SetName("General").
		SetIsGeneral(true).
		SetCompanyID("co-1").
		Save(ctx)
	require.NoError(t, err)
	mustCreateUser(t, client, "co-1", "ana", func(c *ent.UserCreate) {
		c.SetBirthDate(birthDate(1991)).SetLastName("Lopez")
	})

	runner := NewRunner(client, notification.NewInboxSender(client))
	_, err = runner.Run(ctx, today)
	require.NoError(t, err)

	post := client.ChatMessage.Query().OnlyX(ctx)
	require.Contains(t, post.Body, "ana Lopez")
	require.Contains(t, post.Body, "You are 35 today.")
	require.Empty(t, post.SenderID, "announcement is system-authored")
}

// failingSender errors for one specific recipient.
type failingSender struct {
	inner   notification.Sender
	failFor string
}

func (s *failingSender) Send(ctx context.Context, p notification.Params) error {
	if p.RecipientID == s.failFor {
		return errors.New("storage exploded")
	}
	return s.inner.Send(ctx, p)
}

func (s *failingSender) SendToMany(ctx context.Context, ids []string, p notification.Params) ([]string, error) {
	return s.inner.SendToMany(ctx, ids, p)
}

func TestRun_OneCandidateFailureDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "bday_isolation")
	mustCreateCompany(t, client, "co-1", func(c *ent.CompanyCreate) {
		c.SetBirthdayNotifySelf(true).
			SetBirthdayNotifyManagers(false).
			SetBirthdayNotifyTeam(false)
	})
	for i := 1; i <= 5; i++ {
		mustCreateUser(t, client, "co-1", fmt.Sprintf("user-%d", i), func(c *ent.UserCreate) {
			c.SetBirthDate(birthDate(1990))
		})
	}

	sender := &failingSender{inner: notification.NewInboxSender(client), failFor: "user-3"}
	runner := NewRunner(client, sender)

	summary, err := runner.Run(context.Background(), today)
	require.NoError(t, err)
	require.True(t, summary.Success)
	require.Equal(t, 5, summary.BirthdaysFound)
	require.Equal(t, 1, summary.Errors)
	require.Equal(t, 4, summary.NotificationsSent)
	require.Len(t, summary.Details, 5)
}
