package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"crewpulse.io/crewpulse/ent/notification"
	"crewpulse.io/crewpulse/internal/pkg/logger"
	"crewpulse.io/crewpulse/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestJobKinds(t *testing.T) {
	if got := (DigestTickArgs{}).Kind(); got != "digest_tick" {
		t.Fatalf("digest tick kind = %q", got)
	}
	if got := (BirthdayTickArgs{}).Kind(); got != "birthday_tick" {
		t.Fatalf("birthday tick kind = %q", got)
	}
	if got := (NotificationCleanupArgs{}).Kind(); got != "notification_cleanup" {
		t.Fatalf("cleanup kind = %q", got)
	}
}

func TestDigestTickInsertOpts(t *testing.T) {
	opts := DigestTickArgs{}.InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("queue = %q", opts.Queue)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("max attempts = %d", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != time.Minute {
		t.Fatalf("unique period = %s, want one minute", opts.UniqueOpts.ByPeriod)
	}
	if !opts.UniqueOpts.ByQueue || !opts.UniqueOpts.ByArgs {
		t.Fatal("tick must be unique by queue and args")
	}
}

func TestDailyJobsInsertOpts(t *testing.T) {
	for name, opts := range map[string]river.InsertOpts{
		"birthday": BirthdayTickArgs{}.InsertOpts(),
		"cleanup":  NotificationCleanupArgs{}.InsertOpts(),
	} {
		if opts.UniqueOpts.ByPeriod != 24*time.Hour {
			t.Fatalf("%s unique period = %s, want 24h", name, opts.UniqueOpts.ByPeriod)
		}
		if opts.MaxAttempts != 1 {
			t.Fatalf("%s max attempts = %d", name, opts.MaxAttempts)
		}
	}
}

func TestNewNotificationCleanupWorkerDefaultsRetention(t *testing.T) {
	w := NewNotificationCleanupWorker(nil, 0)
	if w.Retention() != DefaultNotificationRetention {
		t.Fatalf("retention = %s, want %s", w.Retention(), DefaultNotificationRetention)
	}

	w = NewNotificationCleanupWorker(nil, 7*24*time.Hour)
	if w.Retention() != 7*24*time.Hour {
		t.Fatalf("retention = %s, want 7 days", w.Retention())
	}
}

func TestUninitializedWorkersError(t *testing.T) {
	ctx := context.Background()

	if err := (&DigestTickWorker{}).Work(ctx, nil); err == nil {
		t.Fatal("digest worker without runner should error")
	}
	if err := (&BirthdayTickWorker{}).Work(ctx, nil); err == nil {
		t.Fatal("birthday worker without runner should error")
	}
	if err := (&NotificationCleanupWorker{}).Work(ctx, nil); err == nil {
		t.Fatal("cleanup worker without client should error")
	}
}

func TestNotificationCleanupDeletesOnlyOldReadRows(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "jobs_cleanup")
	ctx := context.Background()

	company := client.Company.Create().
		SetID("co-1").
		SetName("Acme Crews").
		SaveX(ctx)
	user := client.User.Create().
		SetID("user-1").
		SetEmail("ana@acme.test").
		SetPasswordHash("x").
		SetFirstName("Ana").
		SetLastName("Lopez").
		SetCompany(company).
		SaveX(ctx)

	mustNotification := func(id string, read bool, age time.Duration) {
		client.Notification.Create().
			SetID(id).
			SetType(notification.TypeMESSAGE).
			SetTitle("t").
			SetMessage("m").
			SetRead(read).
			SetUser(user).
			SetCreatedAt(time.Now().Add(-age)).
			SaveX(ctx)
	}

	mustNotification("old-read", true, 100*24*time.Hour)
	mustNotification("old-unread", false, 100*24*time.Hour)
	mustNotification("fresh-read", true, time.Hour)

	worker := NewNotificationCleanupWorker(client, 90*24*time.Hour)
	if err := worker.Work(ctx, nil); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	remaining := client.Notification.Query().IDsX(ctx)
	if len(remaining) != 2 {
		t.Fatalf("remaining = %v, want old-unread and fresh-read", remaining)
	}
	for _, id := range remaining {
		if id == "old-read" {
			t.Fatal("old read notification survived cleanup")
		}
	}
	if _, err := client.Notification.Get(ctx, "old-unread"); err != nil {
		t.Fatalf("old unread notification must never be deleted: %v", err)
	}
}
