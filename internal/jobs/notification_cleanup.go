package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/ent/notification"
	"crewpulse.io/crewpulse/internal/pkg/logger"
)

// DefaultNotificationRetention is how long read notifications are kept when
// no retention is configured.
const DefaultNotificationRetention = 90 * 24 * time.Hour

// NotificationCleanupArgs is the periodic job that prunes read notifications
// past their retention window. Unread notifications are never deleted.
type NotificationCleanupArgs struct{}

// Kind returns the job kind identifier for notification cleanup.
func (NotificationCleanupArgs) Kind() string { return "notification_cleanup" }

// InsertOpts makes the cleanup unique per day so repeated enqueues collapse
// into a single daily run.
func (NotificationCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// NotificationCleanupWorker deletes read notifications older than the
// retention window.
type NotificationCleanupWorker struct {
	river.WorkerDefaults[NotificationCleanupArgs]
	entClient *ent.Client
	retention time.Duration
}

// NewNotificationCleanupWorker creates a cleanup worker. A non-positive
// retention falls back to DefaultNotificationRetention.
func NewNotificationCleanupWorker(entClient *ent.Client, retention time.Duration) *NotificationCleanupWorker {
	if retention <= 0 {
		retention = DefaultNotificationRetention
	}
	return &NotificationCleanupWorker{entClient: entClient, retention: retention}
}

// Retention returns the configured retention window.
func (w *NotificationCleanupWorker) Retention() time.Duration {
	if w == nil {
		return 0
	}
	return w.retention
}

// Work deletes read notifications created before the retention cutoff.
func (w *NotificationCleanupWorker) Work(ctx context.Context, _ *river.Job[NotificationCleanupArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("notification cleanup worker is not initialized")
	}

	cutoff := time.Now().Add(-w.retention)
	deleted, err := w.entClient.Notification.Delete().
		Where(
			notification.Read(true),
			notification.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete read notifications before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	if deleted > 0 {
		logger.Info("notification cleanup pruned read notifications",
			zap.Int("deleted", deleted),
			zap.Time("cutoff", cutoff),
		)
	}
	return nil
}
