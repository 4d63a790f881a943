package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"crewpulse.io/crewpulse/internal/birthday"
	"crewpulse.io/crewpulse/internal/pkg/logger"
)

// BirthdayTickArgs is the daily job that posts birthday notifications for
// users whose birth date matches the current calendar day.
type BirthdayTickArgs struct{}

// Kind returns the job kind identifier for the birthday tick.
func (BirthdayTickArgs) Kind() string { return "birthday_tick" }

// InsertOpts makes the tick unique per day, so the batch runs at most once
// per calendar day regardless of how many times it is enqueued.
func (BirthdayTickArgs) InsertOpts() river.InsertOpts {
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

// BirthdayTickWorker runs the birthday notification batch.
type BirthdayTickWorker struct {
	river.WorkerDefaults[BirthdayTickArgs]
	runner *birthday.Runner
}

// NewBirthdayTickWorker creates a birthday tick worker.
func NewBirthdayTickWorker(runner *birthday.Runner) *BirthdayTickWorker {
	return &BirthdayTickWorker{runner: runner}
}

// Work finds today's birthday candidates and notifies them per company policy.
func (w *BirthdayTickWorker) Work(ctx context.Context, _ *river.Job[BirthdayTickArgs]) error {
	if w == nil || w.runner == nil {
		return fmt.Errorf("birthday tick worker is not initialized")
	}

	summary, err := w.runner.Run(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("birthday batch: %w", err)
	}

	if summary.BirthdaysFound > 0 {
		logger.Info("birthday batch processed",
			zap.String("date", summary.Date),
			zap.Int("found", summary.BirthdaysFound),
			zap.Int("sent", summary.NotificationsSent),
			zap.Int("errors", summary.Errors),
		)
	}
	return nil
}
