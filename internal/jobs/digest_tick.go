// Package jobs defines River Queue job types for background processing:
// the per-minute digest tick, the daily birthday batch, and inbox
// retention cleanup.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"crewpulse.io/crewpulse/internal/digest"
	"crewpulse.io/crewpulse/internal/pkg/logger"
)

// DigestTickArgs is the periodic job that fires digest sends whose cadence
// matches the current minute.
type DigestTickArgs struct{}

// Kind returns the job kind identifier for the digest tick.
func (DigestTickArgs) Kind() string { return "digest_tick" }

// InsertOpts makes the tick unique per minute bucket, so overlapping
// enqueues (scheduler restart, duplicate external trigger) cannot
// double-send the same minute's digests.
func (DigestTickArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Minute,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// DigestTickWorker runs the digest batch for the current minute.
type DigestTickWorker struct {
	river.WorkerDefaults[DigestTickArgs]
	runner *digest.Runner
}

// NewDigestTickWorker creates a digest tick worker.
func NewDigestTickWorker(runner *digest.Runner) *DigestTickWorker {
	return &DigestTickWorker{runner: runner}
}

// Work selects users due at this minute and sends their digests.
func (w *DigestTickWorker) Work(ctx context.Context, _ *river.Job[DigestTickArgs]) error {
	if w == nil || w.runner == nil {
		return fmt.Errorf("digest tick worker is not initialized")
	}

	now := time.Now().Truncate(time.Minute)
	summary, err := w.runner.RunTick(ctx, now)
	if err != nil {
		return fmt.Errorf("digest tick at %s: %w", now.Format("15:04"), err)
	}

	if summary.Found > 0 {
		logger.Info("digest tick processed",
			zap.String("minute", now.Format("15:04")),
			zap.Int("found", summary.Found),
			zap.Int("sent", summary.Sent),
			zap.Int("errors", summary.Errors),
		)
	}
	return nil
}
