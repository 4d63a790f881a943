package digest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"crewpulse.io/crewpulse/ent"
	entuser "crewpulse.io/crewpulse/ent/user"
	"crewpulse.io/crewpulse/internal/pkg/logger"
)

// Mailer sends one digest email. Implemented by internal/mailer.
type Mailer interface {
	SendDigest(ctx context.Context, user *ent.User, d *UserDigest) error
}

// Detail reports the outcome for one recipient in a batch run.
type Detail struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Period string `json:"period"`
	Status string `json:"status"` // sent | error
	Error  string `json:"error,omitempty"`
}

// RunSummary is the JSON summary returned by a digest batch run.
type RunSummary struct {
	Success bool     `json:"success"`
	Date    string   `json:"date"`
	Found   int      `json:"found"`
	Sent    int      `json:"sent"`
	Errors  int      `json:"errors"`
	Details []Detail `json:"details"`
}

// Runner drives the digest batch: it matches users whose cadence fires at
// the given tick and sends one digest email per match. One recipient's
// failure never aborts the batch; only a failure to select candidates at
// all escalates.
type Runner struct {
	client *ent.Client
	agg    *Aggregator
	mailer Mailer
}

// NewRunner creates a digest batch runner.
func NewRunner(client *ent.Client, agg *Aggregator, mailer Mailer) *Runner {
	return &Runner{client: client, agg: agg, mailer: mailer}
}

// RunTick processes all periods due at the given wall-clock instant.
// An empty candidate set is a successful run with zero counts.
func (r *Runner) RunTick(ctx context.Context, now time.Time) (*RunSummary, error) {
	summary := &RunSummary{
		Success: true,
		Date:    now.Format("2006-01-02"),
		Details: []Detail{},
	}

	hhmm := now.Format("15:04")
	dayOfWeek := int(now.Weekday()) // Sunday == 0, matching the stored convention
	dayOfMonth := now.Day()

	for _, period := range []Period{PeriodDaily, PeriodWeekly, PeriodMonthly} {
		userIDs, err := r.agg.UsersFor(ctx, period, hhmm, dayOfWeek, dayOfMonth)
		if err != nil {
			// Infrastructure failure: the whole invocation fails.
			return nil, fmt.Errorf("select %s digest candidates: %w", period, err)
		}
		summary.Found += len(userIDs)

		for _, userID := range userIDs {
			detail := r.processUser(ctx, userID, period, now)
			if detail.Status == "sent" {
				summary.Sent++
			} else {
				summary.Errors++
			}
			summary.Details = append(summary.Details, detail)
		}
	}

	logger.Info("digest batch completed",
		zap.String("date", summary.Date),
		zap.Int("found", summary.Found),
		zap.Int("sent", summary.Sent),
		zap.Int("errors", summary.Errors),
	)
	return summary, nil
}

// processUser generates and sends one digest, containing any failure to
// this recipient.
func (r *Runner) processUser(ctx context.Context, userID string, period Period, now time.Time) Detail {
	detail := Detail{UserID: userID, Period: string(period)}

	user, err := r.client.User.Query().
		Where(entuser.ID(userID)).
		Only(ctx)
	if err != nil {
		detail.Status = "error"
		detail.Error = fmt.Sprintf("load user: %v", err)
		return detail
	}
	detail.Email = user.Email

	d, err := r.agg.Generate(ctx, userID, period, now)
	if err != nil {
		detail.Status = "error"
		detail.Error = fmt.Sprintf("generate digest: %v", err)
		logger.Error("digest generation failed",
			zap.String("user_id", userID),
			zap.String("period", string(period)),
			zap.Error(err),
		)
		return detail
	}

	if err := r.mailer.SendDigest(ctx, user, d); err != nil {
		detail.Status = "error"
		detail.Error = fmt.Sprintf("send digest: %v", err)
		logger.Error("digest send failed",
			zap.String("user_id", userID),
			zap.String("period", string(period)),
			zap.Error(err),
		)
		return detail
	}

	detail.Status = "sent"
	return detail
}
