// Package birthday implements the daily birthday announcement job.
package birthday

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/ent/chatroom"
	entcompany "crewpulse.io/crewpulse/ent/company"
	entuser "crewpulse.io/crewpulse/ent/user"
	"crewpulse.io/crewpulse/internal/mailer"
	"crewpulse.io/crewpulse/internal/notification"
	"crewpulse.io/crewpulse/internal/pkg/logger"
)

// Detail reports the outcome for one birthday candidate.
type Detail struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Age    int    `json:"age,omitempty"`
	Status string `json:"status"` // sent | skipped | error
	Sent   int    `json:"sent"`
	Error  string `json:"error,omitempty"`
}

// RunSummary is the JSON summary returned by the birthday batch.
type RunSummary struct {
	Success           bool     `json:"success"`
	Date              string   `json:"date"`
	BirthdaysFound    int      `json:"birthdaysFound"`
	NotificationsSent int      `json:"notificationsSent"`
	Errors            int      `json:"errors"`
	Details           []Detail `json:"details"`
}

// Runner selects today's birthday users and fans congratulations out to
// the recipients each company's settings call for. Candidates are
// processed independently: one failure increments the error counter and
// the batch continues.
type Runner struct {
	client *ent.Client
	sender notification.Sender
}

// NewRunner creates a birthday batch runner.
func NewRunner(client *ent.Client, sender notification.Sender) *Runner {
	return &Runner{client: client, sender: sender}
}

// Run processes all users whose stored birth month and day match today.
// An empty candidate set is a successful run with zero counts.
func (r *Runner) Run(ctx context.Context, now time.Time) (*RunSummary, error) {
	summary := &RunSummary{
		Success: true,
		Date:    now.Format("2006-01-02"),
		Details: []Detail{},
	}

	// Birth dates live as full timestamps; month/day matching happens in
	// Go over the users that have one set at all.
	candidates, err := r.client.User.Query().
		Where(
			entuser.BirthDateNotNil(),
			entuser.Enabled(true),
		).
		WithCompany().
		WithTeam().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query birthday candidates: %w", err)
	}

	for _, candidate := range candidates {
		birth := candidate.BirthDate
		if birth == nil || birth.Month() != now.Month() || birth.Day() != now.Day() {
			continue
		}
		summary.BirthdaysFound++

		detail := r.processCandidate(ctx, candidate, now)
		switch detail.Status {
		case "error":
			summary.Errors++
		default:
			summary.NotificationsSent += detail.Sent
		}
		summary.Details = append(summary.Details, detail)
	}

	logger.Info("birthday batch completed",
		zap.String("date", summary.Date),
		zap.Int("found", summary.BirthdaysFound),
		zap.Int("sent", summary.NotificationsSent),
		zap.Int("errors", summary.Errors),
	)
	return summary, nil
}

// processCandidate handles one birthday person end to end, containing any
// failure to this candidate.
func (r *Runner) processCandidate(ctx context.Context, candidate *ent.User, now time.Time) Detail {
	detail := Detail{
		UserID: candidate.ID,
		Name:   displayName(candidate),
	}

	company := candidate.Edges.Company
	if company == nil {
		detail.Status = "error"
		detail.Error = "candidate has no company"
		return detail
	}
	if !company.BirthdayNotificationsEnabled {
		detail.Status = "skipped"
		return detail
	}

	age := now.Year() - candidate.BirthDate.Year()
	detail.Age = age

	message := mailer.SubstituteVars(company.BirthdayMessageTemplate, map[string]string{
		"name":        displayName(candidate),
		"age":         strconv.Itoa(age),
		"companyName": company.Name,
	})

	recipientIDs, err := r.assembleRecipients(ctx, candidate, company)
	if err != nil {
		detail.Status = "error"
		detail.Error = err.Error()
		return detail
	}

	var sent int
	for _, recipientID := range recipientIDs {
		title := "🎂 Birthday today!"
		body := message
		if recipientID == candidate.ID {
			title = "🎉 Happy birthday!"
		} else {
			body = fmt.Sprintf("%s has a birthday today. %s", displayName(candidate), message)
		}
		err := r.sender.Send(ctx, notification.Params{
			RecipientID: recipientID,
			Type:        notification.TypeBirthday,
			Title:       title,
			Message:     body,
			RelatedID:   candidate.ID,
		})
		if err != nil {
			logger.Error("birthday notification failed",
				zap.String("candidate", candidate.ID),
				zap.String("recipient", recipientID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}
	detail.Sent = sent

	if company.BirthdayVisibility == entcompany.BirthdayVisibilityPUBLIC {
		if err := r.postToGeneralChat(ctx, company, candidate, message); err != nil {
			// The feed writes above already happened; a failed chat post is
			// logged but does not fail the candidate.
			logger.Warn("birthday general-chat post failed",
				zap.String("candidate", candidate.ID),
				zap.Error(err),
			)
		}
	}

	if sent == 0 && len(recipientIDs) > 0 {
		detail.Status = "error"
		detail.Error = "all notification writes failed"
		return detail
	}
	detail.Status = "sent"
	return detail
}

// assembleRecipients builds the deduplicated recipient list per the
// company's notify flags: the birthday person themself, company managers,
// and the candidate's teammates.
func (r *Runner) assembleRecipients(ctx context.Context, candidate *ent.User, company *ent.Company) ([]string, error) {
	seen := make(map[string]struct{})
	var recipients []string
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	if company.BirthdayNotifySelf {
		add(candidate.ID)
	}

	if company.BirthdayNotifyManagers {
		managers, err := r.client.User.Query().
			Where(
				entuser.HasCompanyWith(entcompany.ID(company.ID)),
				entuser.RoleIn(entuser.RoleADMIN, entuser.RoleMANAGER),
				entuser.Enabled(true),
				entuser.IDNEQ(candidate.ID),
			).
			Select(entuser.FieldID).
			Strings(ctx)
		if err != nil {
			return nil, fmt.Errorf("query managers: %w", err)
		}
		for _, id := range managers {
			add(id)
		}
	}

	if company.BirthdayNotifyTeam && candidate.Edges.Team != nil {
		teammates, err := candidate.Edges.Team.QueryMembers().
			Where(
				entuser.Enabled(true),
				entuser.IDNEQ(candidate.ID),
			).
			Select(entuser.FieldID).
			Strings(ctx)
		if err != nil {
			return nil, fmt.Errorf("query teammates: %w", err)
		}
		for _, id := range teammates {
			add(id)
		}
	}

	return recipients, nil
}

// postToGeneralChat writes a system-authored announcement into the
// company's general room, if one exists.
func (r *Runner) postToGeneralChat(ctx context.Context, company *ent.Company, candidate *ent.User, message string) error {
	room, err := r.client.ChatRoom.Query().
		Where(
			chatroom.HasCompanyWith(entcompany.ID(company.ID)),
			chatroom.IsGeneral(true),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("find general room: %w", err)
	}

	_, err = r.client.ChatMessage.Create().
		SetID(uuid.NewString()).
		SetRoomID(room.ID).
		SetBody(fmt.Sprintf("🎂 %s: %s", displayName(candidate), message)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("post announcement: %w", err)
	}
	return nil
}

func displayName(u *ent.User) string {
	if u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.FirstName
}
