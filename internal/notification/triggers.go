package notification

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"crewpulse.io/crewpulse/internal/pkg/logger"
	"crewpulse.io/crewpulse/internal/push"
)

const (
	maxCommentLen = 100
	maxBodyLen    = 100
	maxTitleLen   = 60
)

// PushDispatcher sends a gated push to a user. Implemented by push.Dispatcher.
type PushDispatcher interface {
	SendIfEnabled(ctx context.Context, userID, eventKind string, payload push.Payload) (bool, error)
}

// Triggers builds human-readable notification content for each domain event
// and drives delivery: the in-app feed row is written first, then push is
// attempted behind the channel gate. A failed feed write aborts push so no
// outbound channel fires for an event that was never recorded; a failed
// push is logged and swallowed.
type Triggers struct {
	sender Sender
	push   PushDispatcher
}

// NewTriggers creates a notification trigger service.
func NewTriggers(sender Sender, pushDispatcher PushDispatcher) *Triggers {
	return &Triggers{sender: sender, push: pushDispatcher}
}

// deliver writes the in-app row, then attempts push.
func (t *Triggers) deliver(ctx context.Context, params Params, eventKind, url string) error {
	if err := t.sender.Send(ctx, params); err != nil {
		return fmt.Errorf("write in-app notification: %w", err)
	}
	t.tryPush(ctx, params.RecipientID, params, eventKind, url)
	return nil
}

// deliverMany writes rows for all recipients (best-effort across recipients),
// then attempts push per recipient independently. Push only fires for
// recipients whose feed row was written.
func (t *Triggers) deliverMany(ctx context.Context, recipientIDs []string, params Params, eventKind, url string) error {
	written, err := t.sender.SendToMany(ctx, recipientIDs, params)
	for _, recipientID := range written {
		t.tryPush(ctx, recipientID, params, eventKind, url)
	}
	return err
}

func (t *Triggers) tryPush(ctx context.Context, recipientID string, params Params, eventKind, url string) {
	if t.push == nil {
		return
	}
	_, err := t.push.SendIfEnabled(ctx, recipientID, eventKind, push.Payload{
		Title: params.Title,
		Body:  params.Message,
		Data: push.PayloadData{
			URL:       url,
			Type:      params.Type,
			RelatedID: params.RelatedID,
		},
	})
	if err != nil {
		logger.Warn("push delivery failed",
			zap.String("recipient", recipientID),
			zap.String("type", params.Type),
			zap.Error(err),
		)
	}
}

// NotifyMessageReceived fires when a direct message arrives.
func (t *Triggers) NotifyMessageReceived(ctx context.Context, recipientID, senderName, messageID, body string) error {
	return t.deliver(ctx, Params{
		RecipientID: recipientID,
		Type:        TypeMessage,
		Title:       fmt.Sprintf("New message from %s", senderName),
		Message:     truncate(body, maxBodyLen),
		RelatedID:   messageID,
	}, KindMessage, "/messages")
}

// NotifyTaskAssigned fires when a task is assigned to a user.
func (t *Triggers) NotifyTaskAssigned(ctx context.Context, assigneeID, assignerName, taskID, taskTitle string) error {
	return t.deliver(ctx, Params{
		RecipientID: assigneeID,
		Type:        TypeTaskAssigned,
		Title:       "New task assigned",
		Message:     fmt.Sprintf("%s assigned you a task: %s", assignerName, truncate(taskTitle, maxTitleLen)),
		RelatedID:   taskID,
	}, KindTaskAssigned, "/tasks?taskId="+taskID)
}

// NotifyTaskCompleted fires to the task creator when an assignee completes it.
func (t *Triggers) NotifyTaskCompleted(ctx context.Context, creatorID, completerName, taskID, taskTitle string) error {
	return t.deliver(ctx, Params{
		RecipientID: creatorID,
		Type:        TypeTaskCompleted,
		Title:       "Task completed",
		Message:     fmt.Sprintf("%s completed the task: %s", completerName, truncate(taskTitle, maxTitleLen)),
		RelatedID:   taskID,
	}, KindTaskCompleted, "/tasks?taskId="+taskID)
}

// NotifyTaskComment fires when someone comments on a task the recipient
// created or is assigned to.
func (t *Triggers) NotifyTaskComment(ctx context.Context, recipientID, commenterName, taskID, taskTitle, comment string) error {
	return t.deliver(ctx, Params{
		RecipientID: recipientID,
		Type:        TypeTaskComment,
		Title:       fmt.Sprintf("New comment on \"%s\"", truncate(taskTitle, maxTitleLen)),
		Message:     fmt.Sprintf("%s: %s", commenterName, truncate(comment, maxCommentLen)),
		RelatedID:   taskID,
	}, KindTaskComment, "/tasks?taskId="+taskID)
}

// NotifyMention fires when the recipient is @-mentioned.
func (t *Triggers) NotifyMention(ctx context.Context, recipientID, mentionerName, contextName, messageID string) error {
	return t.deliver(ctx, Params{
		RecipientID: recipientID,
		Type:        TypeMention,
		Title:       "You were mentioned",
		Message:     fmt.Sprintf("%s mentioned you in %s", mentionerName, contextName),
		RelatedID:   messageID,
	}, KindMention, "/messages")
}

// NotifyDeadline fires when a task's due date is approaching.
func (t *Triggers) NotifyDeadline(ctx context.Context, assigneeID, taskID, taskTitle string, dueDate time.Time) error {
	return t.deliver(ctx, Params{
		RecipientID: assigneeID,
		Type:        TypeDeadline,
		Title:       "Task deadline approaching",
		Message:     fmt.Sprintf("\"%s\" is due %s", truncate(taskTitle, maxTitleLen), formatDate(dueDate)),
		RelatedID:   taskID,
	}, KindDeadline, "/tasks?taskId="+taskID)
}

// NotifyShiftAssigned fires when a shift is scheduled for a user.
func (t *Triggers) NotifyShiftAssigned(ctx context.Context, userID, shiftID string, startsAt, endsAt time.Time, position string) error {
	msg := fmt.Sprintf("You are scheduled on %s from %s to %s",
		formatDate(startsAt), formatTime(startsAt), formatTime(endsAt))
	if position != "" {
		msg += fmt.Sprintf(" (%s)", position)
	}
	return t.deliver(ctx, Params{
		RecipientID: userID,
		Type:        TypeShiftAssigned,
		Title:       "New shift assigned",
		Message:     msg,
		RelatedID:   shiftID,
	}, KindShiftAssigned, "/schedule?shiftId="+shiftID)
}

// NotifyShiftReminder fires shortly before a shift starts. There is no
// dedicated preference field for reminders; the gate falls back to the
// generic message preference.
func (t *Triggers) NotifyShiftReminder(ctx context.Context, userID, shiftID string, startsAt time.Time) error {
	return t.deliver(ctx, Params{
		RecipientID: userID,
		Type:        TypeShiftAssigned,
		Title:       "Upcoming shift reminder",
		Message:     fmt.Sprintf("Your shift starts at %s on %s", formatTime(startsAt), formatDate(startsAt)),
		RelatedID:   shiftID,
	}, KindShiftReminder, "/schedule?shiftId="+shiftID)
}

// NotifyShiftSwapRequest fires to the swap target when a swap is requested.
func (t *Triggers) NotifyShiftSwapRequest(ctx context.Context, targetID, requesterName, swapID string, shiftStartsAt time.Time) error {
	return t.deliver(ctx, Params{
		RecipientID: targetID,
		Type:        TypeShiftSwap,
		Title:       "Shift swap request",
		Message:     fmt.Sprintf("%s wants to swap their shift on %s with you", requesterName, formatDate(shiftStartsAt)),
		RelatedID:   swapID,
	}, KindShiftSwap, "/schedule?swapId="+swapID)
}

// NotifyShiftSwapResponse fires to the original requester when the target
// or a manager responds. Only the PENDING -> APPROVED|REJECTED transition
// triggers; cancellations do not notify.
func (t *Triggers) NotifyShiftSwapResponse(ctx context.Context, requesterID, responderName, swapID string, approved bool) error {
	verdict := "approved"
	if !approved {
		verdict = "declined"
	}
	return t.deliver(ctx, Params{
		RecipientID: requesterID,
		Type:        TypeShiftSwap,
		Title:       fmt.Sprintf("Shift swap %s", verdict),
		Message:     fmt.Sprintf("%s %s your shift swap request", responderName, verdict),
		RelatedID:   swapID,
	}, KindShiftSwap, "/schedule?swapId="+swapID)
}

// NotifyTimeOffRequest fires to the managers who can approve the request.
func (t *Triggers) NotifyTimeOffRequest(ctx context.Context, managerIDs []string, requesterName, requestID string, startsOn, endsOn time.Time) error {
	return t.deliverMany(ctx, managerIDs, Params{
		Type:      TypeTimeOff,
		Title:     "Time-off request",
		Message:   fmt.Sprintf("%s requested time off for %s", requesterName, formatDateRange(startsOn, endsOn)),
		RelatedID: requestID,
	}, KindTimeOff, "/time-off?requestId="+requestID)
}

// NotifyTimeOffResponse fires to the requester on approval or rejection.
func (t *Triggers) NotifyTimeOffResponse(ctx context.Context, requesterID, requestID string, approved bool, startsOn, endsOn time.Time) error {
	verdict := "approved"
	if !approved {
		verdict = "rejected"
	}
	return t.deliver(ctx, Params{
		RecipientID: requesterID,
		Type:        TypeTimeOff,
		Title:       fmt.Sprintf("Time-off request %s", verdict),
		Message:     fmt.Sprintf("Your time-off request for %s was %s", formatDateRange(startsOn, endsOn), verdict),
		RelatedID:   requestID,
	}, KindTimeOff, "/time-off?requestId="+requestID)
}

// NotifyReportReady fires when a requested report has been generated.
// No dedicated preference field; gated under the message preference.
func (t *Triggers) NotifyReportReady(ctx context.Context, recipientID, reportName, reportID string) error {
	return t.deliver(ctx, Params{
		RecipientID: recipientID,
		Type:        TypeReport,
		Title:       "Report ready",
		Message:     fmt.Sprintf("Your report \"%s\" is ready to view", truncate(reportName, maxTitleLen)),
		RelatedID:   reportID,
	}, KindReportReady, "/reports?reportId="+reportID)
}

// --- Formatting helpers ---

// truncate shortens s to at most n runes, appending "..." when cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func formatTime(t time.Time) string {
	return t.Format("15:04")
}

// formatDateRange renders "Jan 2, 2006 - Jan 5, 2006", collapsed to a
// single date when start and end fall on the same day.
func formatDateRange(start, end time.Time) string {
	if start.Year() == end.Year() && start.YearDay() == end.YearDay() {
		return formatDate(start)
	}
	return fmt.Sprintf("%s - %s", formatDate(start), formatDate(end))
}
