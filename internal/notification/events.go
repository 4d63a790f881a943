package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"crewpulse.io/crewpulse/internal/domain"
)

// RegisterHandlers subscribes the trigger service to every domain event the
// feed reacts to. Business operations publish events after their own commit,
// so a failing handler can never roll back the primary action.
//
// Actors never notify themselves: an event whose recipient equals its actor
// is dropped here, not in the triggers.
func RegisterHandlers(d *domain.EventDispatcher, t *Triggers) {
	d.Register(domain.EventTaskAssigned, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.TaskPayload
		if err := decode(e, &p); err != nil {
			return err
		}
		if p.AssigneeID == "" || p.AssigneeID == p.ActorID {
			return nil
		}
		return t.NotifyTaskAssigned(ctx, p.AssigneeID, p.ActorName, p.TaskID, p.Title)
	})

	d.Register(domain.EventTaskCompleted, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.TaskPayload
		if err := decode(e, &p); err != nil {
			return err
		}
		if p.CreatorID == "" || p.CreatorID == p.ActorID {
			return nil
		}
		return t.NotifyTaskCompleted(ctx, p.CreatorID, p.ActorName, p.TaskID, p.Title)
	})

	d.Register(domain.EventTaskComment, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.TaskPayload
		if err := decode(e, &p); err != nil {
			return err
		}
		// Both sides of the task hear about the comment, minus the commenter.
		var firstErr error
		for _, recipient := range dedupe(p.CreatorID, p.AssigneeID) {
			if recipient == "" || recipient == p.ActorID {
				continue
			}
			if err := t.NotifyTaskComment(ctx, recipient, p.ActorName, p.TaskID, p.Title, p.Comment); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	})

	d.Register(domain.EventDeadlineDue, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.TaskPayload
		if err := decode(e, &p); err != nil {
			return err
		}
		if p.AssigneeID == "" || p.DueDate == nil {
			return nil
		}
		return t.NotifyDeadline(ctx, p.AssigneeID, p.TaskID, p.Title, *p.DueDate)
	})

	d.Register(domain.EventMessageSent, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.MessagePayload
		if err := decode(e, &p); err != nil {
			return err
		}
		if p.RecipientID == "" || p.RecipientID == p.SenderID {
			return nil
		}
		return t.NotifyMessageReceived(ctx, p.RecipientID, p.SenderName, p.MessageID, p.Body)
	})

	d.Register(domain.EventMentionAdded, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.MessagePayload
		if err := decode(e, &p); err != nil {
			return err
		}
		if p.RecipientID == "" || p.RecipientID == p.SenderID {
			return nil
		}
		return t.NotifyMention(ctx, p.RecipientID, p.SenderName, p.Context, p.MessageID)
	})

	d.Register(domain.EventShiftAssigned, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.ShiftPayload
		if err := decode(e, &p); err != nil {
			return err
		}
		if p.UserID == "" || p.UserID == p.ActorID {
			return nil
		}
		return t.NotifyShiftAssigned(ctx, p.UserID, p.ShiftID, p.StartsAt, p.EndsAt, p.Position)
	})

	d.Register(domain.EventShiftReminderDue, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.ShiftPayload
		if err := decode(e, &p); err != nil {
			return err
		}
		return t.NotifyShiftReminder(ctx, p.UserID, p.ShiftID, p.StartsAt)
	})

	d.Register(domain.EventShiftSwapRequested, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.SwapPayload
		if err := decode(e, &p); err != nil {
			return err
		}
		if p.TargetID == "" || p.TargetID == p.RequesterID {
			return nil
		}
		return t.NotifyShiftSwapRequest(ctx, p.TargetID, p.RequesterName, p.SwapID, p.ShiftStartsAt)
	})

	d.Register(domain.EventShiftSwapResponded, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.SwapPayload
		if err := decode(e, &p); err != nil {
			return err
		}
		return t.NotifyShiftSwapResponse(ctx, p.RequesterID, p.ResponderName, p.SwapID, p.Status == "APPROVED")
	})

	d.Register(domain.EventTimeOffRequested, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.TimeOffPayload
		if err := decode(e, &p); err != nil {
			return err
		}
		managers := make([]string, 0, len(p.ApproverIDs))
		for _, id := range p.ApproverIDs {
			if id != "" && id != p.RequesterID {
				managers = append(managers, id)
			}
		}
		if len(managers) == 0 {
			return nil
		}
		return t.NotifyTimeOffRequest(ctx, managers, p.RequesterName, p.RequestID, p.StartsOn, p.EndsOn)
	})

	d.Register(domain.EventTimeOffResponded, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.TimeOffPayload
		if err := decode(e, &p); err != nil {
			return err
		}
		return t.NotifyTimeOffResponse(ctx, p.RequesterID, p.RequestID, p.Status == "APPROVED", p.StartsOn, p.EndsOn)
	})

	d.Register(domain.EventReportReady, func(ctx context.Context, e *domain.DomainEvent) error {
		var p domain.ReportPayload
		if err := decode(e, &p); err != nil {
			return err
		}
		return t.NotifyReportReady(ctx, p.RecipientID, p.ReportName, p.ReportID)
	})
}

func decode(e *domain.DomainEvent, out any) error {
	if err := json.Unmarshal(e.Payload, out); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.EventType, err)
	}
	return nil
}

// dedupe returns the distinct non-empty ids, order preserved.
func dedupe(ids ...string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
