// Package notification implements the in-app notification feed and the
// event triggers that feed it.
//
// The feed write is the authoritative delivery record: every triggerable
// event produces exactly one Notification row per recipient, independent of
// the user's email/push preferences. Push and email are best-effort
// enhancements layered on top and are gated separately.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crewpulse.io/crewpulse/ent"
	entnotification "crewpulse.io/crewpulse/ent/notification"
	"crewpulse.io/crewpulse/internal/pkg/logger"
)

// Type constants matching ent/schema/notification.go enum values.
const (
	TypeMessage       = "MESSAGE"
	TypeTaskAssigned  = "TASK_ASSIGNED"
	TypeTaskCompleted = "TASK_COMPLETED"
	TypeTaskComment   = "TASK_COMMENT"
	TypeShiftAssigned = "SHIFT_ASSIGNED"
	TypeShiftSwap     = "SHIFT_SWAP"
	TypeTimeOff       = "TIME_OFF"
	TypeMention       = "MENTION"
	TypeDeadline      = "DEADLINE"
	TypeBirthday      = "BIRTHDAY"
	TypeReport        = "REPORT"
	TypeSystem        = "SYSTEM"
	TypeChat          = "CHAT"
)

// Params holds the required fields for creating a notification.
type Params struct {
	RecipientID string // User ID of the recipient
	Type        string // One of Type* constants above
	Title       string // Human-readable title
	Message     string // Body text
	RelatedID   string // ID of the related entity for client deep-linking
}

// Sender defines the interface for writing in-app notifications.
type Sender interface {
	// Send creates a notification for a single recipient.
	Send(ctx context.Context, params Params) error

	// SendToMany creates notifications for multiple recipients.
	// Best-effort: logs errors but does not abort on individual failures.
	// Returns the recipients whose row was written, in input order, so
	// callers can gate follow-up channels on the feed write per recipient.
	SendToMany(ctx context.Context, recipientIDs []string, params Params) ([]string, error)
}

// InboxSender writes notifications to the database synchronously within the
// caller's context. Pure insert, no dedup: the system is at-least-once and
// duplicate triggers produce duplicate feed entries.
type InboxSender struct {
	client *ent.Client
}

// NewInboxSender creates a new inbox sender.
func NewInboxSender(client *ent.Client) *InboxSender {
	return &InboxSender{client: client}
}

// Send stores a single notification to the database.
func (s *InboxSender) Send(ctx context.Context, params Params) error {
	if err := validateParams(params); err != nil {
		return fmt.Errorf("notification params invalid: %w", err)
	}

	notifType, err := toEntType(params.Type)
	if err != nil {
		return err
	}

	create := s.client.Notification.Create().
		SetID(uuid.NewString()).
		SetType(notifType).
		SetTitle(params.Title).
		SetMessage(params.Message).
		SetRead(false).
		SetUserID(params.RecipientID)
	if params.RelatedID != "" {
		create.SetRelatedID(params.RelatedID)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create notification for user %s: %w", params.RecipientID, err)
	}

	logger.Debug("notification written",
		zap.String("recipient", params.RecipientID),
		zap.String("type", params.Type),
		zap.String("title", params.Title),
	)

	return nil
}

// SendToMany creates notifications for multiple recipients (best-effort).
// Failures are logged but do not prevent delivery to other recipients.
// The returned slice holds the recipients whose row was written.
func (s *InboxSender) SendToMany(ctx context.Context, recipientIDs []string, params Params) ([]string, error) {
	if len(recipientIDs) == 0 {
		return nil, nil
	}

	written := make([]string, 0, len(recipientIDs))
	for _, recipientID := range recipientIDs {
		p := params
		p.RecipientID = recipientID
		if err := s.Send(ctx, p); err != nil {
			logger.Error("notification delivery failed",
				zap.String("recipient", recipientID),
				zap.String("type", params.Type),
				zap.Error(err),
			)
			continue
		}
		written = append(written, recipientID)
	}

	if failCount := len(recipientIDs) - len(written); failCount > 0 {
		return written, fmt.Errorf("notification delivery failed for %d/%d recipients", failCount, len(recipientIDs))
	}
	return written, nil
}

// compile-time check
var _ Sender = (*InboxSender)(nil)

// --- Helpers ---

func validateParams(p Params) error {
	if p.RecipientID == "" {
		return fmt.Errorf("recipient_id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

func toEntType(t string) (entnotification.Type, error) {
	switch t {
	case TypeMessage:
		return entnotification.TypeMESSAGE, nil
	case TypeTaskAssigned:
		return entnotification.TypeTASK_ASSIGNED, nil
	case TypeTaskCompleted:
		return entnotification.TypeTASK_COMPLETED, nil
	case TypeTaskComment:
		return entnotification.TypeTASK_COMMENT, nil
	case TypeShiftAssigned:
		return entnotification.TypeSHIFT_ASSIGNED, nil
	case TypeShiftSwap:
		return entnotification.TypeSHIFT_SWAP, nil
	case TypeTimeOff:
		return entnotification.TypeTIME_OFF, nil
	case TypeMention:
		return entnotification.TypeMENTION, nil
	case TypeDeadline:
		return entnotification.TypeDEADLINE, nil
	case TypeBirthday:
		return entnotification.TypeBIRTHDAY, nil
	case TypeReport:
		return entnotification.TypeREPORT, nil
	case TypeSystem:
		return entnotification.TypeSYSTEM, nil
	case TypeChat:
		return entnotification.TypeCHAT, nil
	default:
		return "", fmt.Errorf("unknown notification type: %s", t)
	}
}
