package notification

import (
	"context"

	"go.uber.org/zap"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/ent/notificationpreference"
	entuser "crewpulse.io/crewpulse/ent/user"
	"crewpulse.io/crewpulse/internal/pkg/logger"
)

// Event kind tags consumed by the channel gate. Each maps to a preference
// field; kinds without a dedicated field fall back via gateFallback.
const (
	KindTaskAssigned  = "task_assigned"
	KindTaskCompleted = "task_completed"
	KindTaskComment   = "task_comment"
	KindMention       = "mention"
	KindDeadline      = "deadline"
	KindShiftAssigned = "shift_assigned"
	KindShiftSwap     = "shift_swap"
	KindTimeOff       = "time_off"
	KindMessage       = "message"

	// Kinds with no dedicated preference field.
	KindShiftReminder = "shift_reminder"
	KindReportReady   = "report_ready"
	KindBirthday      = "birthday"
	KindSystem        = "system"
	KindChat          = "chat"
)

// gateFallback maps event kinds with no dedicated preference field to the
// gate that covers them. Keeping the policy in one table keeps it auditable;
// whether these deserve their own flags is an open product question.
var gateFallback = map[string]string{
	KindShiftReminder: KindMessage,
	KindReportReady:   KindMessage,
	KindBirthday:      KindMessage,
	KindSystem:        KindMessage,
	KindChat:          KindMessage,
}

// Gate decides whether outbound channels (email, push) may fire for a user
// and event kind. The in-app feed is never gated. A user with no preference
// row gets true for every channel and kind (fail-open), so new users are not
// silently cut off.
type Gate struct {
	client *ent.Client
}

// NewGate creates a channel gate backed by the given Ent client.
func NewGate(client *ent.Client) *Gate {
	return &Gate{client: client}
}

// ShouldSendEmail reports whether an email may be sent to the user for the
// given event kind. Pure read, no side effects.
func (g *Gate) ShouldSendEmail(ctx context.Context, userID, eventKind string) bool {
	return resolveEmail(g.loadPreference(ctx, userID), eventKind)
}

// ShouldSendPush reports whether a push may be sent to the user for the
// given event kind. The push_enabled master switch overrides every
// per-event flag.
func (g *Gate) ShouldSendPush(ctx context.Context, userID, eventKind string) bool {
	return resolvePush(g.loadPreference(ctx, userID), eventKind)
}

// loadPreference returns the user's preference row, or nil when none exists.
// Lookup errors other than not-found are logged and treated as no-row: the
// gate stays fail-open and the outbound transport surfaces any real outage.
func (g *Gate) loadPreference(ctx context.Context, userID string) *ent.NotificationPreference {
	pref, err := g.client.NotificationPreference.Query().
		Where(notificationpreference.HasUserWith(entuser.ID(userID))).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			logger.Warn("preference lookup failed, gate defaulting open",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
		return nil
	}
	return pref
}

// resolveEmail resolves the email gate for a preference row and event kind.
// nil row means send.
func resolveEmail(pref *ent.NotificationPreference, eventKind string) bool {
	if pref == nil {
		return true
	}
	if fallback, ok := gateFallback[eventKind]; ok {
		eventKind = fallback
	}
	switch eventKind {
	case KindTaskAssigned:
		return pref.EmailOnTaskAssigned
	case KindTaskCompleted:
		return pref.EmailOnTaskCompleted
	case KindTaskComment:
		return pref.EmailOnTaskComment
	case KindMention:
		return pref.EmailOnMention
	case KindDeadline:
		return pref.EmailOnDeadline
	case KindShiftAssigned:
		return pref.EmailOnShiftAssigned
	case KindShiftSwap:
		return pref.EmailOnShiftSwap
	case KindTimeOff:
		return pref.EmailOnTimeOff
	default:
		return pref.EmailOnMessage
	}
}

// resolvePush resolves the push gate for a preference row and event kind.
// nil row means send; push_enabled=false denies everything.
func resolvePush(pref *ent.NotificationPreference, eventKind string) bool {
	if pref == nil {
		return true
	}
	if !pref.PushEnabled {
		return false
	}
	if fallback, ok := gateFallback[eventKind]; ok {
		eventKind = fallback
	}
	switch eventKind {
	case KindTaskAssigned:
		return pref.PushOnTaskAssigned
	case KindTaskComment:
		return pref.PushOnTaskComment
	case KindMention:
		return pref.PushOnMention
	case KindShiftSwap:
		return pref.PushOnShiftSwap
	case KindTimeOff:
		return pref.PushOnTimeOff
	default:
		return pref.PushOnMessage
	}
}
