package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crewpulse.io/crewpulse/ent"
	entnotification "crewpulse.io/crewpulse/ent/notification"
	entuser "crewpulse.io/crewpulse/ent/user"
	"crewpulse.io/crewpulse/internal/push"
)

// recordingSender captures in-app writes without a database.
// failErr fails every write; failFor fails only that recipient.
type recordingSender struct {
	sent    []Params
	failErr error
	failFor string
}

func (r *recordingSender) Send(ctx context.Context, params Params) error {
	if r.failErr != nil {
		return r.failErr
	}
	if r.failFor != "" && params.RecipientID == r.failFor {
		return errors.New("write rejected")
	}
	r.sent = append(r.sent, params)
	return nil
}

func (r *recordingSender) SendToMany(ctx context.Context, recipientIDs []string, params Params) ([]string, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	written := make([]string, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		p := params
		p.RecipientID = id
		if err := r.Send(ctx, p); err != nil {
			continue
		}
		written = append(written, id)
	}
	if len(written) < len(recipientIDs) {
		return written, errors.New("some recipients failed")
	}
	return written, nil
}

// recordingPush captures gated push attempts.
type recordingPush struct {
	attempts []struct {
		UserID  string
		Kind    string
		Payload push.Payload
	}
}

func (r *recordingPush) SendIfEnabled(ctx context.Context, userID, eventKind string, payload push.Payload) (bool, error) {
	r.attempts = append(r.attempts, struct {
		UserID  string
		Kind    string
		Payload push.Payload
	}{userID, eventKind, payload})
	return true, nil
}

func TestTriggers_InAppWriteHappensBeforePush(t *testing.T) {
	sender := &recordingSender{}
	pusher := &recordingPush{}
	triggers := NewTriggers(sender, pusher)

	err := triggers.NotifyTaskAssigned(context.Background(), "user-1", "Dana", "task-1", "Restock shelves")
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	require.Equal(t, TypeTaskAssigned, sender.sent[0].Type)
	require.Equal(t, "task-1", sender.sent[0].RelatedID)

	require.Len(t, pusher.attempts, 1)
	require.Equal(t, "user-1", pusher.attempts[0].UserID)
	require.Equal(t, KindTaskAssigned, pusher.attempts[0].Kind)
	require.Equal(t, "/tasks?taskId=task-1", pusher.attempts[0].Payload.Data.URL)
}

func TestTriggers_FailedWriteAbortsPush(t *testing.T) {
	sender := &recordingSender{failErr: errors.New("db down")}
	pusher := &recordingPush{}
	triggers := NewTriggers(sender, pusher)

	err := triggers.NotifyMention(context.Background(), "user-1", "Dana", "#general", "msg-1")
	require.Error(t, err)
	require.Empty(t, pusher.attempts, "no push may fire for a notification that was never recorded")
}

func TestTriggers_FallbackKindsRouteThroughMessageGate(t *testing.T) {
	sender := &recordingSender{}
	pusher := &recordingPush{}
	triggers := NewTriggers(sender, pusher)
	ctx := context.Background()

	require.NoError(t, triggers.NotifyShiftReminder(ctx, "user-1", "shift-1", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, triggers.NotifyReportReady(ctx, "user-1", "Weekly hours", "rep-1"))

	require.Len(t, pusher.attempts, 2)
	require.Equal(t, KindShiftReminder, pusher.attempts[0].Kind)
	require.Equal(t, KindReportReady, pusher.attempts[1].Kind)
}

func TestTriggers_TimeOffRequestFansOutToManagers(t *testing.T) {
	sender := &recordingSender{}
	pusher := &recordingPush{}
	triggers := NewTriggers(sender, pusher)

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)
	err := triggers.NotifyTimeOffRequest(context.Background(), []string{"mgr-1", "mgr-2"}, "Ana", "req-1", start, end)
	require.NoError(t, err)

	require.Len(t, sender.sent, 2)
	require.Contains(t, sender.sent[0].Message, "Apr 6, 2026 - Apr 8, 2026")
	require.Len(t, pusher.attempts, 2)
}

func TestTriggers_FanOutSkipsPushForFailedFeedWrites(t *testing.T) {
	sender := &recordingSender{failFor: "mgr-2"}
	pusher := &recordingPush{}
	triggers := NewTriggers(sender, pusher)

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)
	err := triggers.NotifyTimeOffRequest(context.Background(), []string{"mgr-1", "mgr-2", "mgr-3"}, "Ana", "req-1", start, end)
	require.Error(t, err)

	// The survivors still get their rows and their push.
	require.Len(t, sender.sent, 2)
	require.Len(t, pusher.attempts, 2)
	for _, attempt := range pusher.attempts {
		require.NotEqual(t, "mgr-2", attempt.UserID, "no push may fire for a notification that was never recorded")
	}
}

// Shift-swap scenario against a real database: X has the shift-swap email
// gate off, the shift-swap push gate on and push enabled. The trigger must
// write exactly one SHIFT_SWAP feed row and the push gate must pass.
func TestTriggers_ShiftSwapScenario(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "triggers_swap_scenario")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-x", "x@acme.test")
	mustCreatePreference(t, client, "user-x", func(c *ent.NotificationPreferenceCreate) {
		c.SetEmailOnShiftSwap(false).
			SetPushOnShiftSwap(true).
			SetPushEnabled(true)
	})

	gate := NewGate(client)
	pusher := &recordingPush{}
	gatedPusher := &gatedRecordingPush{gate: gate, inner: pusher}
	triggers := NewTriggers(NewInboxSender(client), gatedPusher)

	ctx := context.Background()
	err := triggers.NotifyShiftSwapRequest(ctx, "user-x", "Ben", "swap-1", time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	rows := client.Notification.Query().
		Where(entnotification.HasUserWith(entuser.ID("user-x"))).
		AllX(ctx)
	require.Len(t, rows, 1)
	require.Equal(t, entnotification.TypeSHIFT_SWAP, rows[0].Type)
	require.Equal(t, "swap-1", rows[0].RelatedID)

	// Push gate passes, email gate would deny.
	require.Len(t, pusher.attempts, 1)
	require.False(t, gate.ShouldSendEmail(ctx, "user-x", KindShiftSwap))
}

// gatedRecordingPush checks the real gate before recording, mimicking
// Dispatcher.SendIfEnabled without a push transport.
type gatedRecordingPush struct {
	gate  *Gate
	inner *recordingPush
}

func (g *gatedRecordingPush) SendIfEnabled(ctx context.Context, userID, eventKind string, payload push.Payload) (bool, error) {
	if !g.gate.ShouldSendPush(ctx, userID, eventKind) {
		return false, nil
	}
	return g.inner.SendIfEnabled(ctx, userID, eventKind, payload)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "exactlyten", truncate("exactlyten", 10))
	require.Equal(t, "toolongfor...", truncate("toolongforten", 10))
}

func TestFormatDateRange_CollapsesEqualDays(t *testing.T) {
	day := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	require.Equal(t, "Jul 1, 2026", formatDateRange(day, day.Add(4*time.Hour)))
	require.Equal(t, "Jul 1, 2026 - Jul 2, 2026", formatDateRange(day, day.Add(24*time.Hour)))
}
