package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crewpulse.io/crewpulse/internal/domain"
)

func newClassifierFixture(t *testing.T) (*domain.EventDispatcher, *recordingSender) {
	t.Helper()
	sender := &recordingSender{}
	d := domain.NewEventDispatcher()
	RegisterHandlers(d, NewTriggers(sender, nil))
	return d, sender
}

func mustEvent(t *testing.T, eventType domain.EventType, payload interface{ ToJSON() ([]byte, error) }) *domain.DomainEvent {
	t.Helper()
	raw, err := payload.ToJSON()
	require.NoError(t, err)
	return domain.NewEvent(eventType, "test", "agg-1", "actor-1", raw)
}

func TestClassifier_TaskAssignedWritesFeedRow(t *testing.T) {
	d, sender := newClassifierFixture(t)

	err := d.Dispatch(context.Background(), mustEvent(t, domain.EventTaskAssigned, domain.TaskPayload{
		TaskID:     "task-1",
		Title:      "Restock shelves",
		ActorID:    "mgr-1",
		ActorName:  "Dana",
		AssigneeID: "user-1",
	}))
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	require.Equal(t, "user-1", sender.sent[0].RecipientID)
	require.Equal(t, TypeTaskAssigned, sender.sent[0].Type)
	require.Contains(t, sender.sent[0].Message, "Dana")
}

func TestClassifier_SelfActionsAreSuppressed(t *testing.T) {
	d, sender := newClassifierFixture(t)
	ctx := context.Background()

	// Assigning a task to yourself must not notify you.
	require.NoError(t, d.Dispatch(ctx, mustEvent(t, domain.EventTaskAssigned, domain.TaskPayload{
		TaskID: "task-1", ActorID: "user-1", AssigneeID: "user-1",
	})))
	// Messaging yourself must not notify you.
	require.NoError(t, d.Dispatch(ctx, mustEvent(t, domain.EventMessageSent, domain.MessagePayload{
		MessageID: "m-1", SenderID: "user-1", RecipientID: "user-1",
	})))

	require.Empty(t, sender.sent)
}

func TestClassifier_TaskCommentFansOutMinusActor(t *testing.T) {
	d, sender := newClassifierFixture(t)

	err := d.Dispatch(context.Background(), mustEvent(t, domain.EventTaskComment, domain.TaskPayload{
		TaskID:     "task-1",
		Title:      "Close registers",
		ActorID:    "assignee-1", // the assignee comments
		ActorName:  "Ben",
		AssigneeID: "assignee-1",
		CreatorID:  "creator-1",
		Comment:    "done early",
	}))
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	require.Equal(t, "creator-1", sender.sent[0].RecipientID)
}

func TestClassifier_SwapResponseVerdict(t *testing.T) {
	d, sender := newClassifierFixture(t)

	err := d.Dispatch(context.Background(), mustEvent(t, domain.EventShiftSwapResponded, domain.SwapPayload{
		SwapID:        "swap-1",
		RequesterID:   "user-1",
		ResponderName: "Mo",
		Status:        "REJECTED",
		ShiftStartsAt: time.Now(),
	}))
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	require.Contains(t, sender.sent[0].Title, "declined")
	require.Contains(t, sender.sent[0].Message, "Mo")
}

func TestClassifier_TimeOffRequestGoesToApprovers(t *testing.T) {
	d, sender := newClassifierFixture(t)

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	err := d.Dispatch(context.Background(), mustEvent(t, domain.EventTimeOffRequested, domain.TimeOffPayload{
		RequestID:     "req-1",
		RequesterID:   "user-1",
		RequesterName: "Ana",
		ApproverIDs:   []string{"mgr-1", "mgr-2", "user-1"}, // requester filtered out
		StartsOn:      start,
		EndsOn:        start.AddDate(0, 0, 2),
	}))
	require.NoError(t, err)

	require.Len(t, sender.sent, 2)
	require.Equal(t, "mgr-1", sender.sent[0].RecipientID)
	require.Equal(t, "mgr-2", sender.sent[1].RecipientID)
}

func TestClassifier_MalformedPayloadSurfacesError(t *testing.T) {
	d, sender := newClassifierFixture(t)

	event := domain.NewEvent(domain.EventTaskAssigned, "test", "agg-1", "actor-1", []byte("{not json"))
	err := d.Dispatch(context.Background(), event)
	require.Error(t, err)
	require.Empty(t, sender.sent)
}
