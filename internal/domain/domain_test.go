package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crewpulse.io/crewpulse/internal/pkg/logger"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func TestNewEvent(t *testing.T) {
	payload, err := TaskPayload{
		TaskID:    "task-1",
		Title:     "Restock shelves",
		ActorID:   "user-1",
		ActorName: "Dana",
	}.ToJSON()
	require.NoError(t, err)

	event := NewEvent(EventTaskAssigned, "task", "task-1", "user-1", payload)
	require.NotEmpty(t, event.EventID)
	require.Equal(t, EventTaskAssigned, event.EventType)
	require.Equal(t, "task", event.AggregateType)
	require.WithinDuration(t, time.Now().UTC(), event.CreatedAt, time.Second)

	var decoded TaskPayload
	require.NoError(t, json.Unmarshal(event.Payload, &decoded))
	require.Equal(t, "Restock shelves", decoded.Title)
}

func TestEventDispatcher_Dispatch(t *testing.T) {
	dispatcher := NewEventDispatcher()

	var calls []string
	dispatcher.Register(EventMessageSent, func(ctx context.Context, e *DomainEvent) error {
		calls = append(calls, "first")
		return nil
	})
	dispatcher.Register(EventMessageSent, func(ctx context.Context, e *DomainEvent) error {
		calls = append(calls, "second")
		return nil
	})

	event := NewEvent(EventMessageSent, "message", "msg-1", "user-1", nil)
	require.NoError(t, dispatcher.Dispatch(context.Background(), event))
	require.Equal(t, []string{"first", "second"}, calls)
}

func TestEventDispatcher_DispatchContinuesAfterFailure(t *testing.T) {
	dispatcher := NewEventDispatcher()

	failErr := errors.New("handler down")
	var secondCalled bool
	dispatcher.Register(EventShiftAssigned, func(ctx context.Context, e *DomainEvent) error {
		return failErr
	})
	dispatcher.Register(EventShiftAssigned, func(ctx context.Context, e *DomainEvent) error {
		secondCalled = true
		return nil
	})

	event := NewEvent(EventShiftAssigned, "shift", "shift-1", "user-1", nil)
	err := dispatcher.Dispatch(context.Background(), event)
	require.Error(t, err)
	require.ErrorIs(t, err, failErr)
	require.True(t, secondCalled, "remaining handlers must still run")
}

func TestEventDispatcher_DispatchNoHandlers(t *testing.T) {
	dispatcher := NewEventDispatcher()
	event := NewEvent(EventReportReady, "report", "rep-1", "system", nil)
	require.NoError(t, dispatcher.Dispatch(context.Background(), event))
}
