package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	entnotification "crewpulse.io/crewpulse/ent/notification"
	entuser "crewpulse.io/crewpulse/ent/user"
)

func TestInboxSender_Send(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "inbox_send")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@acme.test")

	sender := NewInboxSender(client)
	ctx := context.Background()

	err := sender.Send(ctx, Params{
		RecipientID: "user-1",
		Type:        TypeTaskAssigned,
		Title:       "New task assigned",
		Message:     "Dana assigned you a task: Restock shelves",
		RelatedID:   "task-1",
	})
	require.NoError(t, err)

	row := client.Notification.Query().
		Where(entnotification.HasUserWith(entuser.ID("user-1"))).
		OnlyX(ctx)
	require.Equal(t, entnotification.TypeTASK_ASSIGNED, row.Type)
	require.Equal(t, "task-1", row.RelatedID)
	require.False(t, row.Read)
}

func TestInboxSender_SendNoDedup(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "inbox_no_dedup")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@acme.test")

	sender := NewInboxSender(client)
	ctx := context.Background()
	params := Params{
		RecipientID: "user-1",
		Type:        TypeMessage,
		Title:       "New message from Dana",
		Message:     "hello",
		RelatedID:   "msg-1",
	}

	require.NoError(t, sender.Send(ctx, params))
	require.NoError(t, sender.Send(ctx, params))

	// Duplicate triggers produce duplicate feed rows.
	count := client.Notification.Query().CountX(ctx)
	require.Equal(t, 2, count)
}

func TestInboxSender_ValidatesParams(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "inbox_validate")
	sender := NewInboxSender(client)
	ctx := context.Background()

	cases := []struct {
		name   string
		params Params
	}{
		{"missing recipient", Params{Type: TypeMessage, Title: "t", Message: "m"}},
		{"missing title", Params{RecipientID: "u", Type: TypeMessage, Message: "m"}},
		{"missing message", Params{RecipientID: "u", Type: TypeMessage, Title: "t"}},
		{"unknown type", Params{RecipientID: "u", Type: "NOT_A_TYPE", Title: "t", Message: "m"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, sender.Send(ctx, tc.params))
		})
	}
}

func TestInboxSender_SendToManyBestEffort(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "inbox_many")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@acme.test")
	mustCreateUser(t, client, "co-1", "user-2", "two@acme.test")

	sender := NewInboxSender(client)
	ctx := context.Background()

	// "ghost" has no user row: its insert fails on the FK, but delivery to
	// the real recipients must still happen.
	written, err := sender.SendToMany(ctx, []string{"user-1", "ghost", "user-2"}, Params{
		Type:      TypeTimeOff,
		Title:     "Time-off request",
		Message:   "Ana requested time off for Mar 3, 2026",
		RelatedID: "req-1",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "1/3")
	require.Equal(t, []string{"user-1", "user-2"}, written)

	count := client.Notification.Query().CountX(ctx)
	require.Equal(t, 2, count)
}
