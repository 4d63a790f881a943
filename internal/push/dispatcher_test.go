package push

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/require"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/ent/pushsubscription"
	"crewpulse.io/crewpulse/internal/config"
	"crewpulse.io/crewpulse/internal/pkg/logger"
	"crewpulse.io/crewpulse/internal/pkg/worker"
	"crewpulse.io/crewpulse/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func newTestDispatcher(t *testing.T, prefix string, gate PreferenceGate) (*Dispatcher, *ent.Client) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize:  4,
		DispatchPoolSize: 4,
	})
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	return NewDispatcher(client, pools, gate, config.PushConfig{
		Subscriber: "mailto:ops@crewpulse.test",
	}), client
}

func mustCreateUserWithSubs(t *testing.T, client *ent.Client, userID string, endpoints ...string) {
	t.Helper()
	ctx := context.Background()

	_, err := client.Company.Create().SetID("co-" + userID).SetName("Co " + userID).Save(ctx)
	require.NoError(t, err)
	_, err = client.User.Create().
		SetID(userID).
		SetEmail(userID + "@acme.test").
		SetFirstName(userID).
		SetCompanyID("co-" + userID).
		Save(ctx)
	require.NoError(t, err)

	for i, endpoint := range endpoints {
		_, err := client.PushSubscription.Create().
			SetID(userID + "-sub-" + string(rune('a'+i))).
			SetUserID(userID).
			SetEndpoint(endpoint).
			SetP256dh("BP256DH-key").
			SetAuth("auth-secret").
			Save(ctx)
		require.NoError(t, err)
	}
}

// statusByEndpoint fakes the push service: each endpoint returns a fixed
// HTTP status. Records every attempted endpoint.
func statusByEndpoint(statuses map[string]int, calls *[]string, mu *sync.Mutex) SendFunc {
	return func(ctx context.Context, message []byte, sub *webpush.Subscription, opts *webpush.Options) (int, error) {
		mu.Lock()
		*calls = append(*calls, sub.Endpoint)
		mu.Unlock()
		if status, ok := statuses[sub.Endpoint]; ok {
			return status, nil
		}
		return http.StatusCreated, nil
	}
}

func TestSendToUser_PrunesGoneEndpoints(t *testing.T) {
	t.Parallel()

	dispatcher, client := newTestDispatcher(t, "push_prune", nil)
	mustCreateUserWithSubs(t, client, "user-1",
		"https://push.example/endpoint-a",
		"https://push.example/endpoint-b",
	)

	var (
		mu    sync.Mutex
		calls []string
	)
	dispatcher.SetSendFunc(statusByEndpoint(map[string]int{
		"https://push.example/endpoint-a": http.StatusGone,
	}, &calls, &mu))

	ctx := context.Background()
	result, err := dispatcher.SendToUser(ctx, "user-1", Payload{Title: "t", Body: "b"})
	require.NoError(t, err)
	require.Equal(t, Result{Sent: 1, Failed: 1}, result)
	require.Len(t, calls, 2)

	// The gone endpoint is deleted, the live one survives.
	remaining := client.PushSubscription.Query().
		Select(pushsubscription.FieldEndpoint).
		StringsX(ctx)
	require.Equal(t, []string{"https://push.example/endpoint-b"}, remaining)
}

func TestSendToUser_TransientFailureKeepsSubscription(t *testing.T) {
	t.Parallel()

	dispatcher, client := newTestDispatcher(t, "push_transient", nil)
	mustCreateUserWithSubs(t, client, "user-1", "https://push.example/endpoint-a")

	var (
		mu    sync.Mutex
		calls []string
	)
	dispatcher.SetSendFunc(statusByEndpoint(map[string]int{
		"https://push.example/endpoint-a": http.StatusInternalServerError,
	}, &calls, &mu))

	ctx := context.Background()
	result, err := dispatcher.SendToUser(ctx, "user-1", Payload{Title: "t", Body: "b"})
	require.NoError(t, err)
	require.Equal(t, Result{Sent: 0, Failed: 1}, result)

	count := client.PushSubscription.Query().CountX(ctx)
	require.Equal(t, 1, count, "transient failures must not prune the subscription")
}

func TestSendToUser_NoSubscriptionsIsANoop(t *testing.T) {
	t.Parallel()

	dispatcher, client := newTestDispatcher(t, "push_nosubs", nil)
	mustCreateUserWithSubs(t, client, "user-1")

	result, err := dispatcher.SendToUser(context.Background(), "user-1", Payload{Title: "t", Body: "b"})
	require.NoError(t, err)
	require.Equal(t, Result{}, result)
	_ = client
}

func TestSendToUsers_SumsAcrossUsers(t *testing.T) {
	t.Parallel()

	dispatcher, client := newTestDispatcher(t, "push_multiuser", nil)
	mustCreateUserWithSubs(t, client, "user-1", "https://push.example/u1-a")
	mustCreateUserWithSubs(t, client, "user-2", "https://push.example/u2-a", "https://push.example/u2-b")

	var (
		mu    sync.Mutex
		calls []string
	)
	dispatcher.SetSendFunc(statusByEndpoint(map[string]int{
		"https://push.example/u2-b": http.StatusNotFound,
	}, &calls, &mu))

	result := dispatcher.SendToUsers(context.Background(), []string{"user-1", "user-2", "user-without-row"}, Payload{Title: "t", Body: "b"})
	require.Equal(t, Result{Sent: 2, Failed: 1}, result)
}

func TestPayload_DefaultsApplied(t *testing.T) {
	t.Parallel()

	dispatcher, client := newTestDispatcher(t, "push_defaults", nil)
	mustCreateUserWithSubs(t, client, "user-1", "https://push.example/endpoint-a")

	var captured []byte
	var mu sync.Mutex
	dispatcher.SetSendFunc(func(ctx context.Context, message []byte, sub *webpush.Subscription, opts *webpush.Options) (int, error) {
		mu.Lock()
		captured = message
		mu.Unlock()
		return http.StatusCreated, nil
	})

	_, err := dispatcher.SendToUser(context.Background(), "user-1", Payload{
		Title: "Shift swap request",
		Body:  "Ben wants to swap",
		Data:  PayloadData{URL: "/schedule?swapId=swap-1", Type: "SHIFT_SWAP", RelatedID: "swap-1"},
	})
	require.NoError(t, err)

	var decoded Payload
	require.NoError(t, json.Unmarshal(captured, &decoded))
	require.Equal(t, defaultIcon, decoded.Icon)
	require.Equal(t, defaultBadge, decoded.Badge)
	require.Equal(t, defaultTag, decoded.Tag)
	require.Equal(t, "swap-1", decoded.Data.RelatedID)
}

func TestSendToUser_CancelledWhileQueuedStillReturns(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "push_cancel_queued")
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize:  1,
		DispatchPoolSize: 1,
	})
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)

	dispatcher := NewDispatcher(client, pools, nil, config.PushConfig{
		Subscriber: "mailto:ops@crewpulse.test",
	})
	mustCreateUserWithSubs(t, client, "user-1",
		"https://push.example/endpoint-a",
		"https://push.example/endpoint-b",
	)

	var transportCalls atomic.Int32
	dispatcher.SetSendFunc(func(ctx context.Context, message []byte, sub *webpush.Subscription, opts *webpush.Options) (int, error) {
		transportCalls.Add(1)
		return http.StatusCreated, nil
	})

	// Occupy the single dispatch slot so the fan-out has to wait for it.
	blockCh := make(chan struct{})
	var occupied sync.WaitGroup
	occupied.Add(1)
	require.NoError(t, pools.Dispatch.Submit(context.Background(), func(ctx context.Context) {
		occupied.Done()
		<-blockCh
	}))
	occupied.Wait()

	ctx, cancel := context.WithCancel(context.Background())
	type outcome struct {
		result Result
		err    error
	}
	done := make(chan outcome, 1)
	go func() { //nolint:naked-goroutine // test helper
		result, sendErr := dispatcher.SendToUser(ctx, "user-1", Payload{Title: "t", Body: "b"})
		done <- outcome{result, sendErr}
	}()

	// Let the fan-out reach the full pool, then cancel and free the slot.
	time.Sleep(50 * time.Millisecond)
	cancel()
	close(blockCh)

	select {
	case out := <-done:
		require.NoError(t, out.err)
		require.Equal(t, Result{Sent: 0, Failed: 2}, out.result)
	case <-time.After(2 * time.Second):
		t.Fatal("SendToUser did not return after cancellation")
	}
	require.Zero(t, transportCalls.Load(), "cancelled sends must not reach the transport")
}

// denyGate denies every push.
type denyGate struct{}

func (denyGate) ShouldSendPush(ctx context.Context, userID, eventKind string) bool { return false }

func TestSendIfEnabled_GateDeniesWithoutTransportCall(t *testing.T) {
	t.Parallel()

	dispatcher, client := newTestDispatcher(t, "push_gate_deny", denyGate{})
	mustCreateUserWithSubs(t, client, "user-1", "https://push.example/endpoint-a")

	var called bool
	dispatcher.SetSendFunc(func(ctx context.Context, message []byte, sub *webpush.Subscription, opts *webpush.Options) (int, error) {
		called = true
		return http.StatusCreated, nil
	})

	sent, err := dispatcher.SendIfEnabled(context.Background(), "user-1", "message", Payload{Title: "t", Body: "b"})
	require.NoError(t, err)
	require.False(t, sent)
	require.False(t, called, "gate denial must not touch the transport")
}
