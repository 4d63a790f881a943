package poller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedStub serves the subset of the feed API the poller touches.
type feedStub struct {
	mu      sync.Mutex
	unread  int64
	token   string
	reads   []string
	listing Page
}

func (f *feedStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/notifications/unread-count", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"code": "UNAUTHORIZED", "message": "authentication required"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]int64{"count": atomic.LoadInt64(&f.unread)})
	})
	mux.HandleFunc("GET /api/v1/notifications", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(f.listing)
	})
	mux.HandleFunc("POST /api/v1/notifications/{id}/read", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.reads = append(f.reads, r.PathValue("id"))
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]bool{"read": true})
	})
	return mux
}

func (f *feedStub) authorized(r *http.Request) bool {
	return f.token == "" || r.Header.Get("Authorization") == "Bearer "+f.token
}

func newStubClient(t *testing.T, stub *feedStub, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, token)
}

func TestClient_SendsBearerToken(t *testing.T) {
	stub := &feedStub{token: "secret-token"}
	client := newStubClient(t, stub, "secret-token")

	count, err := client.UnreadCount(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	bad := newStubClient(t, stub, "wrong")
	_, err = bad.UnreadCount(t.Context())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
}

func TestClient_ListAndMarkRead(t *testing.T) {
	stub := &feedStub{
		listing: Page{
			Items: []Notification{
				{ID: "n-1", Type: "MESSAGE", Title: "New message", Read: false},
			},
			Total: 1, Page: 1, PageSize: 20,
		},
	}
	client := newStubClient(t, stub, "")

	page, err := client.List(t.Context(), 1, 20, true)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "n-1", page.Items[0].ID)

	require.NoError(t, client.MarkRead(t.Context(), "n-1"))
	stub.mu.Lock()
	defer stub.mu.Unlock()
	assert.Equal(t, []string{"n-1"}, stub.reads)
}

func TestPoller_FiresOnUnreadGrowth(t *testing.T) {
	stub := &feedStub{unread: 2}
	client := newStubClient(t, stub, "")

	fired := make(chan int, 8)
	p := New(client, WithInterval(10*time.Millisecond))
	p.OnNewActivity = func(_ context.Context, unread int) {
		fired <- unread
	}

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		_ = p.Run(ctx)
		close(done)
	}()

	// Baseline poll must not fire even though unread is non-zero.
	time.Sleep(30 * time.Millisecond)
	select {
	case n := <-fired:
		t.Fatalf("hook fired on baseline poll with unread=%d", n)
	default:
	}

	atomic.StoreInt64(&stub.unread, 5)
	select {
	case n := <-fired:
		assert.Equal(t, 5, n)
	case <-time.After(2 * time.Second):
		t.Fatal("hook did not fire after unread count grew")
	}

	// Shrinking never fires.
	atomic.StoreInt64(&stub.unread, 1)
	time.Sleep(50 * time.Millisecond)
	select {
	case n := <-fired:
		t.Fatalf("hook fired on shrink with unread=%d", n)
	default:
	}

	cancel()
	<-done
	assert.Equal(t, 1, p.Unread())
}

func TestPoller_SoundToggleSuppressesHook(t *testing.T) {
	stub := &feedStub{}
	client := newStubClient(t, stub, "")

	state, err := LoadSoundState(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	require.NoError(t, state.SetEnabled(false))

	var fires atomic.Int64
	p := New(client, WithInterval(10*time.Millisecond), WithSoundState(state))
	p.OnNewActivity = func(context.Context, int) { fires.Add(1) }

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		_ = p.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	atomic.StoreInt64(&stub.unread, 3)
	time.Sleep(60 * time.Millisecond)
	cancel()
	<-done

	assert.Zero(t, fires.Load())
}

func TestSoundState_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	state, err := LoadSoundState(path)
	require.NoError(t, err)
	assert.True(t, state.Enabled, "default is sound on")

	require.NoError(t, state.SetEnabled(false))

	reloaded, err := LoadSoundState(path)
	require.NoError(t, err)
	assert.False(t, reloaded.Enabled)
}

func TestResolveLink(t *testing.T) {
	resolver := func(_ context.Context, n Notification) (string, error) {
		return "user-partner", nil
	}

	tests := []struct {
		name string
		n    Notification
		want string
	}{
		{"message uses resolver", Notification{Type: "MESSAGE", RelatedID: "msg-1"}, "/messages?user=user-partner"},
		{"chat uses resolver", Notification{Type: "CHAT", RelatedID: "room-1"}, "/messages?user=user-partner"},
		{"task links by related id", Notification{Type: "TASK_ASSIGNED", RelatedID: "task-9"}, "/tasks?task=task-9"},
		{"swap links by related id", Notification{Type: "SHIFT_SWAP", RelatedID: "swap-2"}, "/shifts?swap=swap-2"},
		{"unknown type falls back to feed", Notification{Type: "SYSTEM"}, "/notifications"},
		{"task without related id", Notification{Type: "TASK_COMMENT"}, "/tasks"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveLink(t.Context(), tc.n, resolver)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	got, err := ResolveLink(t.Context(), Notification{Type: "MESSAGE"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/messages", got)
}
