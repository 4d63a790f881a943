package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"crewpulse.io/crewpulse/ent/pushsubscription"
	entuser "crewpulse.io/crewpulse/ent/user"
	"crewpulse.io/crewpulse/internal/config"
)

func TestPushHandler_SubscribeUpsertsByEndpoint(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "push_subscribe")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")

	body := `{"endpoint": "https://push.example/ep-1", "keys": {"p256dh": "key-a", "auth": "auth-a"}}`
	w := serveHandler(t, srv.SubscribePush, http.MethodPost, "/push/subscriptions", "/push/subscriptions", body, "user-1")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	// Same endpoint again with rotated keys refreshes the row in place.
	body = `{"endpoint": "https://push.example/ep-1", "keys": {"p256dh": "key-b", "auth": "auth-b"}}`
	w = serveHandler(t, srv.SubscribePush, http.MethodPost, "/push/subscriptions", "/push/subscriptions", body, "user-1")
	if w.Code != http.StatusCreated {
		t.Fatalf("repeat status = %d body=%s", w.Code, w.Body.String())
	}

	subs := client.PushSubscription.Query().AllX(t.Context())
	if len(subs) != 1 {
		t.Fatalf("subscriptions = %d, want 1", len(subs))
	}
	if subs[0].P256dh != "key-b" || subs[0].Auth != "auth-b" {
		t.Fatalf("keys not refreshed: %+v", subs[0])
	}
}

func TestPushHandler_SubscribeValidatesBody(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "push_badbody")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")

	for _, body := range []string{
		`{}`,
		`{"endpoint": "https://push.example/ep-1"}`,
		`{"endpoint": "https://push.example/ep-1", "keys": {"p256dh": "k"}}`,
	} {
		w := serveHandler(t, srv.SubscribePush, http.MethodPost, "/push/subscriptions", "/push/subscriptions", body, "user-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestPushHandler_UnsubscribeScopedToUser(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "push_unsub")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")
	mustCreateUser(t, client, "co-1", "user-2", "two@co.test")

	client.PushSubscription.Create().
		SetID("sub-1").
		SetEndpoint("https://push.example/ep-1").
		SetP256dh("k").
		SetAuth("a").
		SetUserID("user-1").
		SaveX(t.Context())

	// Another user cannot remove it, and the call still succeeds.
	w := serveHandler(t, srv.UnsubscribePush, http.MethodDelete, "/push/subscriptions", "/push/subscriptions", `{"endpoint": "https://push.example/ep-1"}`, "user-2")
	if w.Code != http.StatusNoContent {
		t.Fatalf("cross-user status = %d", w.Code)
	}
	if count := client.PushSubscription.Query().CountX(t.Context()); count != 1 {
		t.Fatal("cross-user delete removed the subscription")
	}

	w = serveHandler(t, srv.UnsubscribePush, http.MethodDelete, "/push/subscriptions", "/push/subscriptions", `{"endpoint": "https://push.example/ep-1"}`, "user-1")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}

	count := client.PushSubscription.Query().
		Where(pushsubscription.HasUserWith(entuser.IDEQ("user-1"))).
		CountX(t.Context())
	if count != 0 {
		t.Fatalf("subscriptions left = %d", count)
	}
}

func TestPushHandler_VAPIDPublicKey(t *testing.T) {
	t.Parallel()

	srv := NewServer(ServerDeps{
		PushCfg: config.PushConfig{VAPIDPublicKey: "pub-key-123"},
	})

	w := serveHandler(t, srv.GetVAPIDPublicKey, http.MethodGet, "/push/vapid-public-key", "/push/vapid-public-key", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		PublicKey string `json:"publicKey"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.PublicKey != "pub-key-123" {
		t.Fatalf("publicKey = %q", resp.PublicKey)
	}
}
