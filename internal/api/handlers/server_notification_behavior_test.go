package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type notificationPageJSON struct {
	Items    []notificationJSON `json:"items"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}

func TestNotificationHandler_ListNotifications_UserScopedAndUnreadFilter(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "notif_list")
	now := time.Now().UTC()

	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")
	mustCreateUser(t, client, "co-1", "user-2", "two@co.test")
	mustCreateNotification(t, client, "n-1", "user-1", false, now.Add(-3*time.Hour))
	mustCreateNotification(t, client, "n-2", "user-1", true, now.Add(-2*time.Hour))
	mustCreateNotification(t, client, "n-3", "user-2", false, now.Add(-1*time.Hour))

	{
		w := serveHandler(t, srv.ListNotifications, http.MethodGet, "/notifications", "/notifications?unreadOnly=true", "", "user-1")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
		}

		var resp notificationPageJSON
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode unread-only response: %v", err)
		}
		if len(resp.Items) != 1 || resp.Items[0].ID != "n-1" {
			t.Fatalf("unread-only items = %+v, want only n-1", resp.Items)
		}
		if resp.Total != 1 {
			t.Fatalf("unread-only total = %d, want 1", resp.Total)
		}
	}

	{
		w := serveHandler(t, srv.ListNotifications, http.MethodGet, "/notifications", "/notifications", "", "user-1")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
		}

		var resp notificationPageJSON
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode all response: %v", err)
		}
		if len(resp.Items) != 2 || resp.Total != 2 {
			t.Fatalf("items = %d total = %d, want 2/2", len(resp.Items), resp.Total)
		}
		// Newest first.
		if resp.Items[0].ID != "n-2" || resp.Items[1].ID != "n-1" {
			t.Fatalf("order = [%s, %s], want [n-2, n-1]", resp.Items[0].ID, resp.Items[1].ID)
		}
	}
}

func TestNotificationHandler_ListNotifications_Pagination(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "notif_page")
	now := time.Now().UTC()

	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")
	for i := 0; i < 5; i++ {
		mustCreateNotification(t, client, "n-"+string(rune('a'+i)), "user-1", false, now.Add(time.Duration(-i)*time.Hour))
	}

	w := serveHandler(t, srv.ListNotifications, http.MethodGet, "/notifications", "/notifications?page=2&pageSize=2", "", "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp notificationPageJSON
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 5 || resp.Page != 2 || resp.PageSize != 2 {
		t.Fatalf("total/page/pageSize = %d/%d/%d", resp.Total, resp.Page, resp.PageSize)
	}
	if len(resp.Items) != 2 || resp.Items[0].ID != "n-c" || resp.Items[1].ID != "n-d" {
		t.Fatalf("page 2 items = %+v, want [n-c, n-d]", resp.Items)
	}
}

func TestNotificationHandler_GetUnreadCount_UserScoped(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "notif_unread")
	now := time.Now().UTC()

	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")
	mustCreateUser(t, client, "co-1", "user-2", "two@co.test")
	mustCreateNotification(t, client, "n-1", "user-1", false, now.Add(-3*time.Hour))
	mustCreateNotification(t, client, "n-2", "user-1", true, now.Add(-2*time.Hour))
	mustCreateNotification(t, client, "n-3", "user-2", false, now.Add(-1*time.Hour))

	w := serveHandler(t, srv.GetUnreadCount, http.MethodGet, "/notifications/unread-count", "/notifications/unread-count", "", "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("count = %d, want 1", resp.Count)
	}
}

func TestNotificationHandler_MarkNotificationRead_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "notif_mark")
	now := time.Now().UTC()

	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")
	mustCreateUser(t, client, "co-1", "user-2", "two@co.test")
	mustCreateNotification(t, client, "n-1", "user-1", false, now)

	// Another user's notification is invisible, not forbidden. The error
	// middleware renders the structured envelope.
	w := serveHandler(t, srv.MarkNotificationRead, http.MethodPost, "/notifications/:id/read", "/notifications/n-1/read", "", "user-2")
	if w.Code != http.StatusNotFound {
		t.Fatalf("cross-user status = %d, want 404", w.Code)
	}
	var errResp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if errResp.Code != "NOTIFICATION_NOT_FOUND" {
		t.Fatalf("error code = %q, want NOTIFICATION_NOT_FOUND", errResp.Code)
	}

	w = serveHandler(t, srv.MarkNotificationRead, http.MethodPost, "/notifications/:id/read", "/notifications/n-1/read", "", "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	n := client.Notification.GetX(t.Context(), "n-1")
	if !n.Read || n.ReadAt == nil {
		t.Fatalf("read=%v readAt=%v, want read with timestamp", n.Read, n.ReadAt)
	}
	firstReadAt := *n.ReadAt

	// Second call is idempotent and keeps the original read timestamp.
	w = serveHandler(t, srv.MarkNotificationRead, http.MethodPost, "/notifications/:id/read", "/notifications/n-1/read", "", "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("repeat status = %d", w.Code)
	}
	n = client.Notification.GetX(t.Context(), "n-1")
	if !n.ReadAt.Equal(firstReadAt) {
		t.Fatalf("readAt changed on repeat: %v -> %v", firstReadAt, n.ReadAt)
	}
}

func TestNotificationHandler_MarkAllNotificationsRead(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "notif_markall")
	now := time.Now().UTC()

	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")
	mustCreateUser(t, client, "co-1", "user-2", "two@co.test")
	mustCreateNotification(t, client, "n-1", "user-1", false, now.Add(-2*time.Hour))
	mustCreateNotification(t, client, "n-2", "user-1", false, now.Add(-time.Hour))
	mustCreateNotification(t, client, "n-3", "user-2", false, now)

	w := serveHandler(t, srv.MarkAllNotificationsRead, http.MethodPost, "/notifications/read-all", "/notifications/read-all", "", "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Updated int `json:"updated"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Updated != 2 {
		t.Fatalf("updated = %d, want 2", resp.Updated)
	}

	// user-2's row is untouched.
	if n := client.Notification.GetX(t.Context(), "n-3"); n.Read {
		t.Fatal("other user's notification was marked read")
	}
}

func TestNotificationHandler_DeleteNotification_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "notif_delete")
	now := time.Now().UTC()

	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")
	mustCreateUser(t, client, "co-1", "user-2", "two@co.test")
	mustCreateNotification(t, client, "n-1", "user-1", false, now)

	w := serveHandler(t, srv.DeleteNotification, http.MethodDelete, "/notifications/:id", "/notifications/n-1", "", "user-2")
	if w.Code != http.StatusNotFound {
		t.Fatalf("cross-user status = %d, want 404", w.Code)
	}

	w = serveHandler(t, srv.DeleteNotification, http.MethodDelete, "/notifications/:id", "/notifications/n-1", "", "user-1")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}

	if count := client.Notification.Query().CountX(t.Context()); count != 0 {
		t.Fatalf("remaining notifications = %d", count)
	}
}

func TestNotificationHandler_DeleteReadNotifications(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "notif_clearread")
	now := time.Now().UTC()

	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")
	mustCreateNotification(t, client, "n-1", "user-1", true, now.Add(-2*time.Hour))
	mustCreateNotification(t, client, "n-2", "user-1", true, now.Add(-time.Hour))
	mustCreateNotification(t, client, "n-3", "user-1", false, now)

	w := serveHandler(t, srv.DeleteReadNotifications, http.MethodDelete, "/notifications/read", "/notifications/read", "", "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Deleted int `json:"deleted"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Deleted != 2 {
		t.Fatalf("deleted = %d, want 2", resp.Deleted)
	}

	ids := client.Notification.Query().IDsX(t.Context())
	if len(ids) != 1 || ids[0] != "n-3" {
		t.Fatalf("remaining = %v, want only the unread n-3", ids)
	}
}

func TestNotificationHandler_RequiresAuthentication(t *testing.T) {
	t.Parallel()

	srv, _ := newBehaviorTestServer(t, "notif_noauth")

	tests := []struct {
		name    string
		handler gin.HandlerFunc
	}{
		{"list", srv.ListNotifications},
		{"unread count", srv.GetUnreadCount},
		{"mark read", srv.MarkNotificationRead},
		{"mark all read", srv.MarkAllNotificationsRead},
		{"delete", srv.DeleteNotification},
		{"delete read", srv.DeleteReadNotifications},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := serveHandler(t, tc.handler, http.MethodGet, "/notifications", "/notifications", "", "")
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401 body=%s", w.Code, w.Body.String())
			}
		})
	}
}
