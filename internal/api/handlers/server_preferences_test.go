package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"crewpulse.io/crewpulse/ent/notificationpreference"
	entuser "crewpulse.io/crewpulse/ent/user"
)

func TestPreferencesHandler_GetReturnsDefaultsWithoutRow(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "prefs_defaults")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")

	w := serveHandler(t, srv.GetPreferences, http.MethodGet, "/preferences", "/preferences", "", "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp preferencesJSON
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.EmailOnMessage || !resp.PushEnabled {
		t.Fatalf("defaults should be open: %+v", resp)
	}
	if resp.DailyDigest || resp.WeeklyDigest || resp.MonthlyDigest {
		t.Fatalf("digests should default off: %+v", resp)
	}
	if resp.DigestTime != "08:00" {
		t.Fatalf("digestTime = %q, want 08:00", resp.DigestTime)
	}

	// GET alone must not create the row.
	count := client.NotificationPreference.Query().CountX(t.Context())
	if count != 0 {
		t.Fatalf("preference rows = %d, want lazy creation only on update", count)
	}
}

func TestPreferencesHandler_UpdateCreatesRowLazily(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "prefs_lazy")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")

	body := `{"emailOnShiftSwap": false, "dailyDigest": true, "digestTime": "07:30"}`
	w := serveHandler(t, srv.UpdatePreferences, http.MethodPut, "/preferences", "/preferences", body, "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	pref := client.NotificationPreference.Query().
		Where(notificationpreference.HasUserWith(entuser.IDEQ("user-1"))).
		OnlyX(t.Context())
	if pref.EmailOnShiftSwap {
		t.Fatal("emailOnShiftSwap should be off")
	}
	if !pref.DailyDigest || pref.DigestTime != "07:30" {
		t.Fatalf("dailyDigest=%v digestTime=%q", pref.DailyDigest, pref.DigestTime)
	}
	// Untouched fields keep their defaults.
	if !pref.EmailOnMessage || !pref.PushEnabled {
		t.Fatalf("unrelated fields changed: %+v", pref)
	}
}

func TestPreferencesHandler_UpdateClampsDayOfMonth(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "prefs_clamp")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")

	body := `{"monthlyDigest": true, "digestDayOfMonth": 31}`
	w := serveHandler(t, srv.UpdatePreferences, http.MethodPut, "/preferences", "/preferences", body, "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp preferencesJSON
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 29..31 would skip short months entirely, so the stored value caps at 28.
	if resp.DigestDayOfMonth != 28 {
		t.Fatalf("digestDayOfMonth = %d, want 28", resp.DigestDayOfMonth)
	}
}

func TestPreferencesHandler_UpdateRejectsBadDigestTime(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "prefs_badtime")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")

	for _, bad := range []string{"8:30", "24:00", "08:60", "morning"} {
		w := serveHandler(t, srv.UpdatePreferences, http.MethodPut, "/preferences", "/preferences", `{"digestTime": "`+bad+`"}`, "user-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("digestTime %q: status = %d, want 400", bad, w.Code)
		}
	}

	// Rejected updates must not create the row.
	if count := client.NotificationPreference.Query().CountX(t.Context()); count != 0 {
		t.Fatalf("preference rows = %d after rejected updates", count)
	}
}

func TestPreferencesHandler_UpdateExistingRow(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "prefs_update")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")

	client.NotificationPreference.Create().
		SetID("pref-1").
		SetUserID("user-1").
		SetPushEnabled(false).
		SaveX(t.Context())

	w := serveHandler(t, srv.UpdatePreferences, http.MethodPut, "/preferences", "/preferences", `{"weeklyDigest": true, "digestDayOfWeek": 5}`, "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	pref := client.NotificationPreference.GetX(t.Context(), "pref-1")
	if !pref.WeeklyDigest || pref.DigestDayOfWeek != 5 {
		t.Fatalf("weeklyDigest=%v dow=%d", pref.WeeklyDigest, pref.DigestDayOfWeek)
	}
	// The earlier opt-out survives a partial update.
	if pref.PushEnabled {
		t.Fatal("pushEnabled was reset by unrelated update")
	}
	if count := client.NotificationPreference.Query().CountX(t.Context()); count != 1 {
		t.Fatalf("preference rows = %d, want the single original row", count)
	}
}
