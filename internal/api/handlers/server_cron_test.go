package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"crewpulse.io/crewpulse/internal/digest"
)

func TestCronHandler_DigestBatchEmptyIsSuccess(t *testing.T) {
	t.Parallel()

	srv, _ := newBehaviorTestServer(t, "cron_digest_empty")

	w := serveHandler(t, srv.RunDigestBatch, http.MethodGet, "/cron/digests", "/cron/digests", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp digest.RunSummary
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Found != 0 || resp.Sent != 0 || resp.Errors != 0 {
		t.Fatalf("summary = %+v, want clean zero-candidate run", resp)
	}
}

func TestCronHandler_DigestBatchSendsToDueUser(t *testing.T) {
	t.Parallel()

	srv, client := newBehaviorTestServer(t, "cron_digest_due")
	mustCreateCompany(t, client, "co-1")
	mustCreateUser(t, client, "co-1", "user-1", "one@co.test")
	mustCreateUser(t, client, "co-1", "user-2", "two@co.test")

	// Cover both sides of a possible minute rollover between setup and the
	// handler's own clock read; exactly one of the two users is due.
	now := time.Now().Truncate(time.Minute)
	client.NotificationPreference.Create().
		SetID("pref-1").
		SetUserID("user-1").
		SetDailyDigest(true).
		SetDigestTime(now.Format("15:04")).
		SaveX(t.Context())
	client.NotificationPreference.Create().
		SetID("pref-2").
		SetUserID("user-2").
		SetDailyDigest(true).
		SetDigestTime(now.Add(time.Minute).Format("15:04")).
		SaveX(t.Context())

	w := serveHandler(t, srv.RunDigestBatch, http.MethodGet, "/cron/digests", "/cron/digests", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp digest.RunSummary
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Found != 1 || resp.Sent != 1 {
		t.Fatalf("summary = %+v, want one sent digest", resp)
	}
	if len(resp.Details) != 1 || resp.Details[0].Status != "sent" {
		t.Fatalf("details = %+v", resp.Details)
	}
}

func TestCronHandler_BirthdayBatchEmptyIsSuccess(t *testing.T) {
	t.Parallel()

	srv, _ := newBehaviorTestServer(t, "cron_birthday_empty")

	w := serveHandler(t, srv.RunBirthdayBatch, http.MethodGet, "/cron/birthdays", "/cron/birthdays", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Success           bool `json:"success"`
		BirthdaysFound    int  `json:"birthdaysFound"`
		NotificationsSent int  `json:"notificationsSent"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.BirthdaysFound != 0 || resp.NotificationsSent != 0 {
		t.Fatalf("summary = %+v, want clean zero-candidate run", resp)
	}
}
