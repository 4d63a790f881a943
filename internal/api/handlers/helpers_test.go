package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"crewpulse.io/crewpulse/ent"
	entnotification "crewpulse.io/crewpulse/ent/notification"
	"crewpulse.io/crewpulse/internal/api/middleware"
	"crewpulse.io/crewpulse/internal/birthday"
	"crewpulse.io/crewpulse/internal/digest"
	"crewpulse.io/crewpulse/internal/notification"
	"crewpulse.io/crewpulse/internal/pkg/logger"
	"crewpulse.io/crewpulse/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

// noopMailer satisfies digest.Mailer for handler tests that never reach SMTP.
type noopMailer struct{}

func (noopMailer) SendDigest(context.Context, *ent.User, *digest.UserDigest) error { return nil }

func newBehaviorTestServer(t *testing.T, prefix string) (*Server, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	return NewServer(ServerDeps{
		EntClient: client,
		Digests:   digest.NewRunner(client, digest.NewAggregator(client), noopMailer{}),
		Birthdays: birthday.NewRunner(client, notification.NewInboxSender(client)),
	}), client
}

// serveHandler serves one request through a gin engine with the error
// middleware installed, the way internal/app mounts handlers in production.
// Errors recorded via c.Error are rendered by the middleware, so tests see
// the real response envelope.
func serveHandler(
	t *testing.T,
	handler gin.HandlerFunc,
	method string,
	pattern string,
	target string,
	body string,
	userID string,
) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Handle(method, pattern, handler)

	var req *http.Request
	if strings.TrimSpace(body) == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(middleware.SetUserContext(req.Context(), userID, userID, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustCreateCompany(t *testing.T, client *ent.Client, id string) *ent.Company {
	t.Helper()
	obj, err := client.Company.Create().
		SetID(id).
		SetName("Company " + id).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create company: %v", err)
	}
	return obj
}

func mustCreateUser(t *testing.T, client *ent.Client, companyID, id, email string) *ent.User {
	t.Helper()
	obj, err := client.User.Create().
		SetID(id).
		SetEmail(email).
		SetFirstName("User " + id).
		SetCompanyID(companyID).
		Save(t.Context())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return obj
}

func mustCreateNotification(t *testing.T, client *ent.Client, id, userID string, read bool, createdAt time.Time) *ent.Notification {
	t.Helper()
	builder := client.Notification.Create().
		SetID(id).
		SetType(entnotification.TypeMESSAGE).
		SetTitle("title-" + id).
		SetMessage("message-" + id).
		SetUserID(userID).
		SetCreatedAt(createdAt).
		SetRead(read)
	if read {
		builder = builder.SetReadAt(createdAt.Add(5 * time.Minute))
	}
	obj, err := builder.Save(t.Context())
	if err != nil {
		t.Fatalf("create notification: %v", err)
	}
	return obj
}
