package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"crewpulse.io/crewpulse/internal/api/handlers"
	"crewpulse.io/crewpulse/internal/api/middleware"
	"crewpulse.io/crewpulse/internal/config"
	"crewpulse.io/crewpulse/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{}
	cfg.Security.JWTSigningKey = "test-signing-key"
	cfg.Security.CronSecret = "cron-secret"
	server := handlers.NewServer(handlers.ServerDeps{})
	return newRouter(cfg, server)
}

func TestRouter_PublicRoutesSkipJWT(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/health/live",
		"/api/v1/push/vapid-public-key",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d body=%s", path, w.Code, w.Body.String())
		}
	}
}

func TestRouter_ProtectedRoutesRequireJWT(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/notifications"},
		{http.MethodGet, "/api/v1/preferences"},
		{http.MethodPost, "/api/v1/notifications/read-all"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: status = %d, want 401", tc.method, tc.path, w.Code)
		}
	}
}

func TestRouter_CronRoutesUseSharedSecretNotJWT(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cron/digests", nil)
	req.Header.Set("Authorization", "Bearer wrong-secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong secret: status = %d, want 401", w.Code)
	}

	// A valid user JWT is not a cron credential.
	token, _, err := middleware.GenerateToken(middleware.JWTConfig{
		SigningKey: []byte("test-signing-key"),
		Issuer:     "crewpulse",
		ExpiresIn:  time.Hour,
	}, "user-1", "user-1", nil, nil)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/v1/cron/birthdays", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("jwt on cron route: status = %d, want 401", w.Code)
	}
}
