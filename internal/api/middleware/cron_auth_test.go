package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"crewpulse.io/crewpulse/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func newCronRouter(secret string) (*gin.Engine, *int) {
	invocations := 0
	r := gin.New()
	r.GET("/internal/cron/ping", CronAuth(secret), func(c *gin.Context) {
		invocations++
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, &invocations
}

func TestCronAuth(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		authHeader string
		wantStatus int
		wantCalled bool
	}{
		{"valid secret", "s3cret", "Bearer s3cret", http.StatusOK, true},
		{"case-insensitive scheme", "s3cret", "bearer s3cret", http.StatusOK, true},
		{"wrong secret", "s3cret", "Bearer nope", http.StatusUnauthorized, false},
		{"missing header", "s3cret", "", http.StatusUnauthorized, false},
		{"malformed header", "s3cret", "s3cret", http.StatusUnauthorized, false},
		{"unset secret rejects everything", "", "Bearer ", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, called := newCronRouter(tt.secret)

			req := httptest.NewRequest(http.MethodGet, "/internal/cron/ping", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if (*called > 0) != tt.wantCalled {
				t.Fatalf("handler called = %d, want called=%v", *called, tt.wantCalled)
			}
		})
	}
}
