package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"crewpulse.io/crewpulse/api"
)

func newValidatedRouter(t *testing.T) *gin.Engine {
	t.Helper()

	doc, err := api.Load(t.Context())
	if err != nil {
		t.Fatalf("load openapi document: %v", err)
	}

	r := gin.New()
	r.Use(MustOpenAPIValidator(doc, "/api/v1"))
	r.PUT("/api/v1/preferences", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pushEnabled": true})
	})
	r.GET("/api/v1/notifications", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": []string{}, "total": 0, "page": 1, "pageSize": 20})
	})
	return r
}

func TestOpenAPIValidator_AcceptsValidBody(t *testing.T) {
	router := newValidatedRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences",
		strings.NewReader(`{"pushEnabled": false, "digestTime": "08:30"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer t")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestOpenAPIValidator_RejectsMalformedDigestTime(t *testing.T) {
	router := newValidatedRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences",
		strings.NewReader(`{"digestTime": "8:30am"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer t")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "OPENAPI_REQUEST_INVALID") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestOpenAPIValidator_RejectsOversizedPageSize(t *testing.T) {
	router := newValidatedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?pageSize=5000", nil)
	req.Header.Set("Authorization", "Bearer t")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestOpenAPIValidator_PassesThroughUncoveredPaths(t *testing.T) {
	router := newValidatedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// No handler registered, but the validator must not block it.
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want gin 404", w.Code)
	}
}
