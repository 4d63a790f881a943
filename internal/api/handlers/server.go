// Package handlers implements the HTTP handlers for the CrewPulse
// notification API. Routes are registered by internal/app; handlers do not
// register their own routes.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/internal/api/middleware"
	"crewpulse.io/crewpulse/internal/birthday"
	"crewpulse.io/crewpulse/internal/config"
	"crewpulse.io/crewpulse/internal/digest"
	apperrors "crewpulse.io/crewpulse/internal/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Server implements all API handlers.
type Server struct {
	client    *ent.Client
	pool      *pgxpool.Pool
	jwtCfg    middleware.JWTConfig
	pushCfg   config.PushConfig
	digests   *digest.Runner
	birthdays *birthday.Runner
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient *ent.Client
	Pool      *pgxpool.Pool
	JWTCfg    middleware.JWTConfig
	PushCfg   config.PushConfig
	Digests   *digest.Runner
	Birthdays *birthday.Runner
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:    deps.EntClient,
		pool:      deps.Pool,
		jwtCfg:    deps.JWTCfg,
		pushCfg:   deps.PushCfg,
		digests:   deps.Digests,
		birthdays: deps.Birthdays,
	}
}

// userIDFrom extracts the authenticated user ID from the request context.
func userIDFrom(c *gin.Context) string {
	return middleware.GetUserID(c.Request.Context())
}

// abortWithError records err on the gin context and stops the handler
// chain; the ErrorHandler middleware renders the response envelope.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// requireUserID extracts the caller identity or aborts with a 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID := userIDFrom(c)
	if userID == "" {
		abortWithError(c, apperrors.ErrUnauthorizedf())
		return "", false
	}
	return userID, true
}

// defaultPagination normalizes page/pageSize query values.
func defaultPagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
