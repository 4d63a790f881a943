package app

import (
	"context"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"crewpulse.io/crewpulse/api"
	"crewpulse.io/crewpulse/internal/api/handlers"
	"crewpulse.io/crewpulse/internal/api/middleware"
	"crewpulse.io/crewpulse/internal/config"
)

// Public routes that do NOT require JWT authentication. Cron endpoints
// carry their own shared-secret check.
var publicPrefixes = []string{
	"/api/v1/health/",
	"/api/v1/push/vapid-public-key",
	"/api/v1/cron/",
}

func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(corsPolicy(cfg))

	doc, err := api.Load(context.Background())
	if err != nil {
		panic("load openapi contract: " + err.Error())
	}
	router.Use(middleware.MustOpenAPIValidator(doc, "/api/v1"))
	router.Use(jwtSkipPublic([]byte(cfg.Security.JWTSigningKey)))

	v1 := router.Group("/api/v1")

	v1.GET("/health/live", server.GetLiveness)
	v1.GET("/health/ready", server.GetReadiness)

	v1.GET("/notifications", server.ListNotifications)
	v1.GET("/notifications/unread-count", server.GetUnreadCount)
	v1.POST("/notifications/read-all", server.MarkAllNotificationsRead)
	v1.POST("/notifications/:id/read", server.MarkNotificationRead)
	v1.DELETE("/notifications/read", server.DeleteReadNotifications)
	v1.DELETE("/notifications/:id", server.DeleteNotification)

	v1.GET("/preferences", server.GetPreferences)
	v1.PUT("/preferences", server.UpdatePreferences)

	v1.POST("/push/subscriptions", server.SubscribePush)
	v1.DELETE("/push/subscriptions", server.UnsubscribePush)
	v1.GET("/push/vapid-public-key", server.GetVAPIDPublicKey)

	cron := v1.Group("/cron", middleware.CronAuth(cfg.Security.CronSecret))
	cron.GET("/digests", server.RunDigestBatch)
	cron.GET("/birthdays", server.RunBirthdayBatch)

	return router
}

// corsPolicy allows the configured web origin, or any origin when none is
// configured (dev mode).
func corsPolicy(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	if origin := strings.TrimRight(cfg.App.BaseURL, "/"); origin != "" {
		corsCfg.AllowOrigins = []string{origin}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	return cors.New(corsCfg)
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(signingKey []byte) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(signingKey)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}
