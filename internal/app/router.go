package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sky-herald.io/herald/internal/api/handlers"
	"sky-herald.io/herald/internal/api/middleware"
	"sky-herald.io/herald/internal/config"
)

// newPortalRouter builds the browser-facing router: CORS for the portal
// frontend, request IDs, centralized error handling, and the JWT-guarded
// inbox routes.
func newPortalRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())

	router.Use(cors.New(buildCORSConfig(cfg)))

	server.RegisterPortalRoutes(router)
	return router
}

// buildCORSConfig derives the CORS policy from config. With no configured
// origins every origin is allowed, but credentials are then forced off so
// the wildcard cannot leak session cookies.
func buildCORSConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: cfg.Server.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	return corsCfg
}

// newIngestRouter builds the internal ingestion listener. No CORS and no
// auth: it must only be reachable from the portal backend's network.
func newIngestRouter(server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	server.RegisterIngestRoutes(router)
	return router
}
