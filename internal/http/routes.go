package http

import (
	"taskmanager/internal/http/handlers"
	"taskmanager/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, version string) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db, version)

	r.Use(middleware.Metrics())

	// Health checks
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	registerAPIRoutes(v1, h)

	// Legacy /api routes for backward compatibility
	api := r.Group("/api")
	registerAPIRoutes(api, h)

	// Frontend static files
	r.StaticFile("/", "./web/index.html")
	r.StaticFS("/assets", gin.Dir("./web", false))
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.AddTask)
	api.DELETE("/tasks/:id", h.DeleteTask)

	// IAP identity, display only
	api.GET("/whoami", h.WhoAmI)
}
