package api

import (
	"github.com/gin-gonic/gin"

	"github.com/civicwatch/triage/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider) {
	// Health, readiness and metrics
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	if tp != nil {
		router.GET("/metrics", gin.WrapH(tp.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", handler.Classify)         // POST /api/v1/classify
		v1.POST("/authenticity", handler.Authenticity) // POST /api/v1/authenticity

		complaints := v1.Group("/complaints")
		{
			complaints.POST("", handler.SubmitComplaint)        // POST /api/v1/complaints
			complaints.GET("", handler.ListComplaints)          // GET /api/v1/complaints
			complaints.GET("/:id", handler.GetComplaint)        // GET /api/v1/complaints/:id
			complaints.PATCH("/:id/status", handler.UpdateStatus) // PATCH /api/v1/complaints/:id/status
		}

		v1.GET("/stats", handler.GetStats) // GET /api/v1/stats
	}
}
