package routes

import (
	"time"

	"bandroom/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterReservationRoutes registers all booking endpoints.
func RegisterReservationRoutes(r *gin.Engine, h *handlers.ReservationHandler) {
	api := r.Group("/api")
	{
		api.GET("/availability/:date", h.GetAvailabilityHandler)

		reservations := api.Group("/reservations")
		reservations.POST("", h.CreateReservationHandler)
		reservations.GET("", h.ListReservationsHandler)
		reservations.PATCH("/:id/status", h.UpdateReservationStatusHandler)
	}

	r.GET("/healthz", handlers.HealthHandler)
}

// CORSMiddleware returns the shared CORS policy for the API.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
