package routes

import (
	"careconnect/handlers"
	"careconnect/middleware"
	"careconnect/models"
	"careconnect/utils"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProviderRoutes registers the provider directory and scheduling
// endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public directory endpoints.
		api.GET("", hb.ListProvidersHandler)
		api.GET("/:id", hb.GetProviderHandler)
		api.GET("/:id/slots", hb.ListSlotsHandler)

		// Schedule management requires the owning provider or an admin.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("/:id/availability", hb.GetAvailabilityHandler)
		protected.PUT("/:id/availability", hb.SetAvailabilityHandler)
		protected.PUT("/:id/availability/exceptions", hb.UpsertExceptionHandler)
		protected.DELETE("/:id/availability/exceptions/:date", hb.DeleteExceptionHandler)
		protected.GET("/:id/appointments", hb.ListProviderAppointmentsHandler)
	}
}

// RegisterAppointmentRoutes registers booking and lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", middleware.RequireRole(models.RolePatient), hb.BookAppointmentHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PATCH("/:id", hb.TransitionAppointmentHandler)
	}

	me := r.Group("/api/me")
	{
		me.Use(middleware.JWTAuthMiddleware())
		me.GET("/appointments", middleware.RequireRole(models.RolePatient), hb.ListMyAppointmentsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
		adminGroup.POST("/reminders/run", hb.RunReminderPassHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterProviderRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
