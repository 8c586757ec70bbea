package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"taskhive/handlers"
	"taskhive/middleware"
)

// RegisterProfileRoutes registers customer/tasker account endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profiles")
	{
		api.POST("/customers/register", hb.Profiles.RegisterCustomer)
		api.POST("/taskers/register", hb.Profiles.RegisterTasker)
		api.POST("/login", hb.Profiles.Login)

		// Protected routes (require authentication)
		api.Use(middleware.AuthMiddleware())
		api.GET("/:profileID", hb.Profiles.Get)
		api.PATCH("/:profileID", hb.Profiles.Update)
		api.GET("/taskers", hb.Profiles.Taskers)
	}
}

// RegisterServiceRoutes registers the public service catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Services.List)
		api.GET("/:serviceID", hb.Services.Get)
	}
}

// RegisterAIRoutes registers classification, matching, and booking-session
// endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.POST("/classify", hb.AI.Classify)
		api.GET("/followups/:serviceID", hb.AI.Followups)
		api.POST("/match", hb.AI.Match)

		api.Use(middleware.AuthMiddleware())
		api.POST("/session", hb.AI.StartSession)
		api.PUT("/session/:sessionID", hb.AI.UpdateSession)
		api.DELETE("/session/:sessionID", hb.AI.CancelSession)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.Bookings.Create)
		api.GET("", hb.Bookings.List)
		api.GET("/search", hb.Bookings.Search)
		api.GET("/stats", hb.Bookings.Stats)
		api.GET("/:bookingID", hb.Bookings.Get)
		api.POST("/:bookingID/accept", hb.Bookings.Accept)
		api.POST("/:bookingID/decline", hb.Bookings.Decline)
		api.POST("/:bookingID/start", hb.Bookings.Start)
		api.POST("/:bookingID/complete", hb.Bookings.Complete)
		api.POST("/:bookingID/cancel", hb.Bookings.Cancel)
		api.POST("/:bookingID/checkout", hb.Bookings.Checkout)
	}
}

// RegisterTaskRoutes sets up task posting endpoints.
func RegisterTaskRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tasks")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.Tasks.Create)
		api.GET("", hb.Tasks.List)
		api.PATCH("/:taskID", hb.Tasks.Update)
	}
}

// RegisterReviewRoutes sets up review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/tasker/:taskerID", hb.Reviews.ListByTasker)

		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.Reviews.Create)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterProfileRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterTaskRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
}
