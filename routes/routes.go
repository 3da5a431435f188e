package routes

import (
	"net/http"
	"time"

	"github.com/RajRabadiya018/CarringNanny/handlers"
	"github.com/RajRabadiya018/CarringNanny/middleware"
	"github.com/RajRabadiya018/CarringNanny/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Users.RegisterHandler)
		api.POST("/login", hb.Users.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Users.GetProfileHandler)
		api.PUT("/me", hb.Users.UpdateProfileHandler)
	}
}

// RegisterNannyRoutes registers the nanny directory and profile endpoints.
func RegisterNannyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/nannies")
	{
		// Public directory: parents browse without a token.
		api.GET("", hb.Nannies.ListNanniesHandler)
		api.GET("/:id", hb.Nannies.GetNannyHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleNanny))
		protected.POST("/profile", hb.Nannies.CreateProfileHandler)
		protected.PUT("/profile", hb.Nannies.UpdateProfileHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.GET("/parent", hb.Bookings.ListParentBookingsHandler)
		api.GET("/nanny", hb.Bookings.ListNannyBookingsHandler)
		api.GET("/:id", hb.Bookings.GetBookingHandler)
		api.POST("/:id/cancel", hb.Bookings.CancelBookingHandler)
		api.POST("/:id/confirm", hb.Bookings.ConfirmBookingHandler)
		api.POST("/:id/decline", hb.Bookings.DeclineBookingHandler)
		api.POST("/:id/complete", hb.Bookings.CompleteBookingHandler)
		api.POST("/:id/review", hb.Bookings.ReviewBookingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleAdmin))
		api.GET("/users", hb.Admin.GetAllUsersHandler)
		api.DELETE("/users/:id", hb.Admin.DeleteUserHandler)
		api.GET("/nannies", hb.Admin.GetAllNanniesHandler)
		api.DELETE("/nannies/:id", hb.Admin.DeleteNannyHandler)
		api.GET("/bookings", hb.Admin.GetAllBookingsHandler)
		api.GET("/stats", hb.Admin.GetStatsHandler)
		api.POST("/bookings/:id/recompute-price", hb.Admin.RecomputePriceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "CarringNanny is up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterNannyRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
