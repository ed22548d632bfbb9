package routes

import (
	"net/http"
	"time"

	"koshub/handlers"
	"koshub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every page and API route. The home page, the
// accommodations browse and the auth pages are public; everything else sits
// behind RequireAuth.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	// Public pages.
	r.GET("/", h.HomePage)
	r.GET("/accommodations", h.AccommodationsPage)

	auth := r.Group("/auth")
	{
		auth.GET("/login", h.ShowLoginPage)
		auth.POST("/login", h.LoginSubmit)
		auth.GET("/register", h.ShowRegisterPage)
		auth.POST("/register", h.RegisterSubmit)
		auth.POST("/logout", h.Logout)
	}

	// Protected pages (Require Authentication)
	protected := r.Group("")
	protected.Use(middleware.RequireAuth())
	{
		protected.POST("/accommodations/book", h.CreateBookingSubmit)
		protected.GET("/dashboard", h.DashboardPage)
		protected.POST("/dashboard/bookings/:id/:action", h.UpdateBookingStatusSubmit)
		protected.GET("/dashboard/notifications", h.NotificationsPage)
		protected.POST("/dashboard/notifications/read-all", h.MarkAllNotificationsReadSubmit)
		protected.POST("/dashboard/notifications/:id/read", h.MarkNotificationReadSubmit)
		protected.GET("/services", h.ServicesPage)
		protected.GET("/services/laundry", h.LaundryPage)
		protected.POST("/services/laundry", h.CreateLaundrySubmit)
		protected.GET("/services/catering", h.CateringPage)
		protected.POST("/services/catering", h.CreateCateringSubmit)
	}

	// JSON endpoints polled by the navbar.
	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	api.Use(middleware.RequireAuthJSON())
	{
		api.GET("/notifications/unread-count", h.UnreadCountAPI)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm KosHub"})
	})
}
