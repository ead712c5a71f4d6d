package routes

import (
	"net/http"
	"time"

	"connectplatform/handlers"
	"connectplatform/middleware"
	"connectplatform/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the engine with shared middleware and all route groups.
func SetupRouter(hb *handlers.HandlerBundle, requestsPerMin int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RateLimitMiddleware(requestsPerMin))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProfileRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterMeetingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUploadRoutes(r, hb)
	RegisterHealthRoute(r)

	return r
}

// RegisterProfileRoutes registers profile and teacher search endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/profiles", hb.Profile.GetProfileHandler)
	r.GET("/profiles/:user_id", hb.Profile.GetProfileHandler)
	r.POST("/profiles", hb.Profile.UpsertProfileHandler)
	r.GET("/search/teachers", hb.Profile.SearchTeachersHandler)
}

// RegisterCatalogRoutes registers service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/services", hb.Catalog.ListServicesHandler)
	r.POST("/services", hb.Catalog.CreateServiceHandler)
}

// RegisterAvailabilityRoutes registers availability slot endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/availability", hb.Availability.ListAvailabilityHandler)
	r.POST("/availability", hb.Availability.CreateAvailabilityHandler)
	r.DELETE("/availability/:availability_id", hb.Availability.DeleteAvailabilityHandler)
}

// RegisterBookingRoutes registers reservation and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/bookings", hb.Booking.ListBookingsHandler)
	r.POST("/bookings", hb.Booking.CreateBookingHandler)
	r.GET("/bookings/:booking_id/session", hb.Booking.BookingSessionHandler)
}

// RegisterSessionRoutes registers virtual session endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/sessions", hb.Session.CreateSessionHandler)
	r.GET("/sessions/:session_id", hb.Session.GetSessionHandler)
	r.PUT("/sessions/:session_id", hb.Session.UpdateSessionHandler)
}

// RegisterMeetingRoutes registers video meeting endpoints.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/meetings", hb.Meeting.CreateMeetingHandler)
	r.GET("/meetings/:session_id", hb.Meeting.GetMeetingHandler)
	r.DELETE("/meetings", hb.Meeting.EndMeetingHandler)
	r.POST("/attendees", hb.Meeting.CreateAttendeeHandler)
}

// RegisterPaymentRoutes registers payment and admin config endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/payments/initialize", hb.Payment.InitializePaymentHandler)
	r.POST("/payments/verify", hb.Payment.VerifyPaymentHandler)
	r.GET("/payments", hb.Payment.PaymentHistoryHandler)

	admin := r.Group("/admin")
	{
		admin.GET("/payment-config", hb.Payment.GetPaymentConfigHandler)
		admin.PUT("/payment-config", hb.Payment.PutPaymentConfigHandler)
	}
}

// RegisterUploadRoutes registers the presigned upload endpoint.
func RegisterUploadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/presigned-url", hb.Upload.PresignedURLHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "connectplatform",
			"deps":    utils.GetHealthStatus(),
		})
	})
}
