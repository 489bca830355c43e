package routes

import (
	"net/http"
	"time"

	"deltaclinic/handlers"
	"deltaclinic/middleware"
	"deltaclinic/services/access"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAppointmentRoutes registers the catalog and availability endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOptions", hb.Appointment.GetAppointmentOptions)
	r.GET("/appointmentSpecialty", hb.Appointment.GetSpecialties)
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", hb.Booking.CreateBooking)
		bookings.GET("", middleware.VerifyJWT(hb.Tokens), hb.Booking.GetBookingsByEmail)
		bookings.GET("/:id", hb.Booking.GetBookingByID)
	}
}

// RegisterPaymentRoutes registers payment intent and payment recording endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.Payment.CreatePaymentIntent)
	r.POST("/payments", hb.Payment.RecordPayment)
}

// RegisterUserRoutes registers token issuance and user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/jwt", hb.Auth.IssueToken)

	users := r.Group("/users")
	{
		users.POST("", hb.User.CreateUserHandler)
		users.GET("", hb.User.GetAllUsersHandler)
		users.GET("/admin/:email", hb.User.IsAdminHandler)
		users.PUT("/admin/:id",
			middleware.VerifyJWT(hb.Tokens),
			middleware.RequireCapability(hb.Authorizer, access.ManageUsers),
			hb.User.MakeAdminHandler)
	}
}

// RegisterDoctorRoutes registers doctor management endpoints. All require
// the doctors:manage capability.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctors")
	{
		doctors.Use(middleware.VerifyJWT(hb.Tokens))
		doctors.Use(middleware.RequireCapability(hb.Authorizer, access.ManageDoctors))
		doctors.POST("", hb.Doctor.CreateDoctorHandler)
		doctors.GET("", hb.Doctor.GetDoctorsHandler)
		doctors.DELETE("/:id", hb.Doctor.DeleteDoctorHandler)
	}
}

// RegisterHealthRoutes registers liveness, health and metrics endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, gatherer prometheus.Gatherer) {
	r.GET("/", hb.Health.Root)
	r.GET("/health", hb.Health.Health)
	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string, gatherer prometheus.Gatherer) {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))
	if hb.Metrics != nil {
		r.Use(hb.Metrics.Middleware())
	}

	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterHealthRoutes(r, hb, gatherer)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "route not found"})
	})
}
