package handlers

import (
	"deltaclinic/middleware"
)

// HandlerBundle groups the endpoint handlers and the guards the routes need.
type HandlerBundle struct {
	Tokens     middleware.TokenValidator
	Authorizer middleware.CapabilityChecker
	Metrics    *middleware.HTTPMetrics

	Appointment *AppointmentHandler
	Booking     *BookingHandler
	Payment     *PaymentHandler
	Auth        *AuthHandler
	User        *UserHandler
	Doctor      *DoctorHandler
	Health      *HealthHandler
}
