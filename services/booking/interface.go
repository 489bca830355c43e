package booking

import (
	"context"

	bookingRepo "deltaclinic/database/repository/booking"
	"deltaclinic/models"

	"go.uber.org/zap"
)

// BookingService defines booking operations exposed over HTTP.
type BookingService interface {
	// Create stores a booking unless the patient already holds one for the same
	// date and treatment, or the slot is already taken.
	Create(ctx context.Context, booking models.Booking) (*models.WriteResult, error)
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	MarkPaid(ctx context.Context, id, transactionID string) (*models.WriteResult, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}
