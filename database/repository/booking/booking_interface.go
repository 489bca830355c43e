package bookingRepo

import (
	"context"
	"errors"

	"deltaclinic/models"
)

// ErrDuplicateBooking is returned by Create when a unique index rejects the
// insert, i.e. the slot or the patient's treatment day is already taken.
var ErrDuplicateBooking = errors.New("booking already exists")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking. Returns ErrDuplicateBooking on a unique index violation.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by id; nil when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByDate retrieves every booking on the given appointment date.
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	// GetByEmail retrieves every booking made with the given email.
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// FindExisting returns the patient's booking for the same date and treatment; nil when absent.
	FindExisting(ctx context.Context, date, email, treatment string) (*models.Booking, error)
	// MarkPaid sets the paid flag and transaction id, returning the matched count.
	MarkPaid(ctx context.Context, id, transactionID string) (int64, error)
}
