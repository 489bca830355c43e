package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "deltaclinic/database/repository/booking"
	"deltaclinic/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create inserts a new booking. Duplicates are reported through an
// unacknowledged WriteResult rather than an error.
func (s *DefaultBookingService) Create(ctx context.Context, b models.Booking) (*models.WriteResult, error) {
	if err := validateBooking(b); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindExisting(ctx, b.AppointmentDate, b.Email, b.Treatment)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bookings: %w", err)
	}
	if existing != nil {
		return alreadyBooked(b.AppointmentDate), nil
	}

	b.ID = uuid.New().String()
	b.Paid = false
	b.TransactionID = ""
	b.CreatedAt = time.Now()

	if err := s.Repo.Create(ctx, &b); err != nil {
		if !errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return nil, err
		}
		// A concurrent insert won; work out which rule it tripped.
		existing, lookupErr := s.Repo.FindExisting(ctx, b.AppointmentDate, b.Email, b.Treatment)
		if lookupErr == nil && existing != nil {
			return alreadyBooked(b.AppointmentDate), nil
		}
		s.logger().Info("slot already taken",
			zap.String("treatment", b.Treatment),
			zap.String("date", b.AppointmentDate),
			zap.String("slot", b.Slot))
		return &models.WriteResult{
			Acknowledged: false,
			Message:      fmt.Sprintf("%s is already booked for %s on %s", b.Slot, b.Treatment, b.AppointmentDate),
		}, nil
	}

	return &models.WriteResult{Acknowledged: true, InsertedID: b.ID}, nil
}

// ListByEmail returns the bookings made with email.
func (s *DefaultBookingService) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.Repo.GetByEmail(ctx, email)
}

// Get returns a booking by id or ErrNotFound.
func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// MarkPaid records the transaction id on the booking.
func (s *DefaultBookingService) MarkPaid(ctx context.Context, id, transactionID string) (*models.WriteResult, error) {
	matched, err := s.Repo.MarkPaid(ctx, id, transactionID)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrNotFound
	}
	return &models.WriteResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: matched}, nil
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func alreadyBooked(date string) *models.WriteResult {
	return &models.WriteResult{
		Acknowledged: false,
		Message:      "You already have a booking on " + date,
	}
}

func validateBooking(b models.Booking) error {
	var missing []string
	if b.Treatment == "" {
		missing = append(missing, "treatment")
	}
	if b.AppointmentDate == "" {
		missing = append(missing, "appointmentDate")
	}
	if b.Slot == "" {
		missing = append(missing, "slot")
	}
	if b.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidBooking, strings.Join(missing, ", "))
	}
	return nil
}
