package availability

import (
	"context"
	"fmt"

	appointmentRepo "deltaclinic/database/repository/appointment"
	"deltaclinic/models"
)

// BookingReader is the slice of the booking store the resolver needs.
type BookingReader interface {
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
}

// AvailabilityService answers slot availability queries.
type AvailabilityService interface {
	AvailableOptions(ctx context.Context, date string) ([]models.AppointmentOption, error)
	Specialties(ctx context.Context) ([]models.Specialty, error)
}

// DefaultAvailabilityService reads the catalog and the day's bookings on every
// call and resolves them.
type DefaultAvailabilityService struct {
	Options  appointmentRepo.AppointmentOptionRepository
	Bookings BookingReader
}

// AvailableOptions returns every option with its slots narrowed to those still
// free on date.
func (s *DefaultAvailabilityService) AvailableOptions(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	options, err := s.Options.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	booked, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	return Resolve(options, booked), nil
}

// Specialties returns the treatment names in the catalog.
func (s *DefaultAvailabilityService) Specialties(ctx context.Context) ([]models.Specialty, error) {
	specialties, err := s.Options.GetSpecialties(ctx)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	return specialties, nil
}
