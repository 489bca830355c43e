package availability

import (
	"context"
	"errors"
	"testing"

	"deltaclinic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOptionRepo struct {
	options     []models.AppointmentOption
	specialties []models.Specialty
	err         error
}

func (f *fakeOptionRepo) GetAll(ctx context.Context) ([]models.AppointmentOption, error) {
	return f.options, f.err
}

func (f *fakeOptionRepo) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	return f.specialties, f.err
}

type fakeBookingReader struct {
	byDate    map[string][]models.Booking
	requested []string
}

func (f *fakeBookingReader) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	f.requested = append(f.requested, date)
	return f.byDate[date], nil
}

func TestAvailableOptionsUsesBookingsForRequestedDate(t *testing.T) {
	bookings := &fakeBookingReader{byDate: map[string][]models.Booking{
		"Oct 14, 2026": {{Treatment: "Cleaning", Slot: "9am", AppointmentDate: "Oct 14, 2026"}},
		"Oct 15, 2026": {{Treatment: "Cleaning", Slot: "10am", AppointmentDate: "Oct 15, 2026"}},
	}}
	svc := &DefaultAvailabilityService{
		Options:  &fakeOptionRepo{options: []models.AppointmentOption{{Name: "Cleaning", Slots: []string{"9am", "10am"}}}},
		Bookings: bookings,
	}

	got, err := svc.AvailableOptions(context.Background(), "Oct 14, 2026")

	require.NoError(t, err)
	assert.Equal(t, []string{"Oct 14, 2026"}, bookings.requested)
	assert.Equal(t, []string{"10am"}, got[0].Slots)
}

func TestAvailableOptionsPropagatesCatalogError(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Options:  &fakeOptionRepo{err: errors.New("boom")},
		Bookings: &fakeBookingReader{},
	}

	_, err := svc.AvailableOptions(context.Background(), "Oct 14, 2026")

	assert.Error(t, err)
}
