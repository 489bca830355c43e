package booking

import (
	"context"
	"sync"
	"testing"

	bookingRepo "deltaclinic/database/repository/booking"
	"deltaclinic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo enforces the same unique keys as the Mongo indexes.
type memoryRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	// hideExisting makes FindExisting miss, simulating a concurrent insert
	// landing between the check and the insert.
	hideExisting bool
}

func (m *memoryRepo) Create(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.bookings {
		sameSlot := e.Treatment == b.Treatment && e.AppointmentDate == b.AppointmentDate && e.Slot == b.Slot
		samePatient := e.AppointmentDate == b.AppointmentDate && e.Email == b.Email && e.Treatment == b.Treatment
		if sameSlot || samePatient {
			return bookingRepo.ErrDuplicateBooking
		}
	}
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (m *memoryRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return m.filter(func(b models.Booking) bool { return b.AppointmentDate == date }), nil
}

func (m *memoryRepo) GetByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return m.filter(func(b models.Booking) bool { return b.Email == email }), nil
}

func (m *memoryRepo) FindExisting(ctx context.Context, date, email, treatment string) (*models.Booking, error) {
	if m.hideExisting {
		return nil, nil
	}
	found := m.filter(func(b models.Booking) bool {
		return b.AppointmentDate == date && b.Email == email && b.Treatment == treatment
	})
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (m *memoryRepo) MarkPaid(ctx context.Context, id, transactionID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Paid = true
			m.bookings[i].TransactionID = transactionID
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memoryRepo) filter(keep func(models.Booking) bool) []models.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func newBooking(email, slot string) models.Booking {
	return models.Booking{
		Treatment:       "Cleaning",
		AppointmentDate: "Oct 14, 2026",
		Slot:            slot,
		Email:           email,
		Patient:         "Alex",
		Price:           50,
	}
}

func TestCreateInsertsBooking(t *testing.T) {
	repo := &memoryRepo{}
	svc := &DefaultBookingService{Repo: repo}

	res, err := svc.Create(context.Background(), newBooking("a@clinic.test", "9am"))

	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.NotEmpty(t, res.InsertedID)
	require.Len(t, repo.bookings, 1)
	assert.False(t, repo.bookings[0].Paid)
}

func TestCreateRejectsSecondBookingSameDayAndTreatment(t *testing.T) {
	repo := &memoryRepo{}
	svc := &DefaultBookingService{Repo: repo}
	_, err := svc.Create(context.Background(), newBooking("a@clinic.test", "9am"))
	require.NoError(t, err)

	res, err := svc.Create(context.Background(), newBooking("a@clinic.test", "10am"))

	require.NoError(t, err)
	assert.False(t, res.Acknowledged)
	assert.Equal(t, "You already have a booking on Oct 14, 2026", res.Message)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateRejectsTakenSlotFromUniqueIndex(t *testing.T) {
	repo := &memoryRepo{}
	svc := &DefaultBookingService{Repo: repo}
	_, err := svc.Create(context.Background(), newBooking("a@clinic.test", "9am"))
	require.NoError(t, err)

	res, err := svc.Create(context.Background(), newBooking("b@clinic.test", "9am"))

	require.NoError(t, err)
	assert.False(t, res.Acknowledged)
	assert.Equal(t, "9am is already booked for Cleaning on Oct 14, 2026", res.Message)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateRaceOnSamePatientReportsExistingBooking(t *testing.T) {
	repo := &memoryRepo{}
	svc := &DefaultBookingService{Repo: repo}
	_, err := svc.Create(context.Background(), newBooking("a@clinic.test", "9am"))
	require.NoError(t, err)

	repo.hideExisting = true
	res, err := svc.Create(context.Background(), newBooking("a@clinic.test", "11am"))

	require.NoError(t, err)
	assert.False(t, res.Acknowledged)
	assert.Len(t, repo.bookings, 1)
}

func TestConcurrentCreatesClaimSlotOnce(t *testing.T) {
	repo := &memoryRepo{}
	svc := &DefaultBookingService{Repo: repo}

	var wg sync.WaitGroup
	emails := []string{"a@clinic.test", "b@clinic.test", "c@clinic.test", "d@clinic.test"}
	for _, email := range emails {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			_, _ = svc.Create(context.Background(), newBooking(email, "9am"))
		}(email)
	}
	wg.Wait()

	assert.Len(t, repo.bookings, 1)
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc := &DefaultBookingService{Repo: &memoryRepo{}}

	_, err := svc.Create(context.Background(), models.Booking{Treatment: "Cleaning"})

	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestGetMissingBooking(t *testing.T) {
	svc := &DefaultBookingService{Repo: &memoryRepo{}}

	_, err := svc.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkPaid(t *testing.T) {
	repo := &memoryRepo{}
	svc := &DefaultBookingService{Repo: repo}
	res, err := svc.Create(context.Background(), newBooking("a@clinic.test", "9am"))
	require.NoError(t, err)

	paid, err := svc.MarkPaid(context.Background(), res.InsertedID, "pi_123")

	require.NoError(t, err)
	assert.EqualValues(t, 1, paid.ModifiedCount)
	b, err := svc.Get(context.Background(), res.InsertedID)
	require.NoError(t, err)
	assert.True(t, b.Paid)
	assert.Equal(t, "pi_123", b.TransactionID)

	_, err = svc.MarkPaid(context.Background(), "missing", "pi_456")
	assert.ErrorIs(t, err, ErrNotFound)
}
