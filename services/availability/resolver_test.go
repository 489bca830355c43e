package availability

import (
	"testing"

	"deltaclinic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []models.AppointmentOption {
	return []models.AppointmentOption{
		{Name: "Cleaning", Price: 50, Slots: []string{"9am", "10am", "11am"}},
		{Name: "Whitening", Price: 120, Slots: []string{"9am", "10am"}},
	}
}

func TestResolveWithoutBookingsKeepsSlots(t *testing.T) {
	options := catalog()

	resolved := Resolve(options, nil)

	require.Len(t, resolved, len(options))
	for i := range options {
		assert.Equal(t, options[i].Slots, resolved[i].Slots)
	}
}

func TestResolveRemovesBookedSlotPreservingOrder(t *testing.T) {
	bookings := []models.Booking{{Treatment: "Cleaning", Slot: "10am"}}

	resolved := Resolve(catalog(), bookings)

	assert.Equal(t, []string{"9am", "11am"}, resolved[0].Slots)
	assert.Equal(t, []string{"9am", "10am"}, resolved[1].Slots)
}

func TestResolveDuplicateBookingsCollapse(t *testing.T) {
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "10am"},
		{Treatment: "Cleaning", Slot: "10am"},
	}

	resolved := Resolve(catalog(), bookings)

	assert.Equal(t, []string{"9am", "11am"}, resolved[0].Slots)
}

func TestResolveIgnoresOtherTreatments(t *testing.T) {
	bookings := []models.Booking{{Treatment: "Braces", Slot: "9am"}}

	resolved := Resolve(catalog(), bookings)

	assert.Equal(t, []string{"9am", "10am", "11am"}, resolved[0].Slots)
	assert.Equal(t, []string{"9am", "10am"}, resolved[1].Slots)
}

func TestResolveKeepsNamesPricesAndLength(t *testing.T) {
	options := catalog()
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "9am"},
		{Treatment: "Whitening", Slot: "10am"},
	}

	resolved := Resolve(options, bookings)

	require.Len(t, resolved, len(options))
	for i := range options {
		assert.Equal(t, options[i].Name, resolved[i].Name)
		assert.Equal(t, options[i].Price, resolved[i].Price)
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	options := catalog()
	bookings := []models.Booking{{Treatment: "Cleaning", Slot: "9am"}}

	_ = Resolve(options, bookings)

	assert.Equal(t, []string{"9am", "10am", "11am"}, options[0].Slots)
}

func TestResolveSingleOptionScenario(t *testing.T) {
	options := []models.AppointmentOption{{Name: "Cleaning", Slots: []string{"9am", "10am"}}}
	bookings := []models.Booking{{Treatment: "Cleaning", Slot: "9am"}}

	resolved := Resolve(options, bookings)

	assert.Equal(t, []models.AppointmentOption{{Name: "Cleaning", Slots: []string{"10am"}}}, resolved)
}

func TestResolveEmptyOptions(t *testing.T) {
	resolved := Resolve(nil, []models.Booking{{Treatment: "Cleaning", Slot: "9am"}})

	assert.Empty(t, resolved)
}

func TestResolveFullyBookedOptionHasEmptySlots(t *testing.T) {
	options := []models.AppointmentOption{{Name: "Cleaning", Slots: []string{"9am"}}}
	bookings := []models.Booking{{Treatment: "Cleaning", Slot: "9am"}}

	resolved := Resolve(options, bookings)

	require.NotNil(t, resolved[0].Slots)
	assert.Empty(t, resolved[0].Slots)
}
