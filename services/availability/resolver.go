// Package availability computes which appointment slots are still free on a date.
package availability

import "deltaclinic/models"

// Resolve narrows each option's slots to those not claimed by a booking with a
// matching treatment. bookingsForDate must already be filtered to one date.
// The result has the same length and order as options; names and prices are
// unchanged and slot order is preserved. Inputs are not modified.
func Resolve(options []models.AppointmentOption, bookingsForDate []models.Booking) []models.AppointmentOption {
	booked := make(map[string]map[string]struct{}, len(options))
	for _, b := range bookingsForDate {
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	resolved := make([]models.AppointmentOption, len(options))
	for i, option := range options {
		taken := booked[option.Name]
		free := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if _, isBooked := taken[slot]; !isBooked {
				free = append(free, slot)
			}
		}
		option.Slots = free
		resolved[i] = option
	}
	return resolved
}
