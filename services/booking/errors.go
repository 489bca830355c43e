package booking

import "errors"

var (
	// ErrNotFound is returned when a booking id does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrInvalidBooking is returned when required booking fields are missing.
	ErrInvalidBooking = errors.New("invalid booking")
)
