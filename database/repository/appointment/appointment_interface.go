package appointmentRepo

import (
	"context"

	"deltaclinic/models"
)

// AppointmentOptionRepository reads the treatment catalog.
type AppointmentOptionRepository interface {
	// GetAll retrieves every appointment option, unfiltered.
	GetAll(ctx context.Context) ([]models.AppointmentOption, error)
	// GetSpecialties retrieves only the option names.
	GetSpecialties(ctx context.Context) ([]models.Specialty, error)
}
