package doctorRepo

import (
	"context"

	"deltaclinic/models"
)

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// Delete removes a doctor by id, returning the deleted count.
	Delete(ctx context.Context, id string) (int64, error)
}
