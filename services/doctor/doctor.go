package doctor

import (
	"context"
	"errors"
	"time"

	doctorRepo "deltaclinic/database/repository/doctor"
	"deltaclinic/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when deleting a doctor id that does not exist.
var ErrNotFound = errors.New("doctor not found")

type DoctorService interface {
	Create(ctx context.Context, doctor models.Doctor) (*models.WriteResult, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Delete(ctx context.Context, id string) (*models.WriteResult, error)
}

// DefaultDoctorService implements DoctorService.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) Create(ctx context.Context, d models.Doctor) (*models.WriteResult, error) {
	d.ID = uuid.New().String()
	d.CreatedAt = time.Now()
	if err := s.Repo.Create(ctx, &d); err != nil {
		return nil, err
	}
	return &models.WriteResult{Acknowledged: true, InsertedID: d.ID}, nil
}

func (s *DefaultDoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultDoctorService) Delete(ctx context.Context, id string) (*models.WriteResult, error) {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, ErrNotFound
	}
	return &models.WriteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
