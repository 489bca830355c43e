package user

import (
	"context"
	"errors"

	userRepo "deltaclinic/database/repository/user"
	"deltaclinic/models"
	"deltaclinic/services/access"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a user id does not exist.
var ErrNotFound = errors.New("user not found")

type UserService interface {
	// Create registers a user unless the email is already known.
	Create(ctx context.Context, user models.User) (*models.WriteResult, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// MakeAdmin grants the admin role to the user with id.
	MakeAdmin(ctx context.Context, id string) (*models.WriteResult, error)
	// IsAdmin reports whether email belongs to an admin.
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	RoleCache access.RoleCache
	Logger    *zap.Logger
}
