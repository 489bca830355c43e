package userRepo

import (
	"context"
	"errors"

	"deltaclinic/models"
)

// ErrDuplicateEmail is returned by Create when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByID retrieves a user by id; nil when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email; nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// SetRole updates the user's role, returning the matched count.
	SetRole(ctx context.Context, id, role string) (int64, error)
}
