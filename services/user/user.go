package user

import (
	"context"
	"errors"
	"time"

	userRepo "deltaclinic/database/repository/user"
	"deltaclinic/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultUserService) Create(ctx context.Context, u models.User) (*models.WriteResult, error) {
	existing, err := s.Repo.GetByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &models.WriteResult{Acknowledged: false, Message: "User already exists"}, nil
	}

	u.ID = uuid.New().String()
	// Roles are only granted through MakeAdmin.
	u.Role = ""
	u.CreatedAt = time.Now()
	if err := s.Repo.Create(ctx, &u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return &models.WriteResult{Acknowledged: false, Message: "User already exists"}, nil
		}
		return nil, err
	}
	return &models.WriteResult{Acknowledged: true, InsertedID: u.ID}, nil
}

func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.Repo.GetByEmail(ctx, email)
}

func (s *DefaultUserService) MakeAdmin(ctx context.Context, id string) (*models.WriteResult, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}

	matched, err := s.Repo.SetRole(ctx, id, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrNotFound
	}

	if s.RoleCache != nil {
		if err := s.RoleCache.Invalidate(ctx, u.Email); err != nil {
			s.logger().Warn("failed to invalidate cached role", zap.String("email", u.Email), zap.Error(err))
		}
	}

	modified := int64(1)
	if u.Role == models.RoleAdmin {
		modified = 0
	}
	return &models.WriteResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}, nil
}

func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil && u.Role == models.RoleAdmin, nil
}

func (s *DefaultUserService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
