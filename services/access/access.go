// Package access maps user roles to the capabilities they grant and checks
// them for authenticated callers.
package access

import (
	"context"
	"fmt"

	"deltaclinic/models"

	"go.uber.org/zap"
)

// Capability names one protected action.
type Capability string

const (
	ManageUsers   Capability = "users:manage"
	ManageDoctors Capability = "doctors:manage"
)

var roleCapabilities = map[string][]Capability{
	models.RoleAdmin: {ManageUsers, ManageDoctors},
}

// Capabilities lists what a role may do. Unknown roles get nothing.
func Capabilities(role string) []Capability {
	return roleCapabilities[role]
}

// Allows reports whether role grants c.
func Allows(role string, c Capability) bool {
	for _, granted := range roleCapabilities[role] {
		if granted == c {
			return true
		}
	}
	return false
}

// UserLookup finds a user by email; nil when absent.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Authorizer resolves a caller's role and checks capabilities against it.
type Authorizer struct {
	Users  UserLookup
	Cache  RoleCache
	Logger *zap.Logger
}

// NewAuthorizer creates an Authorizer. cache may be nil.
func NewAuthorizer(users UserLookup, cache RoleCache, logger *zap.Logger) *Authorizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Authorizer{Users: users, Cache: cache, Logger: logger}
}

// Role returns the stored role for email, or "" for unknown users.
func (a *Authorizer) Role(ctx context.Context, email string) (string, error) {
	if a.Cache != nil {
		role, ok, err := a.Cache.Get(ctx, email)
		if err != nil {
			a.Logger.Warn("role cache read failed, falling back to database", zap.Error(err))
		} else if ok {
			return role, nil
		}
	}

	user, err := a.Users.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to resolve role: %w", err)
	}
	role := ""
	if user != nil {
		role = user.Role
	}

	if a.Cache != nil {
		if err := a.Cache.Set(ctx, email, role); err != nil {
			a.Logger.Warn("role cache write failed", zap.Error(err))
		}
	}
	return role, nil
}

// Can reports whether the user with email holds capability c.
func (a *Authorizer) Can(ctx context.Context, email string, c Capability) (bool, error) {
	role, err := a.Role(ctx, email)
	if err != nil {
		return false, err
	}
	return Allows(role, c), nil
}
