package user

import (
	"context"
	"testing"

	userRepo "deltaclinic/database/repository/user"
	"deltaclinic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUsers struct {
	users []models.User
}

func (m *memoryUsers) Create(ctx context.Context, u *models.User) error {
	for _, e := range m.users {
		if e.Email == u.Email {
			return userRepo.ErrDuplicateEmail
		}
	}
	m.users = append(m.users, *u)
	return nil
}

func (m *memoryUsers) GetAll(ctx context.Context) ([]models.User, error) {
	return m.users, nil
}

func (m *memoryUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) SetRole(ctx context.Context, id, role string) (int64, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Role = role
			return 1, nil
		}
	}
	return 0, nil
}

type recordingCache struct {
	invalidated []string
}

func (r *recordingCache) Get(ctx context.Context, email string) (string, bool, error) {
	return "", false, nil
}

func (r *recordingCache) Set(ctx context.Context, email, role string) error { return nil }

func (r *recordingCache) Invalidate(ctx context.Context, email string) error {
	r.invalidated = append(r.invalidated, email)
	return nil
}

func TestCreateUserOnce(t *testing.T) {
	repo := &memoryUsers{}
	svc := &DefaultUserService{Repo: repo}

	res, err := svc.Create(context.Background(), models.User{Name: "Sam", Email: "sam@clinic.test", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Empty(t, repo.users[0].Role, "roles are not accepted from the request")

	res, err = svc.Create(context.Background(), models.User{Name: "Sam", Email: "sam@clinic.test"})
	require.NoError(t, err)
	assert.False(t, res.Acknowledged)
	assert.Len(t, repo.users, 1)
}

func TestMakeAdmin(t *testing.T) {
	repo := &memoryUsers{}
	cache := &recordingCache{}
	svc := &DefaultUserService{Repo: repo, RoleCache: cache}
	res, err := svc.Create(context.Background(), models.User{Email: "sam@clinic.test"})
	require.NoError(t, err)

	isAdmin, err := svc.IsAdmin(context.Background(), "sam@clinic.test")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	updated, err := svc.MakeAdmin(context.Background(), res.InsertedID)
	require.NoError(t, err)
	assert.True(t, updated.Acknowledged)
	assert.EqualValues(t, 1, updated.ModifiedCount)
	assert.Equal(t, []string{"sam@clinic.test"}, cache.invalidated)

	isAdmin, err = svc.IsAdmin(context.Background(), "sam@clinic.test")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestMakeAdminUnknownUser(t *testing.T) {
	svc := &DefaultUserService{Repo: &memoryUsers{}}

	_, err := svc.MakeAdmin(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}
