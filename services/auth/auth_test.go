package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/pwnz15/backend-sld/models"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byUsername map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	cp := *user
	f.byUsername[user.Username] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.NotFoundError{Entity: "user", ID: id}
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.byUsername))
	for _, u := range f.byUsername {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	cp := *user
	f.byUsername[user.Username] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

func TestRegisterAssignsRolePermissions(t *testing.T) {
	svc := &DefaultAuthService{Repo: newFakeUserRepo()}

	resp, err := svc.Register(context.Background(), RegisterInput{
		Username: "caissier1",
		Password: "secret123",
		Role:     models.RoleCaissier,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleCaissier, resp.User.Role)
	assert.ElementsMatch(t, models.RolePermissions[models.RoleCaissier], resp.User.Permissions)
	assert.True(t, resp.User.IsActive)
	// The stored hash is never the raw password.
	assert.NotEqual(t, "secret123", resp.User.PasswordHash)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, models.RoleCaissier, claims.Role)
}

func TestRegisterUnknownRole(t *testing.T) {
	svc := &DefaultAuthService{Repo: newFakeUserRepo()}

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "x", Password: "y", Role: "superuser",
	})

	var vErr models.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "role", vErr.Field)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := &DefaultAuthService{Repo: newFakeUserRepo()}

	input := RegisterInput{Username: "admin", Password: "pw", Role: models.RoleAdmin}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	var dup models.DuplicateKeyError
	require.True(t, errors.As(err, &dup))
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultAuthService{Repo: repo}

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "vendeuse1", Password: "correct horse", Role: models.RoleVendeuse,
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), LoginInput{Username: "vendeuse1", Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(context.Background(), LoginInput{Username: "vendeuse1", Password: "wrong"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), LoginInput{Username: "nobody", Password: "whatever"})
	assert.Error(t, err)
}

func TestLoginInactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultAuthService{Repo: repo}

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "ancien", Password: "pw123456", Role: models.RoleCommercial,
	})
	require.NoError(t, err)

	repo.byUsername["ancien"].IsActive = false

	_, err = svc.Login(context.Background(), LoginInput{Username: "ancien", Password: "pw123456"})
	assert.Error(t, err)
}
