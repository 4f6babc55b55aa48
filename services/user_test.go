package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PKoev99/VenomGames/models"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(testDB(t), testLogger(), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Email:    "gamer@example.com",
		Name:     "Gamer",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)

	token, logged, err := svc.Login(ctx, LoginInput{Email: "gamer@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, models.RoleUser, claims["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Name: "A", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@b.com", Name: "B", Password: "secret2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Name: "A", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, LoginInput{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, LoginInput{Email: "nobody@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAssignRole(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db, testLogger(), "test-secret", time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Name: "A", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.AssignRole(ctx, user.ID, models.RoleAdmin))

	got, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)

	assert.True(t, IsNotFound(svc.AssignRole(ctx, "missing", models.RoleAdmin)))
}

func TestUpdateProfile(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Name: "A", Password: "secret1"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, user.ID, "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	_, err = svc.UpdateProfile(ctx, "missing", "X")
	assert.True(t, IsNotFound(err))
}
