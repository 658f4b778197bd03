package service

import (
	"context"
	"testing"
	"time"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store/memory"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-do-not-use"

func newAuthService() AuthService {
	return NewAuthService(memory.NewUserStore(memory.NewDB()), testJWTSecret, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	user, err := auth.Register(ctx, "coach", "super-secret-pw", domain.RoleTrainer, "gym-1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash, "hash must never leave the service")

	token, loggedIn, err := auth.Login(ctx, "coach", "super-secret-pw")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleTrainer, claims.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	_, err := auth.Register(ctx, "coach", "super-secret-pw", domain.RoleTrainer, "")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "coach", "another-pw-here", domain.RoleTrainer, "")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	_, err := auth.Register(ctx, "coach", "super-secret-pw", domain.RoleTrainer, "")
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "coach", "wrong-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = auth.Login(ctx, "stranger", "super-secret-pw")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestUsersByGymStripsHashes(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	_, err := auth.Register(ctx, "coach-a", "super-secret-pw", domain.RoleTrainer, "gym-1")
	require.NoError(t, err)
	_, err = auth.Register(ctx, "coach-b", "super-secret-pw", domain.RoleAdmin, "gym-1")
	require.NoError(t, err)

	users, err := auth.UsersByGym(ctx, "gym-1")
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}
