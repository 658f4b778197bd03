package memory

import (
	"context"
	"testing"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUsernameUniqueness(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	users := NewUserStore(db)

	created, err := users.Create(ctx, &domain.User{
		Username: "coach", PasswordHash: "hash", Role: domain.RoleTrainer,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = users.Create(ctx, &domain.User{
		Username: "coach", PasswordHash: "other", Role: domain.RoleTrainer,
	})
	assert.ErrorIs(t, err, store.ErrDuplicateKey)
}

func TestUserGetByUsername(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	users := NewUserStore(db)

	created, err := users.Create(ctx, &domain.User{
		Username: "coach", PasswordHash: "hash", Role: domain.RoleTrainer,
	})
	require.NoError(t, err)

	found, err := users.GetByUsername(ctx, "coach")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = users.GetByUsername(ctx, "stranger")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserGetByGymID(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	users := NewUserStore(db)

	for _, u := range []domain.User{
		{Username: "a", Role: domain.RoleTrainer, GymID: "gym-1"},
		{Username: "b", Role: domain.RoleTrainer, GymID: "gym-1"},
		{Username: "c", Role: domain.RoleAdmin, GymID: "gym-2"},
	} {
		u := u
		_, err := users.Create(ctx, &u)
		require.NoError(t, err)
	}

	gym1, err := users.GetByGymID(ctx, "gym-1")
	require.NoError(t, err)
	assert.Len(t, gym1, 2)

	empty, err := users.GetByGymID(ctx, "gym-3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
