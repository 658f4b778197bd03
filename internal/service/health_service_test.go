package service

import (
	"context"
	"testing"
	"time"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjuryLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	client := env.mustCreateClient(t, "ana")

	created, err := env.health.LogInjury(ctx, &domain.InjuryLog{
		ClientID: client.ID, Date: "2025-03-01", Title: "Pulled hamstring",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.InjuryActive, created.Status)

	recovering := domain.InjuryRecovering
	updated, err := env.health.UpdateInjury(ctx, created.ID, store.InjuryUpdate{Status: &recovering})
	require.NoError(t, err)
	assert.Equal(t, domain.InjuryRecovering, updated.Status)

	require.NoError(t, env.health.DeleteInjury(ctx, created.ID))
	assert.ErrorIs(t, env.health.DeleteInjury(ctx, created.ID), ErrRecordNotFound)

	_, err = env.health.UpdateInjury(ctx, created.ID, store.InjuryUpdate{Status: &recovering})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestLogInjuryUnknownClient(t *testing.T) {
	env := newTestEnv()
	_, err := env.health.LogInjury(context.Background(), &domain.InjuryLog{
		ClientID: "ghost", Date: "2025-03-01", Title: "Nope",
	})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestAddNoteStampsDate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	client := env.mustCreateClient(t, "ana")

	before := time.Now()
	note, err := env.health.AddNote(ctx, client.ID, "Watch knee tracking on squats")
	require.NoError(t, err)
	assert.False(t, note.Date.Before(before))
	assert.Equal(t, "Watch knee tracking on squats", note.Content)

	_, err = env.health.AddNote(ctx, client.ID, "")
	assert.Error(t, err)
}

func TestLogProgressDefaultsDate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	client := env.mustCreateClient(t, "ana")

	created, err := env.health.LogProgress(ctx, &domain.Progress{ClientID: client.ID, Weight: 74.5})
	require.NoError(t, err)
	assert.False(t, created.Date.IsZero())

	entries, err := env.health.ListProgress(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 74.5, entries[0].Weight)
}
