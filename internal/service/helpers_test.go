package service

import (
	"context"
	"testing"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store"
	"fitpro/trainer-app/internal/store/memory"

	"github.com/stretchr/testify/require"
)

// testEnv wires the full service stack over a fresh in-memory DB.
type testEnv struct {
	clients     ClientService
	plans       PlanService
	completions CompletionService
	portal      PortalService
	health      HealthService
	resources   ResourceService
	profile     store.ProfileStore
}

func newTestEnv() *testEnv {
	db := memory.NewDB()
	clientStore := memory.NewClientStore(db)
	workoutStore := memory.NewWorkoutPlanStore(db)
	dietStore := memory.NewDietPlanStore(db)
	completionStore := memory.NewCompletionStore(db)
	injuryStore := memory.NewInjuryStore(db)
	measurementStore := memory.NewMeasurementStore(db)
	noteStore := memory.NewNoteStore(db)
	progressStore := memory.NewProgressStore(db)
	resourceStore := memory.NewResourceStore(db)
	profileStore := memory.NewProfileStore(db)

	completions := NewCompletionService(completionStore, workoutStore, dietStore)
	resources := NewResourceService(resourceStore, nil)

	return &testEnv{
		clients:     NewClientService(clientStore),
		plans:       NewPlanService(clientStore, workoutStore, dietStore),
		completions: completions,
		portal: NewPortalService(
			clientStore, workoutStore, dietStore,
			completions, injuryStore, measurementStore,
			resources, profileStore,
		),
		health:    NewHealthService(clientStore, injuryStore, measurementStore, noteStore, progressStore),
		resources: resources,
		profile:   profileStore,
	}
}

func (e *testEnv) mustCreateClient(t *testing.T, name string) *domain.Client {
	t.Helper()
	client, err := e.clients.Create(context.Background(), &domain.Client{
		Name:         name,
		Email:        name + "@example.com",
		Phone:        "+15550001111",
		Age:          28,
		Weight:       75,
		Height:       175,
		Goal:         domain.GoalWeightLoss,
		FitnessLevel: domain.LevelBeginner,
	})
	require.NoError(t, err)
	return client
}
