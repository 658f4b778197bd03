package memory

import (
	"context"
	"testing"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/plan"
	"fitpro/trainer-app/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutPlanCreateRequiresClient(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	workouts := NewWorkoutPlanStore(db)

	_, err := workouts.Create(ctx, &domain.WorkoutPlan{
		ClientID: "ghost", Name: "March", Month: 3, Year: 2025,
		Days: plan.EmptyWorkoutDays(3, 2025),
	})
	assert.ErrorIs(t, err, store.ErrClientRequired)
}

func TestDietPlanCreateRequiresClient(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	diets := NewDietPlanStore(db)

	_, err := diets.Create(ctx, &domain.DietPlan{
		ClientID: "ghost", Name: "March", Month: 3, Year: 2025,
		Days: plan.EmptyDietDays(3, 2025),
	})
	assert.ErrorIs(t, err, store.ErrClientRequired)
}

func TestWorkoutPlanListingsInCreationOrder(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	clients := NewClientStore(db)
	workouts := NewWorkoutPlanStore(db)

	client, err := clients.Create(ctx, newTestClient("Ana", "key-ana"))
	require.NoError(t, err)

	names := []string{"January", "February", "March"}
	for i, n := range names {
		_, err := workouts.Create(ctx, &domain.WorkoutPlan{
			ClientID: client.ID, Name: n, Month: i + 1, Year: 2025,
			Days: plan.EmptyWorkoutDays(i+1, 2025),
		})
		require.NoError(t, err)
	}

	plans, err := workouts.GetByClientID(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	for i, p := range plans {
		assert.Equal(t, names[i], p.Name)
	}
}

func TestWorkoutPlanDeleteRemovesItsCompletions(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	clients := NewClientStore(db)
	workouts := NewWorkoutPlanStore(db)
	completions := NewCompletionStore(db)

	client, err := clients.Create(ctx, newTestClient("Ana", "key-ana"))
	require.NoError(t, err)

	doomed, err := workouts.Create(ctx, &domain.WorkoutPlan{
		ClientID: client.ID, Name: "March", Month: 3, Year: 2025,
		Days: plan.EmptyWorkoutDays(3, 2025),
	})
	require.NoError(t, err)
	survivor, err := workouts.Create(ctx, &domain.WorkoutPlan{
		ClientID: client.ID, Name: "April", Month: 4, Year: 2025,
		Days: plan.EmptyWorkoutDays(4, 2025),
	})
	require.NoError(t, err)

	_, err = completions.Upsert(ctx, &domain.ItemCompletion{
		ClientID: client.ID, PlanID: doomed.ID, Type: domain.PlanTypeWorkout,
		Date: "2025-03-10", ItemID: "ex-1", Completed: true,
	})
	require.NoError(t, err)
	_, err = completions.Upsert(ctx, &domain.ItemCompletion{
		ClientID: client.ID, PlanID: survivor.ID, Type: domain.PlanTypeWorkout,
		Date: "2025-04-10", ItemID: "ex-2", Completed: true,
	})
	require.NoError(t, err)

	require.NoError(t, workouts.Delete(ctx, doomed.ID))

	gone, err := completions.GetByClientAndDate(ctx, client.ID, "2025-03-10")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := completions.GetByClientAndDate(ctx, client.ID, "2025-04-10")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestDietPlanPartialUpdate(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	clients := NewClientStore(db)
	diets := NewDietPlanStore(db)

	client, err := clients.Create(ctx, newTestClient("Ana", "key-ana"))
	require.NoError(t, err)

	created, err := diets.Create(ctx, &domain.DietPlan{
		ClientID: client.ID, Name: "Cut", Month: 3, Year: 2025,
		TargetCalories: 2000, Days: plan.EmptyDietDays(3, 2025),
	})
	require.NoError(t, err)

	calories := 1800
	updated, err := diets.Update(ctx, created.ID, store.DietPlanUpdate{TargetCalories: &calories})
	require.NoError(t, err)
	assert.Equal(t, 1800, updated.TargetCalories)
	assert.Equal(t, "Cut", updated.Name)
	assert.Len(t, updated.Days, 31)
}
