package memory

import (
	"context"
	"fmt"
	"time"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/plan"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

var seedGoals = []domain.Goal{
	domain.GoalWeightLoss,
	domain.GoalMuscleGain,
	domain.GoalMaintenance,
	domain.GoalEndurance,
	domain.GoalFlexibility,
}

var seedLevels = []domain.FitnessLevel{
	domain.LevelBeginner,
	domain.LevelIntermediate,
	domain.LevelAdvanced,
}

// Seed populates the store with generated demo clients, each with a
// workout and diet plan for the current month and a few history records.
// Meant for local development only; gated behind the demo.seed config flag.
func Seed(ctx context.Context, db *DB, numClients int) error {
	clients := NewClientStore(db)
	workouts := NewWorkoutPlanStore(db)
	diets := NewDietPlanStore(db)
	measurements := NewMeasurementStore(db)
	progress := NewProgressStore(db)

	now := time.Now()
	month, year := int(now.Month()), now.Year()

	for i := 0; i < numClients; i++ {
		weight := gofakeit.Float64Range(55, 110)
		client, err := clients.Create(ctx, &domain.Client{
			Name:         gofakeit.Name(),
			Email:        gofakeit.Email(),
			Phone:        gofakeit.Phone(),
			Age:          gofakeit.Number(18, 65),
			Weight:       weight,
			Height:       gofakeit.Float64Range(150, 200),
			Goal:         seedGoals[gofakeit.Number(0, len(seedGoals)-1)],
			FitnessLevel: seedLevels[gofakeit.Number(0, len(seedLevels)-1)],
			PortalKey:    uuid.NewString(),
		})
		if err != nil {
			return fmt.Errorf("seed client: %w", err)
		}

		workoutDays := plan.EmptyWorkoutDays(month, year)
		for d := range workoutDays {
			if (d+1)%7 == 0 {
				workoutDays[d].IsRestDay = true
				continue
			}
			workoutDays[d].Exercises = []domain.Exercise{
				{
					ID:          uuid.NewString(),
					Name:        gofakeit.RandomString([]string{"Squats", "Push-ups", "Lunges", "Plank", "Burpees", "Pull-ups"}),
					Sets:        gofakeit.Number(2, 5),
					Reps:        gofakeit.Number(6, 15),
					RestSeconds: gofakeit.Number(30, 120),
				},
			}
		}
		if _, err := workouts.Create(ctx, &domain.WorkoutPlan{
			ClientID: client.ID,
			Name:     fmt.Sprintf("%s %d Training", now.Month(), year),
			Month:    month,
			Year:     year,
			Days:     workoutDays,
		}); err != nil {
			return fmt.Errorf("seed workout plan: %w", err)
		}

		dietDays := plan.EmptyDietDays(month, year)
		for d := range dietDays {
			dietDays[d].Meals = []domain.Meal{
				{
					ID:       uuid.NewString(),
					Type:     domain.MealBreakfast,
					Name:     gofakeit.Breakfast(),
					Calories: gofakeit.Number(250, 500),
					Protein:  gofakeit.Number(10, 35),
					Carbs:    gofakeit.Number(20, 60),
					Fat:      gofakeit.Number(5, 25),
				},
				{
					ID:       uuid.NewString(),
					Type:     domain.MealDinner,
					Name:     gofakeit.Dinner(),
					Calories: gofakeit.Number(400, 800),
					Protein:  gofakeit.Number(20, 50),
					Carbs:    gofakeit.Number(30, 80),
					Fat:      gofakeit.Number(10, 35),
				},
			}
		}
		if _, err := diets.Create(ctx, &domain.DietPlan{
			ClientID:       client.ID,
			Name:           fmt.Sprintf("%s %d Nutrition", now.Month(), year),
			Month:          month,
			Year:           year,
			TargetCalories: gofakeit.Number(1600, 3200),
			Days:           dietDays,
		}); err != nil {
			return fmt.Errorf("seed diet plan: %w", err)
		}

		// A few weeks of history so charts have something to draw.
		for week := 4; week >= 1; week-- {
			when := now.AddDate(0, 0, -7*week)
			w := weight + gofakeit.Float64Range(-2, 2)
			if _, err := measurements.Create(ctx, &domain.MeasurementLog{
				ClientID: client.ID,
				Date:     plan.LocalDate(when),
				Weight:   &w,
			}); err != nil {
				return fmt.Errorf("seed measurement: %w", err)
			}
			if _, err := progress.Create(ctx, &domain.Progress{
				ClientID: client.ID,
				Date:     when,
				Weight:   w,
			}); err != nil {
				return fmt.Errorf("seed progress: %w", err)
			}
		}
	}
	return nil
}
