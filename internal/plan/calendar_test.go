package plan

import (
	"testing"
	"time"

	"fitpro/trainer-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(1, 2025))
	assert.Equal(t, 28, DaysInMonth(2, 2023))
	assert.Equal(t, 29, DaysInMonth(2, 2024)) // leap year
	assert.Equal(t, 28, DaysInMonth(2, 2100)) // century, not a leap year
	assert.Equal(t, 30, DaysInMonth(4, 2025))
	assert.Equal(t, 31, DaysInMonth(12, 2025))
}

func TestEmptyWorkoutDays(t *testing.T) {
	days := EmptyWorkoutDays(2, 2024)
	require.Len(t, days, 29)
	for i, d := range days {
		assert.Equal(t, i+1, d.Day)
		assert.False(t, d.IsRestDay)
		assert.NotNil(t, d.Exercises)
		assert.Empty(t, d.Exercises)
	}
}

func TestEmptyDietDays(t *testing.T) {
	days := EmptyDietDays(4, 2025)
	require.Len(t, days, 30)
	for i, d := range days {
		assert.Equal(t, i+1, d.Day)
		assert.NotNil(t, d.Meals)
		assert.Equal(t, float64(DefaultWaterIntake), d.WaterIntake)
	}
}

func TestNormalizeWorkoutDays(t *testing.T) {
	t.Run("assigns ids to new exercises", func(t *testing.T) {
		days := EmptyWorkoutDays(1, 2025)
		days[0].Exercises = []domain.Exercise{
			{Name: "Squat", Sets: 3, Reps: 10},
			{ID: "keep-me", Name: "Bench Press", Sets: 3, Reps: 8},
		}

		out, err := NormalizeWorkoutDays(days, 1, 2025)
		require.NoError(t, err)
		assert.NotEmpty(t, out[0].Exercises[0].ID)
		assert.Equal(t, "keep-me", out[0].Exercises[1].ID)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		days := EmptyWorkoutDays(1, 2025) // 31 days
		_, err := NormalizeWorkoutDays(days, 2, 2025)
		require.Error(t, err)
	})

	t.Run("rejects misnumbered days", func(t *testing.T) {
		days := EmptyWorkoutDays(1, 2025)
		days[4].Day = 99
		_, err := NormalizeWorkoutDays(days, 1, 2025)
		require.Error(t, err)
	})

	t.Run("replaces nil exercise slices", func(t *testing.T) {
		days := EmptyWorkoutDays(1, 2025)
		days[2].Exercises = nil
		out, err := NormalizeWorkoutDays(days, 1, 2025)
		require.NoError(t, err)
		assert.NotNil(t, out[2].Exercises)
	})
}

func TestNormalizeDietDays(t *testing.T) {
	days := EmptyDietDays(2, 2024)
	days[0].Meals = []domain.Meal{{Type: domain.MealBreakfast, Name: "Oatmeal", Calories: 350}}

	out, err := NormalizeDietDays(days, 2, 2024)
	require.NoError(t, err)
	assert.NotEmpty(t, out[0].Meals[0].ID)

	_, err = NormalizeDietDays(days[:28], 2, 2024)
	require.Error(t, err)
}

func TestCopyWorkoutDay(t *testing.T) {
	days := EmptyWorkoutDays(1, 2025)
	days[0].IsRestDay = false
	days[0].Notes = "leg day"
	days[0].Exercises = []domain.Exercise{
		{ID: "ex-1", Name: "Squat", Sets: 5, Reps: 5, RestSeconds: 180},
		{ID: "ex-2", Name: "Lunges", Sets: 3, Reps: 12, RestSeconds: 60},
	}

	out, err := CopyWorkoutDay(days, 1, []int{3, 5})
	require.NoError(t, err)

	for _, target := range []int{3, 5} {
		copied := out[target-1]
		assert.Equal(t, target, copied.Day)
		assert.Equal(t, "leg day", copied.Notes)
		require.Len(t, copied.Exercises, 2)
		for i, ex := range copied.Exercises {
			// Content matches, ids are regenerated so completion state
			// stays per-day.
			assert.Equal(t, days[0].Exercises[i].Name, ex.Name)
			assert.Equal(t, days[0].Exercises[i].Sets, ex.Sets)
			assert.Equal(t, days[0].Exercises[i].Reps, ex.Reps)
			assert.NotEqual(t, days[0].Exercises[i].ID, ex.ID)
			assert.NotEmpty(t, ex.ID)
		}
	}

	// Untouched days keep their original content.
	assert.Empty(t, out[1].Exercises)
	assert.Equal(t, "ex-1", out[0].Exercises[0].ID)
}

func TestCopyWorkoutDayGeneratesDistinctIDsPerTarget(t *testing.T) {
	days := EmptyWorkoutDays(1, 2025)
	days[0].Exercises = []domain.Exercise{{ID: "ex-1", Name: "Deadlift", Sets: 3, Reps: 5}}

	out, err := CopyWorkoutDay(days, 1, []int{2, 3})
	require.NoError(t, err)
	assert.NotEqual(t, out[1].Exercises[0].ID, out[2].Exercises[0].ID)
}

func TestCopyWorkoutDaySelfCopyIsNoop(t *testing.T) {
	days := EmptyWorkoutDays(1, 2025)
	days[0].Exercises = []domain.Exercise{{ID: "ex-1", Name: "Squat"}}

	out, err := CopyWorkoutDay(days, 1, []int{1})
	require.NoError(t, err)
	assert.Equal(t, "ex-1", out[0].Exercises[0].ID)
}

func TestCopyWorkoutDayUnknownDays(t *testing.T) {
	days := EmptyWorkoutDays(2, 2023) // 28 days

	_, err := CopyWorkoutDay(days, 30, []int{1})
	require.Error(t, err)

	_, err = CopyWorkoutDay(days, 1, []int{29})
	require.Error(t, err)
}

func TestCopyDietDay(t *testing.T) {
	days := EmptyDietDays(1, 2025)
	days[0].WaterIntake = 3.5
	days[0].Meals = []domain.Meal{
		{ID: "meal-1", Type: domain.MealLunch, Name: "Chicken and rice", Calories: 650, Protein: 45},
	}

	out, err := CopyDietDay(days, 1, []int{10})
	require.NoError(t, err)

	copied := out[9]
	assert.Equal(t, 3.5, copied.WaterIntake)
	require.Len(t, copied.Meals, 1)
	assert.Equal(t, "Chicken and rice", copied.Meals[0].Name)
	assert.NotEqual(t, "meal-1", copied.Meals[0].ID)
}

func TestReplaceWorkoutDay(t *testing.T) {
	days := EmptyWorkoutDays(1, 2025)

	updated := domain.DayWorkout{Day: 7, IsRestDay: true, Exercises: []domain.Exercise{}}
	out, err := ReplaceWorkoutDay(days, updated)
	require.NoError(t, err)
	assert.True(t, out[6].IsRestDay)
	assert.False(t, out[7].IsRestDay)

	_, err = ReplaceWorkoutDay(days, domain.DayWorkout{Day: 32})
	require.Error(t, err)
}

func TestReplaceDietDay(t *testing.T) {
	days := EmptyDietDays(1, 2025)

	updated := domain.DayDiet{Day: 2, Meals: []domain.Meal{}, WaterIntake: 4}
	out, err := ReplaceDietDay(days, updated)
	require.NoError(t, err)
	assert.Equal(t, float64(4), out[1].WaterIntake)

	_, err = ReplaceDietDay(days, domain.DayDiet{Day: 0})
	require.Error(t, err)
}

func TestLocalDate(t *testing.T) {
	loc := time.FixedZone("UTC+11", 11*60*60)
	// 23:30 UTC on Jan 5 is already Jan 6 in UTC+11.
	utc := time.Date(2025, 1, 5, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-01-05", LocalDate(utc))
	assert.Equal(t, "2025-01-06", LocalDate(utc.In(loc)))
}
