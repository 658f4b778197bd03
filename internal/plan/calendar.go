// Package plan holds the calendar plan model: pure functions that build,
// validate and copy the per-day structure of monthly workout and diet
// plans. Plans are dense 1-indexed arrays with one entry per calendar day
// of their month.
package plan

import (
	"fmt"
	"time"

	"fitpro/trainer-app/internal/domain"

	"github.com/google/uuid"
)

// DefaultWaterIntake is the pre-filled daily water target in liters.
const DefaultWaterIntake = 2

// DaysInMonth returns the number of calendar days in (month, year),
// month 1-12. Day zero of the following month rolls back to the last day
// of the requested one, so leap years come out right.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EmptyWorkoutDays builds the empty skeleton for a workout plan month:
// one training day per calendar day, no exercises, not a rest day.
func EmptyWorkoutDays(month, year int) []domain.DayWorkout {
	count := DaysInMonth(month, year)
	days := make([]domain.DayWorkout, count)
	for i := range days {
		days[i] = domain.DayWorkout{
			Day:       i + 1,
			IsRestDay: false,
			Exercises: []domain.Exercise{},
		}
	}
	return days
}

// EmptyDietDays builds the empty skeleton for a diet plan month with the
// default water intake pre-filled.
func EmptyDietDays(month, year int) []domain.DayDiet {
	count := DaysInMonth(month, year)
	days := make([]domain.DayDiet, count)
	for i := range days {
		days[i] = domain.DayDiet{
			Day:         i + 1,
			Meals:       []domain.Meal{},
			WaterIntake: DefaultWaterIntake,
		}
	}
	return days
}

// NormalizeWorkoutDays validates the dense-array invariant for a submitted
// day list and assigns ids to any exercises that arrived without one.
// The error is a validation failure surfaced to the caller as a 400.
func NormalizeWorkoutDays(days []domain.DayWorkout, month, year int) ([]domain.DayWorkout, error) {
	count := DaysInMonth(month, year)
	if len(days) != count {
		return nil, fmt.Errorf("plan for %d/%d must have %d days, got %d", month, year, count, len(days))
	}
	out := make([]domain.DayWorkout, count)
	for i, d := range days {
		if d.Day != i+1 {
			return nil, fmt.Errorf("day at index %d must be numbered %d, got %d", i, i+1, d.Day)
		}
		if d.Exercises == nil {
			d.Exercises = []domain.Exercise{}
		}
		for j := range d.Exercises {
			if d.Exercises[j].ID == "" {
				d.Exercises[j].ID = uuid.NewString()
			}
		}
		out[i] = d
	}
	return out, nil
}

// NormalizeDietDays is the diet counterpart of NormalizeWorkoutDays.
func NormalizeDietDays(days []domain.DayDiet, month, year int) ([]domain.DayDiet, error) {
	count := DaysInMonth(month, year)
	if len(days) != count {
		return nil, fmt.Errorf("plan for %d/%d must have %d days, got %d", month, year, count, len(days))
	}
	out := make([]domain.DayDiet, count)
	for i, d := range days {
		if d.Day != i+1 {
			return nil, fmt.Errorf("day at index %d must be numbered %d, got %d", i, i+1, d.Day)
		}
		if d.Meals == nil {
			d.Meals = []domain.Meal{}
		}
		for j := range d.Meals {
			if d.Meals[j].ID == "" {
				d.Meals[j].ID = uuid.NewString()
			}
		}
		out[i] = d
	}
	return out, nil
}

// CopyWorkoutDay duplicates the source day's contents into each target day.
// Every copied exercise gets a fresh id: completion tracking is keyed by
// item id, and sharing ids across days would make checking off Monday's
// squats also check off Tuesday's.
func CopyWorkoutDay(days []domain.DayWorkout, sourceDay int, targetDays []int) ([]domain.DayWorkout, error) {
	source, err := findWorkoutDay(days, sourceDay)
	if err != nil {
		return nil, err
	}
	targets := map[int]bool{}
	for _, t := range targetDays {
		if t == sourceDay {
			continue
		}
		if _, err := findWorkoutDay(days, t); err != nil {
			return nil, err
		}
		targets[t] = true
	}

	out := make([]domain.DayWorkout, len(days))
	for i, d := range days {
		if !targets[d.Day] {
			out[i] = d
			continue
		}
		copied := d
		copied.IsRestDay = source.IsRestDay
		copied.Notes = source.Notes
		copied.Exercises = make([]domain.Exercise, len(source.Exercises))
		for j, ex := range source.Exercises {
			ex.ID = uuid.NewString()
			copied.Exercises[j] = ex
		}
		out[i] = copied
	}
	return out, nil
}

// CopyDietDay duplicates the source diet day into each target day, with
// fresh meal ids for the same completion-isolation reason.
func CopyDietDay(days []domain.DayDiet, sourceDay int, targetDays []int) ([]domain.DayDiet, error) {
	source, err := findDietDay(days, sourceDay)
	if err != nil {
		return nil, err
	}
	targets := map[int]bool{}
	for _, t := range targetDays {
		if t == sourceDay {
			continue
		}
		if _, err := findDietDay(days, t); err != nil {
			return nil, err
		}
		targets[t] = true
	}

	out := make([]domain.DayDiet, len(days))
	for i, d := range days {
		if !targets[d.Day] {
			out[i] = d
			continue
		}
		copied := d
		copied.WaterIntake = source.WaterIntake
		copied.Notes = source.Notes
		copied.Meals = make([]domain.Meal, len(source.Meals))
		for j, meal := range source.Meals {
			meal.ID = uuid.NewString()
			copied.Meals[j] = meal
		}
		out[i] = copied
	}
	return out, nil
}

// ReplaceWorkoutDay swaps out the record with the matching day number.
func ReplaceWorkoutDay(days []domain.DayWorkout, updated domain.DayWorkout) ([]domain.DayWorkout, error) {
	if _, err := findWorkoutDay(days, updated.Day); err != nil {
		return nil, err
	}
	out := make([]domain.DayWorkout, len(days))
	for i, d := range days {
		if d.Day == updated.Day {
			out[i] = updated
		} else {
			out[i] = d
		}
	}
	return out, nil
}

// ReplaceDietDay swaps out the record with the matching day number.
func ReplaceDietDay(days []domain.DayDiet, updated domain.DayDiet) ([]domain.DayDiet, error) {
	if _, err := findDietDay(days, updated.Day); err != nil {
		return nil, err
	}
	out := make([]domain.DayDiet, len(days))
	for i, d := range days {
		if d.Day == updated.Day {
			out[i] = updated
		} else {
			out[i] = d
		}
	}
	return out, nil
}

func findWorkoutDay(days []domain.DayWorkout, day int) (domain.DayWorkout, error) {
	for _, d := range days {
		if d.Day == day {
			return d, nil
		}
	}
	return domain.DayWorkout{}, fmt.Errorf("no day %d in plan", day)
}

func findDietDay(days []domain.DayDiet, day int) (domain.DayDiet, error) {
	for _, d := range days {
		if d.Day == day {
			return d, nil
		}
	}
	return domain.DayDiet{}, fmt.Errorf("no day %d in plan", day)
}

// LocalDate formats t as the local-day key used by completion tracking,
// "YYYY-MM-DD" in t's own location. The local (not UTC) boundary is
// deliberate: trainers and clients may sit in different timezones, and the
// day a client sees must match their wall clock. Known consequence: a
// toggle near midnight can land on a neighbouring day when server and
// client zones differ.
func LocalDate(t time.Time) string {
	return t.Format("2006-01-02")
}
