package service

import (
	"context"
	"errors"
	"time"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/plan"
	"fitpro/trainer-app/internal/store"
)

var (
	ErrInvalidCompletion = errors.New("invalid completion")
)

// CompletionService records which exercises and meals a client has checked
// off per day. Toggling is an idempotent upsert on the composite
// (client, plan, type, date, item) key.
type CompletionService interface {
	// Toggle sets the completed flag for one item on one day. An empty
	// date means "today" relative to the given reference time, using the
	// local day boundary.
	Toggle(ctx context.Context, c *domain.ItemCompletion, now time.Time) (*domain.ItemCompletion, error)

	// ListForDate returns a client's completions for one day (empty date
	// again meaning "today" relative to now).
	ListForDate(ctx context.Context, clientID, date string, now time.Time) ([]domain.ItemCompletion, error)

	// IsCompleted reports whether an item is checked off. Absence of a
	// record reads as false, not as an error.
	IsCompleted(ctx context.Context, key domain.CompletionKey) (bool, error)
}

type completionService struct {
	completions store.CompletionStore
	workouts    store.WorkoutPlanStore
	diets       store.DietPlanStore
}

// NewCompletionService creates a new instance of completionService.
func NewCompletionService(completions store.CompletionStore, workouts store.WorkoutPlanStore, diets store.DietPlanStore) CompletionService {
	return &completionService{completions: completions, workouts: workouts, diets: diets}
}

func (s *completionService) Toggle(ctx context.Context, c *domain.ItemCompletion, now time.Time) (*domain.ItemCompletion, error) {
	if c.ClientID == "" || c.PlanID == "" || c.ItemID == "" {
		return nil, ErrInvalidCompletion
	}
	switch c.Type {
	case domain.PlanTypeWorkout:
		if _, err := s.workouts.GetByID(ctx, c.PlanID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrPlanNotFound
			}
			return nil, err
		}
	case domain.PlanTypeDiet:
		if _, err := s.diets.GetByID(ctx, c.PlanID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrPlanNotFound
			}
			return nil, err
		}
	default:
		return nil, ErrInvalidCompletion
	}

	if c.Date == "" {
		c.Date = plan.LocalDate(now)
	}
	return s.completions.Upsert(ctx, c)
}

func (s *completionService) ListForDate(ctx context.Context, clientID, date string, now time.Time) ([]domain.ItemCompletion, error) {
	if date == "" {
		date = plan.LocalDate(now)
	}
	return s.completions.GetByClientAndDate(ctx, clientID, date)
}

func (s *completionService) IsCompleted(ctx context.Context, key domain.CompletionKey) (bool, error) {
	c, err := s.completions.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return c.Completed, nil
}
