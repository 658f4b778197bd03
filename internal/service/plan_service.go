package service

import (
	"context"
	"errors"
	"fmt"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/plan"
	"fitpro/trainer-app/internal/store"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrInvalidPlan  = errors.New("invalid plan")
)

// PlanService manages monthly workout and diet plans. Plans are validated
// against the calendar model on every write: the day array must be dense,
// 1-indexed and exactly as long as the plan's month.
type PlanService interface {
	CreateWorkoutPlan(ctx context.Context, p *domain.WorkoutPlan) (*domain.WorkoutPlan, error)
	GetWorkoutPlan(ctx context.Context, id string) (*domain.WorkoutPlan, error)
	ListWorkoutPlans(ctx context.Context, clientID string) ([]domain.WorkoutPlan, error)
	UpdateWorkoutPlan(ctx context.Context, id string, upd store.WorkoutPlanUpdate) (*domain.WorkoutPlan, error)
	DeleteWorkoutPlan(ctx context.Context, id string) error
	CopyWorkoutDay(ctx context.Context, planID string, sourceDay int, targetDays []int) (*domain.WorkoutPlan, error)

	CreateDietPlan(ctx context.Context, p *domain.DietPlan) (*domain.DietPlan, error)
	GetDietPlan(ctx context.Context, id string) (*domain.DietPlan, error)
	ListDietPlans(ctx context.Context, clientID string) ([]domain.DietPlan, error)
	UpdateDietPlan(ctx context.Context, id string, upd store.DietPlanUpdate) (*domain.DietPlan, error)
	DeleteDietPlan(ctx context.Context, id string) error
	CopyDietDay(ctx context.Context, planID string, sourceDay int, targetDays []int) (*domain.DietPlan, error)
}

type planService struct {
	clients  store.ClientStore
	workouts store.WorkoutPlanStore
	diets    store.DietPlanStore
}

// NewPlanService creates a new instance of planService.
func NewPlanService(clients store.ClientStore, workouts store.WorkoutPlanStore, diets store.DietPlanStore) PlanService {
	return &planService{clients: clients, workouts: workouts, diets: diets}
}

// --- Workout plans ---

func (s *planService) CreateWorkoutPlan(ctx context.Context, p *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	if _, err := s.clients.GetByID(ctx, p.ClientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	days := p.Days
	if len(days) == 0 {
		days = plan.EmptyWorkoutDays(p.Month, p.Year)
	}
	days, err := plan.NormalizeWorkoutDays(days, p.Month, p.Year)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	p.Days = days

	return s.workouts.Create(ctx, p)
}

func (s *planService) GetWorkoutPlan(ctx context.Context, id string) (*domain.WorkoutPlan, error) {
	p, err := s.workouts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListWorkoutPlans returns all plans, or one client's plans when clientID
// is non-empty.
func (s *planService) ListWorkoutPlans(ctx context.Context, clientID string) ([]domain.WorkoutPlan, error) {
	if clientID != "" {
		return s.workouts.GetByClientID(ctx, clientID)
	}
	return s.workouts.GetAll(ctx)
}

// UpdateWorkoutPlan applies a partial update. When month or year change,
// the submitted day array must already match the new month's length; the
// server never merges the old array into the new month, so any unsaved
// per-day edits from a client that regenerated its skeleton are discarded.
func (s *planService) UpdateWorkoutPlan(ctx context.Context, id string, upd store.WorkoutPlanUpdate) (*domain.WorkoutPlan, error) {
	existing, err := s.GetWorkoutPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	month, year := existing.Month, existing.Year
	if upd.Month != nil {
		month = *upd.Month
	}
	if upd.Year != nil {
		year = *upd.Year
	}
	days := existing.Days
	if upd.Days != nil {
		days = upd.Days
	}
	days, err = plan.NormalizeWorkoutDays(days, month, year)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	upd.Days = days

	p, err := s.workouts.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *planService) DeleteWorkoutPlan(ctx context.Context, id string) error {
	if err := s.workouts.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

// CopyWorkoutDay duplicates one day's exercises into the target days and
// persists the result. Copied exercises get fresh ids so completion state
// stays independent per day.
func (s *planService) CopyWorkoutDay(ctx context.Context, planID string, sourceDay int, targetDays []int) (*domain.WorkoutPlan, error) {
	existing, err := s.GetWorkoutPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	days, err := plan.CopyWorkoutDay(existing.Days, sourceDay, targetDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	return s.workouts.Update(ctx, planID, store.WorkoutPlanUpdate{Days: days})
}

// --- Diet plans ---

func (s *planService) CreateDietPlan(ctx context.Context, p *domain.DietPlan) (*domain.DietPlan, error) {
	if _, err := s.clients.GetByID(ctx, p.ClientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	days := p.Days
	if len(days) == 0 {
		days = plan.EmptyDietDays(p.Month, p.Year)
	}
	days, err := plan.NormalizeDietDays(days, p.Month, p.Year)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	p.Days = days

	return s.diets.Create(ctx, p)
}

func (s *planService) GetDietPlan(ctx context.Context, id string) (*domain.DietPlan, error) {
	p, err := s.diets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *planService) ListDietPlans(ctx context.Context, clientID string) ([]domain.DietPlan, error) {
	if clientID != "" {
		return s.diets.GetByClientID(ctx, clientID)
	}
	return s.diets.GetAll(ctx)
}

func (s *planService) UpdateDietPlan(ctx context.Context, id string, upd store.DietPlanUpdate) (*domain.DietPlan, error) {
	existing, err := s.GetDietPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	month, year := existing.Month, existing.Year
	if upd.Month != nil {
		month = *upd.Month
	}
	if upd.Year != nil {
		year = *upd.Year
	}
	days := existing.Days
	if upd.Days != nil {
		days = upd.Days
	}
	days, err = plan.NormalizeDietDays(days, month, year)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	upd.Days = days

	p, err := s.diets.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *planService) DeleteDietPlan(ctx context.Context, id string) error {
	if err := s.diets.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

func (s *planService) CopyDietDay(ctx context.Context, planID string, sourceDay int, targetDays []int) (*domain.DietPlan, error) {
	existing, err := s.GetDietPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	days, err := plan.CopyDietDay(existing.Days, sourceDay, targetDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	return s.diets.Update(ctx, planID, store.DietPlanUpdate{Days: days})
}
