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
	ErrPortalNotFound = errors.New("portal not found")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
)

// PortalClient is the reduced client view exposed through the portal.
// Contact details and the portal key itself are withheld.
type PortalClient struct {
	Name         string              `json:"name"`
	Goal         domain.Goal         `json:"goal"`
	FitnessLevel domain.FitnessLevel `json:"fitnessLevel"`
	Notes        string              `json:"notes,omitempty"`
}

// PortalSnapshot is everything a client sees when opening their portal
// link: the plans active this calendar month, their completion state for
// the viewed day, and their history and resources.
type PortalSnapshot struct {
	Client             PortalClient            `json:"client"`
	CurrentWorkoutPlan *domain.WorkoutPlan     `json:"currentWorkoutPlan"`
	CurrentDietPlan    *domain.DietPlan        `json:"currentDietPlan"`
	Completions        []domain.ItemCompletion `json:"completions"`
	InjuryLogs         []domain.InjuryLog      `json:"injuryLogs"`
	MeasurementLogs    []domain.MeasurementLog `json:"measurementLogs"`
	Resources          []domain.ClientResource `json:"resources"`
	Trainer            domain.TrainerProfile   `json:"trainer"`
}

// PortalService resolves share tokens into read-only snapshots and lets
// portal visitors toggle their own completions.
type PortalService interface {
	// Resolve assembles the snapshot for a portal token. now supplies the
	// reference clock for "current month" and "today"; dateFilter, when
	// non-empty, narrows both plans to that single day and selects the
	// completion date. An unknown token yields ErrPortalNotFound and no
	// partial snapshot.
	Resolve(ctx context.Context, token, dateFilter string, now time.Time) (*PortalSnapshot, error)

	// ToggleCompletion records a completion on behalf of the token's
	// client. The client id always comes from the token, never from the
	// request body.
	ToggleCompletion(ctx context.Context, token string, c *domain.ItemCompletion, now time.Time) (*domain.ItemCompletion, error)
}

type portalService struct {
	clients      store.ClientStore
	workouts     store.WorkoutPlanStore
	diets        store.DietPlanStore
	completions  CompletionService
	injuries     store.InjuryStore
	measurements store.MeasurementStore
	resources    ResourceService
	profile      store.ProfileStore
}

// NewPortalService creates a new instance of portalService.
func NewPortalService(
	clients store.ClientStore,
	workouts store.WorkoutPlanStore,
	diets store.DietPlanStore,
	completions CompletionService,
	injuries store.InjuryStore,
	measurements store.MeasurementStore,
	resources ResourceService,
	profile store.ProfileStore,
) PortalService {
	return &portalService{
		clients:      clients,
		workouts:     workouts,
		diets:        diets,
		completions:  completions,
		injuries:     injuries,
		measurements: measurements,
		resources:    resources,
		profile:      profile,
	}
}

func (s *portalService) Resolve(ctx context.Context, token, dateFilter string, now time.Time) (*PortalSnapshot, error) {
	client, err := s.clients.GetByPortalKey(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPortalNotFound
		}
		return nil, err
	}

	targetDay := 0
	completionDate := plan.LocalDate(now)
	if dateFilter != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateFilter, now.Location())
		if err != nil {
			return nil, ErrInvalidDate
		}
		targetDay = parsed.Day()
		completionDate = dateFilter
	}

	month, year := int(now.Month()), now.Year()

	workoutPlans, err := s.workouts.GetByClientID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	var currentWorkout *domain.WorkoutPlan
	// A client is assumed to have at most one plan per calendar month; if
	// more exist, the oldest (first created) wins.
	for i := range workoutPlans {
		if workoutPlans[i].Month == month && workoutPlans[i].Year == year {
			currentWorkout = &workoutPlans[i]
			break
		}
	}

	dietPlans, err := s.diets.GetByClientID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	var currentDiet *domain.DietPlan
	for i := range dietPlans {
		if dietPlans[i].Month == month && dietPlans[i].Year == year {
			currentDiet = &dietPlans[i]
			break
		}
	}

	if targetDay > 0 {
		if currentWorkout != nil {
			filtered := *currentWorkout
			filtered.Days = filterWorkoutDays(currentWorkout.Days, targetDay)
			currentWorkout = &filtered
		}
		if currentDiet != nil {
			filtered := *currentDiet
			filtered.Days = filterDietDays(currentDiet.Days, targetDay)
			currentDiet = &filtered
		}
	}

	completions, err := s.completions.ListForDate(ctx, client.ID, completionDate, now)
	if err != nil {
		return nil, err
	}

	injuries, err := s.injuries.GetByClientID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	measurements, err := s.measurements.GetByClientID(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	resources, err := s.resources.ListForClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profile.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	return &PortalSnapshot{
		Client: PortalClient{
			Name:         client.Name,
			Goal:         client.Goal,
			FitnessLevel: client.FitnessLevel,
			Notes:        client.Notes,
		},
		CurrentWorkoutPlan: currentWorkout,
		CurrentDietPlan:    currentDiet,
		Completions:        completions,
		InjuryLogs:         injuries,
		MeasurementLogs:    measurements,
		Resources:          resources,
		Trainer:            *profile,
	}, nil
}

func (s *portalService) ToggleCompletion(ctx context.Context, token string, c *domain.ItemCompletion, now time.Time) (*domain.ItemCompletion, error) {
	client, err := s.clients.GetByPortalKey(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPortalNotFound
		}
		return nil, err
	}
	c.ClientID = client.ID
	return s.completions.Toggle(ctx, c, now)
}

func filterWorkoutDays(days []domain.DayWorkout, day int) []domain.DayWorkout {
	filtered := []domain.DayWorkout{}
	for _, d := range days {
		if d.Day == day {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func filterDietDays(days []domain.DayDiet, day int) []domain.DayDiet {
	filtered := []domain.DayDiet{}
	for _, d := range days {
		if d.Day == day {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
