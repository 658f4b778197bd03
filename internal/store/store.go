package store

import (
	"context"

	"fitpro/trainer-app/internal/domain"
)

// Error constants for the store layer
var (
	ErrNotFound       = StoreError("not found")
	ErrDuplicateKey   = StoreError("duplicate key")
	ErrClientRequired = StoreError("client does not exist")
)

// StoreError helps distinguish store errors
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// UserStore defines the interface for interacting with user accounts.
// GetByUsername is backed by a secondary index, not a scan.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByGymID(ctx context.Context, gymID string) ([]domain.User, error)
}

// ClientUpdate carries the mutable client fields for a partial update.
// Nil fields are left untouched.
type ClientUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	Age          *int
	Weight       *float64
	Height       *float64
	Goal         *domain.Goal
	FitnessLevel *domain.FitnessLevel
	Notes        *string
}

// ClientStore defines the interface for interacting with client records.
// Delete cascades to every entity owned by the client: both plan types,
// completions, injuries, measurements, notes, progress and resources.
type ClientStore interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByPortalKey(ctx context.Context, key string) (*domain.Client, error)
	GetAll(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, id string, upd ClientUpdate) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// WorkoutPlanUpdate carries the mutable workout plan fields. A non-nil Days
// replaces the whole day array.
type WorkoutPlanUpdate struct {
	Name  *string
	Month *int
	Year  *int
	Days  []domain.DayWorkout
}

// WorkoutPlanStore defines the interface for workout plan persistence.
// Delete also removes the plan's completion records.
type WorkoutPlanStore interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error)
	GetByID(ctx context.Context, id string) (*domain.WorkoutPlan, error)
	GetAll(ctx context.Context) ([]domain.WorkoutPlan, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.WorkoutPlan, error)
	Update(ctx context.Context, id string, upd WorkoutPlanUpdate) (*domain.WorkoutPlan, error)
	Delete(ctx context.Context, id string) error
}

// DietPlanUpdate carries the mutable diet plan fields.
type DietPlanUpdate struct {
	Name           *string
	Month          *int
	Year           *int
	TargetCalories *int
	Days           []domain.DayDiet
}

// DietPlanStore defines the interface for diet plan persistence.
type DietPlanStore interface {
	Create(ctx context.Context, plan *domain.DietPlan) (*domain.DietPlan, error)
	GetByID(ctx context.Context, id string) (*domain.DietPlan, error)
	GetAll(ctx context.Context) ([]domain.DietPlan, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.DietPlan, error)
	Update(ctx context.Context, id string, upd DietPlanUpdate) (*domain.DietPlan, error)
	Delete(ctx context.Context, id string) error
}

// CompletionStore defines the interface for completion tracking. Upsert is
// keyed on the composite (clientId, planId, type, date, itemId) key; at most
// one record exists per key.
type CompletionStore interface {
	Upsert(ctx context.Context, completion *domain.ItemCompletion) (*domain.ItemCompletion, error)
	GetByClientAndDate(ctx context.Context, clientID, date string) ([]domain.ItemCompletion, error)
	GetByKey(ctx context.Context, key domain.CompletionKey) (*domain.ItemCompletion, error)
}

// InjuryUpdate carries the mutable injury log fields.
type InjuryUpdate struct {
	Date        *string
	Title       *string
	Description *string
	Status      *domain.InjuryStatus
}

// InjuryStore defines the interface for injury logs.
type InjuryStore interface {
	Create(ctx context.Context, injury *domain.InjuryLog) (*domain.InjuryLog, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.InjuryLog, error)
	Update(ctx context.Context, id string, upd InjuryUpdate) (*domain.InjuryLog, error)
	Delete(ctx context.Context, id string) error
}

// MeasurementStore defines the interface for measurement logs.
type MeasurementStore interface {
	Create(ctx context.Context, m *domain.MeasurementLog) (*domain.MeasurementLog, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.MeasurementLog, error)
	Delete(ctx context.Context, id string) error
}

// NoteStore defines the interface for trainer notes.
type NoteStore interface {
	Create(ctx context.Context, note *domain.TrainerNote) (*domain.TrainerNote, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.TrainerNote, error)
	Delete(ctx context.Context, id string) error
}

// ProgressStore defines the interface for weight check-ins. GetByClientID
// returns entries sorted by date descending.
type ProgressStore interface {
	Create(ctx context.Context, p *domain.Progress) (*domain.Progress, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.Progress, error)
}

// ResourceStore defines the interface for shared client resources.
type ResourceStore interface {
	Create(ctx context.Context, r *domain.ClientResource) (*domain.ClientResource, error)
	GetByID(ctx context.Context, id string) (*domain.ClientResource, error)
	GetByClientID(ctx context.Context, clientID string) ([]domain.ClientResource, error)
	Delete(ctx context.Context, id string) error
}

// ProfileStore defines the interface for the trainer contact profile.
type ProfileStore interface {
	GetProfile(ctx context.Context) (*domain.TrainerProfile, error)
	SetProfile(ctx context.Context, p *domain.TrainerProfile) error
}
