package memory

import (
	"context"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store"
)

// workoutPlanStore implements store.WorkoutPlanStore.
type workoutPlanStore struct {
	db *DB
}

// NewWorkoutPlanStore creates a workout plan store backed by the shared DB.
func NewWorkoutPlanStore(db *DB) store.WorkoutPlanStore {
	return &workoutPlanStore{db: db}
}

func (s *workoutPlanStore) Create(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.clients[plan.ClientID]; !ok {
		return nil, store.ErrClientRequired
	}

	p := *plan
	p.ID = newID()
	s.db.workoutPlans[p.ID] = p
	s.db.workoutPlanOrder = append(s.db.workoutPlanOrder, p.ID)
	return &p, nil
}

func (s *workoutPlanStore) GetByID(ctx context.Context, id string) (*domain.WorkoutPlan, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p, ok := s.db.workoutPlans[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (s *workoutPlanStore) GetAll(ctx context.Context) ([]domain.WorkoutPlan, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	plans := make([]domain.WorkoutPlan, 0, len(s.db.workoutPlanOrder))
	for _, id := range s.db.workoutPlanOrder {
		plans = append(plans, s.db.workoutPlans[id])
	}
	return plans, nil
}

// GetByClientID returns the client's plans in creation order.
func (s *workoutPlanStore) GetByClientID(ctx context.Context, clientID string) ([]domain.WorkoutPlan, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	plans := []domain.WorkoutPlan{}
	for _, id := range s.db.workoutPlanOrder {
		if p := s.db.workoutPlans[id]; p.ClientID == clientID {
			plans = append(plans, p)
		}
	}
	return plans, nil
}

func (s *workoutPlanStore) Update(ctx context.Context, id string, upd store.WorkoutPlanUpdate) (*domain.WorkoutPlan, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p, ok := s.db.workoutPlans[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Month != nil {
		p.Month = *upd.Month
	}
	if upd.Year != nil {
		p.Year = *upd.Year
	}
	if upd.Days != nil {
		p.Days = upd.Days
	}

	s.db.workoutPlans[id] = p
	return &p, nil
}

// Delete removes the plan and its completion records.
func (s *workoutPlanStore) Delete(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.workoutPlans[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.workoutPlans, id)
	s.db.workoutPlanOrder = removeID(s.db.workoutPlanOrder, id)
	s.db.deleteCompletionsForPlan(id)
	return nil
}

// dietPlanStore implements store.DietPlanStore.
type dietPlanStore struct {
	db *DB
}

// NewDietPlanStore creates a diet plan store backed by the shared DB.
func NewDietPlanStore(db *DB) store.DietPlanStore {
	return &dietPlanStore{db: db}
}

func (s *dietPlanStore) Create(ctx context.Context, plan *domain.DietPlan) (*domain.DietPlan, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.clients[plan.ClientID]; !ok {
		return nil, store.ErrClientRequired
	}

	p := *plan
	p.ID = newID()
	s.db.dietPlans[p.ID] = p
	s.db.dietPlanOrder = append(s.db.dietPlanOrder, p.ID)
	return &p, nil
}

func (s *dietPlanStore) GetByID(ctx context.Context, id string) (*domain.DietPlan, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p, ok := s.db.dietPlans[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (s *dietPlanStore) GetAll(ctx context.Context) ([]domain.DietPlan, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	plans := make([]domain.DietPlan, 0, len(s.db.dietPlanOrder))
	for _, id := range s.db.dietPlanOrder {
		plans = append(plans, s.db.dietPlans[id])
	}
	return plans, nil
}

func (s *dietPlanStore) GetByClientID(ctx context.Context, clientID string) ([]domain.DietPlan, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	plans := []domain.DietPlan{}
	for _, id := range s.db.dietPlanOrder {
		if p := s.db.dietPlans[id]; p.ClientID == clientID {
			plans = append(plans, p)
		}
	}
	return plans, nil
}

func (s *dietPlanStore) Update(ctx context.Context, id string, upd store.DietPlanUpdate) (*domain.DietPlan, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p, ok := s.db.dietPlans[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Month != nil {
		p.Month = *upd.Month
	}
	if upd.Year != nil {
		p.Year = *upd.Year
	}
	if upd.TargetCalories != nil {
		p.TargetCalories = *upd.TargetCalories
	}
	if upd.Days != nil {
		p.Days = upd.Days
	}

	s.db.dietPlans[id] = p
	return &p, nil
}

func (s *dietPlanStore) Delete(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.dietPlans[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.dietPlans, id)
	s.db.dietPlanOrder = removeID(s.db.dietPlanOrder, id)
	s.db.deleteCompletionsForPlan(id)
	return nil
}

// deleteCompletionsForPlan removes all completion records of one plan.
// Callers must hold the mutex.
func (db *DB) deleteCompletionsForPlan(planID string) {
	for id, completion := range db.completions {
		if completion.PlanID == planID {
			delete(db.completions, id)
			delete(db.completionIdx, completion.Key())
		}
	}
}
