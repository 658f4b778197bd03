package memory

import (
	"context"
	"time"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store"
)

// resourceStore implements store.ResourceStore.
type resourceStore struct {
	db *DB
}

// NewResourceStore creates a resource store backed by the shared DB.
func NewResourceStore(db *DB) store.ResourceStore {
	return &resourceStore{db: db}
}

func (s *resourceStore) Create(ctx context.Context, r *domain.ClientResource) (*domain.ClientResource, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.clients[r.ClientID]; !ok {
		return nil, store.ErrClientRequired
	}

	rec := *r
	rec.ID = newID()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	s.db.resources[rec.ID] = rec
	s.db.resourceOrder = append(s.db.resourceOrder, rec.ID)
	return &rec, nil
}

func (s *resourceStore) GetByID(ctx context.Context, id string) (*domain.ClientResource, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	r, ok := s.db.resources[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &r, nil
}

func (s *resourceStore) GetByClientID(ctx context.Context, clientID string) ([]domain.ClientResource, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	resources := []domain.ClientResource{}
	for _, id := range s.db.resourceOrder {
		if r := s.db.resources[id]; r.ClientID == clientID {
			resources = append(resources, r)
		}
	}
	return resources, nil
}

func (s *resourceStore) Delete(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.resources[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.resources, id)
	s.db.resourceOrder = removeID(s.db.resourceOrder, id)
	return nil
}

// profileStore implements store.ProfileStore.
type profileStore struct {
	db *DB
}

// NewProfileStore creates a trainer profile store backed by the shared DB.
func NewProfileStore(db *DB) store.ProfileStore {
	return &profileStore{db: db}
}

// GetProfile returns the saved profile, or an empty one if the trainer has
// not filled it in yet.
func (s *profileStore) GetProfile(ctx context.Context) (*domain.TrainerProfile, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.profile == nil {
		return &domain.TrainerProfile{}, nil
	}
	p := *s.db.profile
	return &p, nil
}

func (s *profileStore) SetProfile(ctx context.Context, p *domain.TrainerProfile) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	cp := *p
	s.db.profile = &cp
	return nil
}
