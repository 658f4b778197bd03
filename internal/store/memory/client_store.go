package memory

import (
	"context"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store"
)

// clientStore implements store.ClientStore.
type clientStore struct {
	db *DB
}

// NewClientStore creates a client store backed by the shared in-memory DB.
func NewClientStore(db *DB) store.ClientStore {
	return &clientStore{db: db}
}

// Create stores a new client. The portal key must already be set by the
// caller (the service generates it); it is registered in the secondary
// index here.
func (s *clientStore) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	c := *client
	c.ID = newID()
	s.db.clients[c.ID] = c
	s.db.clientOrder = append(s.db.clientOrder, c.ID)
	if c.PortalKey != "" {
		s.db.portalKeyIndex[c.PortalKey] = c.ID
	}
	return &c, nil
}

func (s *clientStore) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	c, ok := s.db.clients[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

// GetByPortalKey resolves a client through the portal key index, not a scan.
func (s *clientStore) GetByPortalKey(ctx context.Context, key string) (*domain.Client, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	id, ok := s.db.portalKeyIndex[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := s.db.clients[id]
	return &c, nil
}

func (s *clientStore) GetAll(ctx context.Context) ([]domain.Client, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	clients := make([]domain.Client, 0, len(s.db.clientOrder))
	for _, id := range s.db.clientOrder {
		clients = append(clients, s.db.clients[id])
	}
	return clients, nil
}

func (s *clientStore) Update(ctx context.Context, id string, upd store.ClientUpdate) (*domain.Client, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	c, ok := s.db.clients[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}
	if upd.Age != nil {
		c.Age = *upd.Age
	}
	if upd.Weight != nil {
		c.Weight = *upd.Weight
	}
	if upd.Height != nil {
		c.Height = *upd.Height
	}
	if upd.Goal != nil {
		c.Goal = *upd.Goal
	}
	if upd.FitnessLevel != nil {
		c.FitnessLevel = *upd.FitnessLevel
	}
	if upd.Notes != nil {
		c.Notes = *upd.Notes
	}

	s.db.clients[id] = c
	return &c, nil
}

// Delete removes the client and cascades to everything the client owns:
// workout and diet plans (and their completions), injuries, measurements,
// notes, progress entries and resources. Callers observe the whole cascade
// atomically since it runs under the single store mutex.
func (s *clientStore) Delete(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	c, ok := s.db.clients[id]
	if !ok {
		return store.ErrNotFound
	}

	delete(s.db.clients, id)
	delete(s.db.portalKeyIndex, c.PortalKey)
	s.db.clientOrder = removeID(s.db.clientOrder, id)

	for planID, plan := range s.db.workoutPlans {
		if plan.ClientID == id {
			delete(s.db.workoutPlans, planID)
			s.db.workoutPlanOrder = removeID(s.db.workoutPlanOrder, planID)
		}
	}
	for planID, plan := range s.db.dietPlans {
		if plan.ClientID == id {
			delete(s.db.dietPlans, planID)
			s.db.dietPlanOrder = removeID(s.db.dietPlanOrder, planID)
		}
	}
	for cid, completion := range s.db.completions {
		if completion.ClientID == id {
			delete(s.db.completions, cid)
			delete(s.db.completionIdx, completion.Key())
		}
	}
	for iid, injury := range s.db.injuries {
		if injury.ClientID == id {
			delete(s.db.injuries, iid)
			s.db.injuryOrder = removeID(s.db.injuryOrder, iid)
		}
	}
	for mid, m := range s.db.measurements {
		if m.ClientID == id {
			delete(s.db.measurements, mid)
			s.db.measurementOrder = removeID(s.db.measurementOrder, mid)
		}
	}
	for nid, note := range s.db.notes {
		if note.ClientID == id {
			delete(s.db.notes, nid)
			s.db.noteOrder = removeID(s.db.noteOrder, nid)
		}
	}
	for pid, p := range s.db.progress {
		if p.ClientID == id {
			delete(s.db.progress, pid)
			s.db.progressOrder = removeID(s.db.progressOrder, pid)
		}
	}
	for rid, r := range s.db.resources {
		if r.ClientID == id {
			delete(s.db.resources, rid)
			s.db.resourceOrder = removeID(s.db.resourceOrder, rid)
		}
	}

	return nil
}
