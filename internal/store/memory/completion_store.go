package memory

import (
	"context"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store"
)

// completionStore implements store.CompletionStore.
type completionStore struct {
	db *DB
}

// NewCompletionStore creates a completion store backed by the shared DB.
func NewCompletionStore(db *DB) store.CompletionStore {
	return &completionStore{db: db}
}

// Upsert writes the completion record for its composite key. If a record
// already exists for (clientId, planId, type, date, itemId), its Completed
// flag is overwritten in place; otherwise a new record is inserted. Exactly
// one record per key survives either way.
func (s *completionStore) Upsert(ctx context.Context, completion *domain.ItemCompletion) (*domain.ItemCompletion, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	c := *completion
	key := c.Key()
	if existingID, ok := s.db.completionIdx[key]; ok {
		existing := s.db.completions[existingID]
		existing.Completed = c.Completed
		s.db.completions[existingID] = existing
		return &existing, nil
	}

	c.ID = newID()
	s.db.completions[c.ID] = c
	s.db.completionIdx[key] = c.ID
	return &c, nil
}

// GetByClientAndDate returns the client's completions for one local day.
// Completions from other dates are never included, which keeps each day's
// rendering isolated.
func (s *completionStore) GetByClientAndDate(ctx context.Context, clientID, date string) ([]domain.ItemCompletion, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	completions := []domain.ItemCompletion{}
	for _, c := range s.db.completions {
		if c.ClientID == clientID && c.Date == date {
			completions = append(completions, c)
		}
	}
	return completions, nil
}

func (s *completionStore) GetByKey(ctx context.Context, key domain.CompletionKey) (*domain.ItemCompletion, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	id, ok := s.db.completionIdx[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := s.db.completions[id]
	return &c, nil
}
