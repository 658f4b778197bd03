package memory

import (
	"context"
	"time"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store"
)

// userStore implements store.UserStore.
type userStore struct {
	db *DB
}

// NewUserStore creates a user store backed by the shared in-memory DB.
func NewUserStore(db *DB) store.UserStore {
	return &userStore{db: db}
}

// Create stores a new user. The username must be free; the secondary index
// enforces uniqueness.
func (s *userStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, taken := s.db.usernameIndex[user.Username]; taken {
		return nil, store.ErrDuplicateKey
	}

	u := *user
	u.ID = newID()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.db.users[u.ID] = u
	s.db.usernameIndex[u.Username] = u.ID
	return &u, nil
}

func (s *userStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	u, ok := s.db.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

// GetByUsername resolves a user through the username index, not a scan.
func (s *userStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	id, ok := s.db.usernameIndex[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	u := s.db.users[id]
	return &u, nil
}

func (s *userStore) GetByGymID(ctx context.Context, gymID string) ([]domain.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	users := []domain.User{}
	for _, u := range s.db.users {
		if u.GymID == gymID {
			users = append(users, u)
		}
	}
	return users, nil
}
