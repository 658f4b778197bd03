package service

import (
	"context"
	"errors"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrClientNotFound = errors.New("client not found")
)

// ClientService handles client record management. Deleting a client takes
// everything the client owns with it (plans, completions, health records,
// resources) in one perceived-atomic store operation.
type ClientService interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, id string, upd store.ClientUpdate) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

type clientService struct {
	clients store.ClientStore
}

// NewClientService creates a new instance of clientService.
func NewClientService(clients store.ClientStore) ClientService {
	return &clientService{clients: clients}
}

// Create stores a new client with a freshly generated portal key. Any key
// supplied by the caller is discarded; the portal key is a bearer secret
// and only the server mints them.
func (s *clientService) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	client.PortalKey = uuid.NewString()
	created, err := s.clients.Create(ctx, client)
	if err != nil {
		return nil, err
	}
	log.Tracef("client created: %s (%s)", created.Name, created.ID)
	return created, nil
}

func (s *clientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.GetAll(ctx)
}

func (s *clientService) Update(ctx context.Context, id string, upd store.ClientUpdate) (*domain.Client, error) {
	client, err := s.clients.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	if err := s.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	log.Tracef("client deleted with cascade: %s", id)
	return nil
}
