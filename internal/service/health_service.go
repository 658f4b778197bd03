package service

import (
	"context"
	"errors"
	"time"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store"
)

var (
	ErrRecordNotFound = errors.New("record not found")
)

// HealthService manages a client's health history: injury logs with their
// recovery status, body measurement snapshots, trainer notes, and weight
// check-ins.
type HealthService interface {
	LogInjury(ctx context.Context, injury *domain.InjuryLog) (*domain.InjuryLog, error)
	ListInjuries(ctx context.Context, clientID string) ([]domain.InjuryLog, error)
	UpdateInjury(ctx context.Context, id string, upd store.InjuryUpdate) (*domain.InjuryLog, error)
	DeleteInjury(ctx context.Context, id string) error

	LogMeasurement(ctx context.Context, m *domain.MeasurementLog) (*domain.MeasurementLog, error)
	ListMeasurements(ctx context.Context, clientID string) ([]domain.MeasurementLog, error)
	DeleteMeasurement(ctx context.Context, id string) error

	AddNote(ctx context.Context, clientID, content string) (*domain.TrainerNote, error)
	ListNotes(ctx context.Context, clientID string) ([]domain.TrainerNote, error)
	DeleteNote(ctx context.Context, id string) error

	LogProgress(ctx context.Context, p *domain.Progress) (*domain.Progress, error)
	ListProgress(ctx context.Context, clientID string) ([]domain.Progress, error)
}

type healthService struct {
	clients      store.ClientStore
	injuries     store.InjuryStore
	measurements store.MeasurementStore
	notes        store.NoteStore
	progress     store.ProgressStore
}

// NewHealthService creates a new instance of healthService.
func NewHealthService(
	clients store.ClientStore,
	injuries store.InjuryStore,
	measurements store.MeasurementStore,
	notes store.NoteStore,
	progress store.ProgressStore,
) HealthService {
	return &healthService{
		clients:      clients,
		injuries:     injuries,
		measurements: measurements,
		notes:        notes,
		progress:     progress,
	}
}

func (s *healthService) LogInjury(ctx context.Context, injury *domain.InjuryLog) (*domain.InjuryLog, error) {
	created, err := s.injuries.Create(ctx, injury)
	if err != nil {
		if errors.Is(err, store.ErrClientRequired) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return created, nil
}

func (s *healthService) ListInjuries(ctx context.Context, clientID string) ([]domain.InjuryLog, error) {
	return s.injuries.GetByClientID(ctx, clientID)
}

func (s *healthService) UpdateInjury(ctx context.Context, id string, upd store.InjuryUpdate) (*domain.InjuryLog, error) {
	injury, err := s.injuries.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return injury, nil
}

func (s *healthService) DeleteInjury(ctx context.Context, id string) error {
	if err := s.injuries.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return nil
}

func (s *healthService) LogMeasurement(ctx context.Context, m *domain.MeasurementLog) (*domain.MeasurementLog, error) {
	created, err := s.measurements.Create(ctx, m)
	if err != nil {
		if errors.Is(err, store.ErrClientRequired) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return created, nil
}

func (s *healthService) ListMeasurements(ctx context.Context, clientID string) ([]domain.MeasurementLog, error) {
	return s.measurements.GetByClientID(ctx, clientID)
}

func (s *healthService) DeleteMeasurement(ctx context.Context, id string) error {
	if err := s.measurements.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return nil
}

func (s *healthService) AddNote(ctx context.Context, clientID, content string) (*domain.TrainerNote, error) {
	if content == "" {
		return nil, errors.New("note content cannot be empty")
	}
	note, err := s.notes.Create(ctx, &domain.TrainerNote{
		ClientID: clientID,
		Date:     time.Now(),
		Content:  content,
	})
	if err != nil {
		if errors.Is(err, store.ErrClientRequired) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return note, nil
}

func (s *healthService) ListNotes(ctx context.Context, clientID string) ([]domain.TrainerNote, error) {
	return s.notes.GetByClientID(ctx, clientID)
}

func (s *healthService) DeleteNote(ctx context.Context, id string) error {
	if err := s.notes.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return nil
}

func (s *healthService) LogProgress(ctx context.Context, p *domain.Progress) (*domain.Progress, error) {
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	created, err := s.progress.Create(ctx, p)
	if err != nil {
		if errors.Is(err, store.ErrClientRequired) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return created, nil
}

// ListProgress returns weight check-ins newest first.
func (s *healthService) ListProgress(ctx context.Context, clientID string) ([]domain.Progress, error) {
	return s.progress.GetByClientID(ctx, clientID)
}
