package memory

import (
	"context"
	"sort"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/store"
)

// injuryStore implements store.InjuryStore.
type injuryStore struct {
	db *DB
}

// NewInjuryStore creates an injury log store backed by the shared DB.
func NewInjuryStore(db *DB) store.InjuryStore {
	return &injuryStore{db: db}
}

func (s *injuryStore) Create(ctx context.Context, injury *domain.InjuryLog) (*domain.InjuryLog, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.clients[injury.ClientID]; !ok {
		return nil, store.ErrClientRequired
	}

	i := *injury
	i.ID = newID()
	if i.Status == "" {
		i.Status = domain.InjuryActive
	}
	s.db.injuries[i.ID] = i
	s.db.injuryOrder = append(s.db.injuryOrder, i.ID)
	return &i, nil
}

func (s *injuryStore) GetByClientID(ctx context.Context, clientID string) ([]domain.InjuryLog, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	injuries := []domain.InjuryLog{}
	for _, id := range s.db.injuryOrder {
		if i := s.db.injuries[id]; i.ClientID == clientID {
			injuries = append(injuries, i)
		}
	}
	return injuries, nil
}

// Update applies a partial update. Status moves wherever the caller says,
// forward or backward; there is no transition check.
func (s *injuryStore) Update(ctx context.Context, id string, upd store.InjuryUpdate) (*domain.InjuryLog, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	i, ok := s.db.injuries[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	if upd.Date != nil {
		i.Date = *upd.Date
	}
	if upd.Title != nil {
		i.Title = *upd.Title
	}
	if upd.Description != nil {
		i.Description = *upd.Description
	}
	if upd.Status != nil {
		i.Status = *upd.Status
	}

	s.db.injuries[id] = i
	return &i, nil
}

func (s *injuryStore) Delete(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.injuries[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.injuries, id)
	s.db.injuryOrder = removeID(s.db.injuryOrder, id)
	return nil
}

// measurementStore implements store.MeasurementStore.
type measurementStore struct {
	db *DB
}

// NewMeasurementStore creates a measurement log store backed by the shared DB.
func NewMeasurementStore(db *DB) store.MeasurementStore {
	return &measurementStore{db: db}
}

func (s *measurementStore) Create(ctx context.Context, m *domain.MeasurementLog) (*domain.MeasurementLog, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.clients[m.ClientID]; !ok {
		return nil, store.ErrClientRequired
	}

	rec := *m
	rec.ID = newID()
	s.db.measurements[rec.ID] = rec
	s.db.measurementOrder = append(s.db.measurementOrder, rec.ID)
	return &rec, nil
}

func (s *measurementStore) GetByClientID(ctx context.Context, clientID string) ([]domain.MeasurementLog, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	logs := []domain.MeasurementLog{}
	for _, id := range s.db.measurementOrder {
		if m := s.db.measurements[id]; m.ClientID == clientID {
			logs = append(logs, m)
		}
	}
	return logs, nil
}

func (s *measurementStore) Delete(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.measurements[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.measurements, id)
	s.db.measurementOrder = removeID(s.db.measurementOrder, id)
	return nil
}

// noteStore implements store.NoteStore.
type noteStore struct {
	db *DB
}

// NewNoteStore creates a trainer note store backed by the shared DB.
func NewNoteStore(db *DB) store.NoteStore {
	return &noteStore{db: db}
}

func (s *noteStore) Create(ctx context.Context, note *domain.TrainerNote) (*domain.TrainerNote, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.clients[note.ClientID]; !ok {
		return nil, store.ErrClientRequired
	}

	n := *note
	n.ID = newID()
	s.db.notes[n.ID] = n
	s.db.noteOrder = append(s.db.noteOrder, n.ID)
	return &n, nil
}

func (s *noteStore) GetByClientID(ctx context.Context, clientID string) ([]domain.TrainerNote, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	notes := []domain.TrainerNote{}
	for _, id := range s.db.noteOrder {
		if n := s.db.notes[id]; n.ClientID == clientID {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

func (s *noteStore) Delete(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.notes[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.notes, id)
	s.db.noteOrder = removeID(s.db.noteOrder, id)
	return nil
}

// progressStore implements store.ProgressStore.
type progressStore struct {
	db *DB
}

// NewProgressStore creates a progress store backed by the shared DB.
func NewProgressStore(db *DB) store.ProgressStore {
	return &progressStore{db: db}
}

func (s *progressStore) Create(ctx context.Context, p *domain.Progress) (*domain.Progress, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.clients[p.ClientID]; !ok {
		return nil, store.ErrClientRequired
	}

	rec := *p
	rec.ID = newID()
	s.db.progress[rec.ID] = rec
	s.db.progressOrder = append(s.db.progressOrder, rec.ID)
	return &rec, nil
}

// GetByClientID returns check-ins newest first, for display.
func (s *progressStore) GetByClientID(ctx context.Context, clientID string) ([]domain.Progress, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	entries := []domain.Progress{}
	for _, id := range s.db.progressOrder {
		if p := s.db.progress[id]; p.ClientID == clientID {
			entries = append(entries, p)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}
