package portal

import (
	"context"
	"sync"
	"time"

	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/google/uuid"
)

// memStore is an in-memory RecordStore that records every call.
type memStore struct {
	mu sync.Mutex

	rows    []dto.ThesisResponse // newest first
	inserts []dto.SubmitThesisRequest
	selects int
	deletes []uuid.UUID

	insertErr error
	selectErr error
	deleteErr error

	// when set, Insert blocks until the channel is closed
	insertGate chan struct{}
	clock      time.Time
}

func newMemStore() *memStore {
	return &memStore{clock: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}
}

func (s *memStore) Insert(_ context.Context, in dto.SubmitThesisRequest) (*dto.ThesisResponse, error) {
	if s.insertGate != nil {
		<-s.insertGate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inserts = append(s.inserts, in)
	if s.insertErr != nil {
		return nil, s.insertErr
	}

	m := in.ToModel()
	s.clock = s.clock.Add(time.Minute)
	m.ID = uuid.New()
	m.CreatedAt = s.clock
	row := dto.ToThesisResponse(*m)
	s.rows = append([]dto.ThesisResponse{row}, s.rows...)
	return &row, nil
}

func (s *memStore) SelectAll(_ context.Context) ([]dto.ThesisResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selects++
	if s.selectErr != nil {
		return nil, s.selectErr
	}
	out := make([]dto.ThesisResponse, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *memStore) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deletes = append(s.deletes, id)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	kept := s.rows[:0]
	for _, r := range s.rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.rows = kept
	return nil
}

func (s *memStore) insertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inserts)
}

type recorder struct {
	mu    sync.Mutex
	notes []Notification
}

func (r *recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func (r *recorder) last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return Notification{}
	}
	return r.notes[len(r.notes)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes)
}
