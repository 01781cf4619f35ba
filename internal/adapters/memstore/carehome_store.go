package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/carewise/carehome-directory/internal/domain/entities"
	apperrors "github.com/carewise/carehome-directory/pkg/errors"
)

// CareHomeStore is an in-memory CareHomeRepository. The catalog is seeded
// once at startup and read-only afterwards; reads interleave freely under
// the read lock. Each store is an isolated instance so tests can construct
// their own rather than sharing process-wide state.
type CareHomeStore struct {
	mu     sync.RWMutex
	homes  map[int]*entities.CareHome
	order  []int
	nextID int
}

// NewCareHomeStore creates an empty care home store.
func NewCareHomeStore() *CareHomeStore {
	return &CareHomeStore{
		homes:  make(map[int]*entities.CareHome),
		nextID: 1,
	}
}

// NewSeededCareHomeStore creates a store preloaded with the default catalog.
func NewSeededCareHomeStore() (*CareHomeStore, error) {
	store := NewCareHomeStore()
	for _, careHome := range DefaultCareHomes() {
		if err := store.Create(context.Background(), careHome); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// Create inserts a care home. A zero ID gets the next monotonic id; an
// explicit ID (seed data) advances the counter past it.
func (s *CareHomeStore) Create(_ context.Context, careHome *entities.CareHome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if careHome.ID == 0 {
		careHome.ID = s.nextID
	}
	if _, exists := s.homes[careHome.ID]; exists {
		return apperrors.NewConflictError(fmt.Sprintf("care home %d already exists", careHome.ID))
	}

	s.homes[careHome.ID] = careHome
	s.order = append(s.order, careHome.ID)
	if careHome.ID >= s.nextID {
		s.nextID = careHome.ID + 1
	}
	return nil
}

// GetByID retrieves a care home by id. A missing id is an expected outcome,
// surfaced as a not-found error rather than a fault.
func (s *CareHomeStore) GetByID(_ context.Context, id int) (*entities.CareHome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	careHome, ok := s.homes[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("care home %d not found", id))
	}
	return careHome, nil
}

// List returns every care home in insertion order.
func (s *CareHomeStore) List(_ context.Context) ([]*entities.CareHome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	homes := make([]*entities.CareHome, 0, len(s.order))
	for _, id := range s.order {
		homes = append(homes, s.homes[id])
	}
	return homes, nil
}
