package memstore

import (
	"context"
	"sync"

	"github.com/carewise/carehome-directory/internal/domain/entities"
)

// InquiryStore is an in-memory append-only InquiryRepository. Creation is
// the only mutating operation in the system; the single lock serializes id
// assignment and insertion so concurrent submissions never share an id.
type InquiryStore struct {
	mu        sync.Mutex
	inquiries map[int]*entities.Inquiry
	nextID    int
}

// NewInquiryStore creates an empty inquiry store.
func NewInquiryStore() *InquiryStore {
	return &InquiryStore{
		inquiries: make(map[int]*entities.Inquiry),
		nextID:    1,
	}
}

// Create appends an inquiry, assigning the next monotonic id.
func (s *InquiryStore) Create(_ context.Context, inquiry *entities.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inquiry.ID = s.nextID
	s.nextID++
	s.inquiries[inquiry.ID] = inquiry
	return nil
}

// Len reports how many inquiries have been stored.
func (s *InquiryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inquiries)
}
