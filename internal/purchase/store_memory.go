package purchase

import (
	"context"
	"sync"

	id "coursebay/pkg/domain"
)

// InMemoryStore is the test double for the purchase ledger. Entries are kept
// in insertion order.
type InMemoryStore struct {
	mu        sync.RWMutex
	purchases []Purchase
}

// NewInMemoryStore builds an empty in-memory ledger.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Create(_ context.Context, p *Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purchases = append(s.purchases, *p)
	return nil
}

func (s *InMemoryStore) ListByPurchaser(_ context.Context, userID id.UserID) ([]Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Purchase
	for _, p := range s.purchases {
		if p.PurchaserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
