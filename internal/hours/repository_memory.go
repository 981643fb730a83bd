package hours

import (
	"context"
	"sync"
)

// InMemoryRepository keeps store hours in process memory. Reads for
// unknown restaurants return the default schedule without storing it.
type InMemoryRepository struct {
	mu    sync.RWMutex
	hours map[string]StoreHours
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{hours: make(map[string]StoreHours)}
}

func (r *InMemoryRepository) Get(ctx context.Context, restaurantID string) (StoreHours, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if sh, ok := r.hours[restaurantID]; ok {
		return sh, nil
	}
	return DefaultStoreHours(), nil
}

func (r *InMemoryRepository) Put(ctx context.Context, restaurantID string, sh StoreHours) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hours[restaurantID] = sh
	return nil
}
