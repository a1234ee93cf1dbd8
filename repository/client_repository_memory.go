package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"bank-documents/domain"
)

// MemoryClientRepository is an in-memory ClientRepository. Listing returns
// clients in insertion order.
type MemoryClientRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Client
	order []string
}

func NewMemoryClientRepository() *MemoryClientRepository {
	return &MemoryClientRepository{
		byID: make(map[string]domain.Client),
	}
}

func (r *MemoryClientRepository) List(_ context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Client, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MemoryClientRepository) Get(_ context.Context, id string) (domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return domain.Client{}, ErrClientNotFound
	}
	return c, nil
}

// Create stores the client, assigning a new ID when none is set.
func (r *MemoryClientRepository) Create(_ context.Context, client domain.Client) (domain.Client, error) {
	if client.ID == "" {
		client.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[client.ID]; !exists {
		r.order = append(r.order, client.ID)
	}
	r.byID[client.ID] = client
	return client, nil
}

func (r *MemoryClientRepository) Update(_ context.Context, client domain.Client) (domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[client.ID]; !ok {
		return domain.Client{}, ErrClientNotFound
	}
	r.byID[client.ID] = client
	return client, nil
}

func (r *MemoryClientRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrClientNotFound
	}
	delete(r.byID, id)
	r.order = removeID(r.order, id)
	return nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
