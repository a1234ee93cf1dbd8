package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"bank-documents/domain"
)

type MemoryOrderRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Order
	order []string
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		byID: make(map[string]domain.Order),
	}
}

func (r *MemoryOrderRepository) List(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MemoryOrderRepository) ListByClient(_ context.Context, clientID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Order{}
	for _, id := range r.order {
		if o := r.byID[id]; o.ClientID == clientID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *MemoryOrderRepository) Get(_ context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (r *MemoryOrderRepository) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[order.ID]; !exists {
		r.order = append(r.order, order.ID)
	}
	r.byID[order.ID] = order
	return order, nil
}

func (r *MemoryOrderRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrOrderNotFound
	}
	delete(r.byID, id)
	r.order = removeID(r.order, id)
	return nil
}
