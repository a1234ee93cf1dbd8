package repository

import (
	"context"

	"bank-documents/domain"
)

type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id string) (domain.Client, error)
	Create(ctx context.Context, client domain.Client) (domain.Client, error)
	Update(ctx context.Context, client domain.Client) (domain.Client, error)
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	Delete(ctx context.Context, id string) error
}
