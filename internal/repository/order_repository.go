package repository

import (
	"context"

	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
)

// OrderRepository persists orders and their single line. Place runs the whole
// placement (order insert, line insert, stock reservation) inside one
// transaction so a failed reservation leaves no ghost order behind.
type OrderRepository interface {
	Place(ctx context.Context, customerID, menuID uint64, quantity int64) (*domain.Order, error)
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) error
	Delete(ctx context.Context, id uint64) error
}
