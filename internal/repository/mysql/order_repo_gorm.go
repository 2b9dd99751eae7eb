package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jennaaaaaaaaa/node-lv5/internal/apperr"
	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
	"github.com/jennaaaaaaaaa/node-lv5/internal/repository"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// Place creates the order with its line and reserves menu stock in one
// transaction. Any failure rolls the whole placement back.
func (r *orderRepo) Place(ctx context.Context, customerID, menuID uint64, quantity int64) (*domain.Order, error) {
	var placed *domain.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var menu domain.Menu
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&menu, menuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrMenuNotFound
			}
			return err
		}

		order := domain.NewOrder(customerID, &menu, quantity)
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		menu.Reserve(quantity)
		err := tx.Model(&domain.Menu{}).Where("id = ?", menu.ID).Updates(map[string]any{
			"available_quantity": menu.AvailableQuantity,
			"status":             menu.Status,
		}).Error
		if err != nil {
			return err
		}

		order.Line.Menu = &menu
		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).Preload("Line").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Line").
		Preload("Line.Menu", withDeletedMenus).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Line").
		Preload("Line.Menu", withDeletedMenus).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// withDeletedMenus lets order history keep naming menus that were since
// removed from the catalog.
func withDeletedMenus(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&domain.Order{}, id).Error
}
