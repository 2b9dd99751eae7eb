package repository

import (
	"context"

	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
)

// MenuRepository persists menus. Menus share one rank namespace across all
// categories, so Create and Update rank handling mirrors the category repo.
type MenuRepository interface {
	Create(ctx context.Context, menu *domain.Menu) error
	FindByID(ctx context.Context, id uint64) (*domain.Menu, error)
	ListByCategory(ctx context.Context, categoryID uint64) ([]domain.Menu, error)
	Update(ctx context.Context, id uint64, change domain.MenuChange) (*domain.Menu, error)
	Delete(ctx context.Context, id uint64) error
}
