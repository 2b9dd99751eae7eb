package repository

import (
	"context"

	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
)

// CategoryRepository persists catalog categories. Create assigns the next
// display rank; Update relocates the category to the requested rank, swapping
// with whichever category held it. Find methods return (nil, nil) when the
// row does not exist or is soft-deleted.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id uint64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id uint64, name string, rank int) (*domain.Category, error)
	Delete(ctx context.Context, id uint64) error
}
