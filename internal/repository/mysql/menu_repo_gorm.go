package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jennaaaaaaaaa/node-lv5/internal/apperr"
	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
	"github.com/jennaaaaaaaaa/node-lv5/internal/ranking"
	"github.com/jennaaaaaaaaa/node-lv5/internal/repository"
)

type menuRepo struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) Create(ctx context.Context, menu *domain.Menu) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Menus rank in one namespace across every category.
		next, err := ranking.Next(ctx, rankColl{tx: tx, model: &domain.Menu{}})
		if err != nil {
			return err
		}
		menu.Order = next
		return tx.Create(menu).Error
	})
}

func (r *menuRepo) FindByID(ctx context.Context, id uint64) (*domain.Menu, error) {
	var m domain.Menu
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *menuRepo) ListByCategory(ctx context.Context, categoryID uint64) ([]domain.Menu, error) {
	var out []domain.Menu
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("`order` ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *menuRepo) Update(ctx context.Context, id uint64, change domain.MenuChange) (*domain.Menu, error) {
	var updated *domain.Menu
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m domain.Menu
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrMenuNotFound
			}
			return err
		}
		if err := ranking.Relocate(ctx, rankColl{tx: tx, model: &domain.Menu{}}, m.ID, m.Order, change.Order); err != nil {
			return err
		}
		err := tx.Model(&m).Updates(map[string]any{
			"name":        change.Name,
			"description": change.Description,
			"price":       change.Price,
			"status":      change.Status,
		}).Error
		if err != nil {
			return err
		}
		m.Name = change.Name
		m.Description = change.Description
		m.Price = change.Price
		m.Order = change.Order
		m.Status = change.Status
		updated = &m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *menuRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&domain.Menu{}, id).Error
}
