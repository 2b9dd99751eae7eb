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

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *domain.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next, err := ranking.Next(ctx, rankColl{tx: tx, model: &domain.Category{}})
		if err != nil {
			return err
		}
		category.Order = next
		return tx.Create(category).Error
	})
}

func (r *categoryRepo) FindByID(ctx context.Context, id uint64) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := r.db.WithContext(ctx).Order("`order` ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *categoryRepo) Update(ctx context.Context, id uint64, name string, rank int) (*domain.Category, error) {
	var updated *domain.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c domain.Category
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrCategoryNotFound
			}
			return err
		}
		if err := ranking.Relocate(ctx, rankColl{tx: tx, model: &domain.Category{}}, c.ID, c.Order, rank); err != nil {
			return err
		}
		if err := tx.Model(&c).Update("name", name).Error; err != nil {
			return err
		}
		c.Name = name
		c.Order = rank
		updated = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *categoryRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&domain.Category{}, id).Error
}
