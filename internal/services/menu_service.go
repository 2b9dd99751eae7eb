package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"

	"github.com/jennaaaaaaaaa/node-lv5/internal/apperr"
	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
	"github.com/jennaaaaaaaaa/node-lv5/internal/repository"
)

type MenuService struct {
	menus       repository.MenuRepository
	categories  repository.CategoryRepository
	redisClient *redis.Client
}

func NewMenuService(menus repository.MenuRepository, categories repository.CategoryRepository) *MenuService {
	return &MenuService{
		menus:      menus,
		categories: categories,
	}
}

func (s *MenuService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *MenuService) Create(ctx context.Context, menu *domain.Menu) (*domain.Menu, error) {
	category, err := s.categories.FindByID(ctx, menu.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.ErrCategoryNotFound
	}

	if menu.Name == "" || menu.Description == "" {
		return nil, apperr.ErrValidation
	}
	if menu.Price < 0 {
		return nil, apperr.ErrPriceBelowZero
	}
	if menu.AvailableQuantity < 0 {
		return nil, apperr.ErrValidation
	}

	menu.Status = domain.MenuForSale
	if err := s.menus.Create(ctx, menu); err != nil {
		return nil, err
	}

	invalidateMenus(ctx, s.redisClient, menu.CategoryID)
	return menu, nil
}

func (s *MenuService) ListByCategory(ctx context.Context, categoryID uint64) ([]domain.Menu, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.ErrCategoryNotFound
	}

	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, menusCacheKey(categoryID)).Result(); err == nil {
			var out []domain.Menu
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return out, nil
			}
		}
	}

	out, err := s.menus.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(out); err == nil {
			s.redisClient.Set(ctx, menusCacheKey(categoryID), data, catalogCacheTTL)
		}
	}
	return out, nil
}

func (s *MenuService) Get(ctx context.Context, categoryID, menuID uint64) (*domain.Menu, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.ErrCategoryNotFound
	}

	menu, err := s.menus.FindByID(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, apperr.ErrMenuNotFound
	}
	return menu, nil
}

func (s *MenuService) Update(ctx context.Context, categoryID, menuID uint64, change domain.MenuChange) (*domain.Menu, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.ErrCategoryNotFound
	}

	menu, err := s.menus.FindByID(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, apperr.ErrMenuNotFound
	}

	if change.Name == "" || change.Description == "" || change.Order < 1 || !change.Status.Valid() {
		return nil, apperr.ErrValidation
	}
	if change.Price < 0 {
		return nil, apperr.ErrPriceBelowZero
	}

	updated, err := s.menus.Update(ctx, menuID, change)
	if err != nil {
		return nil, err
	}

	invalidateMenus(ctx, s.redisClient, categoryID)
	return updated, nil
}

func (s *MenuService) Delete(ctx context.Context, categoryID, menuID uint64) error {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperr.ErrCategoryNotFound
	}

	menu, err := s.menus.FindByID(ctx, menuID)
	if err != nil {
		return err
	}
	if menu == nil {
		return apperr.ErrMenuNotFound
	}

	if err := s.menus.Delete(ctx, menuID); err != nil {
		return err
	}

	invalidateMenus(ctx, s.redisClient, categoryID)
	return nil
}

// WarmupCatalogCache primes the per-category menu caches in parallel.
func (s *MenuService) WarmupCatalogCache(ctx context.Context) error {
	if s.redisClient == nil {
		return nil
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, category := range categories {
		category := category
		g.Go(func() error {
			menus, err := s.menus.ListByCategory(ctx, category.ID)
			if err != nil {
				log.Printf("warmup: menus for category %d: %v", category.ID, err)
				return nil
			}
			if data, err := json.Marshal(menus); err == nil {
				s.redisClient.Set(ctx, menusCacheKey(category.ID), data, catalogCacheTTL)
			}
			return nil
		})
	}
	return g.Wait()
}
