package services

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/jennaaaaaaaaa/node-lv5/internal/apperr"
	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
	"github.com/jennaaaaaaaaa/node-lv5/internal/repository"
)

type CategoryService struct {
	repo        repository.CategoryRepository
	redisClient *redis.Client
}

func NewCategoryService(r repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: r}
}

func (s *CategoryService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *CategoryService) Create(ctx context.Context, ownerID uint64, name string) (*domain.Category, error) {
	if name == "" {
		return nil, apperr.ErrValidation
	}

	category := &domain.Category{
		Name:    name,
		OwnerID: ownerID,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	invalidateCategories(ctx, s.redisClient)
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, categoriesCacheKey).Result(); err == nil {
			var out []domain.Category
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return out, nil
			}
		}
	}

	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(out); err == nil {
			s.redisClient.Set(ctx, categoriesCacheKey, data, catalogCacheTTL)
		}
	}
	return out, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint64, name string, rank int) (*domain.Category, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.ErrCategoryNotFound
	}
	if name == "" || rank < 1 {
		return nil, apperr.ErrValidation
	}

	updated, err := s.repo.Update(ctx, id, name, rank)
	if err != nil {
		return nil, err
	}

	invalidateCategories(ctx, s.redisClient)
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.ErrCategoryNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	invalidateCategories(ctx, s.redisClient)
	invalidateMenus(ctx, s.redisClient, id)
	return nil
}
