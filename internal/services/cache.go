package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	categoriesCacheKey = "catalog:categories"
	catalogCacheTTL    = time.Minute
)

func menusCacheKey(categoryID uint64) string {
	return fmt.Sprintf("catalog:menus:%d", categoryID)
}

func invalidateCategories(ctx context.Context, client *redis.Client) {
	if client != nil {
		client.Del(ctx, categoriesCacheKey)
	}
}

func invalidateMenus(ctx context.Context, client *redis.Client, categoryID uint64) {
	if client != nil {
		client.Del(ctx, menusCacheKey(categoryID))
	}
}
