package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/jennaaaaaaaaa/node-lv5/internal/config"
	"github.com/jennaaaaaaaaa/node-lv5/internal/controllers/http"
	mmysql "github.com/jennaaaaaaaaa/node-lv5/internal/infra/mysql"
	"github.com/jennaaaaaaaaa/node-lv5/internal/infra/rabbitmq"
	mysqlrepo "github.com/jennaaaaaaaaa/node-lv5/internal/repository/mysql"
	"github.com/jennaaaaaaaaa/node-lv5/internal/services"
)

func main() {
	cfg := config.Load()

	db, err := mmysql.NewMySQL(cfg.MySQL)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1000)
	sqlDB.SetMaxIdleConns(200)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	categoryRepo := mysqlrepo.NewCategoryRepository(db)
	menuRepo := mysqlrepo.NewMenuRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.Exchange)
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	categories := services.NewCategoryService(categoryRepo)
	menus := services.NewMenuService(menuRepo, categoryRepo)
	orders := services.NewOrderService(orderRepo, publisher)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		DB:           0,
		PoolSize:     200,
		MinIdleConns: 20,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	categories.SetRedisClient(redisClient)
	menus.SetRedisClient(redisClient)
	orders.SetRedisClient(redisClient)

	go func() {
		time.Sleep(5 * time.Second)
		if err := menus.WarmupCatalogCache(context.Background()); err != nil {
			log.Printf("Failed to warm up catalog cache: %v", err)
		} else {
			log.Println("Catalog cache warmed up successfully")
		}
	}()

	handler := http.NewHandler(categories, menus, orders)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	log.Printf("Starting storefront service on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
