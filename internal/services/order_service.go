package services

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/jennaaaaaaaaa/node-lv5/internal/apperr"
	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
	rabbit "github.com/jennaaaaaaaaa/node-lv5/internal/infra/rabbitmq"
	"github.com/jennaaaaaaaaa/node-lv5/internal/repository"
)

type OrderService struct {
	repo        repository.OrderRepository
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewOrderService(r repository.OrderRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		publisher: pub,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// Place prices the order against the menu's current price, creates the order
// with its line and reserves stock. Pricing and reservation happen inside the
// repository transaction, so no state is touched when any step fails.
func (s *OrderService) Place(ctx context.Context, customerID, menuID uint64, quantity int64) (*domain.Order, error) {
	if quantity <= 0 {
		return nil, apperr.ErrValidation
	}

	order, err := s.repo.Place(ctx, customerID, menuID, quantity)
	if err != nil {
		return nil, err
	}

	if order.Line.Menu != nil {
		invalidateMenus(ctx, s.redisClient, order.Line.Menu.CategoryID)
	}
	go s.publishOrderCreated(context.Background(), order)

	return order, nil
}

func (s *OrderService) ListForCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *OrderService) Get(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrOrderNotFound
	}
	return o, nil
}

// UpdateStatus overwrites the order status unconditionally; any live order
// may be moved to any of the three states.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) error {
	if !status.Valid() {
		return apperr.ErrValidation
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.ErrOrderNotFound
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	go s.publishStatusUpdated(context.Background(), id, status)
	return nil
}

// Delete is an administrative bookkeeping action; the order row is only
// marked deleted, never removed.
func (s *OrderService) Delete(ctx context.Context, id uint64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.ErrOrderNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		MenuID:     order.Line.MenuID,
		Quantity:   order.Line.Quantity,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("Failed to publish order.created: %v", err)
	}
}

func (s *OrderService) publishStatusUpdated(ctx context.Context, id uint64, status domain.OrderStatus) {
	evt := domain.OrderStatusEvent{OrderID: id, Status: status}
	if err := s.publisher.Publish(ctx, "order.status_updated", evt); err != nil {
		log.Printf("Failed to publish order.status_updated: %v", err)
	}
}
