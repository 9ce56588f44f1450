package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"foodcourt/internal/domain"
	rabbit "foodcourt/internal/infra/rabbitmq"
	"foodcourt/internal/repository"

	"github.com/redis/go-redis/v9"
)

type OrderService struct {
	orders      repository.OrderRepository
	foods       repository.FoodRepository
	kitchens    repository.KitchenRepository
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
	strict      bool
}

func NewOrderService(orders repository.OrderRepository, foods repository.FoodRepository, kitchens repository.KitchenRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		orders:    orders,
		foods:     foods,
		kitchens:  kitchens,
		publisher: pub,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// SetStrictTransitions switches status updates from free-form setting
// to enforcing the sequential workflow.
func (s *OrderService) SetStrictTransitions(strict bool) {
	s.strict = strict
}

// CreateOrder places an order for a buyer. The total price is a
// snapshot of food.Price * quantity; later price changes never touch
// existing orders. The food's stock quantity is deliberately not
// decremented here.
func (s *OrderService) CreateOrder(ctx context.Context, buyer *domain.User, foodID uint64, quantity int64) (*domain.Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	food, err := s.getFoodWithCache(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}

	kitchen, err := s.kitchens.FindByID(food.KitchenID)
	if err != nil {
		return nil, err
	}
	if kitchen != nil && buyer.Role == domain.RoleSeller && kitchen.OwnerID == buyer.ID {
		return nil, ErrOwnFood
	}

	order := &domain.Order{
		UserID:     buyer.ID,
		FoodID:     food.ID,
		Quantity:   quantity,
		TotalPrice: food.Price * float64(quantity),
		Status:     domain.StatusPending,
		CreatedAt:  time.Now(),
	}

	if err := s.orders.Save(order); err != nil {
		return nil, err
	}
	order.Food = food

	go s.publishOrderCreated(context.Background(), order, food.KitchenID)

	return order, nil
}

func (s *OrderService) getFoodWithCache(ctx context.Context, foodID uint64) (*domain.Food, error) {
	cacheKey := fmt.Sprintf("food:%d", foodID)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var food domain.Food
			if err := json.Unmarshal([]byte(cached), &food); err == nil {
				return &food, nil
			}
		}
	}

	food, err := s.foods.FindByID(foodID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && food != nil {
		if data, err := json.Marshal(food); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, time.Minute)
		}
	}

	return food, nil
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order, kitchenID uint64) {
	evt := domain.OrderCreatedEvent{
		OrderID:    order.ID,
		UserID:     order.UserID,
		FoodID:     order.FoodID,
		KitchenID:  kitchenID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("failed to publish order.created: %v", err)
	}
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID uint64) ([]domain.Order, error) {
	return s.orders.FindByUser(userID)
}

// ListSellerOrders returns every order placed against foods in kitchens
// the seller owns.
func (s *OrderService) ListSellerOrders(ctx context.Context, seller *domain.User) ([]domain.Order, error) {
	if seller.Role != domain.RoleSeller {
		return nil, ErrForbidden
	}
	return s.orders.FindBySeller(seller.ID)
}

// UpdateStatus moves an order to a new status. Only the owner of the
// kitchen containing the order's food may do this. A transition into
// delivered bumps the kitchen's total_orders on every call, repeats
// included.
func (s *OrderService) UpdateStatus(ctx context.Context, actor *domain.User, orderID uint64, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	food := order.Food
	if food == nil {
		food, err = s.foods.FindByID(order.FoodID)
		if err != nil {
			return nil, err
		}
		if food == nil {
			return nil, ErrFoodNotFound
		}
		order.Food = food
	}

	kitchen, err := s.kitchens.FindByID(food.KitchenID)
	if err != nil {
		return nil, err
	}
	if kitchen == nil {
		return nil, ErrKitchenNotFound
	}
	if kitchen.OwnerID != actor.ID {
		return nil, ErrForbidden
	}

	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if s.strict && !order.Status.CanTransition(status) {
		return nil, ErrIllegalStatusHop
	}

	from := order.Status
	if err := s.orders.UpdateStatus(order, status, kitchen.ID, status == domain.StatusDelivered); err != nil {
		return nil, err
	}

	go s.publishStatusChanged(context.Background(), order.ID, kitchen.ID, from, status)

	return order, nil
}

func (s *OrderService) publishStatusChanged(ctx context.Context, orderID, kitchenID uint64, from, to domain.OrderStatus) {
	evt := domain.OrderStatusChangedEvent{
		OrderID:   orderID,
		KitchenID: kitchenID,
		From:      from,
		To:        to,
		ChangedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		log.Printf("failed to publish order.status_changed: %v", err)
	}
}
