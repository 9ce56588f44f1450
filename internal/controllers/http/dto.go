package http

import (
	"time"

	"foodcourt/internal/domain"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateKitchenRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

// RateRequest uses a pointer so an absent rating is distinguishable
// from a literal 0.
type RateRequest struct {
	Rating *float64 `json:"rating"`
}

type CreateFoodRequest struct {
	Name         string  `json:"name" binding:"required"`
	Kitchen      uint64  `json:"kitchen" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	Description  string  `json:"description"`
	Quantity     int64   `json:"quantity"`
	DeliveryTime int     `json:"deliveryTime"`
	ImageURL     string  `json:"imageUrl"`
}

type CreateOrderRequest struct {
	Food     uint64 `json:"food" binding:"required"`
	Quantity *int64 `json:"quantity"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderView is the order representation returned to clients, with the
// food and kitchen names pulled off the referenced food.
type OrderView struct {
	ID          uint64             `json:"id"`
	Food        uint64             `json:"food"`
	FoodName    string             `json:"foodName"`
	KitchenName string             `json:"kitchenName"`
	Quantity    int64              `json:"quantity"`
	TotalPrice  float64            `json:"totalPrice"`
	Status      domain.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func newOrderView(o domain.Order) OrderView {
	v := OrderView{
		ID:         o.ID,
		Food:       o.FoodID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
	}
	if o.Food != nil {
		v.FoodName = o.Food.Name
		v.KitchenName = o.Food.KitchenName
	}
	return v
}

func newOrderViews(orders []domain.Order) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderView(o))
	}
	return out
}
