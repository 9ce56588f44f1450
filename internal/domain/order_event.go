package domain

import "time"

type OrderCreatedEvent struct {
	OrderID    uint64    `json:"orderId"`
	UserID     uint64    `json:"userId"`
	FoodID     uint64    `json:"foodId"`
	KitchenID  uint64    `json:"kitchenId"`
	Quantity   int64     `json:"quantity"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	OrderID   uint64      `json:"orderId"`
	KitchenID uint64      `json:"kitchenId"`
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	ChangedAt time.Time   `json:"changedAt"`
}
