package domain

import "time"

const (
	MinDeliveryTime     = 1
	MaxDeliveryTime     = 300
	DefaultDeliveryTime = 30
)

// Food is a purchasable dish belonging to one kitchen. KitchenName is
// copied from the kitchen at creation time and is not kept in sync with
// later kitchen renames. DeliveryStatus is a legacy per-dish field;
// actual fulfillment tracking lives on Order.Status.
type Food struct {
	ID             uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string      `json:"name" gorm:"not null"`
	KitchenID      uint64      `json:"kitchen" gorm:"not null;index"`
	KitchenName    string      `json:"kitchenName"`
	Price          float64     `json:"price" gorm:"not null"`
	Description    string      `json:"description"`
	Quantity       int64       `json:"quantity"`
	DeliveryTime   int         `json:"deliveryTime" gorm:"default:30;index"`
	DeliveryStatus OrderStatus `json:"deliveryStatus" gorm:"type:enum('pending','accepted','preparing','ontheway','delivered','cancelled');default:'pending';index"`
	ImageURL       string      `json:"imageUrl,omitempty"`
	CreatedAt      time.Time   `json:"createdAt" gorm:"autoCreateTime"`
}
