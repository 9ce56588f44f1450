package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusPreparing OrderStatus = "preparing"
	StatusOnTheWay  OrderStatus = "ontheway"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusPreparing, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// next step along the happy path, consulted only in strict-transition mode
var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:   StatusAccepted,
	StatusAccepted:  StatusPreparing,
	StatusPreparing: StatusOnTheWay,
	StatusOnTheWay:  StatusDelivered,
}

// CanTransition reports whether moving from s to target is a legal step
// of the sequential workflow. Cancellation is allowed from any
// non-terminal state; terminal states allow nothing further.
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if target == StatusCancelled {
		return true
	}
	return nextStatus[s] == target
}

type Order struct {
	ID         uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     uint64      `json:"userId" gorm:"not null;index"`
	FoodID     uint64      `json:"food" gorm:"not null;index"`
	Food       *Food       `json:"-" gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`
	Quantity   int64       `json:"quantity" gorm:"not null;default:1"`
	TotalPrice float64     `json:"totalPrice" gorm:"not null"`
	Status     OrderStatus `json:"status" gorm:"type:enum('pending','accepted','preparing','ontheway','delivered','cancelled');default:'pending'"`
	CreatedAt  time.Time   `json:"createdAt" gorm:"autoCreateTime"`
}
