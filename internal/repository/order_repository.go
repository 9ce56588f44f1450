package repository

import (
	"foodcourt/internal/domain"
)

type OrderRepository interface {
	Save(order *domain.Order) error
	FindByID(id uint64) (*domain.Order, error)
	// FindByUser returns a buyer's orders, newest first, food preloaded.
	FindByUser(userID uint64) ([]domain.Order, error)
	// FindBySeller returns orders placed against foods in kitchens owned
	// by ownerID, newest first, food preloaded.
	FindBySeller(ownerID uint64) ([]domain.Order, error)
	// UpdateStatus writes the order's new status and, when incrementOrders
	// is set, bumps the owning kitchen's total_orders by one. Both writes
	// happen in a single transaction with the kitchen row locked.
	UpdateStatus(order *domain.Order, status domain.OrderStatus, kitchenID uint64, incrementOrders bool) error
}
