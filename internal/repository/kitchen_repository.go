package repository

import (
	"foodcourt/internal/domain"
)

// KitchenQuery carries the faceted-listing parameters for kitchens.
// Search matches name and owner_name; OrderBy is one of rating,
// total_orders, created_at (rating and total_orders descend).
type KitchenQuery struct {
	Search   string
	OrderBy  string
	Page     int
	PageSize int
}

type KitchenRepository interface {
	Save(kitchen *domain.Kitchen) error
	FindByID(id uint64) (*domain.Kitchen, error)
	List(q KitchenQuery) ([]domain.Kitchen, error)
	// Rate folds submitted into the kitchen's displayed rating inside a
	// row-locked transaction and returns the new value. found is false
	// when the kitchen does not exist.
	Rate(id uint64, submitted float64) (newRating float64, found bool, err error)
	Delete(id uint64) error
}
