package repository

import (
	"foodcourt/internal/domain"
)

// FoodQuery carries the faceted-listing parameters for foods. Search
// matches name, kitchen_name and description; Status filters on the
// legacy delivery_status field; OrderBy is one of price, delivery_time,
// created_at, rating (rating joins kitchens and descends).
type FoodQuery struct {
	Search   string
	Status   domain.OrderStatus
	OrderBy  string
	Page     int
	PageSize int
}

type FoodRepository interface {
	Save(food *domain.Food) error
	FindByID(id uint64) (*domain.Food, error)
	List(q FoodQuery) ([]domain.Food, error)
	// FindByKitchen returns a kitchen's newest foods, capped at limit.
	FindByKitchen(kitchenID uint64, limit int) ([]domain.Food, error)
	// Delete removes a food; dependent orders cascade at the schema level.
	Delete(id uint64) error
}
