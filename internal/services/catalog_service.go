package services

import (
	"context"

	"foodcourt/internal/domain"
	"foodcourt/internal/repository"
)

type CatalogService struct {
	kitchens repository.KitchenRepository
	foods    repository.FoodRepository
}

func NewCatalogService(kitchens repository.KitchenRepository, foods repository.FoodRepository) *CatalogService {
	return &CatalogService{kitchens: kitchens, foods: foods}
}

// KitchenWithFoods is the homepage aggregation unit: a kitchen plus its
// newest foods.
type KitchenWithFoods struct {
	domain.Kitchen
	Foods []domain.Food `json:"foods"`
}

func (s *CatalogService) CreateKitchen(ctx context.Context, owner *domain.User, name, imageURL string) (*domain.Kitchen, error) {
	if owner.Role != domain.RoleSeller {
		return nil, ErrForbidden
	}

	kitchen := &domain.Kitchen{
		Name:      name,
		OwnerID:   owner.ID,
		OwnerName: owner.Name,
		ImageURL:  imageURL,
	}
	if err := s.kitchens.Save(kitchen); err != nil {
		return nil, err
	}
	return kitchen, nil
}

func (s *CatalogService) GetKitchen(ctx context.Context, id uint64) (*domain.Kitchen, error) {
	kitchen, err := s.kitchens.FindByID(id)
	if err != nil {
		return nil, err
	}
	if kitchen == nil {
		return nil, ErrKitchenNotFound
	}
	return kitchen, nil
}

func (s *CatalogService) ListKitchens(ctx context.Context, q repository.KitchenQuery) ([]domain.Kitchen, error) {
	return s.kitchens.List(q)
}

// RateKitchen folds a submitted rating into the kitchen's displayed
// rating. A nil rating means the field was absent from the request.
func (s *CatalogService) RateKitchen(ctx context.Context, kitchenID uint64, rating *float64) (float64, error) {
	if rating == nil {
		return 0, ErrRatingRequired
	}
	if !domain.ValidRating(*rating) {
		return 0, ErrRatingOutOfRange
	}

	newRating, found, err := s.kitchens.Rate(kitchenID, *rating)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrKitchenNotFound
	}
	return newRating, nil
}

func (s *CatalogService) CreateFood(ctx context.Context, owner *domain.User, food *domain.Food) (*domain.Food, error) {
	if owner.Role != domain.RoleSeller {
		return nil, ErrForbidden
	}

	kitchen, err := s.kitchens.FindByID(food.KitchenID)
	if err != nil {
		return nil, err
	}
	if kitchen == nil {
		return nil, ErrKitchenNotFound
	}
	if kitchen.OwnerID != owner.ID {
		return nil, ErrForbidden
	}

	if food.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if food.DeliveryTime == 0 {
		food.DeliveryTime = domain.DefaultDeliveryTime
	}
	if food.DeliveryTime < domain.MinDeliveryTime || food.DeliveryTime > domain.MaxDeliveryTime {
		return nil, ErrInvalidDelivery
	}
	if food.DeliveryStatus == "" {
		food.DeliveryStatus = domain.StatusPending
	}

	// denormalized at creation, never synced with kitchen renames
	food.KitchenName = kitchen.Name

	if err := s.foods.Save(food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *CatalogService) GetFood(ctx context.Context, id uint64) (*domain.Food, error) {
	food, err := s.foods.FindByID(id)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}
	return food, nil
}

func (s *CatalogService) ListFoods(ctx context.Context, q repository.FoodQuery) ([]domain.Food, error) {
	if q.Status != "" && !q.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.foods.List(q)
}

// DeleteFood removes a food from the owner's kitchen. Orders referencing
// it cascade away at the schema level.
func (s *CatalogService) DeleteFood(ctx context.Context, owner *domain.User, id uint64) error {
	food, err := s.foods.FindByID(id)
	if err != nil {
		return err
	}
	if food == nil {
		return ErrFoodNotFound
	}

	kitchen, err := s.kitchens.FindByID(food.KitchenID)
	if err != nil {
		return err
	}
	if kitchen == nil || kitchen.OwnerID != owner.ID {
		return ErrForbidden
	}

	return s.foods.Delete(id)
}

func (s *CatalogService) DeleteKitchen(ctx context.Context, owner *domain.User, id uint64) error {
	kitchen, err := s.kitchens.FindByID(id)
	if err != nil {
		return err
	}
	if kitchen == nil {
		return ErrKitchenNotFound
	}
	if kitchen.OwnerID != owner.ID {
		return ErrForbidden
	}

	return s.kitchens.Delete(id)
}

// Homepage returns kitchens ordered by rating, each carrying its newest
// foods, capped at foodsPerKitchen.
func (s *CatalogService) Homepage(ctx context.Context, page, pageSize, foodsPerKitchen int) ([]KitchenWithFoods, error) {
	kitchens, err := s.kitchens.List(repository.KitchenQuery{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, err
	}

	out := make([]KitchenWithFoods, 0, len(kitchens))
	for _, k := range kitchens {
		foods, err := s.foods.FindByKitchen(k.ID, foodsPerKitchen)
		if err != nil {
			return nil, err
		}
		out = append(out, KitchenWithFoods{Kitchen: k, Foods: foods})
	}
	return out, nil
}
