package mysql

import (
	"errors"
	"log"

	"foodcourt/internal/domain"
	"foodcourt/internal/repository"

	"gorm.io/gorm"
)

const (
	foodDefaultPageSize = 50
	foodMaxPageSize     = 100
)

type foodRepo struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepo{db: db}
}

func (r *foodRepo) Save(food *domain.Food) error {
	if err := r.db.Create(food).Error; err != nil {
		log.Printf("food save error: %v", err)
		return err
	}
	return nil
}

func (r *foodRepo) FindByID(id uint64) (*domain.Food, error) {
	var f domain.Food
	if err := r.db.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("food FindByID error: %v", err)
		return nil, err
	}
	return &f, nil
}

func (r *foodRepo) List(q repository.FoodQuery) ([]domain.Food, error) {
	tx := r.db.Model(&domain.Food{})

	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("foods.name LIKE ? OR foods.kitchen_name LIKE ? OR foods.description LIKE ?", like, like, like)
	}
	if q.Status != "" {
		tx = tx.Where("foods.delivery_status = ?", q.Status)
	}

	switch q.OrderBy {
	case "price":
		tx = tx.Order("foods.price")
	case "delivery_time":
		tx = tx.Order("foods.delivery_time")
	case "rating":
		tx = tx.
			Select("foods.*").
			Joins("JOIN kitchens ON kitchens.id = foods.kitchen_id").
			Order("kitchens.rating DESC")
	default:
		tx = tx.Order("foods.created_at")
	}

	limit, offset := pageArgs(q.Page, q.PageSize, foodDefaultPageSize, foodMaxPageSize)

	var out []domain.Food
	if err := tx.Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		log.Printf("food list error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *foodRepo) Delete(id uint64) error {
	if err := r.db.Delete(&domain.Food{}, id).Error; err != nil {
		log.Printf("food delete error: %v", err)
		return err
	}
	return nil
}

func (r *foodRepo) FindByKitchen(kitchenID uint64, limit int) ([]domain.Food, error) {
	var out []domain.Food
	err := r.db.
		Where("kitchen_id = ?", kitchenID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		log.Printf("food FindByKitchen error: %v", err)
		return nil, err
	}
	return out, nil
}
