package mysql

import (
	"errors"
	"log"

	"foodcourt/internal/domain"
	"foodcourt/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	kitchenDefaultPageSize = 20
	kitchenMaxPageSize     = 50
)

type kitchenRepo struct {
	db *gorm.DB
}

func NewKitchenRepository(db *gorm.DB) repository.KitchenRepository {
	return &kitchenRepo{db: db}
}

func (r *kitchenRepo) Save(kitchen *domain.Kitchen) error {
	if err := r.db.Create(kitchen).Error; err != nil {
		log.Printf("kitchen save error: %v", err)
		return err
	}
	return nil
}

func (r *kitchenRepo) FindByID(id uint64) (*domain.Kitchen, error) {
	var k domain.Kitchen
	if err := r.db.First(&k, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("kitchen FindByID error: %v", err)
		return nil, err
	}
	return &k, nil
}

func (r *kitchenRepo) List(q repository.KitchenQuery) ([]domain.Kitchen, error) {
	tx := r.db.Model(&domain.Kitchen{})

	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("name LIKE ? OR owner_name LIKE ?", like, like)
	}

	switch q.OrderBy {
	case "total_orders":
		tx = tx.Order("total_orders DESC")
	case "created_at":
		tx = tx.Order("created_at")
	default:
		tx = tx.Order("rating DESC")
	}

	limit, offset := pageArgs(q.Page, q.PageSize, kitchenDefaultPageSize, kitchenMaxPageSize)

	var out []domain.Kitchen
	if err := tx.Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		log.Printf("kitchen list error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *kitchenRepo) Rate(id uint64, submitted float64) (float64, bool, error) {
	var (
		newRating float64
		found     bool
	)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var k domain.Kitchen
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&k, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		newRating = domain.NextRating(k.Rating, submitted)
		return tx.Model(&k).Update("rating", newRating).Error
	})
	if err != nil {
		log.Printf("kitchen rate error: %v", err)
		return 0, false, err
	}
	return newRating, found, nil
}

func (r *kitchenRepo) Delete(id uint64) error {
	if err := r.db.Delete(&domain.Kitchen{}, id).Error; err != nil {
		log.Printf("kitchen delete error: %v", err)
		return err
	}
	return nil
}

func pageArgs(page, size, def, max int) (limit, offset int) {
	if size <= 0 {
		size = def
	}
	if size > max {
		size = max
	}
	if page < 1 {
		page = 1
	}
	return size, (page - 1) * size
}
