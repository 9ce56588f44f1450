package mysql

import (
	"errors"
	"log"

	"foodcourt/internal/domain"
	"foodcourt/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(order *domain.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		log.Printf("order save error: %v", err)
		return err
	}
	return nil
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.Preload("Food").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("order FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUser(userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.
		Where("user_id = ?", userID).
		Preload("Food").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("order FindByUser error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindBySeller(ownerID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.
		Joins("JOIN foods ON foods.id = orders.food_id").
		Joins("JOIN kitchens ON kitchens.id = foods.kitchen_id").
		Where("kitchens.owner_id = ?", ownerID).
		Preload("Food").
		Order("orders.created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("order FindBySeller error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) UpdateStatus(order *domain.Order, status domain.OrderStatus, kitchenID uint64, incrementOrders bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Order{}).Where("id = ?", order.ID).Update("status", status).Error; err != nil {
			return err
		}
		if incrementOrders {
			// single-statement increment, atomic on the kitchen row
			return tx.Model(&domain.Kitchen{}).
				Where("id = ?", kitchenID).
				Update("total_orders", gorm.Expr("total_orders + 1")).Error
		}
		return nil
	})
	if err != nil {
		log.Printf("order UpdateStatus error: %v", err)
		return err
	}
	order.Status = status
	return nil
}
