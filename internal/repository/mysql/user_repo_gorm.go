package mysql

import (
	"errors"
	"log"

	"foodcourt/internal/domain"
	"foodcourt/internal/repository"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Save(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		log.Printf("user save error: %v", err)
		return err
	}
	return nil
}

func (r *userRepo) FindByID(id uint64) (*domain.User, error) {
	var u domain.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("user FindByID error: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("user FindByEmail error: %v", err)
		return nil, err
	}
	return &u, nil
}
