package mocks

import (
	"context"

	"foodcourt/internal/domain"
	"foodcourt/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockKitchenRepository struct {
	mock.Mock
}

func (m *MockKitchenRepository) Save(kitchen *domain.Kitchen) error {
	args := m.Called(kitchen)
	return args.Error(0)
}

func (m *MockKitchenRepository) FindByID(id uint64) (*domain.Kitchen, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Kitchen), args.Error(1)
}

func (m *MockKitchenRepository) List(q repository.KitchenQuery) ([]domain.Kitchen, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Kitchen), args.Error(1)
}

func (m *MockKitchenRepository) Rate(id uint64, submitted float64) (float64, bool, error) {
	args := m.Called(id, submitted)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

func (m *MockKitchenRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Save(food *domain.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

func (m *MockFoodRepository) FindByID(id uint64) (*domain.Food, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *MockFoodRepository) List(q repository.FoodQuery) ([]domain.Food, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Food), args.Error(1)
}

func (m *MockFoodRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFoodRepository) FindByKitchen(kitchenID uint64, limit int) ([]domain.Food, error) {
	args := m.Called(kitchenID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Food), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id uint64) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(userID uint64) ([]domain.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindBySeller(ownerID uint64) ([]domain.Order, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(order *domain.Order, status domain.OrderStatus, kitchenID uint64, incrementOrders bool) error {
	args := m.Called(order, status, kitchenID, incrementOrders)
	if args.Error(0) == nil {
		order.Status = status
	}
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Issue(ctx context.Context, userID uint64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Resolve(ctx context.Context, token string) (uint64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockSessionStore) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
