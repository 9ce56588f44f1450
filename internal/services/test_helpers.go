package services

import (
	"time"

	"foodcourt/internal/domain"
)

const (
	testBuyerID   = uint64(10)
	testSellerID  = uint64(42)
	testKitchenID = uint64(7)
	testFoodID    = uint64(1)
	testOrderID   = uint64(100)
	testFoodPrice = 200.0
)

func newTestBuyer() *domain.User {
	return &domain.User{ID: testBuyerID, Name: "Bea Buyer", Email: "bea@example.com", Role: domain.RoleBuyer}
}

func newTestSeller() *domain.User {
	return &domain.User{ID: testSellerID, Name: "Sam Seller", Email: "sam@example.com", Role: domain.RoleSeller}
}

func newTestKitchen() *domain.Kitchen {
	return &domain.Kitchen{ID: testKitchenID, Name: "Sam's Corner Kitchen", OwnerID: testSellerID, OwnerName: "Sam Seller", Rating: 4.0}
}

func newTestFood() *domain.Food {
	return &domain.Food{
		ID:           testFoodID,
		Name:         "Nasi Goreng",
		KitchenID:    testKitchenID,
		KitchenName:  "Sam's Corner Kitchen",
		Price:        testFoodPrice,
		Quantity:     20,
		DeliveryTime: 30,
	}
}

func newTestOrder(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:         testOrderID,
		UserID:     testBuyerID,
		FoodID:     testFoodID,
		Food:       newTestFood(),
		Quantity:   1,
		TotalPrice: testFoodPrice,
		Status:     status,
		CreatedAt:  time.Now(),
	}
}
