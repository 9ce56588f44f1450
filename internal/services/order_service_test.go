package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodcourt/internal/domain"
	"foodcourt/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderServiceForTest() (*OrderService, *mocks.MockOrderRepository, *mocks.MockFoodRepository, *mocks.MockKitchenRepository, *mocks.MockPublisher) {
	orders := new(mocks.MockOrderRepository)
	foods := new(mocks.MockFoodRepository)
	kitchens := new(mocks.MockKitchenRepository)
	pub := new(mocks.MockPublisher)
	return NewOrderService(orders, foods, kitchens, pub), orders, foods, kitchens, pub
}

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name          string
		buyer         *domain.User
		quantity      int64
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockFoodRepository, *mocks.MockKitchenRepository, *mocks.MockPublisher)
		expectedError error
		expectedTotal float64
	}{
		{
			name:     "buyer orders, total is price times quantity",
			buyer:    newTestBuyer(),
			quantity: 3,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				foods.On("FindByID", testFoodID).Return(newTestFood(), nil)
				kitchens.On("FindByID", testKitchenID).Return(newTestKitchen(), nil)
				orders.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Order).ID = testOrderID
				})
				pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()
			},
			expectedTotal: 600,
		},
		{
			name:     "another seller may order the food",
			buyer:    &domain.User{ID: 77, Name: "Other Seller", Role: domain.RoleSeller},
			quantity: 1,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				foods.On("FindByID", testFoodID).Return(newTestFood(), nil)
				kitchens.On("FindByID", testKitchenID).Return(newTestKitchen(), nil)
				orders.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil)
				pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()
			},
			expectedTotal: testFoodPrice,
		},
		{
			name:     "owning seller cannot order own food",
			buyer:    newTestSeller(),
			quantity: 1,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				foods.On("FindByID", testFoodID).Return(newTestFood(), nil)
				kitchens.On("FindByID", testKitchenID).Return(newTestKitchen(), nil)
			},
			expectedError: ErrOwnFood,
		},
		{
			name:     "food not found",
			buyer:    newTestBuyer(),
			quantity: 1,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				foods.On("FindByID", testFoodID).Return(nil, nil)
			},
			expectedError: ErrFoodNotFound,
		},
		{
			name:          "zero quantity rejected",
			buyer:         newTestBuyer(),
			quantity:      0,
			setupMocks:    func(*mocks.MockOrderRepository, *mocks.MockFoodRepository, *mocks.MockKitchenRepository, *mocks.MockPublisher) {},
			expectedError: ErrInvalidQuantity,
		},
		{
			name:     "repository error propagates",
			buyer:    newTestBuyer(),
			quantity: 1,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				foods.On("FindByID", testFoodID).Return(newTestFood(), nil)
				kitchens.On("FindByID", testKitchenID).Return(newTestKitchen(), nil)
				orders.On("Save", mock.AnythingOfType("*domain.Order")).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, orders, foods, kitchens, pub := newOrderServiceForTest()
			tt.setupMocks(orders, foods, kitchens, pub)

			result, err := service.CreateOrder(context.Background(), tt.buyer, testFoodID, tt.quantity)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.expectedTotal, result.TotalPrice)
				assert.Equal(t, domain.StatusPending, result.Status)
				assert.Equal(t, tt.buyer.ID, result.UserID)
				assert.WithinDuration(t, time.Now(), result.CreatedAt, time.Second)
			}

			// let the fire-and-forget publish settle before asserting
			time.Sleep(50 * time.Millisecond)
			orders.AssertExpectations(t)
			foods.AssertExpectations(t)
			kitchens.AssertExpectations(t)
			pub.AssertExpectations(t)
		})
	}
}

func TestOrderService_CreateOrder_PriceSnapshot(t *testing.T) {
	service, orders, foods, kitchens, pub := newOrderServiceForTest()

	food := newTestFood()
	foods.On("FindByID", testFoodID).Return(food, nil)
	kitchens.On("FindByID", testKitchenID).Return(newTestKitchen(), nil)
	orders.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil)
	pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

	result, err := service.CreateOrder(context.Background(), newTestBuyer(), testFoodID, 2)
	assert.NoError(t, err)
	assert.Equal(t, 400.0, result.TotalPrice)

	// a later price change must not touch the stored total
	food.Price = 999
	assert.Equal(t, 400.0, result.TotalPrice)

	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		actor         *domain.User
		status        domain.OrderStatus
		strict        bool
		orderStatus   domain.OrderStatus
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockFoodRepository, *mocks.MockKitchenRepository, *mocks.MockPublisher)
		expectedError error
	}{
		{
			name:        "owner accepts a pending order",
			actor:       newTestSeller(),
			status:      domain.StatusAccepted,
			orderStatus: domain.StatusPending,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				orders.On("FindByID", testOrderID).Return(newTestOrder(domain.StatusPending), nil)
				kitchens.On("FindByID", testKitchenID).Return(newTestKitchen(), nil)
				orders.On("UpdateStatus", mock.AnythingOfType("*domain.Order"), domain.StatusAccepted, testKitchenID, false).Return(nil)
				pub.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).Maybe()
			},
		},
		{
			name:        "delivered increments the kitchen order count",
			actor:       newTestSeller(),
			status:      domain.StatusDelivered,
			orderStatus: domain.StatusOnTheWay,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				orders.On("FindByID", testOrderID).Return(newTestOrder(domain.StatusOnTheWay), nil)
				kitchens.On("FindByID", testKitchenID).Return(newTestKitchen(), nil)
				orders.On("UpdateStatus", mock.AnythingOfType("*domain.Order"), domain.StatusDelivered, testKitchenID, true).Return(nil)
				pub.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).Maybe()
			},
		},
		{
			name:        "buyer may not update status",
			actor:       newTestBuyer(),
			status:      domain.StatusDelivered,
			orderStatus: domain.StatusPending,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				orders.On("FindByID", testOrderID).Return(newTestOrder(domain.StatusPending), nil)
				kitchens.On("FindByID", testKitchenID).Return(newTestKitchen(), nil)
			},
			expectedError: ErrForbidden,
		},
		{
			name:        "unrecognized status rejected",
			actor:       newTestSeller(),
			status:      domain.OrderStatus("banana"),
			orderStatus: domain.StatusPending,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				orders.On("FindByID", testOrderID).Return(newTestOrder(domain.StatusPending), nil)
				kitchens.On("FindByID", testKitchenID).Return(newTestKitchen(), nil)
			},
			expectedError: ErrInvalidStatus,
		},
		{
			name:   "order not found",
			actor:  newTestSeller(),
			status: domain.StatusAccepted,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				orders.On("FindByID", testOrderID).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:        "permissive mode allows arbitrary jumps",
			actor:       newTestSeller(),
			status:      domain.StatusDelivered,
			orderStatus: domain.StatusPending,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				orders.On("FindByID", testOrderID).Return(newTestOrder(domain.StatusPending), nil)
				kitchens.On("FindByID", testKitchenID).Return(newTestKitchen(), nil)
				orders.On("UpdateStatus", mock.AnythingOfType("*domain.Order"), domain.StatusDelivered, testKitchenID, true).Return(nil)
				pub.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).Maybe()
			},
		},
		{
			name:        "strict mode rejects jumping pending to delivered",
			actor:       newTestSeller(),
			status:      domain.StatusDelivered,
			strict:      true,
			orderStatus: domain.StatusPending,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				orders.On("FindByID", testOrderID).Return(newTestOrder(domain.StatusPending), nil)
				kitchens.On("FindByID", testKitchenID).Return(newTestKitchen(), nil)
			},
			expectedError: ErrIllegalStatusHop,
		},
		{
			name:        "strict mode allows cancelling mid-flight",
			actor:       newTestSeller(),
			status:      domain.StatusCancelled,
			strict:      true,
			orderStatus: domain.StatusPreparing,
			setupMocks: func(orders *mocks.MockOrderRepository, foods *mocks.MockFoodRepository, kitchens *mocks.MockKitchenRepository, pub *mocks.MockPublisher) {
				orders.On("FindByID", testOrderID).Return(newTestOrder(domain.StatusPreparing), nil)
				kitchens.On("FindByID", testKitchenID).Return(newTestKitchen(), nil)
				orders.On("UpdateStatus", mock.AnythingOfType("*domain.Order"), domain.StatusCancelled, testKitchenID, false).Return(nil)
				pub.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).Maybe()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, orders, foods, kitchens, pub := newOrderServiceForTest()
			service.SetStrictTransitions(tt.strict)
			tt.setupMocks(orders, foods, kitchens, pub)

			result, err := service.UpdateStatus(context.Background(), tt.actor, testOrderID, tt.status)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, result)
				orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.status, result.Status)
			}

			time.Sleep(50 * time.Millisecond)
			orders.AssertExpectations(t)
			foods.AssertExpectations(t)
			kitchens.AssertExpectations(t)
			pub.AssertExpectations(t)
		})
	}
}

func TestOrderService_ListSellerOrders(t *testing.T) {
	service, orders, _, _, _ := newOrderServiceForTest()

	expected := []domain.Order{*newTestOrder(domain.StatusPending), *newTestOrder(domain.StatusDelivered)}
	orders.On("FindBySeller", testSellerID).Return(expected, nil)

	result, err := service.ListSellerOrders(context.Background(), newTestSeller())
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	orders.AssertExpectations(t)
}

func TestOrderService_ListSellerOrders_BuyerForbidden(t *testing.T) {
	service, orders, _, _, _ := newOrderServiceForTest()

	result, err := service.ListSellerOrders(context.Background(), newTestBuyer())
	assert.Equal(t, ErrForbidden, err)
	assert.Nil(t, result)
	orders.AssertNotCalled(t, "FindBySeller", mock.Anything)
}

func TestOrderService_ListUserOrders(t *testing.T) {
	service, orders, _, _, _ := newOrderServiceForTest()

	expected := []domain.Order{*newTestOrder(domain.StatusPending)}
	orders.On("FindByUser", testBuyerID).Return(expected, nil)

	result, err := service.ListUserOrders(context.Background(), testBuyerID)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	orders.AssertExpectations(t)
}
