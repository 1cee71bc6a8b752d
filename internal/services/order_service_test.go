package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/repository"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

var _ repository.OrderRepository = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	if args.Error(0) == nil {
		order.ID = uuid.New()
		order.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListBySeller(sellerID uuid.UUID, page, limit int) ([]models.Order, *models.PaginationInfo, error) {
	args := m.Called(sellerID, page, limit)
	return args.Get(0).([]models.Order), args.Get(1).(*models.PaginationInfo), args.Error(2)
}

func (m *MockOrderRepository) ListByCustomer(customerID uuid.UUID, page, limit int) ([]models.Order, *models.PaginationInfo, error) {
	args := m.Called(customerID, page, limit)
	return args.Get(0).([]models.Order), args.Get(1).(*models.PaginationInfo), args.Error(2)
}

func (m *MockOrderRepository) ListBySellerSince(sellerID uuid.UUID, since time.Time) ([]models.Order, error) {
	args := m.Called(sellerID, since)
	return args.Get(0).([]models.Order), args.Error(1)
}

// MockSellerRepository is a mock implementation of SellerRepository
type MockSellerRepository struct {
	mock.Mock
}

var _ repository.SellerRepository = (*MockSellerRepository)(nil)

func (m *MockSellerRepository) Create(seller *models.Seller) error {
	args := m.Called(seller)
	if args.Error(0) == nil && seller.ID == uuid.Nil {
		seller.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockSellerRepository) GetByID(id uuid.UUID) (*models.Seller, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerRepository) GetByUserID(userID uuid.UUID) (*models.Seller, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(id, updates)
	return args.Error(0)
}

func (m *MockSellerRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSellerRepository) List(filters *models.SellerFilters, page, limit int) ([]models.Seller, *models.PaginationInfo, error) {
	args := m.Called(filters, page, limit)
	return args.Get(0).([]models.Seller), args.Get(1).(*models.PaginationInfo), args.Error(2)
}

func (m *MockSellerRepository) Search(query string, page, limit int) ([]models.Seller, *models.PaginationInfo, error) {
	args := m.Called(query, page, limit)
	return args.Get(0).([]models.Seller), args.Get(1).(*models.PaginationInfo), args.Error(2)
}

func (m *MockSellerRepository) ListNearby(lat, lon float64, limit int) ([]models.NearbySeller, error) {
	args := m.Called(lat, lon, limit)
	return args.Get(0).([]models.NearbySeller), args.Error(1)
}

func (m *MockSellerRepository) UpdateStatus(id uuid.UUID, status models.SellerStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func activeSeller() *models.Seller {
	return &models.Seller{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		BusinessName: "Atay Corner",
		Phone:        "212606060606",
		Address:      "12 Rue des Orangers",
		Status:       models.SellerStatusActive,
		IsActive:     true,
	}
}

func checkoutRequest(sellerID uuid.UUID) *models.CheckoutRequest {
	return &models.CheckoutRequest{
		SellerID: sellerID,
		Items: []models.OrderItem{
			{DrinkID: uuid.New(), Name: "Mint Tea", UnitPrice: 12, Quantity: 2},
			{DrinkID: uuid.New(), Name: "Orange Juice", UnitPrice: 15.5, Quantity: 1},
		},
	}
}

func TestCheckout_Success(t *testing.T) {
	orders := new(MockOrderRepository)
	sellers := new(MockSellerRepository)
	seller := activeSeller()

	sellers.On("GetByID", seller.ID).Return(seller, nil)
	orders.On("Create", mock.AnythingOfType("*models.Order")).Return(nil)

	svc := NewOrderService(orders, sellers, nil)
	result, err := svc.Checkout(context.Background(), nil, checkoutRequest(seller.ID))

	require.NoError(t, err)
	assert.InDelta(t, 39.5, result.Order.Total, 0.001)
	assert.True(t, strings.HasPrefix(result.WhatsAppLink, "https://wa.me/212606060606?text="), result.WhatsAppLink)
	assert.Contains(t, result.Message, "Mint Tea x2 - 24 Dh")
	assert.Equal(t, result.WhatsAppLink, result.Order.WhatsAppLink)

	// Cart snapshot survives serialization
	var items []models.OrderItem
	require.NoError(t, json.Unmarshal(result.Order.Items, &items))
	assert.Len(t, items, 2)

	orders.AssertExpectations(t)
	sellers.AssertExpectations(t)
}

func TestCheckout_AttachesCustomerID(t *testing.T) {
	orders := new(MockOrderRepository)
	sellers := new(MockSellerRepository)
	seller := activeSeller()
	customerID := uuid.New()

	sellers.On("GetByID", seller.ID).Return(seller, nil)
	orders.On("Create", mock.MatchedBy(func(o *models.Order) bool {
		return o.CustomerID != nil && *o.CustomerID == customerID
	})).Return(nil)

	svc := NewOrderService(orders, sellers, nil)
	_, err := svc.Checkout(context.Background(), &customerID, checkoutRequest(seller.ID))

	require.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestCheckout_InactiveSeller(t *testing.T) {
	orders := new(MockOrderRepository)
	sellers := new(MockSellerRepository)
	seller := activeSeller()
	seller.Status = models.SellerStatusSuspended

	sellers.On("GetByID", seller.ID).Return(seller, nil)

	svc := NewOrderService(orders, sellers, nil)
	_, err := svc.Checkout(context.Background(), nil, checkoutRequest(seller.ID))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not accepting orders")
	orders.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCheckout_SellerPhoneUnreachable(t *testing.T) {
	orders := new(MockOrderRepository)
	sellers := new(MockSellerRepository)
	seller := activeSeller()
	seller.Phone = "12345" // too short even for the permissive fallback

	sellers.On("GetByID", seller.ID).Return(seller, nil)

	svc := NewOrderService(orders, sellers, nil)
	_, err := svc.Checkout(context.Background(), nil, checkoutRequest(seller.ID))

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrSellerUnreachable)
	orders.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCheckout_EmptyCart(t *testing.T) {
	orders := new(MockOrderRepository)
	sellers := new(MockSellerRepository)
	seller := activeSeller()

	sellers.On("GetByID", seller.ID).Return(seller, nil)

	req := checkoutRequest(seller.ID)
	req.Items = nil

	svc := NewOrderService(orders, sellers, nil)
	_, err := svc.Checkout(context.Background(), nil, req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart is empty")
}
