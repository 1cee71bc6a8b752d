package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"drinks-marketplace-service/internal/category"
	"drinks-marketplace-service/internal/config"
	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/services"
)

type MockSellerService struct {
	mock.Mock
}

var _ services.SellerService = (*MockSellerService)(nil)

func (m *MockSellerService) CreateSeller(userID uuid.UUID, req *models.CreateSellerRequest) (*models.Seller, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerService) GetSeller(id uuid.UUID) (*models.Seller, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerService) GetSellerByUser(userID uuid.UUID) (*models.Seller, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerService) UpdateSeller(userID, id uuid.UUID, req *models.UpdateSellerRequest) (*models.Seller, error) {
	args := m.Called(userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seller), args.Error(1)
}

func (m *MockSellerService) DeleteSeller(userID, id uuid.UUID) error {
	return m.Called(userID, id).Error(0)
}

func (m *MockSellerService) ListSellers(filters *models.SellerFilters, page, limit int) ([]models.Seller, *models.PaginationInfo, error) {
	args := m.Called(filters, page, limit)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]models.Seller), args.Get(1).(*models.PaginationInfo), args.Error(2)
}

func (m *MockSellerService) SearchSellers(query string, page, limit int) ([]models.Seller, *models.PaginationInfo, error) {
	args := m.Called(query, page, limit)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]models.Seller), args.Get(1).(*models.PaginationInfo), args.Error(2)
}

func (m *MockSellerService) ListNearby(lat, lon float64, limit int) ([]models.NearbySeller, error) {
	args := m.Called(lat, lon, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NearbySeller), args.Error(1)
}

func (m *MockSellerService) GetProfileStatus(id uuid.UUID) (*services.ProfileStatus, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ProfileStatus), args.Error(1)
}

func newSellerRouter(sellerSvc services.SellerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{DefaultPageSize: 20, MaxPageSize: 100}
	handler := NewSellerHandler(sellerSvc, nil, cfg)

	router := gin.New()
	router.GET("/api/v1/public/sellers", handler.ListSellers)
	return router
}

func TestListSellers_MigratesLegacyCategory(t *testing.T) {
	sellerSvc := new(MockSellerService)

	var captured *models.SellerFilters
	sellerSvc.On("ListSellers", mock.AnythingOfType("*models.SellerFilters"), 1, 20).
		Run(func(args mock.Arguments) {
			captured = args.Get(0).(*models.SellerFilters)
		}).
		Return([]models.Seller{}, models.NewPaginationInfo(1, 20, 0), nil)

	router := newSellerRouter(sellerSvc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/sellers?category=hot", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// Drinks are stored with canonical categories only, so the seller
	// filter must be canonicalized the same way the drink browse is
	require.NotNil(t, captured)
	require.NotNil(t, captured.Category)
	assert.Equal(t, category.HotDrinks, *captured.Category)
	sellerSvc.AssertExpectations(t)
}

func TestListSellers_KeepsCanonicalCategory(t *testing.T) {
	sellerSvc := new(MockSellerService)

	var captured *models.SellerFilters
	sellerSvc.On("ListSellers", mock.AnythingOfType("*models.SellerFilters"), 1, 20).
		Run(func(args mock.Arguments) {
			captured = args.Get(0).(*models.SellerFilters)
		}).
		Return([]models.Seller{}, models.NewPaginationInfo(1, 20, 0), nil)

	router := newSellerRouter(sellerSvc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/sellers?category=juices", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	require.NotNil(t, captured.Category)
	assert.Equal(t, category.Juices, *captured.Category)

	var resp models.SellerListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}
