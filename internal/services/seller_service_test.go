package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"drinks-marketplace-service/internal/models"
)

func TestCreateSeller_NormalizesPhoneAndActivates(t *testing.T) {
	repo := new(MockSellerRepository)
	userID := uuid.New()

	repo.On("GetByUserID", userID).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.MatchedBy(func(s *models.Seller) bool {
		return s.Phone == "212606060606" && s.Status == models.SellerStatusActive
	})).Return(nil)

	svc := NewSellerService(repo)
	seller, err := svc.CreateSeller(userID, &models.CreateSellerRequest{
		BusinessName: "Atay Corner",
		Phone:        "0606060606",
		Address:      "12 Rue des Orangers",
	})

	require.NoError(t, err)
	assert.Equal(t, "212606060606", seller.Phone)
	assert.Equal(t, models.SellerStatusActive, seller.Status)
	repo.AssertExpectations(t)
}

func TestCreateSeller_RejectsInvalidPhone(t *testing.T) {
	repo := new(MockSellerRepository)
	userID := uuid.New()

	repo.On("GetByUserID", userID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewSellerService(repo)
	_, err := svc.CreateSeller(userID, &models.CreateSellerRequest{
		BusinessName: "Atay Corner",
		Phone:        "0506060606",
		Address:      "12 Rue des Orangers",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting with 6 or 7")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateSeller_OnePerUser(t *testing.T) {
	repo := new(MockSellerRepository)
	userID := uuid.New()

	repo.On("GetByUserID", userID).Return(&models.Seller{ID: uuid.New(), UserID: userID}, nil)

	svc := NewSellerService(repo)
	_, err := svc.CreateSeller(userID, &models.CreateSellerRequest{
		BusinessName: "Atay Corner",
		Phone:        "0606060606",
		Address:      "12 Rue des Orangers",
	})

	assert.ErrorIs(t, err, models.ErrAlreadyExists)
}

func TestUpdateSeller_ForbiddenForOtherUsers(t *testing.T) {
	repo := new(MockSellerRepository)
	seller := activeSeller()

	repo.On("GetByID", seller.ID).Return(seller, nil)

	svc := NewSellerService(repo)
	name := "Someone Else's Shop"
	_, err := svc.UpdateSeller(uuid.New(), seller.ID, &models.UpdateSellerRequest{BusinessName: &name})

	assert.ErrorIs(t, err, models.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetProfileStatus_MissingProfileReportsAllFields(t *testing.T) {
	repo := new(MockSellerRepository)
	id := uuid.New()

	repo.On("GetByID", id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewSellerService(repo)
	status, err := svc.GetProfileStatus(id)

	require.NoError(t, err)
	assert.False(t, status.Result.IsComplete)
	assert.Equal(t, []string{"business_name", "address", "phone"}, status.Result.MissingFields)
	assert.Equal(t, "Missing: Business Name, Address, and Phone Number", status.Summary)
}

func TestGetProfileStatus_CompleteProfile(t *testing.T) {
	repo := new(MockSellerRepository)
	seller := activeSeller()

	repo.On("GetByID", seller.ID).Return(seller, nil)

	svc := NewSellerService(repo)
	status, err := svc.GetProfileStatus(seller.ID)

	require.NoError(t, err)
	assert.True(t, status.Result.IsComplete)
	assert.Equal(t, "", status.Summary)
}
