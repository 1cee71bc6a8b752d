package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/phone"
	"drinks-marketplace-service/internal/repository"
	"drinks-marketplace-service/internal/validation"
)

// ProfileStatus reports completeness of a seller profile
type ProfileStatus struct {
	Result  validation.ProfileValidationResult `json:"result"`
	Summary string                             `json:"summary,omitempty"`
}

// SellerService handles business logic for seller management
type SellerService interface {
	CreateSeller(userID uuid.UUID, req *models.CreateSellerRequest) (*models.Seller, error)
	GetSeller(id uuid.UUID) (*models.Seller, error)
	GetSellerByUser(userID uuid.UUID) (*models.Seller, error)
	UpdateSeller(userID, id uuid.UUID, req *models.UpdateSellerRequest) (*models.Seller, error)
	DeleteSeller(userID, id uuid.UUID) error
	ListSellers(filters *models.SellerFilters, page, limit int) ([]models.Seller, *models.PaginationInfo, error)
	SearchSellers(query string, page, limit int) ([]models.Seller, *models.PaginationInfo, error)
	ListNearby(lat, lon float64, limit int) ([]models.NearbySeller, error)
	GetProfileStatus(id uuid.UUID) (*ProfileStatus, error)
}

type sellerService struct {
	repo repository.SellerRepository
}

// NewSellerService creates a new seller service instance
func NewSellerService(repo repository.SellerRepository) SellerService {
	return &sellerService{repo: repo}
}

// CreateSeller creates a seller profile for a user. The phone number
// must normalize to a Moroccan mobile since it is the channel orders
// arrive through. A complete profile goes live immediately.
func (s *sellerService) CreateSeller(userID uuid.UUID, req *models.CreateSellerRequest) (*models.Seller, error) {
	existing, err := s.repo.GetByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, models.ErrAlreadyExists
	}

	phoneRes := phone.Validate(req.Phone)
	if !phoneRes.IsValid {
		return nil, fmt.Errorf("invalid phone number: %s", phoneRes.ErrorMessage)
	}

	seller := &models.Seller{
		UserID:        userID,
		BusinessName:  req.BusinessName,
		Description:   req.Description,
		Phone:         phoneRes.CleanNumber,
		Address:       req.Address,
		City:          req.City,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		BusinessHours: req.BusinessHours,
		AvatarURL:     req.AvatarURL,
		IsActive:      true,
	}

	seller.Status = models.SellerStatusPending
	if validation.ValidateSellerProfile(seller).IsComplete {
		seller.Status = models.SellerStatusActive
	}

	if err := s.repo.Create(seller); err != nil {
		return nil, fmt.Errorf("failed to create seller: %w", err)
	}

	return seller, nil
}

func (s *sellerService) GetSeller(id uuid.UUID) (*models.Seller, error) {
	seller, err := s.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	return seller, err
}

func (s *sellerService) GetSellerByUser(userID uuid.UUID) (*models.Seller, error) {
	seller, err := s.repo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	return seller, err
}

// UpdateSeller applies a partial update to the caller's own profile.
// Phone updates are normalized before storage; the profile status is
// recomputed so a newly completed profile goes live.
func (s *sellerService) UpdateSeller(userID, id uuid.UUID, req *models.UpdateSellerRequest) (*models.Seller, error) {
	seller, err := s.GetSeller(id)
	if err != nil {
		return nil, err
	}
	if seller.UserID != userID {
		return nil, models.ErrForbidden
	}

	updates := make(map[string]interface{})
	if req.BusinessName != nil {
		updates["business_name"] = *req.BusinessName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Phone != nil {
		phoneRes := phone.Validate(*req.Phone)
		if !phoneRes.IsValid {
			return nil, fmt.Errorf("invalid phone number: %s", phoneRes.ErrorMessage)
		}
		updates["phone"] = phoneRes.CleanNumber
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.BusinessHours != nil {
		updates["business_hours"] = req.BusinessHours
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update seller: %w", err)
		}
	}

	seller, err = s.GetSeller(id)
	if err != nil {
		return nil, err
	}

	// Promote a pending profile once it has everything a buyer needs
	if seller.Status == models.SellerStatusPending && validation.ValidateSellerProfile(seller).IsComplete {
		if err := s.repo.UpdateStatus(id, models.SellerStatusActive); err != nil {
			return nil, fmt.Errorf("failed to activate seller: %w", err)
		}
		seller.Status = models.SellerStatusActive
	}

	return seller, nil
}

func (s *sellerService) DeleteSeller(userID, id uuid.UUID) error {
	seller, err := s.GetSeller(id)
	if err != nil {
		return err
	}
	if seller.UserID != userID {
		return models.ErrForbidden
	}

	return s.repo.Delete(id)
}

func (s *sellerService) ListSellers(filters *models.SellerFilters, page, limit int) ([]models.Seller, *models.PaginationInfo, error) {
	return s.repo.List(filters, page, limit)
}

func (s *sellerService) SearchSellers(query string, page, limit int) ([]models.Seller, *models.PaginationInfo, error) {
	return s.repo.Search(query, page, limit)
}

func (s *sellerService) ListNearby(lat, lon float64, limit int) ([]models.NearbySeller, error) {
	return s.repo.ListNearby(lat, lon, limit)
}

// GetProfileStatus recomputes profile completeness from the current
// seller snapshot. Nothing is stored; the result changes as soon as
// the profile does.
func (s *sellerService) GetProfileStatus(id uuid.UUID) (*ProfileStatus, error) {
	seller, err := s.GetSeller(id)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	result := validation.ValidateSellerProfile(seller)
	return &ProfileStatus{
		Result:  result,
		Summary: validation.MissingFieldsSummary(result),
	}, nil
}
