package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"drinks-marketplace-service/internal/cache"
	"drinks-marketplace-service/internal/category"
	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/repository"
)

// DrinkService handles business logic for drink listings
type DrinkService interface {
	CreateDrink(sellerID uuid.UUID, req *models.CreateDrinkRequest) (*models.Drink, error)
	GetDrink(id uuid.UUID) (*models.Drink, error)
	UpdateDrink(sellerID, id uuid.UUID, req *models.UpdateDrinkRequest) (*models.Drink, error)
	DeleteDrink(sellerID, id uuid.UUID) error
	ListDrinks(ctx context.Context, filters *models.DrinkFilters, page, limit int) ([]models.Drink, *models.PaginationInfo, error)
}

type drinkService struct {
	repo        repository.DrinkRepository
	searchCache *cache.SearchCache
	logger      *logrus.Entry
}

// NewDrinkService creates a new drink service instance
func NewDrinkService(repo repository.DrinkRepository, searchCache *cache.SearchCache, logger *logrus.Logger) DrinkService {
	return &drinkService{
		repo:        repo,
		searchCache: searchCache,
		logger:      logger.WithField("component", "services.drink"),
	}
}

// CreateDrink creates a drink listing. Legacy category labels are
// migrated to canonical values on the way in so only canonical
// categories ever reach storage.
func (s *drinkService) CreateDrink(sellerID uuid.UUID, req *models.CreateDrinkRequest) (*models.Drink, error) {
	cat := category.Migrate(req.Category)
	if !category.IsValid(cat) {
		return nil, fmt.Errorf("unknown category %q", req.Category)
	}

	drink := &models.Drink{
		SellerID:    sellerID,
		Name:        req.Name,
		Description: req.Description,
		Category:    cat,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		drink.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Create(drink); err != nil {
		return nil, fmt.Errorf("failed to create drink: %w", err)
	}

	return drink, nil
}

func (s *drinkService) GetDrink(id uuid.UUID) (*models.Drink, error) {
	drink, err := s.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	return drink, err
}

func (s *drinkService) UpdateDrink(sellerID, id uuid.UUID, req *models.UpdateDrinkRequest) (*models.Drink, error) {
	drink, err := s.GetDrink(id)
	if err != nil {
		return nil, err
	}
	if drink.SellerID != sellerID {
		return nil, models.ErrForbidden
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		cat := category.Migrate(*req.Category)
		if !category.IsValid(cat) {
			return nil, fmt.Errorf("unknown category %q", *req.Category)
		}
		updates["category"] = cat
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update drink: %w", err)
		}
	}

	return s.GetDrink(id)
}

func (s *drinkService) DeleteDrink(sellerID, id uuid.UUID) error {
	drink, err := s.GetDrink(id)
	if err != nil {
		return err
	}
	if drink.SellerID != sellerID {
		return models.ErrForbidden
	}

	return s.repo.Delete(id)
}

// ListDrinks serves browse and search queries. Pages are cached in
// Redis under a hash of the filter set; cache failures fall through
// to the database.
func (s *drinkService) ListDrinks(ctx context.Context, filters *models.DrinkFilters, page, limit int) ([]models.Drink, *models.PaginationInfo, error) {
	key := cache.Key(filters, page, limit)

	if s.searchCache != nil {
		cached, err := s.searchCache.Get(ctx, key)
		if err != nil {
			s.logger.WithError(err).Warn("Search cache read failed")
		} else if cached != nil {
			return cached.Drinks, cached.Pagination, nil
		}
	}

	drinks, pagination, err := s.repo.List(filters, page, limit)
	if err != nil {
		return nil, nil, err
	}

	if s.searchCache != nil {
		if err := s.searchCache.Set(ctx, key, &cache.CachedDrinkPage{Drinks: drinks, Pagination: pagination}); err != nil {
			s.logger.WithError(err).Warn("Search cache write failed")
		}
	}

	return drinks, pagination, nil
}
