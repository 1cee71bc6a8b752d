package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"drinks-marketplace-service/internal/models"
)

type DrinkRepository interface {
	Create(drink *models.Drink) error
	GetByID(id uuid.UUID) (*models.Drink, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	List(filters *models.DrinkFilters, page, limit int) ([]models.Drink, *models.PaginationInfo, error)
}

type drinkRepository struct {
	db *gorm.DB
}

func NewDrinkRepository(db *gorm.DB) DrinkRepository {
	return &drinkRepository{db: db}
}

func (r *drinkRepository) Create(drink *models.Drink) error {
	drink.CreatedAt = time.Now()
	drink.UpdatedAt = time.Now()

	return r.db.Create(drink).Error
}

func (r *drinkRepository) GetByID(id uuid.UUID) (*models.Drink, error) {
	var drink models.Drink
	err := r.db.Where("id = ?", id).
		Preload("Seller").
		First(&drink).Error

	if err != nil {
		return nil, err
	}

	return &drink, nil
}

func (r *drinkRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result := r.db.Model(&models.Drink{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *drinkRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Drink{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *drinkRepository) List(filters *models.DrinkFilters, page, limit int) ([]models.Drink, *models.PaginationInfo, error) {
	query := r.db.Model(&models.Drink{})

	if filters != nil {
		if filters.SellerID != nil {
			query = query.Where("seller_id = ?", *filters.SellerID)
		}
		if filters.Category != nil {
			query = query.Where("category = ?", *filters.Category)
		}
		if filters.IsAvailable != nil {
			query = query.Where("is_available = ?", *filters.IsAvailable)
		}
		if filters.Search != nil && *filters.Search != "" {
			pattern := "%" + *filters.Search + "%"
			query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
		}
		if filters.PriceMin != nil {
			query = query.Where("price >= ?", *filters.PriceMin)
		}
		if filters.PriceMax != nil {
			query = query.Where("price <= ?", *filters.PriceMax)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var drinks []models.Drink
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&drinks).Error

	if err != nil {
		return nil, nil, err
	}

	return drinks, models.NewPaginationInfo(page, limit, total), nil
}
