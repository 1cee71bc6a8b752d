package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"drinks-marketplace-service/internal/models"
)

type FavoriteRepository interface {
	// Toggle adds the seller to the user's favorites, or removes it if
	// already present. Returns the resulting state (true = favorited).
	Toggle(userID, sellerID uuid.UUID) (bool, error)
	ListByUser(userID uuid.UUID) ([]models.Favorite, error)
	IsFavorited(userID, sellerID uuid.UUID) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Toggle(userID, sellerID uuid.UUID) (bool, error) {
	var existing models.Favorite
	err := r.db.Where("user_id = ? AND seller_id = ?", userID, sellerID).
		First(&existing).Error

	if err == nil {
		if err := r.db.Delete(&existing).Error; err != nil {
			return true, err
		}
		return false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	fav := models.Favorite{
		UserID:    userID,
		SellerID:  sellerID,
		CreatedAt: time.Now(),
	}
	if err := r.db.Create(&fav).Error; err != nil {
		return false, err
	}

	return true, nil
}

func (r *favoriteRepository) ListByUser(userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Where("user_id = ?", userID).
		Preload("Seller").
		Order("created_at DESC").
		Find(&favorites).Error

	return favorites, err
}

func (r *favoriteRepository) IsFavorited(userID, sellerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND seller_id = ?", userID, sellerID).
		Count(&count).Error

	return count > 0, err
}
