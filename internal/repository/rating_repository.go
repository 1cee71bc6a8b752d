package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"drinks-marketplace-service/internal/models"
)

type RatingRepository interface {
	// Upsert creates the user's rating of a seller or updates the
	// existing one. One rating per (user, seller) pair.
	Upsert(rating *models.Rating) error
	ListBySeller(sellerID uuid.UUID) ([]models.Rating, error)
	GetSummary(sellerID uuid.UUID) (*models.SellerRatingSummary, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Upsert(rating *models.Rating) error {
	var existing models.Rating
	err := r.db.Where("user_id = ? AND seller_id = ?", rating.UserID, rating.SellerID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		rating.CreatedAt = time.Now()
		rating.UpdatedAt = time.Now()
		return r.db.Create(rating).Error
	}
	if err != nil {
		return err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"score":      rating.Score,
		"comment":    rating.Comment,
		"updated_at": now,
	}
	if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
		return err
	}

	rating.ID = existing.ID
	rating.CreatedAt = existing.CreatedAt
	rating.UpdatedAt = now
	return nil
}

func (r *ratingRepository) ListBySeller(sellerID uuid.UUID) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("seller_id = ?", sellerID).
		Order("updated_at DESC").
		Find(&ratings).Error

	return ratings, err
}

func (r *ratingRepository) GetSummary(sellerID uuid.UUID) (*models.SellerRatingSummary, error) {
	summary := models.SellerRatingSummary{SellerID: sellerID}

	row := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0), COUNT(*)").
		Where("seller_id = ?", sellerID).
		Row()

	if err := row.Scan(&summary.Average, &summary.Count); err != nil {
		return nil, err
	}

	return &summary, nil
}
