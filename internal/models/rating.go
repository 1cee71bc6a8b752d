package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is a 1-5 star rating of a seller by a user. One row per
// (user, seller) pair; re-rating updates the existing row.
type Rating struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_seller,priority:1"`
	SellerID  uuid.UUID `json:"sellerId" gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_seller,priority:2"`
	Score     int       `json:"score" gorm:"not null"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RateSellerRequest represents a request to rate a seller
type RateSellerRequest struct {
	Score   int     `json:"score" binding:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

// RatingResponse represents a single rating response
type RatingResponse struct {
	Success bool    `json:"success"`
	Data    *Rating `json:"data"`
}

// RatingListResponse represents a list of ratings response
type RatingListResponse struct {
	Success bool                 `json:"success"`
	Data    []Rating             `json:"data"`
	Summary *SellerRatingSummary `json:"summary,omitempty"`
}

// TableName returns the table name for the Rating model
func (Rating) TableName() string {
	return "ratings"
}

// BeforeCreate assigns an ID when the database does not
func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
