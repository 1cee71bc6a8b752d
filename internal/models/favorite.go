package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite marks a seller as a favorite of a user
type Favorite struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_user_seller,priority:1"`
	SellerID  uuid.UUID `json:"sellerId" gorm:"type:uuid;not null;uniqueIndex:idx_user_seller,priority:2"`
	CreatedAt time.Time `json:"createdAt"`

	Seller *Seller `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
}

// ToggleFavoriteResponse reports the state after a toggle
type ToggleFavoriteResponse struct {
	Success   bool `json:"success"`
	Favorited bool `json:"favorited"`
}

// FavoriteListResponse represents a list of favorites response
type FavoriteListResponse struct {
	Success bool       `json:"success"`
	Data    []Favorite `json:"data"`
}

// TableName returns the table name for the Favorite model
func (Favorite) TableName() string {
	return "favorites"
}

// BeforeCreate assigns an ID when the database does not
func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
