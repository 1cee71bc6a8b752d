package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Drink represents a drink listing offered by a seller
type Drink struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SellerID    uuid.UUID `json:"sellerId" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description,omitempty"`
	// Category holds a canonical category value (see internal/category)
	Category    string    `json:"category" gorm:"not null;index"`
	// Price in Moroccan dirhams
	Price       float64   `json:"price" gorm:"not null"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	IsAvailable bool      `json:"isAvailable" gorm:"default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	DeletedAt   *gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	// Relationship
	Seller *Seller `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
}

// CreateDrinkRequest represents a request to create a drink listing
type CreateDrinkRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// UpdateDrinkRequest represents a request to update a drink listing
type UpdateDrinkRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

// DrinkFilters represents filters for drink queries
type DrinkFilters struct {
	SellerID    *uuid.UUID `json:"sellerId,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Search      *string    `json:"search,omitempty"`
	IsAvailable *bool      `json:"isAvailable,omitempty"`
	PriceMin    *float64   `json:"priceMin,omitempty"`
	PriceMax    *float64   `json:"priceMax,omitempty"`
}

// DrinkResponse represents a single drink response
type DrinkResponse struct {
	Success bool    `json:"success"`
	Data    *Drink  `json:"data"`
	Message *string `json:"message,omitempty"`
}

// DrinkListResponse represents a list of drinks response
type DrinkListResponse struct {
	Success    bool            `json:"success"`
	Data       []Drink         `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}

// TableName returns the table name for the Drink model
func (Drink) TableName() string {
	return "drinks"
}

// BeforeCreate assigns an ID when the database does not
func (d *Drink) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
