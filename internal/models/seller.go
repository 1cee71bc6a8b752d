package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SellerStatus represents the status of a seller
type SellerStatus string

const (
	SellerStatusPending   SellerStatus = "PENDING"
	SellerStatusActive    SellerStatus = "ACTIVE"
	SellerStatusSuspended SellerStatus = "SUSPENDED"
)

// Seller represents a drink seller on the marketplace
type Seller struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID    `json:"userId" gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName string       `json:"businessName" gorm:"not null"`
	Description  *string      `json:"description,omitempty"`
	// Phone is stored normalized (E.164 digits without the plus, e.g. 212606060606)
	Phone         string       `json:"phone" gorm:"not null"`
	Address       string       `json:"address" gorm:"not null"`
	City          *string      `json:"city,omitempty" gorm:"index"`
	Latitude      *float64     `json:"latitude,omitempty"`
	Longitude     *float64     `json:"longitude,omitempty"`
	Status        SellerStatus `json:"status" gorm:"not null;default:'PENDING'"`
	IsActive      bool         `json:"isActive" gorm:"default:true"`
	BusinessHours *JSON        `json:"businessHours,omitempty" gorm:"type:jsonb"`
	AvatarURL     *string      `json:"avatarUrl,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
	DeletedAt     *gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	// Relationships
	Drinks []Drink `json:"drinks,omitempty" gorm:"foreignKey:SellerID"`
}

// CreateSellerRequest represents a request to create a seller profile
type CreateSellerRequest struct {
	BusinessName  string   `json:"businessName" binding:"required"`
	Description   *string  `json:"description,omitempty"`
	Phone         string   `json:"phone" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	City          *string  `json:"city,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	BusinessHours *JSON    `json:"businessHours,omitempty"`
	AvatarURL     *string  `json:"avatarUrl,omitempty"`
}

// UpdateSellerRequest represents a request to update a seller profile
type UpdateSellerRequest struct {
	BusinessName  *string  `json:"businessName,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	Address       *string  `json:"address,omitempty"`
	City          *string  `json:"city,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	IsActive      *bool    `json:"isActive,omitempty"`
	BusinessHours *JSON    `json:"businessHours,omitempty"`
	AvatarURL     *string  `json:"avatarUrl,omitempty"`
}

// SellerFilters represents filters for seller queries
type SellerFilters struct {
	Statuses []SellerStatus `json:"statuses,omitempty"`
	Cities   []string       `json:"cities,omitempty"`
	Category *string        `json:"category,omitempty"`
	IsActive *bool          `json:"isActive,omitempty"`
}

// SellerResponse represents a single seller response
type SellerResponse struct {
	Success bool    `json:"success"`
	Data    *Seller `json:"data"`
	Message *string `json:"message,omitempty"`
}

// SellerListResponse represents a list of sellers response
type SellerListResponse struct {
	Success    bool            `json:"success"`
	Data       []Seller        `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}

// NearbySeller is a seller with its distance from the query point
type NearbySeller struct {
	Seller
	DistanceKm float64 `json:"distanceKm"`
}

// NearbySellerListResponse represents sellers ordered by distance
type NearbySellerListResponse struct {
	Success bool           `json:"success"`
	Data    []NearbySeller `json:"data"`
}

// SellerRatingSummary aggregates ratings for a seller
type SellerRatingSummary struct {
	SellerID uuid.UUID `json:"sellerId"`
	Average  float64   `json:"average"`
	Count    int64     `json:"count"`
}

// TableName returns the table name for the Seller model
func (Seller) TableName() string {
	return "sellers"
}

// BeforeCreate assigns an ID when the database does not
func (s *Seller) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
