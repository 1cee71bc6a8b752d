package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleSeller   UserRole = "SELLER"
)

// User represents a marketplace account
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	DisplayName  string    `json:"displayName" gorm:"not null"`
	Phone        *string   `json:"phone,omitempty"`
	Role         UserRole  `json:"role" gorm:"not null;default:'CUSTOMER'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	DeletedAt    *gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email       string    `json:"email" binding:"required,email"`
	Password    string    `json:"password" binding:"required,min=8"`
	DisplayName string    `json:"displayName" binding:"required"`
	Phone       *string   `json:"phone,omitempty"`
	Role        *UserRole `json:"role,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    *User     `json:"user"`
	Expires time.Time `json:"expires"`
}

// UserResponse represents a single user response
type UserResponse struct {
	Success bool  `json:"success"`
	Data    *User `json:"data"`
}

// UpdateUserRequest represents a profile update request
type UpdateUserRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an ID when the database does not
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
