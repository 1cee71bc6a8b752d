package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderItem is one cart line at checkout time. Quantity is always >= 1:
// the client removes a line instead of submitting a zero quantity.
type OrderItem struct {
	DrinkID   uuid.UUID `json:"drinkId" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	UnitPrice float64   `json:"unitPrice" binding:"required,gt=0"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Note      *string   `json:"note,omitempty"`
}

// Order represents a persisted order-history row. Rows are immutable
// after insert; fulfillment happens over WhatsApp outside this system.
type Order struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SellerID   uuid.UUID  `json:"sellerId" gorm:"type:uuid;not null;index"`
	CustomerID *uuid.UUID `json:"customerId,omitempty" gorm:"type:uuid;index"`
	// Items is the cart snapshot serialized as JSONB
	Items         datatypes.JSON `json:"items" gorm:"not null"`
	Total         float64        `json:"total" gorm:"not null"`
	CustomerName  *string        `json:"customerName,omitempty"`
	CustomerPhone *string        `json:"customerPhone,omitempty"`
	PickupTime    *string        `json:"pickupTime,omitempty"`
	Instructions  *string        `json:"instructions,omitempty"`
	WhatsAppLink  string         `json:"whatsappLink" gorm:"column:whatsapp_link"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// CheckoutRequest represents a cart submitted at checkout
type CheckoutRequest struct {
	SellerID      uuid.UUID   `json:"sellerId" binding:"required"`
	Items         []OrderItem `json:"items" binding:"required,min=1,dive"`
	CustomerName  *string     `json:"customerName,omitempty"`
	CustomerPhone *string     `json:"customerPhone,omitempty"`
	PickupTime    *string     `json:"pickupTime,omitempty"`
	Instructions  *string     `json:"instructions,omitempty"`
}

// CheckoutResult is returned to the client, which opens the WhatsApp
// link itself; the server never dispatches the message.
type CheckoutResult struct {
	Order        *Order `json:"order"`
	WhatsAppLink string `json:"whatsappLink"`
	Message      string `json:"message"`
}

// CheckoutResponse represents a checkout response
type CheckoutResponse struct {
	Success bool            `json:"success"`
	Data    *CheckoutResult `json:"data"`
}

// OrderListResponse represents a list of orders response
type OrderListResponse struct {
	Success    bool            `json:"success"`
	Data       []Order         `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "order_history"
}

// BeforeCreate assigns an ID when the database does not
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
