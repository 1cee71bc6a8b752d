package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"drinks-marketplace-service/internal/events"
	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/repository"
	"drinks-marketplace-service/internal/whatsapp"
)

// OrderService handles checkout and order history
type OrderService interface {
	// Checkout turns a submitted cart into an order row and a
	// WhatsApp deep link. customerID is nil for guest checkouts.
	Checkout(ctx context.Context, customerID *uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error)
	ListSellerOrders(sellerID uuid.UUID, page, limit int) ([]models.Order, *models.PaginationInfo, error)
	ListCustomerOrders(customerID uuid.UUID, page, limit int) ([]models.Order, *models.PaginationInfo, error)
	ListSellerOrdersSince(sellerID uuid.UUID, since time.Time) ([]models.Order, error)
}

type orderService struct {
	orders    repository.OrderRepository
	sellers   repository.SellerRepository
	publisher *events.Publisher
}

// NewOrderService creates a new order service instance
func NewOrderService(orders repository.OrderRepository, sellers repository.SellerRepository, publisher *events.Publisher) OrderService {
	return &orderService{
		orders:    orders,
		sellers:   sellers,
		publisher: publisher,
	}
}

// Checkout computes the total server-side, renders the order message,
// builds the wa.me link and persists the order row. The row is an
// optimistic record of the hand-off: delivery happens in WhatsApp
// between two humans and is never confirmed back to this service.
// Submitting the same cart twice creates two rows by design.
func (s *orderService) Checkout(ctx context.Context, customerID *uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error) {
	seller, err := s.sellers.GetByID(req.SellerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load seller: %w", err)
	}
	if !seller.IsActive || seller.Status != models.SellerStatusActive {
		return nil, fmt.Errorf("seller %s is not accepting orders", seller.BusinessName)
	}

	if len(req.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	var total float64
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("invalid quantity for %s", item.Name)
		}
		total += item.UnitPrice * float64(item.Quantity)
	}

	message := whatsapp.FormatOrderMessage(seller, req, total)
	link, err := whatsapp.BuildLink(seller.Phone, message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSellerUnreachable, err)
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize cart: %w", err)
	}

	order := &models.Order{
		SellerID:      req.SellerID,
		CustomerID:    customerID,
		Items:         itemsJSON,
		Total:         total,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PickupTime:    req.PickupTime,
		Instructions:  req.Instructions,
		WhatsAppLink:  link,
	}

	if err := s.orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	if s.publisher != nil {
		s.publisher.PublishOrderCreated(ctx, order)
	}

	return &models.CheckoutResult{
		Order:        order,
		WhatsAppLink: link,
		Message:      message,
	}, nil
}

func (s *orderService) ListSellerOrders(sellerID uuid.UUID, page, limit int) ([]models.Order, *models.PaginationInfo, error) {
	return s.orders.ListBySeller(sellerID, page, limit)
}

func (s *orderService) ListCustomerOrders(customerID uuid.UUID, page, limit int) ([]models.Order, *models.PaginationInfo, error) {
	return s.orders.ListByCustomer(customerID, page, limit)
}

func (s *orderService) ListSellerOrdersSince(sellerID uuid.UUID, since time.Time) ([]models.Order, error) {
	return s.orders.ListBySellerSince(sellerID, since)
}
