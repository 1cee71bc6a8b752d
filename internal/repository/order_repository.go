package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"drinks-marketplace-service/internal/models"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uuid.UUID) (*models.Order, error)
	ListBySeller(sellerID uuid.UUID, page, limit int) ([]models.Order, *models.PaginationInfo, error)
	ListByCustomer(customerID uuid.UUID, page, limit int) ([]models.Order, *models.PaginationInfo, error)
	ListBySellerSince(sellerID uuid.UUID, since time.Time) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	order.CreatedAt = time.Now()

	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepository) ListBySeller(sellerID uuid.UUID, page, limit int) ([]models.Order, *models.PaginationInfo, error) {
	return r.list(r.db.Where("seller_id = ?", sellerID), page, limit)
}

func (r *orderRepository) ListByCustomer(customerID uuid.UUID, page, limit int) ([]models.Order, *models.PaginationInfo, error) {
	return r.list(r.db.Where("customer_id = ?", customerID), page, limit)
}

func (r *orderRepository) ListBySellerSince(sellerID uuid.UUID, since time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Where("seller_id = ? AND created_at >= ?", sellerID, since).
		Order("created_at DESC").
		Find(&orders).Error

	return orders, err
}

func (r *orderRepository) list(query *gorm.DB, page, limit int) ([]models.Order, *models.PaginationInfo, error) {
	query = query.Model(&models.Order{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var orders []models.Order
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error

	if err != nil {
		return nil, nil, err
	}

	return orders, models.NewPaginationInfo(page, limit, total), nil
}
