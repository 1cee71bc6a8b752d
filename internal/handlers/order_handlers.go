package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"drinks-marketplace-service/internal/config"
	"drinks-marketplace-service/internal/middleware"
	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/services"
)

type OrderHandler struct {
	orders  services.OrderService
	sellers services.SellerService
	cfg     *config.Config
}

func NewOrderHandler(orders services.OrderService, sellers services.SellerService, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		orders:  orders,
		sellers: sellers,
		cfg:     cfg,
	}
}

// Checkout submits a cart and returns the WhatsApp hand-off link
// @Summary Checkout
// @Description Compute the order total, record the order and return the wa.me link the client opens
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.CheckoutRequest true "Cart"
// @Success 201 {object} models.CheckoutResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /public/orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	// Guests check out too; the customer ID is attached when present
	var customerID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		customerID = &id
	}

	result, err := h.orders.Checkout(c.Request.Context(), customerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			notFound(c, "Seller not found")
		case errors.Is(err, models.ErrSellerUnreachable):
			// The seller's stored phone cannot carry a WhatsApp link;
			// surfaced explicitly instead of dropping the order
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Success: false,
				Error: models.Error{
					Code:    "SELLER_UNREACHABLE",
					Message: err.Error(),
				},
			})
		default:
			badRequest(c, "CHECKOUT_FAILED", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, models.CheckoutResponse{Success: true, Data: result})
}

// ListMyOrders lists the authenticated customer's order history
// @Summary List own orders
// @Tags orders
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} models.OrderListResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorizedError(c)
		return
	}

	page, limit := pagination(c, h.cfg.DefaultPageSize, h.cfg.MaxPageSize)

	orders, paginationInfo, err := h.orders.ListCustomerOrders(userID, page, limit)
	if err != nil {
		internalError(c, "LIST_FAILED", "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, models.OrderListResponse{
		Success:    true,
		Data:       orders,
		Pagination: paginationInfo,
	})
}

// ListSellerOrders lists orders received by the caller's shop
// @Summary List received orders
// @Tags orders
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} models.OrderListResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /sellers/orders [get]
func (h *OrderHandler) ListSellerOrders(c *gin.Context) {
	seller, ok := h.sellerForUser(c)
	if !ok {
		return
	}

	page, limit := pagination(c, h.cfg.DefaultPageSize, h.cfg.MaxPageSize)

	orders, paginationInfo, err := h.orders.ListSellerOrders(seller.ID, page, limit)
	if err != nil {
		internalError(c, "LIST_FAILED", "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, models.OrderListResponse{
		Success:    true,
		Data:       orders,
		Pagination: paginationInfo,
	})
}

// ExportSellerOrders exports the caller's recent orders as an Excel file
// @Summary Export received orders
// @Description Download the last 90 days of received orders as an .xlsx file
// @Tags orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /sellers/orders/export [get]
func (h *OrderHandler) ExportSellerOrders(c *gin.Context) {
	seller, ok := h.sellerForUser(c)
	if !ok {
		return
	}

	since := time.Now().AddDate(0, 0, -90)
	orders, err := h.orders.ListSellerOrdersSince(seller.ID, since)
	if err != nil {
		internalError(c, "EXPORT_FAILED", "Failed to load orders")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})

	headers := []string{"Order ID", "Date", "Customer", "Customer Phone", "Pickup Time", "Total (Dh)"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, order := range orders {
		values := []interface{}{
			order.ID.String(),
			order.CreatedAt.Format("2006-01-02 15:04"),
			deref(order.CustomerName),
			deref(order.CustomerPhone),
			deref(order.PickupTime),
			order.Total,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		internalError(c, "EXPORT_FAILED", "Failed to write export")
	}
}

// sellerForUser resolves the caller's seller profile, writing the
// error response on failure.
func (h *OrderHandler) sellerForUser(c *gin.Context) (*models.Seller, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorizedError(c)
		return nil, false
	}

	seller, err := h.sellers.GetSellerByUser(userID)
	if err != nil {
		forbidden(c, "A seller profile is required for this operation")
		return nil, false
	}

	return seller, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
