package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"drinks-marketplace-service/internal/category"
	"drinks-marketplace-service/internal/config"
	"drinks-marketplace-service/internal/middleware"
	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/services"
)

type DrinkHandler struct {
	drinks  services.DrinkService
	sellers services.SellerService
	cfg     *config.Config
}

func NewDrinkHandler(drinks services.DrinkService, sellers services.SellerService, cfg *config.Config) *DrinkHandler {
	return &DrinkHandler{
		drinks:  drinks,
		sellers: sellers,
		cfg:     cfg,
	}
}

// sellerForUser resolves the caller's seller profile, writing the
// error response on failure.
func (h *DrinkHandler) sellerForUser(c *gin.Context) (*models.Seller, bool) {
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

// CreateDrink creates a drink listing for the caller's shop
// @Summary Create drink listing
// @Tags drinks
// @Accept json
// @Produce json
// @Param drink body models.CreateDrinkRequest true "Drink data"
// @Success 201 {object} models.DrinkResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /drinks [post]
func (h *DrinkHandler) CreateDrink(c *gin.Context) {
	seller, ok := h.sellerForUser(c)
	if !ok {
		return
	}

	var req models.CreateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	drink, err := h.drinks.CreateDrink(seller.ID, &req)
	if err != nil {
		badRequest(c, "CREATE_FAILED", err.Error())
		return
	}

	c.JSON(http.StatusCreated, models.DrinkResponse{Success: true, Data: drink})
}

// GetDrink retrieves a drink by ID
// @Summary Get drink by ID
// @Tags drinks
// @Produce json
// @Param id path string true "Drink ID"
// @Success 200 {object} models.DrinkResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /public/drinks/{id} [get]
func (h *DrinkHandler) GetDrink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "INVALID_ID", "Invalid drink ID format")
		return
	}

	drink, err := h.drinks.GetDrink(id)
	if err != nil {
		notFound(c, "Drink not found")
		return
	}

	c.JSON(http.StatusOK, models.DrinkResponse{Success: true, Data: drink})
}

// UpdateDrink updates a drink listing owned by the caller
// @Summary Update drink listing
// @Tags drinks
// @Accept json
// @Produce json
// @Param id path string true "Drink ID"
// @Param drink body models.UpdateDrinkRequest true "Updates"
// @Success 200 {object} models.DrinkResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /drinks/{id} [put]
func (h *DrinkHandler) UpdateDrink(c *gin.Context) {
	seller, ok := h.sellerForUser(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "INVALID_ID", "Invalid drink ID format")
		return
	}

	var req models.UpdateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	drink, err := h.drinks.UpdateDrink(seller.ID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			notFound(c, "Drink not found")
		case errors.Is(err, models.ErrForbidden):
			forbidden(c, "You can only update your own listings")
		default:
			badRequest(c, "UPDATE_FAILED", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, models.DrinkResponse{Success: true, Data: drink})
}

// DeleteDrink removes a drink listing owned by the caller
// @Summary Delete drink listing
// @Tags drinks
// @Produce json
// @Param id path string true "Drink ID"
// @Success 200 {object} models.MessageResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /drinks/{id} [delete]
func (h *DrinkHandler) DeleteDrink(c *gin.Context) {
	seller, ok := h.sellerForUser(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "INVALID_ID", "Invalid drink ID format")
		return
	}

	if err := h.drinks.DeleteDrink(seller.ID, id); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			notFound(c, "Drink not found")
		case errors.Is(err, models.ErrForbidden):
			forbidden(c, "You can only delete your own listings")
		default:
			internalError(c, "DELETE_FAILED", "Failed to delete drink")
		}
		return
	}

	msg := "Drink deleted"
	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: &msg})
}

// ListDrinks browses and searches drink listings
// @Summary Browse drinks
// @Description List available drinks with category, price and text-search filters
// @Tags drinks
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param seller query string false "Filter by seller ID"
// @Param category query string false "Filter by category (legacy labels accepted)"
// @Param q query string false "Text search over name and description"
// @Success 200 {object} models.DrinkListResponse
// @Router /public/drinks [get]
func (h *DrinkHandler) ListDrinks(c *gin.Context) {
	page, limit := pagination(c, h.cfg.DefaultPageSize, h.cfg.MaxPageSize)

	available := true
	filters := &models.DrinkFilters{IsAvailable: &available}

	if sellerStr := c.Query("seller"); sellerStr != "" {
		sellerID, err := uuid.Parse(sellerStr)
		if err != nil {
			badRequest(c, "INVALID_ID", "Invalid seller ID format")
			return
		}
		filters.SellerID = &sellerID
	}
	if cat := c.Query("category"); cat != "" {
		canonical := category.Migrate(cat)
		filters.Category = &canonical
	}
	if q := c.Query("q"); q != "" {
		filters.Search = &q
	}

	drinks, paginationInfo, err := h.drinks.ListDrinks(c.Request.Context(), filters, page, limit)
	if err != nil {
		internalError(c, "LIST_FAILED", "Failed to list drinks")
		return
	}

	c.JSON(http.StatusOK, models.DrinkListResponse{
		Success:    true,
		Data:       drinks,
		Pagination: paginationInfo,
	})
}

// ListCategories returns the canonical drink categories
// @Summary List categories
// @Tags drinks
// @Produce json
// @Success 200 {object} object{success=bool,data=[]string}
// @Router /public/categories [get]
func (h *DrinkHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": category.All()})
}
