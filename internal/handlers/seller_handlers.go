package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"drinks-marketplace-service/internal/category"
	"drinks-marketplace-service/internal/clients"
	"drinks-marketplace-service/internal/config"
	"drinks-marketplace-service/internal/middleware"
	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/services"
)

type SellerHandler struct {
	service services.SellerService
	geocode *clients.GeocodeClient
	cfg     *config.Config
}

func NewSellerHandler(service services.SellerService, geocode *clients.GeocodeClient, cfg *config.Config) *SellerHandler {
	return &SellerHandler{
		service: service,
		geocode: geocode,
		cfg:     cfg,
	}
}

// CreateSeller creates the caller's seller profile
// @Summary Create seller profile
// @Description Create a seller profile for the authenticated seller account
// @Tags sellers
// @Accept json
// @Produce json
// @Param seller body models.CreateSellerRequest true "Seller data"
// @Success 201 {object} models.SellerResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /sellers [post]
func (h *SellerHandler) CreateSeller(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorizedError(c)
		return
	}

	var req models.CreateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	seller, err := h.service.CreateSeller(userID, &req)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Success: false,
				Error: models.Error{
					Code:    "PROFILE_EXISTS",
					Message: "You already have a seller profile",
				},
			})
			return
		}
		badRequest(c, "CREATE_FAILED", err.Error())
		return
	}

	c.JSON(http.StatusCreated, models.SellerResponse{Success: true, Data: seller})
}

// GetSeller retrieves a seller by ID
// @Summary Get seller by ID
// @Tags sellers
// @Produce json
// @Param id path string true "Seller ID"
// @Success 200 {object} models.SellerResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /public/sellers/{id} [get]
func (h *SellerHandler) GetSeller(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "INVALID_ID", "Invalid seller ID format")
		return
	}

	seller, err := h.service.GetSeller(id)
	if err != nil {
		notFound(c, "Seller not found")
		return
	}

	c.JSON(http.StatusOK, models.SellerResponse{Success: true, Data: seller})
}

// GetMySeller retrieves the caller's seller profile
// @Summary Get own seller profile
// @Tags sellers
// @Produce json
// @Success 200 {object} models.SellerResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /sellers/me [get]
func (h *SellerHandler) GetMySeller(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorizedError(c)
		return
	}

	seller, err := h.service.GetSellerByUser(userID)
	if err != nil {
		notFound(c, "You have no seller profile yet")
		return
	}

	c.JSON(http.StatusOK, models.SellerResponse{Success: true, Data: seller})
}

// UpdateSeller updates the caller's seller profile
// @Summary Update seller profile
// @Tags sellers
// @Accept json
// @Produce json
// @Param id path string true "Seller ID"
// @Param seller body models.UpdateSellerRequest true "Updates"
// @Success 200 {object} models.SellerResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /sellers/{id} [put]
func (h *SellerHandler) UpdateSeller(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorizedError(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "INVALID_ID", "Invalid seller ID format")
		return
	}

	var req models.UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	seller, err := h.service.UpdateSeller(userID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			notFound(c, "Seller not found")
		case errors.Is(err, models.ErrForbidden):
			forbidden(c, "You can only update your own profile")
		default:
			badRequest(c, "UPDATE_FAILED", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, models.SellerResponse{Success: true, Data: seller})
}

// DeleteSeller removes the caller's seller profile
// @Summary Delete seller profile
// @Tags sellers
// @Produce json
// @Param id path string true "Seller ID"
// @Success 200 {object} models.MessageResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /sellers/{id} [delete]
func (h *SellerHandler) DeleteSeller(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorizedError(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "INVALID_ID", "Invalid seller ID format")
		return
	}

	if err := h.service.DeleteSeller(userID, id); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			notFound(c, "Seller not found")
		case errors.Is(err, models.ErrForbidden):
			forbidden(c, "You can only delete your own profile")
		default:
			internalError(c, "DELETE_FAILED", "Failed to delete seller")
		}
		return
	}

	msg := "Seller profile deleted"
	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: &msg})
}

// ListSellers lists sellers with optional filters
// @Summary List sellers
// @Tags sellers
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param city query string false "Filter by city"
// @Param category query string false "Sellers with available drinks in this category (legacy labels accepted)"
// @Success 200 {object} models.SellerListResponse
// @Router /public/sellers [get]
func (h *SellerHandler) ListSellers(c *gin.Context) {
	page, limit := pagination(c, h.cfg.DefaultPageSize, h.cfg.MaxPageSize)

	active := true
	filters := &models.SellerFilters{
		Statuses: []models.SellerStatus{models.SellerStatusActive},
		IsActive: &active,
	}
	if city := c.Query("city"); city != "" {
		filters.Cities = []string{city}
	}
	if cat := c.Query("category"); cat != "" {
		canonical := category.Migrate(cat)
		filters.Category = &canonical
	}

	sellers, paginationInfo, err := h.service.ListSellers(filters, page, limit)
	if err != nil {
		internalError(c, "LIST_FAILED", "Failed to list sellers")
		return
	}

	c.JSON(http.StatusOK, models.SellerListResponse{
		Success:    true,
		Data:       sellers,
		Pagination: paginationInfo,
	})
}

// SearchSellers searches sellers by name, address or city
// @Summary Search sellers
// @Tags sellers
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} models.SellerListResponse
// @Router /public/sellers/search [get]
func (h *SellerHandler) SearchSellers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		badRequest(c, "MISSING_QUERY", "Query parameter q is required")
		return
	}

	page, limit := pagination(c, h.cfg.DefaultPageSize, h.cfg.MaxPageSize)

	sellers, paginationInfo, err := h.service.SearchSellers(query, page, limit)
	if err != nil {
		internalError(c, "SEARCH_FAILED", "Failed to search sellers")
		return
	}

	c.JSON(http.StatusOK, models.SellerListResponse{
		Success:    true,
		Data:       sellers,
		Pagination: paginationInfo,
	})
}

// ListNearbySellers lists sellers ordered by distance
// @Summary List sellers near a point
// @Tags sellers
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param limit query int false "Max results"
// @Success 200 {object} models.NearbySellerListResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /public/sellers/nearby [get]
func (h *SellerHandler) ListNearbySellers(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		badRequest(c, "INVALID_COORDINATES", "Query parameters lat and lon are required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > h.cfg.MaxPageSize {
		limit = 20
	}

	sellers, err := h.service.ListNearby(lat, lon, limit)
	if err != nil {
		internalError(c, "NEARBY_FAILED", "Failed to list nearby sellers")
		return
	}

	c.JSON(http.StatusOK, models.NearbySellerListResponse{Success: true, Data: sellers})
}

// GetProfileStatus reports completeness of a seller profile
// @Summary Get seller profile completeness
// @Description Lists the required fields still missing before the profile can go live
// @Tags sellers
// @Produce json
// @Param id path string true "Seller ID"
// @Success 200 {object} object{success=bool,data=services.ProfileStatus}
// @Security BearerAuth
// @Router /sellers/{id}/profile-status [get]
func (h *SellerHandler) GetProfileStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "INVALID_ID", "Invalid seller ID format")
		return
	}

	status, err := h.service.GetProfileStatus(id)
	if err != nil {
		internalError(c, "STATUS_FAILED", "Failed to compute profile status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": status})
}

// SearchAddresses resolves a free-text address to coordinates
// @Summary Search addresses
// @Description Geocode an address string to coordinate candidates for the nearby-sellers flow
// @Tags sellers
// @Produce json
// @Param q query string true "Address query"
// @Success 200 {object} object{success=bool,data=[]clients.GeocodeResult}
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /public/addresses/search [get]
func (h *SellerHandler) SearchAddresses(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		badRequest(c, "MISSING_QUERY", "Query parameter q is required")
		return
	}

	results, err := h.geocode.Search(c.Request.Context(), query, 5)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "GEOCODING_FAILED",
				Message: "Address lookup is temporarily unavailable",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": results})
}
