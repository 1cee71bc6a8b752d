package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"drinks-marketplace-service/internal/middleware"
	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/repository"
	"drinks-marketplace-service/internal/services"
)

type FavoriteHandler struct {
	favorites repository.FavoriteRepository
	sellers   services.SellerService
}

func NewFavoriteHandler(favorites repository.FavoriteRepository, sellers services.SellerService) *FavoriteHandler {
	return &FavoriteHandler{
		favorites: favorites,
		sellers:   sellers,
	}
}

// ToggleFavorite adds or removes a seller from the caller's favorites
// @Summary Toggle favorite seller
// @Description Add the seller to the caller's favorites, or remove it when already present
// @Tags favorites
// @Produce json
// @Param id path string true "Seller ID"
// @Success 200 {object} models.ToggleFavoriteResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /sellers/{id}/favorite [post]
func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorizedError(c)
		return
	}

	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "INVALID_ID", "Invalid seller ID format")
		return
	}

	if _, err := h.sellers.GetSeller(sellerID); err != nil {
		notFound(c, "Seller not found")
		return
	}

	favorited, err := h.favorites.Toggle(userID, sellerID)
	if err != nil {
		internalError(c, "TOGGLE_FAILED", "Failed to update favorites")
		return
	}

	c.JSON(http.StatusOK, models.ToggleFavoriteResponse{Success: true, Favorited: favorited})
}

// ListFavorites lists the caller's favorite sellers
// @Summary List favorite sellers
// @Tags favorites
// @Produce json
// @Success 200 {object} models.FavoriteListResponse
// @Security BearerAuth
// @Router /favorites [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorizedError(c)
		return
	}

	favorites, err := h.favorites.ListByUser(userID)
	if err != nil {
		internalError(c, "LIST_FAILED", "Failed to list favorites")
		return
	}

	c.JSON(http.StatusOK, models.FavoriteListResponse{Success: true, Data: favorites})
}
