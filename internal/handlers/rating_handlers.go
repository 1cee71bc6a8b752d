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

type RatingHandler struct {
	ratings repository.RatingRepository
	sellers services.SellerService
}

func NewRatingHandler(ratings repository.RatingRepository, sellers services.SellerService) *RatingHandler {
	return &RatingHandler{
		ratings: ratings,
		sellers: sellers,
	}
}

// RateSeller submits or updates the caller's rating of a seller
// @Summary Rate a seller
// @Description Submit a 1 to 5 star rating. Rating the same seller again replaces the previous score.
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path string true "Seller ID"
// @Param rating body models.RateSellerRequest true "Rating"
// @Success 200 {object} models.RatingResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /sellers/{id}/ratings [post]
func (h *RatingHandler) RateSeller(c *gin.Context) {
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

	var req models.RateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	if _, err := h.sellers.GetSeller(sellerID); err != nil {
		notFound(c, "Seller not found")
		return
	}

	rating := &models.Rating{
		UserID:   userID,
		SellerID: sellerID,
		Score:    req.Score,
		Comment:  req.Comment,
	}
	if err := h.ratings.Upsert(rating); err != nil {
		internalError(c, "RATE_FAILED", "Failed to save rating")
		return
	}

	c.JSON(http.StatusOK, models.RatingResponse{Success: true, Data: rating})
}

// ListSellerRatings lists a seller's ratings with the aggregate summary
// @Summary List seller ratings
// @Tags ratings
// @Produce json
// @Param id path string true "Seller ID"
// @Success 200 {object} models.RatingListResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /public/sellers/{id}/ratings [get]
func (h *RatingHandler) ListSellerRatings(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "INVALID_ID", "Invalid seller ID format")
		return
	}

	if _, err := h.sellers.GetSeller(sellerID); err != nil {
		notFound(c, "Seller not found")
		return
	}

	ratings, err := h.ratings.ListBySeller(sellerID)
	if err != nil {
		internalError(c, "LIST_FAILED", "Failed to list ratings")
		return
	}

	summary, err := h.ratings.GetSummary(sellerID)
	if err != nil {
		internalError(c, "LIST_FAILED", "Failed to compute rating summary")
		return
	}

	c.JSON(http.StatusOK, models.RatingListResponse{
		Success: true,
		Data:    ratings,
		Summary: summary,
	})
}
