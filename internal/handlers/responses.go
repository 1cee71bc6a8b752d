package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"drinks-marketplace-service/internal/models"
)

// Shared response helpers for the handler package

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Error:   models.Error{Code: code, Message: message},
	})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Success: false,
		Error:   models.Error{Code: "NOT_FOUND", Message: message},
	})
}

func forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, models.ErrorResponse{
		Success: false,
		Error:   models.Error{Code: "FORBIDDEN", Message: message},
	})
}

func internalError(c *gin.Context, code, message string) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Error:   models.Error{Code: code, Message: message},
	})
}

func unauthorizedError(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Success: false,
		Error:   models.Error{Code: "UNAUTHORIZED", Message: "Authentication required"},
	})
}

// pagination reads page/limit query params with the configured bounds
func pagination(c *gin.Context, defaultLimit, maxLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}
