package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"drinks-marketplace-service/internal/middleware"
	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/phone"
	"drinks-marketplace-service/internal/repository"
)

const tokenLifetime = 7 * 24 * time.Hour

// AuthHandler handles registration, login and profile updates
type AuthHandler struct {
	users     repository.UserRepository
	jwtSecret []byte
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users repository.UserRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		users:     users,
		jwtSecret: []byte(jwtSecret),
	}
}

// Register creates a new account
// @Summary Register a new account
// @Description Create a customer or seller account with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	if req.Phone != nil && *req.Phone != "" {
		res := phone.Validate(*req.Phone)
		if !res.IsValid {
			badRequest(c, "INVALID_PHONE", res.ErrorMessage)
			return
		}
		req.Phone = &res.CleanNumber
	}

	if existing, _ := h.users.GetByEmail(req.Email); existing != nil {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "EMAIL_EXISTS",
				Message: "An account with this email already exists",
			},
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, "REGISTER_FAILED", "Failed to create account")
		return
	}

	role := models.UserRoleCustomer
	if req.Role != nil && *req.Role == models.UserRoleSeller {
		role = models.UserRoleSeller
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
		Phone:        req.Phone,
		Role:         role,
	}

	if err := h.users.Create(user); err != nil {
		internalError(c, "REGISTER_FAILED", "Failed to create account")
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

// Login authenticates an account
// @Summary Log in
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	user, err := h.users.GetByEmail(req.Email)
	if err != nil {
		// Same response as a wrong password so the endpoint does not
		// reveal which emails are registered
		h.invalidCredentials(c)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		h.invalidCredentials(c)
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

// Me returns the authenticated user's profile
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorizedError(c)
		return
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		notFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, models.UserResponse{Success: true, Data: user})
}

// UpdateMe updates the authenticated user's profile
// @Summary Update own profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.UpdateUserRequest true "Profile updates"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /me [put]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorizedError(c)
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Phone != nil {
		res := phone.Validate(*req.Phone)
		if !res.IsValid {
			badRequest(c, "INVALID_PHONE", res.ErrorMessage)
			return
		}
		updates["phone"] = res.CleanNumber
	}

	if len(updates) > 0 {
		if err := h.users.Update(userID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				notFound(c, "User not found")
				return
			}
			internalError(c, "UPDATE_FAILED", "Failed to update profile")
			return
		}
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		notFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, models.UserResponse{Success: true, Data: user})
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User) {
	expires := time.Now().Add(tokenLifetime)

	claims := middleware.Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
	if err != nil {
		internalError(c, "TOKEN_FAILED", "Failed to issue token")
		return
	}

	c.JSON(status, models.AuthResponse{
		Success: true,
		Token:   token,
		User:    user,
		Expires: expires,
	})
}

func (h *AuthHandler) invalidCredentials(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    "INVALID_CREDENTIALS",
			Message: "Invalid email or password",
		},
	})
}
