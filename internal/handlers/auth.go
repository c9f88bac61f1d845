package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/auth"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/repository"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/validation"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and profile routes.
type AuthHandler struct {
	users     *repository.UserRepository
	jwt       *auth.JWTService
	validator *validator.Validate
}

func NewAuthHandler(users *repository.UserRepository, jwt *auth.JWTService, v *validator.Validate) *AuthHandler {
	return &AuthHandler{users: users, jwt: jwt, validator: v}
}

// Register creates a self-service account with no permissions granted.
func (h *AuthHandler) Register(c *gin.Context) {
	var req validation.RegisterRequest
	if err := validation.BindAndValidate(c, &req, h.validator); err != nil {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	user := &models.User{
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
		Role:     models.RoleUser,
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Permissions != nil {
		user.Permissions = *req.Permissions
	}

	if err := h.users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User with this email already exists"})
			return
		}
		zap.L().Error("registering user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered"})
}

// Login verifies credentials and issues a token carrying role and permission
// flags for the dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	var req validation.LoginRequest
	if err := validation.BindAndValidate(c, &req, h.validator); err != nil {
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		zap.L().Error("login lookup", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := h.jwt.Generate(user)
	if err != nil {
		zap.L().Error("signing token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"name":        user.Name,
		"email":       user.Email,
		"role":        user.Role,
		"permissions": user.Permissions,
	})
}

// GetProfile returns the authenticated user's account.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims := auth.ClaimsFrom(c)
	user, err := h.users.FindByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile changes the authenticated user's display name.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req validation.UpdateProfileRequest
	if err := validation.BindAndValidate(c, &req, h.validator); err != nil {
		return
	}

	claims := auth.ClaimsFrom(c)
	user, err := h.users.UpdateName(c.Request.Context(), claims.UserID, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}
