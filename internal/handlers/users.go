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

// UsersHandler serves the admin-only account management routes.
type UsersHandler struct {
	users     *repository.UserRepository
	validator *validator.Validate
}

func NewUsersHandler(users *repository.UserRepository, v *validator.Validate) *UsersHandler {
	return &UsersHandler{users: users, validator: v}
}

// List returns every account.
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.users.All(c.Request.Context())
	if err != nil {
		zap.L().Error("listing users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create adds an account with admin-chosen role and permissions.
func (h *UsersHandler) Create(c *gin.Context) {
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
		zap.L().Error("creating user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
}

// Update rewrites name, role and permission flags.
func (h *UsersHandler) Update(c *gin.Context) {
	var req validation.UpdateUserRequest
	if err := validation.BindAndValidate(c, &req, h.validator); err != nil {
		return
	}

	user, err := h.users.UpdateAccount(c.Request.Context(), c.Param("userID"), req.Name, req.Role, req.Permissions)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		zap.L().Error("updating user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": user})
}

// Delete removes an account.
func (h *UsersHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("userID")); err != nil {
		zap.L().Error("deleting user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
