package handlers

import (
	"errors"
	"net/http"

	userRepo "storefront/database/repository/user"
	"storefront/models"
	"storefront/services/user"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the user/role passthrough endpoints.
type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

// GetAllUsers handles GET /users.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Service.GetAllUsers(c.Request.Context())
	if err != nil {
		h.Logger.Error("user list failed", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", err.Error())
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user payload", err.Error())
		return
	}

	usr, err := h.Service.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("user create failed", zap.String("email", req.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user", err.Error())
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// PromoteToAdmin handles PUT /users/admin/:id.
func (h *UserHandler) PromoteToAdmin(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.PromoteToAdmin(c.Request.Context(), id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found", id)
			return
		}
		h.Logger.Error("promote to admin failed", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User promoted to admin"})
}

// CheckAdmin handles GET /users/admin/:email.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.Service.IsAdmin(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("admin check failed", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}
