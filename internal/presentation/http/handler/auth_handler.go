package handler

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/application/service"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/request"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
	"github.com/solarline/pos-gateway/pkg/apperror"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid username or password")
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// Logout handles user logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), *sessionID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logged out successfully", nil)
}

// Me returns the user snapshot captured at login
func (h *AuthHandler) Me(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	raw, _ := userVal.([]byte)

	var user map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &user)
	}

	response.OK(c, "User retrieved successfully", user)
}
