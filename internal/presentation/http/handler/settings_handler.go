package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
	"github.com/solarline/pos-gateway/internal/upstream"
)

// SettingsHandler handles business profile HTTP requests
type SettingsHandler struct {
	client *upstream.Client
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(client *upstream.Client) *SettingsHandler {
	return &SettingsHandler{client: client}
}

// GetProfile returns the business profile, or null when none exists yet
func (h *SettingsHandler) GetProfile(c *gin.Context) {
	profile, err := h.client.Business.Profile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Business profile retrieved successfully", profile)
}

// CreateProfile handles creating the business profile
func (h *SettingsHandler) CreateProfile(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.client.Business.Create(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Business profile created successfully", profile)
}

// UpdateProfile handles updating the business profile
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.client.Business.Update(c.Request.Context(), id, body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Business profile updated successfully", profile)
}
