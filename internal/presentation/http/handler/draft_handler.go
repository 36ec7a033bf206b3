package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/application/service"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/request"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
)

// DraftHandler handles form draft autosave HTTP requests
type DraftHandler struct {
	draftService *service.DraftService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *service.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// Save upserts the draft for a form key
func (h *DraftHandler) Save(c *gin.Context) {
	username := GetUsername(c)
	if username == "" {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.draftService.Save(c.Request.Context(), username, req.FormKey, req.Payload); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft saved successfully", nil)
}

// Load returns the stored draft for a form key
func (h *DraftHandler) Load(c *gin.Context) {
	username := GetUsername(c)
	if username == "" {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	formKey := c.Param("form_key")
	draft, err := h.draftService.Load(c.Request.Context(), username, formKey)
	if err != nil {
		response.Error(c, err)
		return
	}
	if draft == nil {
		response.NotFound(c, "No draft found")
		return
	}

	response.OK(c, "Draft retrieved successfully", draft)
}

// List returns all drafts for the current user
func (h *DraftHandler) List(c *gin.Context) {
	username := GetUsername(c)
	if username == "" {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	drafts, err := h.draftService.List(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Drafts retrieved successfully", drafts)
}

// Delete clears the draft for a form key
func (h *DraftHandler) Delete(c *gin.Context) {
	username := GetUsername(c)
	if username == "" {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	formKey := c.Param("form_key")
	if err := h.draftService.Clear(c.Request.Context(), username, formKey); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
