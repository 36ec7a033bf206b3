package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
	"github.com/solarline/pos-gateway/internal/upstream"
)

// CollectionHandler handles payment collection HTTP requests
type CollectionHandler struct {
	client *upstream.Client
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(client *upstream.Client) *CollectionHandler {
	return &CollectionHandler{client: client}
}

// List handles listing payment collections
func (h *CollectionHandler) List(c *gin.Context) {
	collections, err := h.client.Collections.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Collections retrieved successfully", collections)
}

// Get handles getting a single payment collection
func (h *CollectionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	collection, err := h.client.Collections.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Collection retrieved successfully", collection)
}

// Create handles creating a payment collection
func (h *CollectionHandler) Create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	collection, err := h.client.Collections.Create(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Collection created successfully", collection)
}

// Update handles updating a payment collection
func (h *CollectionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	collection, err := h.client.Collections.Update(c.Request.Context(), id, body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Collection updated successfully", collection)
}

// MarkPaid marks a collection as paid out
func (h *CollectionHandler) MarkPaid(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	collection, err := h.client.Collections.MarkPaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Collection marked as paid", collection)
}

// MarkCollected marks a collection as collected
func (h *CollectionHandler) MarkCollected(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	collection, err := h.client.Collections.MarkCollected(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Collection marked as collected", collection)
}

// Delete handles deleting a payment collection
func (h *CollectionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	if err := h.client.Collections.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
