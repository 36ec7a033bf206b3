package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
	"github.com/solarline/pos-gateway/internal/upstream"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	client *upstream.Client
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(client *upstream.Client) *CustomerHandler {
	return &CustomerHandler{client: client}
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.client.Customers.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customers retrieved successfully", customers)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.client.Customers.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer retrieved successfully", customer)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.client.Customers.Create(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Customer created successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.client.Customers.Update(c.Request.Context(), id, body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.client.Customers.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ResellerHandler handles reseller-related HTTP requests
type ResellerHandler struct {
	client *upstream.Client
}

// NewResellerHandler creates a new reseller handler
func NewResellerHandler(client *upstream.Client) *ResellerHandler {
	return &ResellerHandler{client: client}
}

// List handles listing resellers
func (h *ResellerHandler) List(c *gin.Context) {
	resellers, err := h.client.Resellers.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Resellers retrieved successfully", resellers)
}

// Get handles getting a single reseller
func (h *ResellerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid reseller ID")
		return
	}

	reseller, err := h.client.Resellers.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Reseller retrieved successfully", reseller)
}

// Create handles creating a reseller
func (h *ResellerHandler) Create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	reseller, err := h.client.Resellers.Create(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Reseller created successfully", reseller)
}

// Update handles updating a reseller
func (h *ResellerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid reseller ID")
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	reseller, err := h.client.Resellers.Update(c.Request.Context(), id, body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Reseller updated successfully", reseller)
}

// Delete handles deleting a reseller
func (h *ResellerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid reseller ID")
		return
	}

	if err := h.client.Resellers.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
