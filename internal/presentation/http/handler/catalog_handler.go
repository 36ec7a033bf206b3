package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
	"github.com/solarline/pos-gateway/internal/upstream"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	client *upstream.Client
}

// NewProductHandler creates a new product handler
func NewProductHandler(client *upstream.Client) *ProductHandler {
	return &ProductHandler{client: client}
}

// List handles listing products, with optional search
func (h *ProductHandler) List(c *gin.Context) {
	if search := c.Query("search"); search != "" {
		result, err := h.client.Products.Search(c.Request.Context(), search)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Products retrieved successfully", result)
		return
	}

	result, err := h.client.Products.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", result)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.client.Products.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.client.Products.Create(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.client.Products.Update(c.Request.Context(), id, body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.client.Products.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CategoryHandler handles product and expense category HTTP requests
type CategoryHandler struct {
	client *upstream.Client
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(client *upstream.Client) *CategoryHandler {
	return &CategoryHandler{client: client}
}

// List handles listing categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.client.Categories.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved successfully", categories)
}

// Create handles creating a category
func (h *CategoryHandler) Create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.client.Categories.Create(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category created successfully", category)
}

// Update handles updating a category
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.client.Categories.Update(c.Request.Context(), id, body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category updated successfully", category)
}

// Delete handles deleting a category
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.client.Categories.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListExpenseCategories handles listing expense categories
func (h *CategoryHandler) ListExpenseCategories(c *gin.Context) {
	categories, err := h.client.Categories.ListExpenseCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense categories retrieved successfully", categories)
}

// CreateExpenseCategory handles creating an expense category
func (h *CategoryHandler) CreateExpenseCategory(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.client.Categories.CreateExpenseCategory(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Expense category created successfully", category)
}
