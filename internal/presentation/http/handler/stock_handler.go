package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
	"github.com/solarline/pos-gateway/internal/upstream"
)

// StockHandler handles stock movement and stock take HTTP requests
type StockHandler struct {
	client *upstream.Client
}

// NewStockHandler creates a new stock handler
func NewStockHandler(client *upstream.Client) *StockHandler {
	return &StockHandler{client: client}
}

// Movements handles listing stock movements
func (h *StockHandler) Movements(c *gin.Context) {
	movements, err := h.client.Stock.Movements(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock movements retrieved successfully", movements)
}

// CreateMovement handles recording a stock movement
func (h *StockHandler) CreateMovement(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movement, err := h.client.Stock.CreateMovement(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Stock movement recorded successfully", movement)
}

// Takes handles listing stock takes
func (h *StockHandler) Takes(c *gin.Context) {
	takes, err := h.client.Stock.Takes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock takes retrieved successfully", takes)
}

// CreateTake handles recording a stock take
func (h *StockHandler) CreateTake(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	take, err := h.client.Stock.CreateTake(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Stock take recorded successfully", take)
}

// DeleteTake handles deleting a stock take
func (h *StockHandler) DeleteTake(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid stock take ID")
		return
	}

	if err := h.client.Stock.DeleteTake(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
