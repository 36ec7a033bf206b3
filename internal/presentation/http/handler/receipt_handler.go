package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/application/service"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
	"github.com/solarline/pos-gateway/internal/upstream"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	client         *upstream.Client
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, client *upstream.Client) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService, client: client}
}

// List handles listing receipts
func (h *ReceiptHandler) List(c *gin.Context) {
	receipts, err := h.client.Receipts.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipts retrieved successfully", receipts)
}

// Get handles getting a single receipt
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.client.Receipts.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Download streams the receipt PDF as an attachment
func (h *ReceiptHandler) Download(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	out, err := h.receiptService.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	sendPDF(c, out.Filename, out.PDF, true)
}

// PrintData returns the structured payload the till print view lays out
func (h *ReceiptHandler) PrintData(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	data, err := h.receiptService.PrintData(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt print data retrieved successfully", data)
}

// Share returns a prefilled WhatsApp share link
func (h *ReceiptHandler) Share(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	link, err := h.receiptService.ShareLink(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Share link generated successfully", gin.H{"whatsapp": link})
}

// Delete handles deleting a receipt
func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.client.Receipts.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
