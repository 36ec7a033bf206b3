package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/application/service"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/request"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
	"github.com/solarline/pos-gateway/internal/upstream"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	client         *upstream.Client
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, client *upstream.Client) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, client: client}
}

// List handles listing invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.client.Invoices.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoices retrieved successfully", invoices)
}

// Get handles getting a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.client.Invoices.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Generate creates the invoice upstream and streams back the rendered PDF
func (h *InvoiceHandler) Generate(c *gin.Context) {
	var req request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.GenerateInput{
		CustomerID: req.Customer,
		Notes:      req.Notes,
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
			return
		}
		input.DueDate = &due
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.ItemInput{
			ProductID: item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	out, err := h.invoiceService.Generate(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	sendPDF(c, out.Filename, out.PDF, true)
}

// Download re-renders a stored invoice as a PDF attachment
func (h *InvoiceHandler) Download(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	out, err := h.invoiceService.Render(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	sendPDF(c, out.Filename, out.PDF, true)
}

// Print renders a stored invoice inline for the browser print dialog
func (h *InvoiceHandler) Print(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	out, err := h.invoiceService.Render(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	sendPDF(c, out.Filename, out.PDF, false)
}

// Share returns prefilled WhatsApp and email share links
func (h *InvoiceHandler) Share(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	whatsapp, email, err := h.invoiceService.ShareLinks(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Share links generated successfully", gin.H{
		"whatsapp": whatsapp,
		"email":    email,
	})
}

// SetStatus updates the invoice status
func (h *InvoiceHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.client.Invoices.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice status updated successfully", invoice)
}

// Delete handles deleting an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.client.Invoices.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// sendPDF writes PDF bytes with the right download headers
func sendPDF(c *gin.Context, filename string, pdf []byte, attachment bool) {
	disposition := "inline"
	if attachment {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
