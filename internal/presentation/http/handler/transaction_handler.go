package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
	"github.com/solarline/pos-gateway/internal/upstream"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	client *upstream.Client
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(client *upstream.Client) *TransactionHandler {
	return &TransactionHandler{client: client}
}

// List handles listing transactions
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.client.Transactions.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transactions retrieved successfully", transactions)
}

// Get handles getting a single transaction
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	transaction, err := h.client.Transactions.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction retrieved successfully", transaction)
}

// Create handles creating a transaction
func (h *TransactionHandler) Create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	transaction, err := h.client.Transactions.Create(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Transaction created successfully", transaction)
}

// Update handles updating a transaction
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	transaction, err := h.client.Transactions.Update(c.Request.Context(), id, body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction updated successfully", transaction)
}

// Delete handles deleting a transaction
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.client.Transactions.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	client *upstream.Client
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(client *upstream.Client) *ExpenseHandler {
	return &ExpenseHandler{client: client}
}

// List handles listing expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.client.Expenses.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expenses retrieved successfully", expenses)
}

// Get handles getting a single expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.client.Expenses.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense retrieved successfully", expense)
}

// Create handles creating an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.client.Expenses.Create(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Expense created successfully", expense)
}

// Update handles updating an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.client.Expenses.Update(c.Request.Context(), id, body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles deleting an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.client.Expenses.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
