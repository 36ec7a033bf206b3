package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is served by the upstream /expenses/ resource. Buckets on the
// dashboard use Date, not a created timestamp.
type Expense struct {
	ID                 int64           `json:"id"`
	Category           *int64          `json:"category"`
	CategoryName       string          `json:"category_name,omitempty"`
	ExpenseType        string          `json:"expense_type"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	Date               time.Time       `json:"date"`
	ReceiptReference   string          `json:"receipt_reference"`
	Notes              string          `json:"notes"`
	IsRecurring        bool            `json:"is_recurring"`
	RecurringFrequency string          `json:"recurring_frequency"`
}

// ExpenseCategory is served by the upstream /expense-categories/ resource.
type ExpenseCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}
