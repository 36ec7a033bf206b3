package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/solarline/pos-gateway/internal/domain/enum"
)

// PaymentCollection tracks money owed or goods awaiting collection, served
// by the upstream /payment-collections/ resource.
type PaymentCollection struct {
	ID             int64                 `json:"id"`
	CollectionType enum.CollectionType   `json:"collection_type"`
	Customer       *int64                `json:"customer"`
	CustomerName   string                `json:"customer_name,omitempty"`
	Reseller       *int64                `json:"reseller"`
	ResellerName   string                `json:"reseller_name,omitempty"`
	Transaction    *int64                `json:"transaction"`
	Invoice        *int64                `json:"invoice"`
	Amount         decimal.Decimal       `json:"amount"`
	DueDate        string                `json:"due_date"`
	ReminderDate   *string               `json:"reminder_date"`
	Description    string                `json:"description"`
	Notes          string                `json:"notes"`
	Status         enum.CollectionStatus `json:"status"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}
