package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is served by the upstream /customers/ resource.
type Customer struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	PhoneNo            string          `json:"phone_no"`
	ContactInfo        string          `json:"contact_info"`
	Email              string          `json:"email"`
	Address            string          `json:"address"`
	NationalIDNo       string          `json:"national_id_no"`
	AccountCode        string          `json:"account_code"`
	CreditLimit        decimal.Decimal `json:"credit_limit"`
	PaymentTermsDays   int             `json:"payment_terms_days"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	IsActive           bool            `json:"is_active"`
	DateCreated        time.Time       `json:"date_created"`
}

// CustomerIndex resolves customer references by ID without linear scans.
type CustomerIndex map[int64]*Customer

// IndexCustomers builds a CustomerIndex from a fetched customer list.
func IndexCustomers(customers []Customer) CustomerIndex {
	idx := make(CustomerIndex, len(customers))
	for i := range customers {
		idx[customers[i].ID] = &customers[i]
	}
	return idx
}
