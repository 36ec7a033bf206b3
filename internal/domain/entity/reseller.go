package entity

import (
	"github.com/shopspring/decimal"
	"github.com/solarline/pos-gateway/internal/domain/enum"
)

// Reseller is served by the upstream /resellers/ resource.
type Reseller struct {
	ID                 int64               `json:"id"`
	Name               string              `json:"name"`
	CompanyName        string              `json:"company_name"`
	PhoneNo            string              `json:"phone_no"`
	Email              string              `json:"email"`
	NationalIDNo       string              `json:"national_id_no"`
	Address            string              `json:"address"`
	AccountCode        string              `json:"account_code"`
	SettlementMode     enum.SettlementMode `json:"settlement_mode"`
	CommissionRatePct  decimal.Decimal     `json:"commission_rate_pct"`
	CurrentBalance     decimal.Decimal     `json:"current_balance"`
	CreditLimit        decimal.Decimal     `json:"credit_limit"`
	PaymentTermsDays   int                 `json:"payment_terms_days"`
	OutstandingBalance decimal.Decimal     `json:"outstanding_balance"`
	BankDetails        string              `json:"bank_details"`
	IsActive           bool                `json:"is_active"`
}
