package entity

import "github.com/shopspring/decimal"

// BusinessProfile is the singleton settings record from the upstream
// /business-profile/ resource. It drives document branding and the ZIMRA
// tax toggle; the ZIMRA credential fields pass through untouched.
type BusinessProfile struct {
	ID                 int64           `json:"id"`
	BusinessName       string          `json:"business_name"`
	LegalName          string          `json:"legal_name"`
	TaxNumber          string          `json:"tax_number"`
	Address            string          `json:"address"`
	Phone              string          `json:"phone"`
	Email              string          `json:"email"`
	Logo               string          `json:"logo"`
	InvoiceHeaderColor string          `json:"invoice_header_color"`
	InvoiceFooterText  string          `json:"invoice_footer_text"`
	ReceiptFooterText  string          `json:"receipt_footer_text"`
	DefaultCurrency    string          `json:"default_currency"`
	Timezone           string          `json:"timezone"`
	ZimraEnabled       bool            `json:"zimra_enabled"`
	ZimraTaxRate       decimal.Decimal `json:"zimra_tax_rate"`
	ZimraAPIURL        string          `json:"zimra_api_url"`
	ZimraDeviceID      string          `json:"zimra_device_id"`
	ZimraBranchCode    string          `json:"zimra_branch_code"`
	ZimraTerminalID    string          `json:"zimra_terminal_id"`
}
