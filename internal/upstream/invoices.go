package upstream

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// InvoicesAPI wraps the upstream /invoices/ resource.
type InvoicesAPI struct {
	c *Client
}

// CreateInvoiceItem is the wire shape /invoices/ expects for a line item.
type CreateInvoiceItem struct {
	Product   int64           `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceInput is the wire shape for invoice creation.
type CreateInvoiceInput struct {
	Customer int64               `json:"customer"`
	DueDate  string              `json:"due_date"`
	Notes    string              `json:"notes,omitempty"`
	Items    []CreateInvoiceItem `json:"items"`
}

func (a *InvoicesAPI) List(ctx context.Context) ([]entity.Invoice, error) {
	return list[entity.Invoice](ctx, a.c, "/invoices/")
}

func (a *InvoicesAPI) Get(ctx context.Context, id int64) (*entity.Invoice, error) {
	return get[entity.Invoice](ctx, a.c, fmt.Sprintf("/invoices/%d/", id))
}

func (a *InvoicesAPI) Create(ctx context.Context, in CreateInvoiceInput) (*entity.Invoice, error) {
	return create[entity.Invoice](ctx, a.c, "/invoices/", in)
}

func (a *InvoicesAPI) Update(ctx context.Context, id int64, body any) (*entity.Invoice, error) {
	return update[entity.Invoice](ctx, a.c, fmt.Sprintf("/invoices/%d/", id), body)
}

func (a *InvoicesAPI) SetStatus(ctx context.Context, id int64, status string) (*entity.Invoice, error) {
	return patch[entity.Invoice](ctx, a.c, fmt.Sprintf("/invoices/%d/", id), map[string]string{"status": status})
}

func (a *InvoicesAPI) Delete(ctx context.Context, id int64) error {
	return del(ctx, a.c, fmt.Sprintf("/invoices/%d/", id))
}
