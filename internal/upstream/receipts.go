package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// ReceiptsAPI wraps the upstream /receipts/ resource.
type ReceiptsAPI struct {
	c *Client
}

func (a *ReceiptsAPI) List(ctx context.Context) ([]entity.Receipt, error) {
	return list[entity.Receipt](ctx, a.c, "/receipts/")
}

func (a *ReceiptsAPI) Get(ctx context.Context, id int64) (*entity.Receipt, error) {
	return get[entity.Receipt](ctx, a.c, fmt.Sprintf("/receipts/%d/", id))
}

func (a *ReceiptsAPI) Create(ctx context.Context, body any) (*entity.Receipt, error) {
	return create[entity.Receipt](ctx, a.c, "/receipts/", body)
}

func (a *ReceiptsAPI) Delete(ctx context.Context, id int64) error {
	return del(ctx, a.c, fmt.Sprintf("/receipts/%d/", id))
}

// PrintData returns the structured print payload for a receipt.
func (a *ReceiptsAPI) PrintData(ctx context.Context, id int64) (*entity.ReceiptPrintData, error) {
	return get[entity.ReceiptPrintData](ctx, a.c, fmt.Sprintf("/receipts/%d/print_receipt/", id))
}

// DownloadPDF fetches the upstream-rendered PDF for a receipt as raw bytes.
func (a *ReceiptsAPI) DownloadPDF(ctx context.Context, id int64) ([]byte, error) {
	return a.c.raw(ctx, http.MethodGet, fmt.Sprintf("/receipts/%d/download_pdf/", id), nil)
}
