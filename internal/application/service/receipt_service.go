package service

import (
	"context"
	"time"

	"github.com/solarline/pos-gateway/internal/domain/entity"
	"github.com/solarline/pos-gateway/internal/pdfgen"
	"github.com/solarline/pos-gateway/internal/share"
	"github.com/solarline/pos-gateway/internal/upstream"
)

// ReceiptService serves receipt PDFs. The upstream-rendered PDF is
// preferred; when that endpoint fails the gateway renders its own copy
// from the structured print payload.
type ReceiptService struct {
	client *upstream.Client
	gen    *pdfgen.Generator
	now    func() time.Time
}

// NewReceiptService creates a new receipt service
func NewReceiptService(client *upstream.Client, gen *pdfgen.Generator) *ReceiptService {
	return &ReceiptService{client: client, gen: gen, now: time.Now}
}

// ReceiptOutput carries the rendered bytes and download filename.
type ReceiptOutput struct {
	Receipt  *entity.Receipt
	PDF      []byte
	Filename string
}

// Download returns the receipt PDF.
func (s *ReceiptService) Download(ctx context.Context, id int64) (*ReceiptOutput, error) {
	receipt, err := s.client.Receipts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	pdf, err := s.client.Receipts.DownloadPDF(ctx, id)
	if err != nil {
		pdf, err = s.renderLocal(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	return &ReceiptOutput{
		Receipt:  receipt,
		PDF:      pdf,
		Filename: pdfgen.ReceiptFilename(receipt.ReceiptNumber, s.now()),
	}, nil
}

// PrintData returns the structured payload the print view lays out.
func (s *ReceiptService) PrintData(ctx context.Context, id int64) (*entity.ReceiptPrintData, error) {
	return s.client.Receipts.PrintData(ctx, id)
}

// ShareLink builds a WhatsApp share link for a receipt.
func (s *ReceiptService) ShareLink(ctx context.Context, id int64) (string, error) {
	receipt, err := s.client.Receipts.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return share.WhatsAppReceipt(receipt), nil
}

func (s *ReceiptService) renderLocal(ctx context.Context, id int64) ([]byte, error) {
	data, err := s.client.Receipts.PrintData(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := s.client.Products.List(ctx)
	if err != nil {
		products = nil
	}
	return s.gen.Receipt(ctx, *data, entity.IndexProducts(products))
}
