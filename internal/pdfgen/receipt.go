package pdfgen

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/solarline/pos-gateway/internal/domain/entity"
)

// Receipt renders a till-roll style receipt from the upstream print
// payload. 80mm paper, monospace, one line per item.
func (g *Generator) Receipt(ctx context.Context, data entity.ReceiptPrintData, products entity.ProductIndex) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: 80, Ht: 200},
	})
	pdf.SetCatalogSort(true)
	now := g.now()
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.AddPage()

	biz := data.Business
	rc := data.Receipt

	center := func(y float64, size float64, style, s string) {
		pdf.SetFont("Courier", style, size)
		w := pdf.GetStringWidth(s)
		pdf.Text((80-w)/2, y, s)
	}

	y := 10.0
	center(y, 11, "B", orDefault(biz.BusinessName, "Business Name"))
	y += 5
	if biz.Address != "" {
		center(y, 7, "", biz.Address)
		y += 4
	}
	if biz.Phone != "" {
		center(y, 7, "", "Tel: "+biz.Phone)
		y += 4
	}
	y += 2

	pdf.SetFont("Courier", "", 8)
	line := func(s string) {
		pdf.Text(5, y, s)
		y += 4
	}
	rule := func() {
		pdf.Text(5, y, "------------------------------------")
		y += 4
	}

	rule()
	line("Receipt #: " + rc.ReceiptNumber)
	line("Date: " + rc.PrintedAt.Format("2006-01-02 15:04"))
	if rc.CustomerName != "" {
		line("Customer: " + rc.CustomerName)
	}
	rule()

	for _, it := range data.Items {
		name := fallbackDescription
		if p, ok := products[it.Product]; ok {
			name = p.Name
		}
		line(truncateRunes(name, 20))
		line(fmt.Sprintf("  %d x $%s = $%s", it.Quantity, it.UnitPrice.StringFixed(2), it.TotalPrice.StringFixed(2)))
	}

	rule()
	if rc.TaxAmount.IsPositive() {
		line("Tax: $" + rc.TaxAmount.StringFixed(2))
	}
	pdf.SetFont("Courier", "B", 9)
	pdf.Text(5, y, "TOTAL: $"+rc.TotalAmount.StringFixed(2))
	y += 5
	pdf.SetFont("Courier", "", 8)
	line("Paid by: " + string(rc.PaymentMethod))
	if rc.ZimraReceiptNo != "" {
		line("ZIMRA #: " + rc.ZimraReceiptNo)
	}
	rule()
	y += 2
	center(y, 7, "", orDefault(biz.ReceiptFooterText, "Thank you for your business!"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// truncateRunes shortens s to at most n runes, never splitting a
// multi-byte character.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
