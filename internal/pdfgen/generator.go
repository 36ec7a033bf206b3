package pdfgen

import (
	"fmt"
	"time"
)

// Generator renders invoices and receipts to PDF bytes. The clock is
// injectable so a regenerated document is byte-identical to the first
// render of the same stored record.
type Generator struct {
	logos *LogoFetcher
	now   func() time.Time
}

func NewGenerator(logos *LogoFetcher) *Generator {
	return &Generator{logos: logos, now: time.Now}
}

// WithClock replaces the generator's clock.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// InvoiceFilename names a downloaded invoice after its number, falling
// back to the generation instant for unsaved previews.
func InvoiceFilename(number string, now time.Time) string {
	if number != "" {
		return fmt.Sprintf("invoice-%s.pdf", number)
	}
	return fmt.Sprintf("invoice-%d.pdf", now.UnixMilli())
}

// ReceiptFilename mirrors InvoiceFilename for receipts.
func ReceiptFilename(number string, now time.Time) string {
	if number != "" {
		return fmt.Sprintf("receipt-%s.pdf", number)
	}
	return fmt.Sprintf("receipt-%d.pdf", now.UnixMilli())
}
