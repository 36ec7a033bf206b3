package pdfgen

import (
	"bytes"
	"context"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth  = 210.0
	headerH    = 50.0
	tableX     = 20.0
	tableY     = 150.0
	rowH       = 8.0
	breakY     = 250.0
	footerY    = 260.0
	notesWidth = 170.0
)

var colWidths = [4]float64{60, 20, 30, 30}

// Invoice renders the document to PDF bytes. The logo is fetched best
// effort; a fetch or decode failure shifts the header text left and the
// document still renders.
func (g *Generator) Invoice(ctx context.Context, doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCatalogSort(true)
	now := g.now()
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.AddPage()

	var logo []byte
	if g.logos != nil {
		logo = g.logos.Fetch(ctx, doc.Business.Logo)
	}

	g.header(pdf, doc, logo)
	g.infoBoxes(pdf, doc)
	finalY := g.itemsTable(pdf, doc.Items)
	finalY = g.totalsBox(pdf, doc, finalY)
	g.notes(pdf, doc.Notes, finalY)
	g.footer(pdf, doc.Business.InvoiceFooterText, now)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) header(pdf *gofpdf.Fpdf, doc Document, logo []byte) {
	r, gr, b := parseHexColor(doc.Business.InvoiceHeaderColor)
	pdf.SetFillColor(r, gr, b)
	pdf.Rect(0, 0, pageWidth, headerH, "F")

	nameX := 20.0
	if logo != nil {
		opts := gofpdf.ImageOptions{ImageType: "JPEG"}
		pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(logo))
		pdf.ImageOptions("logo", 10, 10, 40, 30, false, opts, 0, "")
		nameX = 60
	}

	name := doc.Business.BusinessName
	if name == "" {
		name = "Business Name"
	}
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(nameX, 25, name)
	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(nameX, 35, "PROFESSIONAL INVOICE")

	pdf.SetTextColor(0, 0, 0)
}

func (g *Generator) infoBoxes(pdf *gofpdf.Fpdf, doc Document) {
	pdf.SetDrawColor(0, 100, 200)
	pdf.SetFont("Helvetica", "", 10)

	pdf.Rect(20, 60, 80, 40, "D")
	pdf.Text(25, 70, "From:")
	pdf.Text(25, 80, orDefault(doc.Business.BusinessName, "Business Name"))
	pdf.Text(25, 85, orDefault(doc.Business.Address, "Business Address"))
	pdf.Text(25, 90, "Phone: "+orDefault(doc.Business.Phone, "N/A"))
	pdf.Text(25, 95, "Email: "+orDefault(doc.Business.Email, "N/A"))

	pdf.Rect(110, 60, 80, 40, "D")
	pdf.Text(115, 70, "Invoice Details:")
	pdf.Text(115, 80, "Invoice #: "+doc.InvoiceNumber)
	pdf.Text(115, 85, "Date: "+doc.Date.Format("2006-01-02"))
	pdf.Text(115, 90, "Due Date: "+doc.DueDate.Format("2006-01-02"))

	pdf.Rect(20, 110, 170, 30, "D")
	pdf.Text(25, 120, "Bill To:")
	pdf.SetFont("Helvetica", "", 12)
	if doc.Customer != nil {
		pdf.Text(25, 130, orDefault(doc.Customer.Name, "Customer Name"))
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(25, 135, orDefault(doc.Customer.Address, "Customer Address"))
		pdf.Text(120, 130, "Phone: "+orDefault(doc.Customer.PhoneNo, "N/A"))
		pdf.Text(120, 135, "Email: "+orDefault(doc.Customer.Email, "N/A"))
	} else {
		pdf.Text(25, 130, "Customer Name")
		pdf.SetFont("Helvetica", "", 10)
	}
}

// itemsTable draws the striped line-item table and returns the Y just
// below the last row. Long tables continue on fresh pages with the header
// row repeated.
func (g *Generator) itemsTable(pdf *gofpdf.Fpdf, items []Line) float64 {
	y := g.tableHead(pdf, tableY)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for i, it := range items {
		if y > breakY {
			pdf.AddPage()
			y = g.tableHead(pdf, 20)
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(0, 0, 0)
		}
		fill := i%2 == 1
		if fill {
			pdf.SetFillColor(245, 245, 245)
		}
		pdf.SetXY(tableX, y)
		pdf.CellFormat(colWidths[0], rowH, it.Description, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[1], rowH, strconv.Itoa(it.Quantity), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[2], rowH, "$"+it.UnitPrice.StringFixed(2), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[3], rowH, "$"+it.TotalPrice.StringFixed(2), "1", 0, "R", fill, 0, "")
		y += rowH
	}
	return y
}

func (g *Generator) tableHead(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(0, 100, 200)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(tableX, y)
	heads := [4]string{"Description", "Qty", "Unit Price", "Total"}
	aligns := [4]string{"L", "C", "R", "R"}
	for i, h := range heads {
		pdf.CellFormat(colWidths[i], rowH, h, "1", 0, aligns[i], true, 0, "")
	}
	return y + rowH
}

func (g *Generator) totalsBox(pdf *gofpdf.Fpdf, doc Document, tableEnd float64) float64 {
	finalY := tableEnd + 10
	boxH := 30.0
	if doc.Taxed {
		boxH = 40
	}
	pdf.Rect(130, finalY, 60, boxH, "D")

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(135, finalY+10, "Subtotal: $"+doc.Subtotal.StringFixed(2))
	totalY := finalY + 25
	if doc.Taxed {
		pdf.Text(135, finalY+20, "Tax ("+doc.TaxRate.String()+"%): $"+doc.TaxAmount.StringFixed(2))
		totalY = finalY + 35
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(135, totalY, "TOTAL: $"+doc.Total.StringFixed(2))
	return finalY
}

func (g *Generator) notes(pdf *gofpdf.Fpdf, notes string, finalY float64) {
	if notes == "" {
		return
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, finalY+50, "Notes:")
	y := finalY + 60
	for _, line := range pdf.SplitText(notes, notesWidth) {
		pdf.Text(20, y, line)
		y += 5
	}
}

func (g *Generator) footer(pdf *gofpdf.Fpdf, footerText string, now time.Time) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.Text(20, footerY, orDefault(footerText, "Thank you for your business!"))
	pdf.Text(150, footerY, "Generated on "+now.Format("2006-01-02 15:04:05"))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
