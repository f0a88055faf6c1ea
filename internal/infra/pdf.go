package infra

// pdf.go — Loan receipt generation using go-pdf/fpdf.
// Produces an A7-size thermal receipt-style document with the shop name,
// debtor, item description, amount and timestamp, rendered in memory so the
// handler can stream it as a download.

import (
	"bytes"
	"fmt"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateLoanReceiptPDF renders the dues receipt for a loan and returns the
// PDF bytes.
func GenerateLoanReceiptPDF(loan *model.Loan, shopName string) ([]byte, error) {
	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, shopName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Dues Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Receipt info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Receipt #%d", loan.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, loan.DateAdded.Format("02 Jan, 03:04 PM"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Details ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Customer: "+loan.CustomerName, "", 1, "L", false, 0, "")

	// Truncate by runes so a multi-byte name is never split mid-character;
	// the core fonts are cp1252, so the ellipsis stays ASCII.
	items := loan.ProductTaken
	if r := []rune(items); len(r) > 34 {
		items = string(r[:31]) + "..."
	}
	pdf.CellFormat(contentW, 5, "Items: "+items, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Total: PKR "+loan.Amount.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "I", 7)
	pdf.MultiCell(contentW, 4, "Please clear your dues at your earliest convenience. Thank you!", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
