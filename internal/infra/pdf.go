package infra

// pdf.go — thermal-style invoice receipts using go-pdf/fpdf.
// Layout: store header, invoice date and channel, one line per item with its
// computed price, shipping, bold net total, then the payment breakdown and
// remaining balance. Output goes to storagePath/receipt_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fady121/alfady/internal/ledger"
	"github.com/fady121/alfady/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReceiptPDF renders a receipt for one invoice and returns the
// absolute path of the written file.
func GenerateReceiptPDF(inv *model.Invoice, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("receipt_%s.pdf", inv.ID)
	filePath := filepath.Join(storagePath, fileName)

	// 74mm x 105mm, close to thermal receipt paper.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Alfady Jewelry", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Sales Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Invoice info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, inv.CustomerName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, fmt.Sprintf("%s  %s", inv.Date.Format("02/01/2006"), inv.Channel), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Items ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(contentW*0.55, 4, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.20, 4, "Grams", "B", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.25, 4, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range inv.Items {
		label := itemLabel(item)
		if item.SaleType == model.SaleTypeBuyBack {
			label = "(buy-back) " + label
		}
		pdf.CellFormat(contentW*0.55, 4, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.20, 4, fmt.Sprintf("%.3f", item.Weight), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.25, 4, fmt.Sprintf("%.2f", ledger.ComputeItemTotal(item)), "", 1, "R", false, 0, "")
	}

	if inv.Shipping > 0 {
		pdf.CellFormat(contentW*0.75, 4, "Shipping", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.25, 4, fmt.Sprintf("%.2f", inv.Shipping), "", 1, "R", false, 0, "")
	}
	pdf.Ln(1)

	// ── Totals ───────────────────────────────────────────────────────────────
	totals := ledger.ComputeInvoiceTotals(inv.Items, inv.Payments, inv.Shipping)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.55, 5, "TOTAL", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.45, 5, fmt.Sprintf("%.2f", totals.NetTotal), "T", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, p := range inv.Payments {
		pdf.CellFormat(contentW*0.55, 4, string(p.Method), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.45, 4, fmt.Sprintf("%.2f", p.Amount), "", 1, "R", false, 0, "")
	}
	if !ledger.CashSettled(totals.RemainingBalance) {
		pdf.SetFont("Helvetica", "B", 7)
		pdf.CellFormat(contentW*0.55, 4, "Balance", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.45, 4, fmt.Sprintf("%.2f", totals.RemainingBalance), "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}

func itemLabel(item model.InvoiceItem) string {
	if item.Description != "" {
		return item.Description
	}
	if item.Category == model.CategoryGold && item.Karat != nil {
		return fmt.Sprintf("Gold %dk", *item.Karat)
	}
	return "Silver"
}
