package ledger

import (
	"github.com/fady121/alfady/internal/model"
)

// InvoiceTotals are the three derived money fields of an invoice.
// RemainingBalance == NetTotal - AmountPaid holds by construction.
type InvoiceTotals struct {
	NetTotal         float64 `json:"netTotal"`
	AmountPaid       float64 `json:"amountPaid"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// ComputeInvoiceTotals derives an invoice's money fields from its line items
// and payment list. Sell lines add, buy-back lines subtract, shipping adds.
// Payment amounts are signed, so a credit payment (store pays customer)
// reduces AmountPaid on its own.
func ComputeInvoiceTotals(items []model.InvoiceItem, payments []model.Payment, shipping float64) InvoiceTotals {
	var net float64
	for _, item := range items {
		total := ComputeItemTotal(item)
		if item.SaleType == model.SaleTypeBuyBack {
			net -= total
		} else {
			net += total
		}
	}
	net += num(shipping)

	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}

	return InvoiceTotals{
		NetTotal:         net,
		AmountPaid:       paid,
		RemainingBalance: net - paid,
	}
}

// InvoiceSellTotal sums the sell lines only (headline "total sales" figure).
func InvoiceSellTotal(inv model.Invoice) float64 {
	var sum float64
	for _, item := range inv.Items {
		if item.SaleType == model.SaleTypeSell {
			sum += ComputeItemTotal(item)
		}
	}
	return sum
}

// InvoiceBuyBackTotal sums the buy-back lines only.
func InvoiceBuyBackTotal(inv model.Invoice) float64 {
	var sum float64
	for _, item := range inv.Items {
		if item.SaleType == model.SaleTypeBuyBack {
			sum += ComputeItemTotal(item)
		}
	}
	return sum
}
