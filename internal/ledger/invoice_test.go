package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fady121/alfady/internal/model"
)

func TestComputeInvoiceTotals_SellMinusBuyBackPlusShipping(t *testing.T) {
	items := []model.InvoiceItem{
		{
			SaleType:         model.SaleTypeSell,
			Category:         model.CategoryGold,
			Karat:            karat(21),
			Weight:           2,
			PricePerGram:     500,
			WorkmanshipType:  model.WorkmanshipPerGram,
			WorkmanshipValue: 25,
		},
		{
			SaleType:           model.SaleTypeBuyBack,
			Category:           model.CategoryGold,
			Karat:              karat(21),
			Weight:             1,
			PricePerGram:       500,
			DiscountPercentage: 10,
		},
	}

	totals := ComputeInvoiceTotals(items, nil, 50)
	assert.InDelta(t, 1050-450+50, totals.NetTotal, CashEpsilon)
	assert.Zero(t, totals.AmountPaid)
	assert.InDelta(t, totals.NetTotal, totals.RemainingBalance, CashEpsilon)
}

func TestComputeInvoiceTotals_PaymentsAccumulate(t *testing.T) {
	items := []model.InvoiceItem{{
		SaleType:     model.SaleTypeSell,
		Category:     model.CategorySilver,
		Weight:       10,
		PricePerGram: 10,
	}}
	payments := []model.Payment{
		{Method: model.MethodCash, Amount: 25, Date: time.Now()},
		{Method: model.MethodInstapay, Amount: 75, Date: time.Now()},
	}

	totals := ComputeInvoiceTotals(items, payments, 0)
	assert.InDelta(t, 100, totals.NetTotal, CashEpsilon)
	assert.InDelta(t, 100, totals.AmountPaid, CashEpsilon)
	assert.True(t, CashSettled(totals.RemainingBalance))
}

func TestComputeInvoiceTotals_NegativePaymentReducesPaid(t *testing.T) {
	payments := []model.Payment{
		{Method: model.MethodCash, Amount: 200},
		{Method: model.MethodCash, Amount: -80},
	}

	totals := ComputeInvoiceTotals(nil, payments, 0)
	assert.InDelta(t, 120, totals.AmountPaid, CashEpsilon)
	assert.InDelta(t, -120, totals.RemainingBalance, CashEpsilon)
}

func TestComputeInvoiceTotals_BalanceIdentity(t *testing.T) {
	items := []model.InvoiceItem{
		{SaleType: model.SaleTypeSell, Category: model.CategoryGold, Karat: karat(18), Weight: 1.5, PricePerGram: 3333.33, WorkmanshipType: model.WorkmanshipPerPiece, WorkmanshipValue: 99.99},
		{SaleType: model.SaleTypeBuyBack, Category: model.CategoryGold, Karat: karat(24), Weight: 0.75, PricePerGram: 4100.5, CashBackPerGram: 12.25},
	}
	payments := []model.Payment{
		{Method: model.MethodFawry, Amount: 1000.10},
		{Method: model.MethodEWallet, Amount: -250.55},
	}

	totals := ComputeInvoiceTotals(items, payments, 35.5)
	assert.InDelta(t, totals.NetTotal-totals.AmountPaid, totals.RemainingBalance, CashEpsilon)
}

func TestInvoiceSellAndBuyBackTotals(t *testing.T) {
	inv := model.Invoice{Items: []model.InvoiceItem{
		{SaleType: model.SaleTypeSell, Category: model.CategoryGold, Karat: karat(21), Weight: 2, PricePerGram: 500, WorkmanshipType: model.WorkmanshipPerGram, WorkmanshipValue: 25},
		{SaleType: model.SaleTypeBuyBack, Category: model.CategoryGold, Karat: karat(24), Weight: 5, PricePerGram: 3000, CashBackPerGram: 50},
	}}

	assert.InDelta(t, 1050, InvoiceSellTotal(inv), CashEpsilon)
	assert.InDelta(t, 15250, InvoiceBuyBackTotal(inv), CashEpsilon)
}
