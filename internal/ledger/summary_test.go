package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fady121/alfady/internal/model"
)

func TestComputeSalesSummary_Buckets(t *testing.T) {
	now := time.Now()
	invoices := []model.Invoice{
		{
			Date:    now,
			Channel: model.ChannelStore,
			Items: []model.InvoiceItem{
				{SaleType: model.SaleTypeSell, Category: model.CategoryGold, Karat: karat(21), Weight: 2, PricePerGram: 500, WorkmanshipType: model.WorkmanshipPerGram, WorkmanshipValue: 25},
				{SaleType: model.SaleTypeSell, Category: model.CategorySilver, Weight: 50, PricePerGram: 30},
				{SaleType: model.SaleTypeBuyBack, Category: model.CategorySilver, Weight: 15, PricePerGram: 20, DiscountPercentage: 10},
			},
		},
		{
			Date:    now,
			Channel: model.ChannelOnline,
			Items: []model.InvoiceItem{
				{SaleType: model.SaleTypeSell, Category: model.CategoryGold, Karat: karat(18), Weight: 7, PricePerGram: 400, WorkmanshipType: model.WorkmanshipPerPiece, WorkmanshipValue: 100},
			},
		},
		{
			Date:    now,
			Channel: model.ChannelStore,
			Items: []model.InvoiceItem{
				{SaleType: model.SaleTypeBuyBack, Category: model.CategoryGold, Karat: karat(24), Weight: 7, PricePerGram: 3000, CashBackPerGram: 50},
			},
		},
	}

	s := ComputeSalesSummary(invoices, AllTime())

	assert.InDelta(t, 2, s.Store.Gold21.Weight, WeightEpsilon)
	assert.InDelta(t, 1050, s.Store.Gold21.Cash, CashEpsilon)
	assert.Zero(t, s.Store.Gold24.Weight)
	assert.InDelta(t, 2, s.Store.Gold21Eq, WeightEpsilon)

	assert.InDelta(t, 7, s.Online.Gold18.Weight, WeightEpsilon)
	assert.InDelta(t, 2900, s.Online.Gold18.Cash, CashEpsilon)
	assert.InDelta(t, 6, s.Online.Gold21Eq, WeightEpsilon) // 7g of 18k as 21k

	assert.InDelta(t, 7, s.BuyBack.Gold24.Weight, WeightEpsilon)
	assert.InDelta(t, 21350, s.BuyBack.Gold24.Cash, CashEpsilon)
	assert.InDelta(t, 8, s.BuyBack.Gold21Eq, WeightEpsilon) // 7g of 24k as 21k

	assert.InDelta(t, 50, s.Silver.Weight, WeightEpsilon)
	assert.InDelta(t, 1500, s.Silver.Cash, CashEpsilon)

	assert.InDelta(t, 15, s.BuyBackSilver.Weight, WeightEpsilon)
	assert.InDelta(t, 270, s.BuyBackSilver.Cash, CashEpsilon) // 15*20 minus 10%

	assert.InDelta(t, 1050+2900+1500, s.TotalSales(), CashEpsilon)
}

func TestComputeSalesSummary_RespectsWindow(t *testing.T) {
	old := model.Invoice{
		Date:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Channel: model.ChannelStore,
		Items: []model.InvoiceItem{
			{SaleType: model.SaleTypeSell, Category: model.CategorySilver, Weight: 10, PricePerGram: 10},
		},
	}

	w, _ := NewWindow(RangeToday, time.Now(), time.Time{}, time.Time{})
	s := ComputeSalesSummary([]model.Invoice{old}, w)
	assert.Zero(t, s.Silver.Cash)
}

func TestComputePurchasesSummary(t *testing.T) {
	gold := model.Trader{ID: uuid.New(), Category: model.CategoryGold}
	silver := model.Trader{ID: uuid.New(), Category: model.CategorySilver}
	now := time.Now()

	txs := []model.TraderTransaction{
		{TraderID: gold.ID, Date: now, WorkWeight: 20, ScrapWeight: 5, WorkmanshipFee: 500},
		{TraderID: silver.ID, Date: now, WorkWeight: 10, SilverPricePerGram: 30, WorkmanshipFee: 50, CashPayment: 100},
	}

	s := ComputePurchasesSummary([]model.Trader{gold, silver}, txs, AllTime())
	assert.InDelta(t, 20, s.Gold.WorkWeight, WeightEpsilon)
	assert.InDelta(t, 5, s.Gold.ScrapWeight, WeightEpsilon)
	assert.InDelta(t, 500, s.Gold.WorkmanshipFee, CashEpsilon)
	assert.InDelta(t, 15, s.Gold.NetGoldBalance, WeightEpsilon)

	assert.InDelta(t, 10, s.Silver.WorkWeight, WeightEpsilon)
	assert.InDelta(t, 350, s.Silver.RequiredCash, CashEpsilon)
	assert.InDelta(t, 100, s.Silver.CashPaid, CashEpsilon)
	assert.InDelta(t, 250, s.Silver.NetCashBalance, CashEpsilon)
}

func TestComputeInventory_AllTime(t *testing.T) {
	gold := model.Trader{ID: uuid.New(), Category: model.CategoryGold}
	silver := model.Trader{ID: uuid.New(), Category: model.CategorySilver}

	traderTxs := []model.TraderTransaction{
		{TraderID: gold.ID, WorkWeight: 20, ScrapWeight: 7},
		{TraderID: silver.ID, WorkWeight: 100},
	}
	invoices := []model.Invoice{{
		Date: time.Now(),
		Items: []model.InvoiceItem{
			{SaleType: model.SaleTypeSell, Category: model.CategoryGold, Karat: karat(21), Weight: 3, PricePerGram: 500},
			{SaleType: model.SaleTypeBuyBack, Category: model.CategoryGold, Karat: karat(24), Weight: 7, PricePerGram: 3000},
			{SaleType: model.SaleTypeSell, Category: model.CategorySilver, Weight: 40, PricePerGram: 30},
			{SaleType: model.SaleTypeBuyBack, Category: model.CategorySilver, Weight: 15, PricePerGram: 25},
		},
	}}

	inv := ComputeInventory([]model.Trader{gold, silver}, traderTxs, invoices)
	// 13 from the trader, +8 bought back (7g 24k as 21k), -3 sold.
	assert.InDelta(t, 18, inv.GoldGrams, WeightEpsilon)
	// 100 from the trader, +15 bought back, -40 sold.
	assert.InDelta(t, 75, inv.SilverGrams, WeightEpsilon)
}

func TestComputeTrend_ZeroFilled(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	invoices := []model.Invoice{
		{
			Date: now.AddDate(0, 0, -2),
			Items: []model.InvoiceItem{
				{SaleType: model.SaleTypeSell, Category: model.CategorySilver, Weight: 10, PricePerGram: 10},
				{SaleType: model.SaleTypeBuyBack, Category: model.CategorySilver, Weight: 5, PricePerGram: 8},
			},
		},
		{
			Date: now.AddDate(0, 0, -40), // outside the chart
			Items: []model.InvoiceItem{
				{SaleType: model.SaleTypeSell, Category: model.CategorySilver, Weight: 99, PricePerGram: 10},
			},
		},
	}
	txs := []model.Transaction{
		{Type: model.TxExpense, Date: now.AddDate(0, 0, -2), Amount: 60},
		{Type: model.TxDeposit, Date: now.AddDate(0, 0, -2), Amount: 999}, // deposits are not outflow
	}
	traderTxs := []model.TraderTransaction{
		{Date: now.AddDate(0, 0, -5), CashPayment: 250},
	}

	points := ComputeTrend(invoices, txs, traderTxs, now, 30)
	assert.Len(t, points, 30)
	assert.Equal(t, "2025-05-17", points[0].Date)
	assert.Equal(t, "2025-06-15", points[29].Date)

	byDay := make(map[string]TrendPoint, len(points))
	var activeDays int
	for _, p := range points {
		byDay[p.Date] = p
		if p.Sales != 0 || p.Outflow != 0 {
			activeDays++
		}
	}
	assert.Equal(t, 2, activeDays)

	assert.InDelta(t, 100, byDay["2025-06-13"].Sales, CashEpsilon)
	assert.InDelta(t, 100, byDay["2025-06-13"].Outflow, CashEpsilon) // 40 buy-back + 60 expense
	assert.Zero(t, byDay["2025-06-10"].Sales)
	assert.InDelta(t, 250, byDay["2025-06-10"].Outflow, CashEpsilon)
}
