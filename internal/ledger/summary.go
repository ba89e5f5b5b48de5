package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/fady121/alfady/internal/model"
)

// SummaryCell pairs a metal weight with its cash value.
type SummaryCell struct {
	Weight float64 `json:"weight"`
	Cash   float64 `json:"cash"`
}

func (c *SummaryCell) add(weight, cash float64) {
	c.Weight += weight
	c.Cash += cash
}

// GoldBuckets splits gold activity by karat. Bucket weights are the raw grams
// written on the invoice line; Gold21Eq carries the same grams converted to
// the 21-karat scale so different karats add up on one axis.
type GoldBuckets struct {
	Gold24   SummaryCell `json:"gold24"`
	Gold21   SummaryCell `json:"gold21"`
	Gold18   SummaryCell `json:"gold18"`
	Gold21Eq float64     `json:"gold21Equivalent"`
}

func (b *GoldBuckets) add(weight float64, karat int, cash float64) {
	switch karat {
	case 24:
		b.Gold24.add(weight, cash)
	case 18:
		b.Gold18.add(weight, cash)
	default:
		b.Gold21.add(weight, cash)
	}
	b.Gold21Eq += Gold21Equivalent(weight, karat)
}

// Cash is the combined cash value of the three karat buckets.
func (b GoldBuckets) Cash() float64 {
	return b.Gold24.Cash + b.Gold21.Cash + b.Gold18.Cash
}

// SalesSummary breaks invoice activity inside a window into the dashboard
// buckets: gold sold in store, gold sold online and gold bought back, each
// split by karat, plus silver sold and silver bought back.
type SalesSummary struct {
	Store         GoldBuckets `json:"store"`
	Online        GoldBuckets `json:"online"`
	BuyBack       GoldBuckets `json:"buyBack"`
	Silver        SummaryCell `json:"silver"`
	BuyBackSilver SummaryCell `json:"buyBackSilver"`
}

// TotalSales is the combined cash value of all sell lines in the summary.
func (s SalesSummary) TotalSales() float64 {
	return s.Store.Cash() + s.Online.Cash() + s.Silver.Cash
}

// ComputeSalesSummary aggregates invoice lines whose invoice date falls
// inside the window.
func ComputeSalesSummary(invoices []model.Invoice, w Window) SalesSummary {
	var s SalesSummary
	for _, inv := range invoices {
		if !w.Contains(inv.Date) {
			continue
		}
		for _, item := range inv.Items {
			total := ComputeItemTotal(item)
			weight := num(item.Weight)
			switch {
			case item.Category == model.CategoryGold && item.SaleType == model.SaleTypeSell:
				if inv.Channel == model.ChannelOnline {
					s.Online.add(weight, karatOf(item), total)
				} else {
					s.Store.add(weight, karatOf(item), total)
				}
			case item.Category == model.CategoryGold && item.SaleType == model.SaleTypeBuyBack:
				s.BuyBack.add(weight, karatOf(item), total)
			case item.Category == model.CategorySilver && item.SaleType == model.SaleTypeSell:
				s.Silver.add(weight, total)
			case item.Category == model.CategorySilver && item.SaleType == model.SaleTypeBuyBack:
				s.BuyBackSilver.add(weight, total)
			}
		}
	}
	return s
}

// GoldPurchases totals the flow between the store and its gold traders.
// NetGoldBalance = WorkWeight - ScrapWeight: finished gold received minus
// scrap handed back.
type GoldPurchases struct {
	WorkWeight     float64 `json:"workWeight"`
	ScrapWeight    float64 `json:"scrapWeight"`
	WorkmanshipFee float64 `json:"workmanshipFee"`
	NetGoldBalance float64 `json:"netGoldBalance"`
}

// SilverPurchases totals the flow between the store and its silver traders.
// RequiredCash is the priced value of delivered work plus fees;
// NetCashBalance = RequiredCash - CashPaid.
type SilverPurchases struct {
	WorkWeight     float64 `json:"workWeight"`
	RequiredCash   float64 `json:"requiredCash"`
	CashPaid       float64 `json:"cashPaid"`
	NetCashBalance float64 `json:"netCashBalance"`
}

// PurchasesSummary aggregates what the store took in from traders inside a
// window, split by trader category.
type PurchasesSummary struct {
	Gold   GoldPurchases   `json:"gold"`
	Silver SilverPurchases `json:"silver"`
}

func ComputePurchasesSummary(traders []model.Trader, txs []model.TraderTransaction, w Window) PurchasesSummary {
	categories := traderCategories(traders)
	var s PurchasesSummary
	for _, t := range txs {
		if !w.Contains(t.Date) {
			continue
		}
		if categories[t.TraderID] == model.CategorySilver {
			s.Silver.WorkWeight += num(t.WorkWeight)
			s.Silver.RequiredCash += SilverRequiredCash(t)
			s.Silver.CashPaid += num(t.CashPayment)
		} else {
			s.Gold.WorkWeight += num(t.WorkWeight)
			s.Gold.ScrapWeight += num(t.ScrapWeight)
			s.Gold.WorkmanshipFee += num(t.WorkmanshipFee)
		}
	}
	s.Gold.NetGoldBalance = s.Gold.WorkWeight - s.Gold.ScrapWeight
	s.Silver.NetCashBalance = s.Silver.RequiredCash - s.Silver.CashPaid
	return s
}

// Inventory is the store's physical stock position, derived over ALL records
// regardless of the report window: stock on hand is not a period metric.
// Gold is in 21-karat equivalent grams.
type Inventory struct {
	GoldGrams   float64 `json:"goldGrams"`
	SilverGrams float64 `json:"silverGrams"`
}

// ComputeInventory derives stock as everything that entered (trader work,
// customer buy-backs) minus everything that left (trader scrap returns,
// customer sales).
func ComputeInventory(traders []model.Trader, traderTxs []model.TraderTransaction, invoices []model.Invoice) Inventory {
	categories := traderCategories(traders)

	var inv Inventory
	for _, t := range traderTxs {
		if categories[t.TraderID] == model.CategorySilver {
			inv.SilverGrams += num(t.WorkWeight)
		} else {
			inv.GoldGrams += num(t.WorkWeight) - num(t.ScrapWeight)
		}
	}

	for _, i := range invoices {
		for _, item := range i.Items {
			w := num(item.Weight)
			switch {
			case item.Category == model.CategoryGold && item.SaleType == model.SaleTypeBuyBack:
				inv.GoldGrams += Gold21Equivalent(w, karatOf(item))
			case item.Category == model.CategoryGold && item.SaleType == model.SaleTypeSell:
				inv.GoldGrams -= Gold21Equivalent(w, karatOf(item))
			case item.Category == model.CategorySilver && item.SaleType == model.SaleTypeBuyBack:
				inv.SilverGrams += w
			case item.Category == model.CategorySilver && item.SaleType == model.SaleTypeSell:
				inv.SilverGrams -= w
			}
		}
	}
	return inv
}

// TrendPoint is one day of the activity chart: cash in from sell lines, cash
// out to buy-backs, expenses and trader settlements.
type TrendPoint struct {
	Date    string  `json:"date"`
	Sales   float64 `json:"sales"`
	Outflow float64 `json:"outflow"`
}

// ComputeTrend returns one point per day for the `days` days ending at now,
// zero-filled so the chart never has gaps.
func ComputeTrend(invoices []model.Invoice, txs []model.Transaction, traderTxs []model.TraderTransaction, now time.Time, days int) []TrendPoint {
	sales := make(map[string]float64, days)
	outflow := make(map[string]float64, days)
	for _, inv := range invoices {
		day := inv.Date.Format(time.DateOnly)
		sales[day] += InvoiceSellTotal(inv)
		outflow[day] += InvoiceBuyBackTotal(inv)
	}
	for _, t := range txs {
		if t.Type == model.TxExpense {
			outflow[t.Date.Format(time.DateOnly)] += num(t.Amount)
		}
	}
	for _, t := range traderTxs {
		outflow[t.Date.Format(time.DateOnly)] += num(t.CashPayment)
	}

	points := make([]TrendPoint, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset).Format(time.DateOnly)
		points = append(points, TrendPoint{Date: day, Sales: sales[day], Outflow: outflow[day]})
	}
	return points
}

func karatOf(item model.InvoiceItem) int {
	if item.Karat != nil {
		return *item.Karat
	}
	return 21
}

func traderCategories(traders []model.Trader) map[uuid.UUID]model.MetalCategory {
	m := make(map[uuid.UUID]model.MetalCategory, len(traders))
	for _, t := range traders {
		m[t.ID] = t.Category
	}
	return m
}
