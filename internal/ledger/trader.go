package ledger

import (
	"github.com/google/uuid"

	"github.com/fady121/alfady/internal/model"
)

// TraderAccount is the derived running balance of one trader. Balances are
// never stored; every mutation to the trader's transactions implicitly
// changes the result of the next computation.
//
// Sign convention: positive GoldBalance / CashBalance means the store still
// owes the trader; negative means the trader owes the store.
type TraderAccount struct {
	TotalWorkWeight     float64 `json:"totalWorkWeight"`
	TotalScrapWeight    float64 `json:"totalScrapWeight"`
	TotalWorkmanshipFee float64 `json:"totalWorkmanshipFee"`
	TotalCashPayment    float64 `json:"totalCashPayment"`
	// GoldBalance is grams owed (gold traders only).
	GoldBalance float64 `json:"goldBalance"`
	// CashBalance is money owed. For gold traders it tracks workmanship fees;
	// for silver traders the work weight is consumed into the cash figure at
	// the transaction's silver price.
	CashBalance float64 `json:"cashBalance"`
}

// ComputeTraderAccount re-scans all of a trader's transactions and derives
// its balances according to the trader's category.
func ComputeTraderAccount(category model.MetalCategory, txs []model.TraderTransaction) TraderAccount {
	var acc TraderAccount
	for _, t := range txs {
		acc.TotalWorkWeight += num(t.WorkWeight)
		acc.TotalScrapWeight += num(t.ScrapWeight)
		acc.TotalWorkmanshipFee += num(t.WorkmanshipFee)
		acc.TotalCashPayment += num(t.CashPayment)
	}

	if category == model.CategorySilver {
		for _, t := range txs {
			required := num(t.WorkWeight)*num(t.SilverPricePerGram) + num(t.WorkmanshipFee)
			acc.CashBalance += required - num(t.CashPayment)
		}
		return acc
	}

	acc.GoldBalance = acc.TotalWorkWeight - acc.TotalScrapWeight
	acc.CashBalance = acc.TotalWorkmanshipFee - acc.TotalCashPayment
	return acc
}

// ComputeTraderAccounts derives every trader's balances in one pass over the
// transaction set, keyed by trader id.
func ComputeTraderAccounts(traders []model.Trader, txs []model.TraderTransaction) map[uuid.UUID]TraderAccount {
	byTrader := make(map[uuid.UUID][]model.TraderTransaction)
	for _, t := range txs {
		byTrader[t.TraderID] = append(byTrader[t.TraderID], t)
	}

	accounts := make(map[uuid.UUID]TraderAccount, len(traders))
	for _, trader := range traders {
		accounts[trader.ID] = ComputeTraderAccount(trader.Category, byTrader[trader.ID])
	}
	return accounts
}

// SilverRequiredCash prices one silver transaction: work value plus fee.
func SilverRequiredCash(t model.TraderTransaction) float64 {
	return num(t.WorkWeight)*num(t.SilverPricePerGram) + num(t.WorkmanshipFee)
}
