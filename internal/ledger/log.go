package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fady121/alfady/internal/model"
)

// RecordType tags the origin of a unified log entry.
type RecordType string

const (
	RecordInvoice           RecordType = "invoice"
	RecordGeneral           RecordType = "general"
	RecordTraderTransaction RecordType = "traderTransaction"
)

// DeletedTraderName is shown in place of a trader whose record no longer
// exists. Trader transactions reference traders weakly, so a transaction can
// outlive its trader.
const DeletedTraderName = "تاجر محذوف"

// LogEntry is one row of the unified activity log. Exactly the fields that
// make sense for the record type are set; the rest stay zero.
type LogEntry struct {
	Type        RecordType `json:"type"`
	ID          uuid.UUID  `json:"id"`
	Date        time.Time  `json:"date"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Weight      float64    `json:"weight,omitempty"`
	TraderName  string     `json:"traderName,omitempty"`
}

// BuildLog merges invoices, general transactions and trader transactions
// inside the window into one list, newest first. The sort is stable, so
// records sharing a date keep their merge order: invoices, then general
// transactions, then trader transactions.
func BuildLog(invoices []model.Invoice, txs []model.Transaction, traderTxs []model.TraderTransaction, traders []model.Trader, w Window) []LogEntry {
	names := make(map[uuid.UUID]string, len(traders))
	for _, t := range traders {
		names[t.ID] = t.Name
	}

	var entries []LogEntry

	for _, inv := range invoices {
		if !w.Contains(inv.Date) {
			continue
		}
		totals := ComputeInvoiceTotals(inv.Items, inv.Payments, inv.Shipping)
		desc := inv.CustomerName
		if desc == "" {
			desc = string(inv.Channel)
		}
		entries = append(entries, LogEntry{
			Type:        RecordInvoice,
			ID:          inv.ID,
			Date:        inv.Date,
			Description: desc,
			Amount:      totals.NetTotal,
		})
	}

	for _, t := range txs {
		if !w.Contains(t.Date) {
			continue
		}
		amount := num(t.Amount)
		if t.Type == model.TxExpense {
			amount = -amount
		}
		entries = append(entries, LogEntry{
			Type:        RecordGeneral,
			ID:          t.ID,
			Date:        t.Date,
			Description: t.Description,
			Amount:      amount,
		})
	}

	for _, t := range traderTxs {
		if !w.Contains(t.Date) {
			continue
		}
		name, ok := names[t.TraderID]
		if !ok {
			name = DeletedTraderName
		}
		entries = append(entries, LogEntry{
			Type:        RecordTraderTransaction,
			ID:          t.ID,
			Date:        t.Date,
			Description: t.Description,
			Amount:      num(t.CashPayment),
			Weight:      num(t.WorkWeight),
			TraderName:  name,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}
