package dto

import "github.com/fady121/alfady/internal/ledger"

// ─── Filter ──────────────────────────────────────────────────────────────────

// ReportFilter is shared by summary, log and export endpoints so they can
// never disagree on what a range means.
type ReportFilter struct {
	Range     string `form:"range,default=all" validate:"omitempty,oneof=today week month year custom all"`
	StartDate string `form:"startDate"` // YYYY-MM-DD; custom range only
	EndDate   string `form:"endDate"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SummaryResponse is the dashboard aggregate. Inventory is always all-time,
// regardless of the requested range.
type SummaryResponse struct {
	Sales     ledger.SalesSummary     `json:"sales"`
	Purchases ledger.PurchasesSummary `json:"purchases"`
	Inventory ledger.Inventory        `json:"inventory"`
	Wallets   map[string]float64      `json:"wallets"`
	Total     float64                 `json:"total"`
}

type TrendResponse struct {
	Points []ledger.TrendPoint `json:"points"`
}

type LogResponse struct {
	Data []ledger.LogEntry `json:"data"`
}

// InsightsResponse carries the model-generated sales commentary.
type InsightsResponse struct {
	Insights    string `json:"insights"`
	GeneratedAt string `json:"generatedAt"`
}

// ImportResponse reports how many records a workbook restore created.
type ImportResponse struct {
	Invoices           int `json:"invoices"`
	Traders            int `json:"traders"`
	TraderTransactions int `json:"traderTransactions"`
	Transactions       int `json:"transactions"`
}
