// Package ledger holds the pure derivation rules of the bookkeeping core:
// invoice totals, trader account balances, treasury wallet balances, report
// summaries and the unified chronological log. Nothing here performs I/O:
// every function recomputes its result from the raw records it is given, so
// callers can never observe a stale derived value.
//
// All arithmetic is ordinary float64. Settlement checks ("is this invoice
// paid off", "is this trader square") therefore use small epsilon tolerances
// instead of exact comparison, because balances are sums of many independently
// rounded entries.
package ledger

import "math"

const (
	// CashEpsilon is the tolerance for treating a currency balance as zero.
	CashEpsilon = 0.01
	// WeightEpsilon is the tolerance for treating a gram balance as zero.
	WeightEpsilon = 0.001
)

// CashSettled reports whether a currency balance is zero within tolerance.
func CashSettled(v float64) bool { return math.Abs(v) <= CashEpsilon }

// WeightSettled reports whether a gram balance is zero within tolerance.
func WeightSettled(v float64) bool { return math.Abs(v) <= WeightEpsilon }

// num sanitizes optional numeric input: NaN and infinities collapse to 0.
// Explicit payment amounts are validated at the service boundary instead,
// where a malformed amount is an error, not a silent zero.
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
