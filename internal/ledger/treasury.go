package ledger

import (
	"github.com/fady121/alfady/internal/model"
)

// WalletBalances maps each payment rail to its derived cash position.
type WalletBalances map[model.PaymentMethod]float64

// Grand returns the total cash position across all wallets.
func (w WalletBalances) Grand() float64 {
	var sum float64
	for _, v := range w {
		sum += v
	}
	return sum
}

// ComputeWalletBalances derives the per-method treasury position from scratch:
//
//   - every invoice payment lands in its method's bucket (the sign already
//     encodes direction),
//   - general DEPOSITs add and EXPENSEs subtract on their method (CASH when
//     unset); legacy transaction types are ignored,
//   - trader cash payments come out of the CASH bucket only; trader
//     settlements are cash by convention.
//
// The function is pure: recomputing from the same records yields the same
// balances, so callers simply re-run it after any mutation.
func ComputeWalletBalances(invoices []model.Invoice, txs []model.Transaction, traderTxs []model.TraderTransaction) WalletBalances {
	balances := WalletBalances{}
	for _, m := range model.WalletMethods() {
		balances[m] = 0
	}

	for _, inv := range invoices {
		for _, p := range inv.Payments {
			if _, ok := balances[p.Method]; ok {
				balances[p.Method] += p.Amount
			}
		}
	}

	for _, t := range txs {
		method := t.PaymentMethod
		if method == "" {
			method = model.MethodCash
		}
		if _, ok := balances[method]; !ok {
			continue
		}
		switch t.Type {
		case model.TxDeposit:
			balances[method] += num(t.Amount)
		case model.TxExpense:
			balances[method] -= num(t.Amount)
		}
	}

	for _, t := range traderTxs {
		balances[model.MethodCash] -= num(t.CashPayment)
	}

	return balances
}
