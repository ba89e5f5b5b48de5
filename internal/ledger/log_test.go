package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fady121/alfady/internal/model"
)

func TestBuildLog_NewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	trader := model.Trader{ID: uuid.New(), Name: "x", Category: model.CategoryGold}

	invoices := []model.Invoice{{ID: uuid.New(), Date: base.AddDate(0, 0, 1), CustomerName: "c"}}
	txs := []model.Transaction{{ID: uuid.New(), Type: model.TxExpense, Date: base.AddDate(0, 0, 3), Description: "rent", Amount: 100}}
	traderTxs := []model.TraderTransaction{{ID: uuid.New(), TraderID: trader.ID, Date: base.AddDate(0, 0, 2)}}

	entries := BuildLog(invoices, txs, traderTxs, []model.Trader{trader}, AllTime())
	require.Len(t, entries, 3)
	assert.Equal(t, RecordGeneral, entries[0].Type)
	assert.Equal(t, RecordTraderTransaction, entries[1].Type)
	assert.Equal(t, RecordInvoice, entries[2].Type)
}

func TestBuildLog_StableOnEqualDates(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	trader := model.Trader{ID: uuid.New(), Name: "x", Category: model.CategoryGold}

	entries := BuildLog(
		[]model.Invoice{{ID: uuid.New(), Date: at, CustomerName: "c"}},
		[]model.Transaction{{ID: uuid.New(), Type: model.TxDeposit, Date: at, Amount: 5}},
		[]model.TraderTransaction{{ID: uuid.New(), TraderID: trader.ID, Date: at}},
		[]model.Trader{trader},
		AllTime(),
	)
	require.Len(t, entries, 3)
	assert.Equal(t, RecordInvoice, entries[0].Type)
	assert.Equal(t, RecordGeneral, entries[1].Type)
	assert.Equal(t, RecordTraderTransaction, entries[2].Type)
}

func TestBuildLog_ExpenseAmountIsNegative(t *testing.T) {
	txs := []model.Transaction{
		{ID: uuid.New(), Type: model.TxExpense, Date: time.Now(), Amount: 100},
		{ID: uuid.New(), Type: model.TxDeposit, Date: time.Now(), Amount: 40},
	}

	entries := BuildLog(nil, txs, nil, nil, AllTime())
	require.Len(t, entries, 2)
	for _, e := range entries {
		if e.Amount < 0 {
			assert.InDelta(t, -100, e.Amount, CashEpsilon)
		} else {
			assert.InDelta(t, 40, e.Amount, CashEpsilon)
		}
	}
}

func TestBuildLog_DeletedTraderSentinel(t *testing.T) {
	traderTxs := []model.TraderTransaction{
		{ID: uuid.New(), TraderID: uuid.New(), Date: time.Now(), CashPayment: 50},
	}

	entries := BuildLog(nil, nil, traderTxs, nil, AllTime())
	require.Len(t, entries, 1)
	assert.Equal(t, DeletedTraderName, entries[0].TraderName)
}

func TestBuildLog_WindowFilters(t *testing.T) {
	old := []model.Invoice{{ID: uuid.New(), Date: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)}}

	w, err := NewWindow(RangeToday, time.Now(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, BuildLog(old, nil, nil, nil, w))
}
