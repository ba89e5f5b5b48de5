package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fady121/alfady/internal/model"
)

func TestComputeTraderAccount_Gold(t *testing.T) {
	txs := []model.TraderTransaction{
		{WorkWeight: 20, ScrapWeight: 7, WorkmanshipFee: 500, CashPayment: 300},
	}

	acc := ComputeTraderAccount(model.CategoryGold, txs)
	assert.InDelta(t, 13, acc.GoldBalance, WeightEpsilon)
	assert.InDelta(t, 200, acc.CashBalance, CashEpsilon)
	assert.InDelta(t, 20, acc.TotalWorkWeight, WeightEpsilon)
	assert.InDelta(t, 7, acc.TotalScrapWeight, WeightEpsilon)
}

func TestComputeTraderAccount_Silver(t *testing.T) {
	txs := []model.TraderTransaction{
		{WorkWeight: 10, SilverPricePerGram: 30, WorkmanshipFee: 50, CashPayment: 200},
	}

	acc := ComputeTraderAccount(model.CategorySilver, txs)
	assert.InDelta(t, 150, acc.CashBalance, CashEpsilon)
	assert.Zero(t, acc.GoldBalance)
}

func TestComputeTraderAccount_SilverMultipleTransactions(t *testing.T) {
	txs := []model.TraderTransaction{
		{WorkWeight: 10, SilverPricePerGram: 30, WorkmanshipFee: 50},
		{CashPayment: 350},
	}

	acc := ComputeTraderAccount(model.CategorySilver, txs)
	assert.True(t, CashSettled(acc.CashBalance))
}

func TestComputeTraderAccount_Empty(t *testing.T) {
	acc := ComputeTraderAccount(model.CategoryGold, nil)
	assert.Zero(t, acc.GoldBalance)
	assert.Zero(t, acc.CashBalance)
}

func TestComputeTraderAccounts_GroupsByTrader(t *testing.T) {
	gold := model.Trader{ID: uuid.New(), Name: "a", Category: model.CategoryGold}
	silver := model.Trader{ID: uuid.New(), Name: "b", Category: model.CategorySilver}

	txs := []model.TraderTransaction{
		{TraderID: gold.ID, WorkWeight: 20, ScrapWeight: 7},
		{TraderID: silver.ID, WorkWeight: 10, SilverPricePerGram: 30, WorkmanshipFee: 50, CashPayment: 200},
		{TraderID: uuid.New(), WorkWeight: 999},
	}

	accounts := ComputeTraderAccounts([]model.Trader{gold, silver}, txs)
	assert.Len(t, accounts, 2)
	assert.InDelta(t, 13, accounts[gold.ID].GoldBalance, WeightEpsilon)
	assert.InDelta(t, 150, accounts[silver.ID].CashBalance, CashEpsilon)
}
