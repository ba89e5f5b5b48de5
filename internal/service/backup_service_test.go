package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/fady121/alfady/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooks(t *testing.T, invoiceRepo *stubInvoiceRepo, traderRepo *stubTraderRepo, txRepo *stubTransactionRepo) {
	t.Helper()

	invoiceSvc := NewInvoiceService(invoiceRepo)
	req := createReq(sellItem())
	req.Payments = []dto.PaymentRequest{{Method: "CASH", Amount: 1050}}
	_, err := invoiceSvc.Create(context.Background(), req)
	require.NoError(t, err)

	traderSvc := NewTraderService(traderRepo)
	traderID := seedTrader(t, traderSvc, "GOLD")
	_, err = traderSvc.AddTransaction(context.Background(), traderID, dto.TraderTransactionRequest{
		Date: "2025-06-01", WorkWeight: 20, WorkmanshipFee: 600,
	})
	require.NoError(t, err)

	treasurySvc := NewTreasuryService(txRepo, invoiceRepo, traderRepo)
	_, err = treasurySvc.AddTransaction(context.Background(), dto.CreateTransactionRequest{
		Type: "DEPOSIT", Date: "2025-06-01", Description: "capital", Amount: 500,
	})
	require.NoError(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	invoiceRepo := newStubInvoiceRepo()
	traderRepo := newStubTraderRepo()
	txRepo := newStubTransactionRepo()
	seedBooks(t, invoiceRepo, traderRepo, txRepo)

	src := NewBackupService(invoiceRepo, traderRepo, txRepo, t.TempDir())
	f, name, err := src.Export(context.Background(), dto.ReportFilter{Range: "all"})
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, name, ".xlsx")

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	// Restore into an empty set of books.
	freshInvoices := newStubInvoiceRepo()
	freshTraders := newStubTraderRepo()
	freshTxs := newStubTransactionRepo()
	dst := NewBackupService(freshInvoices, freshTraders, freshTxs, t.TempDir())

	resp, err := dst.Import(context.Background(), bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Invoices)
	assert.Equal(t, 1, resp.Traders)
	assert.Equal(t, 1, resp.TraderTransactions)
	assert.Equal(t, 1, resp.Transactions)

	for _, inv := range freshInvoices.invoices {
		require.Len(t, inv.Items, 1)
		assert.Equal(t, 10.0, inv.Items[0].Weight)
		require.Len(t, inv.Payments, 1)
		assert.Equal(t, 1050.0, inv.Payments[0].Amount)
	}

	// Importing the same file again must change nothing.
	again, err := dst.Import(context.Background(), bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 0, again.Invoices)
	assert.Equal(t, 0, again.Traders)
	assert.Equal(t, 0, again.TraderTransactions)
	assert.Equal(t, 0, again.Transactions)
}

func TestWriteBackupFileCreatesSnapshot(t *testing.T) {
	invoiceRepo := newStubInvoiceRepo()
	traderRepo := newStubTraderRepo()
	txRepo := newStubTransactionRepo()
	seedBooks(t, invoiceRepo, traderRepo, txRepo)

	svc := NewBackupService(invoiceRepo, traderRepo, txRepo, t.TempDir())
	path, err := svc.WriteBackupFile(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, path)
}
