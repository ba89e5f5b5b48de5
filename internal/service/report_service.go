package service

import (
	"context"
	"time"

	"github.com/fady121/alfady/internal/apierror"
	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/ledger"
	"github.com/fady121/alfady/internal/model"
	"github.com/fady121/alfady/internal/repository"
)

const trendDays = 30

type ReportService interface {
	Summary(ctx context.Context, filter dto.ReportFilter) (*dto.SummaryResponse, error)
	Trend(ctx context.Context) (*dto.TrendResponse, error)
	Log(ctx context.Context, filter dto.ReportFilter) (*dto.LogResponse, error)
}

type reportService struct {
	invoiceRepo repository.InvoiceRepository
	traderRepo  repository.TraderRepository
	txRepo      repository.TransactionRepository
}

func NewReportService(
	invoiceRepo repository.InvoiceRepository,
	traderRepo repository.TraderRepository,
	txRepo repository.TransactionRepository,
) ReportService {
	return &reportService{invoiceRepo: invoiceRepo, traderRepo: traderRepo, txRepo: txRepo}
}

// Summary derives the dashboard aggregate for the requested window. Sales
// and purchases honor the window; inventory and wallets are always all-time,
// since neither stock on hand nor cash in a drawer depends on the report
// period.
func (s *reportService) Summary(ctx context.Context, filter dto.ReportFilter) (*dto.SummaryResponse, error) {
	w, err := windowFromRange(filter.Range, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, apierror.NewValidation(err.Error())
	}

	invoices, traders, traderTxs, txs, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	balances := ledger.ComputeWalletBalances(invoices, txs, traderTxs)
	wallets := make(map[string]float64, len(balances))
	for method, amount := range balances {
		wallets[string(method)] = amount
	}

	return &dto.SummaryResponse{
		Sales:     ledger.ComputeSalesSummary(invoices, w),
		Purchases: ledger.ComputePurchasesSummary(traders, traderTxs, w),
		Inventory: ledger.ComputeInventory(traders, traderTxs, invoices),
		Wallets:   wallets,
		Total:     balances.Grand(),
	}, nil
}

func (s *reportService) Trend(ctx context.Context) (*dto.TrendResponse, error) {
	invoices, _, traderTxs, txs, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TrendResponse{Points: ledger.ComputeTrend(invoices, txs, traderTxs, time.Now(), trendDays)}, nil
}

func (s *reportService) Log(ctx context.Context, filter dto.ReportFilter) (*dto.LogResponse, error) {
	w, err := windowFromRange(filter.Range, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, apierror.NewValidation(err.Error())
	}
	invoices, traders, traderTxs, txs, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.LogResponse{Data: ledger.BuildLog(invoices, txs, traderTxs, traders, w)}, nil
}

func (s *reportService) loadAll(ctx context.Context) ([]model.Invoice, []model.Trader, []model.TraderTransaction, []model.Transaction, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	traders, err := s.traderRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	traderTxs, err := s.traderRepo.ListAllTransactions(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	txs, err := s.txRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return invoices, traders, traderTxs, txs, nil
}
