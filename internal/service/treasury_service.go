package service

import (
	"context"
	"time"

	"github.com/fady121/alfady/internal/apierror"
	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/ledger"
	"github.com/fady121/alfady/internal/model"
	"github.com/fady121/alfady/internal/repository"

	"github.com/google/uuid"
)

type TreasuryService interface {
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	ListTransactions(ctx context.Context, filter dto.ReportFilter) (*dto.TransactionListResponse, error)
	Wallets(ctx context.Context) (*dto.TreasuryResponse, error)
}

type treasuryService struct {
	txRepo      repository.TransactionRepository
	invoiceRepo repository.InvoiceRepository
	traderRepo  repository.TraderRepository
}

func NewTreasuryService(
	txRepo repository.TransactionRepository,
	invoiceRepo repository.InvoiceRepository,
	traderRepo repository.TraderRepository,
) TreasuryService {
	return &treasuryService{txRepo: txRepo, invoiceRepo: invoiceRepo, traderRepo: traderRepo}
}

func (s *treasuryService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apierror.NewValidation("date must be YYYY-MM-DD")
	}
	method := model.PaymentMethod(req.PaymentMethod)
	if method == "" {
		method = model.MethodCash
	}

	t := model.Transaction{
		Type:          model.TransactionType(req.Type),
		Date:          date,
		Description:   req.Description,
		Amount:        req.Amount,
		PaymentMethod: method,
	}
	if err := s.txRepo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return transactionToResponse(&t), nil
}

func (s *treasuryService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if _, err := s.txRepo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("transaction not found")
	}
	return s.txRepo.Delete(ctx, id)
}

func (s *treasuryService) ListTransactions(ctx context.Context, filter dto.ReportFilter) (*dto.TransactionListResponse, error) {
	w, err := windowFromRange(filter.Range, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, apierror.NewValidation(err.Error())
	}
	txs, err := s.txRepo.List(ctx, w)
	if err != nil {
		return nil, err
	}
	data := make([]dto.TransactionResponse, 0, len(txs))
	for i := range txs {
		data = append(data, *transactionToResponse(&txs[i]))
	}
	return &dto.TransactionListResponse{Data: data}, nil
}

// Wallets recomputes the four treasury buckets from every money-bearing
// record. Nothing is cached: a recompute after any mutation is always
// consistent with the records that exist at that moment.
func (s *treasuryService) Wallets(ctx context.Context) (*dto.TreasuryResponse, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	traderTxs, err := s.traderRepo.ListAllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	balances := ledger.ComputeWalletBalances(invoices, txs, traderTxs)
	wallets := make(map[string]float64, len(balances))
	for method, amount := range balances {
		wallets[string(method)] = amount
	}
	return &dto.TreasuryResponse{Wallets: wallets, Total: balances.Grand()}, nil
}

func transactionToResponse(t *model.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:            t.ID.String(),
		Type:          string(t.Type),
		Date:          t.Date.Format(dateLayout),
		Description:   t.Description,
		Amount:        t.Amount,
		PaymentMethod: string(t.PaymentMethod),
	}
}
