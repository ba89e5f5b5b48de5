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
	"gorm.io/gorm"
)

type TraderService interface {
	Create(ctx context.Context, req dto.CreateTraderRequest) (*dto.TraderResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TraderDetailResponse, error)
	List(ctx context.Context) (*dto.TraderListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTraderRequest) (*dto.TraderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddTransaction(ctx context.Context, traderID uuid.UUID, req dto.TraderTransactionRequest) (*dto.TraderDetailResponse, error)
	UpdateTransaction(ctx context.Context, traderID, txID uuid.UUID, req dto.TraderTransactionRequest) (*dto.TraderDetailResponse, error)
	DeleteTransaction(ctx context.Context, traderID, txID uuid.UUID) error
	Account(ctx context.Context, id uuid.UUID) (*ledger.TraderAccount, error)
}

type traderService struct {
	repo repository.TraderRepository
}

func NewTraderService(repo repository.TraderRepository) TraderService {
	return &traderService{repo: repo}
}

func (s *traderService) Create(ctx context.Context, req dto.CreateTraderRequest) (*dto.TraderResponse, error) {
	t := model.Trader{
		Name:     req.Name,
		Phone:    req.Phone,
		Category: model.MetalCategory(req.Category),
	}
	if err := s.repo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return traderToResponse(&t, ledger.TraderAccount{}), nil
}

func (s *traderService) Get(ctx context.Context, id uuid.UUID) (*dto.TraderDetailResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("trader not found")
	}
	txs, err := s.repo.ListTransactions(ctx, id)
	if err != nil {
		return nil, err
	}
	return traderToDetail(t, txs), nil
}

func (s *traderService) List(ctx context.Context) (*dto.TraderListResponse, error) {
	traders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.repo.ListAllTransactions(ctx)
	if err != nil {
		return nil, err
	}
	accounts := ledger.ComputeTraderAccounts(traders, txs)

	data := make([]dto.TraderResponse, 0, len(traders))
	for i := range traders {
		data = append(data, *traderToResponse(&traders[i], accounts[traders[i].ID]))
	}
	return &dto.TraderListResponse{Data: data}, nil
}

func (s *traderService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTraderRequest) (*dto.TraderResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("trader not found")
	}
	t.Name = req.Name
	t.Phone = req.Phone
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	acc, err := s.Account(ctx, id)
	if err != nil {
		return nil, err
	}
	return traderToResponse(t, *acc), nil
}

// Delete removes the trader together with every transaction it owns, in one
// DB transaction. Unified-log entries that referenced it fall back to the
// deleted-trader placeholder on the next read.
func (s *traderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("trader not found")
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, id)
	})
}

func (s *traderService) AddTransaction(ctx context.Context, traderID uuid.UUID, req dto.TraderTransactionRequest) (*dto.TraderDetailResponse, error) {
	t, err := s.repo.FindByID(ctx, traderID)
	if err != nil {
		return nil, apierror.NotFound("trader not found")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apierror.NewValidation("date must be YYYY-MM-DD")
	}

	if err := validateTraderTx(t.Category, req); err != nil {
		return nil, err
	}

	tx := model.TraderTransaction{
		TraderID:           traderID,
		Date:               date,
		Description:        req.Description,
		WorkWeight:         req.WorkWeight,
		ScrapWeight:        req.ScrapWeight,
		WorkmanshipFee:     req.WorkmanshipFee,
		SilverPricePerGram: req.SilverPricePerGram,
		CashPayment:        req.CashPayment,
	}
	if err := s.repo.CreateTransaction(ctx, &tx); err != nil {
		return nil, err
	}

	txs, err := s.repo.ListTransactions(ctx, traderID)
	if err != nil {
		return nil, err
	}
	return traderToDetail(t, txs), nil
}

// UpdateTransaction rewrites one transaction in place. The transaction must
// belong to the addressed trader; a mismatch reads as not-found rather than
// leaking that the id exists under someone else.
func (s *traderService) UpdateTransaction(ctx context.Context, traderID, txID uuid.UUID, req dto.TraderTransactionRequest) (*dto.TraderDetailResponse, error) {
	t, err := s.repo.FindByID(ctx, traderID)
	if err != nil {
		return nil, apierror.NotFound("trader not found")
	}
	tx, err := s.repo.FindTransactionByID(ctx, txID)
	if err != nil || tx.TraderID != traderID {
		return nil, apierror.NotFound("transaction not found")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apierror.NewValidation("date must be YYYY-MM-DD")
	}
	if err := validateTraderTx(t.Category, req); err != nil {
		return nil, err
	}

	tx.Date = date
	tx.Description = req.Description
	tx.WorkWeight = req.WorkWeight
	tx.ScrapWeight = req.ScrapWeight
	tx.WorkmanshipFee = req.WorkmanshipFee
	tx.SilverPricePerGram = req.SilverPricePerGram
	tx.CashPayment = req.CashPayment
	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	txs, err := s.repo.ListTransactions(ctx, traderID)
	if err != nil {
		return nil, err
	}
	return traderToDetail(t, txs), nil
}

func (s *traderService) DeleteTransaction(ctx context.Context, traderID, txID uuid.UUID) error {
	tx, err := s.repo.FindTransactionByID(ctx, txID)
	if err != nil || tx.TraderID != traderID {
		return apierror.NotFound("transaction not found")
	}
	return s.repo.DeleteTransaction(ctx, txID)
}

func (s *traderService) Account(ctx context.Context, id uuid.UUID) (*ledger.TraderAccount, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("trader not found")
	}
	txs, err := s.repo.ListTransactions(ctx, id)
	if err != nil {
		return nil, err
	}
	acc := ledger.ComputeTraderAccount(t.Category, txs)
	return &acc, nil
}

// validateTraderTx enforces the category split: silver transactions price
// their work and never carry scrap, gold transactions never carry a silver
// price.
func validateTraderTx(category model.MetalCategory, req dto.TraderTransactionRequest) error {
	if category == model.CategorySilver {
		if req.ScrapWeight > 0 {
			return apierror.NewValidation("silver traders take no scrap weight")
		}
		if req.WorkWeight > 0 && req.SilverPricePerGram <= 0 {
			return apierror.NewValidation("silver work requires silverPricePerGram")
		}
		return nil
	}
	if req.SilverPricePerGram > 0 {
		return apierror.NewValidation("silverPricePerGram applies to silver traders only")
	}
	return nil
}

// ── Conversion ───────────────────────────────────────────────────────────────

func traderToResponse(t *model.Trader, acc ledger.TraderAccount) *dto.TraderResponse {
	return &dto.TraderResponse{
		ID:       t.ID.String(),
		Name:     t.Name,
		Phone:    t.Phone,
		Category: string(t.Category),
		Account:  acc,
	}
}

func traderToDetail(t *model.Trader, txs []model.TraderTransaction) *dto.TraderDetailResponse {
	resp := dto.TraderDetailResponse{
		TraderResponse: *traderToResponse(t, ledger.ComputeTraderAccount(t.Category, txs)),
		Transactions:   make([]dto.TraderTransactionResponse, 0, len(txs)),
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, dto.TraderTransactionResponse{
			ID:                 tx.ID.String(),
			TraderID:           tx.TraderID.String(),
			Date:               tx.Date.Format(dateLayout),
			Description:        tx.Description,
			WorkWeight:         tx.WorkWeight,
			ScrapWeight:        tx.ScrapWeight,
			WorkmanshipFee:     tx.WorkmanshipFee,
			SilverPricePerGram: tx.SilverPricePerGram,
			CashPayment:        tx.CashPayment,
		})
	}
	return &resp
}
