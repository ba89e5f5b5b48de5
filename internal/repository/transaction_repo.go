package repository

import (
	"context"

	"github.com/fady121/alfady/internal/ledger"
	"github.com/fady121/alfady/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *model.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	List(ctx context.Context, w ledger.Window) ([]model.Transaction, error)
	ListAll(ctx context.Context) ([]model.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository { return &transactionRepo{db: db} }

func (r *transactionRepo) Create(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var t model.Transaction
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *transactionRepo) List(ctx context.Context, w ledger.Window) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := applyWindow(r.db.WithContext(ctx).Model(&model.Transaction{}), "date", w).
		Order("date DESC").Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) ListAll(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Transaction{}, id).Error
}
