package repository

import (
	"context"

	"github.com/fady121/alfady/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TraderRepository interface {
	Create(ctx context.Context, t *model.Trader) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Trader, error)
	List(ctx context.Context) ([]model.Trader, error)
	Update(ctx context.Context, t *model.Trader) error
	// Delete removes the trader and all of its transactions in one DB
	// transaction so a crash can never leave orphaned rows behind.
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error

	CreateTransaction(ctx context.Context, t *model.TraderTransaction) error
	UpdateTransaction(ctx context.Context, t *model.TraderTransaction) error
	FindTransactionByID(ctx context.Context, id uuid.UUID) (*model.TraderTransaction, error)
	ListTransactions(ctx context.Context, traderID uuid.UUID) ([]model.TraderTransaction, error)
	ListAllTransactions(ctx context.Context) ([]model.TraderTransaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	DB() *gorm.DB
}

type traderRepo struct{ db *gorm.DB }

func NewTraderRepository(db *gorm.DB) TraderRepository { return &traderRepo{db: db} }

func (r *traderRepo) DB() *gorm.DB { return r.db }

func (r *traderRepo) Create(ctx context.Context, t *model.Trader) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *traderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Trader, error) {
	var t model.Trader
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *traderRepo) List(ctx context.Context) ([]model.Trader, error) {
	var traders []model.Trader
	err := r.db.WithContext(ctx).Order("name ASC").Find(&traders).Error
	return traders, err
}

func (r *traderRepo) Update(ctx context.Context, t *model.Trader) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *traderRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if err := tx.WithContext(ctx).Where("trader_id = ?", id).Delete(&model.TraderTransaction{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Delete(&model.Trader{}, id).Error
}

func (r *traderRepo) CreateTransaction(ctx context.Context, t *model.TraderTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *traderRepo) UpdateTransaction(ctx context.Context, t *model.TraderTransaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *traderRepo) FindTransactionByID(ctx context.Context, id uuid.UUID) (*model.TraderTransaction, error) {
	var t model.TraderTransaction
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *traderRepo) ListTransactions(ctx context.Context, traderID uuid.UUID) ([]model.TraderTransaction, error) {
	var txs []model.TraderTransaction
	err := r.db.WithContext(ctx).Where("trader_id = ?", traderID).Order("date ASC").Find(&txs).Error
	return txs, err
}

func (r *traderRepo) ListAllTransactions(ctx context.Context) ([]model.TraderTransaction, error) {
	var txs []model.TraderTransaction
	err := r.db.WithContext(ctx).Find(&txs).Error
	return txs, err
}

func (r *traderRepo) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TraderTransaction{}, id).Error
}
