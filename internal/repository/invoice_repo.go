package repository

import (
	"context"

	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/ledger"
	"github.com/fady121/alfady/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	List(ctx context.Context, filter dto.InvoiceFilter, w ledger.Window) ([]model.Invoice, int64, error)
	// ListAll loads every invoice with items and payments; the aggregators
	// recompute treasury and summaries from the full set.
	ListAll(ctx context.Context) ([]model.Invoice, error)
	Update(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	ReplaceItems(ctx context.Context, tx *gorm.DB, invoiceID uuid.UUID, items []model.InvoiceItem) error
	AddPayment(ctx context.Context, tx *gorm.DB, p *model.Payment) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

func (r *invoiceRepo) DB() *gorm.DB { return r.db }

func (r *invoiceRepo) Create(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error {
	return tx.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).Preload("Items").Preload("Payments").First(&inv, id).Error
	return &inv, err
}

func (r *invoiceRepo) List(ctx context.Context, filter dto.InvoiceFilter, w ledger.Window) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := applyWindow(r.db.WithContext(ctx).Model(&model.Invoice{}), "date", w)
	if filter.Channel != "" {
		q = q.Where("channel = ?", filter.Channel)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Items").Preload("Payments").
		Order("date DESC, created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepo) ListAll(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).Preload("Items").Preload("Payments").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) Update(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error {
	return tx.WithContext(ctx).Omit("Items", "Payments").Save(inv).Error
}

func (r *invoiceRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	// Items and payments go with it via ON DELETE CASCADE.
	return tx.WithContext(ctx).Delete(&model.Invoice{}, id).Error
}

func (r *invoiceRepo) ReplaceItems(ctx context.Context, tx *gorm.DB, invoiceID uuid.UUID, items []model.InvoiceItem) error {
	if err := tx.WithContext(ctx).Where("invoice_id = ?", invoiceID).Delete(&model.InvoiceItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].InvoiceID = invoiceID
	}
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *invoiceRepo) AddPayment(ctx context.Context, tx *gorm.DB, p *model.Payment) error {
	return tx.WithContext(ctx).Create(p).Error
}

// applyWindow translates a resolved time window into SQL on the given column.
func applyWindow(q *gorm.DB, column string, w ledger.Window) *gorm.DB {
	if w.Empty() {
		return q.Where("1 = 0")
	}
	if w.Unbounded() {
		return q
	}
	q = q.Where(column+" >= ?", w.Start)
	if !w.End.IsZero() {
		q = q.Where(column+" <= ?", w.End)
	}
	return q
}
