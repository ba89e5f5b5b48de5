package service

import (
	"context"
	"errors"
	"sort"

	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/ledger"
	"github.com/fady121/alfady/internal/model"
	"github.com/fady121/alfady/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubInvoiceRepo is an in-memory InvoiceRepository for testing.
type stubInvoiceRepo struct {
	invoices map[uuid.UUID]*model.Invoice
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[uuid.UUID]*model.Invoice)}
}

func (r *stubInvoiceRepo) Create(_ context.Context, _ *gorm.DB, inv *model.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	for i := range inv.Items {
		if inv.Items[i].ID == uuid.Nil {
			inv.Items[i].ID = uuid.New()
		}
		inv.Items[i].InvoiceID = inv.ID
	}
	for i := range inv.Payments {
		if inv.Payments[i].ID == uuid.Nil {
			inv.Payments[i].ID = uuid.New()
		}
		inv.Payments[i].InvoiceID = inv.ID
	}
	r.invoices[inv.ID] = inv
	return nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *inv
	return &cp, nil
}

func (r *stubInvoiceRepo) List(_ context.Context, filter dto.InvoiceFilter, w ledger.Window) ([]model.Invoice, int64, error) {
	var out []model.Invoice
	for _, inv := range r.invoices {
		if !w.Contains(inv.Date) {
			continue
		}
		if filter.Channel != "" && string(inv.Channel) != filter.Channel {
			continue
		}
		out = append(out, *inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, int64(len(out)), nil
}

func (r *stubInvoiceRepo) ListAll(_ context.Context) ([]model.Invoice, error) {
	out := make([]model.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, _ *gorm.DB, inv *model.Invoice) error {
	stored, ok := r.invoices[inv.ID]
	if !ok {
		return errors.New("not found")
	}
	items, payments := stored.Items, stored.Payments
	*stored = *inv
	stored.Items, stored.Payments = items, payments
	return nil
}

func (r *stubInvoiceRepo) Delete(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	delete(r.invoices, id)
	return nil
}

func (r *stubInvoiceRepo) ReplaceItems(_ context.Context, _ *gorm.DB, invoiceID uuid.UUID, items []model.InvoiceItem) error {
	inv, ok := r.invoices[invoiceID]
	if !ok {
		return errors.New("not found")
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].InvoiceID = invoiceID
	}
	inv.Items = items
	return nil
}

func (r *stubInvoiceRepo) AddPayment(_ context.Context, _ *gorm.DB, p *model.Payment) error {
	inv, ok := r.invoices[p.InvoiceID]
	if !ok {
		return errors.New("not found")
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	inv.Payments = append(inv.Payments, *p)
	return nil
}

func (r *stubInvoiceRepo) DB() *gorm.DB { return nil }

var _ repository.InvoiceRepository = (*stubInvoiceRepo)(nil)

// stubTraderRepo is an in-memory TraderRepository for testing.
type stubTraderRepo struct {
	traders map[uuid.UUID]*model.Trader
	txs     map[uuid.UUID]*model.TraderTransaction
}

func newStubTraderRepo() *stubTraderRepo {
	return &stubTraderRepo{
		traders: make(map[uuid.UUID]*model.Trader),
		txs:     make(map[uuid.UUID]*model.TraderTransaction),
	}
}

func (r *stubTraderRepo) Create(_ context.Context, t *model.Trader) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.traders[t.ID] = t
	return nil
}

func (r *stubTraderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Trader, error) {
	t, ok := r.traders[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *t
	return &cp, nil
}

func (r *stubTraderRepo) List(_ context.Context) ([]model.Trader, error) {
	out := make([]model.Trader, 0, len(r.traders))
	for _, t := range r.traders {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubTraderRepo) Update(_ context.Context, t *model.Trader) error {
	if _, ok := r.traders[t.ID]; !ok {
		return errors.New("not found")
	}
	r.traders[t.ID] = t
	return nil
}

func (r *stubTraderRepo) Delete(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	for txID, tx := range r.txs {
		if tx.TraderID == id {
			delete(r.txs, txID)
		}
	}
	delete(r.traders, id)
	return nil
}

func (r *stubTraderRepo) CreateTransaction(_ context.Context, t *model.TraderTransaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.txs[t.ID] = t
	return nil
}

func (r *stubTraderRepo) UpdateTransaction(_ context.Context, t *model.TraderTransaction) error {
	if _, ok := r.txs[t.ID]; !ok {
		return errors.New("not found")
	}
	r.txs[t.ID] = t
	return nil
}

func (r *stubTraderRepo) FindTransactionByID(_ context.Context, id uuid.UUID) (*model.TraderTransaction, error) {
	tx, ok := r.txs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *tx
	return &cp, nil
}

func (r *stubTraderRepo) ListTransactions(_ context.Context, traderID uuid.UUID) ([]model.TraderTransaction, error) {
	var out []model.TraderTransaction
	for _, tx := range r.txs {
		if tx.TraderID == traderID {
			out = append(out, *tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *stubTraderRepo) ListAllTransactions(_ context.Context) ([]model.TraderTransaction, error) {
	out := make([]model.TraderTransaction, 0, len(r.txs))
	for _, tx := range r.txs {
		out = append(out, *tx)
	}
	return out, nil
}

func (r *stubTraderRepo) DeleteTransaction(_ context.Context, id uuid.UUID) error {
	delete(r.txs, id)
	return nil
}

func (r *stubTraderRepo) DB() *gorm.DB { return nil }

var _ repository.TraderRepository = (*stubTraderRepo)(nil)

// stubTransactionRepo is an in-memory TransactionRepository for testing.
type stubTransactionRepo struct {
	txs map[uuid.UUID]*model.Transaction
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{txs: make(map[uuid.UUID]*model.Transaction)}
}

func (r *stubTransactionRepo) Create(_ context.Context, t *model.Transaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.txs[t.ID] = t
	return nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Transaction, error) {
	t, ok := r.txs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *t
	return &cp, nil
}

func (r *stubTransactionRepo) List(_ context.Context, w ledger.Window) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range r.txs {
		if w.Contains(t.Date) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *stubTransactionRepo) ListAll(_ context.Context) ([]model.Transaction, error) {
	out := make([]model.Transaction, 0, len(r.txs))
	for _, t := range r.txs {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.txs, id)
	return nil
}

var _ repository.TransactionRepository = (*stubTransactionRepo)(nil)
