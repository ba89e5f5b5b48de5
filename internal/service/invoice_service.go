package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fady121/alfady/internal/apierror"
	"github.com/fady121/alfady/internal/dto"
	"github.com/fady121/alfady/internal/ledger"
	"github.com/fady121/alfady/internal/model"
	"github.com/fady121/alfady/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type InvoiceService interface {
	Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	List(ctx context.Context, filter dto.InvoiceFilter) (*dto.InvoiceListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddPayment(ctx context.Context, id uuid.UUID, req dto.PaymentRequest) (*dto.InvoiceResponse, error)
}

type invoiceService struct {
	repo repository.InvoiceRepository
}

func NewInvoiceService(repo repository.InvoiceRepository) InvoiceService {
	return &invoiceService{repo: repo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *invoiceService) Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apierror.NewValidation("date must be YYYY-MM-DD")
	}
	items, err := itemsFromRequests(req.Items)
	if err != nil {
		return nil, err
	}
	if req.Channel == string(model.ChannelStore) && req.Shipping > 0 {
		return nil, apierror.NewValidation("shipping applies to online invoices only")
	}
	payments, err := paymentsFromRequests(req.Payments, date)
	if err != nil {
		return nil, err
	}

	inv := model.Invoice{
		Date:            date,
		Channel:         model.SaleChannel(req.Channel),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Shipping:        req.Shipping,
		Notes:           req.Notes,
		Items:           items,
		Payments:        payments,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, &inv)
	})
	if txErr != nil {
		return nil, txErr
	}
	return invoiceToResponse(&inv), nil
}

func (s *invoiceService) Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("invoice not found")
	}
	return invoiceToResponse(inv), nil
}

func (s *invoiceService) List(ctx context.Context, filter dto.InvoiceFilter) (*dto.InvoiceListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	w, err := windowFromRange(filter.Range, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, apierror.NewValidation(err.Error())
	}

	invoices, total, err := s.repo.List(ctx, filter, w)
	if err != nil {
		return nil, err
	}
	data := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		data = append(data, *invoiceToResponse(&invoices[i]))
	}
	return &dto.InvoiceListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Update replaces the invoice header and item list in one transaction.
// Payments already applied stay as they are; the derived balance simply
// shifts against the new net total.
func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("invoice not found")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apierror.NewValidation("date must be YYYY-MM-DD")
	}
	items, err := itemsFromRequests(req.Items)
	if err != nil {
		return nil, err
	}
	if req.Channel == string(model.ChannelStore) && req.Shipping > 0 {
		return nil, apierror.NewValidation("shipping applies to online invoices only")
	}

	inv.Date = date
	inv.Channel = model.SaleChannel(req.Channel)
	inv.CustomerName = req.CustomerName
	inv.CustomerPhone = req.CustomerPhone
	inv.CustomerAddress = req.CustomerAddress
	inv.Shipping = req.Shipping
	inv.Notes = req.Notes

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, inv); err != nil {
			return err
		}
		return s.repo.ReplaceItems(ctx, tx, inv.ID, items)
	})
	if txErr != nil {
		return nil, txErr
	}

	inv.Items = items
	return invoiceToResponse(inv), nil
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("invoice not found")
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, id)
	})
}

// AddPayment appends one signed payment. Validation happens before any
// mutation: a rejected payment leaves the invoice untouched.
func (s *invoiceService) AddPayment(ctx context.Context, id uuid.UUID, req dto.PaymentRequest) (*dto.InvoiceResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("invoice not found")
	}
	if req.Amount == 0 {
		return nil, apierror.NewValidation("payment amount must not be zero")
	}

	date := time.Now()
	if req.Date != "" {
		if date, err = time.Parse(dateLayout, req.Date); err != nil {
			return nil, apierror.NewValidation("date must be YYYY-MM-DD")
		}
	}

	p := model.Payment{
		InvoiceID: inv.ID,
		Method:    model.PaymentMethod(req.Method),
		Amount:    req.Amount,
		Date:      date,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.AddPayment(ctx, tx, &p)
	})
	if txErr != nil {
		return nil, txErr
	}

	inv.Payments = append(inv.Payments, p)
	return invoiceToResponse(inv), nil
}

// ── Item validation ──────────────────────────────────────────────────────────

// itemsFromRequests converts and validates invoice lines. Each line must fit
// exactly one pricing variant; fields belonging to another variant must be
// zero so a stray value can never silently change a price.
func itemsFromRequests(reqs []dto.InvoiceItemRequest) ([]model.InvoiceItem, error) {
	items := make([]model.InvoiceItem, 0, len(reqs))
	for i, r := range reqs {
		item, err := itemFromRequest(r)
		if err != nil {
			return nil, apierror.NewValidation(fmt.Sprintf("item %d: %v", i+1, err))
		}
		items = append(items, item)
	}
	return items, nil
}

func itemFromRequest(r dto.InvoiceItemRequest) (model.InvoiceItem, error) {
	item := model.InvoiceItem{
		SaleType:           model.SaleType(r.SaleType),
		Category:           model.MetalCategory(r.Category),
		Karat:              r.Karat,
		Weight:             r.Weight,
		PricePerGram:       r.PricePerGram,
		Description:        r.Description,
		WorkmanshipType:    model.WorkmanshipType(r.WorkmanshipType),
		WorkmanshipValue:   r.WorkmanshipValue,
		DiscountPercentage: r.DiscountPercentage,
		CashBackPerGram:    r.CashBackPerGram,
	}

	if item.Category == model.CategoryGold && item.Karat == nil {
		return item, errors.New("gold items require a karat")
	}
	if item.Category == model.CategorySilver && item.Karat != nil {
		return item, errors.New("silver items have no karat")
	}

	switch {
	case item.SaleType == model.SaleTypeSell:
		if item.WorkmanshipType == "" {
			return item, errors.New("sell items require a workmanship type")
		}
		if item.DiscountPercentage != 0 || item.CashBackPerGram != 0 {
			return item, errors.New("sell items take workmanship only")
		}
	case item.Category == model.CategoryGold && item.Karat != nil && *item.Karat == 24:
		if item.WorkmanshipType != "" || item.WorkmanshipValue != 0 || item.DiscountPercentage != 0 {
			return item, errors.New("24k buy-back items take cash-back only")
		}
	default:
		if item.WorkmanshipType != "" || item.WorkmanshipValue != 0 || item.CashBackPerGram != 0 {
			return item, errors.New("buy-back items take a discount only")
		}
	}
	return item, nil
}

func paymentsFromRequests(reqs []dto.PaymentRequest, fallback time.Time) ([]model.Payment, error) {
	payments := make([]model.Payment, 0, len(reqs))
	for i, r := range reqs {
		if r.Amount == 0 {
			return nil, apierror.NewValidation(fmt.Sprintf("payment %d: amount must not be zero", i+1))
		}
		date := fallback
		if r.Date != "" {
			var err error
			if date, err = time.Parse(dateLayout, r.Date); err != nil {
				return nil, apierror.NewValidation(fmt.Sprintf("payment %d: date must be YYYY-MM-DD", i+1))
			}
		}
		payments = append(payments, model.Payment{
			Method: model.PaymentMethod(r.Method),
			Amount: r.Amount,
			Date:   date,
		})
	}
	return payments, nil
}

// windowFromRange parses a filter's range fields into a resolved window.
func windowFromRange(rangeKind, startDate, endDate string) (ledger.Window, error) {
	var start, end time.Time
	var err error
	if startDate != "" {
		if start, err = time.Parse(dateLayout, startDate); err != nil {
			return ledger.Window{}, errors.New("startDate must be YYYY-MM-DD")
		}
	}
	if endDate != "" {
		if end, err = time.Parse(dateLayout, endDate); err != nil {
			return ledger.Window{}, errors.New("endDate must be YYYY-MM-DD")
		}
	}
	return ledger.NewWindow(ledger.RangeKind(rangeKind), time.Now(), start, end)
}

// ── Conversion ───────────────────────────────────────────────────────────────

func invoiceToResponse(inv *model.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			ID:                 item.ID.String(),
			SaleType:           string(item.SaleType),
			Category:           string(item.Category),
			Karat:              item.Karat,
			Weight:             item.Weight,
			PricePerGram:       item.PricePerGram,
			Description:        item.Description,
			WorkmanshipType:    string(item.WorkmanshipType),
			WorkmanshipValue:   item.WorkmanshipValue,
			DiscountPercentage: item.DiscountPercentage,
			CashBackPerGram:    item.CashBackPerGram,
			Total:              ledger.ComputeItemTotal(item),
		})
	}
	payments := make([]dto.PaymentResponse, 0, len(inv.Payments))
	for _, p := range inv.Payments {
		payments = append(payments, dto.PaymentResponse{
			ID:     p.ID.String(),
			Method: string(p.Method),
			Amount: p.Amount,
			Date:   p.Date.Format(dateLayout),
		})
	}
	return &dto.InvoiceResponse{
		ID:              inv.ID.String(),
		Date:            inv.Date.Format(dateLayout),
		Channel:         string(inv.Channel),
		CustomerName:    inv.CustomerName,
		CustomerPhone:   inv.CustomerPhone,
		CustomerAddress: inv.CustomerAddress,
		Shipping:        inv.Shipping,
		Notes:           inv.Notes,
		Items:           items,
		Payments:        payments,
		InvoiceTotals:   ledger.ComputeInvoiceTotals(inv.Items, inv.Payments, inv.Shipping),
		CreatedAt:       inv.CreatedAt.UTC().Format(time.RFC3339),
	}
}
