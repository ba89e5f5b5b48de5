package dto

import "github.com/fady121/alfady/internal/ledger"

// ─── Filter / List ──────────────────────────────────────────────────────────

// InvoiceFilter is bound from query string of GET /v1/invoices.
type InvoiceFilter struct {
	Range     string `form:"range,default=all" validate:"omitempty,oneof=today week month year custom all"`
	StartDate string `form:"startDate"` // YYYY-MM-DD; custom range only
	EndDate   string `form:"endDate"`
	Channel   string `form:"channel" validate:"omitempty,oneof=STORE ONLINE"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type InvoiceListResponse struct {
	Data  []InvoiceResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// InvoiceItemRequest carries one priced line. Only the fields of the line's
// pricing variant may be set: workmanship on SELL, cashBackPerGram on 24k gold
// BUY_BACK, discountPercentage on every other BUY_BACK. bindAndValidate
// rejects a request that mixes them.
type InvoiceItemRequest struct {
	SaleType           string  `json:"saleType"     validate:"required,oneof=SELL BUY_BACK"`
	Category           string  `json:"category"     validate:"required,oneof=GOLD SILVER"`
	Karat              *int    `json:"karat"        validate:"omitempty,oneof=18 21 24"`
	Weight             float64 `json:"weight"       validate:"required,gt=0"`
	PricePerGram       float64 `json:"pricePerGram" validate:"required,gt=0"`
	Description        string  `json:"description"`
	WorkmanshipType    string  `json:"workmanshipType"    validate:"omitempty,oneof=PER_GRAM PER_PIECE"`
	WorkmanshipValue   float64 `json:"workmanshipValue"   validate:"min=0"`
	DiscountPercentage float64 `json:"discountPercentage" validate:"min=0,max=100"`
	CashBackPerGram    float64 `json:"cashBackPerGram"    validate:"min=0"`
}

type PaymentRequest struct {
	// Amount is signed: negative means the store pays the customer.
	Method string  `json:"method" validate:"required,oneof=CASH E_WALLET INSTAPAY FAWRY"`
	Amount float64 `json:"amount" validate:"required"`
	Date   string  `json:"date"   validate:"omitempty,datetime=2006-01-02"`
}

type CreateInvoiceRequest struct {
	Date            string               `json:"date"         validate:"required,datetime=2006-01-02"`
	Channel         string               `json:"channel"      validate:"required,oneof=STORE ONLINE"`
	CustomerName    string               `json:"customerName" validate:"required,min=1,max=150"`
	CustomerPhone   string               `json:"customerPhone"`
	CustomerAddress string               `json:"customerAddress"`
	Shipping        float64              `json:"shipping" validate:"min=0"`
	Notes           string               `json:"notes"`
	Items           []InvoiceItemRequest `json:"items"    validate:"required,min=1,dive"`
	Payments        []PaymentRequest     `json:"payments" validate:"omitempty,dive"`
}

// UpdateInvoiceRequest replaces header fields and the item list wholesale.
// Payments are untouched: they are append-only and move through
// POST /v1/invoices/:id/payments.
type UpdateInvoiceRequest struct {
	Date            string               `json:"date"         validate:"required,datetime=2006-01-02"`
	Channel         string               `json:"channel"      validate:"required,oneof=STORE ONLINE"`
	CustomerName    string               `json:"customerName" validate:"required,min=1,max=150"`
	CustomerPhone   string               `json:"customerPhone"`
	CustomerAddress string               `json:"customerAddress"`
	Shipping        float64              `json:"shipping" validate:"min=0"`
	Notes           string               `json:"notes"`
	Items           []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InvoiceItemResponse struct {
	ID                 string  `json:"id"`
	SaleType           string  `json:"saleType"`
	Category           string  `json:"category"`
	Karat              *int    `json:"karat,omitempty"`
	Weight             float64 `json:"weight"`
	PricePerGram       float64 `json:"pricePerGram"`
	Description        string  `json:"description,omitempty"`
	WorkmanshipType    string  `json:"workmanshipType,omitempty"`
	WorkmanshipValue   float64 `json:"workmanshipValue,omitempty"`
	DiscountPercentage float64 `json:"discountPercentage,omitempty"`
	CashBackPerGram    float64 `json:"cashBackPerGram,omitempty"`
	Total              float64 `json:"total"`
}

type PaymentResponse struct {
	ID     string  `json:"id"`
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

type InvoiceResponse struct {
	ID              string                `json:"id"`
	Date            string                `json:"date"`
	Channel         string                `json:"channel"`
	CustomerName    string                `json:"customerName"`
	CustomerPhone   string                `json:"customerPhone,omitempty"`
	CustomerAddress string                `json:"customerAddress,omitempty"`
	Shipping        float64               `json:"shipping"`
	Notes           string                `json:"notes,omitempty"`
	Items           []InvoiceItemResponse `json:"items"`
	Payments        []PaymentResponse     `json:"payments"`
	ledger.InvoiceTotals
	CreatedAt string `json:"createdAt"`
}
