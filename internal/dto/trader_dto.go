package dto

import "github.com/fady121/alfady/internal/ledger"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateTraderRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=150"`
	Phone    string `json:"phone"    validate:"omitempty,max=30"`
	Category string `json:"category" validate:"required,oneof=GOLD SILVER"`
}

// UpdateTraderRequest cannot change the category: all prior transactions were
// settled under the old category's rules.
type UpdateTraderRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=150"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
}

type TraderTransactionRequest struct {
	Date               string  `json:"date" validate:"required,datetime=2006-01-02"`
	Description        string  `json:"description"`
	WorkWeight         float64 `json:"workWeight"         validate:"min=0"`
	ScrapWeight        float64 `json:"scrapWeight"        validate:"min=0"`
	WorkmanshipFee     float64 `json:"workmanshipFee"     validate:"min=0"`
	SilverPricePerGram float64 `json:"silverPricePerGram" validate:"min=0"`
	CashPayment        float64 `json:"cashPayment"        validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TraderTransactionResponse struct {
	ID                 string  `json:"id"`
	TraderID           string  `json:"traderId"`
	Date               string  `json:"date"`
	Description        string  `json:"description,omitempty"`
	WorkWeight         float64 `json:"workWeight"`
	ScrapWeight        float64 `json:"scrapWeight"`
	WorkmanshipFee     float64 `json:"workmanshipFee"`
	SilverPricePerGram float64 `json:"silverPricePerGram"`
	CashPayment        float64 `json:"cashPayment"`
}

type TraderResponse struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Phone    string               `json:"phone,omitempty"`
	Category string               `json:"category"`
	Account  ledger.TraderAccount `json:"account"`
}

type TraderDetailResponse struct {
	TraderResponse
	Transactions []TraderTransactionResponse `json:"transactions"`
}

type TraderListResponse struct {
	Data []TraderResponse `json:"data"`
}
