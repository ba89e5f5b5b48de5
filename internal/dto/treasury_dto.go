package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateTransactionRequest struct {
	Type          string  `json:"type"   validate:"required,oneof=DEPOSIT EXPENSE"`
	Date          string  `json:"date"   validate:"required,datetime=2006-01-02"`
	Description   string  `json:"description" validate:"required,min=1,max=300"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"omitempty,oneof=CASH E_WALLET INSTAPAY FAWRY"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TransactionResponse struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

type TransactionListResponse struct {
	Data []TransactionResponse `json:"data"`
}

// TreasuryResponse is the derived wallet snapshot for GET /v1/treasury.
type TreasuryResponse struct {
	Wallets map[string]float64 `json:"wallets"`
	Total   float64            `json:"total"`
}
