package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a general treasury movement.
// Only DEPOSIT and EXPENSE are produced by the API; the remaining values are
// legacy types accepted on import and ignored by the treasury aggregator.
type TransactionType string

const (
	TxDeposit TransactionType = "DEPOSIT"
	TxExpense TransactionType = "EXPENSE"

	// Legacy
	TxSale          TransactionType = "SALE"
	TxPurchase      TransactionType = "PURCHASE"
	TxDebtPayment   TransactionType = "DEBT_PAYMENT"
	TxCreditPayment TransactionType = "CREDIT_PAYMENT"
)

// Transaction is a plain cash movement not tied to an invoice or trader.
// Amount is always positive; the type encodes direction.
type Transaction struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type          TransactionType `gorm:"type:varchar(20);not null"`
	Date          time.Time       `gorm:"not null;index"`
	Description   string
	Amount        float64       `gorm:"not null"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(10);not null;default:'CASH'"`
	CreatedAt     time.Time
}
