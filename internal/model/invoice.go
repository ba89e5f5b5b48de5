package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleChannel distinguishes in-store sales from online orders.
type SaleChannel string

const (
	ChannelStore  SaleChannel = "STORE"
	ChannelOnline SaleChannel = "ONLINE"
)

// SaleType distinguishes a sale to a customer from a buy-back of used metal.
type SaleType string

const (
	SaleTypeSell    SaleType = "SELL"
	SaleTypeBuyBack SaleType = "BUY_BACK"
)

// MetalCategory is the metal of an item or trader account.
type MetalCategory string

const (
	CategoryGold   MetalCategory = "GOLD"
	CategorySilver MetalCategory = "SILVER"
)

// WorkmanshipType selects how the workmanship value is applied on sell items.
type WorkmanshipType string

const (
	WorkmanshipPerGram  WorkmanshipType = "PER_GRAM"
	WorkmanshipPerPiece WorkmanshipType = "PER_PIECE"
)

// PaymentMethod is one of the four treasury wallets.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodEWallet  PaymentMethod = "E_WALLET"
	MethodInstapay PaymentMethod = "INSTAPAY"
	MethodFawry    PaymentMethod = "FAWRY"
)

// WalletMethods lists every treasury bucket, in display order.
func WalletMethods() []PaymentMethod {
	return []PaymentMethod{MethodCash, MethodEWallet, MethodInstapay, MethodFawry}
}

// Invoice is one sales/buy-back transaction with a customer.
//
// amountPaid, netTotal and remainingBalance are intentionally NOT columns:
// they are derived from items+payments by the ledger on every read, so a
// partially-applied mutation can never leave a stale stored balance.
type Invoice struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date            time.Time   `gorm:"not null;index"`
	Channel         SaleChannel `gorm:"type:varchar(10);not null;default:'STORE'"`
	CustomerName    string      `gorm:"not null"`
	CustomerPhone   string
	CustomerAddress string
	// Shipping only carries a value for ONLINE invoices.
	Shipping  float64 `gorm:"not null;default:0"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time

	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	Payments []Payment     `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// InvoiceItem is one priced line within an invoice. Rows are owned by their
// invoice and have no identity outside it.
//
// Karat is null for silver. WorkmanshipType/Value apply to SELL only,
// CashBackPerGram to 24k gold BUY_BACK only, DiscountPercentage to every other
// BUY_BACK. The ledger converts each row to a pricing variant before any
// arithmetic, so a field of the wrong variant never reaches a computation.
type InvoiceItem struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceID          uuid.UUID     `gorm:"type:uuid;index;not null"`
	SaleType           SaleType      `gorm:"type:varchar(10);not null"`
	Category           MetalCategory `gorm:"type:varchar(10);not null"`
	Karat              *int
	Weight             float64 `gorm:"not null"`
	PricePerGram       float64 `gorm:"not null"`
	Description        string
	WorkmanshipType    WorkmanshipType `gorm:"type:varchar(10)"`
	WorkmanshipValue   float64
	DiscountPercentage float64
	CashBackPerGram    float64
}

// Payment is one money movement tied to an invoice. Amount is signed:
// positive = customer pays store, negative = store pays customer.
// Payments are append-only; corrections are delete + re-add.
type Payment struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceID uuid.UUID     `gorm:"type:uuid;index;not null"`
	Method    PaymentMethod `gorm:"type:varchar(10);not null"`
	Amount    float64       `gorm:"not null"`
	Date      time.Time     `gorm:"not null"`
}
