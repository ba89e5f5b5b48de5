package model

import (
	"time"

	"github.com/google/uuid"
)

// Trader is a wholesale supplier of raw gold or silver work.
// Category determines how its transactions are settled: gold traders are owed
// metal weight, silver traders are owed cash.
type Trader struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string        `gorm:"not null;index"`
	Phone     string
	Category  MetalCategory `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TraderTransaction is one exchange with a trader.
//
// TraderID is a weak reference: there is no FK constraint, and reads must
// tolerate a trader that was deleted out from under old export files. Deleting
// a trader through the service cascades its transactions in the same DB
// transaction, so dangling rows only arise from external data.
type TraderTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TraderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Date        time.Time `gorm:"not null;index"`
	Description string
	// WorkWeight is grams of work received. For silver traders this is the
	// weight consumed into the cash computation.
	WorkWeight float64 `gorm:"not null;default:0"`
	// ScrapWeight is grams returned as scrap (gold traders only).
	ScrapWeight float64 `gorm:"not null;default:0"`
	// WorkmanshipFee is cash owed to the trader for the work.
	WorkmanshipFee float64 `gorm:"not null;default:0"`
	// SilverPricePerGram prices the work weight for silver traders.
	SilverPricePerGram float64 `gorm:"not null;default:0"`
	// CashPayment is cash paid to the trader, always from the CASH wallet.
	CashPayment float64 `gorm:"not null;default:0"`
}
