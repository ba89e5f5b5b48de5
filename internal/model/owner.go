package model

import (
	"time"

	"github.com/google/uuid"
)

// Owner is the single account behind the login gate: one phone number, one
// passcode. The passcode is still stored hashed.
type Owner struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Phone        string    `gorm:"uniqueIndex;not null"`
	Name         string
	PasscodeHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
