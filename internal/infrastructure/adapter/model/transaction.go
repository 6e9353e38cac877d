package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents the database model for ledger events
type Transaction struct {
	ID                uint64           `gorm:"primaryKey;autoIncrement"`
	UserID            uint64           `gorm:"not null;index;index:idx_transactions_user_date,priority:1"`
	AccountID         uint64           `gorm:"not null;index"`
	CategoryID        *uint64          `gorm:"index"`
	TransactionType   string           `gorm:"not null;size:20;index"`
	TransferDirection *string          `gorm:"size:3"`
	TransferGroupID   *uuid.UUID       `gorm:"type:uuid;index"`
	Amount            decimal.Decimal  `gorm:"type:numeric(15,2);not null"`
	Currency          string           `gorm:"not null;size:3"`
	TransactionDate   time.Time        `gorm:"type:date;not null;index;index:idx_transactions_user_date,priority:2"`
	Description       string           `gorm:"not null;size:500"`
	FxRateToBase      *decimal.Decimal `gorm:"type:numeric(10,6)"`
	Notes             string           `gorm:"type:text"`
	CreatedAt         time.Time        `gorm:"not null"`
	UpdatedAt         time.Time        `gorm:"not null"`

	// Define relationships
	User     User      `gorm:"foreignKey:UserID;references:ID"`
	Account  Account   `gorm:"foreignKey:AccountID;references:ID"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
