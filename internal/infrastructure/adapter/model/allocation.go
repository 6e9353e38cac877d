package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allocation represents the database model for committed fund pools
type Allocation struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement"`
	UserID       uint64          `gorm:"not null;index"`
	AccountID    *uint64         `gorm:"index"`
	Name         string          `gorm:"not null;size:255"`
	Amount       decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Currency     string          `gorm:"not null;size:3"`
	Status       string          `gorm:"not null;size:20;default:ACTIVE"`
	StartDate    time.Time       `gorm:"type:date;not null"`
	MaturityDate *time.Time      `gorm:"type:date"`
	Notes        string          `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`

	User    User     `gorm:"foreignKey:UserID;references:ID"`
	Account *Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Allocation
func (Allocation) TableName() string {
	return "allocations"
}
