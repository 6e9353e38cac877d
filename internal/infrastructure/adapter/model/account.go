package model

import (
	"time"
)

// Account represents the database model for user accounts. Balances are
// derived from transactions, never stored here.
type Account struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	BankID      uint64    `gorm:"not null;index"`
	Name        string    `gorm:"not null;size:255"`
	AccountType string    `gorm:"not null;size:20"`
	Currency    string    `gorm:"not null;size:3"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
	Bank Bank `gorm:"foreignKey:BankID;references:ID"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
