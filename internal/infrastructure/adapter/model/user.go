package model

import (
	"time"
)

// User represents the database model for ledger owners. Credential handling
// lives in the auth gateway; this service only resolves identities.
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Email     string    `gorm:"uniqueIndex;not null;size:255"`
	Name      string    `gorm:"not null;size:255"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
