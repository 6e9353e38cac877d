package model

import (
	"time"
)

// Bank represents the database model for banking institutions
type Bank struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"uniqueIndex;not null;size:255"`
	Code      string    `gorm:"size:20"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Bank
func (Bank) TableName() string {
	return "banks"
}
