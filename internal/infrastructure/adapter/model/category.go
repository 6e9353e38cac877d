package model

import (
	"time"
)

// Category represents the database model for user-defined categories
type Category struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:uk_user_category_name_type,priority:1"`
	Name      string    `gorm:"not null;size:100;uniqueIndex:uk_user_category_name_type,priority:2"`
	Type      string    `gorm:"not null;size:10;uniqueIndex:uk_user_category_name_type,priority:3"`
	Icon      string    `gorm:"size:50"`
	Color     string    `gorm:"size:7"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
