package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// The core consumes these as already-authorized references resolved by the
// account/category/user collaborators; it never mutates them.

// AccountType classifies an account
type AccountType string

// Account types
const (
	AccountChecking AccountType = "CHECKING"
	AccountSavings  AccountType = "SAVINGS"
)

// Account is a user-owned account reference. Balances are derived from the
// transaction stream, never stored here.
type Account struct {
	ID          uint64
	UserID      uint64
	BankID      uint64
	BankName    string
	Name        string
	AccountType AccountType
	Currency    Currency
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayName renders the "Bank - Account" label used in transaction responses
func (a *Account) DisplayName() string {
	if a.BankName == "" {
		return a.Name
	}
	return a.BankName + " - " + a.Name
}

// CategoryType classifies a category
type CategoryType string

// Category types
const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

// Category is a user-defined transaction category reference
type Category struct {
	ID        uint64
	UserID    uint64
	Name      string
	Type      CategoryType
	Icon      string
	Color     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is the owning user reference
type User struct {
	ID        uint64
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllocationStatus marks whether an allocation still holds committed funds
type AllocationStatus string

// Allocation statuses
const (
	AllocationActive   AllocationStatus = "ACTIVE"
	AllocationMatured  AllocationStatus = "MATURED"
	AllocationReleased AllocationStatus = "RELEASED"
)

// Allocation is a named pool of committed funds, read-only from the core's
// perspective and consumed by the dashboard aggregation.
type Allocation struct {
	ID           uint64
	UserID       uint64
	AccountID    *uint64
	Name         string
	Amount       decimal.Decimal
	Currency     Currency
	Status       AllocationStatus
	StartDate    time.Time
	MaturityDate *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Bank identifies the institution an account belongs to
type Bank struct {
	ID        uint64
	Name      string
	Code      string
	CreatedAt time.Time
}
