package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kareem-anwar/finance-ledger/internal/domain/entity"
	errs "github.com/kareem-anwar/finance-ledger/internal/domain/error"
	coreport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/model"
)

// AccountRepository implements persistence.AccountRepository using GORM.
// Accounts use boolean soft-delete: resolution queries only see active rows.
type AccountRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{db: db, logger: logger}
}

func (r *AccountRepository) modelToEntity(m *model.Account) *entity.Account {
	return &entity.Account{
		ID:          m.ID,
		UserID:      m.UserID,
		BankID:      m.BankID,
		BankName:    m.Bank.Name,
		Name:        m.Name,
		AccountType: entity.AccountType(m.AccountType),
		Currency:    entity.Currency(m.Currency),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GetOwned retrieves an active account owned by the given user. Existence
// and ownership checks are one combined query so ids never leak across users.
func (r *AccountRepository) GetOwned(ctx context.Context, userID, accountID uint64) (*entity.Account, error) {
	var m model.Account
	result := r.db.WithContext(ctx).
		Preload("Bank").
		Where("id = ? AND user_id = ? AND is_active = ?", accountID, userID, true).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		r.logger.Error("Failed to get account", map[string]any{
			"account_id": accountID,
			"user_id":    userID,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&m), nil
}

// ListByUser retrieves all active accounts for a user
func (r *AccountRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Account, error) {
	var ms []model.Account
	result := r.db.WithContext(ctx).
		Preload("Bank").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("id ASC").
		Find(&ms)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	accounts := make([]*entity.Account, 0, len(ms))
	for i := range ms {
		accounts = append(accounts, r.modelToEntity(&ms[i]))
	}
	return accounts, nil
}
