package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kareem-anwar/finance-ledger/internal/domain/entity"
	errs "github.com/kareem-anwar/finance-ledger/internal/domain/error"
	coreport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/model"
)

// recencyOrder is the ordering every multi-row read uses: transaction date
// descending, ties broken by insertion order.
const recencyOrder = "transaction_date DESC, id ASC"

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) entityToModel(tx *entity.Transaction) model.Transaction {
	m := model.Transaction{
		ID:              tx.ID,
		UserID:          tx.UserID,
		AccountID:       tx.AccountID,
		CategoryID:      tx.CategoryID,
		TransactionType: string(tx.TransactionType),
		TransferGroupID: tx.TransferGroupID,
		Amount:          tx.Amount,
		Currency:        string(tx.Currency),
		TransactionDate: tx.TransactionDate,
		Description:     tx.Description,
		FxRateToBase:    tx.FxRateToBase,
		Notes:           tx.Notes,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
	if tx.TransferDirection != nil {
		direction := string(*tx.TransferDirection)
		m.TransferDirection = &direction
	}
	return m
}

func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	tx := &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		AccountID:       m.AccountID,
		CategoryID:      m.CategoryID,
		TransactionType: entity.TransactionType(m.TransactionType),
		TransferGroupID: m.TransferGroupID,
		Amount:          m.Amount,
		Currency:        entity.Currency(m.Currency),
		TransactionDate: m.TransactionDate,
		Description:     m.Description,
		FxRateToBase:    m.FxRateToBase,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.TransferDirection != nil {
		direction := entity.TransferDirection(*m.TransferDirection)
		tx.TransferDirection = &direction
	}
	return tx
}

// Create persists a new transaction. The structural invariant is re-checked
// immediately before the insert so no write path can bypass it.
func (r *TransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	m := r.entityToModel(tx)
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"user_id": tx.UserID,
			"type":    string(tx.TransactionType),
			"error":   result.Error.Error(),
		})
		if r.errorClassifier.IsConstraintError(result.Error) {
			return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, result.Error.Error())
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	tx.ID = m.ID
	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        tx.UserID,
	})
	return nil
}

// Update overwrites the mutable fields of an existing transaction. The
// structural invariant is re-checked immediately before the update commits.
func (r *TransactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	m := r.entityToModel(tx)
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", tx.ID).
		Updates(map[string]interface{}{
			"category_id":      m.CategoryID,
			"amount":           m.Amount,
			"transaction_date": m.TransactionDate,
			"description":      m.Description,
			"fx_rate_to_base":  m.FxRateToBase,
			"notes":            m.Notes,
			"updated_at":       m.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update transaction", map[string]any{
			"transaction_id": tx.ID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a single transaction row
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Transaction{}, id)
	if result.Error != nil {
		r.logger.Error("Failed to delete transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// DeleteByTransferGroup removes every transaction sharing the group id
func (r *TransactionRepository) DeleteByTransferGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("transfer_group_id = ?", groupID).
		Delete(&model.Transaction{})
	if result.Error != nil {
		r.logger.Error("Failed to delete transfer group", map[string]any{
			"transfer_group_id": groupID.String(),
			"error":             result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return result.RowsAffected, nil
}

// GetByIDAndUser retrieves a transaction owned by the given user. Ownership
// and existence failures are indistinguishable by design.
func (r *TransactionRepository) GetByIDAndUser(ctx context.Context, id, userID uint64) (*entity.Transaction, error) {
	var m model.Transaction
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&m), nil
}

// ListByTransferGroup retrieves all legs sharing the group id
func (r *TransactionRepository) ListByTransferGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Transaction, error) {
	var ms []model.Transaction
	result := r.db.WithContext(ctx).
		Where("transfer_group_id = ?", groupID).
		Order("id ASC").
		Find(&ms)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelsToEntities(ms), nil
}

// ListByUser retrieves all transactions for a user, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var ms []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(recencyOrder).
		Find(&ms)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelsToEntities(ms), nil
}

// ListByAccount retrieves all transactions for an account, newest first
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uint64) ([]*entity.Transaction, error) {
	var ms []model.Transaction
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order(recencyOrder).
		Find(&ms)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelsToEntities(ms), nil
}

func (r *TransactionRepository) modelsToEntities(ms []model.Transaction) []*entity.Transaction {
	txs := make([]*entity.Transaction, 0, len(ms))
	for i := range ms {
		txs = append(txs, r.modelToEntity(&ms[i]))
	}
	return txs
}
