package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kareem-anwar/finance-ledger/internal/domain/entity"
	errs "github.com/kareem-anwar/finance-ledger/internal/domain/error"
	coreport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/model"
)

// AllocationRepository implements persistence.AllocationRepository using GORM
type AllocationRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAllocationRepository creates a new AllocationRepository instance
func NewAllocationRepository(db *gorm.DB, logger coreport.Logger) *AllocationRepository {
	return &AllocationRepository{db: db, logger: logger}
}

// ListByUser retrieves all allocations for a user regardless of status
func (r *AllocationRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Allocation, error) {
	var ms []model.Allocation
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&ms)
	if result.Error != nil {
		r.logger.Error("Failed to list allocations", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	allocations := make([]*entity.Allocation, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		allocations = append(allocations, &entity.Allocation{
			ID:           m.ID,
			UserID:       m.UserID,
			AccountID:    m.AccountID,
			Name:         m.Name,
			Amount:       m.Amount,
			Currency:     entity.Currency(m.Currency),
			Status:       entity.AllocationStatus(m.Status),
			StartDate:    m.StartDate,
			MaturityDate: m.MaturityDate,
			Notes:        m.Notes,
			CreatedAt:    m.CreatedAt,
			UpdatedAt:    m.UpdatedAt,
		})
	}
	return allocations, nil
}
