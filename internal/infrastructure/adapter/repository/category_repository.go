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

// CategoryRepository implements persistence.CategoryRepository using GORM
type CategoryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{db: db, logger: logger}
}

// GetOwned retrieves an active category owned by the given user
func (r *CategoryRepository) GetOwned(ctx context.Context, userID, categoryID uint64) (*entity.Category, error) {
	var m model.Category
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_active = ?", categoryID, userID, true).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCategoryNotFound
		}
		r.logger.Error("Failed to get category", map[string]any{
			"category_id": categoryID,
			"user_id":     userID,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.Category{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Type:      entity.CategoryType(m.Type),
		Icon:      m.Icon,
		Color:     m.Color,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// ListByUser retrieves all active categories belonging to a user, ordered by id.
func (r *CategoryRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Category, error) {
	var models []model.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		r.logger.Error("Failed to list categories", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to list categories: %s", errs.ErrDatabaseConnection, err.Error())
	}

	categories := make([]*entity.Category, 0, len(models))
	for i := range models {
		m := &models[i]
		categories = append(categories, &entity.Category{
			ID:        m.ID,
			UserID:    m.UserID,
			Name:      m.Name,
			Type:      entity.CategoryType(m.Type),
			Icon:      m.Icon,
			Color:     m.Color,
			IsActive:  m.IsActive,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return categories, nil
}
