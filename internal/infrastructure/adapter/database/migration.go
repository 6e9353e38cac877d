package database

import (
	"errors"

	"gorm.io/gorm"

	coreport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/model"
)

// DefaultBankName seeds the institution assigned to accounts created without
// an explicit bank
const DefaultBankName = "Banque Misr"

// Migrate auto-migrates all models and seeds the default bank record
func Migrate(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Starting database migrations", nil)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Bank{},
		&model.Account{},
		&model.Category{},
		&model.Transaction{},
		&model.Allocation{},
	); err != nil {
		logger.Error("Failed to auto-migrate models", map[string]any{"error": err.Error()})
		return err
	}

	if err := seedDefaultBank(db); err != nil {
		logger.Error("Failed to seed default bank", map[string]any{"error": err.Error()})
		return err
	}

	logger.Info("Database migrations completed", nil)
	return nil
}

func seedDefaultBank(db *gorm.DB) error {
	var bank model.Bank
	err := db.Where("name = ?", DefaultBankName).First(&bank).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(&model.Bank{Name: DefaultBankName, Code: "BM"}).Error
}
