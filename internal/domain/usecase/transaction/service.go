package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kareem-anwar/finance-ledger/internal/domain/entity"
	errs "github.com/kareem-anwar/finance-ledger/internal/domain/error"
	coreport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
	"github.com/kareem-anwar/finance-ledger/internal/domain/port/persistence"
)

// Service is the only write path into the ledger. It enforces ownership,
// type-specific rules and transfer pairing atomicity.
type Service struct {
	uow          persistence.UnitOfWork
	accountRepo  persistence.AccountRepository
	categoryRepo persistence.CategoryRepository
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new transaction command service
func NewService(
	uow persistence.UnitOfWork,
	accountRepo persistence.AccountRepository,
	categoryRepo persistence.CategoryRepository,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateTransaction creates a standalone INCOME, EXPENSE or ADJUSTMENT
// transaction. TRANSFER requests are rejected and directed to CreateTransfer.
func (s *Service) CreateTransaction(ctx context.Context, userID uint64, req CreateTransactionRequest) (*entity.Transaction, error) {
	s.logger.Debug("Creating transaction", map[string]any{
		"user_id": userID,
		"type":    string(req.TransactionType),
	})

	if req.TransactionType == entity.TypeTransfer {
		return nil, errs.ErrTransferNotAllowed
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.GetOwned(ctx, userID, req.AccountID); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetOwned(ctx, userID, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	tx, err := entity.NewTransaction(
		userID,
		req.AccountID,
		req.CategoryID,
		req.TransactionType,
		req.Amount,
		req.Currency,
		req.TransactionDate,
		req.Description,
		req.FxRateToBase,
		req.Notes,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	repo := s.uow.GetTransactionRepository(ctx)
	if err := repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        userID,
		"type":           string(tx.TransactionType),
	})
	return tx, nil
}

// CreateTransfer creates the two linked legs of a transfer as one atomic
// unit: either both rows exist afterward or neither does.
func (s *Service) CreateTransfer(ctx context.Context, userID uint64, req CreateTransferRequest) (*TransferResult, error) {
	s.logger.Debug("Creating transfer", map[string]any{
		"user_id":         userID,
		"from_account_id": req.FromAccountID,
		"to_account_id":   req.ToAccountID,
	})

	if req.FromAccountID == req.ToAccountID {
		return nil, errs.ErrSameAccountTransfer
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.GetOwned(ctx, userID, req.FromAccountID); err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.GetOwned(ctx, userID, req.ToAccountID); err != nil {
		return nil, err
	}

	groupID := uuid.New()

	outLeg, err := entity.NewTransferLeg(
		userID, req.FromAccountID, entity.DirectionOut, groupID,
		req.Amount, req.Currency, req.TransferDate, req.Description,
		req.FxRateToBase, req.Notes, s.timeProvider,
	)
	if err != nil {
		return nil, err
	}
	inLeg, err := entity.NewTransferLeg(
		userID, req.ToAccountID, entity.DirectionIn, groupID,
		req.Amount, req.Currency, req.TransferDate, req.Description,
		req.FxRateToBase, req.Notes, s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transfer unit of work: %w", err)
	}

	repo := s.uow.GetTransactionRepository(txCtx)
	if err := repo.Create(txCtx, outLeg); err != nil {
		s.rollback(txCtx, groupID)
		return nil, errs.NewTransferError(groupID.String(), req.FromAccountID, req.ToAccountID,
			req.Amount.String(), "failed to persist outgoing leg", err)
	}
	if err := repo.Create(txCtx, inLeg); err != nil {
		s.rollback(txCtx, groupID)
		return nil, errs.NewTransferError(groupID.String(), req.FromAccountID, req.ToAccountID,
			req.Amount.String(), "failed to persist incoming leg", err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.rollback(txCtx, groupID)
		return nil, errs.NewTransferError(groupID.String(), req.FromAccountID, req.ToAccountID,
			req.Amount.String(), "failed to commit transfer", err)
	}

	s.logger.Info("Transfer created", map[string]any{
		"transfer_group_id": groupID.String(),
		"out_id":            outLeg.ID,
		"in_id":             inLeg.ID,
		"user_id":           userID,
	})

	return &TransferResult{
		TransferGroupID:     groupID,
		OutgoingTransaction: outLeg,
		IncomingTransaction: inLeg,
	}, nil
}

// UpdateTransaction applies a partial patch to a non-transfer transaction.
// Transfer legs are immutable in place; the remedy is delete-and-recreate,
// since editing one leg would silently break pairing.
func (s *Service) UpdateTransaction(ctx context.Context, userID, transactionID uint64, patch UpdatePatch) (*entity.Transaction, error) {
	if patch.IsEmpty() {
		return nil, errs.ErrEmptyPatch
	}

	repo := s.uow.GetTransactionRepository(ctx)
	tx, err := repo.GetByIDAndUser(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}

	if tx.IsTransfer() {
		return nil, errs.ErrTransferImmutable
	}

	if patch.CategoryID.Set {
		if _, err := s.categoryRepo.GetOwned(ctx, userID, patch.CategoryID.Value); err != nil {
			return nil, err
		}
		categoryID := patch.CategoryID.Value
		tx.CategoryID = &categoryID
	}
	if patch.Amount.Set {
		if err := entity.ValidateAmount(patch.Amount.Value); err != nil {
			return nil, err
		}
		tx.Amount = patch.Amount.Value
	}
	if patch.TransactionDate.Set {
		if patch.TransactionDate.Value.IsZero() {
			return nil, errs.ErrInvalidDate
		}
		tx.TransactionDate = entity.DateOnly(patch.TransactionDate.Value)
	}
	if patch.Description.Set {
		if err := entity.ValidateDescription(patch.Description.Value); err != nil {
			return nil, err
		}
		tx.Description = strings.TrimSpace(patch.Description.Value)
	}
	if patch.FxRateToBase.Set {
		rate := patch.FxRateToBase.Value
		if err := entity.ValidateFxRate(&rate); err != nil {
			return nil, err
		}
		tx.FxRateToBase = &rate
	}
	if patch.Notes.Set {
		tx.Notes = patch.Notes.Value
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}
	tx.UpdatedAt = s.timeProvider.Now()

	if err := repo.Update(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        userID,
	})
	return tx, nil
}

// DeleteTransaction removes a transaction. When the target is a transfer leg,
// every transaction sharing its group id is removed in one atomic unit so no
// orphan leg can remain.
func (s *Service) DeleteTransaction(ctx context.Context, userID, transactionID uint64) error {
	repo := s.uow.GetTransactionRepository(ctx)
	tx, err := repo.GetByIDAndUser(ctx, transactionID, userID)
	if err != nil {
		return err
	}

	if !tx.IsTransfer() {
		if err := repo.Delete(ctx, tx.ID); err != nil {
			return err
		}
		s.logger.Info("Transaction deleted", map[string]any{
			"transaction_id": tx.ID,
			"user_id":        userID,
		})
		return nil
	}

	if tx.TransferGroupID == nil {
		// Should not happen: Validate runs on every write path.
		return errs.NewInvariantError(tx.ID, string(tx.TransactionType), "transfer leg has no group id")
	}
	groupID := *tx.TransferGroupID

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transfer delete unit of work: %w", err)
	}

	txRepo := s.uow.GetTransactionRepository(txCtx)
	legs, err := txRepo.ListByTransferGroup(txCtx, groupID)
	if err != nil {
		s.rollback(txCtx, groupID)
		return err
	}
	for _, leg := range legs {
		if leg.UserID != userID {
			s.rollback(txCtx, groupID)
			return errs.NewInvariantError(leg.ID, string(leg.TransactionType), "transfer group spans more than one user")
		}
	}
	if len(legs) != 2 {
		s.logger.Warn("Transfer group does not contain exactly two legs", map[string]any{
			"transfer_group_id": groupID.String(),
			"legs":              len(legs),
		})
	}

	deleted, err := txRepo.DeleteByTransferGroup(txCtx, groupID)
	if err != nil {
		s.rollback(txCtx, groupID)
		return err
	}
	if err := s.uow.Commit(txCtx); err != nil {
		s.rollback(txCtx, groupID)
		return fmt.Errorf("failed to commit transfer delete: %w", err)
	}
	s.logger.Info("Transfer deleted", map[string]any{
		"transfer_group_id": groupID.String(),
		"deleted":           deleted,
		"user_id":           userID,
	})
	return nil
}

// GetTransactionByID retrieves a single transaction owned by the user
func (s *Service) GetTransactionByID(ctx context.Context, userID, transactionID uint64) (*entity.Transaction, error) {
	repo := s.uow.GetTransactionRepository(ctx)
	return repo.GetByIDAndUser(ctx, transactionID, userID)
}

// GetUserTransactions returns all of the user's transactions, newest first
func (s *Service) GetUserTransactions(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	repo := s.uow.GetTransactionRepository(ctx)
	return repo.ListByUser(ctx, userID)
}

// GetAccountTransactions verifies account ownership, then returns the
// account's transactions newest first
func (s *Service) GetAccountTransactions(ctx context.Context, userID, accountID uint64) ([]*entity.Transaction, error) {
	if _, err := s.accountRepo.GetOwned(ctx, userID, accountID); err != nil {
		return nil, err
	}
	repo := s.uow.GetTransactionRepository(ctx)
	return repo.ListByAccount(ctx, accountID)
}

func (s *Service) rollback(txCtx context.Context, groupID uuid.UUID) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Failed to roll back transfer unit of work", map[string]any{
			"transfer_group_id": groupID.String(),
			"error":             err.Error(),
		})
	}
}
