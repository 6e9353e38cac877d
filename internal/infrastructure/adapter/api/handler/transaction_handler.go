package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/kareem-anwar/finance-ledger/internal/domain/entity"
	coreport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
	"github.com/kareem-anwar/finance-ledger/internal/domain/port/persistence"
	transactionUseCase "github.com/kareem-anwar/finance-ledger/internal/domain/usecase/transaction"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *transactionUseCase.Service
	accountRepo        persistence.AccountRepository
	categoryRepo       persistence.CategoryRepository
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionService *transactionUseCase.Service,
	accountRepo persistence.AccountRepository,
	categoryRepo persistence.CategoryRepository,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		accountRepo:        accountRepo,
		categoryRepo:       categoryRepo,
		logger:             logger,
	}
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		badRequest(c, "Invalid amount format")
		return
	}
	fxRate, err := parseFxRate(req.FxRateToBase)
	if err != nil {
		badRequest(c, "Invalid fxRateToBase format")
		return
	}
	txDate, err := time.Parse(dto.DateLayout, req.TransactionDate)
	if err != nil {
		badRequest(c, "Invalid transactionDate, expected "+dto.DateLayout)
		return
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, transactionUseCase.CreateTransactionRequest{
		AccountID:       req.AccountID,
		CategoryID:      req.CategoryID,
		TransactionType: entity.TransactionType(req.TransactionType),
		Amount:          amount,
		Currency:        entity.Currency(req.Currency),
		TransactionDate: txDate,
		Description:     req.Description,
		FxRateToBase:    fxRate,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx, h.resolveNames(c.Request.Context(), userID)))
}

// CreateTransfer handles POST /api/transactions/transfer
func (h *TransactionHandler) CreateTransfer(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		badRequest(c, "Invalid amount format")
		return
	}
	fxRate, err := parseFxRate(req.FxRateToBase)
	if err != nil {
		badRequest(c, "Invalid fxRateToBase format")
		return
	}
	transferDate, err := time.Parse(dto.DateLayout, req.TransferDate)
	if err != nil {
		badRequest(c, "Invalid transferDate, expected "+dto.DateLayout)
		return
	}

	result, err := h.transactionService.CreateTransfer(c.Request.Context(), userID, transactionUseCase.CreateTransferRequest{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        amount,
		Currency:      entity.Currency(req.Currency),
		TransferDate:  transferDate,
		Description:   req.Description,
		FxRateToBase:  fxRate,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	names := h.resolveNames(c.Request.Context(), userID)
	c.JSON(http.StatusCreated, dto.TransferResponse{
		TransferGroupID:     result.TransferGroupID.String(),
		OutgoingTransaction: dto.NewTransactionResponse(result.OutgoingTransaction, names),
		IncomingTransaction: dto.NewTransactionResponse(result.IncomingTransaction, names),
	})
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	txs, err := h.transactionService.GetUserTransactions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(txs, h.resolveNames(c.Request.Context(), userID)))
}

// ListByAccount handles GET /api/transactions/account/:accountId
func (h *TransactionHandler) ListByAccount(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	accountID, err := strconv.ParseUint(c.Param("accountId"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid account ID format")
		return
	}

	txs, err := h.transactionService.GetAccountTransactions(c.Request.Context(), userID, accountID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(txs, h.resolveNames(c.Request.Context(), userID)))
}

// GetByID handles GET /api/transactions/:id
func (h *TransactionHandler) GetByID(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	transactionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid transaction ID format")
		return
	}

	tx, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx, h.resolveNames(c.Request.Context(), userID)))
}

// Update handles PUT /api/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	transactionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid transaction ID format")
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	patch, err := buildPatch(&req)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	tx, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx, h.resolveNames(c.Request.Context(), userID)))
}

// Delete handles DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	transactionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid transaction ID format")
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// resolveNames loads the caller's accounts and categories to decorate
// responses with display names. Lookup failures degrade to bare IDs rather
// than failing the request.
func (h *TransactionHandler) resolveNames(ctx context.Context, userID uint64) dto.NameResolver {
	names := dto.NameResolver{
		Accounts:   make(map[uint64]string),
		Categories: make(map[uint64]string),
	}

	accounts, err := h.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		h.logger.Warn("Failed to resolve account names", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	} else {
		for _, account := range accounts {
			names.Accounts[account.ID] = account.DisplayName()
		}
	}

	categories, err := h.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		h.logger.Warn("Failed to resolve category names", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	} else {
		for _, category := range categories {
			names.Categories[category.ID] = category.Name
		}
	}

	return names
}

func buildPatch(req *dto.UpdateTransactionRequest) (transactionUseCase.UpdatePatch, error) {
	var patch transactionUseCase.UpdatePatch

	if req.CategoryID != nil {
		patch.CategoryID = transactionUseCase.Some(*req.CategoryID)
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return patch, errInvalidField("amount")
		}
		patch.Amount = transactionUseCase.Some(amount)
	}
	if req.TransactionDate != nil {
		txDate, err := time.Parse(dto.DateLayout, *req.TransactionDate)
		if err != nil {
			return patch, errInvalidField("transactionDate")
		}
		patch.TransactionDate = transactionUseCase.Some(txDate)
	}
	if req.Description != nil {
		patch.Description = transactionUseCase.Some(*req.Description)
	}
	if req.FxRateToBase != nil {
		rate, err := decimal.NewFromString(*req.FxRateToBase)
		if err != nil {
			return patch, errInvalidField("fxRateToBase")
		}
		patch.FxRateToBase = transactionUseCase.Some(rate)
	}
	if req.Notes != nil {
		patch.Notes = transactionUseCase.Some(*req.Notes)
	}

	return patch, nil
}

func parseFxRate(raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	rate, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}
