package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kareem-anwar/finance-ledger/internal/domain/entity"
)

// DateLayout is the wire format for transaction dates
const DateLayout = "2006-01-02"

// CreateTransactionRequest represents the API request for creating a single transaction
type CreateTransactionRequest struct {
	TransactionType string  `json:"transactionType" binding:"required,oneof=INCOME EXPENSE ADJUSTMENT"`
	AccountID       uint64  `json:"accountId" binding:"required"`
	CategoryID      *uint64 `json:"categoryId"`
	Amount          string  `json:"amount" binding:"required"`
	Currency        string  `json:"currency" binding:"required,oneof=EGP USD"`
	TransactionDate string  `json:"transactionDate" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	FxRateToBase    *string `json:"fxRateToBase"`
	Notes           string  `json:"notes"`
}

// CreateTransferRequest represents the API request for creating a transfer pair
type CreateTransferRequest struct {
	FromAccountID uint64  `json:"fromAccountId" binding:"required"`
	ToAccountID   uint64  `json:"toAccountId" binding:"required"`
	Amount        string  `json:"amount" binding:"required"`
	Currency      string  `json:"currency" binding:"required,oneof=EGP USD"`
	TransferDate  string  `json:"transferDate" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	FxRateToBase  *string `json:"fxRateToBase"`
	Notes         string  `json:"notes"`
}

// UpdateTransactionRequest represents a partial update. Only fields present in
// the JSON body are applied; at least one must be present.
type UpdateTransactionRequest struct {
	CategoryID      *uint64 `json:"categoryId"`
	Amount          *string `json:"amount"`
	TransactionDate *string `json:"transactionDate"`
	Description     *string `json:"description"`
	FxRateToBase    *string `json:"fxRateToBase"`
	Notes           *string `json:"notes"`
}

// IsEmpty reports whether the request carries no fields at all
func (r *UpdateTransactionRequest) IsEmpty() bool {
	return r.CategoryID == nil &&
		r.Amount == nil &&
		r.TransactionDate == nil &&
		r.Description == nil &&
		r.FxRateToBase == nil &&
		r.Notes == nil
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID                uint64  `json:"id"`
	UserID            uint64  `json:"userId"`
	AccountID         uint64  `json:"accountId"`
	AccountName       string  `json:"accountName,omitempty"`
	CategoryID        *uint64 `json:"categoryId,omitempty"`
	CategoryName      string  `json:"categoryName,omitempty"`
	TransactionType   string  `json:"transactionType"`
	TransferDirection *string `json:"transferDirection,omitempty"`
	TransferGroupID   *string `json:"transferGroupId,omitempty"`
	Amount            string  `json:"amount"`
	Currency          string  `json:"currency"`
	TransactionDate   string  `json:"transactionDate"`
	Description       string  `json:"description"`
	FxRateToBase      *string `json:"fxRateToBase,omitempty"`
	Notes             string  `json:"notes,omitempty"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// TransferResponse represents both legs of a created transfer
type TransferResponse struct {
	TransferGroupID     string              `json:"transferGroupId"`
	OutgoingTransaction TransactionResponse `json:"outgoingTransaction"`
	IncomingTransaction TransactionResponse `json:"incomingTransaction"`
}

// NameResolver maps account and category IDs to display names
type NameResolver struct {
	Accounts   map[uint64]string
	Categories map[uint64]string
}

// NewTransactionResponse maps a domain transaction to its API representation
func NewTransactionResponse(tx *entity.Transaction, names NameResolver) TransactionResponse {
	resp := TransactionResponse{
		ID:              tx.ID,
		UserID:          tx.UserID,
		AccountID:       tx.AccountID,
		AccountName:     names.Accounts[tx.AccountID],
		CategoryID:      tx.CategoryID,
		TransactionType: string(tx.TransactionType),
		Amount:          formatAmount(tx.Amount),
		Currency:        string(tx.Currency),
		TransactionDate: tx.TransactionDate.Format(DateLayout),
		Description:     tx.Description,
		Notes:           tx.Notes,
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       tx.UpdatedAt.Format(time.RFC3339),
	}
	if tx.CategoryID != nil {
		resp.CategoryName = names.Categories[*tx.CategoryID]
	}
	if tx.TransferDirection != nil {
		direction := string(*tx.TransferDirection)
		resp.TransferDirection = &direction
	}
	if tx.TransferGroupID != nil {
		groupID := tx.TransferGroupID.String()
		resp.TransferGroupID = &groupID
	}
	if tx.FxRateToBase != nil {
		rate := tx.FxRateToBase.String()
		resp.FxRateToBase = &rate
	}
	return resp
}

// NewTransactionResponses maps a slice of domain transactions preserving order
func NewTransactionResponses(txs []*entity.Transaction, names NameResolver) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, NewTransactionResponse(tx, names))
	}
	return responses
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
