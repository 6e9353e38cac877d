package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidCurrency     = 4003
	CodeInvalidFxRate       = 4004
	CodeSameAccountTransfer = 4005
	CodeTransferImmutable   = 4006
	CodeEmptyPatch          = 4007
	CodeUserNotFound        = 4040
	CodeAccountNotFound     = 4041
	CodeCategoryNotFound    = 4042
	CodeTransactionNotFound = 4043

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeInvariantViolation = 5001
)

// Base error types
var (
	// ErrInvalidRequest is returned for structurally well-formed but semantically illegal input
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAmount is returned when an amount is not positive, exceeds 13 integer
	// digits, or carries more than 2 decimal places
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCurrency is returned when the currency is not one of the supported codes
	ErrInvalidCurrency = errors.New("unsupported currency")

	// ErrInvalidFxRate is returned when the FX rate is not positive, exceeds 4 integer
	// digits, or carries more than 6 decimal places
	ErrInvalidFxRate = errors.New("invalid fx rate")

	// ErrInvalidDescription is returned when the description is empty or too long
	ErrInvalidDescription = errors.New("invalid description")

	// ErrInvalidDate is returned when a transaction date is missing
	ErrInvalidDate = errors.New("invalid transaction date")

	// ErrTransferNotAllowed is returned when a TRANSFER is submitted through the
	// single-transaction create path
	ErrTransferNotAllowed = errors.New("use the transfer operation for TRANSFER transactions")

	// ErrSameAccountTransfer is returned when source and destination accounts are equal
	ErrSameAccountTransfer = errors.New("source and destination accounts must be different")

	// ErrTransferImmutable is returned when an update targets a transfer leg;
	// the remedy is delete-and-recreate
	ErrTransferImmutable = errors.New("transfer transactions cannot be updated in place")

	// ErrEmptyPatch is returned when an update patch carries no recognized fields
	ErrEmptyPatch = errors.New("update patch has no fields set")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountNotFound is returned when the account doesn't exist or is not
	// owned by the caller
	ErrAccountNotFound = errors.New("account not found")

	// ErrCategoryNotFound is returned when the category doesn't exist or is not
	// owned by the caller
	ErrCategoryNotFound = errors.New("category not found")

	// ErrTransactionNotFound is returned when the transaction doesn't exist or is
	// not owned by the caller
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvariantViolation is returned when a transaction is found with mismatched
	// type/direction/group presence; indicates a bug, not user error
	ErrInvariantViolation = errors.New("transfer invariant violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidCurrency):
		return CodeInvalidCurrency
	case errors.Is(err, ErrInvalidFxRate):
		return CodeInvalidFxRate
	case errors.Is(err, ErrSameAccountTransfer):
		return CodeSameAccountTransfer
	case errors.Is(err, ErrTransferImmutable):
		return CodeTransferImmutable
	case errors.Is(err, ErrEmptyPatch):
		return CodeEmptyPatch
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidDescription),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrTransferNotAllowed):
		return CodeInvalidRequest
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrCategoryNotFound):
		return CodeCategoryNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrInvariantViolation):
		return CodeInvariantViolation
	default:
		return CodeInternalServer
	}
}

// InvariantError carries context about a transaction whose transfer fields
// contradict its type. Treated as fatal to the operation, never swallowed.
type InvariantError struct {
	TransactionID   uint64
	TransactionType string
	Reason          string
}

// Error implements the error interface
func (e *InvariantError) Error() string {
	return fmt.Sprintf("transfer invariant violated for transaction %d (type %s): %s",
		e.TransactionID, e.TransactionType, e.Reason)
}

// Is checks if the target error is an ErrInvariantViolation
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}

// LogFields returns a map of fields for structured logging
func (e *InvariantError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "invariant_violation",
		"transaction_id":   e.TransactionID,
		"transaction_type": e.TransactionType,
		"reason":           e.Reason,
		"error_code":       CodeInvariantViolation,
	}
}

// NewInvariantError creates a detailed invariant violation error
func NewInvariantError(transactionID uint64, transactionType, reason string) error {
	return &InvariantError{
		TransactionID:   transactionID,
		TransactionType: transactionType,
		Reason:          reason,
	}
}

// TransferError represents an error raised while creating or deleting a transfer pair
type TransferError struct {
	TransferGroupID string
	FromAccountID   uint64
	ToAccountID     uint64
	Amount          string
	Reason          string
	Err             error
}

// Error implements the error interface for TransferError
func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer error for group %s (from: %d, to: %d, amount: %s): %s - %v",
		e.TransferGroupID, e.FromAccountID, e.ToAccountID, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	return map[string]any{
		"error_type":        "transfer_error",
		"transfer_group_id": e.TransferGroupID,
		"from_account_id":   e.FromAccountID,
		"to_account_id":     e.ToAccountID,
		"amount":            e.Amount,
		"reason":            e.Reason,
		"error":             e.Err.Error(),
		"error_code":        ErrorCode(e.Err),
	}
}

// NewTransferError creates a detailed transfer error
func NewTransferError(groupID string, fromAccountID, toAccountID uint64, amount, reason string, err error) error {
	return &TransferError{
		TransferGroupID: groupID,
		FromAccountID:   fromAccountID,
		ToAccountID:     toAccountID,
		Amount:          amount,
		Reason:          reason,
		Err:             err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsInvalidRequestError checks if the error is a semantic request error
func IsInvalidRequestError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidCurrency) ||
		errors.Is(err, ErrInvalidFxRate) ||
		errors.Is(err, ErrInvalidDescription) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrTransferNotAllowed) ||
		errors.Is(err, ErrSameAccountTransfer) ||
		errors.Is(err, ErrTransferImmutable) ||
		errors.Is(err, ErrEmptyPatch)
}

// IsInvariantViolationError checks if the error is an internal invariant failure
func IsInvariantViolationError(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}
