package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kareem-anwar/finance-ledger/internal/domain/entity"
)

func TestCreateTransferRequestFieldNames(t *testing.T) {
	payload := `{
		"fromAccountId": 1,
		"toAccountId": 2,
		"amount": "500.00",
		"currency": "EGP",
		"transferDate": "2024-03-10",
		"description": "Move to savings"
	}`

	var req CreateTransferRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, uint64(1), req.FromAccountID)
	assert.Equal(t, uint64(2), req.ToAccountID)
	assert.Equal(t, "500.00", req.Amount)
	assert.Equal(t, "2024-03-10", req.TransferDate)
	assert.Equal(t, "Move to savings", req.Description)
}

func TestTransferResponseFieldNames(t *testing.T) {
	groupID := uuid.New()
	out := entity.DirectionOut
	in := entity.DirectionIn
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	names := NameResolver{Accounts: map[uint64]string{}, Categories: map[uint64]string{}}

	outLeg := &entity.Transaction{
		ID: 1, UserID: 1, AccountID: 10,
		TransactionType:   entity.TypeTransfer,
		TransferDirection: &out,
		TransferGroupID:   &groupID,
		Amount:            decimal.RequireFromString("500.00"),
		Currency:          entity.CurrencyEGP,
		TransactionDate:   date,
		Description:       "Move to savings",
	}
	inLeg := &entity.Transaction{
		ID: 2, UserID: 1, AccountID: 11,
		TransactionType:   entity.TypeTransfer,
		TransferDirection: &in,
		TransferGroupID:   &groupID,
		Amount:            decimal.RequireFromString("500.00"),
		Currency:          entity.CurrencyEGP,
		TransactionDate:   date,
		Description:       "Move to savings",
	}

	resp := TransferResponse{
		TransferGroupID:     groupID.String(),
		OutgoingTransaction: NewTransactionResponse(outLeg, names),
		IncomingTransaction: NewTransactionResponse(inLeg, names),
	}

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "transferGroupId")
	assert.Contains(t, decoded, "outgoingTransaction")
	assert.Contains(t, decoded, "incomingTransaction")
	assert.NotContains(t, decoded, "outgoing")
	assert.NotContains(t, decoded, "incoming")
}
