package accounting_test

import (
	"testing"

	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	"github.com/fsbooks/bookkeeping_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedAmount(t *testing.T) {
	credit := domain.Transaction{
		TransactionID:   "txn-c",
		Amount:          decimal.NewFromInt(1000),
		TransactionType: domain.Credit,
	}
	debit := domain.Transaction{
		TransactionID:   "txn-d",
		Amount:          decimal.NewFromInt(300),
		TransactionType: domain.Debit,
	}

	got, err := accounting.SignedAmount(credit)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1000)))

	got, err = accounting.SignedAmount(debit)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(-300)))

	_, err = accounting.SignedAmount(domain.Transaction{TransactionType: "Transfer"})
	assert.ErrorContains(t, err, "unknown transaction type")
}

func TestComputeBalance(t *testing.T) {
	txns := []domain.Transaction{
		{Amount: decimal.NewFromInt(1000), TransactionType: domain.Credit},
		{Amount: decimal.NewFromInt(300), TransactionType: domain.Debit},
	}

	balance, err := accounting.ComputeBalance(txns)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(700)), "got %s", balance)
}

func TestComputeBalance_Empty(t *testing.T) {
	balance, err := accounting.ComputeBalance(nil)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestComputeBalance_OrderIndependent(t *testing.T) {
	forward := []domain.Transaction{
		{Amount: decimal.NewFromInt(500), TransactionType: domain.Credit},
		{Amount: decimal.NewFromInt(120), TransactionType: domain.Debit},
		{Amount: decimal.NewFromInt(75), TransactionType: domain.Credit},
	}
	reversed := []domain.Transaction{forward[2], forward[1], forward[0]}

	a, err := accounting.ComputeBalance(forward)
	require.NoError(t, err)
	b, err := accounting.ComputeBalance(reversed)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}
