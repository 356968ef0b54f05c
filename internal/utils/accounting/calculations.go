package accounting

import (
	"fmt"

	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the correct sign to a transaction amount: a Credit
// increases the bank balance, a Debit decreases it. This is used in both
// services and repositories to keep the balance convention in one place.
func SignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.TransactionType {
	case domain.Credit:
		return txn.Amount, nil
	case domain.Debit:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type %q for transaction %s", txn.TransactionType, txn.TransactionID)
	}
}

// ComputeBalance folds the signed amounts of all transactions into a single
// balance. The result is independent of the order of the input.
func ComputeBalance(transactions []domain.Transaction) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, txn := range transactions {
		signed, err := SignedAmount(txn)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(signed)
	}
	return sum, nil
}
