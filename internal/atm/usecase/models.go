package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/shandysiswandi/goatm/internal/atm/entity"
)

type BalanceResult struct {
	Balance decimal.Decimal
}

type MutationResult struct {
	Transaction entity.Transaction
	Balance     decimal.Decimal
}

type HistoryResult struct {
	Transactions []entity.Transaction
}

// HasTransactions reports whether anything has been recorded yet.
func (r HistoryResult) HasTransactions() bool {
	return len(r.Transactions) > 0
}
