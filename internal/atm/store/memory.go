package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shandysiswandi/goatm/internal/atm/entity"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgerror"
)

// InMemoryLedger holds the single account for the lifetime of the process.
//
// It is owned by one session goroutine and is not safe for concurrent use.
type InMemoryLedger struct {
	initial decimal.Decimal
	balance decimal.Decimal
	history []entity.Transaction
}

func NewInMemoryLedger(initial decimal.Decimal) (*InMemoryLedger, error) {
	if initial.IsNegative() {
		return nil, pkgerror.NewServer(fmt.Errorf("initial balance %s is negative", initial))
	}

	return &InMemoryLedger{
		initial: initial,
		balance: initial,
	}, nil
}

func (s *InMemoryLedger) Balance(ctx context.Context) (decimal.Decimal, error) {
	return s.balance, nil
}

// History returns a copy of the transactions in recording order.
func (s *InMemoryLedger) History(ctx context.Context) ([]entity.Transaction, error) {
	out := make([]entity.Transaction, len(s.history))
	copy(out, s.history)
	return out, nil
}

// Append applies tx to the balance and records it, returning the new balance.
// Transactions that would leave the balance negative are refused and leave
// the ledger untouched.
func (s *InMemoryLedger) Append(ctx context.Context, tx entity.Transaction) (decimal.Decimal, error) {
	if !tx.Amount.IsPositive() {
		return s.balance, pkgerror.NewServer(fmt.Errorf("transaction amount %s is not positive", tx.Amount))
	}

	next := s.balance.Add(tx.Signed())
	if next.IsNegative() {
		return s.balance, pkgerror.NewBusiness("balance cannot go negative", pkgerror.CodeInsufficientFunds)
	}

	s.balance = next
	s.history = append(s.history, tx)

	return s.balance, nil
}

// Reconcile recomputes the balance from the initial value and the history.
func (s *InMemoryLedger) Reconcile(ctx context.Context) (decimal.Decimal, error) {
	total := s.initial
	for _, tx := range s.history {
		total = total.Add(tx.Signed())
	}

	if !total.Equal(s.balance) {
		return total, pkgerror.NewServer(fmt.Errorf("ledger drift: balance %s, history says %s", s.balance, total))
	}

	return total, nil
}
