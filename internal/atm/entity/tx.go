package entity

import "github.com/shopspring/decimal"

// Transaction is one recorded deposit or withdrawal. Amount is always
// positive; Kind carries the direction.
type Transaction struct {
	ID        int64
	Kind      TxKind
	Amount    decimal.Decimal
	CreatedAt int64
}

// Signed returns Amount with the sign of its effect on the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == TxKindWithdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}
