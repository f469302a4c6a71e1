package inbound

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shandysiswandi/goatm/internal/atm/entity"
)

// Money renders amounts with the configured currency symbol.
type Money struct {
	Symbol string
}

// Format renders d with two decimals, e.g. ₹3000.00.
func (m Money) Format(d decimal.Decimal) string {
	return m.Symbol + d.StringFixed(2)
}

// Short renders d without padding, e.g. ₹100.
func (m Money) Short(d decimal.Decimal) string {
	return m.Symbol + d.String()
}

type BalanceResponse struct {
	Balance string
}

func (r BalanceResponse) Message() string {
	return "Your current balance is: " + r.Balance
}

type DepositResponse struct {
	Balance string
}

func (r DepositResponse) Message() string {
	return "Deposit successful. Your new balance is: " + r.Balance
}

type WithdrawResponse struct {
	Balance string
}

func (r WithdrawResponse) Message() string {
	return "Withdrawal successful. Your new balance is: " + r.Balance
}

type HistoryLine struct {
	Kind   entity.TxKind
	Amount string
}

type HistoryResponse struct {
	Lines []HistoryLine
}

func (r HistoryResponse) Message() string {
	if len(r.Lines) == 0 {
		return "No Recent Transaction History"
	}

	var b strings.Builder
	b.WriteString("Transaction History:")
	for _, l := range r.Lines {
		sign := "+"
		if l.Kind == entity.TxKindWithdrawal {
			sign = "-"
		}
		b.WriteString("\n")
		b.WriteString(sign + " " + l.Amount)
	}

	return b.String()
}

// CanceledResponse is returned when the user backs out of an amount prompt.
type CanceledResponse struct{}

func (CanceledResponse) Message() string {
	return ""
}

type ExitResponse struct{}

func (ExitResponse) Message() string {
	return "Thank you for using the ATM!"
}
