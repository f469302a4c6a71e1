package inbound

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shandysiswandi/goatm/internal/atm/entity"
	"github.com/shandysiswandi/goatm/internal/atm/usecase"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgrouter"
)

type uc interface {
	Login(ctx context.Context, session *entity.Session, identifier, secret string) error
	End(ctx context.Context, session *entity.Session) error
	Balance(ctx context.Context) (usecase.BalanceResult, error)
	Deposit(ctx context.Context, amount decimal.Decimal) (usecase.MutationResult, error)
	Withdraw(ctx context.Context, amount decimal.Decimal) (usecase.MutationResult, error)
	History(ctx context.Context) (usecase.HistoryResult, error)
	MinDeposit() decimal.Decimal
}

type prompter interface {
	Line(ctx context.Context, label string) (string, error)
	Secret(ctx context.Context, label string) (string, error)
	Say(msg string) error
}

const (
	ActionBalance  = "balance"
	ActionDeposit  = "deposit"
	ActionHistory  = "history"
	ActionWithdraw = "withdraw"
	ActionExit     = "exit"
)

// RegisterTerminalEndpoint adds the menu actions in the order the menu lists
// them.
func RegisterTerminalEndpoint(r *pkgrouter.Router, uc uc, p prompter, money Money) {
	end := &TerminalEndpoint{uc: uc, prompt: p, money: money}

	r.Handle(ActionBalance, "Check Balance", end.CheckBalance)
	r.Handle(ActionDeposit, "Deposit", end.Deposit)
	r.Handle(ActionHistory, "Transaction History", end.TransactionHistory)
	r.Handle(ActionWithdraw, "Withdraw", end.Withdraw)
	r.Handle(ActionExit, "Exit", end.Exit)
}
