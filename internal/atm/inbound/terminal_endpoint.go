package inbound

import (
	"context"
	"errors"
	"fmt"

	"github.com/shandysiswandi/goatm/internal/atm/usecase"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgprompt"
)

type TerminalEndpoint struct {
	uc     uc
	prompt prompter
	money  Money
}

func (h *TerminalEndpoint) CheckBalance(ctx context.Context) (any, error) {
	result, err := h.uc.Balance(ctx)
	if err != nil {
		return nil, err
	}

	return BalanceResponse{Balance: h.money.Format(result.Balance)}, nil
}

func (h *TerminalEndpoint) Deposit(ctx context.Context) (any, error) {
	minimum := h.money.Short(h.uc.MinDeposit())

	input, err := h.prompt.Line(ctx, fmt.Sprintf("Enter the amount to deposit (must be above %s):", minimum))
	if err != nil {
		return canceledOr(err)
	}

	amount, err := usecase.ParseAmount(input)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Deposit(ctx, amount)
	if errors.Is(err, usecase.ErrDepositBelowMinimum) {
		return nil, pkgerror.WithMessage(err, fmt.Sprintf("Deposit amount must be above %s.", minimum))
	}
	if err != nil {
		return nil, err
	}

	return DepositResponse{Balance: h.money.Format(result.Balance)}, nil
}

func (h *TerminalEndpoint) Withdraw(ctx context.Context) (any, error) {
	input, err := h.prompt.Line(ctx, "Enter the amount to withdraw:")
	if err != nil {
		return canceledOr(err)
	}

	amount, err := usecase.ParseAmount(input)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Withdraw(ctx, amount)
	if err != nil {
		return nil, err
	}

	return WithdrawResponse{Balance: h.money.Format(result.Balance)}, nil
}

func (h *TerminalEndpoint) TransactionHistory(ctx context.Context) (any, error) {
	result, err := h.uc.History(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]HistoryLine, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		lines = append(lines, HistoryLine{Kind: tx.Kind, Amount: h.money.Format(tx.Amount)})
	}

	return HistoryResponse{Lines: lines}, nil
}

func (h *TerminalEndpoint) Exit(ctx context.Context) (any, error) {
	session, ok := SessionFromContext(ctx)
	if !ok {
		return nil, pkgerror.NewServer(errors.New("no session in context"))
	}

	if err := h.uc.End(ctx, session); err != nil {
		return nil, err
	}

	return ExitResponse{}, nil
}

// canceledOr turns a backed-out prompt into a silent return to the menu.
func canceledOr(err error) (any, error) {
	if isCanceled(err) {
		return CanceledResponse{}, nil
	}
	return nil, pkgerror.NewServer(err)
}

func isCanceled(err error) bool {
	return errors.Is(err, pkgprompt.ErrCanceled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
