package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shandysiswandi/goatm/internal/atm/entity"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goatm/internal/pkg/pkguid"
)

type Ledger interface {
	Balance(ctx context.Context) (decimal.Decimal, error)
	History(ctx context.Context) ([]entity.Transaction, error)
	Append(ctx context.Context, tx entity.Transaction) (decimal.Decimal, error)
}

type CredentialStore interface {
	Lookup(ctx context.Context, identifier string) (entity.Credential, error)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Ledger      Ledger
	Credentials CredentialStore
	Clock       Clock
	ID          pkguid.NumberID
	// MinDeposit is exclusive: a deposit must be strictly greater.
	MinDeposit decimal.Decimal
}

type Usecase struct {
	ledger      Ledger
	credentials CredentialStore
	clock       Clock
	id          pkguid.NumberID
	minDeposit  decimal.Decimal
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		ledger:      dep.Ledger,
		credentials: dep.Credentials,
		clock:       clock,
		id:          dep.ID,
		minDeposit:  dep.MinDeposit,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// MinDeposit is the exclusive lower bound for deposits.
func (u *Usecase) MinDeposit() decimal.Decimal {
	return u.minDeposit
}

// Login checks the submitted pair and moves the session into the menu loop.
// On mismatch the session falls back to logged out.
func (u *Usecase) Login(ctx context.Context, session *entity.Session, identifier, secret string) error {
	if err := session.Transition(entity.SessionStateAuthenticating); err != nil {
		return pkgerror.NewServer(err)
	}

	cred, err := u.credentials.Lookup(ctx, identifier)
	if err != nil && !errors.Is(err, pkgerror.ErrNotFound) {
		_ = session.Transition(entity.SessionStateLoggedOut)
		return normalizeErr(err)
	}

	if err != nil || cred.Secret != secret {
		_ = session.Transition(entity.SessionStateLoggedOut)
		slog.InfoContext(ctx, "login rejected")
		return ErrInvalidCredentials
	}

	if err := session.Transition(entity.SessionStateMenuLoop); err != nil {
		return pkgerror.NewServer(err)
	}

	slog.InfoContext(ctx, "login accepted")
	return nil
}

// End terminates the session, either from the menu (exit) or before login
// (cancel).
func (u *Usecase) End(ctx context.Context, session *entity.Session) error {
	if err := session.Transition(entity.SessionStateTerminated); err != nil {
		return pkgerror.NewServer(err)
	}

	slog.InfoContext(ctx, "session ended")
	return nil
}

func (u *Usecase) Balance(ctx context.Context) (BalanceResult, error) {
	balance, err := u.ledger.Balance(ctx)
	if err != nil {
		return BalanceResult{}, normalizeErr(err)
	}

	return BalanceResult{Balance: balance}, nil
}

func (u *Usecase) Deposit(ctx context.Context, amount decimal.Decimal) (MutationResult, error) {
	if !amount.GreaterThan(u.minDeposit) {
		return MutationResult{}, ErrDepositBelowMinimum
	}

	return u.record(ctx, entity.TxKindDeposit, amount)
}

func (u *Usecase) Withdraw(ctx context.Context, amount decimal.Decimal) (MutationResult, error) {
	if !amount.IsPositive() {
		return MutationResult{}, ErrInvalidWithdrawalAmount
	}

	balance, err := u.ledger.Balance(ctx)
	if err != nil {
		return MutationResult{}, normalizeErr(err)
	}

	if amount.GreaterThan(balance) {
		return MutationResult{}, ErrInsufficientFunds
	}

	return u.record(ctx, entity.TxKindWithdrawal, amount)
}

func (u *Usecase) History(ctx context.Context) (HistoryResult, error) {
	txs, err := u.ledger.History(ctx)
	if err != nil {
		return HistoryResult{}, normalizeErr(err)
	}

	return HistoryResult{Transactions: txs}, nil
}

func (u *Usecase) record(ctx context.Context, kind entity.TxKind, amount decimal.Decimal) (MutationResult, error) {
	if u.ledger == nil || u.id == nil {
		return MutationResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	tx := entity.Transaction{
		ID:        u.id.Generate(),
		Kind:      kind,
		Amount:    amount,
		CreatedAt: u.clock.Now().Unix(),
	}

	balance, err := u.ledger.Append(ctx, tx)
	if err != nil {
		return MutationResult{}, normalizeErr(err)
	}

	slog.InfoContext(ctx, "transaction recorded", "tx_id", tx.ID, "kind", tx.Kind, "amount", tx.Amount.String())

	return MutationResult{Transaction: tx, Balance: balance}, nil
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
