package usecase

import "github.com/shandysiswandi/goatm/internal/pkg/pkgerror"

//nolint:gochecknoglobals // sentinels compared with errors.Is
var (
	ErrInvalidCredentials      = pkgerror.NewBusiness("Invalid account number or password. Access denied.", pkgerror.CodeUnauthorized)
	ErrInvalidAmountFormat     = pkgerror.NewValidation("Invalid input. Please enter a valid amount.", pkgerror.CodeInvalidFormat)
	ErrDepositBelowMinimum     = pkgerror.NewValidation("Deposit amount is below the minimum.", pkgerror.CodeInvalidInput)
	ErrInsufficientFunds       = pkgerror.NewBusiness("Insufficient funds.", pkgerror.CodeInsufficientFunds)
	ErrInvalidWithdrawalAmount = pkgerror.NewValidation("Invalid amount entered.", pkgerror.CodeInvalidInput)
)
