package usecase

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// amounts are whole cents
	amountScale = 2

	minAmountExponent = -18
	maxAmountExponent = 15
	maxAmountDigits   = 18
)

// ParseAmount reads a free-form monetary amount typed by the user.
//
// Surrounding whitespace is ignored and exponent notation is accepted. Sign
// is not checked here; Deposit and Withdraw own those rules. Amounts finer
// than a cent, or too large to be a sensible balance, are rejected as
// invalid input.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, ErrInvalidAmountFormat
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, ErrInvalidAmountFormat
	}

	// bound the exponent and coefficient before any arithmetic rescales them
	exp := amount.Exponent()
	if exp < minAmountExponent || exp > maxAmountExponent || amount.NumDigits() > maxAmountDigits {
		return decimal.Zero, ErrInvalidAmountFormat
	}

	if !amount.Equal(amount.Truncate(amountScale)) {
		return decimal.Zero, ErrInvalidAmountFormat
	}

	return amount, nil
}
