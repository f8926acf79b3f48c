// Package money converts between the decimal amounts used at the API
// boundary and the int64 minor units (cents) used in storage and on the
// wire. Balances never exist as floats inside the system.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotPositive = errors.New("amount must be greater than zero")
	ErrTooPrecise  = errors.New("amount has more than two decimal places")
	ErrOutOfRange  = errors.New("amount out of range")
)

var centFactor = decimal.NewFromInt(100)

// ToMinorUnits converts a decimal amount to cents, rejecting sub-cent
// precision so that 10.005 cannot silently round into the ledger.
func ToMinorUnits(d decimal.Decimal) (int64, error) {
	cents := d.Mul(centFactor)
	if !cents.IsInteger() {
		return 0, ErrTooPrecise
	}
	if cents.Cmp(decimal.NewFromInt(1).Shift(18)) >= 0 || cents.Cmp(decimal.NewFromInt(-1).Shift(18)) <= 0 {
		return 0, ErrOutOfRange
	}
	return cents.IntPart(), nil
}

// PositiveMinorUnits is ToMinorUnits plus the money-movement precondition
// that amounts are strictly positive.
func PositiveMinorUnits(d decimal.Decimal) (int64, error) {
	v, err := ToMinorUnits(d)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, ErrNotPositive
	}
	return v, nil
}

// FromMinorUnits renders cents back into a decimal with two fraction
// digits, e.g. 4000 -> 40.00.
func FromMinorUnits(v int64) decimal.Decimal {
	return decimal.NewFromInt(v).DivRound(centFactor, 2)
}
