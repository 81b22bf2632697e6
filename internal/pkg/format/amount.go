// Package format holds the pure helpers used to present ledger values:
// micro-denominated amount conversion, currency and timestamp rendering,
// address shortening and RPC route templating.
package format

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// microExponent is the power of ten between a display amount and its
// smallest on-chain denomination (1 token = 1,000,000 micro units).
const microExponent = 6

var (
	// ErrFractionalMicro is returned when a display amount carries more
	// precision than the micro denomination can represent.
	ErrFractionalMicro = errors.New("amount has more than 6 decimal places")

	// ErrNegativeAmount is returned when a negative amount is converted to micro units.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrAmountOverflow is returned when the micro amount does not fit in an int64.
	ErrAmountOverflow = errors.New("amount overflows micro units")
)

var maxMicro = decimal.NewFromInt(math.MaxInt64)

// AmountToMicro converts a display amount into micro units.
func AmountToMicro(amount decimal.Decimal) decimal.Decimal {
	return amount.Shift(microExponent)
}

// AmountFromMicro converts micro units into a display amount.
func AmountFromMicro(micro decimal.Decimal) decimal.Decimal {
	return micro.Shift(-microExponent)
}

// MicroUnits converts a display amount into the integer micro amount carried
// by a transfer. The conversion is exact or it fails.
func MicroUnits(amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, ErrNegativeAmount
	}

	micro := AmountToMicro(amount)
	if !micro.IsInteger() {
		return 0, ErrFractionalMicro
	}

	if micro.GreaterThan(maxMicro) {
		return 0, ErrAmountOverflow
	}

	return micro.IntPart(), nil
}
