// Package numeric holds the exact decimal conversions shared by the ledger
// model and the txrep codec: amount scaling and bounded price approximation.
package numeric

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits carried by an amount.
const AmountScale = 7

var (
	ErrNotANumber = errors.New("not a decimal number")
	ErrNegative   = errors.New("negative value")
	ErrOutOfRange = errors.New("value out of range")
	ErrPrecision  = errors.New("too many fractional digits")
)

var maxInt64Amount = decimal.NewFromInt(math.MaxInt64)

// ParseDecimal parses s without ever going through binary floating point.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrNotANumber)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return d, nil
}

// ToStroops converts a human amount such as "12.34" into its integer wire
// value (123400000).
func ToStroops(amount string) (int64, error) {
	d, err := ParseDecimal(amount)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %s", ErrNegative, amount)
	}

	scaled := d.Shift(AmountScale)
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("%w: %s has more than %d", ErrPrecision, amount, AmountScale)
	}
	if scaled.GreaterThan(maxInt64Amount) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, amount)
	}
	return scaled.IntPart(), nil
}

// FromStroops converts an integer wire value back into the shortest human
// decimal string.
func FromStroops(stroops int64) (string, error) {
	if stroops < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegative, stroops)
	}
	return decimal.New(stroops, -AmountScale).String(), nil
}

// ParseStroops reads an integer wire amount as written in txrep.
func ParseStroops(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrOutOfRange, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %s", ErrNegative, s)
	}
	return v, nil
}

// CanonicalAmount rewrites a human amount into the form FromStroops would
// produce, so that equal amounts compare equal as strings.
func CanonicalAmount(amount string) (string, error) {
	stroops, err := ToStroops(amount)
	if err != nil {
		return "", err
	}
	return FromStroops(stroops)
}
