package wallet

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrBadAmount wraps every amount rejection from ParseAmount.
var ErrBadAmount = errors.New("invalid amount")

// MaxFractionDigits is the upper bound on fractional precision a tip amount
// may carry, matching the largest decimal count of any supported asset.
const MaxFractionDigits = 18

var maxWholeAmount = big.NewInt(1_000_000)

// ParseAmount converts a decimal string into the token's smallest unit using
// exact integer arithmetic on the string representation. Floating point is
// never involved; 18-decimal scale would silently lose precision there.
//
// The amount must be positive, at most 1,000,000, and carry no more
// fractional digits than the token has decimals.
func ParseAmount(s string, decimals int) (*big.Int, error) {
	if decimals < 0 || decimals > MaxFractionDigits {
		return nil, fmt.Errorf("%w: unsupported decimal count %d", ErrBadAmount, decimals)
	}

	whole, frac, err := splitDecimal(s)
	if err != nil {
		return nil, err
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("%w: %d fractional digits exceeds token precision of %d", ErrBadAmount, len(frac), decimals)
	}

	wholeInt, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadAmount, s)
	}
	if wholeInt.Cmp(maxWholeAmount) > 0 || (wholeInt.Cmp(maxWholeAmount) == 0 && strings.Trim(frac, "0") != "") {
		return nil, fmt.Errorf("%w: exceeds maximum of %s", ErrBadAmount, maxWholeAmount)
	}

	// value = whole*10^decimals + frac padded to decimals digits
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	value := new(big.Int).Mul(wholeInt, scale)
	if frac != "" {
		padded := frac + strings.Repeat("0", decimals-len(frac))
		fracInt, ok := new(big.Int).SetString(padded, 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadAmount, s)
		}
		value.Add(value, fracInt)
	}

	if value.Sign() <= 0 {
		return nil, fmt.Errorf("%w: must be greater than zero", ErrBadAmount)
	}
	return value, nil
}

// CheckAmount validates a decimal amount string against the tip bounds
// without scaling it to a particular token.
func CheckAmount(s string) error {
	_, err := ParseAmount(s, MaxFractionDigits)
	return err
}

func splitDecimal(s string) (whole, frac string, err error) {
	if s == "" {
		return "", "", fmt.Errorf("%w: empty", ErrBadAmount)
	}
	whole, frac, _ = strings.Cut(s, ".")
	if whole == "" || !allDigits(whole) {
		return "", "", fmt.Errorf("%w: %q", ErrBadAmount, s)
	}
	if strings.Contains(frac, ".") || (strings.Contains(s, ".") && frac == "") || !allDigits(frac) {
		return "", "", fmt.Errorf("%w: %q", ErrBadAmount, s)
	}
	return whole, frac, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
