package numeric

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// MaxPriceTerm bounds both terms of a price fraction.
const MaxPriceTerm = math.MaxInt32

// BestR approximates the decimal price by the fraction n/d closest to it with
// 0 <= n <= MaxInt32 and 0 < d <= MaxInt32.
func BestR(price string) (n, d int32, err error) {
	x, err := ParseDecimal(price)
	if err != nil {
		return 0, 0, err
	}
	if x.IsNegative() {
		return 0, 0, fmt.Errorf("%w: price %s", ErrNegative, price)
	}
	if x.GreaterThan(decimal.NewFromInt(MaxPriceTerm)) {
		return 0, 0, fmt.Errorf("%w: price %s", ErrOutOfRange, price)
	}

	num, den := bestRational(x.Rat(), MaxPriceTerm)
	return int32(num), int32(den), nil
}

// PriceString renders n/d as a decimal with up to 7 fractional digits,
// rounding half away from zero. The result is for display only.
func PriceString(n, d int32) (string, error) {
	if d <= 0 {
		return "", fmt.Errorf("%w: denominator %d", ErrOutOfRange, d)
	}
	return decimal.NewFromInt32(n).DivRound(decimal.NewFromInt32(d), AmountScale).String(), nil
}

// bestRational walks the continued fraction of x. Once the next convergent
// would leave the bound it compares the last fitting convergent with the
// largest semiconvergent that still fits and keeps the closer one.
func bestRational(x *big.Rat, bound int64) (int64, int64) {
	if x.Sign() == 0 {
		return 0, 1
	}

	limit := big.NewInt(bound)
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	num := new(big.Int).Set(x.Num())
	den := new(big.Int).Set(x.Denom())

	for {
		a, rem := new(big.Int).QuoRem(num, den, new(big.Int))
		p2 := new(big.Int).Add(new(big.Int).Mul(a, p1), p0)
		q2 := new(big.Int).Add(new(big.Int).Mul(a, q1), q0)
		if p2.Cmp(limit) > 0 || q2.Cmp(limit) > 0 {
			break
		}
		p0, q0, p1, q1 = p1, q1, p2, q2
		if rem.Sign() == 0 {
			return p1.Int64(), q1.Int64()
		}
		num, den = den, rem
	}

	// largest k keeping p0+k*p1 and q0+k*q1 within the bound
	k := new(big.Int).Quo(new(big.Int).Sub(limit, q0), q1)
	if p1.Sign() > 0 {
		kp := new(big.Int).Quo(new(big.Int).Sub(limit, p0), p1)
		if kp.Cmp(k) < 0 {
			k = kp
		}
	}

	sp := new(big.Int).Add(p0, new(big.Int).Mul(k, p1))
	sq := new(big.Int).Add(q0, new(big.Int).Mul(k, q1))
	if k.Sign() > 0 && sq.Sign() > 0 {
		semi := new(big.Rat).SetFrac(sp, sq)
		conv := new(big.Rat).SetFrac(p1, q1)
		if distance(semi, x).Cmp(distance(conv, x)) < 0 {
			return sp.Int64(), sq.Int64()
		}
	}
	return p1.Int64(), q1.Int64()
}

func distance(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Abs(new(big.Rat).Sub(a, b))
}
