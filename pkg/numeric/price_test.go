package numeric

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestR(t *testing.T) {
	tests := []struct {
		price string
		n, d  int32
	}{
		{"0", 0, 1},
		{"1", 1, 1},
		{"1.25", 5, 4},
		{"0.5", 1, 2},
		{"0.1", 1, 10},
		{"3.14159", 314159, 100000},
		{"0.000000001", 1, 1000000000},
		{"2147483647", 2147483647, 1},
		{"1000000", 1000000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			n, d, err := BestR(tt.price)
			require.NoError(t, err)
			assert.Equal(t, tt.n, n)
			assert.Equal(t, tt.d, d)
		})
	}
}

func TestBestRIsDeterministic(t *testing.T) {
	n1, d1, err := BestR("3.141592653589793238462643383279")
	require.NoError(t, err)
	n2, d2, err := BestR("3.141592653589793238462643383279")
	require.NoError(t, err)
	assert.Equal(t, n1, n2)
	assert.Equal(t, d1, d2)
	assert.Greater(t, d1, int32(0))
}

func TestBestRErrors(t *testing.T) {
	tests := []struct {
		price   string
		wantErr error
	}{
		{"-1", ErrNegative},
		{"2147483648", ErrOutOfRange},
		{"abc", ErrNotANumber},
		{"", ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			_, _, err := BestR(tt.price)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// bruteForce scans every fraction with terms up to bound.
func bruteForce(x *big.Rat, bound int64) *big.Rat {
	var best *big.Rat
	for d := int64(1); d <= bound; d++ {
		for n := int64(0); n <= bound; n++ {
			err := distance(big.NewRat(n, d), x)
			if best == nil || err.Cmp(best) < 0 {
				best = err
			}
		}
	}
	return best
}

func TestBestRationalIsClosest(t *testing.T) {
	values := []string{
		"0.3183098861837907",
		"3.141592653589793",
		"2.718281828459045",
		"1.4142135623730951",
		"0.012345",
		"17.9",
		"0.99",
		"29.5",
		"0.0001",
	}
	const bound = 30

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			x, ok := new(big.Rat).SetString(v)
			require.True(t, ok)

			n, d := bestRational(x, bound)
			assert.LessOrEqual(t, n, int64(bound))
			assert.LessOrEqual(t, d, int64(bound))
			assert.Greater(t, d, int64(0))

			got := distance(big.NewRat(n, d), x)
			assert.Zero(t, got.Cmp(bruteForce(x, bound)), "%d/%d is not the closest fraction", n, d)
		})
	}
}

func TestPriceString(t *testing.T) {
	s, err := PriceString(5, 4)
	require.NoError(t, err)
	assert.Equal(t, "1.25", s)

	s, err = PriceString(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "0.3333333", s)

	_, err = PriceString(1, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
