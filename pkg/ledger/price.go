package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/SunceWallet/txrep/pkg/numeric"
)

// Price is the exact ratio N/D used by offer operations.
type Price struct {
	N int32 `json:"n" validate:"gte=0"`
	D int32 `json:"d" validate:"gt=0"`
}

// ParsePrice approximates a decimal price with numeric.BestR.
func ParsePrice(s string) (Price, error) {
	n, d, err := numeric.BestR(s)
	if err != nil {
		return Price{}, fmt.Errorf("price %q: %w", s, err)
	}
	return Price{N: n, D: d}, nil
}

// MustParsePrice is ParsePrice for literals.
func MustParsePrice(s string) Price {
	p, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) String() string {
	s, err := numeric.PriceString(p.N, p.D)
	if err != nil {
		return fmt.Sprintf("%d/%d", p.N, p.D)
	}
	return s
}

// UnmarshalJSON accepts {"n":..,"d":..} or a decimal string.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParsePrice(s)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	type rawPrice Price
	var raw rawPrice
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Price(raw)
	return nil
}
