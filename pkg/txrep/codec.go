package txrep

import (
	"fmt"
	"strings"

	"github.com/SunceWallet/txrep/pkg/ledger"
)

// Option configures a Codec.
type Option func(*Codec)

// WithAnnotations makes Encode append human-readable notes to amounts and
// timestamps, e.g. `123400000 (12.34e7)`. Decode ignores them either way.
func WithAnnotations() Option {
	return func(c *Codec) {
		c.annotate = true
	}
}

// Codec converts transactions to and from txrep text. A Codec holds no
// mutable state and is safe for concurrent use.
type Codec struct {
	annotate bool
}

func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = New()

// Encode renders env with the default codec.
func Encode(env ledger.Envelope) (string, error) {
	return defaultCodec.Encode(env)
}

// Decode parses text with the default codec.
func Decode(text string) (*ledger.Transaction, error) {
	return defaultCodec.Decode(text)
}

// Encode renders a transaction as txrep lines joined by "\n". Fee-bump
// envelopes are rejected with ErrUnsupportedTransactionKind.
func (c *Codec) Encode(env ledger.Envelope) (string, error) {
	var tx ledger.Transaction
	switch v := env.(type) {
	case ledger.Transaction:
		tx = v
	case *ledger.Transaction:
		if v == nil {
			return "", newError(ErrUnsupportedTransactionKind, "", "nil transaction", nil)
		}
		tx = *v
	case ledger.FeeBumpTransaction, *ledger.FeeBumpTransaction:
		return "", newError(ErrUnsupportedTransactionKind, "", "fee-bump transactions have no txrep form", nil)
	default:
		return "", newError(ErrUnsupportedTransactionKind, "", fmt.Sprintf("%T", env), nil)
	}

	enc := &encoder{annotate: c.annotate}
	walkTransaction(enc, tx)
	if enc.err != nil {
		return "", enc.err
	}
	return strings.Join(enc.lines, "\n"), nil
}

// Decode parses txrep text into a transaction. Either the whole text is
// accepted or an *Error is returned with no partial result.
//
// Values come back in canonical form: amounts without trailing zeros
// ("12.340" encodes to 123400000 and decodes as "12.34") and an absent memo
// as ledger.NoMemo(). Decode(Encode(tx)) equals tx when tx is canonical.
func (c *Codec) Decode(text string) (*ledger.Transaction, error) {
	doc, err := parseDocument(text)
	if err != nil {
		return nil, err
	}

	dec := newDecoder(doc)
	tx := walkTransaction(dec, ledger.Transaction{})
	dec.checkConsumed()
	if dec.err != nil {
		return nil, dec.err
	}
	return &tx, nil
}
