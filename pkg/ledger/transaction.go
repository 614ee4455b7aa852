// Package ledger is the transaction value model exchanged with the txrep
// codec: accounts, operations, memos, time bounds and signatures.
package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/moznion/go-optional"
)

// Envelope is a transaction as submitted: either a Transaction or a
// FeeBumpTransaction wrapping one.
type Envelope interface {
	isEnvelope()
}

// Transaction is a classic ledger transaction. Its extension version is
// always zero and therefore not stored.
type Transaction struct {
	SourceAccount string                      `json:"sourceAccount" validate:"required,accountid"`
	Fee           uint32                      `json:"fee"`
	SeqNum        int64                       `json:"seqNum,string" validate:"gte=0"`
	TimeBounds    optional.Option[TimeBounds] `json:"timeBounds,omitempty"`
	Memo          Memo                        `json:"memo"`
	Operations    []Operation                 `json:"operations" validate:"max=100,dive"`
	Signatures    []DecoratedSignature        `json:"signatures,omitempty" validate:"max=20,dive"`
}

// TimeBounds limits the close time of the ledger including the
// transaction. A zero MaxTime means no upper bound.
type TimeBounds struct {
	MinTime uint64 `json:"minTime,string"`
	MaxTime uint64 `json:"maxTime,string"`
}

// DecoratedSignature pairs a signature with the last four bytes of the
// signing key.
type DecoratedSignature struct {
	Hint      []byte `json:"hint" validate:"len=4"`
	Signature []byte `json:"signature" validate:"max=64"`
}

// FeeBumpTransaction pays a higher fee for an inner transaction.
type FeeBumpTransaction struct {
	FeeSource  string               `json:"feeSource" validate:"required,accountid"`
	Fee        int64                `json:"fee,string"`
	Inner      Transaction          `json:"inner"`
	Signatures []DecoratedSignature `json:"signatures,omitempty" validate:"max=20,dive"`
}

func (Transaction) isEnvelope()        {}
func (FeeBumpTransaction) isEnvelope() {}

var ErrInvalidEnvelope = errors.New("invalid envelope")

type envelopeJSON struct {
	Tx      *Transaction        `json:"tx,omitempty"`
	FeeBump *FeeBumpTransaction `json:"feeBump,omitempty"`
}

// ParseEnvelopeJSON reads {"tx": {...}} or {"feeBump": {...}}.
func ParseEnvelopeJSON(data []byte) (Envelope, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var raw envelopeJSON
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}

	switch {
	case raw.Tx != nil && raw.FeeBump != nil:
		return nil, fmt.Errorf("%w: both tx and feeBump set", ErrInvalidEnvelope)
	case raw.Tx != nil:
		raw.Tx.normalize()
		return *raw.Tx, nil
	case raw.FeeBump != nil:
		raw.FeeBump.Inner.normalize()
		return *raw.FeeBump, nil
	}
	return nil, fmt.Errorf("%w: neither tx nor feeBump set", ErrInvalidEnvelope)
}

// normalize replaces an omitted memo with NoMemo so a parsed transaction
// compares equal to its decoded txrep form.
func (tx *Transaction) normalize() {
	if tx.Memo.Type == "" {
		tx.Memo = NoMemo()
	}
}

// MarshalEnvelopeJSON is the inverse of ParseEnvelopeJSON.
func MarshalEnvelopeJSON(env Envelope) ([]byte, error) {
	switch e := env.(type) {
	case Transaction:
		return json.Marshal(envelopeJSON{Tx: &e})
	case *Transaction:
		return json.Marshal(envelopeJSON{Tx: e})
	case FeeBumpTransaction:
		return json.Marshal(envelopeJSON{FeeBump: &e})
	case *FeeBumpTransaction:
		return json.Marshal(envelopeJSON{FeeBump: e})
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidEnvelope, env)
}
