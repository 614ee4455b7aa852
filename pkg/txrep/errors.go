package txrep

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by the codec is an *Error whose Kind is
// one of these, so callers can branch with errors.Is.
var (
	ErrUnsupportedTransactionKind = errors.New("unsupported transaction kind")
	ErrUnknownOperationKind       = errors.New("unknown operation kind")
	ErrUnknownMemoType            = errors.New("unknown memo type")
	ErrMalformedLine              = errors.New("malformed line")
	ErrMissingField               = errors.New("missing field")
	ErrUnknownField               = errors.New("unknown field")
	ErrLengthMismatch             = errors.New("length mismatch")
	ErrInvalidNumeric             = errors.New("invalid numeric value")
	ErrInvalidEncoding            = errors.New("invalid encoding")
)

// Error locates a codec failure. Key is the txrep path involved, Line the
// 1-based input line when decoding.
type Error struct {
	Kind   error
	Key    string
	Line   int
	Detail string
	Err    error
}

func newError(kind error, key, detail string, cause error) *Error {
	return &Error{Kind: kind, Key: key, Detail: detail, Err: cause}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("txrep: ")
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Kind.Error())
	if e.Key != "" {
		fmt.Fprintf(&b, " %q", e.Key)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// IsSyntaxError reports failures to split the text into key/value lines.
func IsSyntaxError(err error) bool {
	return errors.Is(err, ErrMalformedLine)
}

// IsSchemaError reports text whose keys do not follow the field grammar.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrUnknownField) ||
		errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrUnknownOperationKind) ||
		errors.Is(err, ErrUnknownMemoType)
}

// IsValueError reports a well placed field holding a bad value.
func IsValueError(err error) bool {
	return errors.Is(err, ErrInvalidNumeric) ||
		errors.Is(err, ErrInvalidEncoding)
}

// KindName returns a short stable label for the kind of err, or "other".
func KindName(err error) string {
	for _, k := range []struct {
		kind error
		name string
	}{
		{ErrUnsupportedTransactionKind, "unsupported_transaction_kind"},
		{ErrUnknownOperationKind, "unknown_operation_kind"},
		{ErrUnknownMemoType, "unknown_memo_type"},
		{ErrMalformedLine, "malformed_line"},
		{ErrMissingField, "missing_field"},
		{ErrUnknownField, "unknown_field"},
		{ErrLengthMismatch, "length_mismatch"},
		{ErrInvalidNumeric, "invalid_numeric"},
		{ErrInvalidEncoding, "invalid_encoding"},
	} {
		if errors.Is(err, k.kind) {
			return k.name
		}
	}
	return "other"
}
