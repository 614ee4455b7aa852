package errno

import (
	"errors"
	"sync"
)

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// WithMessage returns a copy of e carrying a more specific message
func (e Errno) WithMessage(msg string) Errno {
	e.Message = msg
	return e
}

type mapping struct {
	target error
	errno  Errno
}

var (
	mu       sync.RWMutex
	mappings []mapping
)

// Register maps every error matching target (errors.Is) to e. The message
// returned by Decode is the matched error's own text.
func Register(target error, e Errno) {
	mu.Lock()
	defer mu.Unlock()
	mappings = append(mappings, mapping{target: target, errno: e})
}

// Decode tries to convert an error to Errno
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Code, typed.Message
	}
	var ptr *Errno
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Code, ptr.Message
	}

	mu.RLock()
	defer mu.RUnlock()
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return m.errno.Code, err.Error()
		}
	}
	return InternalServerError.Code, err.Error()
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error"}
	ErrBind             = Errno{Code: 10002, Message: "Error occurred while binding the request body to the struct"}
	ErrBodyTooLarge     = Errno{Code: 10003, Message: "Request body too large"}
)

// Codec Errors (30000+)
var (
	ErrInvalidEnvelope  = Errno{Code: 30001, Message: "Invalid transaction envelope"}
	ErrValidation       = Errno{Code: 30002, Message: "Transaction validation failed"}
	ErrUnsupportedKind  = Errno{Code: 30101, Message: "Unsupported transaction kind"}
	ErrUnknownOperation = Errno{Code: 30102, Message: "Unknown operation kind"}
	ErrUnknownMemoType  = Errno{Code: 30103, Message: "Unknown memo type"}
	ErrMalformedLine    = Errno{Code: 30201, Message: "Malformed txrep line"}
	ErrMissingField     = Errno{Code: 30202, Message: "Missing txrep field"}
	ErrUnknownField     = Errno{Code: 30203, Message: "Unknown txrep field"}
	ErrLengthMismatch   = Errno{Code: 30204, Message: "Sequence length mismatch"}
	ErrInvalidNumeric   = Errno{Code: 30301, Message: "Invalid numeric value"}
	ErrInvalidEncoding  = Errno{Code: 30302, Message: "Invalid encoding"}
)
