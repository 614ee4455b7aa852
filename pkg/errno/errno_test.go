package errno

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	errRegistered := errors.New("registered kind")
	Register(errRegistered, ErrLengthMismatch)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"nil", nil, OK.Code, OK.Message},
		{"errno value", ErrBind, ErrBind.Code, ErrBind.Message},
		{"errno pointer", &ErrInvalidEnvelope, ErrInvalidEnvelope.Code, ErrInvalidEnvelope.Message},
		{"wrapped errno", fmt.Errorf("handler: %w", ErrValidation), ErrValidation.Code, ErrValidation.Message},
		{"custom message", ErrBind.WithMessage("body is empty"), ErrBind.Code, "body is empty"},
		{"registered", fmt.Errorf("line 3: %w", errRegistered), ErrLengthMismatch.Code, "line 3: registered kind"},
		{"unknown", errors.New("boom"), InternalServerError.Code, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := Decode(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
