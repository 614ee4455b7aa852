package txrep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	doc, err := parseDocument("\n  tx.fee: 100  \n\n\ttx.memo.text: \"a: b\" (note)\nsignatures.len:0\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"tx.fee", "tx.memo.text", "signatures.len"}, doc.keys)
	assert.Equal(t, entry{value: "100", line: 2}, doc.values["tx.fee"])
	assert.Equal(t, entry{value: `"a: b" (note)`, line: 4}, doc.values["tx.memo.text"])
	assert.Equal(t, entry{value: "0", line: 5}, doc.values["signatures.len"])
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantKey string
		line    int
	}{
		{"no colon", "tx.fee 100", "", 1},
		{"empty key", "tx.fee: 1\n: 100", "", 2},
		{"space in key", "tx fee: 100", "", 1},
		{"duplicate key", "tx.fee: 100\ntx.seqNum: 1\ntx.fee: 200", "tx.fee", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDocument(tt.text)
			require.Error(t, err)
			assert.True(t, IsSyntaxError(err))

			var txErr *Error
			require.True(t, errors.As(err, &txErr))
			assert.Equal(t, tt.wantKey, txErr.Key)
			assert.Equal(t, tt.line, txErr.Line)
		})
	}
}

func TestDocumentIndices(t *testing.T) {
	doc, err := parseDocument(`
tx.operations.len: 2
tx.operations[0].body.type: PAYMENT
tx.operations[0].body.paymentOp.amount: 1
tx.operations[3].body.type: PAYMENT
tx.operations[1].body.pathPaymentStrictSendOp.path[4]: XLM
tx.operationsX[7]: 1
`)
	require.NoError(t, err)

	assert.Equal(t, map[int]bool{0: true, 1: true, 3: true}, doc.indices("tx.operations"))
	assert.Equal(t, map[int]bool{4: true}, doc.indices("tx.operations[1].body.pathPaymentStrictSendOp.path"))
	assert.Empty(t, doc.indices("signatures"))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, "123400000", firstToken("123400000 (12.34e7)"))
	assert.Equal(t, "XLM", firstToken("XLM"))
	assert.Equal(t, "", firstToken(""))

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{`"plain"`, `"plain"`, true},
		{`"with \"escapes\"" (and a note)`, `"with \"escapes\""`, true},
		{`"trailing backslash\\" x`, `"trailing backslash\\"`, true},
		{`"unterminated`, "", false},
		{`bare`, "", false},
	}
	for _, tt := range tests {
		got, ok := quotedToken(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
