package txrep

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SunceWallet/txrep/pkg/ledger"
)

// replaceLine swaps the first line starting with old for repl.
func replaceLine(t *testing.T, text, old, repl string) string {
	t.Helper()
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), old) {
			lines[i] = repl
			return strings.Join(lines, "\n")
		}
	}
	t.Fatalf("no line starting with %q", old)
	return ""
}

func dropLine(t *testing.T, text, prefix string) string {
	t.Helper()
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return strings.Join(append(lines[:i:i], lines[i+1:]...), "\n")
		}
	}
	t.Fatalf("no line starting with %q", prefix)
	return ""
}

func offerTxrep(t *testing.T) string {
	tx := createAccountTx()
	tx.Operations = []ledger.Operation{{Body: ledger.ManageSellOffer{
		Selling: ledger.NativeAsset(),
		Buying:  usd(),
		Amount:  "1",
		Price:   ledger.Price{N: 1, D: 2},
	}}}
	text, err := Encode(tx)
	require.NoError(t, err)
	return text
}

func TestDecodeErrors(t *testing.T) {
	const op0 = "tx.operations[0]."
	offer := offerTxrep(t)
	sellOp := op0 + "body.manageSellOfferOp."

	tests := []struct {
		name string
		text string
		kind error
		key  string
	}{
		{
			name: "operation count larger than blocks",
			text: replaceLine(t, createAccountTxrep, "tx.operations.len", "tx.operations.len: 2"),
			kind: ErrLengthMismatch,
			key:  "tx.operations.len",
		},
		{
			name: "operation count smaller than blocks",
			text: replaceLine(t, createAccountTxrep, "tx.operations.len", "tx.operations.len: 0"),
			kind: ErrLengthMismatch,
			key:  "tx.operations.len",
		},
		{
			name: "operation indices not starting at zero",
			text: strings.ReplaceAll(createAccountTxrep, "tx.operations[0]", "tx.operations[1]"),
			kind: ErrLengthMismatch,
			key:  "tx.operations.len",
		},
		{
			name: "signature count without entries",
			text: replaceLine(t, createAccountTxrep, "signatures.len", "signatures.len: 1"),
			kind: ErrLengthMismatch,
			key:  "signatures.len",
		},
		{
			name: "missing fee",
			text: dropLine(t, createAccountTxrep, "tx.fee:"),
			kind: ErrMissingField,
			key:  "tx.fee",
		},
		{
			name: "missing presence line",
			text: dropLine(t, createAccountTxrep, "tx.timeBounds._present"),
			kind: ErrMissingField,
			key:  "tx.timeBounds._present",
		},
		{
			name: "value behind a false presence line",
			text: replaceLine(t, createAccountTxrep, "tx.timeBounds._present", "tx.timeBounds._present: false"),
			kind: ErrUnknownField,
			key:  "tx.timeBounds.minTime",
		},
		{
			name: "stray key",
			text: createAccountTxrep + "\ntx.comment: 1",
			kind: ErrUnknownField,
			key:  "tx.comment",
		},
		{
			name: "presence is not a boolean",
			text: replaceLine(t, createAccountTxrep, "tx.timeBounds._present", "tx.timeBounds._present: yes"),
			kind: ErrInvalidEncoding,
			key:  "tx.timeBounds._present",
		},
		{
			name: "unknown operation tag",
			text: replaceLine(t, createAccountTxrep, op0+"body.type", op0+"body.type: INFLATION"),
			kind: ErrUnknownOperationKind,
			key:  op0 + "body.type",
		},
		{
			name: "operation tag not upper snake",
			text: replaceLine(t, createAccountTxrep, op0+"body.type", op0+"body.type: createAccount"),
			kind: ErrUnknownOperationKind,
			key:  op0 + "body.type",
		},
		{
			name: "unknown memo tag",
			text: replaceLine(t, createAccountTxrep, "tx.memo.type", "tx.memo.type: MEMO_IMAGE"),
			kind: ErrUnknownMemoType,
			key:  "tx.memo.type",
		},
		{
			name: "memo tag without prefix",
			text: replaceLine(t, createAccountTxrep, "tx.memo.type", "tx.memo.type: NONE"),
			kind: ErrUnknownMemoType,
			key:  "tx.memo.type",
		},
		{
			name: "fractional amount",
			text: replaceLine(t, createAccountTxrep, op0+"body.createAccountOp.startingBalance", op0+"body.createAccountOp.startingBalance: 12.34"),
			kind: ErrInvalidNumeric,
			key:  op0 + "body.createAccountOp.startingBalance",
		},
		{
			name: "negative amount",
			text: replaceLine(t, createAccountTxrep, op0+"body.createAccountOp.startingBalance", op0+"body.createAccountOp.startingBalance: -1"),
			kind: ErrInvalidNumeric,
			key:  op0 + "body.createAccountOp.startingBalance",
		},
		{
			name: "amount out of range",
			text: replaceLine(t, createAccountTxrep, op0+"body.createAccountOp.startingBalance", op0+"body.createAccountOp.startingBalance: 9223372036854775808"),
			kind: ErrInvalidNumeric,
			key:  op0 + "body.createAccountOp.startingBalance",
		},
		{
			name: "fee overflows uint32",
			text: replaceLine(t, createAccountTxrep, "tx.fee", "tx.fee: 4294967296"),
			kind: ErrInvalidNumeric,
			key:  "tx.fee",
		},
		{
			name: "sequence not a number",
			text: replaceLine(t, createAccountTxrep, "tx.seqNum", "tx.seqNum: 0x10"),
			kind: ErrInvalidNumeric,
			key:  "tx.seqNum",
		},
		{
			name: "unsupported extension",
			text: replaceLine(t, createAccountTxrep, "tx.ext.v", "tx.ext.v: 1"),
			kind: ErrInvalidNumeric,
			key:  "tx.ext.v",
		},
		{
			name: "bad account checksum",
			text: replaceLine(t, createAccountTxrep, "tx.sourceAccount", "tx.sourceAccount: GCUNWINQBGP6ZLAFNAU74OYZCMPBY4NQO6RCOBL2LEUKIWV3VQO7YOBG"),
			kind: ErrInvalidEncoding,
			key:  "tx.sourceAccount",
		},
		{
			name: "price numerator overflows int32",
			text: replaceLine(t, offer, sellOp+"price.n", sellOp+"price.n: 2147483648"),
			kind: ErrInvalidNumeric,
			key:  sellOp + "price.n",
		},
		{
			name: "zero price denominator",
			text: replaceLine(t, offer, sellOp+"price.d", sellOp+"price.d: 0"),
			kind: ErrInvalidNumeric,
			key:  sellOp + "price.d",
		},
		{
			name: "negative price numerator",
			text: replaceLine(t, offer, sellOp+"price.n", sellOp+"price.n: -1"),
			kind: ErrInvalidNumeric,
			key:  sellOp + "price.n",
		},
		{
			name: "asset without issuer",
			text: replaceLine(t, offer, sellOp+"buying", sellOp+"buying: USD"),
			kind: ErrInvalidEncoding,
			key:  sellOp + "buying",
		},
		{
			name: "unquoted memo text",
			text: replaceLine(t, createAccountTxrep, "tx.memo.type", "tx.memo.type: MEMO_TEXT\ntx.memo.text: hello"),
			kind: ErrInvalidEncoding,
			key:  "tx.memo.text",
		},
		{
			name: "memo text too long",
			text: replaceLine(t, createAccountTxrep, "tx.memo.type", "tx.memo.type: MEMO_TEXT\ntx.memo.text: \"01234567890123456789012345678\""),
			kind: ErrInvalidEncoding,
			key:  "tx.memo.text",
		},
		{
			name: "lone high surrogate in text",
			text: replaceLine(t, createAccountTxrep, "tx.memo.type", "tx.memo.type: MEMO_TEXT\ntx.memo.text: \"\\ud800\""),
			kind: ErrInvalidEncoding,
			key:  "tx.memo.text",
		},
		{
			name: "lone low surrogate in text",
			text: replaceLine(t, createAccountTxrep, "tx.memo.type", "tx.memo.type: MEMO_TEXT\ntx.memo.text: \"a\\udc00b\""),
			kind: ErrInvalidEncoding,
			key:  "tx.memo.text",
		},
		{
			name: "text not utf-8",
			text: replaceLine(t, createAccountTxrep, "tx.memo.type", "tx.memo.type: MEMO_TEXT\ntx.memo.text: \"\xff\""),
			kind: ErrInvalidEncoding,
			key:  "tx.memo.text",
		},
		{
			name: "short memo hash",
			text: replaceLine(t, createAccountTxrep, "tx.memo.type", "tx.memo.type: MEMO_HASH\ntx.memo.hash: abcd"),
			kind: ErrInvalidEncoding,
			key:  "tx.memo.hash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := Decode(tt.text)
			require.Error(t, err)
			assert.Nil(t, tx)
			assert.ErrorIs(t, err, tt.kind)

			var txErr *Error
			require.True(t, errors.As(err, &txErr))
			assert.Equal(t, tt.key, txErr.Key)
		})
	}
}

func TestDecodeBadHex(t *testing.T) {
	tx, err := Decode(paymentTxrep)
	require.NoError(t, err)
	text, err := Encode(tx)
	require.NoError(t, err)

	for _, value := range []string{"4aa07ed", "4aa07exx", "4AA07ED0FF"} {
		_, err := Decode(replaceLine(t, text, "signatures[0].hint", "signatures[0].hint: "+value))
		assert.ErrorIs(t, err, ErrInvalidEncoding, value)
		assert.True(t, IsValueError(err))
	}
}

func TestDecodeErrorCarriesLine(t *testing.T) {
	text := replaceLine(t, createAccountTxrep, "tx.seqNum", "tx.seqNum: many")

	_, err := Decode(text)
	var txErr *Error
	require.True(t, errors.As(err, &txErr))
	assert.Equal(t, 3, txErr.Line)
	assert.Contains(t, err.Error(), `line 3: invalid numeric value "tx.seqNum"`)
}

func TestDecodeToleratesLayout(t *testing.T) {
	var b strings.Builder
	b.WriteString("\n\n")
	for _, line := range strings.Split(createAccountTxrep, "\n") {
		b.WriteString("\t  " + line + "   (note)\n\n")
	}

	tx, err := Decode(b.String())
	require.NoError(t, err)
	assert.Equal(t, createAccountTx(), *tx)
}

func TestErrorGroups(t *testing.T) {
	_, err := Decode("tx.fee 100")
	assert.True(t, IsSyntaxError(err))
	assert.Equal(t, "malformed_line", KindName(err))

	_, err = Decode(replaceLine(t, createAccountTxrep, "tx.operations.len", "tx.operations.len: 3"))
	assert.True(t, IsSchemaError(err))
	assert.False(t, IsValueError(err))
	assert.Equal(t, "length_mismatch", KindName(err))

	assert.Equal(t, "other", KindName(errors.New("boom")))
}

func TestDecodeEscapedSurrogatePair(t *testing.T) {
	text := replaceLine(t, createAccountTxrep, "tx.memo.type", "tx.memo.type: MEMO_TEXT\ntx.memo.text: \"smile \\ud83d\\ude00\"")

	tx, err := Decode(text)
	require.NoError(t, err)
	assert.Equal(t, ledger.NewTextMemo("smile \U0001F600"), tx.Memo)
}
