package txrep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SunceWallet/txrep/pkg/ledger"
)

func TestUpperSnake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "payment", "PAYMENT"},
		{"two words", "createAccount", "CREATE_ACCOUNT"},
		{"four words", "pathPaymentStrictReceive", "PATH_PAYMENT_STRICT_RECEIVE"},
		{"short word", "id", "ID"},
		{"trailing digit", "ed25519", "ED_25519"},
		{"digit then word", "sha256Hash", "SHA_256_HASH"},
		{"acronym run", "preAuthTX", "PRE_AUTH_TX"},
		{"acronym before word", "HTTPServer", "HTTP_SERVER"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UpperSnake(tt.in))
		})
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PAYMENT", "payment"},
		{"CREATE_PASSIVE_SELL_OFFER", "createPassiveSellOffer"},
		{"SHA_256_HASH", "sha256Hash"},
		{"NONE", "none"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelCase(tt.in))
		})
	}
}

// Every variant name must survive the trip through its tag, otherwise the
// decoder could not find it again.
func TestCasingRoundTripsVariantNames(t *testing.T) {
	for _, op := range ledger.OperationTypes {
		assert.Equal(t, string(op), CamelCase(UpperSnake(string(op))), op)
	}
	for _, memo := range ledger.MemoTypes {
		assert.Equal(t, string(memo), CamelCase(UpperSnake(string(memo))), memo)
	}
}
