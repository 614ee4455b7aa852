package strkey

import (
	"encoding/hex"
	"strings"
	"testing"

	stellar "github.com/stellar/go/strkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialBytes() []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestEncode(t *testing.T) {
	key, err := hex.DecodeString("a8db21b0099fecac056829fe3b19131e1c71b077a227057a5928a45abbac1dfc")
	require.NoError(t, err)

	tests := []struct {
		name    string
		version VersionByte
		payload []byte
		want    string
	}{
		{"account from fixture", VersionAccountID, key, "GCUNWINQBGP6ZLAFNAU74OYZCMPBY4NQO6RCOBL2LEUKIWV3VQO7YOBF"},
		{"zero account", VersionAccountID, make([]byte, 32), "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF"},
		{"sequential account", VersionAccountID, sequentialBytes(), "GAAACAQDAQCQMBYIBEFAWDANBYHRAEISCMKBKFQXDAMRUGY4DUPB7JZX"},
		{"pre-auth tx", VersionPreAuthTx, sequentialBytes(), "TAAACAQDAQCQMBYIBEFAWDANBYHRAEISCMKBKFQXDAMRUGY4DUPB6ULG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.version, tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			payload, err := Decode(tt.version, got)
			require.NoError(t, err)
			assert.Equal(t, tt.payload, payload)
		})
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	_, err := Encode(VersionAccountID, []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Encode(VersionByte(1), make([]byte, 32))
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestDecodeAny(t *testing.T) {
	version, payload, err := DecodeAny("XD777777777777777777777777777777777777777777777777777CUJ")
	require.NoError(t, err)
	assert.Equal(t, VersionSha256Hash, version)
	for _, b := range payload {
		assert.Equal(t, byte(0xff), b)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		version VersionByte
		address string
		wantErr error
	}{
		{"wrong version", VersionPreAuthTx, "GCUNWINQBGP6ZLAFNAU74OYZCMPBY4NQO6RCOBL2LEUKIWV3VQO7YOBF", ErrInvalidVersion},
		{"bad checksum", VersionAccountID, "GCUNWINQBGP6ZLAFNAU74OYZCMPBY4NQO6RCOBL2LEUKIWV3VQO7YOBG", ErrInvalidChecksum},
		{"too short", VersionAccountID, "GCUNWINQBGP6ZLAF", ErrInvalidLength},
		{"not base32", VersionAccountID, strings.ToLower("GCUNWINQBGP6ZLAFNAU74OYZCMPBY4NQO6RCOBL2LEUKIWV3VQO7YOBF"), ErrInvalidEncoding},
		{"muxed account", VersionAccountID, "MA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUAAAAAAAAAAAACJUQ", ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.version, tt.address)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.True(t, IsValid(VersionAccountID, "GAZFEVBSEGJJ63WPVVIWXLZLWN2JYZECECGT6GUNP4FJDVZVNXWQWMYI"))
	assert.False(t, IsValid(VersionAccountID, ""))
}

func TestDecodeRejectsUnsupportedVersion(t *testing.T) {
	contract, err := stellar.Encode(stellar.VersionByteContract, sequentialBytes())
	require.NoError(t, err)

	_, _, err = DecodeAny(contract)
	assert.ErrorIs(t, err, ErrInvalidVersion)
}
