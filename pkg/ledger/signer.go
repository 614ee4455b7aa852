package ledger

import (
	"errors"
	"fmt"

	"github.com/SunceWallet/txrep/pkg/strkey"
)

var ErrInvalidSigner = errors.New("invalid signer")

// Signer is a weighted signing key. Exactly one of the key fields is set.
type Signer struct {
	Ed25519PublicKey string `json:"ed25519PublicKey,omitempty" validate:"omitempty,accountid"`
	PreAuthTx        []byte `json:"preAuthTx,omitempty" validate:"omitempty,len=32"`
	Sha256Hash       []byte `json:"sha256Hash,omitempty" validate:"omitempty,len=32"`
	Weight           uint32 `json:"weight" validate:"lte=255"`
}

// Key renders the signer key as an address string.
func (s Signer) Key() (string, error) {
	set := 0
	var key string
	var err error
	if s.Ed25519PublicKey != "" {
		set++
		key = s.Ed25519PublicKey
	}
	if s.PreAuthTx != nil {
		set++
		key, err = strkey.Encode(strkey.VersionPreAuthTx, s.PreAuthTx)
	}
	if s.Sha256Hash != nil {
		set++
		key, err = strkey.Encode(strkey.VersionSha256Hash, s.Sha256Hash)
	}
	if set != 1 {
		return "", fmt.Errorf("%w: %d key kinds set", ErrInvalidSigner, set)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSigner, err)
	}
	return key, nil
}

// SignerFromKey selects the key kind from the address version.
func SignerFromKey(key string, weight uint32) (Signer, error) {
	version, payload, err := strkey.DecodeAny(key)
	if err != nil {
		return Signer{}, fmt.Errorf("%w: %v", ErrInvalidSigner, err)
	}

	switch version {
	case strkey.VersionAccountID:
		return Signer{Ed25519PublicKey: key, Weight: weight}, nil
	case strkey.VersionPreAuthTx:
		return Signer{PreAuthTx: payload, Weight: weight}, nil
	case strkey.VersionSha256Hash:
		return Signer{Sha256Hash: payload, Weight: weight}, nil
	}
	return Signer{}, fmt.Errorf("%w: unsupported key version %d", ErrInvalidSigner, version)
}
