// Package strkey narrows github.com/stellar/go/strkey to the address kinds a
// transaction references: accounts, pre-authorized transactions and sha-256
// hashes, each carrying a 32-byte payload.
package strkey

import (
	"encoding/base32"
	"errors"
	"fmt"

	stellar "github.com/stellar/go/strkey"
)

type VersionByte = stellar.VersionByte

const (
	VersionAccountID  VersionByte = stellar.VersionByteAccountID // G
	VersionSeed       VersionByte = stellar.VersionByteSeed      // S
	VersionPreAuthTx  VersionByte = stellar.VersionByteHashTx    // T
	VersionSha256Hash VersionByte = stellar.VersionByteHashX     // X
)

const (
	payloadLen = 32
	// 1 version byte + payload + 2 checksum bytes, base32 without padding
	addressLen = (1 + payloadLen + 2) * 8 / 5
)

var (
	ErrInvalidVersion  = errors.New("invalid version byte")
	ErrInvalidLength   = errors.New("invalid address length")
	ErrInvalidChecksum = errors.New("invalid checksum")
	ErrInvalidEncoding = errors.New("invalid base32 encoding")
)

// Encode renders payload under the given version.
func Encode(version VersionByte, payload []byte) (string, error) {
	if err := checkVersion(version); err != nil {
		return "", err
	}
	if len(payload) != payloadLen {
		return "", fmt.Errorf("%w: payload is %d bytes, want %d", ErrInvalidLength, len(payload), payloadLen)
	}
	return stellar.Encode(version, payload)
}

// MustEncode is Encode for payloads known to be well formed.
func MustEncode(version VersionByte, payload []byte) string {
	s, err := Encode(version, payload)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode checks that address carries the expected version and returns the
// payload.
func Decode(expected VersionByte, address string) ([]byte, error) {
	version, payload, err := DecodeAny(address)
	if err != nil {
		return nil, err
	}
	if version != expected {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidVersion, version, expected)
	}
	return payload, nil
}

// DecodeAny returns the version and payload of any supported address.
func DecodeAny(address string) (VersionByte, []byte, error) {
	if len(address) != addressLen {
		return 0, nil, fmt.Errorf("%w: %d characters", ErrInvalidLength, len(address))
	}

	version, payload, err := stellar.DecodeAny(address)
	if err != nil {
		return 0, nil, classify(err)
	}
	if err := checkVersion(version); err != nil {
		return 0, nil, err
	}

	out := make([]byte, payloadLen)
	copy(out, payload)
	return version, out, nil
}

// IsValid reports whether address decodes under the given version.
func IsValid(version VersionByte, address string) bool {
	_, err := Decode(version, address)
	return err == nil
}

func checkVersion(version VersionByte) error {
	switch version {
	case VersionAccountID, VersionSeed, VersionPreAuthTx, VersionSha256Hash:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrInvalidVersion, version)
}

// classify maps upstream failures onto the package sentinels. With the
// length fixed there are no leftover bits, so whatever is neither a version
// nor an alphabet error is the checksum.
func classify(err error) error {
	var corrupt base32.CorruptInputError
	switch {
	case errors.Is(err, stellar.ErrInvalidVersionByte):
		return fmt.Errorf("%w: %v", ErrInvalidVersion, err)
	case errors.As(err, &corrupt):
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidChecksum, err)
}
