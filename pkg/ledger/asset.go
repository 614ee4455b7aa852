package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SunceWallet/txrep/pkg/strkey"
)

// NativeCode is the literal used for the native asset.
const NativeCode = "XLM"

var ErrInvalidAsset = errors.New("invalid asset")

// Asset is either the native asset (zero value) or an issued asset
// identified by code and issuer account.
type Asset struct {
	Code   string `validate:"omitempty,min=1,max=12,alphanum"`
	Issuer string `validate:"required_with=Code,omitempty,accountid"`
}

// NativeAsset returns the native asset.
func NativeAsset() Asset {
	return Asset{}
}

// CreditAsset returns the asset code issued by issuer.
func CreditAsset(code, issuer string) Asset {
	return Asset{Code: code, Issuer: issuer}
}

func (a Asset) IsNative() bool {
	return a.Code == "" && a.Issuer == ""
}

// String renders the asset as `XLM` or `CODE:ISSUER`.
func (a Asset) String() string {
	if a.IsNative() {
		return NativeCode
	}
	return a.Code + ":" + a.Issuer
}

// ParseAsset is the inverse of String. "native" is accepted as an alias of
// the native literal.
func ParseAsset(s string) (Asset, error) {
	if s == NativeCode || s == "native" {
		return NativeAsset(), nil
	}

	code, issuer, ok := strings.Cut(s, ":")
	if !ok {
		return Asset{}, fmt.Errorf("%w: %q is neither %s nor CODE:ISSUER", ErrInvalidAsset, s, NativeCode)
	}
	if !IsValidAssetCode(code) {
		return Asset{}, fmt.Errorf("%w: bad code %q", ErrInvalidAsset, code)
	}
	if !strkey.IsValid(strkey.VersionAccountID, issuer) {
		return Asset{}, fmt.Errorf("%w: bad issuer %q", ErrInvalidAsset, issuer)
	}
	return CreditAsset(code, issuer), nil
}

func (a Asset) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Asset) UnmarshalText(text []byte) error {
	parsed, err := ParseAsset(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// IsValidAssetCode reports whether code is 1 to 12 ASCII letters or digits.
func IsValidAssetCode(code string) bool {
	if len(code) == 0 || len(code) > 12 {
		return false
	}
	for _, c := range code {
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
