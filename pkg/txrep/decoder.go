package txrep

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/SunceWallet/txrep/pkg/ledger"
	"github.com/SunceWallet/txrep/pkg/numeric"
	"github.com/SunceWallet/txrep/pkg/strkey"
)

// decoder looks every key the grammar asks for up in a tokenized document.
type decoder struct {
	doc      *document
	consumed map[string]bool
	err      *Error
}

func newDecoder(doc *document) *decoder {
	return &decoder{doc: doc, consumed: make(map[string]bool, len(doc.keys))}
}

func (d *decoder) Fail(key string, kind error, detail string) {
	if d.err == nil {
		d.err = newError(kind, key, detail, nil)
		d.err.Line = d.doc.values[key].line
	}
}

func (d *decoder) fail(key string, kind error, cause error) {
	if d.err == nil {
		d.err = newError(kind, key, "", cause)
		d.err.Line = d.doc.values[key].line
	}
}

func (d *decoder) Failed() bool {
	return d.err != nil
}

// value returns the raw value of a required key and marks it consumed.
func (d *decoder) value(key string) (string, bool) {
	if d.err != nil {
		return "", false
	}
	ent, ok := d.doc.values[key]
	if !ok {
		d.Fail(key, ErrMissingField, "")
		return "", false
	}
	d.consumed[key] = true
	return ent.value, true
}

// token returns the significant part of a value, annotation stripped.
func (d *decoder) token(key string) (string, bool) {
	v, ok := d.value(key)
	if !ok {
		return "", false
	}
	return firstToken(v), true
}

func (d *decoder) Account(key string, v *string) {
	tok, ok := d.token(key)
	if !ok {
		return
	}
	if _, err := strkey.Decode(strkey.VersionAccountID, tok); err != nil {
		d.fail(key, ErrInvalidEncoding, err)
		return
	}
	*v = tok
}

func (d *decoder) Text(key string, v *string, maxBytes int) {
	raw, ok := d.value(key)
	if !ok {
		return
	}
	lit, ok := quotedToken(raw)
	if !ok {
		d.Fail(key, ErrInvalidEncoding, "expected a double-quoted string")
		return
	}
	// json.Unmarshal would substitute U+FFFD for both of these
	if !utf8.ValidString(lit) || !pairedSurrogates(lit) {
		d.Fail(key, ErrInvalidEncoding, "string is not valid UTF-8 or UTF-16")
		return
	}
	var s string
	if err := json.Unmarshal([]byte(lit), &s); err != nil {
		d.fail(key, ErrInvalidEncoding, err)
		return
	}
	if len(s) > maxBytes {
		d.Fail(key, ErrInvalidEncoding, fmt.Sprintf("text is %d bytes, limit %d", len(s), maxBytes))
		return
	}
	*v = s
}

func (d *decoder) AssetCode(key string, v *string) {
	tok, ok := d.token(key)
	if !ok {
		return
	}
	if !ledger.IsValidAssetCode(tok) {
		d.Fail(key, ErrInvalidEncoding, fmt.Sprintf("%q is not an asset code", tok))
		return
	}
	*v = tok
}

func (d *decoder) parseUint(key string, bits int) (uint64, bool) {
	tok, ok := d.token(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(tok, 10, bits)
	if err != nil {
		d.fail(key, ErrInvalidNumeric, err)
		return 0, false
	}
	return n, true
}

func (d *decoder) parseInt(key string, bits int) (int64, bool) {
	tok, ok := d.token(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(tok, 10, bits)
	if err != nil {
		d.fail(key, ErrInvalidNumeric, err)
		return 0, false
	}
	return n, true
}

func (d *decoder) Uint32(key string, v *uint32) {
	if n, ok := d.parseUint(key, 32); ok {
		*v = uint32(n)
	}
}

func (d *decoder) Uint64(key string, v *uint64) {
	if n, ok := d.parseUint(key, 64); ok {
		*v = n
	}
}

func (d *decoder) Int64(key string, v *int64) {
	if n, ok := d.parseInt(key, 64); ok {
		*v = n
	}
}

func (d *decoder) Timestamp(key string, v *uint64) {
	d.Uint64(key, v)
}

func (d *decoder) Amount(key string, v *string) {
	tok, ok := d.token(key)
	if !ok {
		return
	}
	stroops, err := numeric.ParseStroops(tok)
	if err != nil {
		d.fail(key, ErrInvalidNumeric, err)
		return
	}
	human, err := numeric.FromStroops(stroops)
	if err != nil {
		d.fail(key, ErrInvalidNumeric, err)
		return
	}
	*v = human
}

func (d *decoder) Asset(key string, v *ledger.Asset) {
	tok, ok := d.token(key)
	if !ok {
		return
	}
	asset, err := ledger.ParseAsset(tok)
	if err != nil {
		d.fail(key, ErrInvalidEncoding, err)
		return
	}
	*v = asset
}

func (d *decoder) Price(key string, v *ledger.Price) {
	n, ok := d.parseInt(key+".n", 32)
	if !ok {
		return
	}
	den, ok := d.parseInt(key+".d", 32)
	if !ok {
		return
	}
	if n < 0 {
		d.Fail(key+".n", ErrInvalidNumeric, "price numerator is negative")
		return
	}
	if den <= 0 {
		d.Fail(key+".d", ErrInvalidNumeric, "price denominator must be positive")
		return
	}
	*v = ledger.Price{N: int32(n), D: int32(den)}
}

func (d *decoder) Opaque(key string, v *[]byte, minBytes, maxBytes int) {
	tok, ok := d.token(key)
	if !ok {
		return
	}
	b, err := hex.DecodeString(tok)
	if err != nil {
		d.fail(key, ErrInvalidEncoding, err)
		return
	}
	if len(b) < minBytes || len(b) > maxBytes {
		d.Fail(key, ErrInvalidEncoding, sizeDetail(len(b), minBytes, maxBytes))
		return
	}
	*v = b
}

func (d *decoder) SignerKey(key string, v *ledger.Signer) {
	tok, ok := d.token(key)
	if !ok {
		return
	}
	signer, err := ledger.SignerFromKey(tok, v.Weight)
	if err != nil {
		d.fail(key, ErrInvalidEncoding, err)
		return
	}
	*v = signer
}

// Enum maps a tag back to its camelCase variant name. Only the exact
// UPPER_SNAKE form of a name is accepted.
func (d *decoder) Enum(key, prefix string, v *string, unknown error) {
	tok, ok := d.token(key)
	if !ok {
		return
	}
	rest, ok := strings.CutPrefix(tok, prefix)
	name := CamelCase(rest)
	if !ok || name == "" || UpperSnake(name) != rest {
		d.Fail(key, unknown, tok)
		return
	}
	*v = name
}

func (d *decoder) Present(key string, _ bool) bool {
	key += "._present"
	tok, ok := d.token(key)
	if !ok {
		return false
	}
	switch tok {
	case "true":
		return true
	case "false":
		return false
	}
	d.Fail(key, ErrInvalidEncoding, fmt.Sprintf("%q is not a boolean", tok))
	return false
}

// Len reads `key.len` and checks it against the element indices actually
// present: exactly 0..n-1.
func (d *decoder) Len(key string, _ int) int {
	lenKey := key + ".len"
	n, ok := d.parseUint(lenKey, 31)
	if !ok {
		return 0
	}

	found := d.doc.indices(key)
	if len(found) != int(n) {
		d.Fail(lenKey, ErrLengthMismatch, fmt.Sprintf("declared %d, found %d indexed entries", n, len(found)))
		return 0
	}
	for i := range found {
		if i >= int(n) {
			d.Fail(lenKey, ErrLengthMismatch, fmt.Sprintf("index %d out of range for length %d", i, n))
			return 0
		}
	}
	return int(n)
}

// checkConsumed rejects keys the grammar never asked for.
func (d *decoder) checkConsumed() {
	if d.err != nil {
		return
	}
	for _, key := range d.doc.keys {
		if !d.consumed[key] {
			d.Fail(key, ErrUnknownField, "not part of the transaction schema")
			return
		}
	}
}

// pairedSurrogates reports whether every \uXXXX surrogate escape in a
// quoted literal is a high surrogate directly followed by a low one.
func pairedSurrogates(lit string) bool {
	for i := 0; i < len(lit); i++ {
		if lit[i] != '\\' {
			continue
		}
		r, ok := unicodeEscape(lit[i:])
		if !ok {
			i++
			continue
		}
		i += 5
		if !utf16.IsSurrogate(r) {
			continue
		}
		low, ok := unicodeEscape(lit[i+1:])
		if !ok || utf16.DecodeRune(r, low) == utf8.RuneError {
			return false
		}
		i += 6
	}
	return true
}

// unicodeEscape parses a leading \uXXXX escape.
func unicodeEscape(s string) (rune, bool) {
	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		return 0, false
	}
	n, err := strconv.ParseUint(s[2:6], 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}
