package txrep

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SunceWallet/txrep/pkg/ledger"
	"github.com/SunceWallet/txrep/pkg/numeric"
	"github.com/SunceWallet/txrep/pkg/strkey"
)

// encoder writes one `key: value` line per field.
type encoder struct {
	lines    []string
	annotate bool
	err      *Error
}

func (e *encoder) emit(key, value string) {
	if e.err != nil {
		return
	}
	e.lines = append(e.lines, key+": "+value)
}

func (e *encoder) emitAnnotated(key, value, note string) {
	if e.annotate && note != "" {
		value += " (" + note + ")"
	}
	e.emit(key, value)
}

func (e *encoder) Fail(key string, kind error, detail string) {
	if e.err == nil {
		e.err = newError(kind, key, detail, nil)
	}
}

func (e *encoder) fail(key string, kind error, cause error) {
	if e.err == nil {
		e.err = newError(kind, key, "", cause)
	}
}

func (e *encoder) Failed() bool {
	return e.err != nil
}

func (e *encoder) Account(key string, v *string) {
	if !strkey.IsValid(strkey.VersionAccountID, *v) {
		e.Fail(key, ErrInvalidEncoding, fmt.Sprintf("%q is not an account id", *v))
		return
	}
	e.emit(key, *v)
}

func (e *encoder) Text(key string, v *string, maxBytes int) {
	if !utf8.ValidString(*v) {
		e.Fail(key, ErrInvalidEncoding, "text is not valid UTF-8")
		return
	}
	if len(*v) > maxBytes {
		e.Fail(key, ErrInvalidEncoding, fmt.Sprintf("text is %d bytes, limit %d", len(*v), maxBytes))
		return
	}
	e.emit(key, quote(*v))
}

func (e *encoder) AssetCode(key string, v *string) {
	if !ledger.IsValidAssetCode(*v) {
		e.Fail(key, ErrInvalidEncoding, fmt.Sprintf("%q is not an asset code", *v))
		return
	}
	e.emit(key, *v)
}

func (e *encoder) Uint32(key string, v *uint32) {
	e.emit(key, strconv.FormatUint(uint64(*v), 10))
}

func (e *encoder) Uint64(key string, v *uint64) {
	e.emit(key, strconv.FormatUint(*v, 10))
}

func (e *encoder) Int64(key string, v *int64) {
	e.emit(key, strconv.FormatInt(*v, 10))
}

func (e *encoder) Timestamp(key string, v *uint64) {
	var note string
	if *v != 0 && *v <= maxAnnotatedUnix {
		note = time.Unix(int64(*v), 0).UTC().Format(time.UnixDate)
	}
	e.emitAnnotated(key, strconv.FormatUint(*v, 10), note)
}

func (e *encoder) Amount(key string, v *string) {
	stroops, err := numeric.ToStroops(*v)
	if err != nil {
		e.fail(key, ErrInvalidNumeric, err)
		return
	}
	human, _ := numeric.FromStroops(stroops)
	e.emitAnnotated(key, strconv.FormatInt(stroops, 10), human+"e7")
}

func (e *encoder) Asset(key string, v *ledger.Asset) {
	if !v.IsNative() {
		if _, err := ledger.ParseAsset(v.String()); err != nil {
			e.fail(key, ErrInvalidEncoding, err)
			return
		}
	}
	e.emit(key, v.String())
}

func (e *encoder) Price(key string, v *ledger.Price) {
	if v.N < 0 || v.D <= 0 {
		e.Fail(key, ErrInvalidNumeric, fmt.Sprintf("price %d/%d needs n >= 0 and d > 0", v.N, v.D))
		return
	}
	e.emit(key+".n", strconv.FormatInt(int64(v.N), 10))
	e.emit(key+".d", strconv.FormatInt(int64(v.D), 10))
}

func (e *encoder) Opaque(key string, v *[]byte, minBytes, maxBytes int) {
	if len(*v) < minBytes || len(*v) > maxBytes {
		e.Fail(key, ErrInvalidEncoding, sizeDetail(len(*v), minBytes, maxBytes))
		return
	}
	e.emit(key, hex.EncodeToString(*v))
}

func (e *encoder) SignerKey(key string, v *ledger.Signer) {
	s, err := v.Key()
	if err != nil {
		e.fail(key, ErrInvalidEncoding, err)
		return
	}
	e.emit(key, s)
}

func (e *encoder) Enum(key, prefix string, v *string, unknown error) {
	if *v == "" {
		e.Fail(key, unknown, "no variant set")
		return
	}
	e.emit(key, prefix+UpperSnake(*v))
}

func (e *encoder) Present(key string, present bool) bool {
	e.emit(key+"._present", strconv.FormatBool(present))
	return present
}

func (e *encoder) Len(key string, n int) int {
	e.emit(key+".len", strconv.Itoa(n))
	return n
}

// quote renders s the way JSON.stringify does: no HTML escaping, and the
// line and paragraph separators U+2028/U+2029 are written raw.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for {
		i := strings.IndexFunc(s, isJSSeparator)
		if i < 0 {
			b.WriteString(escapeJSON(s))
			break
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(escapeJSON(s[:i]))
		b.WriteRune(r)
		s = s[i+size:]
	}
	b.WriteByte('"')
	return b.String()
}

func isJSSeparator(r rune) bool {
	return r == '\u2028' || r == '\u2029'
}

// escapeJSON returns the JSON string body of s, without the quotes.
func escapeJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	out := strings.TrimSuffix(buf.String(), "\n")
	return out[1 : len(out)-1]
}

func sizeDetail(got, minBytes, maxBytes int) string {
	if minBytes == maxBytes {
		return fmt.Sprintf("%d bytes, want %d", got, minBytes)
	}
	return fmt.Sprintf("%d bytes, want %d..%d", got, minBytes, maxBytes)
}

// maxAnnotatedUnix keeps annotations within the range time.Format handles.
const maxAnnotatedUnix = 253402300799 // 9999-12-31T23:59:59Z
