package txrep

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UpperSnake turns a camelCase variant name into its txrep tag:
// pathPaymentStrictReceive -> PATH_PAYMENT_STRICT_RECEIVE. Words break at
// lower-to-upper changes, at digit/letter changes, and before the last
// capital of an acronym run (HTTPServer -> HTTP_SERVER).
func UpperSnake(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if i > 0 && wordBoundary(runes, i) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func wordBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsDigit(prev) != unicode.IsDigit(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		return true
	}
	return false
}

// CamelCase is the inverse of UpperSnake for names without acronym runs:
// PATH_PAYMENT_STRICT_RECEIVE -> pathPaymentStrictReceive.
func CamelCase(tag string) string {
	var b strings.Builder
	b.Grow(len(tag))
	first := true
	for _, word := range strings.Split(strings.ToLower(tag), "_") {
		if word == "" {
			continue
		}
		if first {
			b.WriteString(word)
			first = false
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}
	return b.String()
}
