package txrep

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type entry struct {
	value string
	line  int
}

// document is the tokenized form of a txrep text: every key with its raw
// value, in input order.
type document struct {
	values map[string]entry
	keys   []string
}

func parseDocument(text string) (*document, error) {
	doc := &document{values: make(map[string]entry)}

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" || strings.IndexFunc(key, unicode.IsSpace) >= 0 {
			return nil, &Error{Kind: ErrMalformedLine, Line: lineNo, Detail: fmt.Sprintf("expected `key: value`, got %q", line)}
		}
		if prev, dup := doc.values[key]; dup {
			return nil, &Error{Kind: ErrMalformedLine, Key: key, Line: lineNo, Detail: fmt.Sprintf("duplicate key, first seen on line %d", prev.line)}
		}

		doc.values[key] = entry{value: strings.TrimSpace(value), line: lineNo}
		doc.keys = append(doc.keys, key)
	}
	return doc, nil
}

// indices returns the distinct element indices present under a sequence
// key, e.g. 0 and 1 for tx.operations[0].x and tx.operations[1].y.
func (doc *document) indices(key string) map[int]bool {
	prefix := key + "["
	seen := make(map[int]bool)
	for _, k := range doc.keys {
		rest, ok := strings.CutPrefix(k, prefix)
		if !ok {
			continue
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			continue
		}
		i, err := strconv.Atoi(rest[:end])
		if err != nil || i < 0 {
			continue
		}
		seen[i] = true
	}
	return seen
}

// firstToken drops any trailing annotation from a raw value.
func firstToken(value string) string {
	if i := strings.IndexFunc(value, unicode.IsSpace); i >= 0 {
		return value[:i]
	}
	return value
}

// quotedToken returns the leading double-quoted literal of value, escapes
// included, leaving any annotation after it.
func quotedToken(value string) (string, bool) {
	if !strings.HasPrefix(value, `"`) {
		return "", false
	}
	for i := 1; i < len(value); i++ {
		switch value[i] {
		case '\\':
			i++
		case '"':
			return value[:i+1], true
		}
	}
	return "", false
}
