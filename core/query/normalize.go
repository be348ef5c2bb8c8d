// ABOUTME: Query normalizer turns a typed search phrase into a URL-safe search term
// ABOUTME: Output has no literal spaces and normalizing it again returns it unchanged

// Package query converts human-readable search phrases into tokens that can
// be placed directly in a catalog lookup query string.
package query

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	coreerrors "fjapps-store/core/errors"
)

const upperhex = "0123456789ABCDEF"

// Normalize converts rawQuery into a search term.
//
// Surrounding whitespace is trimmed and the text is put in NFC form. Each
// space becomes '+'. Unreserved characters and '+' are kept, existing %XX
// escapes are kept with upper-case hex, and every other byte is
// percent-escaped. A blank query returns *errors.InvalidQueryError.
//
// A literal '+' is read as an already encoded space, so "c++" reaches the
// catalog as "c" followed by two spaces. Callers that mean a plus sign must
// send it as "%2B", which is kept as is: "c%2B%2B" searches for "c++".
func Normalize(rawQuery string) (string, error) {
	trimmed := strings.TrimSpace(rawQuery)
	if trimmed == "" {
		return "", &coreerrors.InvalidQueryError{Field: "query", Message: "search string must not be empty"}
	}

	s := norm.NFC.String(trimmed)

	var b strings.Builder
	b.Grow(len(s) * 3)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			b.WriteByte('+')
		case c == '+' || isUnreserved(c):
			b.WriteByte(c)
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte('%')
			b.WriteByte(toUpperHex(s[i+1]))
			b.WriteByte(toUpperHex(s[i+2]))
			i += 2
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}

	return b.String(), nil
}

// isUnreserved reports RFC 3986 unreserved characters
func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func toUpperHex(c byte) byte {
	if 'a' <= c && c <= 'f' {
		return c - 'a' + 'A'
	}
	return c
}
