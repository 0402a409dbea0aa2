package strfunc

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// maxCharCode is the highest code CHAR accepts (single-byte range).
	maxCharCode = 255

	// maxSpaceLength is the longest text SPACE builds; larger counts give NULL.
	maxSpaceLength = math.MaxInt32
)

// asciiFunc implements ASCII(X)
// Returns the code point of the first character of X, NULL for empty text
func asciiFunc(s string) Value {
	if s == "" {
		return NewNullValue()
	}
	r, _ := utf8.DecodeRuneInString(s)
	return NewIntValue(int64(r))
}

// charFunc implements CHAR(N)
func charFunc(n int64) Value {
	if n < 0 || n > maxCharCode {
		return NewNullValue()
	}
	return NewTextValue(string(rune(n)))
}

// lcaseFunc implements LCASE(X).
// Casing uses the root locale, never the process locale: U+0130 lowers to
// "i̇" everywhere, including deployments configured for Turkish.
func lcaseFunc(s string) Value {
	return NewTextValue(cases.Lower(language.Und).String(s))
}

// ucaseFunc implements UCASE(X) with full case mapping, so "ß" becomes "SS".
func ucaseFunc(s string) Value {
	return NewTextValue(cases.Upper(language.Und).String(s))
}

// lengthFunc implements LENGTH(X)
// Counts characters after trailing whitespace is removed
func lengthFunc(s string) Value {
	return NewIntValue(int64(utf8.RuneCountInString(trimTrailing(s))))
}

// rtrimFunc implements RTRIM(X)
func rtrimFunc(s string) Value {
	return NewTextValue(trimTrailing(s))
}

// ltrimFunc implements LTRIM(X)
func ltrimFunc(s string) Value {
	return NewTextValue(strings.TrimLeftFunc(s, isWhitespace))
}

// spaceFunc implements SPACE(N)
func spaceFunc(n int64) Value {
	if n < 0 || n > maxSpaceLength {
		return NewNullValue()
	}
	return NewTextValue(strings.Repeat(" ", int(n)))
}

// bitLengthFunc implements BIT_LENGTH(X) over the UTF-8 encoding of X
func bitLengthFunc(s string) Value {
	return NewIntValue(int64(len(s)) * 8)
}

// charLengthFunc implements CHAR_LENGTH(X) in code points
func charLengthFunc(s string) Value {
	return NewIntValue(int64(utf8.RuneCountInString(s)))
}

func trimTrailing(s string) string {
	return strings.TrimRightFunc(s, isWhitespace)
}

// isWhitespace reports whether r is trimmed by RTRIM, LTRIM and LENGTH: the
// Unicode separators except the no-break spaces, plus the ASCII controls
// TAB, LF, VT, FF, CR and the information separators U+001C..U+001F.
// NEL (U+0085) is not whitespace.
func isWhitespace(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f':
		return false
	case '\t', '\n', '\v', '\f', '\r', '\u001c', '\u001d', '\u001e', '\u001f':
		return true
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}
