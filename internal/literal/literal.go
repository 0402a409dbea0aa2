// Package literal parses and formats argument values written on a command
// line or in a batch file.
//
// The syntax is deliberately small:
//
//	null          NULL (any case)
//	'c'           a single character; Go rune-literal escapes apply
//	"text"        text; Go string-literal escapes apply
//	42, -7        integer
//	1.5, 2e3      float (accepted so that validation failures can be shown)
package literal

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/strfunc/core/strfunc"
)

// literalGrammar is the participle grammar for a single literal.
//
//nolint:govet // participle grammar tags are not standard struct tags
type literalGrammar struct {
	Null  bool     `  @Null`
	Char  *string  `| @Char`
	Text  *string  `| @String`
	Float *float64 `| @Float`
	Int   *int64   `| @Int`
}

// literalLexer orders Float before Int so "1.5" is not split.
var literalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Null", Pattern: `(?i)null\b`},
	{Name: "Char", Pattern: `'(?:\\.|[^'\\])*'`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Float", Pattern: `[-+]?\d+(?:\.\d*(?:[eE][-+]?\d+)?|[eE][-+]?\d+)`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// literalParser is the participle parser for literals.
var literalParser = participle.MustBuild[literalGrammar](
	participle.Lexer(literalLexer),
	participle.Elide("Whitespace"),
)

// ParseError reports a literal that could not be parsed.
type ParseError struct {
	Input   string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse literal %q: %s", e.Input, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts a literal into a value.
func Parse(s string) (strfunc.Value, error) {
	g, err := literalParser.ParseString("", s)
	if err != nil {
		return nil, &ParseError{Input: s, Message: err.Error(), Err: err}
	}

	switch {
	case g.Null:
		return strfunc.NewNullValue(), nil
	case g.Char != nil:
		text, err := strconv.Unquote(*g.Char)
		if err != nil {
			return nil, &ParseError{Input: s, Message: "a char literal holds exactly one character", Err: err}
		}
		r := []rune(text)
		return strfunc.NewCharValue(r[0]), nil
	case g.Text != nil:
		text, err := strconv.Unquote(*g.Text)
		if err != nil {
			return nil, &ParseError{Input: s, Message: "invalid escape in text literal", Err: err}
		}
		return strfunc.NewTextValue(text), nil
	case g.Float != nil:
		return strfunc.NewFloatValue(*g.Float), nil
	case g.Int != nil:
		return strfunc.NewIntValue(*g.Int), nil
	default:
		return nil, &ParseError{Input: s, Message: "empty literal"}
	}
}

// Format renders v in the syntax Parse accepts. Blobs, which Parse does not
// read, are written as x'hex'.
func Format(v strfunc.Value) string {
	if v == nil || v.IsNull() {
		return "null"
	}
	switch v.Type() {
	case strfunc.TypeInteger:
		return strconv.FormatInt(v.AsInt64(), 10)
	case strfunc.TypeFloat:
		return v.AsString()
	case strfunc.TypeChar:
		return strconv.QuoteRune([]rune(v.AsString())[0])
	case strfunc.TypeBlob:
		return "x'" + hex.EncodeToString(v.AsBlob()) + "'"
	default:
		return strconv.Quote(v.AsString())
	}
}
