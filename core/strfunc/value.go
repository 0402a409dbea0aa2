package strfunc

import (
	"strconv"
	"strings"
)

// Value represents a SQL value with its type.
type Value interface {
	// Type returns the type of the value
	Type() ValueType

	// AsInt64 returns the value as int64
	AsInt64() int64

	// AsFloat64 returns the value as float64
	AsFloat64() float64

	// AsString returns the value as string; a char becomes one-character text
	AsString() string

	// AsBlob returns the value as byte slice
	AsBlob() []byte

	// IsNull returns true if the value is NULL
	IsNull() bool
}

// ValueType represents SQL value types.
type ValueType int

const (
	TypeNull ValueType = iota
	TypeInteger
	TypeFloat
	TypeText
	TypeBlob
	TypeChar
)

// String returns the string representation of the type
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "real"
	case TypeText:
		return "text"
	case TypeBlob:
		return "blob"
	case TypeChar:
		return "char"
	default:
		return "unknown"
	}
}

// SimpleValue is a basic implementation of the Value interface.
type SimpleValue struct {
	typ    ValueType
	intVal int64
	fltVal float64
	strVal string
	chrVal rune
	blbVal []byte
}

// NewNullValue creates a NULL value
func NewNullValue() Value {
	return &SimpleValue{typ: TypeNull}
}

// NewIntValue creates an integer value
func NewIntValue(v int64) Value {
	return &SimpleValue{typ: TypeInteger, intVal: v}
}

// NewFloatValue creates a float value. No operation accepts one; SQL engines
// still hand them over and they must fail validation rather than be coerced.
func NewFloatValue(v float64) Value {
	return &SimpleValue{typ: TypeFloat, fltVal: v}
}

// NewTextValue creates a text value
func NewTextValue(v string) Value {
	return &SimpleValue{typ: TypeText, strVal: v}
}

// NewCharValue creates a single character value
func NewCharValue(r rune) Value {
	return &SimpleValue{typ: TypeChar, chrVal: r}
}

// NewBlobValue creates a blob value
func NewBlobValue(v []byte) Value {
	return &SimpleValue{typ: TypeBlob, blbVal: v}
}

func (v *SimpleValue) Type() ValueType {
	return v.typ
}

func (v *SimpleValue) AsInt64() int64 {
	switch v.typ {
	case TypeInteger:
		return v.intVal
	case TypeFloat:
		return int64(v.fltVal)
	case TypeChar:
		return int64(v.chrVal)
	default:
		return 0
	}
}

func (v *SimpleValue) AsFloat64() float64 {
	switch v.typ {
	case TypeFloat:
		return v.fltVal
	case TypeInteger:
		return float64(v.intVal)
	default:
		return 0.0
	}
}

func (v *SimpleValue) AsString() string {
	switch v.typ {
	case TypeText:
		return v.strVal
	case TypeChar:
		return string(v.chrVal)
	case TypeInteger:
		return strconv.FormatInt(v.intVal, 10)
	case TypeFloat:
		return formatFloat(v.fltVal)
	case TypeBlob:
		return string(v.blbVal)
	default:
		return ""
	}
}

func (v *SimpleValue) AsBlob() []byte {
	switch v.typ {
	case TypeBlob:
		return v.blbVal
	case TypeText, TypeChar:
		return []byte(v.AsString())
	default:
		return nil
	}
}

func (v *SimpleValue) IsNull() bool {
	return v.typ == TypeNull
}

// String renders the value the way validation messages quote it.
func (v *SimpleValue) String() string {
	if v.typ == TypeNull {
		return "null"
	}
	return v.AsString()
}

// isNull reports whether v is absent, treating a nil interface as NULL.
func isNull(v Value) bool {
	return v == nil || v.IsNull()
}

// formatFloat renders f in shortest form, keeping a ".0" on whole numbers
// so 2.0 never reads as the integer 2.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.IndexFunc(s, func(r rune) bool { return r != '-' && (r < '0' || r > '9') }) < 0 {
		s += ".0"
	}
	return s
}

// render returns the default textual rendering of any Value.
func render(v Value) string {
	if isNull(v) {
		return "null"
	}
	return v.AsString()
}
