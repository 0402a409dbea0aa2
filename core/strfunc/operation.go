package strfunc

import (
	"strconv"
	"strings"
)

// Operation identifies one of the single-argument string built-ins.
// The set is closed; the zero value is not a valid operation.
type Operation int

const (
	_ Operation = iota // zero value is invalid

	Ascii
	Char
	Lcase
	Ucase
	Length
	RTrim
	LTrim
	Space
	BitLength
	CharLength

	numOperations
)

// Category is the kind of input an operation accepts.
type Category int

const (
	// TextLike accepts text or a single character.
	TextLike Category = iota + 1
	// Numeric accepts an integer.
	Numeric
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case TextLike:
		return "string/char"
	case Numeric:
		return "number"
	default:
		return "unknown"
	}
}

// Accepts reports whether a value of type t belongs to the category.
func (c Category) Accepts(t ValueType) bool {
	switch c {
	case TextLike:
		return t == TypeText || t == TypeChar
	case Numeric:
		return t == TypeInteger
	default:
		return false
	}
}

// requirement is the noun phrase used in validation messages.
func (c Category) requirement() string {
	switch c {
	case TextLike:
		return "A string/char"
	case Numeric:
		return "A number"
	default:
		return "A value"
	}
}

// Operations returns every operation in declaration order.
func Operations() []Operation {
	ops := make([]Operation, 0, numOperations-1)
	for op := Ascii; op < numOperations; op++ {
		ops = append(ops, op)
	}
	return ops
}

// Valid reports whether op is one of the declared operations.
func (op Operation) Valid() bool {
	return op > 0 && op < numOperations
}

// String returns the SQL name of the operation.
func (op Operation) String() string {
	if !op.Valid() {
		return "Operation(" + strconv.Itoa(int(op)) + ")"
	}
	return operations[op].name
}

// Category returns the input category op requires.
// It returns zero for an invalid operation.
func (op Operation) Category() Category {
	if !op.Valid() {
		return 0
	}
	return operations[op].category
}

// Aliases returns the additional SQL names the operation answers to.
func (op Operation) Aliases() []string {
	if !op.Valid() {
		return nil
	}
	return append([]string(nil), operations[op].aliases...)
}

// ParseOperation resolves a SQL function name (or alias) to its operation.
// Matching ignores ASCII case.
func ParseOperation(name string) (Operation, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for op := Ascii; op < numOperations; op++ {
		if operations[op].name == key {
			return op, nil
		}
		for _, alias := range operations[op].aliases {
			if alias == key {
				return op, nil
			}
		}
	}
	return 0, &UnknownOperationError{Name: name}
}

// MarshalText implements encoding.TextMarshaler.
func (op Operation) MarshalText() ([]byte, error) {
	if !op.Valid() {
		return nil, &UnknownOperationError{Name: op.String()}
	}
	return []byte(op.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *Operation) UnmarshalText(text []byte) error {
	parsed, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}
