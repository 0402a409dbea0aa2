package strfunc

import (
	"sort"
	"strings"
)

// definition describes one operation. Exactly one of text or number is set,
// matching category.
type definition struct {
	name     string
	aliases  []string
	category Category
	text     func(s string) Value
	number   func(n int64) Value
}

// operations is indexed by Operation. Every declared operation must have an
// entry; TestOperationTableIsTotal enforces it.
var operations = [numOperations]definition{
	Ascii:      {name: "ASCII", category: TextLike, text: asciiFunc},
	Char:       {name: "CHAR", category: Numeric, number: charFunc},
	Lcase:      {name: "LCASE", category: TextLike, text: lcaseFunc},
	Ucase:      {name: "UCASE", category: TextLike, text: ucaseFunc},
	Length:     {name: "LENGTH", category: TextLike, text: lengthFunc},
	RTrim:      {name: "RTRIM", category: TextLike, text: rtrimFunc},
	LTrim:      {name: "LTRIM", category: TextLike, text: ltrimFunc},
	Space:      {name: "SPACE", category: Numeric, number: spaceFunc},
	BitLength:  {name: "BIT_LENGTH", category: TextLike, text: bitLengthFunc},
	CharLength: {name: "CHAR_LENGTH", aliases: []string{"CHARACTER_LENGTH"}, category: TextLike, text: charLengthFunc},
}

// Function is the interface for the SQL functions of this package.
type Function interface {
	// Name returns the function name
	Name() string

	// NumArgs returns the number of arguments
	NumArgs() int

	// Call executes the function with the given arguments
	Call(args []Value) (Value, error)
}

// Registry holds functions by upper-case SQL name.
// It is safe for concurrent reads once populated.
type Registry struct {
	functions map[string]Function
}

// NewRegistry creates a new function registry.
func NewRegistry() *Registry {
	return &Registry{
		functions: make(map[string]Function),
	}
}

// Register registers a function under its own name.
func (r *Registry) Register(fn Function) {
	r.functions[strings.ToUpper(fn.Name())] = fn
}

// RegisterAlias registers fn under an additional name.
func (r *Registry) RegisterAlias(alias string, fn Function) {
	r.functions[strings.ToUpper(alias)] = fn
}

// Lookup finds a function by name, ignoring case.
func (r *Registry) Lookup(name string) (Function, bool) {
	fn, ok := r.functions[strings.ToUpper(name)]
	return fn, ok
}

// Names returns every registered name, aliases included, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with a Processor for every operation.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, op := range Operations() {
		p := &Processor{op: op}
		r.Register(p)
		for _, alias := range operations[op].aliases {
			r.RegisterAlias(alias, p)
		}
	}
	return r
}
