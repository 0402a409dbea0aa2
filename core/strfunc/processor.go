package strfunc

// Processor evaluates one operation. It holds no per-call state and may be
// shared between goroutines.
type Processor struct {
	op Operation
}

var _ Function = (*Processor)(nil)

// NewProcessor returns the processor for op.
func NewProcessor(op Operation) (*Processor, error) {
	if !op.Valid() {
		return nil, &UnknownOperationError{Name: op.String()}
	}
	return &Processor{op: op}, nil
}

// MustProcessor is like NewProcessor but panics on an invalid operation.
func MustProcessor(op Operation) *Processor {
	p, err := NewProcessor(op)
	if err != nil {
		panic(err)
	}
	return p
}

// Operation returns the operation the processor evaluates.
func (p *Processor) Operation() Operation {
	return p.op
}

// Name returns the SQL name of the operation.
func (p *Processor) Name() string {
	return p.op.String()
}

// NumArgs always returns 1.
func (p *Processor) NumArgs() int {
	return 1
}

// Call implements Function.
func (p *Processor) Call(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, &ArityError{Function: p.Name(), Want: 1, Got: len(args)}
	}
	return p.Process(args[0])
}

// Process evaluates the operation on v.
func (p *Processor) Process(v Value) (Value, error) {
	return Evaluate(p.op, v)
}

// Evaluate applies op to v.
//
// NULL input yields NULL without validation. Otherwise v must belong to the
// operation's category or a *CategoryMismatchError is returned and nothing is
// evaluated. A char is handed to text operations as one-character text.
func Evaluate(op Operation, v Value) (Value, error) {
	if isNull(v) {
		return NewNullValue(), nil
	}
	if !op.Valid() {
		return nil, &UnknownOperationError{Name: op.String()}
	}

	s := &operations[op]
	if !s.category.Accepts(v.Type()) {
		return nil, &CategoryMismatchError{Expected: s.category, Received: v}
	}

	if s.category == Numeric {
		return s.number(v.AsInt64()), nil
	}
	return s.text(v.AsString()), nil
}
