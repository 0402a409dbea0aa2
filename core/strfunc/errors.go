package strfunc

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for common cases
var (
	// ErrInvalidInput indicates an argument failed validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownOperation indicates a name or ordinal outside the operation set
	ErrUnknownOperation = errors.New("unknown operation")
)

// CategoryMismatchError is returned when a non-NULL argument does not belong
// to the category the operation requires.
type CategoryMismatchError struct {
	Expected Category // Category the operation requires
	Received Value    // Argument as received
}

func (e *CategoryMismatchError) Error() string {
	return fmt.Sprintf("%s is required; received [%s]", e.Expected.requirement(), render(e.Received))
}

func (e *CategoryMismatchError) Unwrap() error {
	return ErrInvalidInput
}

// UnknownOperationError reports an operation that is not part of the closed set.
type UnknownOperationError struct {
	Name    string // Name as given, if decoding from text
	Ordinal uint64 // Wire ordinal, if decoding from binary
}

func (e *UnknownOperationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown operation: %s", e.Name)
	}
	return "unknown operation ordinal: " + strconv.FormatUint(e.Ordinal, 10)
}

func (e *UnknownOperationError) Unwrap() error {
	return ErrUnknownOperation
}

// ArityError is returned when a function is called with the wrong number of arguments.
type ArityError struct {
	Function string
	Want     int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s() takes exactly %d arguments (%d given)", e.Function, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error {
	return ErrInvalidInput
}
