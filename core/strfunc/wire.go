package strfunc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// The wire form of a Processor is its operation's ordinal (declaration
// order, starting at 0) as an unsigned varint. Reordering the Operation
// constants changes the wire format.

func (op Operation) ordinal() uint64 {
	return uint64(op - Ascii)
}

func operationFromOrdinal(n uint64) (Operation, error) {
	if n >= uint64(numOperations-Ascii) {
		return 0, &UnknownOperationError{Ordinal: n}
	}
	return Ascii + Operation(n), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *Processor) MarshalBinary() ([]byte, error) {
	if !p.op.Valid() {
		return nil, &UnknownOperationError{Name: p.op.String()}
	}
	return binary.AppendUvarint(nil, p.op.ordinal()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Processor) UnmarshalBinary(data []byte) error {
	n, size := binary.Uvarint(data)
	if size <= 0 {
		return fmt.Errorf("decode processor: malformed varint")
	}
	if size != len(data) {
		return fmt.Errorf("decode processor: %d trailing bytes", len(data)-size)
	}
	op, err := operationFromOrdinal(n)
	if err != nil {
		return fmt.Errorf("decode processor: %w", err)
	}
	p.op = op
	return nil
}

// WriteTo writes the wire form of p to w.
func (p *Processor) WriteTo(w io.Writer) (int64, error) {
	data, err := p.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadProcessor reads one processor written by WriteTo.
func ReadProcessor(r io.ByteReader) (*Processor, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("read processor: %w", err)
	}
	op, err := operationFromOrdinal(n)
	if err != nil {
		return nil, fmt.Errorf("read processor: %w", err)
	}
	return &Processor{op: op}, nil
}
