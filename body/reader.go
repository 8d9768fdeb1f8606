package body

import (
	"encoding/binary"
	"fmt"
)

// reader is a cursor over body bytes.
type reader struct {
	input []byte
	pos   int
}

func newReader(data []byte) *reader {
	return &reader{input: data}
}

// remaining returns the number of bytes remaining in the input buffer.
func (r *reader) remaining() int {
	return len(r.input) - r.pos
}

// read reads length bytes and advances the current position.
// The returned slice aliases the input.
func (r *reader) read(length int) ([]byte, error) {
	if length < 0 || r.pos+length > len(r.input) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBody, length, r.remaining())
	}
	result := r.input[r.pos : r.pos+length]
	r.pos += length

	return result, nil
}

func (r *reader) readByte() (byte, error) {
	if r.pos >= len(r.input) {
		return 0, fmt.Errorf("%w: need 1 byte", ErrShortBody)
	}
	result := r.input[r.pos]
	r.pos++

	return result, nil
}

func (r *reader) readUint16() (uint16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) readUint32() (uint32, error) {
	b, err := r.read(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b), nil
}

// rest returns all remaining bytes and moves the cursor to the end.
func (r *reader) rest() []byte {
	result := r.input[r.pos:]
	r.pos = len(r.input)

	return result
}
