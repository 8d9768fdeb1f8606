package body

import (
	"errors"
	"fmt"
)

var (
	// ErrShortBody indicates the body bytes end before all fields are read.
	ErrShortBody = errors.New("body: unexpected end of body")

	// ErrBodyTypeMismatch indicates a Body value of the wrong concrete type was
	// passed to a schema's append function.
	ErrBodyTypeMismatch = errors.New("body: body type does not match schema")

	// ErrFieldTooLong indicates a fixed-size field cannot hold the given value.
	ErrFieldTooLong = errors.New("body: field value too long")

	// ErrDuplicateSchema indicates a schema is already registered for the message id.
	ErrDuplicateSchema = errors.New("body: schema already registered")

	// ErrInvalidSchema indicates a schema without decode or append function.
	ErrInvalidSchema = errors.New("body: schema must have both decode and append functions")
)

// Body is the decoded payload of a JT/T808 frame.
type Body interface {
	// MsgID returns the message id this body is carried under.
	MsgID() uint16
}

// DecodeFunc decodes a body from data and returns the number of bytes consumed.
type DecodeFunc func(data []byte) (Body, int, error)

// AppendFunc appends the wire form of b to dst.
type AppendFunc func(dst []byte, b Body) ([]byte, error)

// Schema describes how to decode and encode one concrete Body type.
type Schema struct {
	// Name is a human readable name of the body type, used in logs.
	Name   string
	Decode DecodeFunc
	Append AppendFunc
}

func (s Schema) valid() bool {
	return s.Decode != nil && s.Append != nil
}

// NewSchema builds a Schema from typed decode and append functions.
//
// The returned Append function fails with ErrBodyTypeMismatch if it is given a
// Body that is not a T.
func NewSchema[T Body](name string, decode func([]byte) (T, int, error), appendFn func([]byte, T) ([]byte, error)) Schema {
	return Schema{
		Name: name,
		Decode: func(data []byte) (Body, int, error) {
			b, n, err := decode(data)
			if err != nil {
				return nil, n, err
			}
			return b, n, nil
		},
		Append: func(dst []byte, b Body) ([]byte, error) {
			v, ok := b.(T)
			if !ok {
				return dst, fmt.Errorf("%w: %s got %T", ErrBodyTypeMismatch, name, b)
			}
			return appendFn(dst, v)
		},
	}
}
