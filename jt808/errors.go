package jt808

import (
	"errors"
	"fmt"
)

var (
	// ErrChecksumMismatch indicates the declared check code differs from the computed one.
	// The concrete error returned by Codec.Decode is a *ChecksumError.
	ErrChecksumMismatch = errors.New("jt808: checksum mismatch")

	// ErrHeaderParse wraps any failure of the header codec while decoding.
	ErrHeaderParse = errors.New("jt808: header parse error")

	// ErrHeaderSerialize wraps any failure of the header codec while encoding.
	ErrHeaderSerialize = errors.New("jt808: header serialize error")

	// ErrBodyParse wraps any failure of a body schema while decoding.
	ErrBodyParse = errors.New("jt808: body parse error")

	// ErrBodySerialize wraps any failure of a body schema while encoding.
	ErrBodySerialize = errors.New("jt808: body serialize error")
)

var (
	// ErrFrameTooShort indicates the unescaped frame cannot hold begin, check code and end.
	ErrFrameTooShort = errors.New("jt808: frame too short")

	// ErrBodyOutOfRange indicates the declared body length runs past the check code.
	ErrBodyOutOfRange = errors.New("jt808: body exceeds frame")

	// ErrNilPackage indicates a nil package was passed to Encode.
	ErrNilPackage = errors.New("jt808: package is nil")

	// ErrNilHeader indicates a package without header was passed to Encode.
	ErrNilHeader = errors.New("jt808: package header is nil")
)

var (
	// ErrHeaderTooShort indicates fewer bytes than a header needs.
	ErrHeaderTooShort = errors.New("jt808: header too short")

	// ErrBodyTooLarge indicates a body length that doesn't fit the 10-bit length field.
	ErrBodyTooLarge = errors.New("jt808: body too large")

	// ErrInvalidPhone indicates a terminal phone number that is not up to 12 decimal digits.
	ErrInvalidPhone = errors.New("jt808: invalid terminal phone number")

	// ErrInvalidEncryption indicates an encryption type that doesn't fit the 3-bit field.
	ErrInvalidEncryption = errors.New("jt808: invalid encryption type")
)

// ChecksumError is returned by Codec.Decode when the check code doesn't match.
type ChecksumError struct {
	Declared byte
	Computed byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%s: declared=0x%02X, computed=0x%02X", ErrChecksumMismatch, e.Declared, e.Computed)
}

// Unwrap makes errors.Is(err, ErrChecksumMismatch) report true.
func (e *ChecksumError) Unwrap() error {
	return ErrChecksumMismatch
}
