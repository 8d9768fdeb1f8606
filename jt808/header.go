package jt808

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/go-jt808/internal/util"
)

// StdHeaderSize is the size of a JT/T808-2013 message header.
const StdHeaderSize = 12

// MaxDataLength is the largest body length the 10-bit length field can declare.
const MaxDataLength = 0x03FF

// FragmentPrefixSize is the size of the fragment count and index block that
// precedes the body of a fragmented message.
const FragmentPrefixSize = 4

// phoneSize is the size of the BCD encoded terminal phone number.
const phoneSize = 6

// Body property bit layout (JT/T808-2013 §4.4.3):
//
//	bits 0-9   body length
//	bits 10-12 encryption
//	bit  13    fragmented
//	bits 14-15 reserved
const (
	dataLengthMask  = 0x03FF
	encryptionShift = 10
	encryptionMask  = 0x07
	fragmentedBit   = 1 << 13
	reservedShift   = 14
	reservedMask    = 0x03
)

// EncryptionType is the 3-bit encryption field of the body property.
type EncryptionType uint8

const (
	EncryptionNone EncryptionType = 0
	EncryptionRSA  EncryptionType = 1
)

// BodyProperty is the body property word of a header plus the fragment
// information carried in front of the body.
type BodyProperty struct {
	// DataLength is the length of the body section, including the fragment prefix
	// when IsFragmented is set. Codec.Encode recomputes it.
	DataLength int
	Encryption EncryptionType
	// IsFragmented reports whether a 4-byte fragment prefix precedes the body.
	IsFragmented bool
	Reserved     uint8
	// FragmentCount and FragmentIndex are only meaningful when IsFragmented is set.
	// They are little-endian on the wire.
	FragmentCount uint16
	FragmentIndex uint16
}

func (p BodyProperty) word() uint16 {
	w := uint16(p.DataLength&dataLengthMask) |
		uint16(p.Encryption&encryptionMask)<<encryptionShift |
		uint16(p.Reserved&reservedMask)<<reservedShift
	if p.IsFragmented {
		w |= fragmentedBit
	}

	return w
}

func parseBodyProperty(w uint16) BodyProperty {
	return BodyProperty{
		DataLength:   int(w & dataLengthMask),
		Encryption:   EncryptionType((w >> encryptionShift) & encryptionMask),
		IsFragmented: w&fragmentedBit != 0,
		Reserved:     uint8((w >> reservedShift) & reservedMask),
	}
}

// Header is a JT/T808 message header.
type Header struct {
	// MsgID selects the body schema.
	MsgID    uint16
	Property BodyProperty
	// TerminalPhone is the 12-digit terminal phone number; shorter values are
	// left padded with zeros on the wire.
	TerminalPhone string
	// MsgSerial is the message flow number assigned by the sender.
	MsgSerial uint16
}

// HeaderCodec parses and serializes message headers.
//
// The fragment prefix is not part of the header; Codec handles it.
type HeaderCodec interface {
	// ParseHeader parses a header at the start of data and returns the number of
	// bytes consumed.
	ParseHeader(data []byte) (*Header, int, error)
	// AppendHeader appends the wire form of h to dst.
	AppendHeader(dst []byte, h *Header) ([]byte, error)
}

// StdHeaderCodec is the JT/T808-2013 header codec:
//
//	[MsgID(2)][BodyProperty(2)][TerminalPhone BCD(6)][MsgSerial(2)]
type StdHeaderCodec struct{}

var _ HeaderCodec = StdHeaderCodec{}

// ParseHeader implements HeaderCodec.
func (StdHeaderCodec) ParseHeader(data []byte) (*Header, int, error) {
	if len(data) < StdHeaderSize {
		return nil, 0, fmt.Errorf("%w: got %d bytes, want %d", ErrHeaderTooShort, len(data), StdHeaderSize)
	}

	phone, err := util.DecodeBCD(data[4 : 4+phoneSize])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidPhone, err)
	}

	h := &Header{
		MsgID:         binary.BigEndian.Uint16(data[0:2]),
		Property:      parseBodyProperty(binary.BigEndian.Uint16(data[2:4])),
		TerminalPhone: phone,
		MsgSerial:     binary.BigEndian.Uint16(data[10:12]),
	}

	return h, StdHeaderSize, nil
}

// AppendHeader implements HeaderCodec.
func (StdHeaderCodec) AppendHeader(dst []byte, h *Header) ([]byte, error) {
	p := h.Property
	if p.DataLength < 0 || p.DataLength > MaxDataLength {
		return dst, fmt.Errorf("%w: %d bytes, max %d", ErrBodyTooLarge, p.DataLength, MaxDataLength)
	}
	if p.Encryption > encryptionMask {
		return dst, fmt.Errorf("%w: %d", ErrInvalidEncryption, p.Encryption)
	}

	dst = binary.BigEndian.AppendUint16(dst, h.MsgID)
	dst = binary.BigEndian.AppendUint16(dst, p.word())

	dst, err := util.AppendBCD(dst, h.TerminalPhone, phoneSize)
	if err != nil {
		return dst, fmt.Errorf("%w: %w", ErrInvalidPhone, err)
	}

	return binary.BigEndian.AppendUint16(dst, h.MsgSerial), nil
}
