package jt808

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyProperty_Word(t *testing.T) {
	tests := []struct {
		name string
		prop BodyProperty
		word uint16
	}{
		{"zero", BodyProperty{}, 0x0000},
		{"length only", BodyProperty{DataLength: 28}, 0x001C},
		{"max length", BodyProperty{DataLength: MaxDataLength}, 0x03FF},
		{"rsa", BodyProperty{DataLength: 5, Encryption: EncryptionRSA}, 0x0405},
		{"fragmented", BodyProperty{DataLength: 32, IsFragmented: true}, 0x2020},
		{"reserved", BodyProperty{Reserved: 0x03}, 0xC000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.word, tt.prop.word())
			assert.Equal(t, tt.prop, parseBodyProperty(tt.word))
		})
	}
}

func TestStdHeaderCodec_RoundTrip(t *testing.T) {
	h := &Header{
		MsgID:         0x0200,
		Property:      BodyProperty{DataLength: 28, Encryption: EncryptionRSA, IsFragmented: true},
		TerminalPhone: "013912345678",
		MsgSerial:     0xABCD,
	}

	var hc StdHeaderCodec
	wire, err := hc.AppendHeader(nil, h)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x00, 0x24, 0x1C, 0x01, 0x39, 0x12, 0x34, 0x56, 0x78, 0xAB, 0xCD}, wire)

	got, n, err := hc.ParseHeader(append(wire, 0xFF, 0xFF))
	require.NoError(t, err)
	assert.Equal(t, StdHeaderSize, n)
	assert.Equal(t, h, got)
}

func TestStdHeaderCodec_ShortPhoneIsPadded(t *testing.T) {
	var hc StdHeaderCodec
	wire, err := hc.AppendHeader(nil, &Header{TerminalPhone: "13912345678"})
	require.NoError(t, err)

	got, _, err := hc.ParseHeader(wire)
	require.NoError(t, err)
	assert.Equal(t, "013912345678", got.TerminalPhone)
}

func TestStdHeaderCodec_Errors(t *testing.T) {
	var hc StdHeaderCodec

	t.Run("too short", func(t *testing.T) {
		_, _, err := hc.ParseHeader(make([]byte, StdHeaderSize-1))
		require.ErrorIs(t, err, ErrHeaderTooShort)
	})

	t.Run("invalid bcd phone", func(t *testing.T) {
		data := make([]byte, StdHeaderSize)
		data[4] = 0xAB
		_, _, err := hc.ParseHeader(data)
		require.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("body too large", func(t *testing.T) {
		_, err := hc.AppendHeader(nil, &Header{Property: BodyProperty{DataLength: MaxDataLength + 1}})
		require.ErrorIs(t, err, ErrBodyTooLarge)
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := hc.AppendHeader(nil, &Header{Property: BodyProperty{DataLength: -1}})
		require.ErrorIs(t, err, ErrBodyTooLarge)
	})

	t.Run("invalid encryption", func(t *testing.T) {
		_, err := hc.AppendHeader(nil, &Header{Property: BodyProperty{Encryption: 8}})
		require.ErrorIs(t, err, ErrInvalidEncryption)
	})

	t.Run("phone too long", func(t *testing.T) {
		_, err := hc.AppendHeader(nil, &Header{TerminalPhone: "0139123456789"})
		require.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("phone not numeric", func(t *testing.T) {
		_, err := hc.AppendHeader(nil, &Header{TerminalPhone: "13912x45678"})
		require.ErrorIs(t, err, ErrInvalidPhone)
	})
}
