package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneSlice(t *testing.T) {
	src := []byte{1, 2, 3}

	clone := CloneSlice(src, 0)
	assert.Equal(t, src, clone)
	clone[0] = 9
	assert.Equal(t, byte(1), src[0], "clone must not alias src")

	assert.Equal(t, []byte{1, 2, 3, 0}, CloneSlice(src, 4))
	assert.Equal(t, []byte{1, 2}, CloneSlice(src, 2))
}

func TestPadRight(t *testing.T) {
	out, ok := PadRight("AB", 5, 0x00)
	require.True(t, ok)
	assert.Equal(t, []byte{'A', 'B', 0, 0, 0}, out)

	_, ok = PadRight("ABCDEF", 5, 0x00)
	assert.False(t, ok)

	assert.Equal(t, "AB", TrimPad(out, 0x00))
	assert.Equal(t, "", TrimPad([]byte{0, 0}, 0x00))
}

func TestBCD(t *testing.T) {
	tests := []struct {
		digits string
		size   int
		want   []byte
		norm   string
	}{
		{"013912345678", 6, []byte{0x01, 0x39, 0x12, 0x34, 0x56, 0x78}, "013912345678"},
		{"13912345678", 6, []byte{0x01, 0x39, 0x12, 0x34, 0x56, 0x78}, "013912345678"},
		{"241015083000", 6, []byte{0x24, 0x10, 0x15, 0x08, 0x30, 0x00}, "241015083000"},
		{"", 2, []byte{0x00, 0x00}, "0000"},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			got, err := AppendBCD(nil, tt.digits, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			s, err := DecodeBCD(got)
			require.NoError(t, err)
			assert.Equal(t, tt.norm, s)
		})
	}
}

func TestBCD_Errors(t *testing.T) {
	_, err := AppendBCD(nil, "1234567", 3)
	require.Error(t, err)

	_, err = AppendBCD(nil, "12a4", 2)
	require.Error(t, err)

	_, err = DecodeBCD([]byte{0x1A})
	require.Error(t, err)
}
