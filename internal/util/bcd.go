package util

import "fmt"

// AppendBCD appends the packed BCD form of the decimal digit string s to dst,
// left padding with zero digits to fill size bytes.
func AppendBCD(dst []byte, s string, size int) ([]byte, error) {
	if len(s) > size*2 {
		return dst, fmt.Errorf("bcd: %d digits do not fit in %d bytes", len(s), size)
	}

	digits := make([]byte, size*2)
	pad := len(digits) - len(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return dst, fmt.Errorf("bcd: invalid digit %q at %d", c, i)
		}
		digits[pad+i] = c - '0'
	}

	for i := 0; i < len(digits); i += 2 {
		dst = append(dst, digits[i]<<4|digits[i+1])
	}

	return dst, nil
}

// DecodeBCD decodes packed BCD bytes into a decimal digit string.
func DecodeBCD(b []byte) (string, error) {
	out := make([]byte, 0, len(b)*2)
	for i, v := range b {
		hi, lo := v>>4, v&0x0F
		if hi > 9 || lo > 9 {
			return "", fmt.Errorf("bcd: invalid byte 0x%02X at %d", v, i)
		}
		out = append(out, '0'+hi, '0'+lo)
	}

	return string(out), nil
}
