package jt808

// Reserved byte values of the framing layer.
const (
	// FlagByte delimits a frame on both ends.
	FlagByte byte = 0x7e
	// EscapeByte starts a two-byte escape sequence.
	EscapeByte byte = 0x7d

	escapedEscape byte = 0x01 // 0x7d 0x01 -> 0x7d
	escapedFlag   byte = 0x02 // 0x7d 0x02 -> 0x7e
)

// unescapeStats reports the lenient cases met while unescaping.
type unescapeStats struct {
	// unknownPairs counts escape bytes followed by neither 0x01 nor 0x02.
	unknownPairs int
	// firstUnknown is the input position of the first unknown pair, -1 if none.
	firstUnknown int
	// truncated is set when the input ends with a lone escape byte.
	truncated bool
}

// Unescape reverses the byte stuffing of src and returns a new slice.
//
// An escape byte followed by anything other than 0x01 or 0x02 is kept as is, and a
// trailing lone escape byte is dropped. Neither case is an error.
func Unescape(src []byte) []byte {
	out, _ := appendUnescape(make([]byte, 0, len(src)), src)
	return out
}

// appendUnescape appends the unescaped form of src to dst. The output never
// exceeds len(src) bytes.
func appendUnescape(dst []byte, src []byte) ([]byte, unescapeStats) {
	stats := unescapeStats{firstUnknown: -1}

	for i := 0; i < len(src); i++ {
		b := src[i]
		if b != EscapeByte {
			dst = append(dst, b)
			continue
		}

		if i+1 >= len(src) {
			stats.truncated = true
			break
		}

		switch src[i+1] {
		case escapedEscape:
			dst = append(dst, EscapeByte)
			i++
		case escapedFlag:
			dst = append(dst, FlagByte)
			i++
		default:
			// pass the escape byte through, the next byte is handled on its own
			dst = append(dst, b)
			if stats.unknownPairs == 0 {
				stats.firstUnknown = i
			}
			stats.unknownPairs++
		}
	}

	return dst, stats
}

// Escape appends the on-wire form of an assembled frame to dst.
//
// The first and last bytes of frame are the delimiters and are copied unchanged,
// whatever their value. Every byte in between that equals 0x7e or 0x7d is replaced
// by its two-byte escape sequence.
func Escape(dst []byte, frame []byte) []byte {
	switch len(frame) {
	case 0:
		return dst
	case 1:
		return append(dst, frame[0])
	}

	last := len(frame) - 1
	dst = append(dst, frame[0])
	for _, b := range frame[1:last] {
		switch b {
		case FlagByte:
			dst = append(dst, EscapeByte, escapedFlag)
		case EscapeByte:
			dst = append(dst, EscapeByte, escapedEscape)
		default:
			dst = append(dst, b)
		}
	}

	return append(dst, frame[last])
}

// EscapedLen returns the length of the escaped form of frame.
func EscapedLen(frame []byte) int {
	n := len(frame)
	if n <= 2 {
		return n
	}
	for _, b := range frame[1 : n-1] {
		if b == FlagByte || b == EscapeByte {
			n++
		}
	}

	return n
}
