package util

// CloneSlice clones slice with cloneSize.
// This function will use src length as the clone size if cloneSize is 0.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// PadRight returns s as a byte slice of exactly size bytes, right padded with pad.
// It reports false if s is longer than size.
func PadRight(s string, size int, pad byte) ([]byte, bool) {
	if len(s) > size {
		return nil, false
	}
	out := make([]byte, size)
	copy(out, s)
	for i := len(s); i < size; i++ {
		out[i] = pad
	}

	return out, true
}

// TrimPad removes trailing pad bytes from b and returns the remainder as a string.
func TrimPad(b []byte, pad byte) string {
	end := len(b)
	for end > 0 && b[end-1] == pad {
		end--
	}

	return string(b[:end])
}
