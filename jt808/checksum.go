package jt808

// Checksum returns the XOR of all bytes in data.
func Checksum(data []byte) byte {
	var cs byte
	for _, b := range data {
		cs ^= b
	}

	return cs
}

// ChecksumRange returns the XOR of buf[start:end].
//
// Decoding checks the range [1, checkIndex) of the unescaped frame; encoding
// computes [1, offset) of the assembled frame right before the check code is written.
func ChecksumRange(buf []byte, start, end int) byte {
	return Checksum(buf[start:end])
}
