package jt808

import "sync/atomic"

// CodecMetrics contains atomic metrics for a Codec.
// Metrics can be used as the value of a prometheus CounterFunc, see the metrics package.
type CodecMetrics struct {
	// DecodeCount indicates the number of frames decoded successfully.
	DecodeCount atomic.Uint64
	// DecodeErrCount indicates the number of frames that failed to decode.
	DecodeErrCount atomic.Uint64
	// ChecksumErrCount indicates the number of frames rejected for a check code mismatch.
	ChecksumErrCount atomic.Uint64
	// UnknownMsgCount indicates the number of frames whose message id has no body schema.
	UnknownMsgCount atomic.Uint64
	// LenientEscapeCount indicates the number of malformed escape sequences passed through.
	LenientEscapeCount atomic.Uint64
	// EncodeCount indicates the number of packages encoded successfully.
	EncodeCount atomic.Uint64
	// EncodeErrCount indicates the number of packages that failed to encode.
	EncodeErrCount atomic.Uint64
}

func (m *CodecMetrics) incDecodeCount() {
	m.DecodeCount.Add(1)
}

func (m *CodecMetrics) incDecodeErrCount() {
	m.DecodeErrCount.Add(1)
}

func (m *CodecMetrics) incChecksumErrCount() {
	m.ChecksumErrCount.Add(1)
}

func (m *CodecMetrics) incUnknownMsgCount() {
	m.UnknownMsgCount.Add(1)
}

func (m *CodecMetrics) addLenientEscapeCount(n int) {
	m.LenientEscapeCount.Add(uint64(n)) //nolint:gosec // n is a non-negative count
}

func (m *CodecMetrics) incEncodeCount() {
	m.EncodeCount.Add(1)
}

func (m *CodecMetrics) incEncodeErrCount() {
	m.EncodeErrCount.Add(1)
}
