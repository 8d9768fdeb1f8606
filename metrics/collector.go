// Package metrics exposes jt808.CodecMetrics to Prometheus.
package metrics

import (
	"github.com/arloliu/go-jt808/jt808"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector is a prometheus.Collector reading the counters of a codec.
//
// The counters are read at scrape time, so the codec hot path is unaffected.
type Collector struct {
	counters []prometheus.CounterFunc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for m. Metric names are prefixed with namespace
// and the "codec" subsystem, e.g. jt808_codec_decoded_frames_total.
func NewCollector(m *jt808.CodecMetrics, namespace string) *Collector {
	counter := func(name, help string, read func() uint64) prometheus.CounterFunc {
		return prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "codec",
			Name:      name,
			Help:      help,
		}, func() float64 { return float64(read()) })
	}

	return &Collector{
		counters: []prometheus.CounterFunc{
			counter("decoded_frames_total", "Frames decoded successfully.", m.DecodeCount.Load),
			counter("decode_errors_total", "Frames that failed to decode.", m.DecodeErrCount.Load),
			counter("checksum_errors_total", "Frames rejected for a check code mismatch.", m.ChecksumErrCount.Load),
			counter("unknown_messages_total", "Frames whose message id has no body schema.", m.UnknownMsgCount.Load),
			counter("lenient_escapes_total", "Malformed escape sequences passed through.", m.LenientEscapeCount.Load),
			counter("encoded_packages_total", "Packages encoded successfully.", m.EncodeCount.Load),
			counter("encode_errors_total", "Packages that failed to encode.", m.EncodeErrCount.Load),
		},
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, cf := range c.counters {
		cf.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, cf := range c.counters {
		cf.Collect(ch)
	}
}
