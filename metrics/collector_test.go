package metrics

import (
	"testing"

	"github.com/arloliu/go-jt808/jt808"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	values := make(map[string]float64, len(families))
	for _, mf := range families {
		require.Len(t, mf.GetMetric(), 1)
		values[mf.GetName()] = mf.GetMetric()[0].GetCounter().GetValue()
	}

	return values
}

func TestCollector(t *testing.T) {
	codec, err := jt808.NewCodec()
	require.NoError(t, err)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector(codec.Metrics(), "jt808")))

	values := gather(t, reg)
	assert.Len(t, values, 7)
	for name, v := range values {
		assert.Zero(t, v, name)
	}

	heartbeat := []byte{0x7e, 0x00, 0x02, 0x00, 0x00, 0x01, 0x39, 0x12, 0x34, 0x56, 0x78, 0x00, 0x01, 0x33, 0x7e}
	_, _, err = codec.Decode(heartbeat)
	require.NoError(t, err)

	bad := append([]byte{}, heartbeat...)
	bad[len(bad)-2] = 0x00
	_, _, err = codec.Decode(bad)
	require.ErrorIs(t, err, jt808.ErrChecksumMismatch)

	_, err = codec.Encode(nil)
	require.Error(t, err)

	values = gather(t, reg)
	assert.InDelta(t, 1, values["jt808_codec_decoded_frames_total"], 0)
	assert.InDelta(t, 1, values["jt808_codec_decode_errors_total"], 0)
	assert.InDelta(t, 1, values["jt808_codec_checksum_errors_total"], 0)
	assert.InDelta(t, 1, values["jt808_codec_encode_errors_total"], 0)
	assert.InDelta(t, 0, values["jt808_codec_encoded_packages_total"], 0)
}

func TestCollector_TwoCodecsNeedDistinctNamespaces(t *testing.T) {
	var a, b jt808.CodecMetrics

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewCollector(&a, "uplink")))
	require.Error(t, reg.Register(NewCollector(&b, "uplink")))
	require.NoError(t, reg.Register(NewCollector(&b, "downlink")))

	a.DecodeCount.Add(3)
	values := gather(t, reg)
	assert.InDelta(t, 3, values["uplink_codec_decoded_frames_total"], 0)
	assert.InDelta(t, 0, values["downlink_codec_decoded_frames_total"], 0)
}
