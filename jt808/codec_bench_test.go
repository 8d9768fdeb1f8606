package jt808

import (
	"testing"

	"github.com/arloliu/go-jt808/body"
)

func BenchmarkDecode_Heartbeat(b *testing.B) {
	c := newTestCodec(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.Decode(heartbeatFrame); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_Location(b *testing.B) {
	c := newTestCodec(b)
	wire, err := c.Encode(NewPackage(&Header{TerminalPhone: testPhone}, sampleLocation()))
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(wire)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.Decode(wire); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode_Location(b *testing.B) {
	c := newTestCodec(b)
	pkg := NewPackage(&Header{TerminalPhone: testPhone}, sampleLocation())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encode(pkg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAppendEncode_Response(b *testing.B) {
	c := newTestCodec(b)
	pkg := NewPackage(&Header{TerminalPhone: testPhone},
		&body.PlatformResponse{ReplySerial: 0x7e7d, ReplyID: body.LocationID, Result: body.ResultSuccess})
	dst := make([]byte, 0, 64)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		if dst, err = c.AppendEncode(dst[:0], pkg); err != nil {
			b.Fatal(err)
		}
	}
}
