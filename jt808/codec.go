package jt808

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/go-jt808/internal/util"
	"github.com/arloliu/go-jt808/logger"
)

// minFrameSize is the smallest unescaped frame: begin, check code and end.
const minFrameSize = 3

// Codec decodes raw frames into packages and encodes packages into raw frames.
//
// A Codec is safe for concurrent use.
type Codec struct {
	cfg     *CodecConfig
	logger  logger.Logger
	metrics CodecMetrics
}

// NewCodec creates a codec with the given options.
func NewCodec(opts ...CodecOption) (*Codec, error) {
	cfg, err := NewCodecConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Codec{cfg: cfg, logger: cfg.logger}, nil
}

// Config returns the codec configuration.
func (c *Codec) Config() *CodecConfig {
	return c.cfg
}

// Metrics returns the codec metrics.
func (c *Codec) Metrics() *CodecMetrics {
	return &c.metrics
}

// Decode decodes one escaped frame, delimiters included.
//
// It returns the package and the length of the unescaped frame. Errors match
// ErrChecksumMismatch, ErrHeaderParse or ErrBodyParse with errors.Is; a frame whose
// message id has no registered schema is not an error, its Body is nil.
func (c *Codec) Decode(data []byte) (*Package, int, error) {
	pkg, n, err := c.decode(data)
	if err != nil {
		c.metrics.incDecodeErrCount()
		return nil, 0, err
	}
	c.metrics.incDecodeCount()

	return pkg, n, nil
}

func (c *Codec) decode(data []byte) (*Package, int, error) {
	buf := c.unescape(data)
	if len(buf) < minFrameSize {
		return nil, 0, fmt.Errorf("%w: %d bytes after unescape, want at least %d", ErrFrameTooShort, len(buf), minFrameSize)
	}

	pkg := &Package{}

	checkIndex := len(buf) - 2
	pkg.CheckCode = buf[checkIndex]
	if !c.cfg.skipChecksum {
		if computed := ChecksumRange(buf, 1, checkIndex); computed != pkg.CheckCode {
			c.metrics.incChecksumErrCount()
			c.logger.Debug("jt808: checksum mismatch", "declared", pkg.CheckCode, "computed", computed)

			return nil, 0, &ChecksumError{Declared: pkg.CheckCode, Computed: computed}
		}
	}

	pkg.Begin = buf[0]
	offset := 1

	header, readSize, err := c.cfg.headerCodec.ParseHeader(buf[offset:checkIndex])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrHeaderParse, err)
	}
	pkg.Header = header
	// readSize counts from buf[1], so the body section starts at offset+1.
	offset = readSize

	if dataLen := header.Property.DataLength; dataLen != 0 {
		schema, ok := c.cfg.registry.Lookup(header.MsgID)
		if !ok {
			c.metrics.incUnknownMsgCount()
			c.logger.Debug("jt808: no body schema, body skipped", "msg_id", header.MsgID, "data_length", dataLen)
		} else {
			if header.Property.IsFragmented {
				if err := readFragmentPrefix(buf[:checkIndex], offset+1, &header.Property); err != nil {
					return nil, 0, fmt.Errorf("%w: %w", ErrBodyParse, err)
				}
				offset += FragmentPrefixSize
				dataLen -= FragmentPrefixSize
			}

			if dataLen > 0 {
				start, end := offset+1, offset+1+dataLen
				if end > checkIndex {
					return nil, 0, fmt.Errorf("%w: %w: body [%d, %d) runs past check code at %d",
						ErrBodyParse, ErrBodyOutOfRange, start, end, checkIndex)
				}

				b, n, err := schema.Decode(buf[start:end])
				if err != nil {
					return nil, 0, fmt.Errorf("%w: %s: %w", ErrBodyParse, schema.Name, err)
				}
				if n != dataLen {
					c.logger.Debug("jt808: body not fully consumed", "msg_id", header.MsgID, "schema", schema.Name, "consumed", n, "length", dataLen)
				}
				pkg.Body = b
			}
		}
	}

	pkg.End = buf[len(buf)-1]

	return pkg, len(buf), nil
}

// readFragmentPrefix reads the fragment count and index at buf[pos:].
func readFragmentPrefix(buf []byte, pos int, p *BodyProperty) error {
	if p.DataLength < FragmentPrefixSize || pos+FragmentPrefixSize > len(buf) {
		return fmt.Errorf("%w: fragment prefix at %d, data length %d", ErrBodyOutOfRange, pos, p.DataLength)
	}
	p.FragmentCount = binary.LittleEndian.Uint16(buf[pos:])
	p.FragmentIndex = binary.LittleEndian.Uint16(buf[pos+2:])

	return nil
}

// unescape reverses the byte stuffing of data through a pooled scratch buffer and
// returns an owned copy of the result.
func (c *Codec) unescape(data []byte) []byte {
	scratch := c.cfg.bufferPool.Get(len(data))
	defer c.cfg.bufferPool.Put(scratch)

	out, stats := appendUnescape((*scratch)[:0], data)
	*scratch = out

	if stats.unknownPairs > 0 {
		c.metrics.addLenientEscapeCount(stats.unknownPairs)
		c.logger.Warn("jt808: unrecognized escape sequence passed through",
			"count", stats.unknownPairs, "first_pos", stats.firstUnknown)
	}
	if stats.truncated {
		c.metrics.addLenientEscapeCount(1)
		c.logger.Debug("jt808: trailing escape byte dropped", "len", len(data))
	}

	return util.CloneSlice(out, 0)
}

// Encode encodes pkg into an escaped frame.
//
// Encode updates pkg in place: Header.Property.DataLength is set to the length of
// the serialized body section and CheckCode to the computed check code.
func (c *Codec) Encode(pkg *Package) ([]byte, error) {
	return c.AppendEncode(nil, pkg)
}

// AppendEncode is like Encode but appends the frame to dst.
func (c *Codec) AppendEncode(dst []byte, pkg *Package) ([]byte, error) {
	out, err := c.encode(dst, pkg)
	if err != nil {
		c.metrics.incEncodeErrCount()
		return dst, err
	}
	c.metrics.incEncodeCount()

	return out, nil
}

func (c *Codec) encode(dst []byte, pkg *Package) ([]byte, error) {
	if pkg == nil {
		return nil, ErrNilPackage
	}
	if pkg.Header == nil {
		return nil, ErrNilHeader
	}
	h := pkg.Header

	section := c.cfg.bufferPool.Get(0)
	bodySection := (*section)[:0]
	defer func() {
		*section = bodySection
		c.cfg.bufferPool.Put(section)
	}()

	if h.Property.IsFragmented {
		bodySection = binary.LittleEndian.AppendUint16(bodySection, h.Property.FragmentCount)
		bodySection = binary.LittleEndian.AppendUint16(bodySection, h.Property.FragmentIndex)
	}

	if pkg.Body != nil {
		if schema, ok := c.cfg.registry.Lookup(h.MsgID); ok {
			var err error
			bodySection, err = schema.Append(bodySection, pkg.Body)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrBodySerialize, schema.Name, err)
			}
		} else {
			c.logger.Debug("jt808: no body schema, body not encoded", "msg_id", h.MsgID)
		}
	}

	// the header carries the body length, so it is written after the body is known
	h.Property.DataLength = len(bodySection)

	frame := c.cfg.bufferPool.Get(1 + StdHeaderSize + len(bodySection) + 2)
	raw := (*frame)[:0]
	defer func() {
		*frame = raw
		c.cfg.bufferPool.Put(frame)
	}()

	raw = append(raw, pkg.Begin)

	var err error
	raw, err = c.cfg.headerCodec.AppendHeader(raw, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeaderSerialize, err)
	}

	raw = append(raw, bodySection...)

	pkg.CheckCode = ChecksumRange(raw, 1, len(raw))
	raw = append(raw, pkg.CheckCode, pkg.End)

	if dst == nil {
		dst = make([]byte, 0, EscapedLen(raw))
	}

	return Escape(dst, raw), nil
}
