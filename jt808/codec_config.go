package jt808

import (
	"errors"

	"github.com/arloliu/go-jt808/body"
	"github.com/arloliu/go-jt808/internal/pool"
	"github.com/arloliu/go-jt808/logger"
)

// BufferPool provides scratch buffers to the codec.
//
// Implementations must be safe for concurrent use and must never hand the same
// buffer to two callers at once.
type BufferPool interface {
	// Get returns a zero-length buffer with capacity of at least minSize.
	Get(minSize int) *[]byte
	// Put returns a buffer obtained by Get.
	Put(buf *[]byte)
}

// CodecConfig holds the configuration of a Codec. It is immutable once built.
type CodecConfig struct {
	// skipChecksum disables check code verification on decode, for peers that send
	// wrong check codes.
	skipChecksum bool

	registry    *body.Registry
	headerCodec HeaderCodec
	bufferPool  BufferPool

	logger logger.Logger
}

// NewCodecConfig creates a codec configuration.
//
// Defaults: check code verified, body.DefaultRegistry, StdHeaderCodec, the process
// wide buffer pool and the default logger.
func NewCodecConfig(opts ...CodecOption) (*CodecConfig, error) {
	cfg := &CodecConfig{
		headerCodec: StdHeaderCodec{},
		bufferPool:  pool.Default(),
		logger:      logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.registry == nil {
		cfg.registry = body.DefaultRegistry()
	}

	return cfg, nil
}

// SkipChecksum returns whether check code verification is disabled.
func (cfg *CodecConfig) SkipChecksum() bool { return cfg.skipChecksum }

// Registry returns the body registry.
func (cfg *CodecConfig) Registry() *body.Registry { return cfg.registry }

// HeaderCodec returns the header codec.
func (cfg *CodecConfig) HeaderCodec() HeaderCodec { return cfg.headerCodec }

// BufferPool returns the scratch buffer pool.
func (cfg *CodecConfig) BufferPool() BufferPool { return cfg.bufferPool }

// GetLogger returns the configured logger.
func (cfg *CodecConfig) GetLogger() logger.Logger { return cfg.logger }

// CodecOption is a functional option for configuring a CodecConfig.
type CodecOption interface {
	apply(*CodecConfig) error
}

type codecOptFunc func(*CodecConfig) error

func (f codecOptFunc) apply(cfg *CodecConfig) error { return f(cfg) }

// WithSkipChecksum disables or enables check code verification on decode.
// Verification is enabled by default.
func WithSkipChecksum(skip bool) CodecOption {
	return codecOptFunc(func(cfg *CodecConfig) error {
		cfg.skipChecksum = skip
		return nil
	})
}

// WithRegistry sets the body registry.
func WithRegistry(r *body.Registry) CodecOption {
	return codecOptFunc(func(cfg *CodecConfig) error {
		if r == nil {
			return errors.New("jt808: registry must not be nil")
		}
		cfg.registry = r

		return nil
	})
}

// WithHeaderCodec sets the header codec.
func WithHeaderCodec(hc HeaderCodec) CodecOption {
	return codecOptFunc(func(cfg *CodecConfig) error {
		if hc == nil {
			return errors.New("jt808: header codec must not be nil")
		}
		cfg.headerCodec = hc

		return nil
	})
}

// WithBufferPool sets the scratch buffer pool.
func WithBufferPool(p BufferPool) CodecOption {
	return codecOptFunc(func(cfg *CodecConfig) error {
		if p == nil {
			return errors.New("jt808: buffer pool must not be nil")
		}
		cfg.bufferPool = p

		return nil
	})
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) CodecOption {
	return codecOptFunc(func(cfg *CodecConfig) error {
		if l == nil {
			return errors.New("jt808: logger must not be nil")
		}
		cfg.logger = l

		return nil
	})
}
