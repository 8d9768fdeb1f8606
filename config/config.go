// Package config loads codec and logging settings from a TOML file.
//
// Example file:
//
//	[codec]
//	skip_checksum = false
//
//	[log]
//	level = "info"
//	add_source = false
//
// The environment variables JT808_SKIP_CHECKSUM and JT808_LOG_LEVEL override the
// file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arloliu/go-jt808/jt808"
	"github.com/arloliu/go-jt808/logger"
)

// Environment variables that override file settings.
const (
	EnvSkipChecksum = "JT808_SKIP_CHECKSUM"
	EnvLogLevel     = "JT808_LOG_LEVEL"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of a codec and its logger.
type Config struct {
	Codec CodecConfig `toml:"codec"`
	Log   LogConfig   `toml:"log"`
}

// CodecConfig is the [codec] section.
type CodecConfig struct {
	// SkipChecksum disables check code verification on decode.
	SkipChecksum bool `toml:"skip_checksum"`
}

// LogConfig is the [log] section.
type LogConfig struct {
	// Level is one of debug, info, warn, error, fatal.
	Level     string `toml:"level"`
	AddSource bool   `toml:"add_source"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: logger.InfoLevel.String()},
	}
}

// Load reads the TOML file at path, applies environment overrides and validates
// the result. Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	return finish(cfg, meta)
}

// Parse is like Load but reads the TOML document from data.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return finish(cfg, meta)
}

func finish(cfg Config, meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvSkipChecksum); ok {
		skip, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvSkipChecksum, v, err)
		}
		cfg.Codec.SkipChecksum = skip
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = strings.TrimSpace(v)
	}

	return nil
}

// Validate checks the configuration values.
func (cfg Config) Validate() error {
	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// NewLogger creates a logger from the [log] section.
func (cfg Config) NewLogger() (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return logger.NewSlog(level, cfg.Log.AddSource), nil
}

// CodecOptions returns the codec options described by the configuration.
// A nil l leaves the codec on the default logger.
func (cfg Config) CodecOptions(l logger.Logger) []jt808.CodecOption {
	opts := []jt808.CodecOption{jt808.WithSkipChecksum(cfg.Codec.SkipChecksum)}
	if l != nil {
		opts = append(opts, jt808.WithLogger(l))
	}

	return opts
}
