package f16z

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arloliu/f16z/compress"
	"github.com/arloliu/f16z/format"
	"github.com/arloliu/f16z/internal/options"
)

// DefaultMaxDecodedSize bounds the decompressed payload of a single Decode,
// 32M half-precision values.
const DefaultMaxDecodedSize = 64 * 1024 * 1024

// defaultLevel is zlib.DefaultCompression.
const defaultLevel = -1

// CodecConfig collects the settings applied by CodecOption values.
type CodecConfig struct {
	compression format.CompressionType
	level       int
	maxDecoded  int
}

// CodecOption represents a functional option for configuring a Codec.
type CodecOption = options.Option[*CodecConfig]

func newCodecConfig() *CodecConfig {
	return &CodecConfig{
		compression: format.CompressionZlib,
		level:       defaultLevel,
		maxDecoded:  DefaultMaxDecodedSize,
	}
}

func (c *CodecConfig) validate() error {
	if c.level != defaultLevel && c.compression != format.CompressionZlib {
		return fmt.Errorf("compression level is only supported for zlib, not %s", strings.ToLower(c.compression.String()))
	}

	return nil
}

// WithCompression selects the compression stage.
//
// format.CompressionZlib is the default and the only type whose output is
// compatible with other implementations of the format. Text produced with any
// other type must be decoded by a Codec configured with the same type.
func WithCompression(comp format.CompressionType) CodecOption {
	return options.New(func(c *CodecConfig) error {
		switch comp {
		case format.CompressionZlib, format.CompressionZstd, format.CompressionS2,
			format.CompressionLZ4, format.CompressionNone:
			c.compression = comp
			return nil
		default:
			return fmt.Errorf("invalid compression: %s", comp)
		}
	})
}

// WithCompressionLevel sets the zlib level, -2 (Huffman only) to 9 (best).
// -1 selects the library default.
func WithCompressionLevel(level int) CodecOption {
	return options.New(func(c *CodecConfig) error {
		if level < compress.ZlibMinLevel || level > compress.ZlibMaxLevel {
			return fmt.Errorf("invalid compression level: %d", level)
		}
		c.level = level

		return nil
	})
}

// WithMaxDecodedSize bounds the decompressed size accepted by Decode, in
// bytes. Zero disables the limit.
func WithMaxDecodedSize(n int) CodecOption {
	return options.New(func(c *CodecConfig) error {
		if n < 0 {
			return errors.New("max decoded size cannot be negative")
		}
		c.maxDecoded = n

		return nil
	})
}
