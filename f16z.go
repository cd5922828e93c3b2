// Package f16z encodes float32 arrays as compact, URL and JSON safe text.
//
// Values are narrowed to IEEE 754 half precision, stored little-endian,
// compressed with zlib (DEFLATE in an RFC 1950 wrapper), zero padded to a
// multiple of 4 bytes and written as base-85 text. Decoding reverses every
// step. With the default configuration Decode reads text from any zlib based
// encoder of the format, such as the JavaScript ones built on pako, and pako's
// inflate reads the text Encode writes. The two encoders may choose different
// DEFLATE blocks, so equal arrays do not always produce equal text.
//
// # Basic Usage
//
//	text, err := f16z.Encode([]float32{0, 1, -1, 3.14159})
//	if err != nil {
//	    return err
//	}
//
//	values, err := f16z.Decode(text)
//	// values == []float32{0, 1, -1, 3.140625}
//
// Precision is that of half floats: about three significant decimal digits,
// magnitudes up to 65504, and signed infinity beyond.
//
// # Custom Codecs
//
// NewCodec accepts functional options for the compression stage and the
// decoded size limit:
//
//	codec, err := f16z.NewCodec(
//	    f16z.WithCompressionLevel(9),
//	    f16z.WithMaxDecodedSize(1 << 20),
//	)
//
// Compression types other than format.CompressionZlib produce text that only
// a Codec with the same compression type can read.
//
// # Errors
//
// Decode failures are typed values from the format package and match the
// sentinels format.ErrLength, format.ErrInvalidCharacter and
// format.ErrDecompression with errors.Is.
//
// # Package Structure
//
// The stages live in their own packages: half (precision narrowing), compress
// (byte compression) and z85 (padding and base-85 text). This package wires
// them together.
package f16z

import (
	"github.com/arloliu/f16z/internal/hash"
)

var defaultCodec = mustCodec(NewCodec())

func mustCodec(c *Codec, err error) *Codec {
	if err != nil {
		panic(err)
	}

	return c
}

// Encode converts values to text with the default codec: zlib at the default
// level.
//
// Example:
//
//	text, err := f16z.Encode([]float32{1.5, 2.25})
func Encode(values []float32) (string, error) {
	return defaultCodec.Encode(values)
}

// Decode converts text produced by Encode, or by any compatible encoder using
// the default configuration, back to float32 values.
//
// See Codec.Decode for the error types.
func Decode(text string) ([]float32, error) {
	return defaultCodec.Decode(text)
}

// ID returns the 64-bit xxHash of an encoded text.
//
// Equal arrays encoded with the same codec have equal IDs, so the ID can key
// caches of decoded values.
func ID(text string) uint64 {
	return hash.ID(text)
}
