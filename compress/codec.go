package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/f16z/format"
)

// ErrSizeLimit is returned when a decompressed payload would exceed the
// caller's size limit.
var ErrSizeLimit = errors.New("decompressed size exceeds limit")

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor provides decompression of payloads produced by the matching
// Compressor.
//
// Example:
//
//	decompressor := NewZlibCompressor()
//	original, err := decompressor.Decompress(compressed)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or invalid
	//   - Returns error if data was compressed with incompatible algorithm
	//
	// Memory management:
	//   - Returned slice is owned by the caller
	//   - Input slice is not modified
	Decompress(data []byte) ([]byte, error)
}

// LimitedDecompressor is implemented by decompressors that can stop as soon
// as the output grows past maxSize instead of materializing it first.
type LimitedDecompressor interface {
	DecompressLimit(data []byte, maxSize int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// DecompressLimit decompresses data with d and fails with ErrSizeLimit when
// the result is larger than maxSize bytes. A maxSize <= 0 disables the check.
func DecompressLimit(d Decompressor, data []byte, maxSize int) ([]byte, error) {
	if maxSize <= 0 {
		return d.Decompress(data)
	}

	if ld, ok := d.(LimitedDecompressor); ok {
		return ld.DecompressLimit(data, maxSize)
	}

	out, err := d.Decompress(data)
	if err != nil {
		return nil, err
	}

	if len(out) > maxSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrSizeLimit, len(out), maxSize)
	}

	return out, nil
}

// CompressionStats describes a single compression operation.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
// Returns 0.0 if the original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zlib, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZlib:
		return NewZlibCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}
