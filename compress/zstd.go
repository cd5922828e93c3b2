package compress

// ZstdCompressor provides Zstandard compression.
//
// Zstd favours ratio over speed. Its frames are not treated as
// self-terminating by the text pipeline, which frames the payload with its
// length instead.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
