package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor wraps S2 block compression. Blocks are not self-terminating:
// the decoder rejects any byte after the block.
type S2Compressor struct{}

var (
	_ Codec               = (*S2Compressor)(nil)
	_ LimitedDecompressor = (*S2Compressor)(nil)
)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, 0)
}

// DecompressLimit reads the decoded length from the block header and fails
// with ErrSizeLimit before allocating when it exceeds maxSize.
func (c S2Compressor) DecompressLimit(data []byte, maxSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	if maxSize > 0 && n > maxSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrSizeLimit, n, maxSize)
	}

	out, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
