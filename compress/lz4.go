package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxBlockSize bounds the decode buffer when the caller sets no limit.
const lz4MaxBlockSize = 128 * 1024 * 1024

// lz4CompressorPool pools lz4.Compressor instances for reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor wraps LZ4 block compression. The block format carries no
// decoded length, so decoding grows its buffer until the block fits.
type LZ4Compressor struct{}

var (
	_ Codec               = (*LZ4Compressor)(nil)
	_ LimitedDecompressor = (*LZ4Compressor)(nil)
)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 block compression.
//
// Returns nil for an empty input.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decompresses the input data using LZ4 block decompression.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, 0)
}

// DecompressLimit decodes with an adaptive buffer:
//  1. Start with a buffer 4x the compressed size
//  2. On lz4.ErrInvalidSourceShortBuffer, double the buffer up to the limit
//  3. Fail with ErrSizeLimit once the limit is reached
//
// A maxSize <= 0 uses a 128MiB limit.
func (c LZ4Compressor) DecompressLimit(data []byte, maxSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	limit := lz4MaxBlockSize
	if maxSize > 0 {
		limit = maxSize
	}

	bufSize := min(len(data)*4, limit)
	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}

		if bufSize >= limit {
			return nil, fmt.Errorf("%w: more than %d bytes", ErrSizeLimit, limit)
		}
		bufSize = min(bufSize*2, limit)
	}
}
