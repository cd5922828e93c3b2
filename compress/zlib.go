package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

const (
	// ZlibMinLevel is zlib.HuffmanOnly.
	ZlibMinLevel = zlib.HuffmanOnly
	// ZlibMaxLevel is zlib.BestCompression.
	ZlibMaxLevel = zlib.BestCompression
)

// zlibWriterPools holds one writer pool per compression level, indexed by
// level - ZlibMinLevel.
var zlibWriterPools [ZlibMaxLevel - ZlibMinLevel + 1]sync.Pool

// zlibReaderPool holds readers that are Reset onto new input. It has no New
// func because zlib.NewReader needs a valid header up front.
var zlibReaderPool sync.Pool

// ZlibCompressor produces DEFLATE streams in a zlib (RFC 1950) wrapper.
//
// The stream is self-terminating: it ends with an Adler-32 trailer and the
// reader stops there, so bytes appended after a stream are never consumed.
// This is the property the text pipeline relies on to leave alignment padding
// in place.
type ZlibCompressor struct {
	level int
}

var (
	_ Codec               = (*ZlibCompressor)(nil)
	_ LimitedDecompressor = (*ZlibCompressor)(nil)
)

// NewZlibCompressor creates a zlib compressor with the default compression level.
func NewZlibCompressor() ZlibCompressor {
	return ZlibCompressor{level: zlib.DefaultCompression}
}

// NewZlibCompressorLevel creates a zlib compressor with the given level,
// from ZlibMinLevel (Huffman only) to ZlibMaxLevel (best compression).
// zlib.DefaultCompression (-1) is accepted too.
func NewZlibCompressorLevel(level int) (ZlibCompressor, error) {
	if level < ZlibMinLevel || level > ZlibMaxLevel {
		return ZlibCompressor{}, fmt.Errorf("invalid zlib compression level: %d", level)
	}

	return ZlibCompressor{level: level}, nil
}

// Level returns the compression level.
func (c ZlibCompressor) Level() int {
	return c.level
}

// Compress compresses data into a complete zlib stream.
//
// An empty input still yields a valid stream (header, empty final block and
// checksum), so Decompress of the result returns an empty payload.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(len(data)/2 + 16)

	pool := &zlibWriterPools[c.level-ZlibMinLevel]
	zw, ok := pool.Get().(*zlib.Writer)
	if ok {
		zw.Reset(&out)
	} else {
		var err error
		zw, err = zlib.NewWriterLevel(&out, c.level)
		if err != nil {
			return nil, fmt.Errorf("zlib writer: %w", err)
		}
	}
	defer pool.Put(zw)

	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return out.Bytes(), nil
}

// Decompress decompresses one zlib stream. Bytes after the end of the stream
// are ignored.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, 0)
}

// DecompressLimit is Decompress that fails with ErrSizeLimit as soon as the
// output exceeds maxSize bytes. A maxSize <= 0 disables the limit.
func (c ZlibCompressor) DecompressLimit(data []byte, maxSize int) ([]byte, error) {
	zr, err := zlibReader(data)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	defer zlibReaderPool.Put(zr)

	var src io.Reader = zr
	if maxSize > 0 {
		src = io.LimitReader(zr, int64(maxSize)+1)
	}

	var out bytes.Buffer
	out.Grow(len(data) * 2)
	if _, err := io.Copy(&out, src); err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}

	if maxSize > 0 && out.Len() > maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrSizeLimit, maxSize)
	}

	return out.Bytes(), nil
}

func zlibReader(data []byte) (io.ReadCloser, error) {
	src := bytes.NewReader(data)

	if zr, ok := zlibReaderPool.Get().(io.ReadCloser); ok {
		if err := zr.(zlib.Resetter).Reset(src, nil); err != nil {
			zlibReaderPool.Put(zr)
			return nil, err
		}

		return zr, nil
	}

	return zlib.NewReader(src)
}
