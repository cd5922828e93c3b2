// Package compress provides the byte-level compression stage of the f16z text
// pipeline.
//
// # Overview
//
// f16z encodes a float32 array in four steps:
//
//  1. **Narrowing**: float32 to little-endian half precision (package half)
//  2. **Compression**: this package
//  3. **Padding**: zero bytes up to a multiple of 4 (package z85)
//  4. **Transcoding**: base-85 text (package z85)
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **Zlib** (format.CompressionZlib, the default)
//
//	codec := compress.NewZlibCompressor()
//	compressed, _ := codec.Compress(data)
//	original, _ := codec.Decompress(append(compressed, 0, 0, 0))
//
// DEFLATE in an RFC 1950 wrapper, readable by any zlib inflater. The
// stream is self-terminating, so the alignment padding appended after it is
// never read. NewZlibCompressorLevel selects a level from Huffman-only (-2)
// to best compression (9).
//
// **Zstd** (format.CompressionZstd), **S2** (format.CompressionS2) and
// **LZ4** (format.CompressionLZ4)
//
// Alternatives for callers that control both ends. Their decoders reject
// trailing bytes, so the pipeline stores the compressed length in front of
// the payload. Zstd uses klauspost/compress by default and libzstd through
// valyala/gozstd when built with the cgo and gozstd tags.
//
// **NoOp** (format.CompressionNone)
//
// Passes bytes through. Useful to measure the text overhead alone.
//
// # Size Limits
//
// DecompressLimit bounds the decompressed size. Zlib stops reading once the
// limit is passed, S2 checks the decoded length stored in the block header,
// LZ4 caps its buffer growth, and the others are checked after decoding.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use. Writers, readers and
// zstd encoders/decoders are pooled with sync.Pool.
package compress
