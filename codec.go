package f16z

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/arloliu/f16z/compress"
	"github.com/arloliu/f16z/endian"
	"github.com/arloliu/f16z/format"
	"github.com/arloliu/f16z/half"
	"github.com/arloliu/f16z/internal/options"
	"github.com/arloliu/f16z/internal/pool"
	"github.com/arloliu/f16z/z85"
)

// frameHeaderSize is the big-endian length prefix written in front of
// payloads whose compression format is not self-terminating.
const frameHeaderSize = 4

var errInvalidFrame = errors.New("invalid payload frame")

// Codec converts float32 arrays to base-85 text and back.
//
// A Codec is immutable once created and safe for concurrent use.
type Codec struct {
	compression format.CompressionType
	codec       compress.Codec
	maxDecoded  int
	halfEngine  endian.EndianEngine
	frameEngine endian.EndianEngine
}

// Stats describes the stages of one Encode.
type Stats struct {
	// Count is the number of float32 values encoded.
	Count int
	// RawSize is the half-precision payload size in bytes.
	RawSize int
	// PaddedSize is the size handed to the text stage, after framing and padding.
	PaddedSize int
	// TextSize is the length of the encoded text.
	TextSize int
	// Compression describes the compression stage.
	Compression compress.CompressionStats
}

// BytesPerValue returns the encoded text length per value, 0 for no values.
func (s Stats) BytesPerValue() float64 {
	if s.Count == 0 {
		return 0
	}

	return float64(s.TextSize) / float64(s.Count)
}

// SizeRatio returns the text length relative to the raw float32 size, 0 for no values.
func (s Stats) SizeRatio() float64 {
	if s.Count == 0 {
		return 0
	}

	return float64(s.TextSize) / float64(s.Count*4)
}

// NewCodec creates a Codec. Without options it uses zlib at the default level.
// Such a codec decodes text from any zlib based encoder of the format, and
// its own text decodes with any zlib inflater, although the compressed bytes
// may differ from those of another zlib implementation.
func NewCodec(opts ...CodecOption) (*Codec, error) {
	cfg := newCodecConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var (
		codec compress.Codec
		err   error
	)
	if cfg.compression == format.CompressionZlib {
		codec, err = compress.NewZlibCompressorLevel(cfg.level)
	} else {
		codec, err = compress.CreateCodec(cfg.compression, "payload")
	}
	if err != nil {
		return nil, err
	}

	return &Codec{
		compression: cfg.compression,
		codec:       codec,
		maxDecoded:  cfg.maxDecoded,
		halfEngine:  endian.GetLittleEndianEngine(),
		frameEngine: endian.GetBigEndianEngine(),
	}, nil
}

// Compression returns the compression type of the codec.
func (c *Codec) Compression() format.CompressionType {
	return c.compression
}

// Level returns the zlib compression level. Codecs that do not use zlib
// report -1, the same as the default level.
func (c *Codec) Level() int {
	if z, ok := c.codec.(compress.ZlibCompressor); ok {
		return z.Level()
	}

	return -1
}

// Encode converts values to text.
//
// Values are narrowed to half precision, so Decode returns approximations;
// magnitudes above 65504 come back as signed infinity. An empty input yields
// a short non-empty text that decodes to an empty slice.
func (c *Codec) Encode(values []float32) (string, error) {
	text, _, err := c.encode(values, false)
	return text, err
}

// EncodeWithStats is Encode that also reports the size of every stage.
func (c *Codec) EncodeWithStats(values []float32) (string, Stats, error) {
	return c.encode(values, true)
}

func (c *Codec) encode(values []float32, withStats bool) (string, Stats, error) {
	enc := half.NewEncoder(c.halfEngine)
	defer enc.Finish()
	enc.WriteSlice(values)
	raw := enc.Bytes()

	var start time.Time
	if withStats {
		start = time.Now()
	}

	compressed, err := c.codec.Compress(raw)
	if err != nil {
		return "", Stats{}, fmt.Errorf("f16z encode: %w", err)
	}

	var elapsed time.Duration
	if withStats {
		elapsed = time.Since(start)
	}

	var padded []byte
	if c.compression.SelfTerminating() {
		padded = z85.Pad(compressed)
	} else {
		if uint64(len(compressed)) > math.MaxUint32 {
			return "", Stats{}, fmt.Errorf("f16z encode: compressed payload of %d bytes is too large", len(compressed))
		}

		frame := pool.GetFrameBuffer()
		defer pool.PutFrameBuffer(frame)

		frame.B = c.frameEngine.AppendUint32(frame.B, uint32(len(compressed)))
		frame.B = append(frame.B, compressed...)
		frame.ExtendOrGrow(z85.PadLen(frame.Len()) - frame.Len())
		padded = frame.Bytes()
	}

	text, err := z85.Encode(padded)
	if err != nil {
		return "", Stats{}, fmt.Errorf("f16z encode: %w", err)
	}

	if !withStats {
		return text, Stats{}, nil
	}

	return text, Stats{
		Count:      len(values),
		RawSize:    len(raw),
		PaddedSize: len(padded),
		TextSize:   len(text),
		Compression: compress.CompressionStats{
			Algorithm:         c.compression,
			OriginalSize:      int64(len(raw)),
			CompressedSize:    int64(len(compressed)),
			CompressionTimeNs: elapsed.Nanoseconds(),
		},
	}, nil
}

// Decode converts text produced by Encode back to float32 values.
//
// Errors:
//   - *format.LengthError: len(text) is not a multiple of 5, or the
//     decompressed payload has an odd byte count
//   - *format.InvalidCharacterError: text holds a symbol outside z85.Alphabet
//   - *format.DecompressionError: the payload is not a valid compressed
//     stream, or it decompresses past the configured size limit
//
// The result is never nil on success.
func (c *Codec) Decode(text string) ([]float32, error) {
	padded, err := z85.Decode(text)
	if err != nil {
		return nil, err
	}

	payload, err := c.unframe(padded)
	if err != nil {
		return nil, &format.DecompressionError{Compression: c.compression, Err: err}
	}

	raw, err := compress.DecompressLimit(c.codec, payload, c.maxDecoded)
	if err != nil {
		return nil, &format.DecompressionError{Compression: c.compression, Err: err}
	}

	values, err := half.Float32s(c.halfEngine, raw)
	if err != nil {
		return nil, err
	}

	return values, nil
}

// unframe returns the compressed payload inside padded. Self-terminating
// payloads are returned with their padding; the decompressor stops before it.
func (c *Codec) unframe(padded []byte) ([]byte, error) {
	if c.compression.SelfTerminating() {
		return padded, nil
	}

	if len(padded) < frameHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the frame header", errInvalidFrame, len(padded))
	}

	n := uint64(c.frameEngine.Uint32(padded[:frameHeaderSize]))
	if n > uint64(len(padded)-frameHeaderSize) || z85.PadLen(frameHeaderSize+int(n)) != len(padded) {
		return nil, fmt.Errorf("%w: length %d does not match %d padded bytes", errInvalidFrame, n, len(padded))
	}

	return padded[frameHeaderSize : frameHeaderSize+int(n)], nil
}
