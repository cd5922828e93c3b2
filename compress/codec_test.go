package compress

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/arloliu/f16z/format"
	"github.com/stretchr/testify/require"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZlib,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// halfPayload builds little-endian half-precision words of a slow sine wave,
// the kind of payload the text pipeline compresses.
func halfPayload(count int) []byte {
	payload := make([]byte, 0, count*2)
	for i := range count {
		v := uint16(0x3c00 + int(512*math.Sin(float64(i)/32)))
		payload = binary.LittleEndian.AppendUint16(payload, v)
	}

	return payload
}

func TestCodecs_RoundTrip(t *testing.T) {
	payloadSizes := []int{1, 16, 512, 4096, 32768}

	for _, size := range payloadSizes {
		for _, ct := range allTypes {
			t.Run(fmt.Sprintf("values_%d_compression_%s", size, ct), func(t *testing.T) {
				codec, err := CreateCodec(ct, "test")
				require.NoError(t, err)

				payload := halfPayload(size)
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, decompressed)
			})
		}
	}
}

func TestCodecs_CompressDoesNotModifyInput(t *testing.T) {
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "test")
			require.NoError(t, err)

			payload := halfPayload(256)
			original := bytes.Clone(payload)

			_, err = codec.Compress(payload)
			require.NoError(t, err)
			require.Equal(t, original, payload)
		})
	}
}

func TestZlibCompressor_EmptyInput(t *testing.T) {
	codec := NewZlibCompressor()

	compressed, err := codec.Compress(nil)
	require.NoError(t, err)
	require.NotEmpty(t, compressed, "an empty payload still has a zlib header and trailer")

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Empty(t, decompressed)
}

func TestZlibCompressor_IgnoresTrailingPadding(t *testing.T) {
	codec := NewZlibCompressor()
	payload := halfPayload(1000)

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)

	for pad := 1; pad <= 3; pad++ {
		padded := append(bytes.Clone(compressed), make([]byte, pad)...)

		decompressed, err := codec.Decompress(padded)
		require.NoError(t, err, "pad=%d", pad)
		require.Equal(t, payload, decompressed)
	}
}

func TestZlibCompressor_Header(t *testing.T) {
	compressed, err := NewZlibCompressor().Compress([]byte("f16z"))
	require.NoError(t, err)

	// CMF/FLG pair: deflate method, header checksum divisible by 31
	require.Equal(t, byte(0x08), compressed[0]&0x0f)
	require.Zero(t, binary.BigEndian.Uint16(compressed[:2])%31)
}

func TestZlibCompressor_Levels(t *testing.T) {
	payload := halfPayload(4096)

	for level := ZlibMinLevel; level <= ZlibMaxLevel; level++ {
		t.Run(fmt.Sprintf("level_%d", level), func(t *testing.T) {
			codec, err := NewZlibCompressorLevel(level)
			require.NoError(t, err)
			require.Equal(t, level, codec.Level())

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := NewZlibCompressor().Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}

	_, err := NewZlibCompressorLevel(10)
	require.Error(t, err)
	_, err = NewZlibCompressorLevel(-3)
	require.Error(t, err)
}

func TestZlibCompressor_Corrupt(t *testing.T) {
	codec := NewZlibCompressor()

	compressed, err := codec.Compress(halfPayload(512))
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad header", []byte{0x00, 0x00, 0x00, 0x00}},
		{"truncated", compressed[:len(compressed)/2]},
		{"bad checksum", func() []byte {
			c := bytes.Clone(compressed)
			c[len(c)-1] ^= 0xFF
			return c
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decompress(tt.data)
			require.Error(t, err)
		})
	}

	// pooled readers must recover after errors
	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, halfPayload(512), decompressed)
}

func TestCodecs_CorruptInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0xff, 0xff, 0xff, 0xff}

	for _, ct := range []format.CompressionType{format.CompressionZlib, format.CompressionZstd, format.CompressionS2} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "test")
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestDecompressLimit(t *testing.T) {
	payload := halfPayload(8192) // 16KiB

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "test")
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			out, err := DecompressLimit(codec, compressed, len(payload))
			require.NoError(t, err)
			require.Equal(t, payload, out)

			out, err = DecompressLimit(codec, compressed, 0)
			require.NoError(t, err)
			require.Equal(t, payload, out)

			_, err = DecompressLimit(codec, compressed, len(payload)-1)
			require.ErrorIs(t, err, ErrSizeLimit)
		})
	}
}

func TestLZ4Compressor_GrowsBuffer(t *testing.T) {
	// highly repetitive input expands far beyond 4x its compressed size
	payload := bytes.Repeat([]byte{0x00, 0x3c}, 64*1024)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(payload))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestEmptyInput_FramedCodecs(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := CreateCodec(ct, "test")
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Nil(t, compressed)

		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Nil(t, decompressed)
	}
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	compressor := NewNoOpCompressor()
	data := []byte{1, 2, 3, 4}

	compressed, err := compressor.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])

	decompressed, err := compressor.Decompress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &decompressed[0])
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := CreateCodec(ct, "payload")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xFF), "payload")
	require.ErrorContains(t, err, "invalid payload compression")
}

func TestCreateCodec_DefaultZlibLevel(t *testing.T) {
	codec, err := CreateCodec(format.CompressionZlib, "test")
	require.NoError(t, err)
	require.IsType(t, ZlibCompressor{}, codec)
	require.Equal(t, -1, codec.(ZlibCompressor).Level())

	_, err = CreateCodec(format.CompressionType(0), "test")
	require.ErrorContains(t, err, "invalid test compression")
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name            string
		stats           CompressionStats
		expectedRatio   float64
		expectedSavings float64
	}{
		{
			name: "good compression",
			stats: CompressionStats{
				Algorithm:      format.CompressionZlib,
				OriginalSize:   1000,
				CompressedSize: 300,
			},
			expectedRatio:   0.3,
			expectedSavings: 70.0,
		},
		{
			name: "no compression benefit",
			stats: CompressionStats{
				Algorithm:      format.CompressionNone,
				OriginalSize:   500,
				CompressedSize: 500,
			},
			expectedRatio:   1.0,
			expectedSavings: 0.0,
		},
		{
			name: "compression overhead",
			stats: CompressionStats{
				Algorithm:      format.CompressionZlib,
				OriginalSize:   2,
				CompressedSize: 10,
			},
			expectedRatio:   5.0,
			expectedSavings: -400.0,
		},
		{
			name: "zero original size",
			stats: CompressionStats{
				Algorithm:      format.CompressionZlib,
				OriginalSize:   0,
				CompressedSize: 8,
			},
			expectedRatio:   0.0,
			expectedSavings: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expectedRatio, tt.stats.CompressionRatio(), 0.001)
			require.InDelta(t, tt.expectedSavings, tt.stats.SpaceSavings(), 0.001)
		})
	}
}

func BenchmarkCompress(b *testing.B) {
	payload := halfPayload(4096)

	for _, ct := range allTypes {
		codec, _ := CreateCodec(ct, "test")
		b.Run(ct.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	payload := halfPayload(4096)

	for _, ct := range allTypes {
		codec, _ := CreateCodec(ct, "test")
		compressed, _ := codec.Compress(payload)
		b.Run(ct.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}
