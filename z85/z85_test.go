package z85

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/arloliu/f16z/format"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	require.Len(t, Alphabet, radix)

	seen := make(map[rune]bool)
	for _, c := range Alphabet {
		require.False(t, seen[c], "duplicate symbol %q", c)
		seen[c] = true
	}

	for i := range len(Alphabet) {
		require.Equal(t, byte(i), decodeMap[Alphabet[i]])
	}
	require.Equal(t, byte(invalid), decodeMap[' '])
	require.Equal(t, byte(invalid), decodeMap['%'])
	require.Equal(t, byte(invalid), decodeMap['&'])
	require.Equal(t, byte(invalid), decodeMap['"'])
	require.Equal(t, byte(invalid), decodeMap['\\'])
}

func TestEncode_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"zero word", []byte{0, 0, 0, 0}, "00000"},
		{"one", []byte{0, 0, 0, 1}, "00001"},
		{"max word", []byte{0xFF, 0xFF, 0xFF, 0xFF}, "|nSc0"},
		{"counting", []byte{1, 2, 3, 4}, "0rJua"},
		{"hello world", []byte{0x86, 0x4F, 0xD2, 0x6F, 0xB5, 0x59, 0xF7, 0x5B}, "HelloWorld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			back, err := Decode(got)
			require.NoError(t, err)
			require.Equal(t, len(tt.in), len(back))
			if len(tt.in) > 0 {
				require.Equal(t, tt.in, back)
			}
		})
	}
}

func TestEncode_LengthError(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 7} {
		_, err := Encode(make([]byte, n))
		require.ErrorIs(t, err, format.ErrLength)

		var lengthErr *format.LengthError
		require.ErrorAs(t, err, &lengthErr)
		require.Equal(t, n, lengthErr.Length)
		require.Equal(t, WordSize, lengthErr.Multiple)
	}
}

func TestDecode_LengthError(t *testing.T) {
	for _, s := range []string{"0", "0000", "000000", "000000000"} {
		out, err := Decode(s)
		require.ErrorIs(t, err, format.ErrLength)
		require.Nil(t, out)

		var lengthErr *format.LengthError
		require.ErrorAs(t, err, &lengthErr)
		require.Equal(t, GroupSize, lengthErr.Multiple)
	}
}

func TestDecode_InvalidCharacter(t *testing.T) {
	tests := []struct {
		in     string
		offset int
		char   byte
	}{
		{"0000 ", 4, ' '},
		{" 0000", 0, ' '},
		{"00000abc%e", 8, '%'},
		{"ab\x00cd", 2, 0},
		{"abcd\xff", 4, 0xff},
	}

	for _, tt := range tests {
		out, err := Decode(tt.in)
		require.ErrorIs(t, err, format.ErrInvalidCharacter)
		require.Nil(t, out)

		var charErr *format.InvalidCharacterError
		require.ErrorAs(t, err, &charErr)
		require.Equal(t, tt.offset, charErr.Offset)
		require.Equal(t, tt.char, charErr.Char)
	}
}

func TestDecode_Wraparound(t *testing.T) {
	// 85^5-1 does not fit in 32 bits and wraps modulo 2^32
	got, err := Decode("#####")
	require.NoError(t, err)
	require.Equal(t, []byte{0x08, 0x78, 0x0e, 0xc4}, got)

	got, err = Decode("|nSc1")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, got)
}

func TestAppendEncode_KeepsPrefix(t *testing.T) {
	dst := []byte("prefix:")
	dst, err := AppendEncode(dst, []byte{0, 0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, "prefix:00001", string(dst))

	dst, err = AppendEncode(dst, []byte{1})
	require.Error(t, err)
	require.Equal(t, "prefix:00001", string(dst))
}

func TestAppendDecode_KeepsPrefixOnError(t *testing.T) {
	dst := []byte{0xAA}
	dst, err := AppendDecode(dst, "00001")
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0, 0, 0, 1}, dst)

	dst, err = AppendDecode(dst, "0000100 01")
	require.ErrorIs(t, err, format.ErrInvalidCharacter)
	require.Equal(t, []byte{0xAA, 0, 0, 0, 1}, dst)
}

func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for range 200 {
		buf := make([]byte, rng.Intn(64)*WordSize)
		rng.Read(buf)

		text, err := Encode(buf)
		require.NoError(t, err)
		require.Len(t, text, EncodedLen(len(buf)))
		require.True(t, ValidString(text))

		back, err := Decode(text)
		require.NoError(t, err)
		require.True(t, bytes.Equal(buf, back))
	}
}

func TestRoundTrip_TextFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for range 200 {
		var sb strings.Builder
		groups := rng.Intn(32)
		for range groups {
			// stay at or below "|nSc0" so the group fits in 32 bits
			value := rng.Uint32()
			for _, div := range pow85 {
				sb.WriteByte(Alphabet[value/div%radix])
			}
		}

		text := sb.String()
		raw, err := Decode(text)
		require.NoError(t, err)

		again, err := Encode(raw)
		require.NoError(t, err)
		require.Equal(t, text, again)
	}
}

func TestEncodedDecodedLen(t *testing.T) {
	require.Equal(t, 0, EncodedLen(0))
	require.Equal(t, 5, EncodedLen(4))
	require.Equal(t, 40, EncodedLen(32))
	require.Equal(t, 0, DecodedLen(0))
	require.Equal(t, 4, DecodedLen(5))
	require.Equal(t, 32, DecodedLen(40))
}

func TestValidString(t *testing.T) {
	require.True(t, ValidString(""))
	require.True(t, ValidString("HelloWorld"))
	require.True(t, ValidString(".-:+_^!/*?=<>()[]{}@|$#00"))
	require.False(t, ValidString("Hello"+"Worl"))
	require.False(t, ValidString("Hello Worl"))
}

func TestURLAndJSONSafe(t *testing.T) {
	for i := range len(Alphabet) {
		c := Alphabet[i]
		require.NotContains(t, "\"\\ %&", string(c), "symbol %q needs escaping", c)
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 1, 2, 3, 4})

	f.Fuzz(func(t *testing.T, data []byte) {
		data = data[:len(data)/WordSize*WordSize]

		text, err := Encode(data)
		if err != nil {
			t.Fatal(err)
		}
		if len(text)%GroupSize != 0 {
			t.Fatalf("encoded length %d is not a multiple of %d", len(text), GroupSize)
		}

		back, err := Decode(text)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, back) {
			t.Fatalf("round trip mismatch: %x != %x", data, back)
		}
	})
}

func FuzzDecode(f *testing.F) {
	f.Add("00000")
	f.Add("HelloWorld")
	f.Add("#####")

	f.Fuzz(func(t *testing.T, s string) {
		raw, err := Decode(s)
		if err != nil {
			if ValidString(s) {
				t.Fatalf("valid string %q failed: %v", s, err)
			}

			return
		}
		if len(raw) != DecodedLen(len(s)) {
			t.Fatalf("decoded %d bytes from %d symbols", len(raw), len(s))
		}
	})
}

func BenchmarkEncode(b *testing.B) {
	buf := make([]byte, 4096)
	rand.New(rand.NewSource(3)).Read(buf)

	b.ReportAllocs()
	b.SetBytes(int64(len(buf)))
	for b.Loop() {
		_, _ = Encode(buf)
	}
}

func BenchmarkDecode(b *testing.B) {
	buf := make([]byte, 4096)
	rand.New(rand.NewSource(4)).Read(buf)
	text, _ := Encode(buf)

	b.ReportAllocs()
	b.SetBytes(int64(len(buf)))
	for b.Loop() {
		_, _ = Decode(text)
	}
}
