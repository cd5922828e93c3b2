package z85

import (
	"slices"

	"github.com/arloliu/f16z/endian"
	"github.com/arloliu/f16z/format"
)

// Alphabet lists the 85 symbols in value order.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ.-:+_^!/*?=<>()[]{}@|$#"

const (
	// WordSize is the number of raw bytes in one group.
	WordSize = 4
	// GroupSize is the number of symbols one group encodes to.
	GroupSize = 5

	radix   = 85
	invalid = 0xFF
)

// pow85[k] is 85^(4-k), the divisor for the k-th symbol of a group.
var pow85 = [GroupSize]uint32{radix * radix * radix * radix, radix * radix * radix, radix * radix, radix, 1}

// decodeMap maps a symbol to its value, or to invalid. Written only by init.
var decodeMap [256]byte

var wordEngine = endian.GetBigEndianEngine()

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalid
	}
	for i := range len(Alphabet) {
		decodeMap[Alphabet[i]] = byte(i)
	}
}

// EncodedLen returns the length of the encoding of n bytes, n a multiple of 4.
func EncodedLen(n int) int {
	return n / WordSize * GroupSize
}

// DecodedLen returns the length of the decoding of n symbols, n a multiple of 5.
func DecodedLen(n int) int {
	return n / GroupSize * WordSize
}

// Encode returns the base-85 text of src.
//
// It fails with a *format.LengthError if len(src) is not a multiple of 4.
func Encode(src []byte) (string, error) {
	dst, err := AppendEncode(make([]byte, 0, EncodedLen(len(src))), src)
	if err != nil {
		return "", err
	}

	return string(dst), nil
}

// AppendEncode appends the base-85 text of src to dst and returns the extended
// buffer. On error dst is returned unchanged.
func AppendEncode(dst, src []byte) ([]byte, error) {
	if len(src)%WordSize != 0 {
		return dst, &format.LengthError{Stage: "z85 encode", Length: len(src), Multiple: WordSize}
	}

	dst = slices.Grow(dst, EncodedLen(len(src)))
	for i := 0; i < len(src); i += WordSize {
		value := wordEngine.Uint32(src[i : i+WordSize])
		for _, div := range pow85 {
			dst = append(dst, Alphabet[value/div%radix])
		}
	}

	return dst, nil
}

// Decode returns the bytes represented by the base-85 text s.
//
// It fails with a *format.LengthError if len(s) is not a multiple of 5, and
// with a *format.InvalidCharacterError if s holds a byte outside Alphabet.
func Decode(s string) ([]byte, error) {
	dst, err := AppendDecode(make([]byte, 0, DecodedLen(len(s))), s)
	if err != nil {
		return nil, err
	}

	return dst, nil
}

// AppendDecode appends the bytes represented by s to dst and returns the
// extended buffer. On error dst is returned unchanged.
//
// Groups are accumulated on a uint32 with wraparound, so groups above
// "|nSc0" (0xFFFFFFFF) silently overflow instead of failing.
func AppendDecode(dst []byte, s string) ([]byte, error) {
	if len(s)%GroupSize != 0 {
		return dst, &format.LengthError{Stage: "z85 decode", Length: len(s), Multiple: GroupSize}
	}

	start := len(dst)
	dst = slices.Grow(dst, DecodedLen(len(s)))
	for i := 0; i < len(s); i += GroupSize {
		var value uint32
		for j := i; j < i+GroupSize; j++ {
			digit := decodeMap[s[j]]
			if digit == invalid {
				return dst[:start], &format.InvalidCharacterError{Offset: j, Char: s[j]}
			}
			value = value*radix + uint32(digit)
		}
		dst = wordEngine.AppendUint32(dst, value)
	}

	return dst, nil
}

// ValidString reports whether s has a valid length and only alphabet symbols.
func ValidString(s string) bool {
	if len(s)%GroupSize != 0 {
		return false
	}

	for i := range len(s) {
		if decodeMap[s[i]] == invalid {
			return false
		}
	}

	return true
}
