package z85

// PadLen returns n rounded up to a multiple of WordSize.
func PadLen(n int) int {
	return (n + WordSize - 1) / WordSize * WordSize
}

// Pad returns b extended with zero bytes to a multiple of WordSize.
//
// An aligned b is returned as is; otherwise the result is a new buffer and b
// is left untouched. Decoding never strips the padding: the payload format
// behind it has to mark its own end.
func Pad(b []byte) []byte {
	if len(b)%WordSize == 0 {
		return b
	}

	padded := make([]byte, PadLen(len(b)))
	copy(padded, b)

	return padded
}
