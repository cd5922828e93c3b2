package format

import (
	"errors"
	"fmt"
)

var (
	// ErrLength is matched by every *LengthError.
	ErrLength = errors.New("invalid length")
	// ErrInvalidCharacter is matched by every *InvalidCharacterError.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrDecompression is matched by every *DecompressionError.
	ErrDecompression = errors.New("decompression failed")
)

// LengthError reports an input whose length is not a multiple of the size a
// codec stage requires.
type LengthError struct {
	Stage    string // codec stage that rejected the input, e.g. "z85 encode"
	Length   int    // offending length
	Multiple int    // required multiple
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: length %d is not a multiple of %d", e.Stage, e.Length, e.Multiple)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrLength
}

// InvalidCharacterError reports a byte outside the base-85 alphabet.
type InvalidCharacterError struct {
	Offset int
	Char   byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("z85 decode: invalid character %q at offset %d", e.Char, e.Offset)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// DecompressionError wraps the error returned by a decompressor that rejected
// its input.
type DecompressionError struct {
	Compression CompressionType
	Err         error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("%s decompression failed: %v", e.Compression, e.Err)
}

func (e *DecompressionError) Is(target error) bool {
	return target == ErrDecompression
}

func (e *DecompressionError) Unwrap() error {
	return e.Err
}
