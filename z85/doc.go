// Package z85 implements a base-85 text encoding with a URL and JSON friendly
// alphabet.
//
// Every 4 bytes are read as a big-endian uint32 and written as 5 symbols from
// Alphabet, most significant first:
//
//	text, err := z85.Encode([]byte{0x86, 0x4F, 0xD2, 0x6F, 0xB5, 0x59, 0xF7, 0x5B}) // "HelloWorld"
//	raw, err := z85.Decode(text)
//
// Inputs must already be aligned: Encode rejects byte slices whose length is
// not a multiple of 4 and Decode rejects text whose length is not a multiple
// of 5, both with a *format.LengthError. Decode reports symbols outside the
// alphabet with a *format.InvalidCharacterError. Pad aligns arbitrary byte
// slices before encoding.
//
// The symbol lookup table is filled once at init and only read afterwards, so
// every function in this package is safe for concurrent use.
package z85
