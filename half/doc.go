// Package half converts between float32 and IEEE 754 binary16 (half precision).
//
// # Conversion
//
// From narrows a float32 with round-to-nearest-even on the 10-bit mantissa.
// Values whose magnitude rounds above 65504 become signed infinity, values too
// small for the smallest subnormal become signed zero, and NaN inputs stay NaN.
// Number.Float32 widens back exactly.
//
//	h := half.From(3.14159)   // 0x4248
//	f := h.Float32()          // 3.140625
//
// The narrowing is lossy: the relative error of a finite, in-range
// value is at most Epsilon/2.
//
// # Buffers
//
// Encoder and Decoder apply the conversion elementwise over byte buffers, two
// bytes per value, in the byte order of an endian.EndianEngine:
//
//	enc := half.NewEncoder(endian.GetLittleEndianEngine())
//	defer enc.Finish()
//	enc.WriteSlice(values)
//	payload := enc.Bytes()
//
//	values, err := half.Float32s(endian.GetLittleEndianEngine(), payload)
//
// # Thread Safety
//
// From, Number methods and Decoder are safe for concurrent use. An Encoder
// must not be shared between goroutines.
package half
