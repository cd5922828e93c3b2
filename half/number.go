package half

import "math"

// Number is an IEEE 754 binary16 value: 1 sign bit, 5 exponent bits (bias 15)
// and 10 mantissa bits.
type Number uint16

const (
	signMask     = 0x8000
	expMask      = 0x7c00
	mantMask     = 0x03ff
	quietNaNBit  = 0x0200
	mantBits     = 10
	expBias      = 15
	maxBiasedExp = 0x1f

	f32MantBits = 23
	f32ExpBias  = 127
	f32MantMask = 0x007fffff
	f32Hidden   = 0x00800000

	// f32 mantissa bits dropped when narrowing to a half mantissa.
	narrowShift = f32MantBits - mantBits
)

const (
	// MaxValue is the largest finite half-precision value.
	MaxValue = 65504.0
	// SmallestNormal is the smallest positive normal half-precision value, 2^-14.
	SmallestNormal = 6.103515625e-05
	// SmallestSubnormal is the smallest positive half-precision value, 2^-24.
	SmallestSubnormal = 5.960464477539063e-08
	// Epsilon is the gap between 1 and the next half-precision value, 2^-10.
	// Round-to-nearest keeps the relative error within Epsilon/2.
	Epsilon = 0.0009765625
)

// From converts f to the nearest half-precision value, rounding ties to even.
//
// Magnitudes that round above MaxValue become signed infinity, magnitudes
// below half of SmallestSubnormal become signed zero, and NaN stays NaN.
func From(f float32) Number {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & signMask
	exp := int(bits>>f32MantBits) & 0xff
	mant := bits & f32MantMask

	if exp == 0xff {
		if mant == 0 {
			return Number(sign | expMask)
		}
		// keep the top payload bits and force the quiet bit so the result
		// cannot collapse into an infinity pattern
		return Number(sign | expMask | quietNaNBit | uint16(mant>>narrowShift))
	}

	e := exp - f32ExpBias + expBias
	if e >= maxBiasedExp {
		return Number(sign | expMask)
	}

	if e <= 0 {
		// below 2^-25 everything rounds to zero; float32 subnormals land here too
		if e < -mantBits {
			return Number(sign)
		}

		m := mant | f32Hidden
		shift := uint(narrowShift + 1 - e)

		return Number(sign | uint16(roundShift(m, shift)))
	}

	h := uint32(e)<<mantBits + roundShift(mant, narrowShift)
	// a rounding carry may ripple into the exponent field
	if h >= expMask {
		return Number(sign | expMask)
	}

	return Number(sign | uint16(h))
}

// roundShift returns m >> shift rounded to nearest, ties to even.
func roundShift(m uint32, shift uint) uint32 {
	q := m >> shift
	rem := m & (1<<shift - 1)
	halfway := uint32(1) << (shift - 1)

	if rem > halfway || (rem == halfway && q&1 == 1) {
		q++
	}

	return q
}

// Float32 expands n to float32. The conversion is exact.
func (n Number) Float32() float32 {
	h := uint32(n)
	sign := (h & signMask) << 16
	exp := (h & expMask) >> mantBits
	mant := h & mantMask

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// normalize the subnormal into a float32 normal
		e := uint32(f32ExpBias - expBias + 1)
		for mant&(mantMask+1) == 0 {
			mant <<= 1
			e--
		}
		mant &= mantMask

		return math.Float32frombits(sign | e<<f32MantBits | mant<<narrowShift)
	case maxBiasedExp:
		return math.Float32frombits(sign | 0x7f800000 | mant<<narrowShift)
	default:
		return math.Float32frombits(sign | (exp+f32ExpBias-expBias)<<f32MantBits | mant<<narrowShift)
	}
}

// Bits returns the raw binary16 pattern.
func (n Number) Bits() uint16 {
	return uint16(n)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Number {
	if sign < 0 {
		return Number(signMask | expMask)
	}

	return Number(expMask)
}

// NaN returns the canonical quiet half-precision NaN.
func NaN() Number {
	return Number(expMask | quietNaNBit)
}

// IsInf reports whether n is an infinity, according to sign.
// If sign > 0, IsInf reports whether n is positive infinity.
// If sign < 0, IsInf reports whether n is negative infinity.
// If sign == 0, IsInf reports whether n is either infinity.
func (n Number) IsInf(sign int) bool {
	switch {
	case sign > 0:
		return n == Inf(1)
	case sign < 0:
		return n == Inf(-1)
	default:
		return n&^signMask == expMask
	}
}

// IsNaN reports whether n is a NaN pattern.
func (n Number) IsNaN() bool {
	return n&expMask == expMask && n&mantMask != 0
}

// Signbit reports whether n is negative or negative zero.
func (n Number) Signbit() bool {
	return n&signMask != 0
}
