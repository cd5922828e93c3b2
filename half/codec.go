package half

import (
	"iter"

	"github.com/arloliu/f16z/endian"
	"github.com/arloliu/f16z/format"
	"github.com/arloliu/f16z/internal/pool"
)

// Size is the encoded size of one half-precision value in bytes.
const Size = 2

// Encoder narrows float32 values to half precision and appends them, two
// bytes each, to a pooled buffer in the byte order of its endian engine.
type Encoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

// NewEncoder creates a new half-precision encoder using the specified endian engine.
//
// The encoder borrows its buffer from a pool; call Finish when done.
func NewEncoder(engine endian.EndianEngine) *Encoder {
	return &Encoder{
		engine: engine,
		buf:    pool.GetHalfBuffer(),
	}
}

// Write encodes a single float32 value.
//
// Panics if Finish() has been called.
func (e *Encoder) Write(val float32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.B = e.engine.AppendUint16(e.buf.B, uint16(From(val)))
}

// WriteSlice encodes a slice of float32 values with a single buffer growth.
//
// Panics if Finish() has been called.
func (e *Encoder) WriteSlice(values []float32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	n := len(values)
	e.count += n
	if n == 0 {
		return
	}

	start := e.buf.Len()
	e.buf.ExtendOrGrow(n * Size)

	for i, v := range values {
		offset := start + i*Size
		e.engine.PutUint16(e.buf.Slice(offset, offset+Size), uint16(From(v)))
	}
}

// Bytes returns the encoded bytes.
//
// The returned slice references the internal buffer and is valid until the
// next Write, WriteSlice, Reset or Finish. The caller must not modify it.
func (e *Encoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *Encoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes.
func (e *Encoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset discards the encoded values and keeps the buffer for reuse.
func (e *Encoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool. The encoder is unusable afterwards.
func (e *Encoder) Finish() {
	if e.buf != nil {
		pool.PutHalfBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// Decoder widens half-precision values back to float32.
//
// The decoder is immutable and stateless; it is returned by value.
type Decoder struct {
	engine endian.EndianEngine
}

// NewDecoder creates a new half-precision decoder using the specified endian engine.
func NewDecoder(engine endian.EndianEngine) Decoder {
	return Decoder{engine: engine}
}

// Count returns the number of complete values held in data.
func (d Decoder) Count(data []byte) int {
	return len(data) / Size
}

// All returns an iterator over every complete value in data. A trailing odd
// byte is not yielded; use DecodeSlice to treat it as an error.
func (d Decoder) All(data []byte) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for i := 0; i+Size <= len(data); i += Size {
			if !yield(Number(d.engine.Uint16(data[i : i+Size])).Float32()) {
				return
			}
		}
	}
}

// DecodeSlice appends the values in data to dst and returns the extended slice.
//
// It fails with a *format.LengthError if len(data) is odd.
func (d Decoder) DecodeSlice(dst []float32, data []byte) ([]float32, error) {
	if len(data)%Size != 0 {
		return dst, &format.LengthError{Stage: "half decode", Length: len(data), Multiple: Size}
	}

	dst = growFloat32s(dst, d.Count(data))
	for v := range d.All(data) {
		dst = append(dst, v)
	}

	return dst, nil
}

// AppendFloat32s appends the half-precision encoding of values to dst.
func AppendFloat32s(dst []byte, engine endian.EndianEngine, values []float32) []byte {
	if cap(dst)-len(dst) < len(values)*Size {
		grown := make([]byte, len(dst), len(dst)+len(values)*Size)
		copy(grown, dst)
		dst = grown
	}

	for _, v := range values {
		dst = engine.AppendUint16(dst, uint16(From(v)))
	}

	return dst
}

// Float32s decodes data into a new slice. The result is never nil on
// success and always nil on error.
func Float32s(engine endian.EndianEngine, data []byte) ([]float32, error) {
	values, err := NewDecoder(engine).DecodeSlice(make([]float32, 0, len(data)/Size), data)
	if err != nil {
		return nil, err
	}

	return values, nil
}

func growFloat32s(s []float32, n int) []float32 {
	if cap(s)-len(s) >= n {
		return s
	}

	grown := make([]float32, len(s), len(s)+n)
	copy(grown, s)

	return grown
}
