// Package endian provides the byte order engines used by the f16z codecs.
//
// The half-precision stage writes each 16-bit value low byte first, while the
// base-85 stage reads every 4-byte group as a big-endian word. Both stages take
// an EndianEngine so the byte order is a parameter rather than a hard-coded
// call into encoding/binary:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint16(buf, uint16(h))
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used for half-precision pairs.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine used for base-85 words.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
