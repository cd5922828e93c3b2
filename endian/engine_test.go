package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Equal(t, binary.LittleEndian, engine)

	buf := engine.AppendUint16(nil, 0x3c00)
	require.Equal(t, []byte{0x00, 0x3c}, buf)
	require.Equal(t, uint16(0x3c00), engine.Uint16(buf))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.BigEndian, engine)

	buf := engine.AppendUint32(nil, 0x86_4F_D2_6F)
	require.Equal(t, []byte{0x86, 0x4F, 0xD2, 0x6F}, buf)
	require.Equal(t, uint32(0x86_4F_D2_6F), engine.Uint32(buf))
}

func TestEnginesAreStateless(t *testing.T) {
	le := GetLittleEndianEngine()
	for range 100 {
		require.Equal(t, le, GetLittleEndianEngine())
	}
}
