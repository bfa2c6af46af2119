package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestRecordRoundTrip(t *testing.T) {
	engines := map[string]EndianEngine{
		"little": GetLittleEndianEngine(),
		"big":    GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			buf := AppendRecord(engine, nil, 0x0102030405060708, 7)
			buf = AppendRecord(engine, buf, 1_000_000_000_000, 0)
			require.Len(t, buf, 2*RecordSize)

			tick, ch := DecodeRecord(engine, buf[:RecordSize])
			require.Equal(t, uint64(0x0102030405060708), tick)
			require.Equal(t, uint16(7), ch)

			tick, ch = DecodeRecord(engine, buf[RecordSize:])
			require.Equal(t, uint64(1_000_000_000_000), tick)
			require.Equal(t, uint16(0), ch)
		})
	}
}

func TestRecordLittleEndianLayout(t *testing.T) {
	buf := AppendRecord(GetLittleEndianEngine(), nil, 0x01, 0x0203)
	require.Equal(t, []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0x03, 0x02}, buf)
}

func TestDecodeRecordShortPanics(t *testing.T) {
	require.Panics(t, func() {
		DecodeRecord(GetLittleEndianEngine(), make([]byte, RecordSize-1))
	})
}
