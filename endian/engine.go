// Package endian provides byte order engines for binary time-tag records.
//
// A binary capture stores each event as a fixed 10-byte record: a 64-bit tick
// count followed by a 16-bit channel selector. Capture hardware writes these
// little-endian, so GetLittleEndianEngine is the default everywhere in coinc.
// The big-endian engine exists for captures converted on other platforms.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendRecord(engine, buf, tick, channel)
//	tick, channel = endian.DecodeRecord(engine, buf[:endian.RecordSize])
//
// All functions in this package are safe for concurrent use.
package endian

import "encoding/binary"

// Record layout sizes in bytes.
const (
	TickSize    = 8
	ChannelSize = 2
	RecordSize  = TickSize + ChannelSize
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// so record decoding and fixture encoding share one value.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// DecodeRecord decodes one tick+channel record.
// The record slice must hold at least RecordSize bytes.
func DecodeRecord(engine EndianEngine, record []byte) (uint64, uint16) {
	_ = record[RecordSize-1]

	return engine.Uint64(record[:TickSize]), engine.Uint16(record[TickSize:RecordSize])
}

// AppendRecord appends one tick+channel record to dst.
func AppendRecord(engine EndianEngine, dst []byte, tick uint64, channel uint16) []byte {
	dst = engine.AppendUint64(dst, tick)

	return engine.AppendUint16(dst, channel)
}
