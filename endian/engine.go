// Package endian provides byte order utilities for decoding UDBF files.
//
// A UDBF file declares its own byte order in the first header byte, so the
// decoder cannot fix an order at compile time. EndianEngine combines the
// ByteOrder and AppendByteOrder interfaces from encoding/binary so the same
// engine value can serve both reads and test-fixture writes.
//
// All engines returned by this package are immutable and safe for concurrent
// use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. It is satisfied by binary.LittleEndian and
// binary.BigEndian, so any existing code accepting a binary.ByteOrder can
// consume an engine directly.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Little returns the little-endian engine, the byte order used by virtually
// all UDBF recordings.
func Little() EndianEngine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
func Big() EndianEngine {
	return binary.BigEndian
}

// ForFlag returns the engine selected by a UDBF byte-order header flag:
// zero means little-endian, any other value means big-endian.
func ForFlag(flag uint8) EndianEngine {
	if flag != 0 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
