// Package udbf exposes collections of Gantner UDBF (Universal Data Bin
// Format) measurement files as a browsable, time-indexed channel catalog and
// serves byte-exact slices of channel data for arbitrary sample ranges.
//
// # Layout
//
// The work happens in the sub-packages; this package only re-exports the
// entry points a host needs most:
//
//   - section: fixed header and variable-descriptor table decoding
//   - format: UDBF type codes and the neutral element mapping
//   - file: per-file channel extraction and the range-slice engine
//   - compress: transparent reading of archived recordings (.gz/.lz4/.s2/.zst)
//   - catalog: configuration, name sanitizing, and catalog building
//   - adapter: the host-facing batched read service
//
// # Reading one channel
//
//	r, err := udbf.Open("rec_2024_08_01__00_00_00.dat")
//	if err != nil { ... }
//	raw, err := r.ChannelBytes("WEA10_ACC_Y")
//	if err != nil { ... }
//
//	data := make([]byte, 3000*8)
//	status := make([]byte, 3000)
//	copied := file.SliceInto(raw, 0, 3000, 8, data, status)
//
// A truncated recording is not an error: SliceInto reports the shortfall
// through the status mask, and copied tells how many samples arrived.
//
// # Concurrency
//
// Every Open reads the file once and shares nothing afterwards, so any number
// of goroutines may read the same or different files concurrently without
// coordination.
package udbf

import (
	"github.com/meshmon/udbf/file"
	"github.com/meshmon/udbf/internal/hash"
)

// Open reads and decodes the UDBF file at path, decompressing archived
// copies transparently. See file.Open.
func Open(path string, opts ...file.Option) (*file.Reader, error) {
	return file.Open(path, opts...)
}

// FromBytes decodes an already-loaded UDBF image. See file.FromBytes.
func FromBytes(name string, data []byte) (*file.Reader, error) {
	return file.FromBytes(name, data)
}

// ChannelID computes the stable 64-bit catalog identity of a channel from
// its file source id and its raw channel name.
func ChannelID(source, name string) uint64 {
	return hash.ID(source, name)
}
