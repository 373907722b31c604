// Package testfile synthesizes UDBF file images for tests. The fill pattern
// is deterministic so tests can assert exact bytes and decoded values without
// carrying fixture files in the repo.
package testfile

import (
	"hash/crc32"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshmon/udbf/compress"
	"github.com/meshmon/udbf/endian"
	"github.com/meshmon/udbf/format"
	"github.com/meshmon/udbf/section"
)

// Spec describes one synthetic UDBF file.
type Spec struct {
	// Header fields; zero values are replaced by Defaults.
	Header section.Header

	// Vars is the descriptor table in declaration order.
	Vars []section.Variable

	// Rows is the number of complete sample rows to emit.
	Rows int

	// TruncateBytes chops this many bytes off the end of the finished image,
	// simulating an interrupted recording.
	TruncateBytes int

	// Checksum appends a CRC32 trailer and sets the header flag.
	Checksum bool
}

// DefaultHeader returns the header used when a Spec leaves fields zero:
// 5 Hz clock, uint64 nanosecond time column, start 2024-08-01 00:00:00 UTC.
func DefaultHeader() section.Header {
	start := 8979.0 // days from 2000-01-01 to 2024-08-01

	return section.Header{
		Version:    107,
		Vendor:     "testfile",
		DayFactor:  1.0,
		TimeFormat: format.TypeUnsignedInt64,
		TimeFactor: 1e-9,
		StartTime:  start,
		SampleRate: 5.0,
	}
}

// Value is the deterministic fill for sample row/column col. It fits every
// element type exactly, including int8.
func Value(row, col int) float64 {
	return float64((row*31 + col*7) % 100)
}

// Build renders the complete file image.
func Build(spec Spec) []byte {
	h := spec.Header
	if h.SampleRate == 0 {
		h = DefaultHeader()
	}
	h.WithChecksum = spec.Checksum

	data := section.AppendHeader(nil, &h, spec.Vars)
	engine := h.Engine()

	payloadStart := len(data)
	for row := 0; row < spec.Rows; row++ {
		if size := h.TimeSize(); size > 0 {
			data = appendValue(data, engine, h.TimeFormat.Element(), float64(row))
		}
		for col := range spec.Vars {
			element := spec.Vars[col].Type.Element()
			if element == format.ElementUnspecified {
				continue
			}
			data = appendValue(data, engine, element, Value(row, col))
		}
	}

	if spec.Checksum {
		data = engine.AppendUint32(data, crc32.ChecksumIEEE(data[payloadStart:]))
	}

	if spec.TruncateBytes > 0 {
		if spec.TruncateBytes > len(data) {
			return nil
		}
		data = data[:len(data)-spec.TruncateBytes]
	}

	return data
}

// Write builds the image and writes it under dir, compressing it when name
// carries an archive extension. It returns the full path.
func Write(t *testing.T, dir, name string, spec Spec) string {
	t.Helper()

	data := Build(spec)

	encoded, err := compress.ForPath(name).Compress(data)
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, encoded, 0o644))

	return path
}

func appendValue(dst []byte, engine endian.EndianEngine, element format.ElementType, v float64) []byte {
	switch element {
	case format.ElementInt8:
		return append(dst, byte(int8(v)))
	case format.ElementUint8:
		return append(dst, uint8(v))
	case format.ElementInt16:
		return engine.AppendUint16(dst, uint16(int16(v)))
	case format.ElementUint16:
		return engine.AppendUint16(dst, uint16(v))
	case format.ElementInt32:
		return engine.AppendUint32(dst, uint32(int32(v)))
	case format.ElementUint32:
		return engine.AppendUint32(dst, uint32(v))
	case format.ElementInt64:
		return engine.AppendUint64(dst, uint64(int64(v)))
	case format.ElementUint64:
		return engine.AppendUint64(dst, uint64(v))
	case format.ElementFloat32:
		return engine.AppendUint32(dst, math.Float32bits(float32(v)))
	case format.ElementFloat64:
		return engine.AppendUint64(dst, math.Float64bits(v))
	default:
		return dst
	}
}
