package section

import (
	"math"
	"time"

	"github.com/meshmon/udbf/endian"
	"github.com/meshmon/udbf/errs"
	"github.com/meshmon/udbf/format"
)

// dayEpoch is the reference instant of the header's day-based start time:
// UDBF start times count days since 2000-01-01 00:00:00 UTC, scaled by the
// header's day factor.
var dayEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Header is the fixed-format region at the start of every UDBF file. All
// multi-byte fields after the byte-order flag are stored in the declared
// byte order.
type Header struct {
	// ByteOrder is the first byte of the file: 0 = little-endian, anything
	// else = big-endian. It governs every later multi-byte field, including
	// the sample rows.
	ByteOrder uint8

	// Version is the UDBF layout revision, e.g. 107.
	Version uint16

	// Vendor is the recorder vendor/type string, opaque passthrough.
	Vendor string

	// WithChecksum reports whether a CRC32 trailer follows the sample payload.
	WithChecksum bool

	// ModuleData is opaque module-specific additional data, preserved but not
	// interpreted.
	ModuleData []byte

	// DayFactor scales StartTime into days since the 2000-01-01 epoch.
	DayFactor float64

	// TimeFormat is the data-type code of the leading timestamp column of
	// each sample row. TypeNo means the rows carry no timestamp column.
	TimeFormat format.DataType

	// TimeFactor scales a raw timestamp-column value into seconds since the
	// recording start.
	TimeFactor float64

	// StartTime is the recording start in DayFactor units since the epoch.
	StartTime float64

	// SampleRate is the sample clock in Hz, shared by all variables.
	SampleRate float64

	// VariableCount is the number of variable-descriptor records that follow
	// the fixed header.
	VariableCount uint16
}

// Engine returns the byte-order engine declared by the header.
func (h *Header) Engine() endian.EndianEngine {
	return endian.ForFlag(h.ByteOrder)
}

// Validate reports errs.ErrMalformedHeader for structurally inconsistent
// field values: a non-positive or non-finite sample rate, a zero variable
// count, or a variable count beyond MaxVariableCount.
func (h *Header) Validate() error {
	if h.SampleRate <= 0 || math.IsInf(h.SampleRate, 0) || math.IsNaN(h.SampleRate) {
		return errs.ErrMalformedHeader
	}
	if h.VariableCount == 0 || h.VariableCount > MaxVariableCount {
		return errs.ErrMalformedHeader
	}

	return nil
}

// SamplePeriod returns the duration of one sample step, 1 / SampleRate.
func (h *Header) SamplePeriod() time.Duration {
	return time.Duration(float64(time.Second) / h.SampleRate)
}

// StartTimeAsTime converts the day-based start time into a time.Time.
func (h *Header) StartTimeAsTime() time.Time {
	days := h.StartTime * h.DayFactor

	return dayEpoch.Add(time.Duration(days * 24 * float64(time.Hour)))
}

// TimeSize returns the on-disk width in bytes of the leading timestamp column
// of each sample row, 0 if the rows carry none.
func (h *Header) TimeSize() int {
	return h.TimeFormat.Size()
}

// DecodeHeader decodes the fixed header and the variable-descriptor table
// from the start of data, preserving variable declaration order.
//
// Returns:
//   - Header: Decoded fixed header
//   - []Variable: Descriptor records in declaration order
//   - int: Byte offset of the first sample row
//   - error: errs.ErrHeaderTruncated or errs.ErrMalformedHeader
func DecodeHeader(data []byte) (Header, []Variable, int, error) {
	var h Header

	c := newCursor(data)

	flag, err := c.u8()
	if err != nil {
		return h, nil, 0, err
	}
	h.ByteOrder = flag
	c.engine = h.Engine()

	if h.Version, err = c.u16(); err != nil {
		return h, nil, 0, err
	}
	if h.Vendor, err = c.str(); err != nil {
		return h, nil, 0, err
	}

	checksum, err := c.u8()
	if err != nil {
		return h, nil, 0, err
	}
	h.WithChecksum = checksum != 0

	module, err := c.bytes()
	if err != nil {
		return h, nil, 0, err
	}
	if len(module) > 0 {
		h.ModuleData = append([]byte(nil), module...)
	}

	if h.DayFactor, err = c.f64(); err != nil {
		return h, nil, 0, err
	}

	timeFormat, err := c.u16()
	if err != nil {
		return h, nil, 0, err
	}
	h.TimeFormat = format.DataType(timeFormat)

	if h.TimeFactor, err = c.f64(); err != nil {
		return h, nil, 0, err
	}
	if h.StartTime, err = c.f64(); err != nil {
		return h, nil, 0, err
	}
	if h.SampleRate, err = c.f64(); err != nil {
		return h, nil, 0, err
	}
	if h.VariableCount, err = c.u16(); err != nil {
		return h, nil, 0, err
	}

	if err := h.Validate(); err != nil {
		return h, nil, 0, err
	}

	vars := make([]Variable, 0, h.VariableCount)
	for i := 0; i < int(h.VariableCount); i++ {
		v, err := decodeVariable(c)
		if err != nil {
			return h, nil, 0, err
		}
		vars = append(vars, v)
	}

	offset := DataOffset(c.off)
	if offset > len(data) {
		// The separator/padding region itself may be cut off. The header is
		// still usable; the payload is simply empty.
		offset = len(data)
	}

	return h, vars, offset, nil
}
