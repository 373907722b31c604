package section

import (
	"math"

	"github.com/meshmon/udbf/endian"
	"github.com/meshmon/udbf/errs"
)

// cursor walks a header region byte by byte. Every read reports
// errs.ErrHeaderTruncated on underflow, so a file cut off anywhere inside the
// header or descriptor table decodes to the same error class.
type cursor struct {
	data   []byte
	off    int
	engine endian.EndianEngine
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data, engine: endian.Little()}
}

func (c *cursor) remaining() int {
	return len(c.data) - c.off
}

func (c *cursor) u8() (uint8, error) {
	if c.remaining() < 1 {
		return 0, errs.ErrHeaderTruncated
	}
	v := c.data[c.off]
	c.off++

	return v, nil
}

func (c *cursor) u16() (uint16, error) {
	if c.remaining() < 2 {
		return 0, errs.ErrHeaderTruncated
	}
	v := c.engine.Uint16(c.data[c.off : c.off+2])
	c.off += 2

	return v, nil
}

func (c *cursor) f64() (float64, error) {
	if c.remaining() < 8 {
		return 0, errs.ErrHeaderTruncated
	}
	v := math.Float64frombits(c.engine.Uint64(c.data[c.off : c.off+8]))
	c.off += 8

	return v, nil
}

// bytes reads a length-prefixed byte blob. Lengths beyond MaxStringLength are
// treated as malformed rather than truncated, since they can only come from a
// corrupt length field.
func (c *cursor) bytes() ([]byte, error) {
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	if int(n) > MaxStringLength {
		return nil, errs.ErrMalformedHeader
	}
	if c.remaining() < int(n) {
		return nil, errs.ErrHeaderTruncated
	}
	v := c.data[c.off : c.off+int(n)]
	c.off += int(n)

	return v, nil
}

func (c *cursor) str() (string, error) {
	b, err := c.bytes()
	if err != nil {
		return "", err
	}

	// Recorders pad fixed-width name fields with trailing NULs.
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}

	return string(b), nil
}
