package section

import "github.com/meshmon/udbf/format"

// Variable is one record of the variable-descriptor table, describing a
// single named channel. Declaration order matters: it determines the
// channel's byte offset within a sample row.
type Variable struct {
	// Name is the raw on-disk channel name. It may contain characters that
	// are invalid for a host catalog identifier; lookup is always exact on
	// this original form.
	Name string

	// Unit is the display unit string, opaque passthrough.
	Unit string

	// Direction is the UDBF data-direction code.
	Direction format.DataDirection

	// Type is the UDBF primitive data-type code.
	Type format.DataType

	// FieldLen and Precision are display hints, preserved but not
	// interpreted.
	FieldLen  uint16
	Precision uint16

	// Extra is opaque per-variable additional data.
	Extra []byte
}

// ElementSize returns the on-disk width in bytes of one sample of this
// variable. Variables without a neutral element representation occupy no
// space in a sample row.
func (v *Variable) ElementSize() int {
	return v.Type.Size()
}

func decodeVariable(c *cursor) (Variable, error) {
	var v Variable
	var err error

	if v.Name, err = c.str(); err != nil {
		return v, err
	}

	direction, err := c.u16()
	if err != nil {
		return v, err
	}
	v.Direction = format.DataDirection(direction)

	dataType, err := c.u16()
	if err != nil {
		return v, err
	}
	v.Type = format.DataType(dataType)

	if v.FieldLen, err = c.u16(); err != nil {
		return v, err
	}
	if v.Precision, err = c.u16(); err != nil {
		return v, err
	}
	if v.Unit, err = c.str(); err != nil {
		return v, err
	}

	extra, err := c.bytes()
	if err != nil {
		return v, err
	}
	if len(extra) > 0 {
		v.Extra = append([]byte(nil), extra...)
	}

	return v, nil
}

// RowSize returns the total byte width of one interleaved sample row: the
// leading timestamp column followed by every variable in declaration order.
func RowSize(h *Header, vars []Variable) int {
	size := h.TimeSize()
	for i := range vars {
		size += vars[i].ElementSize()
	}

	return size
}

// RowOffsets returns each variable's byte offset within a sample row, in
// declaration order. The leading timestamp column occupies offset 0.
func RowOffsets(h *Header, vars []Variable) []int {
	offsets := make([]int, len(vars))
	off := h.TimeSize()
	for i := range vars {
		offsets[i] = off
		off += vars[i].ElementSize()
	}

	return offsets
}
