package section

import "math"

// AppendHeader serializes the fixed header and variable-descriptor table,
// including the separator padding, and returns the extended slice. The result
// ends exactly at the offset DecodeHeader reports for the first sample row.
//
// The encoder exists for fixture generation and tooling; the adapter itself
// never writes UDBF files.
func AppendHeader(dst []byte, h *Header, vars []Variable) []byte {
	engine := h.Engine()

	appendString := func(dst []byte, s string) []byte {
		dst = engine.AppendUint16(dst, uint16(len(s)))

		return append(dst, s...)
	}
	appendBlob := func(dst, b []byte) []byte {
		dst = engine.AppendUint16(dst, uint16(len(b)))

		return append(dst, b...)
	}
	appendFloat := func(dst []byte, f float64) []byte {
		return engine.AppendUint64(dst, math.Float64bits(f))
	}

	base := len(dst)

	dst = append(dst, h.ByteOrder)
	dst = engine.AppendUint16(dst, h.Version)
	dst = appendString(dst, h.Vendor)
	if h.WithChecksum {
		dst = append(dst, 1)
	} else {
		dst = append(dst, 0)
	}
	dst = appendBlob(dst, h.ModuleData)
	dst = appendFloat(dst, h.DayFactor)
	dst = engine.AppendUint16(dst, uint16(h.TimeFormat))
	dst = appendFloat(dst, h.TimeFactor)
	dst = appendFloat(dst, h.StartTime)
	dst = appendFloat(dst, h.SampleRate)
	dst = engine.AppendUint16(dst, uint16(len(vars)))

	for i := range vars {
		v := &vars[i]
		dst = appendString(dst, v.Name)
		dst = engine.AppendUint16(dst, uint16(v.Direction))
		dst = engine.AppendUint16(dst, uint16(v.Type))
		dst = engine.AppendUint16(dst, v.FieldLen)
		dst = engine.AppendUint16(dst, v.Precision)
		dst = appendString(dst, v.Unit)
		dst = appendBlob(dst, v.Extra)
	}

	target := DataOffset(len(dst) - base)
	for len(dst)-base < target {
		dst = append(dst, SeparatorByte)
	}

	return dst
}
