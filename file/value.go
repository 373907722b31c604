package file

import (
	"math"

	"github.com/meshmon/udbf/endian"
	"github.com/meshmon/udbf/format"
)

// DecodeValue decodes one raw sample into a float64 for display and
// aggregation. b must hold at least element.Size() bytes. Unspecified
// elements decode to NaN.
//
// Integer channels wider than 53 bits lose precision in the conversion; the
// raw bytes remain authoritative for hosts that need exact values.
func DecodeValue(b []byte, element format.ElementType, engine endian.EndianEngine) float64 {
	switch element {
	case format.ElementInt8:
		return float64(int8(b[0]))
	case format.ElementUint8:
		return float64(b[0])
	case format.ElementInt16:
		return float64(int16(engine.Uint16(b)))
	case format.ElementUint16:
		return float64(engine.Uint16(b))
	case format.ElementInt32:
		return float64(int32(engine.Uint32(b)))
	case format.ElementUint32:
		return float64(engine.Uint32(b))
	case format.ElementInt64:
		return float64(int64(engine.Uint64(b)))
	case format.ElementUint64:
		return float64(engine.Uint64(b))
	case format.ElementFloat32:
		return float64(math.Float32frombits(engine.Uint32(b)))
	case format.ElementFloat64:
		return math.Float64frombits(engine.Uint64(b))
	default:
		return math.NaN()
	}
}
