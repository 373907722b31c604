// Package format defines the UDBF primitive type codes, data directions, and
// the platform-neutral element types they map to.
package format

type (
	// DataType is a UDBF primitive data-type code as stored in a
	// variable-descriptor record.
	DataType uint16

	// DataDirection is the UDBF data-direction code of a variable.
	DataDirection uint16

	// ElementType is the platform-neutral element representation of a channel.
	ElementType uint8
)

// UDBF primitive data-type codes.
const (
	TypeNo            DataType = 0
	TypeBoolean       DataType = 1
	TypeSignedInt8    DataType = 2
	TypeUnsignedInt8  DataType = 3
	TypeSignedInt16   DataType = 4
	TypeUnsignedInt16 DataType = 5
	TypeSignedInt32   DataType = 6
	TypeUnsignedInt32 DataType = 7
	TypeFloat         DataType = 8
	TypeBitSet8       DataType = 9
	TypeBitSet16      DataType = 10
	TypeBitSet32      DataType = 11
	TypeDouble        DataType = 12
	TypeSignedInt64   DataType = 13
	TypeUnsignedInt64 DataType = 14
	TypeBitSet64      DataType = 15
)

// UDBF data-direction codes. Codes outside this set decode but report as
// unknown; only input-capable variables are exposed in a catalog.
const (
	DirectionInput       DataDirection = 0
	DirectionOutput      DataDirection = 1
	DirectionInputOutput DataDirection = 2
)

// Platform-neutral element types.
const (
	ElementUnspecified ElementType = 0
	ElementInt8        ElementType = 1
	ElementUint8       ElementType = 2
	ElementInt16       ElementType = 3
	ElementUint16      ElementType = 4
	ElementInt32       ElementType = 5
	ElementUint32      ElementType = 6
	ElementInt64       ElementType = 7
	ElementUint64      ElementType = 8
	ElementFloat32     ElementType = 9
	ElementFloat64     ElementType = 10
)

// Element maps a UDBF data-type code to its neutral element type.
//
// The mapping is total: Boolean, No, and any reserved or future code map to
// ElementUnspecified rather than producing an error, because UDBF reserves
// codes that must pass through harmlessly.
func (t DataType) Element() ElementType {
	switch t {
	case TypeSignedInt8:
		return ElementInt8
	case TypeUnsignedInt8, TypeBitSet8:
		return ElementUint8
	case TypeSignedInt16:
		return ElementInt16
	case TypeUnsignedInt16, TypeBitSet16:
		return ElementUint16
	case TypeSignedInt32:
		return ElementInt32
	case TypeUnsignedInt32, TypeBitSet32:
		return ElementUint32
	case TypeFloat:
		return ElementFloat32
	case TypeDouble:
		return ElementFloat64
	case TypeSignedInt64:
		return ElementInt64
	case TypeUnsignedInt64, TypeBitSet64:
		return ElementUint64
	default:
		return ElementUnspecified
	}
}

// Size returns the fixed element size in bytes of a UDBF data-type code.
// Codes without a neutral representation have size 0.
func (t DataType) Size() int {
	return t.Element().Size()
}

// Size returns the fixed element size in bytes. ElementUnspecified has size 0.
func (e ElementType) Size() int {
	switch e {
	case ElementInt8, ElementUint8:
		return 1
	case ElementInt16, ElementUint16:
		return 2
	case ElementInt32, ElementUint32, ElementFloat32:
		return 4
	case ElementInt64, ElementUint64, ElementFloat64:
		return 8
	default:
		return 0
	}
}

// Readable reports whether a variable with this direction belongs in a
// catalog. Output-only variables are excluded; unknown directions are treated
// as not readable.
func (d DataDirection) Readable() bool {
	return d == DirectionInput || d == DirectionInputOutput
}

func (t DataType) String() string {
	switch t {
	case TypeNo:
		return "No"
	case TypeBoolean:
		return "Boolean"
	case TypeSignedInt8:
		return "SignedInt8"
	case TypeUnsignedInt8:
		return "UnsignedInt8"
	case TypeSignedInt16:
		return "SignedInt16"
	case TypeUnsignedInt16:
		return "UnsignedInt16"
	case TypeSignedInt32:
		return "SignedInt32"
	case TypeUnsignedInt32:
		return "UnsignedInt32"
	case TypeFloat:
		return "Float"
	case TypeBitSet8:
		return "BitSet8"
	case TypeBitSet16:
		return "BitSet16"
	case TypeBitSet32:
		return "BitSet32"
	case TypeDouble:
		return "Double"
	case TypeSignedInt64:
		return "SignedInt64"
	case TypeUnsignedInt64:
		return "UnsignedInt64"
	case TypeBitSet64:
		return "BitSet64"
	default:
		return "Unknown"
	}
}

func (d DataDirection) String() string {
	switch d {
	case DirectionInput:
		return "Input"
	case DirectionOutput:
		return "Output"
	case DirectionInputOutput:
		return "InputOutput"
	default:
		return "Unknown"
	}
}

func (e ElementType) String() string {
	switch e {
	case ElementInt8:
		return "INT8"
	case ElementUint8:
		return "UINT8"
	case ElementInt16:
		return "INT16"
	case ElementUint16:
		return "UINT16"
	case ElementInt32:
		return "INT32"
	case ElementUint32:
		return "UINT32"
	case ElementInt64:
		return "INT64"
	case ElementUint64:
		return "UINT64"
	case ElementFloat32:
		return "FLOAT32"
	case ElementFloat64:
		return "FLOAT64"
	default:
		return "Unspecified"
	}
}
