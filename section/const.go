package section

const (
	// SeparatorByte fills the gap between the descriptor table and the sample
	// payload. Writers emit at least MinSeparatorCount of them and then pad to
	// the next DataAlignment boundary.
	SeparatorByte     = 0x20
	MinSeparatorCount = 8
	DataAlignment     = 16

	// ChecksumSize is the length of the optional CRC32 trailer appended after
	// the sample payload when the header's checksum flag is set.
	ChecksumSize = 4

	// MaxVariableCount bounds the declared channel count. Real recorders top
	// out in the low hundreds; anything beyond this is a corrupt header.
	MaxVariableCount = 4096

	// MaxStringLength bounds every length-prefixed string and opaque blob in
	// the header (vendor, names, units, additional data).
	MaxStringLength = 4096
)

// DataOffset returns the byte offset of the first sample row for a header
// region ending at headerEnd: at least MinSeparatorCount separator bytes,
// then padding up to the next DataAlignment boundary.
func DataOffset(headerEnd int) int {
	end := headerEnd + MinSeparatorCount

	return (end + DataAlignment - 1) / DataAlignment * DataAlignment
}
