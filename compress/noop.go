package compress

// NoOpCodec passes data through unchanged. It backs every path without a
// recognized archive extension, i.e. plain UDBF files.
//
// Both directions return the input slice as-is without copying, so the
// returned slice shares memory with the input.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// Decompress returns the input unchanged.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// Compress returns the input unchanged.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}
