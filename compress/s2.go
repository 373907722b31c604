package compress

import (
	"github.com/klauspost/compress/s2"
)

// S2Codec reads and writes the S2 block format.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// Decompress decodes an S2 block.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// Compress encodes data as a single S2 block.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}
