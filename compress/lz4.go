package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec reads and writes the LZ4 frame format, as produced by the standard
// lz4 command-line tool. The frame format (not the block format) is used
// because archived recordings come from external tools.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// Decompress decodes a complete LZ4 frame stream.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := lz4.NewReader(bytes.NewReader(data))

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Compress encodes data as a single LZ4 frame.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
