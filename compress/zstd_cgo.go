//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// Decompress decodes a complete Zstandard frame via the libzstd bindings.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}

// Compress encodes data as a single Zstandard frame via the libzstd bindings.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}
