// Package compress provides transparent decoding of archived UDBF recordings.
//
// Field recorders rotate measurement files and compress the rotated copies
// for archival; the adapter reads those copies in place. A codec is selected
// by file extension:
//
//	.gz  -> gzip
//	.lz4 -> LZ4 frame
//	.s2  -> S2 stream
//	.zst -> Zstandard
//
// Any other extension selects the no-op codec, i.e. a plain UDBF file.
//
// Every codec also implements the encode direction; it exists for fixture
// generation and archive tooling, not for the read path.
package compress

import (
	"path/filepath"
	"strings"
)

// Codec decodes one whole archived recording into its original bytes and
// encodes the reverse direction.
//
// Memory management follows one rule throughout: returned slices are newly
// allocated and owned by the caller, and input slices are never modified.
// All codecs are safe for concurrent use.
type Codec interface {
	// Decompress decodes data written by the matching archive tool and
	// returns the original file content. It returns an error if the data is
	// corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)

	// Compress encodes data into the codec's archive format.
	Compress(data []byte) ([]byte, error)
}

var codecsByExt = map[string]Codec{
	".gz":  GzipCodec{},
	".lz4": LZ4Codec{},
	".s2":  S2Codec{},
	".zst": ZstdCodec{},
}

// ForPath returns the codec selected by the path's extension. Unknown
// extensions select the no-op codec.
func ForPath(path string) Codec {
	ext := strings.ToLower(filepath.Ext(path))
	if codec, ok := codecsByExt[ext]; ok {
		return codec
	}

	return NoOpCodec{}
}

// IsArchive reports whether the path carries a recognized archive extension.
func IsArchive(path string) bool {
	_, ok := codecsByExt[strings.ToLower(filepath.Ext(path))]

	return ok
}
