package compress

// ZstdCodec reads and writes the Zstandard frame format. The implementation
// is selected at build time: the libzstd bindings under cgo, the pure-Go
// klauspost decoder otherwise. Both read the same frames.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)
