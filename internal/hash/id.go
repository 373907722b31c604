package hash

import "github.com/cespare/xxhash/v2"

// ID computes the stable 64-bit catalog identity of a channel from its file
// source id and its raw on-disk name. The raw name is deliberate: reads
// resolve by the on-disk form, and sanitizing here would change every catalog
// ID whenever the sanitizer rules move. The two parts are separated by a NUL
// so ("ab","c") and ("a","bc") never collide.
func ID(source, name string) uint64 {
	var d xxhash.Digest

	d.Reset()
	_, _ = d.WriteString(source)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(name)

	return d.Sum64()
}
