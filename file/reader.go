// Package file implements the UDBF file reader and the range-slice engine:
// per-call decoding of one file's header, extraction of one channel's raw
// sample bytes, and the bounded copy of a requested sample range into
// host-supplied buffers.
//
// A Reader holds no open handle and no shared mutable state. Every Open call
// reads the file once and works on the bytes it got, so concurrent reads of
// the same physical file need no coordination; they simply do not share
// anything.
package file

import (
	"fmt"
	"hash/crc32"
	"os"
	"time"

	"github.com/meshmon/udbf/compress"
	"github.com/meshmon/udbf/errs"
	"github.com/meshmon/udbf/internal/options"
	"github.com/meshmon/udbf/section"
)

// Reader is a decoded UDBF file: header, variable descriptors, and the raw
// interleaved sample payload. It is read-only after construction and safe for
// concurrent use.
type Reader struct {
	path    string
	header  section.Header
	vars    []section.Variable
	offsets []int
	rowSize int
	payload []byte

	checksum    uint32
	hasChecksum bool

	codec compress.Codec
}

// Option configures Open.
type Option = options.Option[*Reader]

// WithCodec overrides the archive codec inferred from the file extension.
func WithCodec(codec compress.Codec) Option {
	return options.NoError(func(r *Reader) {
		r.codec = codec
	})
}

// Open reads and decodes the UDBF file at path. Archived copies (.gz, .lz4,
// .s2, .zst) are decompressed transparently.
//
// The sample payload length is taken from the physical bytes present, never
// from any nominal expectation, so a truncated recording simply yields a
// smaller SampleCount.
func Open(path string, opts ...Option) (*Reader, error) {
	r := &Reader{path: path}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}
	if r.codec == nil {
		r.codec = compress.ForPath(path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	data, err := r.codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}

	if err := r.init(data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return r, nil
}

// FromBytes decodes an already-loaded UDBF image. name is used only for
// error context.
func FromBytes(name string, data []byte) (*Reader, error) {
	r := &Reader{path: name}
	if err := r.init(data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	return r, nil
}

func (r *Reader) init(data []byte) error {
	header, vars, offset, err := section.DecodeHeader(data)
	if err != nil {
		return err
	}

	r.header = header
	r.vars = vars
	r.rowSize = section.RowSize(&r.header, vars)
	r.offsets = section.RowOffsets(&r.header, vars)
	r.payload = data[offset:]

	// When the header declares a checksum the payload ends with a CRC32
	// trailer. A file cut off before the trailer keeps its full tail as
	// payload; the missing trailer then reports as a checksum failure, not as
	// missing samples.
	if r.header.WithChecksum && len(r.payload) >= section.ChecksumSize {
		trailer := r.payload[len(r.payload)-section.ChecksumSize:]
		r.checksum = r.header.Engine().Uint32(trailer)
		r.hasChecksum = true
		r.payload = r.payload[:len(r.payload)-section.ChecksumSize]
	}

	return nil
}

// Path returns the path the reader was opened from.
func (r *Reader) Path() string {
	return r.path
}

// Header returns the decoded fixed header.
func (r *Reader) Header() section.Header {
	return r.header
}

// Variables returns the descriptor records in declaration order. The caller
// must not modify the returned slice.
func (r *Reader) Variables() []section.Variable {
	return r.vars
}

// SampleCount returns the number of complete sample rows physically present.
// A trailing partial row does not count.
func (r *Reader) SampleCount() int {
	if r.rowSize <= 0 {
		return 0
	}

	return len(r.payload) / r.rowSize
}

// SamplePeriod returns the duration of one sample step.
func (r *Reader) SamplePeriod() time.Duration {
	return r.header.SamplePeriod()
}

// StartTime returns the recording start instant from the header.
func (r *Reader) StartTime() time.Time {
	return r.header.StartTimeAsTime()
}

// SampleTime returns the nominal instant of sample i, derived from the start
// time and the sample clock.
func (r *Reader) SampleTime(i int) time.Time {
	return r.StartTime().Add(time.Duration(i) * r.SamplePeriod())
}

// lookup returns the index of the variable with the exact on-disk name.
func (r *Reader) lookup(name string) (int, error) {
	for i := range r.vars {
		if r.vars[i].Name == name {
			return i, nil
		}
	}

	return 0, errs.ErrChannelNotFound
}

// ChannelBytes extracts the full sample stream of one named channel into a
// newly allocated contiguous buffer of SampleCount() * element size bytes.
//
// The name must match the original on-disk channel name exactly; sanitized
// catalog aliases do not resolve here.
func (r *Reader) ChannelBytes(name string) ([]byte, error) {
	return r.AppendChannelBytes(nil, name)
}

// AppendChannelBytes appends one channel's contiguous sample bytes to dst and
// returns the extended slice. It allows callers to reuse scratch buffers
// across requests.
//
// Returns errs.ErrChannelNotFound if no variable matches name, and
// errs.ErrUnspecifiedType if the variable has no neutral element
// representation.
func (r *Reader) AppendChannelBytes(dst []byte, name string) ([]byte, error) {
	idx, err := r.lookup(name)
	if err != nil {
		return dst, fmt.Errorf("channel %q: %w", name, err)
	}

	size := r.vars[idx].ElementSize()
	if size == 0 {
		return dst, fmt.Errorf("channel %q: %w", name, errs.ErrUnspecifiedType)
	}

	count := r.SampleCount()
	offset := r.offsets[idx]

	for i := 0; i < count; i++ {
		start := i*r.rowSize + offset
		dst = append(dst, r.payload[start:start+size]...)
	}

	return dst, nil
}

// VerifyChecksum recomputes the CRC32 of the sample payload and compares it
// against the trailer. It returns nil for files whose header does not declare
// a checksum, and errs.ErrChecksumMismatch when the trailer is absent or does
// not match.
func (r *Reader) VerifyChecksum() error {
	if !r.header.WithChecksum {
		return nil
	}
	if !r.hasChecksum {
		return fmt.Errorf("checksum trailer missing: %w", errs.ErrChecksumMismatch)
	}
	if crc32.ChecksumIEEE(r.payload) != r.checksum {
		return errs.ErrChecksumMismatch
	}

	return nil
}
