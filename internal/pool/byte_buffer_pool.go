package pool

import "sync"

const (
	// ChannelBufferDefaultSize is the initial capacity of a pooled channel
	// buffer, sized for a typical 10-minute recording window of one channel.
	ChannelBufferDefaultSize = 64 * 1024 // 64KiB

	// ChannelBufferMaxThreshold is the largest capacity returned to the pool;
	// oversized buffers from unusually long files are dropped instead of
	// pinning memory.
	ChannelBufferMaxThreshold = 8 * 1024 * 1024 // 8MiB
)

// ByteBuffer is a reusable byte slice for transient per-request channel data.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for
// reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

var channelBufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, ChannelBufferDefaultSize)}
	},
}

// GetChannelBuffer obtains an empty ByteBuffer from the pool.
func GetChannelBuffer() *ByteBuffer {
	bb, _ := channelBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutChannelBuffer returns a ByteBuffer to the pool. Buffers grown beyond
// ChannelBufferMaxThreshold are dropped.
func PutChannelBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > ChannelBufferMaxThreshold {
		return
	}
	channelBufferPool.Put(bb)
}
