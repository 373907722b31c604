package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetChannelBuffer(t *testing.T) {
	bb := GetChannelBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), ChannelBufferDefaultSize)

	bb.B = append(bb.B, 1, 2, 3)
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	PutChannelBuffer(bb)

	// A recycled buffer always comes back empty.
	again := GetChannelBuffer()
	require.Equal(t, 0, again.Len())
	PutChannelBuffer(again)
}

func TestPutChannelBuffer_DropsOversized(t *testing.T) {
	bb := &ByteBuffer{B: make([]byte, 0, ChannelBufferMaxThreshold+1)}

	// Must not panic; the oversized buffer is simply not recycled.
	PutChannelBuffer(bb)
	PutChannelBuffer(nil)
}
