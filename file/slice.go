package file

// SliceInto copies the requested sample range of one channel from src into
// dst and marks each delivered sample in status (1 = present). src is the
// channel's contiguous raw bytes as returned by ChannelBytes; offset and
// count are in samples, file-relative.
//
// The copy region is clamped to what is physically available:
//
//	available = len(src) / elemSize
//	copied    = max(0, min(count, available-offset))
//
// Entries of dst and status beyond the copied region are left untouched, so
// a request spanning a recording outage reports partial availability instead
// of failing. SliceInto never fails: out-of-range offsets, empty files, and
// a zero element size all simply yield zero copied samples. It never writes
// past len(dst) or len(status) and never reads past len(src).
//
// Returns the number of samples copied.
func SliceInto(src []byte, offset, count, elemSize int, dst, status []byte) int {
	if elemSize <= 0 || count <= 0 || offset < 0 {
		return 0
	}

	available := len(src) / elemSize

	copied := count
	if rest := available - offset; copied > rest {
		copied = rest
	}
	if limit := len(dst) / elemSize; copied > limit {
		copied = limit
	}
	if copied > len(status) {
		copied = len(status)
	}
	if copied <= 0 {
		return 0
	}

	copy(dst[:copied*elemSize], src[offset*elemSize:(offset+copied)*elemSize])
	for i := 0; i < copied; i++ {
		status[i] = 1
	}

	return copied
}
