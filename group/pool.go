package group

import "sync"

// bufferPool recycles the byte buffers FoldChallenge concatenates its
// fields into. The kernel calls FoldChallenge O(N·Y) times per sign/verify,
// so avoiding an allocation per fold matters on large rings.
var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, 256)
		return &buf
	},
}

// getBuffer returns a zero-length buffer from the pool.
func getBuffer() *[]byte {
	buf := bufferPool.Get().(*[]byte)
	*buf = (*buf)[:0]
	return buf
}

// putBuffer returns a buffer to the pool.
func putBuffer(buf *[]byte) {
	bufferPool.Put(buf)
}
