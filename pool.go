package lzss

import "sync"

// windowBuffersPool is a pool of window/lookahead buffer pairs.
var windowBuffersPool = sync.Pool{
	New: func() any {
		return &windowBuffers{}
	},
}

// acquireWindowBuffers acquires a buffer pair from the pool. Callers reset
// the window before use; the lookahead is always written before it is read.
func acquireWindowBuffers() *windowBuffers {
	return windowBuffersPool.Get().(*windowBuffers)
}

// releaseWindowBuffers releases a buffer pair to the pool.
func releaseWindowBuffers(b *windowBuffers) {
	if b == nil {
		return
	}
	windowBuffersPool.Put(b)
}
