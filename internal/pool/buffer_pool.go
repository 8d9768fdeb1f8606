// Package pool provides reusable scratch byte buffers.
package pool

import "sync"

// DefaultBufferSize is the capacity of a freshly allocated buffer. It covers a
// JT/T808 frame carrying a full 1023-byte body after escaping.
const DefaultBufferSize = 2048

// maxPooledSize caps the capacity of buffers returned to the pool, so a single
// oversized frame doesn't pin a large allocation forever.
const maxPooledSize = 64 * 1024

// BufferPool is a sync.Pool backed pool of byte buffers. It is safe for
// concurrent use; a buffer obtained by Get is owned by the caller until Put.
type BufferPool struct {
	p sync.Pool
}

// NewBufferPool creates an empty buffer pool.
func NewBufferPool() *BufferPool {
	return &BufferPool{}
}

// Get returns a zero-length buffer with capacity of at least minSize.
func (bp *BufferPool) Get(minSize int) *[]byte {
	if v := bp.p.Get(); v != nil {
		buf, _ := v.(*[]byte) // only *[]byte is ever put into the pool
		if cap(*buf) >= minSize {
			*buf = (*buf)[:0]
			return buf
		}
		// too small for this caller, let the GC have it
	}

	size := DefaultBufferSize
	if minSize > size {
		size = minSize
	}
	buf := make([]byte, 0, size)

	return &buf
}

// Put returns buf to the pool. buf cannot be accessed after returning to the pool.
func (bp *BufferPool) Put(buf *[]byte) {
	if buf == nil || cap(*buf) > maxPooledSize {
		return
	}
	*buf = (*buf)[:0]
	bp.p.Put(buf)
}

var defaultPool = NewBufferPool()

// GetBuffer gets a buffer from the process wide pool.
func GetBuffer(minSize int) *[]byte {
	return defaultPool.Get(minSize)
}

// PutBuffer returns a buffer to the process wide pool.
func PutBuffer(buf *[]byte) {
	defaultPool.Put(buf)
}

// Default returns the process wide pool.
func Default() *BufferPool {
	return defaultPool
}
