package pixbuf

import (
	"sync"
	"sync/atomic"
)

// Pool is a thread-safe pool for reusing pixel storage.
//
// Pool groups storage by byte length, so surfaces of identical physical
// layout recycle each other's memory. This reduces GC pressure for callers
// that repeatedly render icons or thumbnails of the same size.
//
// Idle storage is bounded twice: per bucket by slice count and across all
// buckets by total bytes. Trim drops everything that is idle.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu        sync.Mutex
	buckets   map[int][][]byte
	maxSize   int // max slices per bucket
	maxBytes  int // max idle bytes across buckets
	idleBytes int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewPool creates a new pool holding at most maxPerBucket idle slices of any
// one length and at most maxIdleBytes idle bytes in total.
// A limit of 0 means unlimited (use with caution).
func NewPool(maxPerBucket, maxIdleBytes int) *Pool {
	return &Pool{
		buckets:  make(map[int][][]byte),
		maxSize:  maxPerBucket,
		maxBytes: maxIdleBytes,
	}
}

// Get returns a Buffer of exactly n bytes holding one reference.
//
// Fresh storage is always zeroed. Recycled storage keeps whatever the
// previous owner left in it unless zero is true.
func (p *Pool) Get(n int, zero bool) (*Buffer, error) {
	if err := checkLen(n); err != nil {
		return nil, err
	}

	var data []byte
	if n > 0 {
		p.mu.Lock()
		bucket := p.buckets[n]
		if len(bucket) > 0 {
			// Pop from pool
			data = bucket[len(bucket)-1]
			bucket[len(bucket)-1] = nil
			p.buckets[n] = bucket[:len(bucket)-1]
			p.idleBytes -= n
		}
		p.mu.Unlock()
	}

	if data != nil {
		p.hits.Add(1)
		if zero {
			clear(data)
		}
	} else {
		p.misses.Add(1)
		data = make([]byte, n)
	}

	b := &Buffer{data: data, pool: p}
	b.refs.Store(1)
	return b, nil
}

// put stores data for reuse. Empty slices, and slices that would overflow
// their bucket or the byte cap, are discarded.
func (p *Pool) put(data []byte) {
	if len(data) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[len(data)]

	// Check if bucket is at capacity
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		// Bucket full, discard (GC will clean up)
		return
	}
	if p.maxBytes > 0 && p.idleBytes+len(data) > p.maxBytes {
		return
	}

	p.buckets[len(data)] = append(bucket, data)
	p.idleBytes += len(data)
}

// Trim drops every idle slice and returns the number of bytes released to
// the garbage collector. Buffers in use are unaffected and still return to
// the pool when released.
func (p *Pool) Trim() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	freed := p.idleBytes
	clear(p.buckets)
	p.idleBytes = 0
	return freed
}

// IdleBytes returns the total length of all slices waiting for reuse.
func (p *Pool) IdleBytes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idleBytes
}

// Idle returns the number of slices of length n waiting for reuse.
func (p *Pool) Idle(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

// Stats returns how many Get calls were served from the pool and how many
// needed a fresh allocation.
func (p *Pool) Stats() (hits, misses uint64) {
	return p.hits.Load(), p.misses.Load()
}
