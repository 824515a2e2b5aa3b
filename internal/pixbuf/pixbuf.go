// Package pixbuf provides reference-counted pixel storage for drawing
// surfaces.
//
// A Buffer starts with one reference owned by its creator. Every additional
// holder (for example an exported image sharing the pixels) takes its own
// reference with Retain and drops it with Release. When the last reference is
// dropped the storage is handed back to the Pool it came from, exactly once.
package pixbuf

import (
	"errors"
	"math"
	"sync/atomic"
)

// MaxLen is the largest buffer, in bytes, a Pool will hand out.
const MaxLen = 1 << 30

// Common errors for buffer operations.
var (
	// ErrTooLarge is returned when the requested length exceeds MaxLen or
	// is not representable.
	ErrTooLarge = errors.New("pixbuf: requested buffer too large")

	// ErrNegativeLen is returned for negative lengths.
	ErrNegativeLen = errors.New("pixbuf: negative buffer length")
)

// Buffer is a pixel byte slice shared by reference count.
//
// Thread safety: Retain and Release are safe for concurrent use. Access to
// the bytes themselves requires external synchronization.
type Buffer struct {
	data []byte
	refs atomic.Int32
	pool *Pool
}

// Bytes returns the underlying storage, or nil once the buffer is released.
func (b *Buffer) Bytes() []byte {
	if b.refs.Load() <= 0 {
		return nil
	}
	return b.data
}

// Len returns the byte length the buffer was created with.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Refs returns the current reference count.
func (b *Buffer) Refs() int {
	return int(b.refs.Load())
}

// Retain adds a reference. It returns false if the buffer has already been
// released, in which case no reference was taken.
func (b *Buffer) Retain() bool {
	for {
		n := b.refs.Load()
		if n <= 0 {
			return false
		}
		if b.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Release drops a reference and reports whether it was the last one.
// Releasing an already released buffer is a no-op returning false.
func (b *Buffer) Release() bool {
	for {
		n := b.refs.Load()
		if n <= 0 {
			return false
		}
		if !b.refs.CompareAndSwap(n, n-1) {
			continue
		}
		if n != 1 {
			return false
		}
		if b.pool != nil {
			b.pool.put(b.data)
		}
		return true
	}
}

// checkLen validates a requested buffer length.
func checkLen(n int) error {
	switch {
	case n < 0:
		return ErrNegativeLen
	case n > MaxLen:
		return ErrTooLarge
	}
	return nil
}

// ByteLen multiplies stride by rows, reporting ErrTooLarge on overflow or
// when the product exceeds MaxLen.
func ByteLen(stride, rows int) (int, error) {
	if stride < 0 || rows < 0 {
		return 0, ErrNegativeLen
	}
	if stride != 0 && rows > math.MaxInt/stride {
		return 0, ErrTooLarge
	}
	n := stride * rows
	if err := checkLen(n); err != nil {
		return 0, err
	}
	return n, nil
}
