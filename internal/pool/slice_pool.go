package pool

import "sync"

// SlicePool reuses typed scratch slices across coincidence computations.
// The zero value is ready to use.
type SlicePool[T any] struct {
	p sync.Pool
}

// Get returns a slice of exactly size elements together with a cleanup
// function that returns it to the pool.
//
// Pooled memory is not cleared; callers that need zeroed elements use
// GetZeroed. The slice must not be used after cleanup is called.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []T: A slice with length equal to size
//   - func(): Cleanup function, typically deferred
func (sp *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := sp.p.Get().(*[]T)
	if ptr == nil {
		ptr = new([]T)
	}

	slice := *ptr
	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { sp.p.Put(ptr) }
}

// GetZeroed is Get followed by clearing every element.
func (sp *SlicePool[T]) GetZeroed(size int) ([]T, func()) {
	slice, cleanup := sp.Get(size)
	clear(slice)

	return slice, cleanup
}

var int64SlicePool SlicePool[int64]

// GetInt64Slice retrieves a zeroed int64 slice of the given length, used for
// delay-scan difference arrays.
//
// Example:
//
//	diff, cleanup := pool.GetInt64Slice(steps + 1)
//	defer cleanup()
func GetInt64Slice(size int) ([]int64, func()) {
	return int64SlicePool.GetZeroed(size)
}
