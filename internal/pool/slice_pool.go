package pool

import "sync"

// Scratch slice pools used while gathering coordinates of many rows.
var (
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
)

// GetFloat64Slice retrieves and resizes a float64 slice from the pool.
//
// The returned slice has exactly size elements; its contents are unspecified.
// If the pooled slice has insufficient capacity, a new slice is allocated.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Example:
//
//	lngs, cleanup := pool.GetFloat64Slice(col.NumPoints())
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
