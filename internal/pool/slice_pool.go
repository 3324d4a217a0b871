// Package pool provides sync.Pool backed scratch slices.
//
// The engines use these buffers for transient work such as sorted copies that feed a
// spread estimate or neighbour index lists. A pooled slice must never be returned to a
// caller or stored in a result.
package pool

import "sync"

var (
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
)

// GetFloat64Slice retrieves and resizes a float64 slice from the pool.
//
// The returned slice has length size; its contents are unspecified. The caller must
// call the returned cleanup function, typically with defer, once the slice is no
// longer referenced.
//
// Example:
//
//	sorted, cleanup := pool.GetFloat64Slice(len(values))
//	defer cleanup()
//	copy(sorted, values)
//	slices.Sort(sorted)
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

// GetIntSlice retrieves and resizes an int slice from the pool.
// It follows the same contract as GetFloat64Slice.
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { intSlicePool.Put(ptr) }
}
