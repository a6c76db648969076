// Package builder provides a byte buffer that grows as fragments are
// appended, so a logical message can be reassembled into one contiguous
// region without knowing its final size up front.
package builder

import (
	"fmt"
	"math"

	"github.com/dacapoday/gather"
	"github.com/dacapoday/gather/buffer"
	"github.com/dacapoday/gather/internal/bits"
)

// ResizeAlignment is the default growth granularity in bytes.
const ResizeAlignment = 1024

// Builder accumulates appended bytes in an owned backing region, growing
// capacity in multiples of a fixed power-of-two alignment.
//
// Builder assumes a single writer and is not synchronized. Appends either
// complete fully or fail without mutating limit, capacity, or previously
// appended bytes.
type Builder struct {
	resizeAlignment int
	view            *buffer.Buffer

	data     []byte
	limit    int
	capacity int
}

// New returns a Builder with the default ResizeAlignment.
func New() *Builder {
	b, _ := NewAligned(ResizeAlignment)
	return b
}

// NewAligned returns a Builder that grows in multiples of alignment,
// which must be a positive power of two. Initial capacity is one
// alignment unit.
func NewAligned(alignment int) (*Builder, error) {
	if !bits.IsPowerOfTwo(alignment) {
		return nil, fmt.Errorf("%w: alignment %d must be a power of two", gather.ErrInvalidAlignment, alignment)
	}
	data := make([]byte, alignment)
	return &Builder{
		resizeAlignment: alignment,
		view:            buffer.Wrap(data),
		data:            data,
		capacity:        alignment,
	}, nil
}

// ResizeAlignment returns the growth granularity in bytes.
func (b *Builder) ResizeAlignment() int {
	return b.resizeAlignment
}

// Capacity returns the allocated size of the backing region. It is
// always a multiple of the resize alignment and never below Limit.
func (b *Builder) Capacity() int {
	return b.capacity
}

// Limit returns the number of bytes appended so far.
func (b *Builder) Limit() int {
	return b.limit
}

// Buffer returns a view over the current backing region. The view is
// rewrapped whenever an append grows the region, so it always reflects
// the latest storage; callers should still re-fetch after appends rather
// than caching slices taken from it.
func (b *Builder) Buffer() *buffer.Buffer {
	return b.view
}

// Reset restarts append operations at offset zero. Capacity and backing
// storage are retained, the region never shrinks.
func (b *Builder) Reset() *Builder {
	b.limit = 0
	return b
}

// Append copies length bytes of src starting at srcOffset to the end of
// the accumulated data, growing the backing region first if needed.
// Bounds of the source range are enforced by src itself.
//
// On error the builder is unchanged.
func (b *Builder) Append(src gather.Source, srcOffset, length int) (*Builder, error) {
	if err := b.ensureCapacity(length); err != nil {
		return b, err
	}
	if err := src.CopyBytesTo(b.data, b.limit, srcOffset, length); err != nil {
		return b, err
	}
	b.limit += length
	return b, nil
}

// ensureCapacity grows the backing region so that limit+additional bytes
// fit. Overflow of the required or aligned capacity fails before any
// allocation or mutation.
func (b *Builder) ensureCapacity(additional int) error {
	if additional > math.MaxInt-b.limit {
		return fmt.Errorf("%w: limit=%d additional=%d", gather.ErrInsufficientCapacity, b.limit, additional)
	}
	required := b.limit + additional
	if required <= b.capacity {
		return nil
	}

	newCapacity, ok := bits.AlignUp(required, b.resizeAlignment)
	if !ok {
		return fmt.Errorf("%w: limit=%d additional=%d", gather.ErrInsufficientCapacity, b.limit, additional)
	}

	data := make([]byte, newCapacity)
	copy(data, b.data[:b.limit])

	b.data = data
	b.capacity = newCapacity
	b.view.Rewrap(data)
	return nil
}
