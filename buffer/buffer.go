// Package buffer provides a fixed-size contiguous byte region with
// bounds-checked access at absolute offsets.
package buffer

import (
	"encoding/binary"
	"fmt"

	"github.com/dacapoday/gather"
)

// Buffer wraps a contiguous byte region. It does not own the region and
// can be re-pointed at new storage with Rewrap, so a holder keeps seeing
// the latest storage of a growing owner.
//
// Buffer is not synchronized; sharing one across goroutines requires
// external coordination. The zero value wraps an empty region.
type Buffer struct {
	data []byte
}

var _ gather.Source = (*Buffer)(nil)

// Wrap returns a Buffer over data.
func Wrap(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Rewrap re-points the Buffer at data. Holders of the Buffer observe the
// new region on their next access.
func (b *Buffer) Rewrap(data []byte) {
	b.data = data
}

// Capacity returns the size of the wrapped region in bytes.
func (b *Buffer) Capacity() int {
	return len(b.data)
}

// Bytes returns the wrapped region. The slice aliases the region; it is
// stale after the next Rewrap.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// CopyBytesTo copies length bytes of the region starting at offset into
// dst starting at dstOffset. It implements gather.Source.
func (b *Buffer) CopyBytesTo(dst []byte, dstOffset, offset, length int) error {
	if err := b.check(offset, length); err != nil {
		return err
	}
	if dstOffset < 0 || length > len(dst)-dstOffset {
		return fmt.Errorf("%w: dstOffset=%d length=%d dst=%d", gather.ErrOutOfRange, dstOffset, length, len(dst))
	}
	copy(dst[dstOffset:], b.data[offset:offset+length])
	return nil
}

// PutBytes copies src into the region starting at offset.
func (b *Buffer) PutBytes(offset int, src []byte) error {
	if err := b.check(offset, len(src)); err != nil {
		return err
	}
	copy(b.data[offset:], src)
	return nil
}

// Uint16 reads a little-endian uint16 at offset.
func (b *Buffer) Uint16(offset int) (uint16, error) {
	if err := b.check(offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b.data[offset:]), nil
}

// PutUint16 writes a little-endian uint16 at offset.
func (b *Buffer) PutUint16(offset int, v uint16) error {
	if err := b.check(offset, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b.data[offset:], v)
	return nil
}

// Uint32 reads a little-endian uint32 at offset.
func (b *Buffer) Uint32(offset int) (uint32, error) {
	if err := b.check(offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b.data[offset:]), nil
}

// PutUint32 writes a little-endian uint32 at offset.
func (b *Buffer) PutUint32(offset int, v uint32) error {
	if err := b.check(offset, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b.data[offset:], v)
	return nil
}

// Uint64 reads a little-endian uint64 at offset.
func (b *Buffer) Uint64(offset int) (uint64, error) {
	if err := b.check(offset, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b.data[offset:]), nil
}

// PutUint64 writes a little-endian uint64 at offset.
func (b *Buffer) PutUint64(offset int, v uint64) error {
	if err := b.check(offset, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b.data[offset:], v)
	return nil
}

func (b *Buffer) check(offset, length int) error {
	if offset < 0 || length < 0 || length > len(b.data)-offset {
		return fmt.Errorf("%w: offset=%d length=%d capacity=%d", gather.ErrOutOfRange, offset, length, len(b.data))
	}
	return nil
}
