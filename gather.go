// Package gather defines basic interfaces for accumulating fragmented byte
// data into one contiguous region.
package gather

// Source provides bounds-checked copy-out access to a contiguous byte
// region. The builder copies appended bytes through this contract only,
// never from a concrete buffer implementation.
//
// The *buffer.Buffer type satisfies this interface.
type Source interface {
	// CopyBytesTo copies length bytes of the region starting at offset
	// into dst starting at dstOffset. It returns ErrOutOfRange when the
	// requested range does not fit the region or the destination.
	CopyBytesTo(dst []byte, dstOffset, offset, length int) error
}
