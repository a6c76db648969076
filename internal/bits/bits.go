// Package bits provides integer alignment arithmetic for capacity growth.
package bits

import "math"

// IsPowerOfTwo reports whether n is a positive power of two.
// Zero and negative values are not powers of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// AlignUp rounds value up to the smallest multiple of alignment that is
// >= value. A value that is already a multiple is returned unchanged.
// alignment must be a positive power of two.
//
// ok is false when the rounding bump would exceed the int range; aligned
// is meaningless in that case.
func AlignUp(value, alignment int) (aligned int, ok bool) {
	mask := alignment - 1
	if value > math.MaxInt-mask {
		return 0, false
	}
	return (value + mask) &^ mask, true
}
