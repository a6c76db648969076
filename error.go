package gather

import "errors"

var (
	ErrInvalidAlignment     = errors.New("invalid alignment")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrOutOfRange           = errors.New("out of range")
)
