package lists

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("lists: data is nil or not comparable")
	ErrOutOfRange      = errors.New("lists: index out of range")
	ErrEmptyCollection = errors.New("lists: list is empty")
	ErrNotFound        = errors.New("lists: data not found")
)

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, size)
}
