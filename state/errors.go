package state

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a List index is outside its bounds.
var ErrIndexOutOfRange = errors.New("state: index out of range")

func indexError(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
}
