package cellgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPositioned is returned by the convenience Insert/Remove methods
	// when the element type does not implement Positioned.
	ErrNotPositioned = errors.New("value does not implement Positioned")
)

// ErrInvalidDimension indicates a non-positive size argument. Name
// identifies the offending constructor or resize parameter.
type ErrInvalidDimension struct {
	Name  string
	Value int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("%s must be a positive integer: got %d", e.Name, e.Value)
}

// ErrOutOfBounds indicates a coordinate outside the configured grid extent.
// Valid coordinates lie in [0, Width) x [0, Height).
type ErrOutOfBounds struct {
	X, Y          int
	Width, Height int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("coordinate (%d, %d) outside grid bounds %dx%d", e.X, e.Y, e.Width, e.Height)
}

// ErrNotFound indicates that a remove or move operation could not locate a
// stored value at the given coordinate.
type ErrNotFound struct {
	X, Y int
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("no matching value at (%d, %d)", e.X, e.Y)
}
