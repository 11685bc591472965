package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch matches any *DimensionMismatchError
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")

	// ErrInvalidDimension matches any *InvalidDimensionError
	ErrInvalidDimension = errors.New("geometry: invalid dimension")

	// ErrDegenerateCoordinate is returned when a homogeneous vector has a zero scale factor
	ErrDegenerateCoordinate = errors.New("geometry: degenerate homogeneous coordinate (w = 0)")
)

// DimensionMismatchError reports two operands of a binary operation with different dimensions
type DimensionMismatchError struct {
	A, B int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("geometry: dimension mismatch: %d != %d", e.A, e.B)
}

// Is makes errors.Is(err, ErrDimensionMismatch) hold
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// InvalidDimensionError reports an operation that needs a fixed dimension
type InvalidDimensionError struct {
	Expected, Actual int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("geometry: invalid dimension: expected %d, got %d", e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrInvalidDimension) hold
func (e *InvalidDimensionError) Is(target error) bool {
	return target == ErrInvalidDimension
}

func checkSameDim(a, b int) error {
	if a != b {
		return &DimensionMismatchError{A: a, B: b}
	}
	return nil
}

func checkDim(expected, actual int) error {
	if expected != actual {
		return &InvalidDimensionError{Expected: expected, Actual: actual}
	}
	return nil
}
