package store

import (
	"errors"
	"fmt"
)

// Errors returned by store operations. The typed errors below match these
// sentinels via errors.Is and carry the offending values for errors.As.
var (
	// ErrRowOutOfBounds indicates a line index past the last line.
	ErrRowOutOfBounds = errors.New("row out of bounds")

	// ErrColOutOfBounds indicates a column past the width of its line.
	ErrColOutOfBounds = errors.New("column out of bounds")

	// ErrByteOutOfBounds indicates a byte index past the text length.
	ErrByteOutOfBounds = errors.New("byte index out of bounds")

	// ErrPosOutOfBounds indicates a position outside the valid text or an
	// iteration range.
	ErrPosOutOfBounds = errors.New("position out of bounds")

	// ErrRangeOutOfBounds indicates a range outside the valid text.
	ErrRangeOutOfBounds = errors.New("range out of bounds")
)

// RowOutOfBoundsError reports a line index past the last line.
type RowOutOfBoundsError struct {
	Row   int
	Lines int
}

func (e *RowOutOfBoundsError) Error() string {
	return fmt.Sprintf("row %d out of bounds, have %d lines", e.Row, e.Lines)
}

func (e *RowOutOfBoundsError) Is(target error) bool {
	return target == ErrRowOutOfBounds
}

// ColOutOfBoundsError reports a column past the width of its line.
type ColOutOfBoundsError struct {
	Col   int
	Width int
}

func (e *ColOutOfBoundsError) Error() string {
	return fmt.Sprintf("column %d out of bounds, line width is %d", e.Col, e.Width)
}

func (e *ColOutOfBoundsError) Is(target error) bool {
	return target == ErrColOutOfBounds
}

// ByteOutOfBoundsError reports a byte index past the text length.
type ByteOutOfBoundsError struct {
	Byte int
	Len  int
}

func (e *ByteOutOfBoundsError) Error() string {
	return fmt.Sprintf("byte index %d out of bounds, text length is %d", e.Byte, e.Len)
}

func (e *ByteOutOfBoundsError) Is(target error) bool {
	return target == ErrByteOutOfBounds
}

// PosOutOfBoundsError reports a position outside the valid text.
type PosOutOfBoundsError struct {
	Pos TextPosition
}

func (e *PosOutOfBoundsError) Error() string {
	return fmt.Sprintf("position %v out of bounds", e.Pos)
}

func (e *PosOutOfBoundsError) Is(target error) bool {
	return target == ErrPosOutOfBounds
}

// RangeOutOfBoundsError reports a range outside the valid text.
type RangeOutOfBoundsError struct {
	Range TextRange
}

func (e *RangeOutOfBoundsError) Error() string {
	return fmt.Sprintf("range %v out of bounds", e.Range)
}

func (e *RangeOutOfBoundsError) Is(target error) bool {
	return target == ErrRangeOutOfBounds
}
