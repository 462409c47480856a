// Package field provides the generic 2D container every board in the advisor
// is built on: the shot grid, boolean placement masks, per-ship placement
// counts and the final heat values all share it.
package field

import (
	"errors"
	"fmt"

	"github.com/wojtekolesinski/admiral/models"
)

var ErrOutOfBounds = errors.New("index out of bounds")

// Field is a rectangular grid of T with dimensions fixed at construction,
// stored row-major.
type Field[T any] struct {
	width  int
	height int
	cells  []T
}

// New creates a width×height field with every cell set to value.
func New[T any](width, height int, value T) *Field[T] {
	f := NewDefault[T](width, height)
	for i := range f.cells {
		f.cells[i] = value
	}
	return f
}

// NewDefault creates a width×height field of zero values.
func NewDefault[T any](width, height int) *Field[T] {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("field: invalid dimensions %dx%d", width, height))
	}
	return &Field[T]{width: width, height: height, cells: make([]T, width*height)}
}

func (f *Field[T]) Width() int  { return f.width }
func (f *Field[T]) Height() int { return f.height }

// LineLength returns how many cells a single line along axis holds.
func (f *Field[T]) LineLength(axis models.Axis) int {
	if axis == models.AxisRow {
		return f.width
	}
	return f.height
}

// LineCount returns how many lines the board has along axis.
func (f *Field[T]) LineCount(axis models.Axis) int {
	if axis == models.AxisRow {
		return f.height
	}
	return f.width
}

func (f *Field[T]) index(c models.Coordinate) (int, error) {
	if c.Row < 0 || c.Row >= f.height {
		return 0, fmt.Errorf("row %d: %w", c.Row, ErrOutOfBounds)
	}
	if c.Column < 0 || c.Column >= f.width {
		return 0, fmt.Errorf("column %d: %w", c.Column, ErrOutOfBounds)
	}
	return c.Row*f.width + c.Column, nil
}

// Value returns the cell at c.
func (f *Field[T]) Value(c models.Coordinate) (T, error) {
	i, err := f.index(c)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.cells[i], nil
}

// SetValue replaces the cell at c.
func (f *Field[T]) SetValue(c models.Coordinate, value T) error {
	i, err := f.index(c)
	if err != nil {
		return err
	}
	f.cells[i] = value
	return nil
}

func (f *Field[T]) lineCell(axis models.Axis, index, offset int) int {
	if axis == models.AxisRow {
		return index*f.width + offset
	}
	return offset*f.width + index
}

// Line copies out the index-th line along axis: Line(AxisRow, 2) is the
// third row.
func (f *Field[T]) Line(axis models.Axis, index int) ([]T, error) {
	if index < 0 || index >= f.LineCount(axis) {
		return nil, fmt.Errorf("%s %d: %w", axis, index, ErrOutOfBounds)
	}
	line := make([]T, f.LineLength(axis))
	for i := range line {
		line[i] = f.cells[f.lineCell(axis, index, i)]
	}
	return line, nil
}

// SetLine replaces the index-th line along axis with line, which must have
// the exact line length.
func (f *Field[T]) SetLine(axis models.Axis, index int, line []T) error {
	if index < 0 || index >= f.LineCount(axis) {
		return fmt.Errorf("%s %d: %w", axis, index, ErrOutOfBounds)
	}
	if len(line) != f.LineLength(axis) {
		return fmt.Errorf("field.SetLine: line length %d, want %d", len(line), f.LineLength(axis))
	}
	for i, v := range line {
		f.cells[f.lineCell(axis, index, i)] = v
	}
	return nil
}

// MergeLine combines the index-th line with line cell-by-cell through fn and
// stores the result back.
func (f *Field[T]) MergeLine(axis models.Axis, index int, line []T, fn func(T, T) T) error {
	current, err := f.Line(axis, index)
	if err != nil {
		return err
	}
	if len(line) != len(current) {
		return fmt.Errorf("field.MergeLine: line length %d, want %d", len(line), len(current))
	}
	for i := range current {
		current[i] = fn(current[i], line[i])
	}
	return f.SetLine(axis, index, current)
}

// LinesThrough returns copies of the row and column passing through c.
func (f *Field[T]) LinesThrough(c models.Coordinate) (row, column []T, err error) {
	row, err = f.Line(models.AxisRow, c.Row)
	if err != nil {
		return nil, nil, err
	}
	column, err = f.Line(models.AxisColumn, c.Column)
	if err != nil {
		return nil, nil, err
	}
	return row, column, nil
}

// FindAll returns every coordinate whose value satisfies pred, in row-major
// order.
func (f *Field[T]) FindAll(pred func(T) bool) []models.Coordinate {
	var out []models.Coordinate
	for row := 0; row < f.height; row++ {
		for column := 0; column < f.width; column++ {
			if pred(f.cells[row*f.width+column]) {
				out = append(out, models.Coordinate{Row: row, Column: column})
			}
		}
	}
	return out
}

// Transform maps every cell through fn into a new field, leaving f untouched.
func Transform[T, U any](f *Field[T], fn func(T) U) *Field[U] {
	out := NewDefault[U](f.width, f.height)
	for i, v := range f.cells {
		out.cells[i] = fn(v)
	}
	return out
}

// Merge combines two equal-shaped fields cell-by-cell through fn into a new
// field. Mismatched shapes are a bug in the caller.
func Merge[T, U, V any](a *Field[T], b *Field[U], fn func(T, U) V) *Field[V] {
	if a.width != b.width || a.height != b.height {
		panic(fmt.Sprintf("field: merging %dx%d with %dx%d", a.width, a.height, b.width, b.height))
	}
	out := NewDefault[V](a.width, a.height)
	for i := range a.cells {
		out.cells[i] = fn(a.cells[i], b.cells[i])
	}
	return out
}
