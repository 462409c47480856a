package models

import "fmt"

// Axis selects one of the two board directions. Line-wise algorithms take an
// Axis so row and column logic is written only once.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

func (a Axis) Opposite() Axis {
	if a == AxisRow {
		return AxisColumn
	}
	return AxisRow
}

func (a Axis) String() string {
	if a == AxisRow {
		return "row"
	}
	return "column"
}

// ShotStatus is the recorded outcome for a single board cell.
type ShotStatus int

const (
	ShotUntested ShotStatus = iota
	ShotMiss
	ShotHit
	ShotSunk
)

// CanContainShip reports whether an undiscovered ship segment could still
// occupy a cell with this status. A miss or a sunk segment rules the cell out.
func (s ShotStatus) CanContainShip() bool {
	return s == ShotUntested || s == ShotHit
}

// Coordinate is a zero-indexed board position. Players enter and read
// coordinates 1-indexed and column-first; the conversion happens only at the
// edges, everything internal stays zero-indexed row/column.
type Coordinate struct {
	Row    int
	Column int
}

func (c Coordinate) AxisIndex(axis Axis) int {
	if axis == AxisRow {
		return c.Row
	}
	return c.Column
}

func (c Coordinate) WithAxisIndex(axis Axis, index int) Coordinate {
	if axis == AxisRow {
		c.Row = index
	} else {
		c.Column = index
	}
	return c
}

// String formats the coordinate the way players read it: 1-indexed, column first.
func (c Coordinate) String() string {
	return fmt.Sprintf("[%d, %d]", c.Column+1, c.Row+1)
}

// FromUser converts a 1-indexed column/row pair into a Coordinate.
func FromUser(column, row int) Coordinate {
	return Coordinate{Row: row - 1, Column: column - 1}
}
