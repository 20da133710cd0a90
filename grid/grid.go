// Package grid holds the small array types shared by images and per-pixel
// coordinate records: a Shape and a row-major two dimensional Grid.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape lists the extent of each dimension of an array.
type Shape []int

// Equal reports whether both shapes have the same rank and extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Size is the number of elements an array of this shape holds.
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// String renders the shape as a tuple, e.g. "(5, 5)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Grid is a row-major rows x cols array.
type Grid[T any] struct {
	rows, cols int
	data       []T
}

// New wraps data as a rows x cols grid. len(data) must equal rows*cols.
func New[T any](rows, cols int, data []T) (Grid[T], error) {
	if rows < 0 || cols < 0 {
		return Grid[T]{}, fmt.Errorf("grid: negative dimension (%d, %d)", rows, cols)
	}
	if len(data) != rows*cols {
		return Grid[T]{}, fmt.Errorf("grid: %d values do not fill shape (%d, %d)", len(data), rows, cols)
	}
	return Grid[T]{rows: rows, cols: cols, data: data}, nil
}

// MustNew is New that panics on error. Intended for literals in tests and
// fixed tables.
func MustNew[T any](rows, cols int, data []T) Grid[T] {
	g, err := New(rows, cols, data)
	if err != nil {
		panic(err)
	}
	return g
}

// FromRows builds a grid from a slice of equal-length rows.
func FromRows[T any](rows [][]T) (Grid[T], error) {
	if len(rows) == 0 {
		return Grid[T]{}, nil
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return Grid[T]{}, fmt.Errorf("grid: row %d has %d values, want %d", i, len(r), cols)
		}
		data = append(data, r...)
	}
	return Grid[T]{rows: len(rows), cols: cols, data: data}, nil
}

// Fill returns a rows x cols grid with every cell set to v.
func Fill[T any](rows, cols int, v T) Grid[T] {
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = v
	}
	return Grid[T]{rows: rows, cols: cols, data: data}
}

func (g Grid[T]) Shape() Shape { return Shape{g.rows, g.cols} }

// Empty reports whether the grid was never assigned.
func (g Grid[T]) Empty() bool { return g.data == nil && g.rows == 0 && g.cols == 0 }

// InBounds reports whether (i, j) addresses a cell.
func (g Grid[T]) InBounds(i, j int) bool {
	return i >= 0 && j >= 0 && i < g.rows && j < g.cols
}

// At returns the value at row i, column j. It panics when out of bounds.
func (g Grid[T]) At(i, j int) T {
	if !g.InBounds(i, j) {
		panic(fmt.Sprintf("grid: index (%d, %d) out of range %s", i, j, g.Shape()))
	}
	return g.data[i*g.cols+j]
}

// Data exposes the row-major backing slice.
func (g Grid[T]) Data() []T { return g.data }

// Rows copies the grid out as a slice of rows.
func (g Grid[T]) Rows() [][]T {
	out := make([][]T, g.rows)
	for i := range out {
		out[i] = append([]T(nil), g.data[i*g.cols:(i+1)*g.cols]...)
	}
	return out
}

// Equal compares two grids of comparable values cell by cell.
func Equal[T comparable](a, b Grid[T]) bool {
	if !a.Shape().Equal(b.Shape()) || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
