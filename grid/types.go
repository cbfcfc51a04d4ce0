package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrBadShape indicates a width or height of zero.
	ErrBadShape = errors.New("grid: width and height must be > 0")

	// ErrSizeMismatch indicates that supplied cell data does not match width×height.
	ErrSizeMismatch = errors.New("grid: data length does not match grid size")
)

// Cell identifies a unit grid square by its unsigned (X, Y) coordinates.
// Cells are comparable and may be used as map keys.
type Cell struct {
	X uint `json:"x"`
	Y uint `json:"y"`
}

// C is shorthand for Cell{X: x, Y: y}.
func C(x, y uint) Cell {
	return Cell{X: x, Y: y}
}

// Distance returns the Euclidean distance between c and o.
// The result is a float64 so diagonal distances are not truncated.
func (c Cell) Distance(o Cell) float64 {
	dx := float64(c.X) - float64(o.X)
	dy := float64(c.Y) - float64(o.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// String renders the cell as "(x, y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Indexer describes the shape of a width×height grid and converts between
// 2D coordinates and row-major linear indices. The zero value is not usable;
// construct with NewIndexer.
type Indexer struct {
	width, height uint
}

// NewIndexer returns an Indexer for a width×height grid.
// Returns ErrBadShape if either dimension is zero.
func NewIndexer(width, height uint) (Indexer, error) {
	if width == 0 || height == 0 {
		return Indexer{}, fmt.Errorf("%w: got %d×%d", ErrBadShape, width, height)
	}

	return Indexer{width: width, height: height}, nil
}

// MustIndexer is like NewIndexer but panics on invalid dimensions.
// Intended for tests and package-level fixtures.
func MustIndexer(width, height uint) Indexer {
	ix, err := NewIndexer(width, height)
	if err != nil {
		panic(err)
	}

	return ix
}

// Width returns the number of columns.
func (ix Indexer) Width() uint { return ix.width }

// Height returns the number of rows.
func (ix Indexer) Height() uint { return ix.height }

// Shape returns (width, height).
func (ix Indexer) Shape() (uint, uint) { return ix.width, ix.height }

// Size returns the total number of cells, width×height.
func (ix Indexer) Size() int { return int(ix.width) * int(ix.height) }

// Contains reports whether c lies inside the grid.
// Use it to validate external input before calling Index.
func (ix Indexer) Contains(c Cell) bool {
	return c.X < ix.width && c.Y < ix.height
}

// Index maps (x, y) to its row-major slot, x varying fastest.
// Panics if x >= width or y >= height: that is a caller bug, not bad input.
func (ix Indexer) Index(x, y uint) int {
	if x >= ix.width || y >= ix.height {
		panic(fmt.Sprintf("grid: index (%d, %d) out of range for %d×%d grid", x, y, ix.width, ix.height))
	}

	return int(x) + int(y)*int(ix.width)
}

// IndexCell is Index for a Cell.
func (ix Indexer) IndexCell(c Cell) int {
	return ix.Index(c.X, c.Y)
}

// Coordinate converts a row-major index back to its Cell.
// Panics if idx is outside [0, Size()).
func (ix Indexer) Coordinate(idx int) Cell {
	if idx < 0 || idx >= ix.Size() {
		panic(fmt.Sprintf("grid: linear index %d out of range for %d×%d grid", idx, ix.width, ix.height))
	}
	w := int(ix.width)

	return Cell{X: uint(idx % w), Y: uint(idx / w)}
}
