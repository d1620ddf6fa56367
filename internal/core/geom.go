// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Cell is a position on the board in board units.
// Both coordinates are multiples of the board's block size.
type Cell struct {
	X, Y int
}

// Add returns the cell displaced by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Board describes the playing field: a width x height area in board units
// divided into square blocks of Block units.
type Board struct {
	Width  int
	Height int
	Block  int
}

// Cols returns the number of block columns on the board.
func (b Board) Cols() int {
	if b.Block <= 0 {
		return 0
	}
	return b.Width / b.Block
}

// Rows returns the number of block rows on the board.
func (b Board) Rows() int {
	if b.Block <= 0 {
		return 0
	}
	return b.Height / b.Block
}

// Capacity returns the number of cells on the board.
func (b Board) Capacity() int {
	return b.Cols() * b.Rows()
}

// Contains reports whether c lies within [0,Width) x [0,Height).
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Aligned reports whether c sits on the block grid.
func (b Board) Aligned(c Cell) bool {
	return b.Block > 0 && c.X%b.Block == 0 && c.Y%b.Block == 0
}

// CellAt returns the cell at block column col and row row.
func (b Board) CellAt(col, row int) Cell {
	return Cell{X: col * b.Block, Y: row * b.Block}
}

// GridPos converts a cell to block column and row.
func (b Board) GridPos(c Cell) (col, row int) {
	if b.Block <= 0 {
		return 0, 0
	}
	return c.X / b.Block, c.Y / b.Block
}

// Rect represents an axis-aligned bounding box.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
