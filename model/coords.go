package model

import "image"

// Cell is a maze position in (column, row) order.
type Cell struct {
	Col, Row int
}

func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}

// ToGrid converts a screen position into the cell that contains it.
// Inputs are expected to be non-negative.
func ToGrid(p image.Point, cellSize int) Cell {
	return Cell{Col: p.X / cellSize, Row: p.Y / cellSize}
}

// ToPixel returns the top-left screen position of c.
func ToPixel(c Cell, cellSize int) image.Point {
	return image.Pt(c.Col*cellSize, c.Row*cellSize)
}
