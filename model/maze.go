package model

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMaze   = errors.New("maze has no rows")
	ErrRaggedMaze  = errors.New("maze rows differ in length")
	ErrNoOpenCells = errors.New("maze has no open cells")
	ErrTwoPlayers  = errors.New("maze has more than one player spawn")
)

// Legend names the runes that carry meaning in a maze grid.
// Every other rune is an open cell. At most one cell may carry PlayerSpawn.
type Legend struct {
	Wall        rune
	ChaserSpawn rune
	PlayerSpawn rune
}

var DefaultLegend = Legend{Wall: 'X', ChaserSpawn: 'G', PlayerSpawn: 'P'}

type Maze struct {
	Width, Height int
	// Passable is indexed [row][col], true for open cells.
	Passable [][]bool

	Walls  []Cell
	Open   []Cell
	Spawns []Cell

	PlayerSpawn *Cell
}

// ParseMaze classifies every rune of rows once. All cell lists come out in
// row-major order, so parsing the same rows twice gives identical results.
func ParseMaze(rows []string, legend Legend) (*Maze, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMaze
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, ErrEmptyMaze
	}

	m := &Maze{
		Width:    width,
		Height:   len(rows),
		Passable: make([][]bool, 0, len(rows)),
	}

	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(runes), width, ErrRaggedMaze)
		}
		passable := make([]bool, width)
		for c, char := range runes {
			cell := Cell{Col: c, Row: r}
			switch char {
			case legend.Wall:
				m.Walls = append(m.Walls, cell)
				continue
			case legend.ChaserSpawn:
				m.Spawns = append(m.Spawns, cell)
			case legend.PlayerSpawn:
				if m.PlayerSpawn != nil {
					return nil, fmt.Errorf("cell %d,%d and %d,%d: %w", m.PlayerSpawn.Col, m.PlayerSpawn.Row, c, r, ErrTwoPlayers)
				}
				spawn := cell
				m.PlayerSpawn = &spawn
			}
			passable[c] = true
			m.Open = append(m.Open, cell)
		}
		m.Passable = append(m.Passable, passable)
	}

	if len(m.Open) == 0 {
		return nil, ErrNoOpenCells
	}
	return m, nil
}

func (m *Maze) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < m.Width && c.Row < m.Height
}

func (m *Maze) IsWall(c Cell) bool {
	if !m.InBounds(c) {
		return true
	}
	return !m.Passable[c.Row][c.Col]
}
