// Package pathfind runs A* over a maze passability grid.
//
// The search grid is stored row first, the way the passability grid is laid
// out. Callers pass and receive model.Cell values in (column, row) order and
// never see the internal indexing.
package pathfind

import (
	astar "github.com/beefsack/go-astar"

	"github.com/zucenko/mazechase/model"
)

var neighbours = [4]model.Direction{model.Left, model.Up, model.Right, model.Down}

type Pathfinder struct {
	tiles [][]*tile
	rows  int
	cols  int
}

type tile struct {
	cell model.Cell
	open bool
	grid *Pathfinder
}

// New builds the search grid once. passable is indexed [row][col].
func New(passable [][]bool) *Pathfinder {
	pf := &Pathfinder{rows: len(passable)}
	if pf.rows > 0 {
		pf.cols = len(passable[0])
	}
	pf.tiles = make([][]*tile, pf.rows)
	for r, line := range passable {
		pf.tiles[r] = make([]*tile, len(line))
		for c, open := range line {
			pf.tiles[r][c] = &tile{cell: model.Cell{Col: c, Row: r}, open: open, grid: pf}
		}
	}
	return pf
}

// FindPath returns the cells after from up to and including to, each one
// orthogonally adjacent to the previous. The result is empty when from equals
// to, when either end is a wall or outside the grid, or when to is unreachable.
func (pf *Pathfinder) FindPath(from, to model.Cell) []model.Cell {
	if from == to {
		return nil
	}
	start := pf.at(from)
	goal := pf.at(to)
	if start == nil || goal == nil || !start.open || !goal.open {
		return nil
	}

	found, _, ok := astar.Path(start, goal)
	if !ok || len(found) == 0 {
		return nil
	}

	// astar hands the route back goal first; normalise to start first so the
	// result does not depend on that detail.
	steps := make([]*tile, len(found))
	for i, p := range found {
		steps[i] = p.(*tile)
	}
	if steps[0] != start {
		for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
			steps[i], steps[j] = steps[j], steps[i]
		}
	}

	path := make([]model.Cell, 0, len(steps)-1)
	for _, t := range steps[1:] {
		path = append(path, t.cell)
	}
	return path
}

func (pf *Pathfinder) at(c model.Cell) *tile {
	if c.Row < 0 || c.Col < 0 || c.Row >= pf.rows || c.Col >= len(pf.tiles[c.Row]) {
		return nil
	}
	return pf.tiles[c.Row][c.Col]
}

func (t *tile) PathNeighbors() []astar.Pather {
	out := make([]astar.Pather, 0, len(neighbours))
	for _, d := range neighbours {
		n := t.grid.at(t.cell.Add(d))
		if n != nil && n.open {
			out = append(out, n)
		}
	}
	return out
}

func (t *tile) PathNeighborCost(to astar.Pather) float64 {
	return 1
}

func (t *tile) PathEstimatedCost(to astar.Pather) float64 {
	other := to.(*tile)
	return float64(abs(t.cell.Row-other.cell.Row) + abs(t.cell.Col-other.cell.Col))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
