package engine

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazechase/entity"
	"github.com/zucenko/mazechase/model"
	"github.com/zucenko/mazechase/pathfind"
)

// Palette colors the entities the controller seeds.
type Palette struct {
	Wall    color.RGBA
	Player  color.RGBA
	Pickup  color.RGBA
	Chasers []color.RGBA
}

// Controller owns the maze and the pathfinder and answers chaser path requests.
type Controller struct {
	Maze       *model.Maze
	Pathfinder *pathfind.Pathfinder
	CellSize   int

	rng *rand.Rand
	log *log.Entry
}

func NewController(maze *model.Maze, cellSize int, rng *rand.Rand) (*Controller, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("cell size %d must be positive", cellSize)
	}
	if len(maze.Open) == 0 {
		return nil, model.ErrNoOpenCells
	}
	return &Controller{
		Maze:       maze,
		Pathfinder: pathfind.New(maze.Passable),
		CellSize:   cellSize,
		rng:        rng,
		log:        log.WithField("component", "controller"),
	}, nil
}

// RequestNewRandomPath routes e from its current cell to a random reachable
// cell. An empty route leaves e without a target; it asks again on its next
// idle frame. Entities without a mover are ignored.
func (c *Controller) RequestNewRandomPath(e *entity.Entity) {
	if e == nil || e.Mover == nil {
		return
	}
	dest := c.Maze.Open[c.rng.Intn(len(c.Maze.Open))]
	from := model.ToGrid(e.Position(), c.CellSize)

	cells := c.Pathfinder.FindPath(from, dest)
	waypoints := make([]image.Point, 0, len(cells))
	for _, cell := range cells {
		waypoints = append(waypoints, model.ToPixel(cell, c.CellSize))
	}
	e.Mover.SetNewPath(waypoints)

	if len(cells) == 0 {
		c.log.WithFields(log.Fields{"from": from, "to": dest}).Debug("no path")
	}
}

// PlayerStart is the player's spawn cell: the maze's player rune when present,
// otherwise the first open cell.
func (c *Controller) PlayerStart() model.Cell {
	if c.Maze.PlayerSpawn != nil {
		return *c.Maze.PlayerSpawn
	}
	return c.Maze.Open[0]
}

// Seed builds the world: walls, a pickup on every open cell, a chaser on every
// spawn cell and the player last, in that render order.
func (c *Controller) Seed(p Palette) *World {
	size := c.CellSize
	w := NewWorld(c.Maze.Width*size, c.Maze.Height*size)

	for _, cell := range c.Maze.Walls {
		w.AddWall(entity.NewWall(cell, size, p.Wall))
	}
	for _, cell := range c.Maze.Open {
		center := model.ToPixel(cell, size).Add(image.Pt(size/2, size/2))
		w.AddPickup(entity.NewPickup(center, pickupSize(size), p.Pickup))
	}
	for i, cell := range c.Maze.Spawns {
		clr := p.Wall
		if len(p.Chasers) > 0 {
			clr = p.Chasers[i%len(p.Chasers)]
		}
		w.AddChaser(entity.NewChaser(model.ToPixel(cell, size), size, clr))
	}
	w.AddPlayer(entity.NewPlayer(model.ToPixel(c.PlayerStart(), size), size, p.Player))
	return w
}

// pickupSize is the pickup diameter for a cell size; 8 at 32 px cells.
func pickupSize(cellSize int) int {
	if s := cellSize / 4; s > 2 {
		return s
	}
	return 2
}
