package engine

import (
	"github.com/zucenko/mazechase/entity"
)

// World is the render list and the lookup lists entities read during updates.
type World struct {
	Entities []*entity.Entity
	Walls    []*entity.Entity
	Pickups  []*entity.Entity
	Chasers  []*entity.Entity
	Player   *entity.Entity

	Width, Height int

	pickupsTotal int
}

func NewWorld(width, height int) *World {
	return &World{Width: width, Height: height}
}

func (w *World) AddWall(e *entity.Entity) {
	w.Entities = append(w.Entities, e)
	w.Walls = append(w.Walls, e)
}

func (w *World) AddPickup(e *entity.Entity) {
	w.Entities = append(w.Entities, e)
	w.Pickups = append(w.Pickups, e)
	w.pickupsTotal++
}

func (w *World) AddChaser(e *entity.Entity) {
	w.Entities = append(w.Entities, e)
	w.Chasers = append(w.Chasers, e)
}

func (w *World) AddPlayer(e *entity.Entity) {
	w.Entities = append(w.Entities, e)
	w.Player = e
}

// Compact drops inactive entities from the render and pickup lists and
// returns them. It runs between frames, never while the lists are iterated.
func (w *World) Compact() []*entity.Entity {
	var removed []*entity.Entity
	kept := w.Entities[:0]
	for _, e := range w.Entities {
		if e.Active {
			kept = append(kept, e)
			continue
		}
		removed = append(removed, e)
	}
	for i := len(kept); i < len(w.Entities); i++ {
		w.Entities[i] = nil
	}
	w.Entities = kept

	if len(removed) == 0 {
		return nil
	}
	pickups := w.Pickups[:0]
	for _, e := range w.Pickups {
		if e.Active {
			pickups = append(pickups, e)
		}
	}
	for i := len(pickups); i < len(w.Pickups); i++ {
		w.Pickups[i] = nil
	}
	w.Pickups = pickups
	return removed
}

func (w *World) PickupsLeft() int {
	n := 0
	for _, p := range w.Pickups {
		if p.Active {
			n++
		}
	}
	return n
}

func (w *World) PickupsTotal() int {
	return w.pickupsTotal
}
