package entity

import (
	"image"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazechase/model"
)

// playerControl moves the player from its buffered direction.
type playerControl struct {
	lastSafe image.Point
}

func (pc *playerControl) Update(e *Entity, env *Env) {
	m := e.Mover

	// Horizontal wraparound only; the vertical axis never wraps.
	if e.X < 0 {
		e.X = env.Width
	}
	if e.X > env.Width {
		e.X = 0
	}

	pc.lastSafe = e.Position()

	if blocked, _ := e.CheckCollisionInDirection(m.Buffered, env.Walls); blocked {
		automaticMove(e, m.Current, env.Walls)
	} else {
		automaticMove(e, m.Buffered, env.Walls)
		m.Current = m.Buffered
	}

	if e.CollidesWithWall(e.Position(), env.Walls) {
		e.SetPosition(pc.lastSafe)
	}

	consumePickups(e, env.Pickups)
}

// automaticMove steps one pixel in d. When d is blocked it falls back to the
// last direction that worked, which keeps the player gliding along a
// corridor while a turn is buffered.
func automaticMove(e *Entity, d model.Direction, walls []*Entity) {
	m := e.Mover
	if d == model.None {
		return
	}
	if blocked, desired := e.CheckCollisionInDirection(d, walls); !blocked {
		e.SetPosition(desired)
		m.LastWorking = d
		return
	}

	m.Current = m.LastWorking
	if m.LastWorking == model.None || m.LastWorking == d {
		return
	}
	if blocked, desired := e.CheckCollisionInDirection(m.LastWorking, walls); !blocked {
		e.SetPosition(desired)
	}
}

func consumePickups(e *Entity, pickups []*Entity) {
	box := e.Bounds()
	for _, p := range pickups {
		if !p.Active {
			continue
		}
		if box.Overlaps(p.Bounds()) {
			p.Active = false
			log.WithFields(log.Fields{"x": p.X, "y": p.Y}).Debug("pickup consumed")
		}
	}
}
