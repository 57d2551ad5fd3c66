package entity

import (
	"github.com/zucenko/mazechase/model"
)

// chaserRoute walks the waypoint queue filled by the controller.
type chaserRoute struct{}

func (chaserRoute) Update(e *Entity, env *Env) {
	m := e.Mover
	if target, ok := m.Target(); ok && target == e.Position() {
		m.advance()
	}
	m.Current = directionToNextTarget(e, env.Paths)

	// No wall check here: routes come from the pathfinder over the same maze
	// the walls were built from. If the two ever disagree a chaser will walk
	// through walls.
	dx, dy := m.Current.Delta()
	e.X += dx
	e.Y += dy
}

// directionToNextTarget resolves the heading toward the current waypoint.
// A chaser without a target, or whose target is off both axes, asks for a new
// route and stands still this frame.
func directionToNextTarget(e *Entity, paths PathRequester) model.Direction {
	target, ok := e.Mover.Target()
	if !ok {
		requestPath(e, paths)
		return model.None
	}
	dx := target.X - e.X
	dy := target.Y - e.Y
	switch {
	case dx == 0:
		if dy > 0 {
			return model.Down
		}
		return model.Up
	case dy == 0:
		if dx > 0 {
			return model.Right
		}
		return model.Left
	default:
		requestPath(e, paths)
		return model.None
	}
}

func requestPath(e *Entity, paths PathRequester) {
	if paths != nil {
		paths.RequestNewRandomPath(e)
	}
}
