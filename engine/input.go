package engine

import "github.com/zucenko/mazechase/model"

// Input is what a host samples once per frame.
type Input struct {
	Direction model.Direction
	Quit      bool
}

// ResolveKeys maps held arrow keys to one direction. When several are held
// the first in the order up, left, down, right wins.
func ResolveKeys(up, left, down, right bool) model.Direction {
	switch {
	case up:
		return model.Up
	case left:
		return model.Left
	case down:
		return model.Down
	case right:
		return model.Right
	default:
		return model.None
	}
}
