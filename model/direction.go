package model

import "fmt"

// Direction is one of the four grid headings or None.
type Direction uint8

const (
	None Direction = iota
	Left
	Up
	Right
	Down
)

func (d Direction) Name() string {
	switch d {
	case None:
		return "NONE"
	case Left:
		return "LEFT"
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

func (d Direction) String() string {
	return d.Name()
}

// Delta is the one pixel (or one cell) step of d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case None:
		return 0, 0
	default:
		return 0, 0
	}
}
