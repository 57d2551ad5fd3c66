package entity

import (
	"image"

	"github.com/zucenko/mazechase/model"
)

// Mover is the movement state shared by the player and the chasers.
type Mover struct {
	Current     model.Direction
	Buffered    model.Direction
	LastWorking model.Direction

	queue     []image.Point
	target    image.Point
	hasTarget bool
}

// Enqueue appends screen-space waypoints.
func (m *Mover) Enqueue(points ...image.Point) {
	m.queue = append(m.queue, points...)
}

// DequeueNextTarget pops the head of the waypoint queue. ok is false when the
// queue was empty.
func (m *Mover) DequeueNextTarget() (p image.Point, ok bool) {
	if len(m.queue) == 0 {
		return image.Point{}, false
	}
	p = m.queue[0]
	m.queue = m.queue[1:]
	return p, true
}

// SetNewPath appends a route and primes the current target from the queue head.
func (m *Mover) SetNewPath(points []image.Point) {
	m.Enqueue(points...)
	m.advance()
}

func (m *Mover) Target() (image.Point, bool) {
	return m.target, m.hasTarget
}

func (m *Mover) Pending() int {
	return len(m.queue)
}

func (m *Mover) advance() {
	m.target, m.hasTarget = m.DequeueNextTarget()
}
