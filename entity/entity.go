// Package entity holds everything that lives on the maze: walls, pickups,
// the player and the chasers.
//
// An Entity is a Body (position, size, color, shape) plus optional movement
// state and a Behavior picked by its Kind. Behaviors never keep pointers to
// the world; each update receives an Env with the collections it may read.
package entity

import (
	"fmt"
	"image"
	"image/color"

	"github.com/zucenko/mazechase/model"
)

// Kind tags what an entity is.
type Kind uint8

const (
	KindWall Kind = iota
	KindPickup
	KindPlayer
	KindChaser
)

func (k Kind) Name() string {
	switch k {
	case KindWall:
		return "WALL"
	case KindPickup:
		return "PICKUP"
	case KindPlayer:
		return "PLAYER"
	case KindChaser:
		return "CHASER"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// wallCornerRadius is the rounding applied to rectangle draws.
const wallCornerRadius = 4

// Canvas is the drawing surface a host provides.
type Canvas interface {
	FillRect(r image.Rectangle, radius int, clr color.RGBA)
	FillCircle(center image.Point, radius int, clr color.RGBA)
}

// PathRequester hands a fresh route to a chaser that ran out of waypoints.
type PathRequester interface {
	RequestNewRandomPath(e *Entity)
}

// Env is the read-only view of the world passed to every update.
type Env struct {
	Walls   []*Entity
	Pickups []*Entity
	// Width is the screen width used for horizontal wraparound.
	Width int
	Paths PathRequester
}

// Behavior drives an entity for one frame.
type Behavior interface {
	Update(e *Entity, env *Env)
}

// Body is the positioned, drawable part of every entity. X, Y is the top-left
// corner of the bounding box, except for circles where it is the center.
type Body struct {
	X, Y  int
	Size  int
	Color color.RGBA
	Shape Shape
}

func (b *Body) Position() image.Point {
	return image.Pt(b.X, b.Y)
}

func (b *Body) SetPosition(p image.Point) {
	b.X, b.Y = p.X, p.Y
}

func (b *Body) Bounds() image.Rectangle {
	return b.BoundsAt(b.Position())
}

// BoundsAt is the box the body would occupy at p.
func (b *Body) BoundsAt(p image.Point) image.Rectangle {
	if b.Shape == ShapeCircle {
		half := b.Size / 2
		return image.Rect(p.X-half, p.Y-half, p.X-half+b.Size, p.Y-half+b.Size)
	}
	return image.Rect(p.X, p.Y, p.X+b.Size, p.Y+b.Size)
}

type Entity struct {
	Kind Kind
	Body
	// Mover is nil for walls and pickups.
	Mover *Mover
	// Active is false once the entity left the game (a consumed pickup).
	Active bool

	behavior Behavior
}

func NewWall(cell model.Cell, size int, clr color.RGBA) *Entity {
	p := model.ToPixel(cell, size)
	return &Entity{
		Kind:   KindWall,
		Body:   Body{X: p.X, Y: p.Y, Size: size, Color: clr, Shape: ShapeRect},
		Active: true,
	}
}

// NewPickup places a pickup centered on center.
func NewPickup(center image.Point, size int, clr color.RGBA) *Entity {
	return &Entity{
		Kind:   KindPickup,
		Body:   Body{X: center.X, Y: center.Y, Size: size, Color: clr, Shape: ShapeCircle},
		Active: true,
	}
}

func NewPlayer(pos image.Point, size int, clr color.RGBA) *Entity {
	e := &Entity{
		Kind:   KindPlayer,
		Body:   Body{X: pos.X, Y: pos.Y, Size: size, Color: clr, Shape: ShapeRect},
		Mover:  &Mover{},
		Active: true,
	}
	e.behavior = &playerControl{lastSafe: pos}
	return e
}

func NewChaser(pos image.Point, size int, clr color.RGBA) *Entity {
	return &Entity{
		Kind:     KindChaser,
		Body:     Body{X: pos.X, Y: pos.Y, Size: size, Color: clr, Shape: ShapeRect},
		Mover:    &Mover{},
		Active:   true,
		behavior: chaserRoute{},
	}
}

// Update runs the entity's behavior for one frame. Walls and pickups do nothing.
func (e *Entity) Update(env *Env) {
	if e.behavior == nil {
		return
	}
	e.behavior.Update(e, env)
}

func (e *Entity) Draw(c Canvas) {
	switch e.Kind {
	case KindPlayer:
		half := e.Size / 2
		c.FillCircle(image.Pt(e.X+half, e.Y+half), half, e.Color)
	case KindPickup:
		c.FillCircle(e.Position(), e.Size/2, e.Color)
	case KindWall, KindChaser:
		c.FillRect(e.Bounds(), wallCornerRadius, e.Color)
	default:
		c.FillRect(e.Bounds(), wallCornerRadius, e.Color)
	}
}

// SetDirection sets both the current and the buffered direction.
func (e *Entity) SetDirection(d model.Direction) {
	if e.Mover == nil {
		return
	}
	e.Mover.Current = d
	e.Mover.Buffered = d
}

// CollidesWithWall reports whether a box of the entity's size at p overlaps
// any wall. Boxes that only share an edge do not collide.
func (e *Entity) CollidesWithWall(p image.Point, walls []*Entity) bool {
	box := e.BoundsAt(p)
	for _, w := range walls {
		if box.Overlaps(w.Bounds()) {
			return true
		}
	}
	return false
}

// CheckCollisionInDirection looks one pixel ahead in d. None never collides
// and yields the current position.
func (e *Entity) CheckCollisionInDirection(d model.Direction, walls []*Entity) (bool, image.Point) {
	if d == model.None {
		return false, e.Position()
	}
	dx, dy := d.Delta()
	desired := e.Position().Add(image.Pt(dx, dy))
	return e.CollidesWithWall(desired, walls), desired
}
