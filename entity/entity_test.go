package entity

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazechase/model"
)

const size = 32

var (
	blue   = color.RGBA{0, 0, 255, 255}
	yellow = color.RGBA{255, 255, 0, 255}
	red    = color.RGBA{255, 0, 20, 255}
)

type drawCall struct {
	kind   string
	rect   image.Rectangle
	center image.Point
	radius int
}

type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) FillRect(r image.Rectangle, radius int, _ color.RGBA) {
	c.calls = append(c.calls, drawCall{kind: "rect", rect: r, radius: radius})
}

func (c *recordingCanvas) FillCircle(center image.Point, radius int, _ color.RGBA) {
	c.calls = append(c.calls, drawCall{kind: "circle", center: center, radius: radius})
}

type countingRequester struct {
	calls  int
	routes [][]image.Point
}

func (r *countingRequester) RequestNewRandomPath(e *Entity) {
	r.calls++
	if len(r.routes) == 0 {
		e.Mover.SetNewPath(nil)
		return
	}
	e.Mover.SetNewPath(r.routes[0])
	r.routes = r.routes[1:]
}

func walls(cells ...model.Cell) []*Entity {
	out := make([]*Entity, 0, len(cells))
	for _, c := range cells {
		out = append(out, NewWall(c, size, blue))
	}
	return out
}

func TestPlayerBlockedByWall(t *testing.T) {
	p := NewPlayer(image.Pt(size, size), size, yellow)
	env := &Env{Walls: walls(model.Cell{Col: 2, Row: 1}), Width: 10 * size}

	p.SetDirection(model.Right)
	p.Update(env)

	assert.Equal(t, image.Pt(size, size), p.Position())
}

func TestPlayerMovesOnePixelPerUpdate(t *testing.T) {
	p := NewPlayer(image.Pt(size, size), size, yellow)
	env := &Env{Width: 10 * size}

	p.SetDirection(model.Down)
	for i := 0; i < 5; i++ {
		p.Update(env)
	}

	assert.Equal(t, image.Pt(size, size+5), p.Position())
	assert.Equal(t, model.Down, p.Mover.Current)
	assert.Equal(t, model.Down, p.Mover.LastWorking)
}

func TestPlayerWraparound(t *testing.T) {
	tests := []struct {
		name  string
		start image.Point
		want  image.Point
	}{
		{"past right edge", image.Pt(10*size+1, size), image.Pt(0, size)},
		{"past left edge", image.Pt(-1, size), image.Pt(10*size, size)},
		{"on right edge stays", image.Pt(10*size, size), image.Pt(10*size, size)},
		{"below screen never wraps", image.Pt(size, 50*size), image.Pt(size, 50*size)},
		{"above screen never wraps", image.Pt(size, -40), image.Pt(size, -40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.start, size, yellow)
			p.Update(&Env{Width: 10 * size})
			assert.Equal(t, tt.want, p.Position())
		})
	}
}

func TestPlayerBufferedTurnGlidesAlongCorridor(t *testing.T) {
	// Corridor along row 1 with a wall above the player and an opening above
	// column 2.
	env := &Env{
		Walls: walls(
			model.Cell{Col: 0, Row: 0}, model.Cell{Col: 1, Row: 0},
			model.Cell{Col: 3, Row: 0},
			model.Cell{Col: 0, Row: 2}, model.Cell{Col: 1, Row: 2}, model.Cell{Col: 2, Row: 2}, model.Cell{Col: 3, Row: 2},
		),
		Width: 10 * size,
	}
	p := NewPlayer(image.Pt(size, size), size, yellow)
	p.SetDirection(model.Right)
	p.Update(env)
	require.Equal(t, image.Pt(size+1, size), p.Position())

	// Up is blocked here; the player keeps going right on its last working direction.
	p.SetDirection(model.Up)
	p.Update(env)
	assert.Equal(t, image.Pt(size+2, size), p.Position())
	assert.Equal(t, model.Up, p.Mover.Buffered)
	assert.Equal(t, model.Right, p.Mover.Current)

	for p.X < 2*size {
		p.Update(env)
	}
	assert.Equal(t, image.Pt(2*size, size), p.Position())

	// Aligned under the opening the buffered turn is taken.
	p.Update(env)
	assert.Equal(t, image.Pt(2*size, size-1), p.Position())
	assert.Equal(t, model.Up, p.Mover.Current)
}

func TestPlayerStopsWhenEveryDirectionBlocked(t *testing.T) {
	env := &Env{Walls: walls(model.Cell{Col: 2, Row: 1}), Width: 10 * size}
	p := NewPlayer(image.Pt(size, size), size, yellow)
	p.SetDirection(model.Right)
	for i := 0; i < 3; i++ {
		p.Update(env)
	}
	assert.Equal(t, image.Pt(size, size), p.Position())
	assert.Equal(t, model.None, p.Mover.Current)
}

func TestPickupConsumedOnce(t *testing.T) {
	near := NewPickup(image.Pt(size+size/2, size+size/2), 8, yellow)
	far := NewPickup(image.Pt(5*size+size/2, size+size/2), 8, yellow)
	env := &Env{Pickups: []*Entity{near, far}, Width: 10 * size}

	p := NewPlayer(image.Pt(size, size), size, yellow)
	p.Update(env)
	assert.False(t, near.Active)
	assert.True(t, far.Active)

	// A second overlapping frame changes nothing.
	p.Update(env)
	assert.False(t, near.Active)
	assert.True(t, far.Active)
}

func TestPickupTouchingEdgeIsNotConsumed(t *testing.T) {
	// Pickup box spans x 60..68; player box spans 28..60.
	pickup := NewPickup(image.Pt(64, size+size/2), 8, yellow)
	p := NewPlayer(image.Pt(size-4, size), size, yellow)
	p.Update(&Env{Pickups: []*Entity{pickup}, Width: 10 * size})
	assert.True(t, pickup.Active)
}

func TestCheckCollisionInDirection(t *testing.T) {
	p := NewPlayer(image.Pt(size, size), size, yellow)
	ws := walls(model.Cell{Col: 2, Row: 1})

	blocked, desired := p.CheckCollisionInDirection(model.Right, ws)
	assert.True(t, blocked)
	assert.Equal(t, image.Pt(size+1, size), desired)

	blocked, desired = p.CheckCollisionInDirection(model.Left, ws)
	assert.False(t, blocked)
	assert.Equal(t, image.Pt(size-1, size), desired)

	blocked, desired = p.CheckCollisionInDirection(model.None, ws)
	assert.False(t, blocked)
	assert.Equal(t, p.Position(), desired)
}

func TestMoverQueue(t *testing.T) {
	var m Mover
	_, ok := m.DequeueNextTarget()
	assert.False(t, ok)

	m.Enqueue(image.Pt(0, 0), image.Pt(0, 32))
	p, ok := m.DequeueNextTarget()
	require.True(t, ok)
	assert.Equal(t, image.Pt(0, 0), p)
	assert.Equal(t, 1, m.Pending())

	m.SetNewPath([]image.Point{image.Pt(32, 32)})
	target, ok := m.Target()
	require.True(t, ok)
	assert.Equal(t, image.Pt(0, 32), target, "existing queue head is primed first")
	assert.Equal(t, 1, m.Pending())

	m.SetNewPath(nil)
	target, ok = m.Target()
	require.True(t, ok)
	assert.Equal(t, image.Pt(32, 32), target)

	m.SetNewPath(nil)
	_, ok = m.Target()
	assert.False(t, ok)
}

func TestChaserWalksWaypoints(t *testing.T) {
	c := NewChaser(image.Pt(size, size), size, red)
	c.Mover.SetNewPath([]image.Point{image.Pt(2*size, size), image.Pt(2*size, 2*size)})
	req := &countingRequester{}
	env := &Env{Paths: req}

	for i := 0; i < size; i++ {
		c.Update(env)
	}
	assert.Equal(t, image.Pt(2*size, size), c.Position())
	assert.Equal(t, model.Right, c.Mover.Current)

	c.Update(env)
	assert.Equal(t, image.Pt(2*size, size+1), c.Position())
	assert.Equal(t, model.Down, c.Mover.Current)
	assert.Zero(t, req.calls)
}

func TestChaserIdleRequestsPath(t *testing.T) {
	c := NewChaser(image.Pt(size, size), size, red)
	req := &countingRequester{routes: [][]image.Point{{image.Pt(size, 0)}}}
	env := &Env{Paths: req}

	c.Update(env)
	assert.Equal(t, 1, req.calls)
	assert.Equal(t, model.None, c.Mover.Current)
	assert.Equal(t, image.Pt(size, size), c.Position(), "idle frame does not move")
	_, ok := c.Mover.Target()
	assert.True(t, ok)

	c.Update(env)
	assert.Equal(t, model.Up, c.Mover.Current)
	assert.Equal(t, image.Pt(size, size-1), c.Position())
}

func TestChaserDiagonalTargetRequestsNewPath(t *testing.T) {
	c := NewChaser(image.Pt(size, size), size, red)
	c.Mover.SetNewPath([]image.Point{image.Pt(2*size, 2*size)})
	req := &countingRequester{}

	c.Update(&Env{Paths: req})
	assert.Equal(t, 1, req.calls)
	assert.Equal(t, model.None, c.Mover.Current)
	assert.Equal(t, image.Pt(size, size), c.Position())
}

func TestChaserWithoutRequesterStaysIdle(t *testing.T) {
	c := NewChaser(image.Pt(size, size), size, red)
	c.Update(&Env{})
	assert.Equal(t, image.Pt(size, size), c.Position())
}

func TestDraw(t *testing.T) {
	canvas := &recordingCanvas{}
	NewWall(model.Cell{Col: 1, Row: 2}, size, blue).Draw(canvas)
	NewPlayer(image.Pt(size, size), size, yellow).Draw(canvas)
	NewPickup(image.Pt(48, 48), 8, yellow).Draw(canvas)

	require.Len(t, canvas.calls, 3)
	assert.Equal(t, drawCall{kind: "rect", rect: image.Rect(32, 64, 64, 96), radius: wallCornerRadius}, canvas.calls[0])
	assert.Equal(t, drawCall{kind: "circle", center: image.Pt(48, 48), radius: 16}, canvas.calls[1])
	assert.Equal(t, drawCall{kind: "circle", center: image.Pt(48, 48), radius: 4}, canvas.calls[2])
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "WALL", KindWall.Name())
	assert.Equal(t, "CHASER", KindChaser.Name())
	assert.Equal(t, "N/A(9)", Kind(9).Name())
}
