// Package term runs the game in a terminal. One maze cell is two columns
// wide so cells come out roughly square.
package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazechase/engine"
	"github.com/zucenko/mazechase/model"
)

const (
	blockRune = '█'
	dotRune   = '·'
)

// Host draws entities as colored terminal cells.
type Host struct {
	screen   tcell.Screen
	cellSize int
	limiter  *engine.Limiter

	events chan tcell.Event
	done   chan struct{}

	status string
}

// New takes ownership of an initialized screen and starts reading its events.
func New(screen tcell.Screen, cellSize, fps int) *Host {
	h := &Host{
		screen:   screen,
		cellSize: cellSize,
		limiter:  engine.NewLimiter(fps),
		events:   make(chan tcell.Event, 100),
		done:     make(chan struct{}),
	}
	go h.readEvents()
	return h
}

func (h *Host) readEvents() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.done:
			return
		}
	}
}

// cellAt maps a pixel point to the terminal column and row of its maze cell.
func (h *Host) cellAt(p image.Point) (x, y int) {
	c := model.ToGrid(p, h.cellSize)
	return c.Col * 2, c.Row
}

func style(clr color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
}

// FillRect paints the cell under the rectangle's center as a full block.
func (h *Host) FillRect(r image.Rectangle, _ int, clr color.RGBA) {
	center := image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
	x, y := h.cellAt(center)
	st := style(clr)
	h.screen.SetContent(x, y, blockRune, nil, st)
	h.screen.SetContent(x+1, y, blockRune, nil, st)
}

// FillCircle paints a dot for circles smaller than half a cell and a disc for
// the rest.
func (h *Host) FillCircle(center image.Point, radius int, clr color.RGBA) {
	x, y := h.cellAt(center)
	st := style(clr)
	if radius*4 < h.cellSize {
		h.screen.SetContent(x, y, dotRune, nil, st)
		return
	}
	h.screen.SetContent(x, y, '◖', nil, st)
	h.screen.SetContent(x+1, y, '◗', nil, st)
}

// SetStatus sets the text printed on the bottom row.
func (h *Host) SetStatus(s string) {
	h.status = s
}

func (h *Host) Present() {
	_, height := h.screen.Size()
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range []rune(h.status) {
		h.screen.SetContent(i, height-1, r, nil, st)
	}
	h.screen.Show()
}

func (h *Host) Wait() {
	h.limiter.Wait()
}

// Poll drains pending events. Terminals report presses but not releases, so
// the direction is the last arrow pressed since the previous frame.
func (h *Host) Poll() engine.Input {
	var in engine.Input
	for {
		select {
		case ev := <-h.events:
			h.handle(ev, &in)
		default:
			return in
		}
	}
}

func (h *Host) handle(ev tcell.Event, in *engine.Input) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.Quit = true
		case tcell.KeyUp:
			in.Direction = model.Up
		case tcell.KeyLeft:
			in.Direction = model.Left
		case tcell.KeyDown:
			in.Direction = model.Down
		case tcell.KeyRight:
			in.Direction = model.Right
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				in.Quit = true
			}
		}
	case *tcell.EventResize:
		h.screen.Sync()
		log.Debug("terminal resized")
	}
}

func (h *Host) Clear() {
	h.screen.Clear()
}

// Close stops the event reader and restores the terminal.
func (h *Host) Close() {
	close(h.done)
	h.screen.Fini()
}
