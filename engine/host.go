package engine

import (
	"image"
	"image/color"

	"github.com/zucenko/mazechase/entity"
)

// Host is the window or terminal the loop runs in.
type Host interface {
	entity.Canvas
	// Present shows the frame drawn so far.
	Present()
	// Wait blocks until the next frame is due.
	Wait()
	Poll() Input
	Clear()
}

// HeadlessHost draws nothing and never asks to quit; cancel the context
// passed to Run to stop it.
type HeadlessHost struct {
	limiter *Limiter
	frames  uint64
}

func NewHeadlessHost(fps int) *HeadlessHost {
	return &HeadlessHost{limiter: NewLimiter(fps)}
}

func (h *HeadlessHost) FillRect(image.Rectangle, int, color.RGBA) {}
func (h *HeadlessHost) FillCircle(image.Point, int, color.RGBA)   {}
func (h *HeadlessHost) Present()                                  { h.frames++ }
func (h *HeadlessHost) Wait()                                     { h.limiter.Wait() }
func (h *HeadlessHost) Poll() Input                               { return Input{} }
func (h *HeadlessHost) Clear()                                    {}
func (h *HeadlessHost) Frames() uint64                            { return h.frames }
