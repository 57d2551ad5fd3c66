// Package effect animates short-lived visuals that are not part of the game
// state, such as the pop left behind by a consumed pickup.
package effect

import (
	"image"
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/zucenko/mazechase/entity"
)

// PopDuration is how long a pickup pop lasts, in seconds.
const PopDuration = 0.25

// Action is what runs while a tween advances and once it finishes.
type Action struct {
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

type running struct {
	tween  *gween.Tween
	action Action
}

type pop struct {
	center image.Point
	clr    color.RGBA
	radius float32
	alpha  float32
	done   bool
}

// Set holds the effects currently on screen.
type Set struct {
	tweens []running
	pops   []*pop
}

func NewSet() *Set {
	return &Set{}
}

// Pop starts a ring that grows from size/2 to size and fades out.
func (s *Set) Pop(center image.Point, size int, clr color.RGBA) {
	p := &pop{center: center, clr: clr, radius: float32(size) / 2, alpha: 1}
	s.pops = append(s.pops, p)

	grow := Action{onChange: func(v float32) { p.radius = v }}
	s.tweens = append(s.tweens, running{
		tween:  gween.New(float32(size)/2, float32(size), PopDuration, ease.OutQuad),
		action: grow,
	})

	fade := Action{onChange: func(v float32) { p.alpha = v }}
	fade.addOnFinish(func() { p.done = true })
	s.tweens = append(s.tweens, running{
		tween:  gween.New(1, 0, PopDuration, ease.OutQuad),
		action: fade,
	})
}

// Update advances every tween by dt seconds and drops finished effects.
func (s *Set) Update(dt float32) {
	active := s.tweens[:0]
	for _, r := range s.tweens {
		curr, finished := r.tween.Update(dt)
		if r.action.onChange != nil {
			r.action.onChange(curr)
		}
		if finished {
			for _, onFinish := range r.action.onFinish {
				onFinish()
			}
			continue
		}
		active = append(active, r)
	}
	for i := len(active); i < len(s.tweens); i++ {
		s.tweens[i] = running{}
	}
	s.tweens = active

	pops := s.pops[:0]
	for _, p := range s.pops {
		if !p.done {
			pops = append(pops, p)
		}
	}
	for i := len(pops); i < len(s.pops); i++ {
		s.pops[i] = nil
	}
	s.pops = pops
}

func (s *Set) Draw(c entity.Canvas) {
	for _, p := range s.pops {
		// color.RGBA is alpha-premultiplied, so fading scales every channel.
		a := clamp01(p.alpha)
		clr := color.RGBA{
			R: uint8(float32(p.clr.R) * a),
			G: uint8(float32(p.clr.G) * a),
			B: uint8(float32(p.clr.B) * a),
			A: uint8(float32(p.clr.A) * a),
		}
		c.FillCircle(p.center, int(p.radius+0.5), clr)
	}
}

func (s *Set) Len() int {
	return len(s.pops)
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
