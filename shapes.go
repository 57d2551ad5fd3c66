package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazechase/sprite"
)

type shapeKey struct {
	w, h, radius int
}

// Canvas draws entities on the ebiten screen by tinting white shape masks.
// A nil screen drops every draw, which is how skipped frames are handled.
type Canvas struct {
	screen *ebiten.Image
	masks  *sprite.Cache
	images map[shapeKey]*ebiten.Image
}

func NewCanvas() *Canvas {
	return &Canvas{
		masks:  sprite.NewCache(),
		images: make(map[shapeKey]*ebiten.Image),
	}
}

// shape uploads the mask for k once and reuses the image afterwards.
func (c *Canvas) shape(k shapeKey, mask func() *image.Alpha) *ebiten.Image {
	if img, ok := c.images[k]; ok {
		return img
	}
	img, err := ebiten.NewImageFromImage(sprite.ToRGBA(mask()), ebiten.FilterDefault)
	if err != nil {
		log.WithError(err).Error("uploading shape")
		return nil
	}
	c.images[k] = img
	return img
}

func (c *Canvas) draw(img *ebiten.Image, at image.Point, clr color.RGBA) {
	if c.screen == nil || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorM.Scale(sprite.Unpremultiply(clr))
	c.screen.DrawImage(img, op)
}

func (c *Canvas) FillRect(r image.Rectangle, radius int, clr color.RGBA) {
	w, h := r.Dx(), r.Dy()
	img := c.shape(shapeKey{w, h, radius}, func() *image.Alpha {
		return c.masks.RoundedRect(w, h, radius)
	})
	c.draw(img, r.Min, clr)
}

func (c *Canvas) FillCircle(center image.Point, radius int, clr color.RGBA) {
	d := radius * 2
	img := c.shape(shapeKey{d, d, radius}, func() *image.Alpha {
		return c.masks.Circle(d)
	})
	c.draw(img, center.Sub(image.Pt(radius, radius)), clr)
}
