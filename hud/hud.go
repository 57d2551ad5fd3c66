// Package hud renders the status line drawn over the maze.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var (
	parseOnce sync.Once
	parsed    *truetype.Font
	parseErr  error
)

func regular() (*truetype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = truetype.Parse(goregular.TTF)
	})
	return parsed, parseErr
}

// Status is the pickup counter text.
func Status(left, total int) string {
	if total > 0 && left == 0 {
		return fmt.Sprintf("cleared %d/%d", total, total)
	}
	return fmt.Sprintf("pickups %d/%d", left, total)
}

// Label rasterizes a single line of text and keeps the last result until the
// text changes.
type Label struct {
	face  font.Face
	color color.RGBA

	text  string
	image *image.RGBA
}

func NewLabel(size float64, clr color.RGBA) (*Label, error) {
	f, err := regular()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Label{
		face:  truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}),
		color: clr,
	}, nil
}

// Render returns the image for text and whether it was redrawn.
func (l *Label) Render(text string) (*image.RGBA, bool) {
	if l.image != nil && text == l.text {
		return l.image, false
	}
	metrics := l.face.Metrics()
	width := font.MeasureString(l.face, text).Ceil()
	if width < 1 {
		width = 1
	}
	height := (metrics.Ascent + metrics.Descent).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(l.color),
		Face: l.face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(text)
	l.text = text
	l.image = img
	return img, true
}
