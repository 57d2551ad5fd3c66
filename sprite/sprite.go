// Package sprite rasterizes the white shape masks hosts tint per entity.
package sprite

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847

// Circle returns an antialiased disc mask of the given diameter.
func Circle(diameter int) *image.Alpha {
	if diameter < 1 {
		diameter = 1
	}
	return RoundedRect(diameter, diameter, diameter/2)
}

// RoundedRect returns a w x h mask with corners of the given radius.
func RoundedRect(w, h, radius int) *image.Alpha {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if radius*2 > w {
		radius = w / 2
	}
	if radius*2 > h {
		radius = h / 2
	}
	if radius < 0 {
		radius = 0
	}

	z := vector.NewRasterizer(w, h)
	fw, fh, r := float32(w), float32(h), float32(radius)
	k := r * (1 - kappa)

	z.MoveTo(r, 0)
	z.LineTo(fw-r, 0)
	z.CubeTo(fw-k, 0, fw, k, fw, r)
	z.LineTo(fw, fh-r)
	z.CubeTo(fw, fh-k, fw-k, fh, fw-r, fh)
	z.LineTo(r, fh)
	z.CubeTo(k, fh, 0, fh-k, 0, fh-r)
	z.LineTo(0, r)
	z.CubeTo(0, k, k, 0, r, 0)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// ToRGBA turns a mask into a white premultiplied image ready for upload.
func ToRGBA(mask *image.Alpha) *image.RGBA {
	img := image.NewRGBA(mask.Bounds())
	draw.DrawMask(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, mask, mask.Bounds().Min, draw.Src)
	return img
}

// Cache keeps one mask per shape and size.
type Cache struct {
	masks map[key]*image.Alpha
}

type key struct {
	w, h, radius int
}

func NewCache() *Cache {
	return &Cache{masks: make(map[key]*image.Alpha)}
}

func (c *Cache) RoundedRect(w, h, radius int) *image.Alpha {
	k := key{w, h, radius}
	if m, ok := c.masks[k]; ok {
		return m
	}
	m := RoundedRect(w, h, radius)
	c.masks[k] = m
	return m
}

func (c *Cache) Circle(diameter int) *image.Alpha {
	k := key{diameter, diameter, diameter / 2}
	if m, ok := c.masks[k]; ok {
		return m
	}
	m := Circle(diameter)
	c.masks[k] = m
	return m
}

func (c *Cache) Len() int {
	return len(c.masks)
}

// Unpremultiply returns the color as straight-alpha channel factors in
// [0, 1], the form a color matrix scale expects for a white mask.
func Unpremultiply(clr color.RGBA) (r, g, b, a float64) {
	if clr.A == 0 {
		return 0, 0, 0, 0
	}
	alpha := float64(clr.A)
	return float64(clr.R) / alpha, float64(clr.G) / alpha, float64(clr.B) / alpha, alpha / 0xff
}
