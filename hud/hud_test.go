package hud

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, "pickups 3/10", Status(3, 10))
	assert.Equal(t, "cleared 10/10", Status(0, 10))
	assert.Equal(t, "pickups 0/0", Status(0, 0))
}

func TestLabelRendersAndCaches(t *testing.T) {
	l, err := NewLabel(14, color.RGBA{255, 255, 255, 255})
	require.NoError(t, err)

	img, redrawn := l.Render("pickups 3/10")
	require.True(t, redrawn)
	assert.Greater(t, img.Bounds().Dx(), 10)
	assert.Greater(t, img.Bounds().Dy(), 5)

	inked := false
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			inked = true
			break
		}
	}
	assert.True(t, inked, "text leaves coverage")

	again, redrawn := l.Render("pickups 3/10")
	assert.False(t, redrawn)
	assert.Same(t, img, again)

	_, redrawn = l.Render("pickups 2/10")
	assert.True(t, redrawn)
}
