package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T) *delaunay.Triangulation {
	tr := delaunay.New()
	for _, p := range []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 5}} {
		require.NoError(t, tr.AddPoint(p))
	}
	return tr
}

func TestDraw_Size(t *testing.T) {
	c := Draw(square(t), Options{Scale: 10, Padding: 5})
	assert.Equal(t, 110, c.Width())
	assert.Equal(t, 60, c.Height())

	// вписывание в MaxSide по длинной стороне
	img := Image(square(t), Options{MaxSide: 200, Padding: 1})
	assert.Equal(t, 202, img.Bounds().Dx())
	assert.Equal(t, 102, img.Bounds().Dy())
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, square(t), Options{Circles: true}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 840, img.Bounds().Dx())
}

func TestDraw_Empty(t *testing.T) {
	c := Draw(delaunay.New(), Options{})
	assert.Equal(t, 40, c.Width())
	assert.Equal(t, 40, c.Height())
}
