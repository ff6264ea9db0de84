package pointset

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestRandom(t *testing.T) {
	pts := Random(rand.New(rand.NewSource(1)), 100, 10, 20)
	require.Len(t, pts, 100)
	for _, p := range pts {
		assert.True(t, p.X >= 0 && p.X < 10, "x out of range: %v", p)
		assert.True(t, p.Y >= 0 && p.Y < 20, "y out of range: %v", p)
	}
}

func TestGrid(t *testing.T) {
	pts := Grid(17, 100, 100)
	require.Len(t, pts, 17)
	assert.Equal(t, geom.Point{X: 10, Y: 12.5}, pts[0])

	assert.Len(t, Grid(16, 8, 8), 16)
	assert.Empty(t, Grid(0, 8, 8))
}

func TestCircle(t *testing.T) {
	pts := Circle(8, geom.Point{X: 1, Y: 1}, 2)
	require.Len(t, pts, 8)
	assert.InDelta(t, 3, pts[0].X, 1e-12)
	assert.InDelta(t, 1, pts[0].Y, 1e-12)
}

func TestReadText(t *testing.T) {
	in := `# square
0 0
1,0
1	1

0;1
`
	pts, err := ReadText(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, pts)
}

func TestReadText_CollectsErrors(t *testing.T) {
	in := "0 0\nfoo 1\n1 2 3\n2 NaN\n3 3\n"
	pts, err := ReadText(strings.NewReader(in))

	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 3}}, pts)
}

func TestReadText_Empty(t *testing.T) {
	_, err := ReadText(strings.NewReader("# nothing\n"))
	assert.True(t, errors.Is(err, ErrNoPoints))
}

func TestReadSVG(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
  <g>
    <circle cx="1" cy="2" r="0.5"/>
    <circle cx="3.5" cy="4" r="0.5"/>
  </g>
  <circle cx="x" cy="1" r="1"/>
  <rect x="0" y="0" width="1" height="1"/>
</svg>`
	pts, err := ReadSVG(strings.NewReader(in))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.Equal(t, []geom.Point{{X: 1, Y: -2}, {X: 3.5, Y: -4}}, pts)
}
