package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_IsFinite(t *testing.T) {
	assert.True(t, Point{1, -2}.IsFinite())
	assert.False(t, Point{math.NaN(), 0}.IsFinite())
	assert.False(t, Point{0, math.Inf(-1)}.IsFinite())
}

func TestPoint_Equality(t *testing.T) {
	negZero := math.Copysign(0, -1)
	assert.True(t, Point{0, 0} == Point{negZero, 0})
}

func TestTriangle_Canonical(t *testing.T) {
	tri := Triangle{{1, 1}, {0, 1}, {0, 0}}
	assert.Equal(t, Triangle{{0, 0}, {1, 1}, {0, 1}}, tri.Canonical())
	assert.Equal(t, tri.Canonical(), Triangle{{0, 1}, {0, 0}, {1, 1}}.Canonical())
}

func TestBetween(t *testing.T) {
	a, b := Point{0, 0}, Point{2, 2}
	assert.True(t, Between(a, b, Point{1, 1}))
	assert.True(t, Between(b, a, Point{1, 1}))
	assert.False(t, Between(a, b, a))
	assert.False(t, Between(a, b, Point{3, 3}))

	// вертикальный отрезок сравнивается по Y
	assert.True(t, Between(Point{0, 0}, Point{0, 4}, Point{0, 1}))
	assert.False(t, Between(Point{0, 0}, Point{0, 4}, Point{0, -1}))
}

func TestCircumcircle(t *testing.T) {
	c, r, ok := Circumcircle(Triangle{{0, 0}, {2, 0}, {0, 2}})
	assert.True(t, ok)
	assert.InDelta(t, 1, c.X, 1e-12)
	assert.InDelta(t, 1, c.Y, 1e-12)
	assert.InDelta(t, math.Sqrt2, r, 1e-12)

	_, _, ok = Circumcircle(Triangle{{0, 0}, {1, 1}, {2, 2}})
	assert.False(t, ok)
}
