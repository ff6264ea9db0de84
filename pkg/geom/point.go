package geom

import (
	"fmt"
	"math"
)

// Point - точка плоскости. Равенство точек - точное равенство координат.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// IsFinite сообщает, что обе координаты конечны (не NaN и не ±Inf).
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Less задает лексикографический порядок: сначала X, потом Y.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Triangle - три вершины, для треугольников триангуляции всегда против часовой стрелки.
type Triangle [3]Point

// Canonical возвращает тот же треугольник, повернутый так, чтобы первой шла
// наименьшая вершина. Обход (и ориентация) не меняется, поэтому канонические
// треугольники можно сравнивать через ==.
func (t Triangle) Canonical() Triangle {
	k := 0
	for i := 1; i < 3; i++ {
		if t[i].Less(t[k]) {
			k = i
		}
	}
	return Triangle{t[k], t[(k+1)%3], t[(k+2)%3]}
}

func (t Triangle) String() string {
	return fmt.Sprintf("[%v %v %v]", t[0], t[1], t[2])
}

// Segment - неориентированное ребро триангуляции.
type Segment [2]Point

// Between сообщает, что p лежит строго внутри отрезка ab.
// Коллинеарность p с a и b должна быть уже установлена (например, через Orient):
// здесь только сравнения координат, без арифметики, поэтому ответ точный.
func Between(a, b, p Point) bool {
	if a.X != b.X {
		return strictlyInside(a.X, b.X, p.X)
	}
	return strictlyInside(a.Y, b.Y, p.Y)
}

func strictlyInside(lo, hi, v float64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo < v && v < hi
}

// Circumcircle считает центр и радиус описанной окружности в обычной
// арифметике. Годится для отрисовки, но не для решений: для них есть InCircle.
// Для вырожденного треугольника ok == false.
func Circumcircle(t Triangle) (center Point, radius float64, ok bool) {
	ax, ay := t[0].X, t[0].Y
	bx, by := t[1].X-ax, t[1].Y-ay
	cx, cy := t[2].X-ax, t[2].Y-ay

	d := 2 * (bx*cy - by*cx)
	if d == 0 {
		return Point{}, 0, false
	}
	hb := bx*bx + by*by
	hc := cx*cx + cy*cy
	ux := (cy*hb - by*hc) / d
	uy := (bx*hc - cx*hb) / d

	return Point{ux + ax, uy + ay}, math.Hypot(ux, uy), true
}
