package delaunay

import "github.com/0x0FACED/go-delaunay/pkg/geom"

// legalize флипает незаконные ребра, пока стек не опустеет. Ребро,
// освобожденное к моменту проверки, пропускается. Каждый флип кладет в стек
// четыре внешних ребра четырехугольника. Возвращает число флипов.
func (m *mesh) legalize(stack []int, budget int) int {
	flips := 0
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !m.edges[e].alive || !m.illegal(e) {
			continue
		}
		if flips >= budget {
			fatalf("legalization exceeded flip budget %d", budget)
		}

		outer := m.flip(e)
		flips++
		stack = append(stack, outer[:]...)
	}
	return flips
}

// illegal решает, надо ли флипнуть ребро e = a->b с вершинами c (своя грань)
// и d (грань двойника).
func (m *mesh) illegal(e int) bool {
	t := m.twin(e)
	a, b := m.origin(e), m.origin(t)
	c, d := m.apex(e), m.apex(t)
	if c == d {
		return false
	}

	switch {
	case m.isSentinel(a) || m.isSentinel(b):
		// флип создаст конечную грань (d, c, a) или (c, d, b)
		x := a
		tri := [3]int{d, c, a}
		if m.isSentinel(a) {
			x = b
			tri = [3]int{c, d, b}
		}
		switch geom.Orient(m.point(tri[0]), m.point(tri[1]), m.point(tri[2])) {
		case geom.Left:
			return true
		case geom.Right:
			return false
		}
		return m.collinearFlip(e, x, c, d)

	case m.isSentinel(c) && m.isSentinel(d):
		return false

	case m.isSentinel(c):
		return m.degenerateOn(a, b, d)

	case m.isSentinel(d):
		return m.degenerateOn(a, b, c)

	default:
		return geom.InCircle(m.point(a), m.point(b), m.point(c), m.point(d))
	}
}

// collinearFlip решает случай, когда x, c и d лежат на одной прямой. Флип
// нужен, только если x крайняя точка тройки, а ребро x-far (far - дальняя
// от x точка) граничит снаружи четырехугольника с бесконечной гранью. Иначе
// флип порождает вырожденную конечную грань.
func (m *mesh) collinearFlip(e, x, c, d int) bool {
	px, pc, pd := m.point(x), m.point(c), m.point(d)
	var far, side int
	switch {
	case geom.Between(px, pc, pd):
		far, side = c, e
	case geom.Between(px, pd, pc):
		far, side = d, m.twin(e)
	default:
		return false
	}
	for _, h := range m.faceEdges(m.edges[side].face) {
		if (m.origin(h) == x && m.dest(h) == far) || (m.origin(h) == far && m.dest(h) == x) {
			return m.isInfinite(m.edges[m.twin(h)].face)
		}
	}
	fatalf("edge %d-%d not found next to edge %d", x, far, e)
	return false
}

// degenerateOn сообщает, что x лежит строго внутри отрезка ab: грань с
// ребром ab и вершиной x выродилась в отрезок.
func (m *mesh) degenerateOn(a, b, x int) bool {
	pa, pb, px := m.point(a), m.point(b), m.point(x)
	return geom.Orient(pa, pb, px) == geom.Collinear && geom.Between(pa, pb, px)
}
