package delaunay

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"go.uber.org/zap"
)

// bootstrap строит сетку из двух точек: бесконечная вершина и две
// бесконечные грани (p0, p1, ∞) и (p1, p0, ∞), склеенные по всем ребрам.
func (m *mesh) bootstrap(p0, p1 geom.Point) (int, int) {
	m.sentinel = m.newVertex(geom.Point{}, true)
	v0 := m.newVertex(p0, false)
	v1 := m.newVertex(p1, false)

	f0, f1 := m.newFace(), m.newFace()
	// f0: v0->v1, v1->∞, ∞->v0
	a0, a1, a2 := m.newEdge(), m.newEdge(), m.newEdge()
	// f1: v1->v0, v0->∞, ∞->v1
	b0, b1, b2 := m.newEdge(), m.newEdge(), m.newEdge()

	m.edges[a0].origin, m.edges[a1].origin, m.edges[a2].origin = v0, v1, m.sentinel
	m.edges[b0].origin, m.edges[b1].origin, m.edges[b2].origin = v1, v0, m.sentinel
	m.link(f0, a0, a1, a2)
	m.link(f1, b0, b1, b2)
	m.pair(a0, b0)
	m.pair(a1, b2)
	m.pair(a2, b1)

	m.verts[v0].edge = a0
	m.verts[v1].edge = b0
	m.verts[m.sentinel].edge = a2

	m.log.Debug("[m-boot] Сетка создана", zap.Stringer("p0", p0), zap.Stringer("p1", p1))
	return v0, v1
}

// Ранги попадания точки в грань при локализации, от лучшего к худшему.
const (
	outside = iota
	inFinite
	leftOfHull
	onHullSegment
	beyondHullSegment
)

// containment определяет, накрывает ли грань f точку p, и с каким рангом.
// Конечная грань замкнута: точка на ребре или в вершине тоже внутри.
// Бесконечная грань накрывает открытую полуплоскость слева от своего
// конечного ребра; коллинеарные точки относятся к ней с худшими рангами,
// они нужны, пока все точки лежат на одной прямой.
func (m *mesh) containment(f int, p geom.Point) int {
	if !m.isInfinite(f) {
		for _, e := range m.faceEdges(f) {
			if geom.Orient(m.point(m.origin(e)), m.point(m.dest(e)), p) == geom.Right {
				return outside
			}
		}
		return inFinite
	}

	e := m.finiteEdge(f)
	u, w := m.point(m.origin(e)), m.point(m.dest(e))
	switch geom.Orient(u, w, p) {
	case geom.Left:
		return leftOfHull
	case geom.Collinear:
		if geom.Between(u, w, p) {
			return onHullSegment
		}
		return beyondHullSegment
	default:
		return outside
	}
}

// locate - линейный поиск грани для новой точки. Первая подходящая конечная
// грань возвращается сразу, среди бесконечных выбирается лучший ранг.
// Точка за концом цепочки коллинеарных точек цепляется к крайнему звену.
func (m *mesh) locate(p geom.Point) int {
	best, bestRank := noIndex, outside
	for f := range m.faces {
		if !m.faces[f].alive {
			continue
		}
		r := m.containment(f, p)
		switch {
		case r == inFinite:
			return f
		case r == outside:
		case best == noIndex || r < bestRank:
			best, bestRank = f, r
		case r == beyondHullSegment && bestRank == beyondHullSegment:
			if geom.Between(p, m.nearEnd(best, p), m.nearEnd(f, p)) {
				best = f
			}
		}
	}
	if best == noIndex {
		fatalf("no face contains point %v", p)
	}
	return best
}

// nearEnd возвращает ближайший к p конец конечного ребра бесконечной грани f.
// p лежит на продолжении ребра.
func (m *mesh) nearEnd(f int, p geom.Point) geom.Point {
	e := m.finiteEdge(f)
	u, w := m.point(m.origin(e)), m.point(m.dest(e))
	if geom.Between(u, p, w) {
		return w
	}
	return u
}

// splitFace вставляет в грань f новую вершину p и соединяет ее с тремя
// вершинами грани. Слот f переиспользуется, добавляются еще две грани.
func (m *mesh) splitFace(f int, p geom.Point) (int, [3]int) {
	v := m.newVertex(p, false)
	es := m.faceEdges(f)

	var n1, n2, fs [3]int
	fs[0] = f
	fs[1], fs[2] = m.newFace(), m.newFace()

	for i, e := range es {
		// e: u->w, грань (u, w, p)
		n1[i], n2[i] = m.newEdge(), m.newEdge()
		m.edges[n1[i]].origin = m.dest(e)
		m.edges[n2[i]].origin = v
	}
	for i, e := range es {
		m.link(fs[i], e, n1[i], n2[i])
	}
	for i := range es {
		m.pair(n1[i], n2[(i+1)%3])
	}
	m.verts[v].edge = n2[0]

	return v, fs
}

// flip заменяет диагональ e = a->b четырехугольника (a, b, c) + (b, a, d)
// на d->c. Получаются грани (d, c, a) и (c, d, b), индексы полуребер e и
// twin(e) сохраняются. Возвращает четыре внешних ребра четырехугольника.
func (m *mesh) flip(ab int) [4]int {
	ba := m.twin(ab)
	bc := m.next(ab)
	ca := m.next(bc)
	ad := m.next(ba)
	db := m.next(ad)

	a, b := m.origin(ab), m.origin(ba)
	c, d := m.origin(ca), m.origin(db)
	if c == d || m.edges[ab].face == m.edges[ba].face {
		fatalf("flip of edge %d (%d->%d) is degenerate", ab, a, b)
	}

	fab, fba := m.edges[ab].face, m.edges[ba].face

	m.edges[ab].origin = d
	m.edges[ba].origin = c

	m.link(fab, ab, ca, ad)
	m.link(fba, ba, db, bc)

	if m.verts[a].edge == ab {
		m.verts[a].edge = ad
	}
	if m.verts[b].edge == ba {
		m.verts[b].edge = bc
	}

	return [4]int{bc, ca, ad, db}
}

// collapseVertex удаляет вершину v: флипами уменьшает ее звезду до трех
// ребер и склеивает оставшиеся три грани в одну. Возвращает ребра граней,
// которые надо проверить легализацией.
func (m *mesh) collapseVertex(v int) []int {
	var seeds []int
	for {
		star := m.star(v)
		if len(star) <= 3 {
			break
		}
		e := m.collapseFlip(v, star)
		m.flip(e)
		// грань (c, d, b) больше не касается v
		fs := m.faceEdges(m.edges[m.twin(e)].face)
		seeds = append(seeds, fs[:]...)
	}

	star := m.star(v)
	switch len(star) {
	case 3:
		return append(seeds, m.merge(v, star)...)
	case 2:
		return append(seeds, m.unzip(v, star)...)
	default:
		fatalf("vertex %d has star of degree %d", v, len(star))
		return nil
	}
}

// collapseFlip выбирает ребро звезды v для следующего флипа. Для ребра
// e = v->b: c - вершина грани e (следующий сосед), d - вершина грани twin(e)
// (предыдущий сосед). После флипа остаются (d, c, v) и (c, d, b).
func (m *mesh) collapseFlip(v int, star []int) int {
	isReal := func(x int) bool { return !m.isSentinel(x) }
	pv := m.point(v)

	for pass := 1; pass <= 5; pass++ {
		for _, e := range star {
			b, c, d := m.dest(e), m.apex(e), m.apex(m.twin(e))
			if c == d {
				continue
			}

			switch pass {
			case 1, 2:
				// выпуклое ухо из настоящих соседей
				if !isReal(b) || !isReal(c) || !isReal(d) {
					continue
				}
				pb, pc, pd := m.point(b), m.point(c), m.point(d)
				if geom.Orient(pd, pb, pc) != geom.Left {
					continue
				}
				side := geom.Orient(pd, pc, pv)
				if side == geom.Left || (pass == 2 && side == geom.Collinear) {
					return e
				}
			case 3:
				// v на оболочке, цепочка соседей уже вогнута
				if isReal(b) && isReal(c) && !isReal(d) {
					return e
				}
			case 4:
				// все точки на одной прямой
				if !isReal(b) && isReal(c) && isReal(d) {
					return e
				}
			case 5:
				m.log.Warn("[m-collapse] Вынужденный флип",
					zap.Int("vertex", v), zap.Stringer("point", pv), zap.Int("degree", len(star)))
				return e
			}
		}
	}

	fatalf("no flip reduces the star of vertex %d (%v)", v, pv)
	return noIndex
}

// merge склеивает три грани вокруг вершины степени 3 в одну.
func (m *mesh) merge(v int, star []int) []int {
	var o, q [3]int
	for i, e := range star {
		o[i] = m.next(e)
		q[i] = m.dest(e)
	}
	f0 := m.edges[star[0]].face
	f1, f2 := m.edges[star[1]].face, m.edges[star[2]].face

	for _, e := range star {
		m.freeEdge(m.twin(e))
		m.freeEdge(e)
	}
	m.freeFace(f1)
	m.freeFace(f2)
	m.freeVertex(v)

	m.link(f0, o[0], o[1], o[2])
	for i := range q {
		if !m.edges[m.verts[q[i]].edge].alive {
			m.verts[q[i]].edge = o[i]
		}
	}

	return o[:]
}

// unzip удаляет конец цепочки коллинеарных точек: у такой вершины всего две
// грани (v, q0, q1) и (v, q1, q0). Обе исчезают, внешние двойники их ребер
// q0-q1 склеиваются между собой.
func (m *mesh) unzip(v int, star []int) []int {
	e0, e1 := star[0], star[1]
	o0, o1 := m.next(e0), m.next(e1)
	t0, t1 := m.twin(o0), m.twin(o1)
	q0, q1 := m.dest(e0), m.dest(e1)
	f0, f1 := m.edges[e0].face, m.edges[e1].face

	for _, e := range []int{m.twin(e0), m.twin(e1), e0, e1, o0, o1} {
		m.freeEdge(e)
	}
	m.freeFace(f0)
	m.freeFace(f1)
	m.freeVertex(v)

	m.pair(t0, t1)
	for _, q := range []int{q0, q1} {
		if m.edges[m.verts[q].edge].alive {
			continue
		}
		if m.origin(t0) == q {
			m.verts[q].edge = t0
		} else {
			m.verts[q].edge = t1
		}
	}

	fa, fb := m.faceEdges(m.edges[t0].face), m.faceEdges(m.edges[t1].face)
	return append(fa[:], fb[:]...)
}
