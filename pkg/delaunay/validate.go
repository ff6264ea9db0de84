package delaunay

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Validate проверяет сетку целиком: связность полуребер, ориентацию граней,
// выпуклость оболочки, эйлерову характеристику и свойство Делоне для всех
// внутренних ребер. Возвращает все найденные нарушения, каждое оборачивает
// ErrInvariant. Работает за O(n·h), h - число ребер оболочки.
func (t *Triangulation) Validate() error {
	if t.mesh == nil {
		if len(t.index) > 1 {
			return errors.Wrapf(ErrInvariant, "%d points but no mesh", len(t.index))
		}
		return nil
	}
	m := t.mesh

	var err error
	fail := func(format string, args ...interface{}) {
		err = multierr.Append(err, errors.Wrapf(ErrInvariant, format, args...))
	}

	err = multierr.Append(err, m.validateTopology())
	if err != nil {
		// геометрию битой сетки проверять бессмысленно
		return err
	}

	nreal := 0
	for v := range m.verts {
		if m.verts[v].alive && !m.isSentinel(v) {
			nreal++
			if u, ok := t.index[m.point(v)]; !ok || u != v {
				fail("vertex %d %v is not indexed", v, m.point(v))
			}
		}
	}
	if nreal != len(t.index) {
		fail("mesh has %d vertices, index has %d points", nreal, len(t.index))
	}

	var hull [][2]geom.Point
	finite := 0
	for f := range m.faces {
		if !m.faces[f].alive {
			continue
		}
		if !m.isInfinite(f) {
			tri := m.triangle(f)
			if geom.Orient(tri[0], tri[1], tri[2]) != geom.Left {
				fail("face %d %v is not counterclockwise", f, tri)
			}
			finite++
			continue
		}
		e := m.finiteEdge(f)
		hull = append(hull, [2]geom.Point{m.point(m.origin(e)), m.point(m.dest(e))})
	}

	// оболочка: ни одна точка не лежит строго слева от конечного ребра
	// бесконечной грани
	for _, h := range hull {
		for p := range t.index {
			if geom.Orient(h[0], h[1], p) == geom.Left {
				fail("point %v lies outside hull edge %v-%v", p, h[0], h[1])
			}
		}
	}

	if finite == 0 {
		err = multierr.Append(err, t.validateChain())
	}

	for e := range m.edges {
		if !m.edges[e].alive || e > m.twin(e) {
			continue
		}
		tw := m.twin(e)
		if m.isInfinite(m.edges[e].face) || m.isInfinite(m.edges[tw].face) {
			continue
		}
		a, b := m.point(m.origin(e)), m.point(m.origin(tw))
		c, d := m.point(m.apex(e)), m.point(m.apex(tw))
		if geom.InCircle(a, b, c, d) {
			fail("edge %v-%v is not locally Delaunay (%v inside circle of %v)", a, b, d, geom.Triangle{a, b, c})
		}
	}

	return err
}

// validateChain проверяет вырожденную сетку без конечных граней: конечные
// ребра должны соединять соседние точки прямой и только их.
func (t *Triangulation) validateChain() error {
	m := t.mesh
	pts := t.Points()
	rank := make(map[geom.Point]int, len(pts))
	for i, p := range pts {
		rank[p] = i
	}

	var err error
	links := 0
	for e := range m.edges {
		if !m.edges[e].alive || e > m.twin(e) || m.isSentinel(m.origin(e)) || m.isSentinel(m.dest(e)) {
			continue
		}
		links++
		i, j := rank[m.point(m.origin(e))], rank[m.point(m.dest(e))]
		if i-j != 1 && j-i != 1 {
			err = multierr.Append(err, errors.Wrapf(ErrInvariant,
				"edge %v-%v skips collinear points", pts[i], pts[j]))
		}
	}
	if links != len(pts)-1 {
		err = multierr.Append(err, errors.Wrapf(ErrInvariant,
			"%d links on a line of %d points", links, len(pts)))
	}
	return err
}

// validateTopology проверяет только связи между элементами арен.
func (m *mesh) validateTopology() error {
	var err error
	fail := func(format string, args ...interface{}) {
		err = multierr.Append(err, errors.Wrapf(ErrInvariant, format, args...))
	}
	aliveEdge := func(e int) bool { return e >= 0 && e < len(m.edges) && m.edges[e].alive }

	var nv, ne, nf int
	for v, vx := range m.verts {
		if !vx.alive {
			continue
		}
		nv++
		if !aliveEdge(vx.edge) || m.origin(vx.edge) != v {
			fail("vertex %d has bad out-edge %d", v, vx.edge)
		}
		if vx.sentinel != (v == m.sentinel) {
			fail("vertex %d sentinel flag mismatch", v)
		}
	}

	for e, he := range m.edges {
		if !he.alive {
			continue
		}
		ne++
		if !aliveEdge(he.twin) || !aliveEdge(he.next) {
			fail("edge %d links to a dead edge", e)
			continue
		}
		if m.twin(he.twin) != e {
			fail("edge %d: twin(twin) = %d", e, m.twin(he.twin))
		}
		if m.origin(he.twin) != m.dest(e) {
			fail("edge %d: twin does not start at its destination", e)
		}
		if m.origin(e) == m.dest(e) {
			fail("edge %d is a loop at vertex %d", e, m.origin(e))
		}
		if !aliveEdge(m.next(he.next)) || m.next(m.next(he.next)) != e {
			fail("edge %d: next^3 is not the identity", e)
			continue
		}
		if m.edges[he.next].face != he.face {
			fail("edge %d and its next lie in different faces", e)
		}
		if he.face < 0 || he.face >= len(m.faces) || !m.faces[he.face].alive {
			fail("edge %d has dead face %d", e, he.face)
		}
	}

	for f, fc := range m.faces {
		if !fc.alive {
			continue
		}
		nf++
		if !aliveEdge(fc.edge) || m.edges[fc.edge].face != f {
			fail("face %d has bad edge %d", f, fc.edge)
			continue
		}
		sentinels := 0
		for _, v := range m.faceVerts(f) {
			if m.isSentinel(v) {
				sentinels++
			}
		}
		if sentinels > 1 {
			fail("face %d has %d sentinel vertices", f, sentinels)
		}
	}

	if err == nil && nv-ne/2+nf != 2 {
		fail("euler characteristic V-E+F = %d-%d+%d != 2", nv, ne/2, nf)
	}
	return err
}
