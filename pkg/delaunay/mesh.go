package delaunay

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
)

const noIndex = -1

// vertex - вершина сетки. Ровно одна вершина сетки бесконечная (sentinel):
// ее координаты никогда не попадают в предикаты.
type vertex struct {
	p        geom.Point
	edge     int // любое исходящее полуребро
	sentinel bool
	alive    bool
}

// halfEdge - направленное ребро. next обходит грань против часовой стрелки.
type halfEdge struct {
	origin int
	twin   int
	next   int
	face   int
	alive  bool
}

type face struct {
	edge  int
	alive bool
}

// mesh - полуреберная структура на аренах. Все ссылки - индексы в срезах,
// освобожденные слоты переиспользуются через free-list.
type mesh struct {
	verts []vertex
	edges []halfEdge
	faces []face

	freeVerts []int
	freeEdges []int
	freeFaces []int

	sentinel int
	log      *logger.ZapLogger
}

func newMesh(log *logger.ZapLogger) *mesh {
	return &mesh{sentinel: noIndex, log: log}
}

func (m *mesh) newVertex(p geom.Point, sentinel bool) int {
	v := vertex{p: p, edge: noIndex, sentinel: sentinel, alive: true}
	if n := len(m.freeVerts); n > 0 {
		i := m.freeVerts[n-1]
		m.freeVerts = m.freeVerts[:n-1]
		m.verts[i] = v
		return i
	}
	m.verts = append(m.verts, v)
	return len(m.verts) - 1
}

func (m *mesh) newEdge() int {
	e := halfEdge{origin: noIndex, twin: noIndex, next: noIndex, face: noIndex, alive: true}
	if n := len(m.freeEdges); n > 0 {
		i := m.freeEdges[n-1]
		m.freeEdges = m.freeEdges[:n-1]
		m.edges[i] = e
		return i
	}
	m.edges = append(m.edges, e)
	return len(m.edges) - 1
}

func (m *mesh) newFace() int {
	f := face{edge: noIndex, alive: true}
	if n := len(m.freeFaces); n > 0 {
		i := m.freeFaces[n-1]
		m.freeFaces = m.freeFaces[:n-1]
		m.faces[i] = f
		return i
	}
	m.faces = append(m.faces, f)
	return len(m.faces) - 1
}

func (m *mesh) freeVertex(v int) {
	m.verts[v] = vertex{edge: noIndex}
	m.freeVerts = append(m.freeVerts, v)
}

func (m *mesh) freeEdge(e int) {
	m.edges[e] = halfEdge{origin: noIndex, twin: noIndex, next: noIndex, face: noIndex}
	m.freeEdges = append(m.freeEdges, e)
}

func (m *mesh) freeFace(f int) {
	m.faces[f] = face{edge: noIndex}
	m.freeFaces = append(m.freeFaces, f)
}

// навигация

func (m *mesh) origin(e int) int { return m.edges[e].origin }
func (m *mesh) twin(e int) int   { return m.edges[e].twin }
func (m *mesh) next(e int) int   { return m.edges[e].next }
func (m *mesh) prev(e int) int   { return m.edges[m.edges[e].next].next }
func (m *mesh) dest(e int) int   { return m.edges[m.edges[e].next].origin }

// apex - вершина грани e, противолежащая ребру e.
func (m *mesh) apex(e int) int { return m.edges[m.prev(e)].origin }

func (m *mesh) point(v int) geom.Point { return m.verts[v].p }

func (m *mesh) isSentinel(v int) bool { return v == m.sentinel }

// faceVerts - вершины грани против часовой стрелки, начиная с origin(face.edge).
func (m *mesh) faceVerts(f int) [3]int {
	e := m.faces[f].edge
	return [3]int{m.origin(e), m.dest(e), m.apex(e)}
}

func (m *mesh) faceEdges(f int) [3]int {
	e := m.faces[f].edge
	return [3]int{e, m.next(e), m.prev(e)}
}

func (m *mesh) isInfinite(f int) bool {
	vs := m.faceVerts(f)
	return vs[0] == m.sentinel || vs[1] == m.sentinel || vs[2] == m.sentinel
}

// finiteEdge возвращает единственное конечное ребро бесконечной грани.
func (m *mesh) finiteEdge(f int) int {
	for _, e := range m.faceEdges(f) {
		if !m.isSentinel(m.origin(e)) && !m.isSentinel(m.dest(e)) {
			return e
		}
	}
	fatalf("face %d has no finite edge", f)
	return noIndex
}

// link замыкает три полуребра в грань f.
func (m *mesh) link(f, e0, e1, e2 int) {
	m.edges[e0].next, m.edges[e1].next, m.edges[e2].next = e1, e2, e0
	m.edges[e0].face, m.edges[e1].face, m.edges[e2].face = f, f, f
	m.faces[f].edge = e0
}

func (m *mesh) pair(a, b int) {
	m.edges[a].twin = b
	m.edges[b].twin = a
}

func (m *mesh) triangle(f int) geom.Triangle {
	vs := m.faceVerts(f)
	return geom.Triangle{m.point(vs[0]), m.point(vs[1]), m.point(vs[2])}
}

// star - исходящие из v полуребра против часовой стрелки, начиная с v.edge.
func (m *mesh) star(v int) []int {
	start := m.verts[v].edge
	var out []int
	e := start
	for {
		out = append(out, e)
		e = m.twin(m.prev(e))
		if e == start {
			return out
		}
		if len(out) > len(m.edges) {
			fatalf("star of vertex %d does not close", v)
		}
	}
}
