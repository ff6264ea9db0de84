package delaunay

import (
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aliveCount(m *mesh) (v, e, f int) {
	for _, x := range m.verts {
		if x.alive {
			v++
		}
	}
	for _, x := range m.edges {
		if x.alive {
			e++
		}
	}
	for _, x := range m.faces {
		if x.alive {
			f++
		}
	}
	return v, e, f
}

func finiteTriangles(m *mesh) map[geom.Triangle]bool {
	set := make(map[geom.Triangle]bool)
	for f := range m.faces {
		if m.faces[f].alive && !m.isInfinite(f) {
			set[m.triangle(f).Canonical()] = true
		}
	}
	return set
}

func TestMesh_Bootstrap(t *testing.T) {
	m := newMesh(logger.NewNop())
	v0, v1 := m.bootstrap(pt(0, 0), pt(1, 0))

	require.NoError(t, m.validateTopology())
	v, e, f := aliveCount(m)
	assert.Equal(t, 3, v)
	assert.Equal(t, 6, e)
	assert.Equal(t, 2, f)

	assert.True(t, m.isInfinite(0))
	assert.True(t, m.isInfinite(1))
	assert.Equal(t, [3]int{v0, v1, m.sentinel}, m.faceVerts(0))
	assert.Equal(t, [3]int{v1, v0, m.sentinel}, m.faceVerts(1))
	assert.Len(t, m.star(v0), 2)
	assert.Len(t, m.star(m.sentinel), 2)
}

func TestMesh_LocateRanks(t *testing.T) {
	m := newMesh(logger.NewNop())
	m.bootstrap(pt(0, 0), pt(2, 0))

	// f0 = (p0, p1, ∞) накрывает верхнюю полуплоскость, f1 - нижнюю
	assert.Equal(t, leftOfHull, m.containment(0, pt(1, 1)))
	assert.Equal(t, outside, m.containment(1, pt(1, 1)))
	assert.Equal(t, onHullSegment, m.containment(0, pt(1, 0)))
	assert.Equal(t, beyondHullSegment, m.containment(1, pt(5, 0)))

	assert.Equal(t, 1, m.locate(pt(1, -1)))
	assert.Equal(t, 0, m.locate(pt(3, 0)))
}

func TestMesh_SplitFace(t *testing.T) {
	m := newMesh(logger.NewNop())
	m.bootstrap(pt(0, 0), pt(1, 0))
	v, fs := m.splitFace(0, pt(0, 1))

	require.NoError(t, m.validateTopology())
	assert.Equal(t, 0, fs[0])
	assert.Len(t, m.star(v), 3)
	assert.Equal(t, map[geom.Triangle]bool{
		geom.Triangle{pt(0, 0), pt(1, 0), pt(0, 1)}.Canonical(): true,
	}, finiteTriangles(m))

	_, e, f := aliveCount(m)
	assert.Equal(t, 12, e)
	assert.Equal(t, 4, f)
}

func TestMesh_FlipTwiceRestores(t *testing.T) {
	tr := New()
	addAll(t, tr, []geom.Point{pt(0, 0), pt(2, 0), pt(2, 1), pt(0, 1)})
	m := tr.mesh
	before := finiteTriangles(m)
	require.Len(t, before, 2)

	var diag int = noIndex
	for e := range m.edges {
		if m.edges[e].alive && !m.isInfinite(m.edges[e].face) && !m.isInfinite(m.edges[m.twin(e)].face) {
			diag = e
			break
		}
	}
	require.NotEqual(t, noIndex, diag)

	outer := m.flip(diag)
	require.NoError(t, m.validateTopology())
	assert.NotEqual(t, before, finiteTriangles(m))
	for _, e := range outer {
		assert.NotEqual(t, diag, e)
	}

	m.flip(diag)
	require.NoError(t, m.validateTopology())
	assert.Equal(t, before, finiteTriangles(m))
}

func TestMesh_Illegal(t *testing.T) {
	tr := New()
	// (1, 0.1) внутри окружности треугольника (0,0),(2,0),(1,2)
	addAll(t, tr, []geom.Point{pt(0, 0), pt(2, 0), pt(1, 2), pt(1, -0.1)})
	m := tr.mesh

	for e := range m.edges {
		if m.edges[e].alive {
			assert.False(t, m.illegal(e), "edge %d is illegal after legalization", e)
		}
	}
	assert.Len(t, tr.Triangles(), 2)
	assert.NoError(t, tr.Validate())
}

func TestMesh_CollapseReusesSlots(t *testing.T) {
	tr := New(WithValidation(true))
	addAll(t, tr, []geom.Point{pt(0, 0), pt(4, 0), pt(0, 4), pt(4, 4), pt(1, 1)})
	m := tr.mesh
	nv, ne, nf := len(m.verts), len(m.edges), len(m.faces)

	require.NoError(t, tr.RemovePoint(pt(1, 1)))
	assert.NotEmpty(t, m.freeVerts)
	assert.NotEmpty(t, m.freeEdges)
	assert.NotEmpty(t, m.freeFaces)

	require.NoError(t, tr.AddPoint(pt(3, 1)))
	assert.Equal(t, nv, len(m.verts))
	assert.Equal(t, ne, len(m.edges))
	assert.Equal(t, nf, len(m.faces))
}
