package delaunay

import (
	"fmt"
	"io"
	"strings"

	"github.com/0x0FACED/go-delaunay/internal/dbg"
)

// Dump возвращает текстовый листинг сетки без цвета.
func (t *Triangulation) Dump() string {
	var sb strings.Builder
	t.DumpTo(&sb, false)
	return sb.String()
}

// DumpTo печатает вершины и грани сетки. Вершины получают читаемые имена,
// чтобы соседство было видно глазами.
func (t *Triangulation) DumpTo(w io.Writer, colors bool) {
	pal := dbg.NewPalette(colors)
	if t.mesh == nil {
		fmt.Fprintf(w, "no mesh, %s point(s)\n", pal.Count(len(t.index)))
		for p := range t.index {
			fmt.Fprintf(w, "  %s %v\n", pal.Vertex(dbg.Name(p)), p)
		}
		return
	}
	m := t.mesh

	name := func(v int) string {
		if m.isSentinel(v) {
			return pal.Sentinel("∞")
		}
		return pal.Vertex(dbg.Name(m.point(v)))
	}

	fmt.Fprintf(w, "vertices: %s\n", pal.Count(len(t.index)))
	for v := range m.verts {
		if !m.verts[v].alive || m.isSentinel(v) {
			continue
		}
		fmt.Fprintf(w, "  #%d %s %v\n", v, name(v), m.point(v))
	}

	fmt.Fprintln(w, "faces:")
	for f := range m.faces {
		if !m.faces[f].alive {
			continue
		}
		vs := m.faceVerts(f)
		label := pal.Finite("finite")
		if m.isInfinite(f) {
			label = pal.Infinite("infinite")
		}
		fmt.Fprintf(w, "  #%d %s (%s, %s, %s)\n", f, label, name(vs[0]), name(vs[1]), name(vs[2]))
	}

	if t.err != nil {
		fmt.Fprintf(w, "%s %v\n", pal.Bad("corrupted:"), t.err)
	}
}
