package delaunay_test

import (
	"fmt"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

func ExampleTriangulation() {
	tr := delaunay.New()
	for _, p := range []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}} {
		if err := tr.AddPoint(p); err != nil {
			panic(err)
		}
	}
	fmt.Println(len(tr.Triangles()))

	_ = tr.RemovePoint(geom.Point{X: 1, Y: 1})
	for _, t := range tr.Triangles() {
		fmt.Println(t.Canonical())
	}
	// Output:
	// 2
	// [(0, 0) (1, 0) (0, 1)]
}

func ExampleTriangulation_Edges() {
	tr := delaunay.New()
	for x := 0.0; x < 4; x++ {
		_ = tr.AddPoint(geom.Point{X: x, Y: 2 * x})
	}
	fmt.Println(len(tr.Triangles()), len(tr.Edges()))
	// Output: 0 3
}
