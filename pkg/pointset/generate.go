package pointset

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Random генерирует n точек с целыми координатами в [0, width) x [0, height).
// Совпадающие точки возможны, триангуляция их просто пропустит.
func Random(rng *rand.Rand, n, width, height int) []geom.Point {
	points := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		points[i] = geom.Point{
			X: float64(rng.Intn(width)),
			Y: float64(rng.Intn(height)),
		}
	}
	return points
}

// Grid раскладывает n точек по центрам ячеек почти квадратной сетки.
// Все четверки соседних точек лежат на одной окружности, так что это хороший
// тест на вырожденные случаи.
func Grid(n, width, height int) []geom.Point {
	if n <= 0 {
		return nil
	}
	points := make([]geom.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// строк и столбцов может хватать, например, на 20 точек, а нужно 17
			if len(points) == n {
				return points
			}
			x := xStep/2 + float64(j)*xStep
			y := yStep/2 + float64(i)*yStep
			points = append(points, geom.Point{X: x, Y: y})
		}
	}

	return points
}

// Circle кладет n точек на окружность: максимально вырожденный набор для
// предиката InCircle.
func Circle(n int, center geom.Point, radius float64) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(n)
		points[i] = geom.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return points
}
