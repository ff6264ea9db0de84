package pointset

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ErrNoPoints - во входных данных не нашлось ни одной точки.
var ErrNoPoints = errors.New("pointset: no points found")

// ReadText читает по точке на строку: "x y" или "x,y". Пустые строки и
// строки, начинающиеся с '#', пропускаются. Плохие строки не прерывают
// чтение: все ошибки собираются и возвращаются вместе с прочитанными точками.
func ReadText(r io.Reader) ([]geom.Point, error) {
	var (
		points []geom.Point
		errs   error
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		if len(fields) != 2 {
			errs = multierr.Append(errs, errors.Errorf("line %d: want 2 coordinates, got %d", line, len(fields)))
			continue
		}

		p, err := parsePoint(fields[0], fields[1])
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "line %d", line))
			continue
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return points, multierr.Append(errs, errors.Wrap(err, "read points"))
	}

	if len(points) == 0 && errs == nil {
		return nil, ErrNoPoints
	}
	return points, errs
}

// ReadSVG берет центры всех элементов <circle> (атрибуты cx и cy).
// Ось Y в SVG направлена вниз, поэтому y переворачивается, чтобы
// ориентация треугольников совпадала с картинкой.
func ReadSVG(r io.Reader) ([]geom.Point, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var (
		points []geom.Point
		errs   error
	)
	for i, el := range root.FindAll("circle") {
		p, err := parsePoint(el.Attributes["cx"], el.Attributes["cy"])
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "circle %d", i))
			continue
		}
		p.Y = -p.Y
		points = append(points, p)
	}

	if len(points) == 0 && errs == nil {
		return nil, ErrNoPoints
	}
	return points, errs
}

func parsePoint(xs, ys string) (geom.Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "bad x %q", xs)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "bad y %q", ys)
	}
	p := geom.Point{X: x, Y: y}
	if !p.IsFinite() {
		return geom.Point{}, errors.Errorf("non-finite point %v", p)
	}
	return p, nil
}
