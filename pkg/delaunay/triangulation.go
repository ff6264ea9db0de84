package delaunay

import (
	"sort"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Triangulation - динамическая триангуляция Делоне. Не потокобезопасна.
//
// Пока точек меньше двух, сетки нет: одиночная точка хранится только в
// индексе. Начиная с двух точек сетка существует всегда.
type Triangulation struct {
	mesh *mesh
	// точка -> индекс вершины в сетке (noIndex, пока сетки нет)
	index map[geom.Point]int

	log        *logger.ZapLogger
	validate   bool
	flipBudget int

	// первая ошибка ErrInvariant; после нее все изменения запрещены
	err error
}

func New(opts ...Option) *Triangulation {
	t := &Triangulation{
		index: make(map[geom.Point]int),
		log:   logger.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Triangulation) corrupted() error {
	return errors.Wrapf(ErrCorrupted, "first failure: %v", t.err)
}

// guard ловит панику с ErrInvariant и переводит триангуляцию в испорченное
// состояние. Вызывается через defer в изменяющих методах.
func (t *Triangulation) guard(op string, p geom.Point, err *error) {
	rerr := recoverInvariant(recover())
	if rerr == nil {
		return
	}
	t.err = rerr
	*err = rerr
	t.log.Error("[t-guard] Нарушен инвариант сетки",
		zap.String("op", op), zap.Stringer("point", p), zap.Error(rerr))
}

func (t *Triangulation) budget() int {
	if t.flipBudget > 0 {
		return t.flipBudget
	}
	n := len(t.index)
	return 16*n*n + 1024
}

// AddPoint добавляет точку. Повторная вставка существующей точки ничего не
// делает. Точки с NaN или ±Inf отклоняются с ErrNonFinite.
func (t *Triangulation) AddPoint(p geom.Point) (err error) {
	if t.err != nil {
		return t.corrupted()
	}
	if !p.IsFinite() {
		return errors.Wrapf(ErrNonFinite, "point %v", p)
	}
	if _, ok := t.index[p]; ok {
		t.log.Debug("[t-add] Точка уже есть", zap.Stringer("point", p))
		return nil
	}

	defer t.guard("add", p, &err)

	switch len(t.index) {
	case 0:
		t.index[p] = noIndex
	case 1:
		var first geom.Point
		for q := range t.index {
			first = q
		}
		t.mesh = newMesh(t.log)
		v0, v1 := t.mesh.bootstrap(first, p)
		t.index[first], t.index[p] = v0, v1
	default:
		f := t.mesh.locate(p)
		v, faces := t.mesh.splitFace(f, p)
		t.index[p] = v

		stack := make([]int, 0, 9)
		for _, nf := range faces {
			es := t.mesh.faceEdges(nf)
			stack = append(stack, es[:]...)
		}
		flips := t.mesh.legalize(stack, t.budget())
		t.log.Debug("[t-add] Точка вставлена",
			zap.Stringer("point", p), zap.Int("face", f), zap.Int("flips", flips))
	}

	return t.check()
}

// RemovePoint удаляет точку. Удаление отсутствующей точки ничего не делает.
func (t *Triangulation) RemovePoint(p geom.Point) (err error) {
	if t.err != nil {
		return t.corrupted()
	}
	v, ok := t.index[p]
	if !ok {
		return nil
	}

	defer t.guard("remove", p, &err)

	delete(t.index, p)
	if len(t.index) < 2 {
		// сетка из одной точки не существует
		t.mesh = nil
		for q := range t.index {
			t.index[q] = noIndex
		}
		t.log.Debug("[t-remove] Сетка сброшена", zap.Int("left", len(t.index)))
		return t.check()
	}

	seeds := t.mesh.collapseVertex(v)
	flips := t.mesh.legalize(seeds, t.budget())
	t.log.Debug("[t-remove] Точка удалена", zap.Stringer("point", p), zap.Int("flips", flips))

	return t.check()
}

func (t *Triangulation) check() error {
	if !t.validate {
		return nil
	}
	if err := t.Validate(); err != nil {
		t.err = err
		t.log.Error("[t-check] Сетка не прошла проверку", zap.Error(err))
		return err
	}
	return nil
}

// Triangles возвращает все конечные треугольники, вершины против часовой
// стрелки. Порядок треугольников не определен. Пока точки коллинеарны,
// треугольников нет.
func (t *Triangulation) Triangles() []geom.Triangle {
	if t.mesh == nil {
		return nil
	}
	m := t.mesh
	var out []geom.Triangle
	for f := range m.faces {
		if m.faces[f].alive && !m.isInfinite(f) {
			out = append(out, m.triangle(f))
		}
	}
	return out
}

// Edges возвращает конечные ребра триангуляции, каждое один раз. Для
// коллинеарных точек это звенья цепочки.
func (t *Triangulation) Edges() []geom.Segment {
	if t.mesh == nil {
		return nil
	}
	m := t.mesh
	var out []geom.Segment
	for e := range m.edges {
		if !m.edges[e].alive || e > m.twin(e) {
			continue
		}
		a, b := m.origin(e), m.dest(e)
		if m.isSentinel(a) || m.isSentinel(b) {
			continue
		}
		out = append(out, geom.Segment{m.point(a), m.point(b)})
	}
	return out
}

func (t *Triangulation) Len() int {
	return len(t.index)
}

func (t *Triangulation) Contains(p geom.Point) bool {
	_, ok := t.index[p]
	return ok
}

// Points возвращает все точки в лексикографическом порядке.
func (t *Triangulation) Points() []geom.Point {
	out := make([]geom.Point, 0, len(t.index))
	for p := range t.index {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Clear удаляет все точки и снимает состояние порчи.
func (t *Triangulation) Clear() {
	t.mesh = nil
	t.index = make(map[geom.Point]int)
	t.err = nil
}

// Err возвращает ошибку, испортившую триангуляцию, или nil.
func (t *Triangulation) Err() error {
	return t.err
}
