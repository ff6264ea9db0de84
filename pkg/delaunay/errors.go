package delaunay

import "github.com/pkg/errors"

var (
	// ErrNonFinite - у точки есть координата NaN или ±Inf.
	ErrNonFinite = errors.New("delaunay: point has a non-finite coordinate")

	// ErrInvariant - нарушен внутренний инвариант сетки. Это всегда ошибка
	// в коде, а не во входных данных.
	ErrInvariant = errors.New("delaunay: mesh invariant violated")

	// ErrCorrupted возвращается всеми изменяющими методами после того, как
	// одна из операций завершилась с ErrInvariant.
	ErrCorrupted = errors.New("delaunay: triangulation is corrupted")
)

// Протаскивать ошибки через все рекурсивные операции сетки (локализация,
// флипы, схлопывание звезды) слишком шумно. Вместо этого глубокие функции
// паникуют с ошибкой, оборачивающей ErrInvariant, а публичные методы
// ловят панику и возвращают ее как обычную ошибку.

func fatalf(format string, args ...interface{}) {
	panic(errors.Wrapf(ErrInvariant, format, args...))
}

// recoverInvariant превращает панику с ErrInvariant в ошибку. Любая другая
// паника пробрасывается дальше.
func recoverInvariant(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok && errors.Is(err, ErrInvariant) {
		return err
	}
	panic(r)
}
