package delaunay

import "github.com/0x0FACED/go-delaunay/pkg/logger"

// Option настраивает Triangulation при создании.
type Option func(*Triangulation)

// WithLogger задает логгер. По умолчанию логи отключены.
func WithLogger(l *logger.ZapLogger) Option {
	return func(t *Triangulation) {
		if l != nil {
			t.log = l
		}
	}
}

// WithValidation включает полную проверку сетки (Validate) после каждого
// изменения. Очень медленно, только для тестов и отладки.
func WithValidation(on bool) Option {
	return func(t *Triangulation) {
		t.validate = on
	}
}

// WithFlipBudget ограничивает число флипов за одну легализацию. Превышение
// считается нарушением инварианта. n <= 0 означает бюджет по умолчанию,
// зависящий от числа точек.
func WithFlipBudget(n int) Option {
	return func(t *Triangulation) {
		t.flipBudget = n
	}
}
