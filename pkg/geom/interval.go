package geom

import "math"

// interval - отрезок [lo, hi], гарантированно содержащий точное значение.
//
// В Go нельзя переключить режим округления FPU, поэтому направленное
// округление эмулируется: после каждой операции границы раздвигаются на один
// ulp наружу. Результат операции в режиме "к ближайшему" отличается от
// точного не более чем на полulp, так что расширенный отрезок всегда его
// накрывает (в том числе в субнормальной области).
type interval struct {
	lo, hi float64
}

func exactInterval(v float64) interval {
	return interval{v, v}
}

func widen(lo, hi float64) interval {
	return interval{math.Nextafter(lo, math.Inf(-1)), math.Nextafter(hi, math.Inf(1))}
}

func (a interval) add(b interval) interval {
	return widen(a.lo+b.lo, a.hi+b.hi)
}

func (a interval) sub(b interval) interval {
	return widen(a.lo-b.hi, a.hi-b.lo)
}

func (a interval) mul(b interval) interval {
	p1 := a.lo * b.lo
	p2 := a.lo * b.hi
	p3 := a.hi * b.lo
	p4 := a.hi * b.hi
	return widen(math.Min(math.Min(p1, p2), math.Min(p3, p4)), math.Max(math.Max(p1, p2), math.Max(p3, p4)))
}

// sign возвращает знак, если отрезок не содержит нуля, и ok == false иначе.
// NaN в границах (переполнение вида Inf-Inf) тоже дает ok == false.
func (a interval) sign() (int, bool) {
	if a.lo > 0 {
		return 1, true
	}
	if a.hi < 0 {
		return -1, true
	}
	return 0, false
}
