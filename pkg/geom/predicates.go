package geom

import "math"

// Orientation - положение точки c относительно направленной прямой a->b.
type Orientation int

const (
	Right     Orientation = -1
	Collinear Orientation = 0
	Left      Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "COLLINEAR"
	}
}

// tier - уровень каскада, на котором знак был определен.
type tier int

const (
	tierFloat tier = iota
	tierInterval
	tierExact
)

func (t tier) String() string {
	return [...]string{"float", "interval", "exact"}[t]
}

const (
	// машинный эпсилон float64 (DBL_EPSILON)
	machineEpsilon = 0x1p-52

	// orientErrorFactor и inCircleErrorFactor - множители оценки погрешности
	// плавающего уровня. Для обоих определителей известные точные оценки
	// (3e и 10e при e = 2^-53) заметно меньше.
	orientErrorFactor   = 32 * machineEpsilon
	inCircleErrorFactor = 16 * machineEpsilon

	// Плавающему уровню доверяем, только если все разности координат либо
	// нулевые, либо лежат в этом диапазоне: тогда произведения до четвертой
	// степени не переполняются и не уходят в субнормальные числа, и оценка
	// погрешности остается относительной.
	minSafeDiff = 0x1p-240
	maxSafeDiff = 0x1p240
)

func safeDiffs(vs ...float64) bool {
	for _, v := range vs {
		v = math.Abs(v)
		if v != 0 && (v < minSafeDiff || v > maxSafeDiff) {
			return false
		}
	}
	return true
}

// Orient возвращает Left, если c лежит строго слева от a->b (a, b, c идут
// против часовой стрелки), Right, если строго справа, и Collinear, если точки
// лежат на одной прямой. Знак всегда верный; координаты должны быть конечными.
func Orient(a, b, c Point) Orientation {
	s, _ := orient(a, b, c)
	return Orientation(s)
}

func orient(a, b, c Point) (int, tier) {
	bax, bay := b.X-a.X, b.Y-a.Y
	cax, cay := c.X-a.X, c.Y-a.Y

	if safeDiffs(bax, bay, cax, cay) {
		left := bax * cay
		right := bay * cax
		det := left - right
		bound := orientErrorFactor * (math.Abs(left) + math.Abs(right))
		if det > bound {
			return 1, tierFloat
		}
		if det < -bound {
			return -1, tierFloat
		}
	}

	ax, ay := exactInterval(a.X), exactInterval(a.Y)
	ibax := exactInterval(b.X).sub(ax)
	ibay := exactInterval(b.Y).sub(ay)
	icax := exactInterval(c.X).sub(ax)
	icay := exactInterval(c.Y).sub(ay)
	if s, ok := ibax.mul(icay).sub(ibay.mul(icax)).sign(); ok {
		return s, tierInterval
	}

	return exactOrient(a, b, c), tierExact
}

// InCircle сообщает, что d лежит строго внутри окружности, проходящей через
// a, b, c (заданные против часовой стрелки). Точка на окружности (точная
// коцикличность) внутри не считается: такое ребро законно и не флипается.
func InCircle(a, b, c, d Point) bool {
	s, _ := inCircle(a, b, c, d)
	return s > 0
}

func inCircle(a, b, c, d Point) (int, tier) {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	if safeDiffs(adx, ady, bdx, bdy, cdx, cdy) {
		bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
		cdxady, adxcdy := cdx*ady, adx*cdy
		adxbdy, bdxady := adx*bdy, bdx*ady

		alift := adx*adx + ady*ady
		blift := bdx*bdx + bdy*bdy
		clift := cdx*cdx + cdy*cdy

		det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
		permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
			(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
			(math.Abs(adxbdy)+math.Abs(bdxady))*clift
		bound := inCircleErrorFactor * permanent
		if det > bound {
			return 1, tierFloat
		}
		if det < -bound {
			return -1, tierFloat
		}
	}

	dx, dy := exactInterval(d.X), exactInterval(d.Y)
	iadx, iady := exactInterval(a.X).sub(dx), exactInterval(a.Y).sub(dy)
	ibdx, ibdy := exactInterval(b.X).sub(dx), exactInterval(b.Y).sub(dy)
	icdx, icdy := exactInterval(c.X).sub(dx), exactInterval(c.Y).sub(dy)

	ialift := iadx.mul(iadx).add(iady.mul(iady))
	iblift := ibdx.mul(ibdx).add(ibdy.mul(ibdy))
	iclift := icdx.mul(icdx).add(icdy.mul(icdy))

	det := ialift.mul(ibdx.mul(icdy).sub(icdx.mul(ibdy))).
		add(iblift.mul(icdx.mul(iady).sub(iadx.mul(icdy)))).
		add(iclift.mul(iadx.mul(ibdy).sub(ibdx.mul(iady))))
	if s, ok := det.sign(); ok {
		return s, tierInterval
	}

	return exactInCircle(a, b, c, d), tierExact
}
