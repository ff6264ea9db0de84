package geom

import "math/big"

// Точный уровень каскада. Все произвольноточные вычисления собраны здесь:
// float64 переводится в big.Rat без потерь, дальше определитель считается точно.

func rat(v float64) *big.Rat {
	return new(big.Rat).SetFloat64(v)
}

func ratSub(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Sub(a, b)
}

func ratMul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}

// exactOrient - точный знак (b-a)x(c-a).
func exactOrient(a, b, c Point) int {
	ax, ay := rat(a.X), rat(a.Y)
	bax := ratSub(rat(b.X), ax)
	bay := ratSub(rat(b.Y), ay)
	cax := ratSub(rat(c.X), ax)
	cay := ratSub(rat(c.Y), ay)

	return ratMul(bax, cay).Cmp(ratMul(bay, cax))
}

// exactInCircle - точный знак определителя in-circle (см. InCircle).
func exactInCircle(a, b, c, d Point) int {
	dx, dy := rat(d.X), rat(d.Y)
	adx, ady := ratSub(rat(a.X), dx), ratSub(rat(a.Y), dy)
	bdx, bdy := ratSub(rat(b.X), dx), ratSub(rat(b.Y), dy)
	cdx, cdy := ratSub(rat(c.X), dx), ratSub(rat(c.Y), dy)

	lift := func(x, y *big.Rat) *big.Rat {
		return new(big.Rat).Add(ratMul(x, x), ratMul(y, y))
	}
	alift := lift(adx, ady)
	blift := lift(bdx, bdy)
	clift := lift(cdx, cdy)

	det := ratMul(alift, ratSub(ratMul(bdx, cdy), ratMul(cdx, bdy)))
	det.Add(det, ratMul(blift, ratSub(ratMul(cdx, ady), ratMul(adx, cdy))))
	det.Add(det, ratMul(clift, ratSub(ratMul(adx, bdy), ratMul(bdx, ady))))

	return det.Sign()
}
