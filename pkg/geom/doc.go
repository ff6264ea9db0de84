// Package geom содержит точку плоскости и устойчивые геометрические предикаты.
//
// Orient и InCircle всегда возвращают точный знак. Каждый предикат считается
// каскадом: сначала в float64 с оценкой погрешности, затем в интервальной
// арифметике и, если интервал все еще накрывает ноль, точно в big.Rat.
// Большинство вызовов решается на первом уровне.
package geom
