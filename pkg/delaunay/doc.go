// Package delaunay реализует динамическую триангуляцию Делоне на плоскости:
// точки можно добавлять и удалять в любом порядке, после каждой операции
// триангуляция снова удовлетворяет условию Делоне.
//
// Внутри - полуреберная сетка на аренах с одной бесконечной вершиной.
// Каждое ребро оболочки смежно с бесконечной гранью, поэтому вставка вне
// оболочки ничем не отличается от вставки внутрь: найти грань, разбить ее
// на три, легализовать флипами. Удаление флипами сводит звезду вершины к
// трем ребрам и склеивает три грани в одну.
//
// Все геометрические решения принимаются точными предикатами пакета geom.
// Точки, лежащие на одной окружности, не приводят к флипам, так что для
// таких наборов триангуляция зависит от порядка вставки.
//
//	tr := delaunay.New()
//	_ = tr.AddPoint(geom.Point{X: 0, Y: 0})
//	_ = tr.AddPoint(geom.Point{X: 1, Y: 0})
//	_ = tr.AddPoint(geom.Point{X: 0, Y: 1})
//	fmt.Println(len(tr.Triangles())) // 1
package delaunay
