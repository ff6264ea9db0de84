package dbg

import "github.com/logrusorgru/aurora"

// Palette раскрашивает элементы дампа сетки. С colors == false строки
// остаются как есть (для файлов и тестов).
type Palette struct {
	au aurora.Aurora
}

func NewPalette(colors bool) Palette {
	return Palette{au: aurora.NewAurora(colors)}
}

func (p Palette) Vertex(s string) string {
	return p.au.Cyan(s).String()
}

func (p Palette) Sentinel(s string) string {
	return p.au.Magenta(s).String()
}

func (p Palette) Finite(s string) string {
	return p.au.Green(s).String()
}

func (p Palette) Infinite(s string) string {
	return p.au.Yellow(s).String()
}

func (p Palette) Bad(s string) string {
	return p.au.Bold(p.au.Red(s)).String()
}

func (p Palette) Count(n interface{}) string {
	return p.au.Bold(n).String()
}
