package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Name превращает произвольный ключ (индекс вершины, точку) в читаемое имя
// вида "BraveOtter". Имена выдаются лениво и запоминаются навсегда, так что
// это только для отладки. Между запусками имена разные.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	petname.NonDeterministicMode()
}

func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[key] = r
	return r
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
