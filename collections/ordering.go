package collections

import (
	"fmt"
	"math"
)

// Natural ordering over the basic value types. Sorted collections order
// their elements with Compare; values of different classes sort by class
// rank so a tree can hold mixed element types without ambiguity.

const (
	rankBool = iota
	rankInt
	rankUint
	rankFloat
	rankString
)

// Orderable reports whether v has a natural order.
func Orderable(v any) bool {
	_, _, ok := classify(v)
	return ok
}

// Compare returns a negative, zero or positive result as a sorts before,
// equal to or after b. Both values must be Orderable; Compare panics
// otherwise, since callers are expected to validate on insertion.
func Compare(a, b any) int {
	ra, va, ok := classify(a)
	if !ok {
		panic(fmt.Sprintf("collections: %T has no natural order", a))
	}
	rb, vb, ok := classify(b)
	if !ok {
		panic(fmt.Sprintf("collections: %T has no natural order", b))
	}
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case rankBool:
		x, y := va.(bool), vb.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case rankInt:
		x, y := va.(int64), vb.(int64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case rankUint:
		x, y := va.(uint64), vb.(uint64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case rankFloat:
		return compareFloats(va.(float64), vb.(float64))
	default:
		x, y := va.(string), vb.(string)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
}

// compareFloats is a total order over float64: NaN sorts after every
// other value and equals only itself, so sorted collections never treat
// a NaN as equal to an arbitrary element.
func compareFloats(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	case x == y:
		return 0
	}
	nx, ny := math.IsNaN(x), math.IsNaN(y)
	switch {
	case nx && ny:
		return 0
	case ny:
		return -1
	default:
		return 1
	}
}

// classify normalizes v to its ordering class and canonical value.
func classify(v any) (rank int, canonical any, ok bool) {
	switch x := v.(type) {
	case bool:
		return rankBool, x, true
	case int:
		return rankInt, int64(x), true
	case int8:
		return rankInt, int64(x), true
	case int16:
		return rankInt, int64(x), true
	case int32:
		return rankInt, int64(x), true
	case int64:
		return rankInt, x, true
	case uint:
		return rankUint, uint64(x), true
	case uint8:
		return rankUint, uint64(x), true
	case uint16:
		return rankUint, uint64(x), true
	case uint32:
		return rankUint, uint64(x), true
	case uint64:
		return rankUint, x, true
	case float32:
		return rankFloat, float64(x), true
	case float64:
		return rankFloat, x, true
	case string:
		return rankString, x, true
	default:
		return 0, nil, false
	}
}
