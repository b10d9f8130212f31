package ir

func Truth(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case String:
		return x != ""
	case Number:
		return x.Float != 0
	case Vector:
		return len(x) != 0
	case Array:
		return len(x) != 0
	default:
		panic("type")
	}
}

// Equal reports whether a and b hold the same value.  A Vector and an
// Array never compare equal even when the Array holds only numbers.
// Nested arrays are compared with an explicit stack.
func Equal(a, b Value) bool {
	type pair struct{ a, b Value }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, ok := p.a.(Array)
		if !ok {
			if !equalLeaf(p.a, p.b) {
				return false
			}
			continue
		}
		y, ok := p.b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			stack = append(stack, pair{x[i], y[i]})
		}
	}
	return true
}

func equalLeaf(a, b Value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x.Float == y.Float && x.Int == y.Int
	case Vector:
		y, ok := b.(Vector)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	default:
		panic("type")
	}
}
