package ir

import (
	"fmt"
	"math"
	"strconv"
)

// Value is an attribute value.  It is one of String, Number, Vector or
// Array.  A nil Value is the zero value and holds nothing.
type Value interface {
	Type() Type
	value()
}

// String is a text value.
type String string

// Number holds both an integer and a floating point view of the same
// number.  Int is always the truncation of Float.
type Number struct {
	Int   int
	Float float64
}

// Vector is an array whose every element is a number.
type Vector []float64

// Array is a list of arbitrary values, possibly nested.
type Array []Value

func (String) Type() Type { return StringType }
func (Number) Type() Type { return NumberType }
func (Vector) Type() Type { return VectorType }
func (Array) Type() Type  { return ArrayType }

func (String) value() {}
func (Number) value() {}
func (Vector) value() {}
func (Array) value()  {}

func (n Number) String() string {
	return FormatNumber(n.Float)
}

// Array returns the per element view of the vector, each element a Number.
func (v Vector) Array() Array {
	if v == nil {
		return nil
	}
	res := make(Array, len(v))
	for i, f := range v {
		res[i] = numberOf(f)
	}
	return res
}

// TypeOf returns the type of v, NullType for a nil Value.
func TypeOf(v Value) Type {
	if v == nil {
		return NullType
	}
	return v.Type()
}

// FormatNumber returns the shortest decimal text that parses back to f.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func FromString(s string) Value {
	return String(s)
}

func FromInt(i int) Value {
	return Number{Int: i, Float: float64(i)}
}

func FromFloat(f float64) Value {
	return numberOf(f)
}

func numberOf(f float64) Number {
	return Number{Int: truncInt(f), Float: f}
}

func truncInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// FromInts returns a Number for a single argument and a Vector for more.
func FromInts(is ...int) (Value, error) {
	switch len(is) {
	case 0:
		return nil, ErrEmpty
	case 1:
		return FromInt(is[0]), nil
	}
	res := make(Vector, len(is))
	for i, v := range is {
		res[i] = float64(v)
	}
	return res, nil
}

// FromFloats returns a Number for a single argument and a Vector for more.
func FromFloats(fs ...float64) (Value, error) {
	switch len(fs) {
	case 0:
		return nil, ErrEmpty
	case 1:
		return FromFloat(fs[0]), nil
	}
	res := make(Vector, len(fs))
	copy(res, fs)
	return res, nil
}

// FromValues deep copies vs into a new array value.  When there is more
// than one element and every element is a Number the result is a Vector.
func FromValues(vs ...Value) (Value, error) {
	if len(vs) == 0 {
		return nil, ErrEmpty
	}
	allNum := len(vs) > 1
	for i, v := range vs {
		if v == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilValue, i)
		}
		if _, ok := v.(Number); !ok {
			allNum = false
		}
	}
	if allNum {
		res := make(Vector, len(vs))
		for i, v := range vs {
			res[i] = v.(Number).Float
		}
		return res, nil
	}
	res := make(Array, len(vs))
	for i, v := range vs {
		res[i] = Clone(v)
	}
	return res, nil
}

// Clone returns a deep copy of v sharing no memory with it.  Nested arrays
// are copied with an explicit stack.
func Clone(v Value) Value {
	arr, ok := v.(Array)
	if !ok || arr == nil {
		return cloneLeaf(v)
	}
	type clonePair struct{ src, dst Array }
	res := make(Array, len(arr))
	stack := []clonePair{{src: arr, dst: res}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, elt := range p.src {
			sub, ok := elt.(Array)
			if !ok || sub == nil {
				p.dst[i] = cloneLeaf(elt)
				continue
			}
			dst := make(Array, len(sub))
			p.dst[i] = dst
			stack = append(stack, clonePair{src: sub, dst: dst})
		}
	}
	return res
}

func cloneLeaf(v Value) Value {
	switch x := v.(type) {
	case nil:
		return nil
	case String, Number:
		return x
	case Vector:
		if x == nil {
			return Vector(nil)
		}
		res := make(Vector, len(x))
		copy(res, x)
		return res
	case Array:
		// only ever nil here
		return Array(nil)
	default:
		panic(fmt.Sprintf("unknown value %T", v))
	}
}

// FromAny converts plain Go data, as produced by decoders and expression
// evaluation, into a Value.  It recurses into nested slices, so callers
// bound the nesting of x.
func FromAny(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return nil, ErrNilValue
	case Value:
		return Clone(v), nil
	case string:
		return String(v), nil
	case bool:
		return String(strconv.FormatBool(v)), nil
	case int:
		return FromInt(v), nil
	case int8:
		return FromInt(int(v)), nil
	case int16:
		return FromInt(int(v)), nil
	case int32:
		return FromInt(int(v)), nil
	case int64:
		return FromInt(int(v)), nil
	case uint:
		return FromFloat(float64(v)), nil
	case uint8:
		return FromInt(int(v)), nil
	case uint16:
		return FromInt(int(v)), nil
	case uint32:
		return FromInt(int(v)), nil
	case uint64:
		return FromFloat(float64(v)), nil
	case float32:
		return FromFloat(float64(v)), nil
	case float64:
		return FromFloat(v), nil
	case []float64:
		return FromFloats(v...)
	case []int:
		return FromInts(v...)
	case []string:
		vs := make([]Value, len(v))
		for i, s := range v {
			vs[i] = String(s)
		}
		return FromValues(vs...)
	case []any:
		vs := make([]Value, len(v))
		for i, elt := range v {
			ev, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			vs[i] = ev
		}
		return FromValues(vs...)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}
}

// ToAny converts v to plain Go data: string, int or float64, []any.  Like
// the encoders consuming its result it recurses into nested arrays.
func ToAny(v Value) any {
	switch x := v.(type) {
	case nil:
		return nil
	case String:
		return string(x)
	case Number:
		if float64(x.Int) == x.Float {
			return x.Int
		}
		return x.Float
	case Vector:
		return ToAny(x.Array())
	case Array:
		res := make([]any, len(x))
		for i, elt := range x {
			res[i] = ToAny(elt)
		}
		return res
	default:
		panic(fmt.Sprintf("unknown value %T", v))
	}
}
