package ir

// The typed accessors below never fail.  An absent attribute and an
// attribute of an incompatible type both yield the supplied default.

// AttrString returns the text of a String attribute, or the decimal text
// of a Number attribute.
func (y *Node) AttrString(name, def string) string {
	return StringOf(y.Attr(name), def)
}

func (y *Node) AttrNum(name string, def float64) float64 {
	return NumOf(y.Attr(name), def)
}

func (y *Node) AttrInt(name string, def int) int {
	return IntOf(y.Attr(name), def)
}

// AttrVec returns the elements of a Vector attribute.  The result shares
// memory with the attribute.
func (y *Node) AttrVec(name string, def []float64) []float64 {
	return VecOf(y.Attr(name), def)
}

// AttrArray returns an Array attribute, or the Array view of a Vector
// attribute.
func (y *Node) AttrArray(name string, def Array) Array {
	return ArrayOf(y.Attr(name), def)
}

func StringOf(attr *Attr, def string) string {
	if attr == nil {
		return def
	}
	switch v := attr.Value.(type) {
	case String:
		return string(v)
	case Number:
		return v.String()
	}
	return def
}

func NumOf(attr *Attr, def float64) float64 {
	if attr == nil {
		return def
	}
	if n, ok := attr.Value.(Number); ok {
		return n.Float
	}
	return def
}

func IntOf(attr *Attr, def int) int {
	if attr == nil {
		return def
	}
	if n, ok := attr.Value.(Number); ok {
		return n.Int
	}
	return def
}

func VecOf(attr *Attr, def []float64) []float64 {
	if attr == nil {
		return def
	}
	if v, ok := attr.Value.(Vector); ok {
		return v
	}
	return def
}

func ArrayOf(attr *Attr, def Array) Array {
	if attr == nil {
		return def
	}
	switch v := attr.Value.(type) {
	case Array:
		return v
	case Vector:
		return v.Array()
	}
	return def
}
