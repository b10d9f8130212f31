package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	StringType
	NumberType
	VectorType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		StringType: "String",
		NumberType: "Number",
		VectorType: "Vector",
		ArrayType:  "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"String": StringType,
		"Number": NumberType,
		"Vector": VectorType,
		"Array":  ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		StringType,
		NumberType,
		VectorType,
		ArrayType,
	}
}
