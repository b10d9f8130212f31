package encode

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/treestore/format"
	"github.com/signadot/treestore/ir"
	"github.com/signadot/treestore/parse"
)

func sampleTree() *ir.Node {
	root := ir.NewNode("root")
	root.SetAttr("size", ir.FromInt(5))
	pos, _ := ir.FromInts(1, 2, 3)
	root.SetAttr("pos", pos)
	child := ir.NewNode("child")
	child.SetAttr("name", ir.FromString("hi"))
	root.AddChild(child)
	return root
}

const sampleText = `root {
	size = 5
	pos = [1, 2, 3]
	child {
		name = "hi"
	}
}
`

func TestEncodeSample(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sampleTree(), buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sampleText, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	back, err := parse.Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !ir.EqualNodes(sampleTree(), back) {
		t.Errorf("round trip differs:\n%s", MustString(back))
	}
}

func TestEncodeSubtree(t *testing.T) {
	root := sampleTree()
	child := root.Children[0]
	type subTest struct {
		opts []EncodeOption
		want string
	}
	tests := []subTest{
		{want: "\tchild {\n\t\tname = \"hi\"\n\t}\n"},
		{opts: []EncodeOption{EncodeIndent("  ")}, want: "  child {\n    name = \"hi\"\n  }\n"},
	}
	for _, tt := range tests {
		buf := bytes.NewBuffer(nil)
		if err := Encode(child, buf, tt.opts...); err != nil {
			t.Fatal(err)
		}
		if buf.String() != tt.want {
			t.Errorf("got %q want %q", buf.String(), tt.want)
		}
	}
	// a subtree keeps its place in the whole document
	if !strings.Contains(MustString(root), MustString(child)) {
		t.Errorf("subtree text not found in document text")
	}
	// detached, the same node starts at column 0
	if err := root.RemoveChild(child); err != nil {
		t.Fatal(err)
	}
	if got, want := MustString(child), "child {\n\tname = \"hi\"\n}"; got != want {
		t.Errorf("detached: got %q want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	root := ir.NewNode("r")
	for i, f := range []float64{0, -1, 0.1, 1.0 / 3, 1e21, -2.5e-7, 123456789} {
		root.SetAttr(fmt.Sprintf("f%d", i), ir.FromFloat(f))
	}
	vec, _ := ir.FromFloats(0.5, -0.25, 1e-9)
	root.SetAttr("vec", vec)
	mixed, _ := ir.FromValues(ir.FromString("a b"), ir.FromInt(2), ir.Array{ir.FromString("")})
	root.SetAttr("mixed", mixed)
	root.SetAttr("one", ir.Array{ir.FromInt(7)})
	cur := root
	for i := range 5 {
		next := ir.NewNode(fmt.Sprintf("level%d", i))
		next.SetAttr("i", ir.FromInt(i))
		cur.AddChild(next)
		root.AddChild(ir.NewNode("sibling"))
		cur = next
	}
	text := MustString(root)
	back, err := parse.Parse([]byte(text))
	if err != nil {
		t.Fatalf("%v\n%s", err, text)
	}
	if !ir.EqualNodes(root, back) {
		t.Errorf("round trip differs:\n%s\n---\n%s", text, MustString(back))
	}
}

func TestUnrepresentable(t *testing.T) {
	type unrepTest struct {
		name  string
		build func(*ir.Node)
	}
	tests := []unrepTest{
		{name: "node name", build: func(n *ir.Node) { n.AddChild(ir.NewNode("a b")) }},
		{name: "empty node name", build: func(n *ir.Node) { n.AddChild(ir.NewNode("")) }},
		{name: "attr name", build: func(n *ir.Node) { n.SetAttr("1x", ir.FromInt(1)) }},
		{name: "quote", build: func(n *ir.Node) { n.SetAttr("s", ir.FromString(`say "hi"`)) }},
		{name: "newline", build: func(n *ir.Node) { n.SetAttr("s", ir.FromString("a\nb")) }},
		{name: "nan", build: func(n *ir.Node) { n.SetAttr("f", ir.FromFloat(math.NaN())) }},
		{name: "inf in vector", build: func(n *ir.Node) { n.SetAttr("v", ir.Vector{1, math.Inf(1)}) }},
		{name: "empty array", build: func(n *ir.Node) { n.SetAttr("a", ir.Array{}) }},
		{name: "empty vector", build: func(n *ir.Node) { n.SetAttr("v", ir.Vector{}) }},
		{name: "nil value", build: func(n *ir.Node) { n.SetAttr("x", nil) }},
		{name: "nested", build: func(n *ir.Node) { n.SetAttr("a", ir.Array{ir.String("ok"), ir.String(`"`)}) }},
	}
	for _, tt := range tests {
		root := sampleTree()
		tt.build(root)
		buf := bytes.NewBuffer(nil)
		err := Encode(root, buf)
		if !errors.Is(err, ErrUnrepresentable) {
			t.Errorf("%s: got %v", tt.name, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: partial output %q", tt.name, buf.String())
		}
	}
}

func TestEncodeDeep(t *testing.T) {
	const depth = 100000
	root := ir.NewNode("n")
	cur := root
	for i := 1; i < depth; i++ {
		next := ir.NewNode("n")
		cur.AddChild(next)
		cur = next
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(root, buf, EncodeIndent("")); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 2*depth {
		t.Errorf("got %d lines", got)
	}

	var v ir.Value = ir.FromInt(1)
	for range depth {
		v = ir.Array{v, ir.FromString("s")}
	}
	leaf := ir.NewNode("leaf")
	leaf.SetAttr("a", v)
	buf.Reset()
	if err := Encode(leaf, buf); err != nil {
		t.Fatal(err)
	}
	want := "leaf {\n\ta = " + strings.Repeat("[", depth) + "1" + strings.Repeat(`, "s"]`, depth) + "\n}\n"
	if buf.String() != want {
		t.Errorf("nested arrays: got %d bytes want %d", buf.Len(), len(want))
	}
}

func TestEncodeColors(t *testing.T) {
	mark := func(s string, _ ...any) string { return "<" + s + ">" }
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.NullType, Attr: NodeColor}:     mark,
			{Type: ir.NumberType, Attr: ValueColor}: mark,
		},
	}
	root := ir.NewNode("r")
	root.SetAttr("n", ir.FromInt(1))
	root.SetAttr("s", ir.FromString("x"))
	got := MustString(root, EncodeColors(colors))
	want := "<r> {\n\tn = <1>\n\ts = \"x\"\n}"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if NewColors().Get(ir.StringType, NodeColor) == nil {
		t.Error("missing colors fall back to the default")
	}
}

func TestEncodeYAML(t *testing.T) {
	for _, f := range []format.Format{format.YAMLFormat, format.JSONFormat} {
		buf := bytes.NewBuffer(nil)
		if err := Encode(sampleTree(), buf, EncodeFormat(f)); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		back, err := parse.Parse(buf.Bytes(), parse.ParseFormat(f))
		if err != nil {
			t.Fatalf("%s: %v\n%s", f, err, buf.String())
		}
		if !ir.EqualNodes(sampleTree(), back) {
			t.Errorf("%s round trip differs:\n%s", f, buf.String())
		}
	}
	ms, err := ToMapSlice(sampleTree())
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 1 || ms[0].Key != "root" {
		t.Errorf("got %v", ms)
	}
	root := sampleTree()
	root.SetAttr("bad", ir.FromFloat(math.Inf(-1)))
	if err := Encode(root, bytes.NewBuffer(nil), EncodeFormat(format.JSONFormat)); !errors.Is(err, ErrUnrepresentable) {
		t.Errorf("expected ErrUnrepresentable, got %v", err)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	err := Encode(sampleTree(), bytes.NewBuffer(nil), EncodeFormat(format.BinaryFormat))
	if !errors.Is(err, format.ErrUnsupported) {
		t.Errorf("got %v", err)
	}
	if FormatFromOpts(EncodeFormat(format.JSONFormat)) != format.JSONFormat {
		t.Error("FormatFromOpts")
	}
}

func TestEncodeValue(t *testing.T) {
	type valueTest struct {
		v   ir.Value
		out string
	}
	tests := []valueTest{
		{v: ir.Vector{1, 2.5}, out: "[1, 2.5]\n"},
		{v: ir.FromString("x y"), out: "\"x y\"\n"},
		{v: ir.Array{ir.String("a"), ir.Vector{1, 2}}, out: "[\"a\", [1, 2]]\n"},
		{v: ir.FromFloat(-0.5), out: "-0.5\n"},
	}
	for _, tt := range tests {
		buf := bytes.NewBuffer(nil)
		if err := EncodeValue(tt.v, buf); err != nil {
			t.Errorf("%v: %v", tt.v, err)
			continue
		}
		if buf.String() != tt.out {
			t.Errorf("got %q want %q", buf.String(), tt.out)
		}
	}
	if err := EncodeValue(nil, bytes.NewBuffer(nil)); !errors.Is(err, ErrUnrepresentable) {
		t.Errorf("nil: got %v", err)
	}
}
