package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/treestore/debug"
	"github.com/signadot/treestore/format"
	"github.com/signadot/treestore/ir"
	"github.com/signadot/treestore/token"
)

type EncState struct {
	indent string
	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node and its subtree to w.  Nothing is written if the
// tree cannot be encoded.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: "\t",
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	buf := bytes.NewBuffer(nil)
	var err error
	switch es.format {
	case format.TextFormat:
		err = encodeText(node, buf, es)
	case format.YAMLFormat, format.JSONFormat:
		err = encodeYAML(node, buf, es)
	default:
		err = fmt.Errorf("%w: encoding %s", format.ErrUnsupported, es.format)
	}
	if err != nil {
		if debug.Encode() {
			debug.Logf("encode %s failed: %v\n", node, err)
		}
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

type frame struct {
	node  *ir.Node
	depth int
	post  bool
}

// encodeText writes the text form, depth first with an explicit stack so
// that deep trees cannot exhaust the goroutine stack.  Each node is
// indented by its depth in the whole tree, so a subtree is written the way
// it appears inside its root's document.
func encodeText(root *ir.Node, buf *bytes.Buffer, es *EncState) error {
	stack := []frame{{node: root, depth: root.Depth()}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node, depth := top.node, top.depth
		if top.post {
			writeIndent(buf, es, depth)
			buf.WriteString(applyColor(es, ir.NullType, SepColor, "}"))
			buf.WriteByte('\n')
			continue
		}
		if !token.IsIdent(node.Name) {
			return fmt.Errorf("%w: node name %q at %s", ErrUnrepresentable, node.Name, node.Path())
		}
		if debug.Encode() {
			debug.Logf("encode node %s depth %d\n", node.Path(), depth)
		}
		writeIndent(buf, es, depth)
		buf.WriteString(applyColor(es, ir.NullType, NodeColor, node.Name))
		buf.WriteByte(' ')
		buf.WriteString(applyColor(es, ir.NullType, SepColor, "{"))
		buf.WriteByte('\n')
		for _, attr := range node.Attrs {
			if err := encodeAttr(attr, buf, es, depth+1); err != nil {
				return fmt.Errorf("%s: %w", node.Path(), err)
			}
		}
		stack = append(stack, frame{node: node, depth: depth, post: true})
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: node.Children[i], depth: depth + 1})
		}
	}
	return nil
}

func writeIndent(buf *bytes.Buffer, es *EncState, depth int) {
	for range depth {
		buf.WriteString(es.indent)
	}
}

func encodeAttr(attr *ir.Attr, buf *bytes.Buffer, es *EncState, depth int) error {
	if !token.IsIdent(attr.Name) {
		return fmt.Errorf("%w: attribute name %q", ErrUnrepresentable, attr.Name)
	}
	if attr.Value == nil {
		return fmt.Errorf("%w: attribute %s has no value", ErrUnrepresentable, attr.Name)
	}
	t := attr.Value.Type()
	writeIndent(buf, es, depth)
	buf.WriteString(applyColor(es, t, FieldColor, attr.Name))
	buf.WriteString(applyColor(es, t, SepColor, " = "))
	if err := encodeValue(attr.Value, buf, es); err != nil {
		return fmt.Errorf("attribute %s: %w", attr.Name, err)
	}
	buf.WriteByte('\n')
	return nil
}

// encodeValue writes v.  Nested arrays are walked with an explicit stack;
// an item with a sep writes that separator instead of a value.
func encodeValue(v ir.Value, buf *bytes.Buffer, es *EncState) error {
	type item struct {
		v   ir.Value
		sep string
	}
	stack := []item{{v: v}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.sep != "" {
			buf.WriteString(applyColor(es, ir.ArrayType, SepColor, it.sep))
			continue
		}
		arr, ok := it.v.(ir.Array)
		if !ok {
			if err := encodeScalar(it.v, buf, es); err != nil {
				return err
			}
			continue
		}
		if len(arr) == 0 {
			return fmt.Errorf("%w: empty array", ErrUnrepresentable)
		}
		buf.WriteString(applyColor(es, ir.ArrayType, SepColor, "["))
		stack = append(stack, item{sep: "]"})
		for i := len(arr) - 1; i >= 0; i-- {
			stack = append(stack, item{v: arr[i]})
			if i > 0 {
				stack = append(stack, item{sep: ", "})
			}
		}
	}
	return nil
}

func encodeScalar(v ir.Value, buf *bytes.Buffer, es *EncState) error {
	switch x := v.(type) {
	case nil:
		return fmt.Errorf("%w: nil value", ErrUnrepresentable)
	case ir.String:
		if strings.ContainsAny(string(x), "\"\n\r") {
			return fmt.Errorf("%w: string %q", ErrUnrepresentable, string(x))
		}
		buf.WriteString(applyColor(es, ir.StringType, ValueColor, `"`+string(x)+`"`))
	case ir.Number:
		s, err := formatNumber(x.Float)
		if err != nil {
			return err
		}
		buf.WriteString(applyColor(es, ir.NumberType, ValueColor, s))
	case ir.Vector:
		if len(x) == 0 {
			return fmt.Errorf("%w: empty vector", ErrUnrepresentable)
		}
		buf.WriteString(applyColor(es, ir.VectorType, SepColor, "["))
		for i, f := range x {
			if i > 0 {
				buf.WriteString(applyColor(es, ir.VectorType, SepColor, ", "))
			}
			s, err := formatNumber(f)
			if err != nil {
				return err
			}
			buf.WriteString(applyColor(es, ir.VectorType, ValueColor, s))
		}
		buf.WriteString(applyColor(es, ir.VectorType, SepColor, "]"))
	default:
		return fmt.Errorf("%w: unknown value type %T", ErrEncoding, v)
	}
	return nil
}

func formatNumber(f float64) (string, error) {
	if err := checkFloat(f); err != nil {
		return "", err
	}
	return ir.FormatNumber(f), nil
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

// EncodeValue writes v the way it appears to the right of an attribute
// name, followed by a newline.
func EncodeValue(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	switch es.format {
	case format.TextFormat:
		if err := encodeValue(v, buf, es); err != nil {
			return err
		}
		buf.WriteByte('\n')
	case format.YAMLFormat, format.JSONFormat:
		if err := encodeYAMLValue(v, buf, es); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: encoding %s", format.ErrUnsupported, es.format)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
