package encode

import (
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/signadot/treestore/ir"
)

// ToMapSlice returns node as an ordered yaml mapping with a single key,
// the node name.  Attributes come before children, each in tree order.
func ToMapSlice(node *ir.Node) (yaml.MapSlice, error) {
	body, err := mapSliceBody(node)
	if err != nil {
		return nil, err
	}
	return yaml.MapSlice{{Key: node.Name, Value: body}}, nil
}

func mapSliceBody(node *ir.Node) (yaml.MapSlice, error) {
	body := make(yaml.MapSlice, 0, len(node.Attrs)+len(node.Children))
	for _, attr := range node.Attrs {
		if err := checkFinite(attr.Value); err != nil {
			return nil, fmt.Errorf("%s: attribute %s: %w", node.Path(), attr.Name, err)
		}
		body = append(body, yaml.MapItem{Key: attr.Name, Value: ir.ToAny(attr.Value)})
	}
	for _, child := range node.Children {
		sub, err := mapSliceBody(child)
		if err != nil {
			return nil, err
		}
		body = append(body, yaml.MapItem{Key: child.Name, Value: sub})
	}
	return body, nil
}

func checkFinite(v ir.Value) error {
	switch x := v.(type) {
	case nil:
		return fmt.Errorf("%w: nil value", ErrUnrepresentable)
	case ir.Number:
		return checkFloat(x.Float)
	case ir.Vector:
		for _, f := range x {
			if err := checkFloat(f); err != nil {
				return err
			}
		}
	case ir.Array:
		for _, elt := range x {
			if err := checkFinite(elt); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: number %v", ErrUnrepresentable, f)
	}
	return nil
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	ms, err := ToMapSlice(node)
	if err != nil {
		return err
	}
	return marshalYAML(ms, w, es)
}

func encodeYAMLValue(v ir.Value, w io.Writer, es *EncState) error {
	if err := checkFinite(v); err != nil {
		return err
	}
	return marshalYAML(ir.ToAny(v), w, es)
}

func marshalYAML(v any, w io.Writer, es *EncState) error {
	var yOpts []yaml.EncodeOption
	if es.format.IsJSON() {
		yOpts = append(yOpts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(v, yOpts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if es.format.IsJSON() && (len(d) == 0 || d[len(d)-1] != '\n') {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}
