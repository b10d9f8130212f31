package treestore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/treestore/encode"
	"github.com/signadot/treestore/format"
	"github.com/signadot/treestore/ir"
	"github.com/signadot/treestore/libdiff"
	"github.com/signadot/treestore/parse"
)

const sample = "root { size = 5\n pos = [1, 2, 3]\n child { name = \"hi\" } }"

func mustLoad(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestScenarios(t *testing.T) {
	root := mustLoad(t, sample)
	if root.Name != "root" || root.AttrInt("size", 0) != 5 {
		t.Errorf("root %s", root)
	}
	if got := ir.LookupString(root, "child/name", "?"); got != "hi" {
		t.Errorf("child/name: got %q", got)
	}
	if got := ir.LookupInt(root, "child/missing", -1); got != -1 {
		t.Errorf("child/missing: got %d", got)
	}
	buf := bytes.NewBuffer(nil)
	if err := Save(root, buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\tchild {\n\t\tname = \"hi\"\n\t}\n") {
		t.Errorf("indentation:\n%s", buf.String())
	}
	back := mustLoad(t, buf.String())
	if !ir.EqualNodes(root, back) {
		t.Error("round trip differs")
	}
	if _, err := Load(strings.NewReader("root { x = [] }")); !errors.Is(err, parse.ErrSyntax) {
		t.Errorf("empty array: got %v", err)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	root := mustLoad(t, sample)
	for _, name := range []string{"a.ts", "a.yaml", "a.json"} {
		path := filepath.Join(dir, name)
		if err := SaveFile(root, path); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		back, err := LoadFile(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !ir.EqualNodes(root, back) {
			t.Errorf("%s: round trip differs", name)
		}
	}
	d, err := os.ReadFile(filepath.Join(dir, "a.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(d), []byte("{")) {
		t.Errorf("json file holds %q", d)
	}
	// explicit format wins over the suffix
	path := filepath.Join(dir, "b.json")
	if err := SaveFile(root, path, WithFormat(format.TextFormat)); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path, WithFormat(format.TextFormat)); err != nil {
		t.Error(err)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.ts")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
	bad := ir.NewNode("bad name")
	path = filepath.Join(dir, "bad.ts")
	if err := SaveFile(bad, path); !errors.Is(err, encode.ErrUnrepresentable) {
		t.Errorf("got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("file written for an unencodable tree")
	}
}

func TestLoadSaveOptions(t *testing.T) {
	root := mustLoad(t, sample)
	buf := bytes.NewBuffer(nil)
	if err := Save(root, buf, WithEncodeOptions(encode.EncodeIndent("    "))); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n    size = 5\n") {
		t.Errorf("indent option ignored:\n%s", buf.String())
	}
	deep := strings.Repeat("a {", 5) + strings.Repeat("}", 5)
	if _, err := Load(strings.NewReader(deep), WithParseOptions(parse.ParseMaxDepth(3))); !errors.Is(err, parse.ErrTooDeep) {
		t.Errorf("got %v", err)
	}
}

func TestDiff(t *testing.T) {
	a := mustLoad(t, sample)
	b := a.Clone()
	b.Children[0].SetAttr("extra", ir.FromInt(1))
	lines, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	var changed []string
	for _, ln := range lines {
		if ln.Op != libdiff.Equal {
			changed = append(changed, ln.String())
		}
	}
	if len(changed) != 1 || changed[0] != "+\t\textra = 1" {
		t.Errorf("got %q", changed)
	}
	lines, err = Diff(a, a.Clone())
	if err != nil {
		t.Fatal(err)
	}
	for _, ln := range lines {
		if ln.Op != libdiff.Equal {
			t.Errorf("unexpected change %q", ln.String())
		}
	}
}
