package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Lookup bool
	Match  bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("TREESTORE_DEBUG_TOKENS")
	d.Parse = boolEnv("TREESTORE_DEBUG_PARSE")
	d.Lookup = boolEnv("TREESTORE_DEBUG_LOOKUP")
	d.Match = boolEnv("TREESTORE_DEBUG_MATCH")
	d.Encode = boolEnv("TREESTORE_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Lookup() bool {
	return d.Lookup
}
func Match() bool {
	return d.Match
}
func Encode() bool {
	return d.Encode
}

// Names lists the flags known to Set, in the order of their environment
// variables.
func Names() []string {
	return []string{"tokens", "parse", "lookup", "match", "encode"}
}

// Set turns the flag called name on or off, overriding the environment.
func Set(name string, on bool) error {
	switch name {
	case "tokens":
		d.Tokens = on
	case "parse":
		d.Parse = on
	case "lookup":
		d.Lookup = on
	case "match":
		d.Match = on
	case "encode":
		d.Encode = on
	default:
		return fmt.Errorf("unknown debug flag %q", name)
	}
	return nil
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
