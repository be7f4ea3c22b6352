// Package codegen turns a datatype hierarchy schema into Go source.
//
// For every abstract node the generated code has a closed tag type, a
// value type, an optional value-reference type, identifier lookup,
// parse dispatch and conversions to every ancestor level. Leaf nodes
// appear as flat arms of their parent. Emission is bottom-up, children
// before parents, so each declaration only refers to ones already
// written; the whole output is deterministic for a given schema.
package codegen

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/timothee-haudebourg/xsd-types/hierarchy"
)

// Config controls the shape of the generated file.
type Config struct {
	// Package is the package name of the generated file. Defaults to
	// the schema name.
	Package string

	// Collaborator is the selector of the package providing the
	// Parse/Format/Clone functions the generated code delegates to.
	// Defaults to "lexical".
	Collaborator string

	// NoFormat skips the gofmt/imports pass over the output, leaving
	// the emitter's raw text. Mainly useful in tests.
	NoFormat bool
}

// GenerateError reports a schema that cannot be turned into Go code,
// such as two nodes mapping to the same Go symbol.
type GenerateError struct {
	Schema  string
	Node    string
	Message string
}

func (e *GenerateError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("schema %q: %s", e.Schema, e.Message)
	}
	return fmt.Sprintf("schema %q: node %q: %s", e.Schema, e.Node, e.Message)
}

type generator struct {
	cfg    Config
	schema *hierarchy.Schema
	buf    bytes.Buffer

	// parent links and declared top-level symbols, for conversion
	// emission and collision detection.
	parent  map[*hierarchy.Node]*hierarchy.Node
	symbols map[string]string
}

// Generate emits the Go source implementing s.
func Generate(s *hierarchy.Schema, cfg Config) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if cfg.Package == "" {
		cfg.Package = s.Name
	}
	if cfg.Package == "" {
		return nil, &GenerateError{Schema: s.Name, Message: "no package name: name the schema or set Config.Package"}
	}
	if cfg.Collaborator == "" {
		cfg.Collaborator = "lexical"
	}
	g := &generator{
		cfg:     cfg,
		schema:  s,
		parent:  map[*hierarchy.Node]*hierarchy.Node{},
		symbols: map[string]string{},
	}
	s.Walk(func(n *hierarchy.Node) bool {
		for _, c := range n.Children {
			g.parent[c] = n
		}
		return true
	})
	if err := g.checkNames(); err != nil {
		return nil, err
	}

	g.header()
	for _, r := range s.Roots {
		if err := g.subtree(r); err != nil {
			return nil, err
		}
	}
	if err := g.rootAggregate(); err != nil {
		return nil, err
	}

	out := g.buf.Bytes()
	if cfg.NoFormat {
		return out, nil
	}
	formatted, err := imports.Process(cfg.Package+".go", out, nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

// checkNames rejects schemas whose nodes collapse onto the same Go
// symbol, or onto the root aggregate's reserved names.
func (g *generator) checkNames() error {
	// "Identifier" would make a widening function collide with the
	// root reverse-lookup DatatypeFromIdentifier.
	reserved := map[string]bool{
		tagType(""): true, valueType(""): true, refType(""): true,
		"Identifier": true,
	}
	ok := true
	var bad *GenerateError
	g.schema.Walk(func(n *hierarchy.Node) bool {
		name := goName(n)
		if token.IsKeyword(lowerFirst(name)) {
			bad = g.errf(n, "Go name %s lower-cases to a Go keyword", name)
			ok = false
			return false
		}
		if reserved[name] {
			bad = g.errf(n, "Go name %s collides with a generated root type", name)
			ok = false
			return false
		}
		if prev, dup := g.symbols[name]; dup {
			bad = g.errf(n, "Go name %s already used by node %q", name, prev)
			ok = false
			return false
		}
		// A node name may also collide with a type DERIVED from
		// another node's name, in either declaration order.
		for _, suffix := range []string{tagType(""), valueType(""), refType("")} {
			if stem, cut := strings.CutSuffix(name, suffix); cut && stem != "" {
				if prev, dup := g.symbols[stem]; dup {
					bad = g.errf(n, "Go name %s collides with the %s type of node %q", name, suffix, prev)
					ok = false
					return false
				}
			}
			if prev, dup := g.symbols[name+suffix]; dup {
				bad = g.errf(n, "the %s type of Go name %s collides with node %q", suffix, name, prev)
				ok = false
				return false
			}
		}
		g.symbols[name] = n.Name
		return true
	})
	if !ok {
		return bad
	}
	return nil
}

func (g *generator) errf(n *hierarchy.Node, format string, args ...any) *GenerateError {
	e := &GenerateError{Schema: g.schema.Name, Message: fmt.Sprintf(format, args...)}
	if n != nil {
		e.Node = n.Name
	}
	return e
}

func (g *generator) p(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *generator) header() {
	g.p("// Code generated by xsdgen. DO NOT EDIT.\n\n")
	g.p("package %s\n\n", g.cfg.Package)
	if len(g.schema.Imports) > 0 {
		g.p("import (\n")
		for _, im := range g.schema.Imports {
			g.p("\t%q\n", im)
		}
		g.p(")\n\n")
	}
}

// subtree emits the abstract nodes under n in post-order, so every
// child type exists before its parent refers to it.
func (g *generator) subtree(n *hierarchy.Node) error {
	if n.Leaf() {
		return nil
	}
	for _, c := range n.Children {
		if err := g.subtree(c); err != nil {
			return err
		}
	}
	return g.node(n)
}

// rootAggregate emits the top of the generated API: a Datatype, Value
// and ValueRef spanning every root subtree. The synthetic node has no
// identifier, so no arm of its own, and Copy set so only the real
// nodes decide whether a reference type is needed.
func (g *generator) rootAggregate() error {
	root := &hierarchy.Node{Copy: true, Children: g.schema.Roots}
	return g.node(root)
}

// node emits everything one abstract node owns: tag type, value type,
// conversions, lookup, parsing and the optional reference type.
func (g *generator) node(n *hierarchy.Node) error {
	base := goName(n)
	g.tagTypeDecl(n, base)
	g.tagConstructors(n, base)
	g.tagIdentifier(n, base)
	g.tagFromIdentifier(n, base)
	g.tagConversions(n, base)
	g.valueTypeDecl(n, base)
	g.valueConstructors(n, base)
	g.valueConversions(n, base)
	g.valueDatatype(n, base)
	g.valueString(n, base)
	g.parse(n, base)
	if n.NeedsRef() {
		g.refTypeDecl(n, base)
		g.asRef(n, base)
		g.cloned(n, base)
		g.refDatatype(n, base)
		g.refString(n, base)
	}
	return nil
}
