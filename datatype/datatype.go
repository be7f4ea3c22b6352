// Package datatype is the generic core of the hierarchy compiler: a
// table-driven instantiation of a datatype schema. A compiled Hierarchy
// maps every node to a record holding its identifier, primitive parser,
// formatter and parent, replacing the bespoke per-node types emitted by
// codegen with a single Tag/Value/ValueRef triple. Both layers expose
// the same closed capability set: tag, parse, widen, narrow, display.
package datatype

import (
	"fmt"

	"github.com/timothee-haudebourg/xsd-types/hierarchy"
)

// Primitive is the external collaborator record of one datatype: its
// lexical parser, its canonical formatter, and for datatypes whose
// representation is not cheap to copy, a deep clone.
type Primitive struct {
	Parse  func(text string) (any, error)
	Format func(v any) string
	Clone  func(v any) any
}

// Registry maps datatype identifiers to their primitives.
type Registry map[string]Primitive

// LookupError reports an identifier matching no node in the schema.
type LookupError struct {
	Schema     string
	Identifier string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("schema %q: no datatype identified by %q", e.Schema, e.Identifier)
}

type nodeInfo struct {
	node   *hierarchy.Node
	parent int // pre-order index, -1 for top-level branches
	prim   Primitive
}

// Hierarchy is a compiled datatype schema. It is immutable after
// Compile and safe for concurrent use.
type Hierarchy struct {
	schema *hierarchy.Schema
	nodes  []nodeInfo
}

// Compile validates the schema and binds every node to its primitive.
// A node without a registry entry, or a non-copy node whose primitive
// lacks a Clone, is a fatal error: the schema is static, so every
// inconsistency is rejected before any value exists.
func Compile(s *hierarchy.Schema, reg Registry) (*Hierarchy, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	h := &Hierarchy{schema: s, nodes: make([]nodeInfo, 0, s.Len())}
	for _, r := range s.Roots {
		if err := h.compileNode(r, -1, reg); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *Hierarchy) compileNode(n *hierarchy.Node, parent int, reg Registry) error {
	prim, ok := reg[n.Identifier]
	if !ok {
		return fmt.Errorf("schema %q: node %q: no primitive registered for %q",
			h.schema.Name, n.Name, n.Identifier)
	}
	if prim.Parse == nil || prim.Format == nil {
		return fmt.Errorf("schema %q: node %q: primitive needs both a parser and a formatter",
			h.schema.Name, n.Name)
	}
	if !n.Copy && prim.Clone == nil {
		return fmt.Errorf("schema %q: node %q: non-copy representation needs a clone",
			h.schema.Name, n.Name)
	}
	idx := len(h.nodes)
	h.nodes = append(h.nodes, nodeInfo{node: n, parent: parent, prim: prim})
	for _, c := range n.Children {
		if err := h.compileNode(c, idx, reg); err != nil {
			return err
		}
	}
	return nil
}

// Schema returns the schema this hierarchy was compiled from.
func (h *Hierarchy) Schema() *hierarchy.Schema { return h.schema }

// FromIdentifier resolves an identifier to its tag by depth-first
// search in declaration order: each node is checked before its
// children. Identifiers are globally unique in a valid schema, so at
// most one node matches.
func (h *Hierarchy) FromIdentifier(id string) (Tag, error) {
	// The nodes slice is laid out in exactly that traversal order.
	for i := range h.nodes {
		if h.nodes[i].node.Identifier == id {
			return Tag{h: h, idx: i}, nil
		}
	}
	return Tag{}, &LookupError{Schema: h.schema.Name, Identifier: id}
}

// TagOf resolves a node of the schema to its tag. The node must belong
// to the schema the hierarchy was compiled from.
func (h *Hierarchy) TagOf(n *hierarchy.Node) (Tag, bool) {
	for i := range h.nodes {
		if h.nodes[i].node == n {
			return Tag{h: h, idx: i}, true
		}
	}
	return Tag{}, false
}

// Tag identifies one datatype of a compiled hierarchy. The zero Tag
// identifies nothing and is only produced alongside an error.
type Tag struct {
	h   *Hierarchy
	idx int
}

// Name returns the datatype's name.
func (t Tag) Name() string { return t.h.nodes[t.idx].node.Name }

// Identifier returns the datatype's external identifier. It is the
// total inverse of FromIdentifier.
func (t Tag) Identifier() string { return t.h.nodes[t.idx].node.Identifier }

// Leaf reports whether the datatype has no derived datatypes.
func (t Tag) Leaf() bool { return t.h.nodes[t.idx].node.Leaf() }

// Within reports whether t lies in the subtree rooted at ancestor,
// ancestor itself included. Structural containment, not identifier
// equality, is what decides widening and narrowing.
func (t Tag) Within(ancestor Tag) bool {
	if t.h != ancestor.h {
		return false
	}
	for i := t.idx; i >= 0; i = t.h.nodes[i].parent {
		if i == ancestor.idx {
			return true
		}
	}
	return false
}

// Narrow narrows t into the subtree rooted at under. On success the
// returned tag is t itself, seen as a member of that subtree; on
// failure t is returned unchanged with ok false so the caller can try a
// sibling branch.
func (t Tag) Narrow(under Tag) (_ Tag, ok bool) {
	return t, t.Within(under)
}

// Parse parses text against this datatype: a leaf delegates directly to
// its primitive parser, and a derived hierarchy reaches its leaves the
// same way, since every tag names the exact datatype to parse as. The
// returned value carries t as its datatype.
func (t Tag) Parse(text string) (Value, error) {
	v, err := t.h.nodes[t.idx].prim.Parse(text)
	if err != nil {
		return Value{}, err
	}
	return Value{tag: t, data: v}, nil
}

func (t Tag) String() string { return t.Name() }
