// Package hierarchy defines the declarative datatype tree that drives
// generation: an immutable schema of nodes, each naming a datatype, its
// representation, its external identifier and its derived subtypes.
package hierarchy

// Node describes one datatype in the tree.
type Node struct {
	// Name is the datatype name, unique within its sibling set. It
	// drives the names of everything generated for the node.
	Name string

	// GoName overrides the exported Go name derived from Name.
	GoName string

	// Identifier is the external identifier of the datatype, globally
	// unique across the whole schema. For XSD this is the datatype IRI.
	Identifier string

	// OwnedRepr is the Go type holding an owned value of this datatype.
	OwnedRepr string

	// BorrowedRepr is the Go type referencing a value of this datatype
	// without copying it. Defaults to OwnedRepr.
	BorrowedRepr string

	// Copy marks representations that are cheap to duplicate by value.
	// The flag is consulted at each use site, when a node's value is
	// embedded as a subtype arm inside a parent's reference type. It is
	// never cached as a global per-node property.
	Copy bool

	// Children are the datatypes directly derived from this one, in
	// declaration order.
	Children []*Node
}

// Leaf reports whether the node has no derived datatypes. A leaf node
// generates a flat tag arm in its parent; a node with children
// generates its own nested tag type.
func (n *Node) Leaf() bool { return len(n.Children) == 0 }

// Borrowed returns the node's borrowed representation, falling back to
// the owned one when none is declared.
func (n *Node) Borrowed() string {
	if n.BorrowedRepr != "" {
		return n.BorrowedRepr
	}
	return n.OwnedRepr
}

// NeedsRef reports whether n's subtree, n included, contains a datatype
// whose representation is not cheap to copy. A value-reference type is
// generated for a node only when this holds.
func (n *Node) NeedsRef() bool {
	ref := false
	n.Walk(func(d *Node) bool {
		if !d.Copy {
			ref = true
			return false
		}
		return true
	})
	return ref
}

// Walk visits n and its subtree depth-first in declaration order,
// stopping early when fn returns false. It reports whether the walk ran
// to completion.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Schema is the root of a datatype tree. The top-level branches are
// aggregated by the generated root tag and value types.
type Schema struct {
	// Name identifies the schema in diagnostics.
	Name string

	// Imports are extra import paths the representation types in this
	// schema refer to.
	Imports []string

	// Roots are the top-level datatype branches, in declaration order.
	Roots []*Node
}

// Walk visits every node of the schema depth-first in declaration
// order, stopping early when fn returns false.
func (s *Schema) Walk(fn func(*Node) bool) {
	for _, r := range s.Roots {
		if !r.Walk(fn) {
			return
		}
	}
}

// Len returns the number of nodes in the schema.
func (s *Schema) Len() int {
	n := 0
	s.Walk(func(*Node) bool {
		n++
		return true
	})
	return n
}
