package hierarchy

import "fmt"

// SchemaError reports a structural problem that makes a schema unusable
// for generation. All such problems are fatal before generation begins;
// none are recoverable at runtime.
type SchemaError struct {
	Schema  string
	Node    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("schema %q: node %q: %s", e.Schema, e.Node, e.Message)
	}
	return fmt.Sprintf("schema %q: %s", e.Schema, e.Message)
}

// Validate checks the structural invariants generation relies on: the
// nodes form a strict tree (no cycles, no shared children), every
// identifier is globally unique, sibling names are unique, and every
// node declares a name, an identifier and an owned representation.
func (s *Schema) Validate() error {
	if len(s.Roots) == 0 {
		return &SchemaError{Schema: s.Name, Message: "no datatypes declared"}
	}
	seen := map[*Node]bool{}
	ids := map[string]string{}
	names := map[string]bool{}
	for _, r := range s.Roots {
		if names[r.Name] {
			return &SchemaError{Schema: s.Name, Node: r.Name, Message: "duplicate top-level datatype name"}
		}
		names[r.Name] = true
		if err := s.validateNode(r, seen, ids); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) validateNode(n *Node, seen map[*Node]bool, ids map[string]string) error {
	if seen[n] {
		// A revisited pointer is either a cycle or a child shared
		// between two parents; both break the strict-tree invariant.
		return &SchemaError{Schema: s.Name, Node: n.Name, Message: "node appears more than once in the tree"}
	}
	seen[n] = true
	if n.Name == "" {
		return &SchemaError{Schema: s.Name, Message: "node with empty name"}
	}
	if n.Identifier == "" {
		return &SchemaError{Schema: s.Name, Node: n.Name, Message: "missing identifier"}
	}
	if n.OwnedRepr == "" {
		return &SchemaError{Schema: s.Name, Node: n.Name, Message: "missing owned representation"}
	}
	if prev, ok := ids[n.Identifier]; ok {
		return &SchemaError{
			Schema:  s.Name,
			Node:    n.Name,
			Message: fmt.Sprintf("identifier %q already used by node %q", n.Identifier, prev),
		}
	}
	ids[n.Identifier] = n.Name
	siblings := map[string]bool{}
	for _, c := range n.Children {
		if siblings[c.Name] {
			return &SchemaError{
				Schema:  s.Name,
				Node:    n.Name,
				Message: fmt.Sprintf("duplicate child name %q", c.Name),
			}
		}
		siblings[c.Name] = true
		if err := s.validateNode(c, seen, ids); err != nil {
			return err
		}
	}
	return nil
}
