package codegen

import "github.com/timothee-haudebourg/xsd-types/hierarchy"

// hasSelf reports whether the emitted union carries an arm for the
// node itself. The synthetic root aggregate has no identifier, and no
// arm of its own.
func hasSelf(n *hierarchy.Node) bool { return n.Identifier != "" }

// describe renders the node for doc comments.
func describe(n *hierarchy.Node) string {
	if n.Name == "" {
		return "the hierarchy"
	}
	return "the " + n.Name + " datatype"
}

// fromPrefix is the leading segment of widening function names. The
// root aggregate has no Go name of its own and borrows its tag type
// name instead.
func fromPrefix(base string) string {
	if base == "" {
		return tagType("")
	}
	return base
}

// A desc pairs an abstract proper descendant with the immediate child
// it is reached through, which is all conversion emission needs: every
// conversion composes one level at a time.
type desc struct {
	node  *hierarchy.Node
	child *hierarchy.Node
}

func abstractDescendants(n *hierarchy.Node) []desc {
	var out []desc
	for _, c := range n.Children {
		if c.Leaf() {
			continue
		}
		out = append(out, desc{node: c, child: c})
		for _, d := range abstractDescendants(c) {
			out = append(out, desc{node: d.node, child: c})
		}
	}
	return out
}

func (g *generator) tagTypeDecl(n *hierarchy.Node, base string) {
	kt := kindType(base)
	g.p("type %s uint8\n\n", kt)
	g.p("const (\n")
	first := true
	if hasSelf(n) {
		g.p("\t%s %s = iota\n", kindConst(base, "Self"), kt)
		first = false
	}
	for _, c := range n.Children {
		if first {
			g.p("\t%s %s = iota\n", kindConst(base, goName(c)), kt)
			first = false
		} else {
			g.p("\t%s\n", kindConst(base, goName(c)))
		}
	}
	g.p(")\n\n")

	g.p("// %s identifies %s", tagType(base), describe(n))
	if hasSelf(n) {
		g.p(" or any datatype derived from it")
	}
	g.p(".\n")
	g.p("type %s struct {\n", tagType(base))
	g.p("\tkind %s\n", kt)
	for _, c := range n.Children {
		if !c.Leaf() {
			g.p("\t%s %s\n", armField(goName(c)), tagType(goName(c)))
		}
	}
	g.p("}\n\n")
}

// tagConstructors emits the node's own tag constructor and one for
// each leaf child. Abstract children already have their own.
func (g *generator) tagConstructors(n *hierarchy.Node, base string) {
	if hasSelf(n) {
		g.p("// %s returns the tag of %s itself.\n", base, describe(n))
		g.p("func %s() %s {\n", base, tagType(base))
		g.p("\treturn %s{kind: %s}\n", tagType(base), kindConst(base, "Self"))
		g.p("}\n\n")
	}
	for _, c := range n.Children {
		if !c.Leaf() {
			continue
		}
		cn := goName(c)
		g.p("// %s returns the tag of %s.\n", cn, describe(c))
		g.p("func %s() %s {\n", cn, tagType(base))
		g.p("\treturn %s{kind: %s}\n", tagType(base), kindConst(base, cn))
		g.p("}\n\n")
	}
}

// tagIdentifier emits the total Identifier method. The switch needs a
// default arm to have a return on every path: the node's own arm when
// there is one, the last child otherwise.
func (g *generator) tagIdentifier(n *hierarchy.Node, base string) {
	g.p("// Identifier returns the IRI identifying the datatype.\n")
	g.p("func (t %s) Identifier() string {\n", tagType(base))
	g.p("\tswitch t.kind {\n")
	children := n.Children
	var dflt *hierarchy.Node
	if !hasSelf(n) {
		dflt = children[len(children)-1]
		children = children[:len(children)-1]
	}
	for _, c := range children {
		g.p("\tcase %s:\n", kindConst(base, goName(c)))
		g.tagIdentifierArm(c)
	}
	g.p("\tdefault:\n")
	if dflt != nil {
		g.tagIdentifierArm(dflt)
	} else {
		g.p("\t\treturn %q\n", n.Identifier)
	}
	g.p("\t}\n}\n\n")
}

func (g *generator) tagIdentifierArm(c *hierarchy.Node) {
	if c.Leaf() {
		g.p("\t\treturn %q\n", c.Identifier)
	} else {
		g.p("\t\treturn t.%s.Identifier()\n", armField(goName(c)))
	}
}

// tagFromIdentifier emits the reverse lookup: the node's own
// identifier first, then every subtree in declaration order.
func (g *generator) tagFromIdentifier(n *hierarchy.Node, base string) {
	name := tagType(base) + "FromIdentifier"
	g.p("// %s resolves an identifier within %s,\n", name, describe(n))
	g.p("// trying the datatype itself first and then each derived datatype in\n")
	g.p("// declaration order.\n")
	g.p("func %s(id string) (%s, bool) {\n", name, tagType(base))
	if hasSelf(n) {
		g.p("\tif id == %q {\n\t\treturn %s(), true\n\t}\n", n.Identifier, base)
	}
	for _, c := range n.Children {
		cn := goName(c)
		if c.Leaf() {
			g.p("\tif id == %q {\n\t\treturn %s(), true\n\t}\n", c.Identifier, cn)
		} else {
			g.p("\tif t, ok := %sFromIdentifier(id); ok {\n", tagType(cn))
			g.p("\t\treturn %sFrom%s(t), true\n", fromPrefix(base), cn)
			g.p("\t}\n")
		}
	}
	g.p("\treturn %s{}, false\n}\n\n", tagType(base))
}

// tagConversions emits widening functions and narrowing methods
// between the node and every abstract descendant. Each conversion
// covering more than one level is composed from the single-level ones.
func (g *generator) tagConversions(n *hierarchy.Node, base string) {
	pre := fromPrefix(base)
	for _, d := range abstractDescendants(n) {
		dn, cn := goName(d.node), goName(d.child)
		g.p("// %sFrom%s widens a %s tag into %s.\n", pre, dn, d.node.Name, describe(n))
		g.p("func %sFrom%s(t %s) %s {\n", pre, dn, tagType(dn), tagType(base))
		if d.node == d.child {
			g.p("\treturn %s{kind: %s, %s: t}\n", tagType(base), kindConst(base, cn), armField(cn))
		} else {
			g.p("\treturn %sFrom%s(%sFrom%s(t))\n", pre, cn, cn, dn)
		}
		g.p("}\n\n")
	}
	for _, d := range abstractDescendants(n) {
		dn, cn := goName(d.node), goName(d.child)
		g.p("// As%s narrows the tag to the %s subtree. The second\n", dn, d.node.Name)
		g.p("// result reports whether the tag lies under it.\n")
		g.p("func (t %s) As%s() (%s, bool) {\n", tagType(base), dn, tagType(dn))
		if d.node == d.child {
			g.p("\tif t.kind == %s {\n", kindConst(base, cn))
			g.p("\t\treturn t.%s, true\n\t}\n", armField(cn))
			g.p("\treturn %s{}, false\n", tagType(dn))
		} else {
			g.p("\tu, ok := t.As%s()\n", cn)
			g.p("\tif !ok {\n\t\treturn %s{}, false\n\t}\n", tagType(dn))
			g.p("\treturn u.As%s()\n", dn)
		}
		g.p("}\n\n")
	}
}
