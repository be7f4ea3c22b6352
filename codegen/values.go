package codegen

import "github.com/timothee-haudebourg/xsd-types/hierarchy"

// splitArms partitions a node's arms for switch emission. Go needs a
// return on every path, so one arm always lands in the default case:
// the node's own arm when it has one, the last child otherwise.
func splitArms(n *hierarchy.Node) (cases []*hierarchy.Node, dflt *hierarchy.Node) {
	if hasSelf(n) {
		return n.Children, nil
	}
	return n.Children[:len(n.Children)-1], n.Children[len(n.Children)-1]
}

func (g *generator) collab(verb, name string) string {
	return g.cfg.Collaborator + "." + verb + name
}

func (g *generator) valueTypeDecl(n *hierarchy.Node, base string) {
	g.p("// %s holds a value of %s", valueType(base), describe(n))
	if hasSelf(n) {
		g.p(" or any datatype\n// derived from it")
	}
	g.p(".\n")
	g.p("type %s struct {\n", valueType(base))
	g.p("\tkind %s\n", kindType(base))
	if hasSelf(n) {
		g.p("\t%s %s\n", armField(base), n.OwnedRepr)
	}
	for _, c := range n.Children {
		cn := goName(c)
		if c.Leaf() {
			g.p("\t%s %s\n", armField(cn), c.OwnedRepr)
		} else {
			g.p("\t%s %s\n", armField(cn), valueType(cn))
		}
	}
	g.p("}\n\n")
}

// valueConstructors emits New functions for the node's own arm and
// each leaf child arm. Abstract children are lifted through the
// widening functions instead.
func (g *generator) valueConstructors(n *hierarchy.Node, base string) {
	if hasSelf(n) {
		g.p("// New%s wraps an owned %s representation.\n", valueType(base), n.Name)
		g.p("func New%s(v %s) %s {\n", valueType(base), n.OwnedRepr, valueType(base))
		g.p("\treturn %s{kind: %s, %s: v}\n", valueType(base), kindConst(base, "Self"), armField(base))
		g.p("}\n\n")
	}
	for _, c := range n.Children {
		if !c.Leaf() {
			continue
		}
		cn := goName(c)
		g.p("// New%s wraps an owned %s representation.\n", valueType(cn), c.Name)
		g.p("func New%s(v %s) %s {\n", valueType(cn), c.OwnedRepr, valueType(base))
		g.p("\treturn %s{kind: %s, %s: v}\n", valueType(base), kindConst(base, cn), armField(cn))
		g.p("}\n\n")
	}
}

// valueConversions mirrors the tag conversions at the value level,
// again composed strictly one level at a time.
func (g *generator) valueConversions(n *hierarchy.Node, base string) {
	vt := valueType(base)
	for _, d := range abstractDescendants(n) {
		dn, cn := goName(d.node), goName(d.child)
		g.p("// %sFrom%s widens a %s value into %s.\n", vt, valueType(dn), d.node.Name, describe(n))
		g.p("func %sFrom%s(v %s) %s {\n", vt, valueType(dn), valueType(dn), vt)
		if d.node == d.child {
			g.p("\treturn %s{kind: %s, %s: v}\n", vt, kindConst(base, cn), armField(cn))
		} else {
			g.p("\treturn %sFrom%s(%sFrom%s(v))\n", vt, valueType(cn), valueType(cn), valueType(dn))
		}
		g.p("}\n\n")
	}
	for _, d := range abstractDescendants(n) {
		dn, cn := goName(d.node), goName(d.child)
		g.p("// As%s narrows the value to the %s subtree. On failure\n", valueType(dn), d.node.Name)
		g.p("// the original value is left untouched and ok is false.\n")
		g.p("func (v %s) As%s() (_ %s, ok bool) {\n", vt, valueType(dn), valueType(dn))
		if d.node == d.child {
			g.p("\tif v.kind == %s {\n", kindConst(base, cn))
			g.p("\t\treturn v.%s, true\n\t}\n", armField(cn))
			g.p("\treturn %s{}, false\n", valueType(dn))
		} else {
			g.p("\tu, ok := v.As%s()\n", valueType(cn))
			g.p("\tif !ok {\n\t\treturn %s{}, false\n\t}\n", valueType(dn))
			g.p("\treturn u.As%s()\n", valueType(dn))
		}
		g.p("}\n\n")
	}
}

// valueDatatype emits the tag accessor, rebuilt level by level from
// the active arm. It never fails and never allocates.
func (g *generator) valueDatatype(n *hierarchy.Node, base string) {
	g.p("// Datatype returns the tag of the value's datatype.\n")
	g.p("func (v %s) Datatype() %s {\n", valueType(base), tagType(base))
	g.p("\tswitch v.kind {\n")
	cases, dflt := splitArms(n)
	for _, c := range cases {
		g.p("\tcase %s:\n", kindConst(base, goName(c)))
		g.valueDatatypeArm(c, base)
	}
	g.p("\tdefault:\n")
	if dflt != nil {
		g.valueDatatypeArm(dflt, base)
	} else {
		g.p("\t\treturn %s()\n", base)
	}
	g.p("\t}\n}\n\n")
}

func (g *generator) valueDatatypeArm(c *hierarchy.Node, base string) {
	cn := goName(c)
	if c.Leaf() {
		g.p("\t\treturn %s()\n", cn)
	} else {
		g.p("\t\treturn %sFrom%s(v.%s.Datatype())\n", fromPrefix(base), cn, armField(cn))
	}
}

// valueString emits the canonical lexical form, delegating leaf and
// own arms to the collaborator formatters.
func (g *generator) valueString(n *hierarchy.Node, base string) {
	g.p("// String returns the canonical lexical form of the value.\n")
	g.p("func (v %s) String() string {\n", valueType(base))
	g.p("\tswitch v.kind {\n")
	cases, dflt := splitArms(n)
	for _, c := range cases {
		g.p("\tcase %s:\n", kindConst(base, goName(c)))
		g.valueStringArm(c)
	}
	g.p("\tdefault:\n")
	if dflt != nil {
		g.valueStringArm(dflt)
	} else {
		g.p("\t\treturn %s(v.%s)\n", g.collab("Format", base), armField(base))
	}
	g.p("\t}\n}\n\n")
}

func (g *generator) valueStringArm(c *hierarchy.Node) {
	cn := goName(c)
	if c.Leaf() {
		g.p("\t\treturn %s(v.%s)\n", g.collab("Format", cn), armField(cn))
	} else {
		g.p("\t\treturn v.%s.String()\n", armField(cn))
	}
}

// parse emits the dispatch from a tag to the matching collaborator
// parser. The returned value's datatype is the receiver tag; parse
// failures surface the collaborator's error untouched.
func (g *generator) parse(n *hierarchy.Node, base string) {
	vt := valueType(base)
	g.p("// Parse parses text as a value of the datatype t identifies.\n")
	g.p("func (t %s) Parse(text string) (%s, error) {\n", tagType(base), vt)
	g.p("\tswitch t.kind {\n")
	cases, dflt := splitArms(n)
	for _, c := range cases {
		g.p("\tcase %s:\n", kindConst(base, goName(c)))
		g.parseArm(c, base, vt)
	}
	g.p("\tdefault:\n")
	if dflt != nil {
		g.parseArm(dflt, base, vt)
	} else {
		g.p("\t\tv, err := %s(text)\n", g.collab("Parse", base))
		g.p("\t\tif err != nil {\n\t\t\treturn %s{}, err\n\t\t}\n", vt)
		g.p("\t\treturn New%s(v), nil\n", vt)
	}
	g.p("\t}\n}\n\n")
}

func (g *generator) parseArm(c *hierarchy.Node, base, vt string) {
	cn := goName(c)
	if c.Leaf() {
		g.p("\t\tv, err := %s(text)\n", g.collab("Parse", cn))
		g.p("\t\tif err != nil {\n\t\t\treturn %s{}, err\n\t\t}\n", vt)
		g.p("\t\treturn New%s(v), nil\n", valueType(cn))
	} else {
		g.p("\t\tv, err := t.%s.Parse(text)\n", armField(cn))
		g.p("\t\tif err != nil {\n\t\t\treturn %s{}, err\n\t\t}\n", vt)
		g.p("\t\treturn %sFrom%s(v), nil\n", vt, valueType(cn))
	}
}
