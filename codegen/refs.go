package codegen

import "github.com/timothee-haudebourg/xsd-types/hierarchy"

// refRepr is the representation a reference arm carries: copy arms
// keep the owned representation, the rest use the borrowed one.
func refRepr(n *hierarchy.Node) string {
	if n.Copy {
		return n.OwnedRepr
	}
	return n.Borrowed()
}

func (g *generator) refTypeDecl(n *hierarchy.Node, base string) {
	g.p("// %s references a value of %s without owning\n", refType(base), describe(n))
	g.p("// its non-copy payloads.\n")
	g.p("type %s struct {\n", refType(base))
	g.p("\tkind %s\n", kindType(base))
	if hasSelf(n) {
		g.p("\t%s %s\n", armField(base), refRepr(n))
	}
	for _, c := range n.Children {
		cn := goName(c)
		switch {
		case c.Leaf():
			g.p("\t%s %s\n", armField(cn), refRepr(c))
		case c.NeedsRef():
			g.p("\t%s %s\n", armField(cn), refType(cn))
		default:
			g.p("\t%s %s\n", armField(cn), valueType(cn))
		}
	}
	g.p("}\n\n")
}

// asRef emits the borrow. Arms whose whole subtree is copyable are
// copied outright; everything else aliases the owned payload.
func (g *generator) asRef(n *hierarchy.Node, base string) {
	g.p("// AsRef references the value. Copy representations are copied,\n")
	g.p("// the others are aliased without copying.\n")
	g.p("func (v %s) AsRef() %s {\n", valueType(base), refType(base))
	g.p("\tswitch v.kind {\n")
	cases, dflt := splitArms(n)
	for _, c := range cases {
		g.p("\tcase %s:\n", kindConst(base, goName(c)))
		g.asRefArm(c, base)
	}
	g.p("\tdefault:\n")
	if dflt != nil {
		g.asRefArm(dflt, base)
	} else {
		g.p("\t\treturn %s{kind: v.kind, %s: v.%s}\n", refType(base), armField(base), armField(base))
	}
	g.p("\t}\n}\n\n")
}

func (g *generator) asRefArm(c *hierarchy.Node, base string) {
	f := armField(goName(c))
	if !c.Leaf() && c.NeedsRef() {
		g.p("\t\treturn %s{kind: v.kind, %s: v.%s.AsRef()}\n", refType(base), f, f)
	} else {
		g.p("\t\treturn %s{kind: v.kind, %s: v.%s}\n", refType(base), f, f)
	}
}

// cloned emits the way back to an owned value, cloning exactly the
// non-copy payloads through the collaborator.
func (g *generator) cloned(n *hierarchy.Node, base string) {
	g.p("// Cloned returns an owned value equal to the referenced one.\n")
	g.p("func (r %s) Cloned() %s {\n", refType(base), valueType(base))
	g.p("\tswitch r.kind {\n")
	cases, dflt := splitArms(n)
	for _, c := range cases {
		g.p("\tcase %s:\n", kindConst(base, goName(c)))
		g.clonedArm(c, base)
	}
	g.p("\tdefault:\n")
	if dflt != nil {
		g.clonedArm(dflt, base)
	} else {
		f := armField(base)
		if n.Copy {
			g.p("\t\treturn %s{kind: r.kind, %s: r.%s}\n", valueType(base), f, f)
		} else {
			g.p("\t\treturn %s{kind: r.kind, %s: %s(r.%s)}\n", valueType(base), f, g.collab("Clone", base), f)
		}
	}
	g.p("\t}\n}\n\n")
}

func (g *generator) clonedArm(c *hierarchy.Node, base string) {
	cn := goName(c)
	f := armField(cn)
	vt := valueType(base)
	switch {
	case !c.Leaf() && c.NeedsRef():
		g.p("\t\treturn %s{kind: r.kind, %s: r.%s.Cloned()}\n", vt, f, f)
	case !c.Leaf() || c.Copy:
		g.p("\t\treturn %s{kind: r.kind, %s: r.%s}\n", vt, f, f)
	default:
		g.p("\t\treturn %s{kind: r.kind, %s: %s(r.%s)}\n", vt, f, g.collab("Clone", cn), f)
	}
}

func (g *generator) refDatatype(n *hierarchy.Node, base string) {
	g.p("// Datatype returns the tag of the referenced value's datatype.\n")
	g.p("func (r %s) Datatype() %s {\n", refType(base), tagType(base))
	g.p("\tswitch r.kind {\n")
	cases, dflt := splitArms(n)
	for _, c := range cases {
		g.p("\tcase %s:\n", kindConst(base, goName(c)))
		g.refDatatypeArm(c, base)
	}
	g.p("\tdefault:\n")
	if dflt != nil {
		g.refDatatypeArm(dflt, base)
	} else {
		g.p("\t\treturn %s()\n", base)
	}
	g.p("\t}\n}\n\n")
}

func (g *generator) refDatatypeArm(c *hierarchy.Node, base string) {
	cn := goName(c)
	if c.Leaf() {
		g.p("\t\treturn %s()\n", cn)
	} else {
		g.p("\t\treturn %sFrom%s(r.%s.Datatype())\n", fromPrefix(base), cn, armField(cn))
	}
}

func (g *generator) refString(n *hierarchy.Node, base string) {
	g.p("// String returns the canonical lexical form of the referenced value.\n")
	g.p("func (r %s) String() string {\n", refType(base))
	g.p("\tswitch r.kind {\n")
	cases, dflt := splitArms(n)
	for _, c := range cases {
		g.p("\tcase %s:\n", kindConst(base, goName(c)))
		g.refStringArm(c)
	}
	g.p("\tdefault:\n")
	if dflt != nil {
		g.refStringArm(dflt)
	} else {
		g.p("\t\treturn %s(r.%s)\n", g.collab("Format", base), armField(base))
	}
	g.p("\t}\n}\n\n")
}

func (g *generator) refStringArm(c *hierarchy.Node) {
	cn := goName(c)
	if c.Leaf() {
		g.p("\t\treturn %s(r.%s)\n", g.collab("Format", cn), armField(cn))
	} else {
		g.p("\t\treturn r.%s.String()\n", armField(cn))
	}
}
