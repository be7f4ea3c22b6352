package datatype

import (
	"errors"
	"math/big"
	"testing"

	"github.com/timothee-haudebourg/xsd-types/hierarchy"
)

func mustTag(t *testing.T, h *Hierarchy, local string) Tag {
	t.Helper()
	tag, err := h.FromIdentifier(hierarchy.XSDNamespace + local)
	if err != nil {
		t.Fatalf("FromIdentifier(%s) failed: %v", local, err)
	}
	return tag
}

func TestCompile_XSD(t *testing.T) {
	h := XSD()
	if h.Schema().Len() != len(XSDRegistry()) {
		t.Errorf("schema has %d nodes, registry has %d primitives",
			h.Schema().Len(), len(XSDRegistry()))
	}
}

func TestCompile_MissingPrimitive(t *testing.T) {
	reg := XSDRegistry()
	delete(reg, hierarchy.XSDNamespace+"gDay")
	if _, err := Compile(hierarchy.XSD(), reg); err == nil {
		t.Fatal("Expected an error for a node without a primitive")
	}
}

func TestCompile_MissingClone(t *testing.T) {
	reg := XSDRegistry()
	p := reg[hierarchy.XSDNamespace+"string"]
	p.Clone = nil
	reg[hierarchy.XSDNamespace+"string"] = p
	if _, err := Compile(hierarchy.XSD(), reg); err == nil {
		t.Fatal("Expected an error for a non-copy node without a clone")
	}
}

// Every node's identifier resolves to a tag whose Identifier returns
// the same string, and TagOf agrees with FromIdentifier.
func TestIdentifierRoundTrip(t *testing.T) {
	h := XSD()
	h.Schema().Walk(func(n *hierarchy.Node) bool {
		tag, err := h.FromIdentifier(n.Identifier)
		if err != nil {
			t.Errorf("FromIdentifier(%q) failed: %v", n.Identifier, err)
			return true
		}
		if tag.Identifier() != n.Identifier {
			t.Errorf("tag of %q identifies as %q", n.Identifier, tag.Identifier())
		}
		byNode, ok := h.TagOf(n)
		if !ok || byNode != tag {
			t.Errorf("TagOf(%q) disagrees with FromIdentifier", n.Name)
		}
		return true
	})
}

func TestFromIdentifier_Unknown(t *testing.T) {
	h := XSD()
	_, err := h.FromIdentifier(hierarchy.XSDNamespace + "unicorn")
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("Expected a LookupError, got %v", err)
	}
	if lookupErr.Identifier != hierarchy.XSDNamespace+"unicorn" {
		t.Errorf("LookupError carries %q", lookupErr.Identifier)
	}
}

func TestTagWithin(t *testing.T) {
	h := XSD()
	decimal := mustTag(t, h, "decimal")
	integer := mustTag(t, h, "integer")
	byteTag := mustTag(t, h, "byte")
	str := mustTag(t, h, "string")

	if !byteTag.Within(integer) || !byteTag.Within(decimal) {
		t.Error("byte should lie under integer and decimal")
	}
	if !integer.Within(integer) {
		t.Error("a tag should lie within itself")
	}
	if integer.Within(byteTag) {
		t.Error("integer should not lie under byte")
	}
	if byteTag.Within(str) {
		t.Error("byte should not lie under string")
	}
	if !byteTag.Leaf() || decimal.Leaf() {
		t.Error("Leaf disagrees with the schema shape")
	}
}

func TestTagNarrow(t *testing.T) {
	h := XSD()
	integer := mustTag(t, h, "integer")
	decimal := mustTag(t, h, "decimal")
	str := mustTag(t, h, "string")

	got, ok := integer.Narrow(decimal)
	if !ok || got != integer {
		t.Error("narrowing integer under decimal should keep the tag")
	}
	got, ok = integer.Narrow(str)
	if ok {
		t.Error("narrowing integer under string should fail")
	}
	if got != integer {
		t.Error("failed narrowing should return the tag unchanged")
	}
}

// Parse at a restricted datatype, widen to the root, then narrow back:
// the round trip preserves the value and its datatype.
func TestParseWidenNarrow(t *testing.T) {
	h := XSD()
	positive := mustTag(t, h, "positiveInteger")
	integer := mustTag(t, h, "integer")
	str := mustTag(t, h, "string")

	v, err := positive.Parse("42")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.Datatype() != positive {
		t.Errorf("parsed value has datatype %v", v.Datatype())
	}
	if !v.Within(integer) {
		t.Error("the value should lie in the integer subtree")
	}

	narrowed, ok := v.Narrow(integer)
	if !ok {
		t.Fatal("narrowing into the integer subtree should succeed")
	}
	if !narrowed.Equal(v) {
		t.Error("narrowing should preserve the value")
	}

	failed, ok := v.Narrow(str)
	if ok {
		t.Error("narrowing into a disjoint subtree should fail")
	}
	if !failed.Equal(v) {
		t.Error("failed narrowing should return the value unchanged")
	}
}

func TestParse_Restriction(t *testing.T) {
	h := XSD()
	positive := mustTag(t, h, "positiveInteger")
	if _, err := positive.Parse("0"); err == nil {
		t.Error("positiveInteger accepted 0")
	}
	if _, err := positive.Parse("-3"); err == nil {
		t.Error("positiveInteger accepted -3")
	}
}

func TestValueString_Canonical(t *testing.T) {
	h := XSD()
	decimal := mustTag(t, h, "decimal")
	v, err := decimal.Parse("+001.500")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.String() != "1.5" {
		t.Errorf("String() = %q, want the canonical form", v.String())
	}
}

// A copy representation is duplicated when referenced, a non-copy one
// is shared until Cloned.
func TestRefCopySemantics(t *testing.T) {
	h := XSD()

	ub := mustTag(t, h, "unsignedByte")
	v, err := ub.Parse("200")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ref := v.AsRef()
	if ref.Datatype() != ub {
		t.Errorf("reference has datatype %v", ref.Datatype())
	}
	cloned := ref.Cloned()
	if !cloned.Equal(v) {
		t.Error("Cloned should recover an equal value")
	}

	integer := mustTag(t, h, "integer")
	iv, err := integer.Parse("7")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	iref := iv.AsRef()
	if iref.Interface().(*big.Int) != iv.Interface().(*big.Int) {
		t.Error("a non-copy reference should share the payload")
	}
	owned := iref.Cloned()
	if owned.Interface().(*big.Int) == iv.Interface().(*big.Int) {
		t.Error("Cloned should detach the payload")
	}
	owned.Interface().(*big.Int).SetInt64(8)
	if iv.String() != "7" {
		t.Error("mutating the clone changed the original")
	}
}

func TestRefEqual(t *testing.T) {
	h := XSD()
	integer := mustTag(t, h, "integer")
	a, _ := integer.Parse("12")
	b, _ := integer.Parse("12")
	if !a.AsRef().Equal(b.AsRef()) {
		t.Error("references to equal values should be equal")
	}
	c, _ := integer.Parse("13")
	if a.AsRef().Equal(c.AsRef()) {
		t.Error("references to distinct values should differ")
	}
}
