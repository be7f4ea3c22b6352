package codegen

import (
	"unicode"
	"unicode/utf8"

	"github.com/timothee-haudebourg/xsd-types/hierarchy"
)

// goName returns the exported Go name of a node: the declared override,
// or the node name with its first rune upper-cased.
func goName(n *hierarchy.Node) string {
	if n.GoName != "" {
		return n.GoName
	}
	return upperFirst(n.Name)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Generated symbol names, per node. The root aggregate uses an empty
// base name, collapsing to the plain Datatype/Value/ValueRef names.

func tagType(base string) string { return base + "Datatype" }

func valueType(base string) string { return base + "Value" }

func refType(base string) string { return base + "ValueRef" }

func kindType(base string) string {
	if base == "" {
		return "datatypeKind"
	}
	return lowerFirst(base) + "Kind"
}

// kindConst names the constant of one arm: the node's own arm uses the
// suffix "Self", a child arm the child's Go name.
func kindConst(base, arm string) string { return kindType(base) + arm }

// armField names the struct field carrying a child arm's payload.
func armField(childName string) string { return lowerFirst(childName) }
