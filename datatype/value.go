package datatype

// Value is an owned value of some datatype of a compiled hierarchy.
type Value struct {
	tag  Tag
	data any
}

// Datatype returns the value's tag. It never allocates.
func (v Value) Datatype() Tag { return v.tag }

// Interface returns the underlying representation.
func (v Value) Interface() any { return v.data }

// Within reports whether the value's datatype lies in the subtree
// rooted at ancestor.
func (v Value) Within(ancestor Tag) bool { return v.tag.Within(ancestor) }

// Narrow narrows the value into the subtree rooted at under. On failure
// the original value is returned unchanged with ok false, so the caller
// can try a sibling branch; narrowing failure is an expected outcome,
// not an error.
func (v Value) Narrow(under Tag) (_ Value, ok bool) {
	return v, v.tag.Within(under)
}

// AsRef returns a reference to the value without copying non-copy
// payloads: copy-flagged representations are duplicated by value,
// everything else is shared with v. It is O(1) and does not allocate.
func (v Value) AsRef() ValueRef {
	// Copy and non-copy payloads alike are carried by the interface
	// value: assignment duplicates value representations and aliases
	// reference ones, which is exactly the use-site rule.
	return ValueRef{tag: v.tag, data: v.data}
}

// String renders the canonical lexical form by delegating to the active
// datatype's formatter.
func (v Value) String() string {
	return v.tag.h.nodes[v.tag.idx].prim.Format(v.data)
}

// Equal reports structural equality: same datatype and same value, the
// latter compared through the canonical lexical form.
func (v Value) Equal(o Value) bool {
	return v.tag == o.tag && v.String() == o.String()
}

// ValueRef references a value of some datatype of a compiled hierarchy.
// Copy-flagged payloads are held directly; all others are shared with
// the value the reference was taken from.
type ValueRef struct {
	tag  Tag
	data any
}

// Datatype returns the referenced value's tag.
func (r ValueRef) Datatype() Tag { return r.tag }

// Interface returns the underlying representation.
func (r ValueRef) Interface() any { return r.data }

// Cloned returns an owned value equal to the referenced one: shared
// payloads are deep-cloned through the datatype's primitive,
// copy-flagged payloads are duplicated by value. It always succeeds.
func (r ValueRef) Cloned() Value {
	info := r.tag.h.nodes[r.tag.idx]
	if info.node.Copy {
		return Value{tag: r.tag, data: r.data}
	}
	return Value{tag: r.tag, data: info.prim.Clone(r.data)}
}

// String renders the canonical lexical form of the referenced value.
func (r ValueRef) String() string {
	return r.tag.h.nodes[r.tag.idx].prim.Format(r.data)
}

// Equal reports structural equality with another reference.
func (r ValueRef) Equal(o ValueRef) bool {
	return r.tag == o.tag && r.String() == o.String()
}
