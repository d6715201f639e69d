package hpattern

// Binding maps a pattern variable name to its captured text. Insertion
// order is irrelevant; the zero value is a nil map (safe to read, not to
// write — callers should make(Binding) first).
type Binding map[string]string

// clone returns a shallow copy of b so callers can freely combine and
// mutate results without aliasing bugs.
func (b Binding) clone() Binding {
	out := make(Binding, len(b))
	for k, v := range b {
		out[k] = v
	}

	return out
}

// mergeInto copies every key of other into dst, overwriting on collision.
// This is the "later wins" policy from map_product: callers are expected
// not to let two sub-patterns bind the same variable name, but the spec
// does not reject it, so collisions resolve silently rather than erroring.
func mergeInto(dst Binding, other Binding) {
	for k, v := range other {
		dst[k] = v
	}
}

// bindingProduct is map_product: the Cartesian product of two binding
// lists, each pair merged with "right wins" on key collision. The order of
// the output follows the nested-loop order (all of b for the first a,
// then all of b for the second a, ...), matching the reference semantics
// that callers may rely on to count embeddings.
func bindingProduct(a, b []Binding) []Binding {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]Binding, 0, len(a)*len(b))

	for _, av := range a {
		for _, bv := range b {
			merged := av.clone()
			mergeInto(merged, bv)
			out = append(out, merged)
		}
	}

	return out
}

// oneEmptyBinding is the canonical "one trivial embedding yielding no
// bindings" result used throughout the tree matcher.
func oneEmptyBinding() []Binding {
	return []Binding{{}}
}
