package hpattern

// NodeKind is the tagged-variant discriminator for Node.
type NodeKind int

const (
	// KindDocument is the root container of a tree; it has only children.
	KindDocument NodeKind = iota
	// KindDoctype is a <!DOCTYPE ...> declaration; it never has children.
	KindDoctype
	// KindElement is a tagged element with attributes and ordered children.
	KindElement
	// KindText is a run of character data.
	KindText
	// KindComment is an HTML comment; normalization always drops these.
	KindComment
)

// QName is a qualified name: an XML/HTML namespace paired with a local name.
// Two QNames are equal iff both fields match.
type QName struct {
	Namespace string
	Local     string
}

// Attr is a single attribute, keeping insertion order visible to callers
// that serialize a node back to HTML (whole-subtree capture, pretty
// printing). Attribute order is never observable in bindings.
type Attr struct {
	Name  QName
	Value string
}

// AttrList is an ordered attribute set. Lookups are linear, which is fine:
// elements rarely carry more than a handful of attributes.
type AttrList []Attr

// Get returns the value of the attribute with the given local name and
// whether it was present.
func (a AttrList) Get(local string) (string, bool) {
	for _, attr := range a {
		if attr.Name.Local == local {
			return attr.Value, true
		}
	}

	return "", false
}

// Node is the tagged tree node shared by patterns and documents. Only the
// fields relevant to Kind are populated; the comment above each field
// group below names the kinds that use it.
type Node struct {
	Kind NodeKind

	// KindElement
	Name     QName
	Attrs    AttrList
	Children []*Node

	// KindDoctype
	DoctypeName     string
	DoctypePublicID string
	DoctypeSystemID string

	// KindText, KindComment
	Text string
}

// IsElement reports whether n is a KindElement node with the given local
// tag name, ignoring namespace (HTML documents are effectively
// single-namespace for our purposes).
func (n *Node) IsElement(local string) bool {
	return n != nil && n.Kind == KindElement && n.Name.Local == local
}
