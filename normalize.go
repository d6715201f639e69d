package hpattern

import "strings"

// Normalize rebuilds a tree with whitespace-only text nodes filtered out
// and comments dropped, the way the matcher expects both the pattern and
// the document to look. It is pure: it never inspects placeholder syntax,
// only node shape and text content.
//
// Applying Normalize twice is idempotent: re-normalizing an already
// normalized tree yields an equal tree.
func Normalize(n *Node) *Node {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case KindDocument, KindElement:
		out := &Node{
			Kind:     n.Kind,
			Name:     n.Name,
			Attrs:    n.Attrs,
			Children: normalizeChildren(n.Children),
		}

		return out

	case KindDoctype:
		return &Node{
			Kind:            KindDoctype,
			DoctypeName:     n.DoctypeName,
			DoctypePublicID: n.DoctypePublicID,
			DoctypeSystemID: n.DoctypeSystemID,
		}

	case KindText:
		trimmed := strings.TrimSpace(n.Text)
		if trimmed == "" {
			return nil
		}

		return &Node{Kind: KindText, Text: trimmed}

	case KindComment:
		return nil

	default:
		panic("hpattern: unreachable node kind in Normalize")
	}
}

// normalizeChildren normalizes each child, dropping any that normalization
// rejects (nil), and preserves the surviving children's relative order.
func normalizeChildren(children []*Node) []*Node {
	if len(children) == 0 {
		return nil
	}

	out := make([]*Node, 0, len(children))

	for _, c := range children {
		if nc := Normalize(c); nc != nil {
			out = append(out, nc)
		}
	}

	return out
}
