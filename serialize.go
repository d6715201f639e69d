package hpattern

import "strings"

// voidElements never get a closing tag when serialized.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Serialize re-emits a node (and its subtree) as compact HTML, preserving
// attribute order as stored on the node. It produces the same form that
// SerializeAll concatenates for whole-subtree capture ({{name:*}}), where
// the spec requires the "untouched serialized concatenation" of a sibling
// run.
func Serialize(n *Node) string {
	var sb strings.Builder
	writeNode(&sb, n)

	return sb.String()
}

// SerializeAll concatenates the serialization of each node in doc order,
// exactly as match_siblings' whole-capture shortcut requires.
func SerializeAll(nodes []*Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		writeNode(&sb, n)
	}

	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindElement:
		sb.WriteByte('<')
		sb.WriteString(n.Name.Local)

		for _, a := range n.Attrs {
			sb.WriteByte(' ')
			sb.WriteString(a.Name.Local)
			sb.WriteString(`="`)
			sb.WriteString(a.Value)
			sb.WriteByte('"')
		}

		sb.WriteByte('>')

		if voidElements[strings.ToLower(n.Name.Local)] {
			return
		}

		for _, c := range n.Children {
			writeNode(sb, c)
		}

		sb.WriteString("</")
		sb.WriteString(n.Name.Local)
		sb.WriteByte('>')

	case KindText:
		sb.WriteString(n.Text)

	case KindDoctype:
		sb.WriteString("<!DOCTYPE ")
		sb.WriteString(n.DoctypeName)
		sb.WriteByte('>')

	case KindDocument:
		for _, c := range n.Children {
			writeNode(sb, c)
		}

	case KindComment:
		// Dropped by normalization; nothing to serialize for a
		// normalized tree, but handle it for completeness.
		sb.WriteString("<!--")
		sb.WriteString(n.Text)
		sb.WriteString("-->")
	}
}
