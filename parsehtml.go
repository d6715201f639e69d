package hpattern

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// strictParseNoise is the single tokenizer diagnostic that is tolerated
// and discarded rather than failing pattern construction, mirroring
// easy-scraper's parse_html_strict policy of dropping the benign
// "Unexpected token" message from its HTML5 parser's error callback.
// golang.org/x/net/html's tokenizer does not itself emit this phrase (it
// has no multi-diagnostic callback the way html5ever does — it is a
// single sticky-error token stream), so in practice this filter is a
// faithful no-op; it is kept so the policy described in spec.md §6 reads
// the same way in code as in the document.
const strictParseNoise = "unexpected token"

// parseDocument parses a document string with the lenient HTML5 parser.
// Per spec §6, document parsing errors are always ignored: this function
// cannot fail, matching "Match invocation cannot fail" in spec §7.
func parseDocument(s string) *Node {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil || root == nil {
		return &Node{Kind: KindDocument}
	}

	return convertNode(root)
}

// parsePatternStrict parses a pattern string, surfacing HTML parse
// diagnostics as a construction error. Diagnostics are collected from the
// tokenizer, the noise message is dropped, duplicates are removed
// preserving first-seen order, and the remainder is joined with ", ".
func parsePatternStrict(s string) (*Node, error) {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, err
	}

	if diag := collectParseDiagnostics(s); diag != "" {
		return nil, newConstructionError(diag)
	}

	return convertNode(root), nil
}

func collectParseDiagnostics(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))

	seen := make(map[string]bool)

	var msgs []string

	for {
		if z.Next() != html.ErrorToken {
			continue
		}

		err := z.Err()
		if err == io.EOF {
			break
		}

		msg := err.Error()
		if strings.EqualFold(msg, strictParseNoise) {
			break
		}

		if !seen[msg] {
			seen[msg] = true

			msgs = append(msgs, msg)
		}
		// The tokenizer's error state is sticky: every subsequent call
		// reports the same error, so there is nothing more to collect.
		break
	}

	return strings.Join(msgs, ", ")
}

// convertNode converts a golang.org/x/net/html tree into our Node tree.
// html.ErrorNode and any other unrecognized type convert to nil, which
// callers must skip the way normalization skips rejected children.
func convertNode(n *html.Node) *Node {
	if n == nil {
		return nil
	}

	switch n.Type { //nolint:exhaustive // ErrorNode/RawNode have no Node analogue.
	case html.DocumentNode:
		return &Node{Kind: KindDocument, Children: convertChildren(n)}

	case html.DoctypeNode:
		node := &Node{Kind: KindDoctype, DoctypeName: n.Data}

		for _, a := range n.Attr {
			switch a.Key {
			case "public":
				node.DoctypePublicID = a.Val
			case "system":
				node.DoctypeSystemID = a.Val
			}
		}

		return node

	case html.ElementNode:
		return &Node{
			Kind:     KindElement,
			Name:     QName{Namespace: n.Namespace, Local: n.Data},
			Attrs:    convertAttrs(n.Attr),
			Children: convertChildren(n),
		}

	case html.TextNode:
		return &Node{Kind: KindText, Text: n.Data}

	case html.CommentNode:
		return &Node{Kind: KindComment, Text: n.Data}

	default:
		return nil
	}
}

func convertChildren(n *html.Node) []*Node {
	var children []*Node

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if cn := convertNode(c); cn != nil {
			children = append(children, cn)
		}
	}

	return children
}

func convertAttrs(attrs []html.Attribute) AttrList {
	if len(attrs) == 0 {
		return nil
	}

	out := make(AttrList, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, Attr{Name: QName{Namespace: a.Namespace, Local: a.Key}, Value: a.Val})
	}

	return out
}
