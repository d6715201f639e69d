package hpattern

// matchCtx carries the handful of tunables threaded through the mutually
// recursive matcher (table/tbody compensation, an optional binding cap)
// plus a shared counter of appended bindings. The counter counts every
// binding appended at every recursion level, partial ones included, so a
// non-zero maxBindings stops enumeration early. Pattern.Match runs with
// maxBindings 0 and applies WithMaxBindings by truncating its final list.
type matchCtx struct {
	tableBodyCompensation bool
	maxBindings           int // 0 = unlimited
	emitted               *int
}

func (c *matchCtx) capped() bool {
	return c.maxBindings > 0 && *c.emitted >= c.maxBindings
}

// appendCapped appends add to dst, stopping early once the shared cap is
// reached. With maxBindings == 0 this is a plain append and behaves
// exactly per spec (every embedding contributes, duplicates included).
func appendCapped(c *matchCtx, dst []Binding, add []Binding) []Binding {
	if c.maxBindings == 0 {
		*c.emitted += len(add)

		return append(dst, add...)
	}

	for _, b := range add {
		if *c.emitted >= c.maxBindings {
			break
		}

		dst = append(dst, b)
		*c.emitted++
	}

	return dst
}

// MatchSubtree implements the spec's match_subtree: it tries to match
// pattern at doc itself (dispatching on the (doc-kind, pattern-kind) pair)
// and, unless exact is set, also recurses into every child of doc with the
// same pattern.
func MatchSubtree(doc, pattern *Node, exact bool) []Binding {
	emitted := 0

	return matchSubtree(doc, pattern, exact, &matchCtx{tableBodyCompensation: true, emitted: &emitted})
}

func matchSubtree(doc, pattern *Node, exact bool, ctx *matchCtx) []Binding {
	if ctx.capped() {
		return nil
	}

	var results []Binding

	switch pattern.Kind {
	case KindDocument:
		if doc.Kind == KindDocument {
			results = appendCapped(ctx, results, matchSiblings(doc.Children, pattern.Children, false, ctx))
		}

	case KindDoctype:
		if doc.Kind == KindDoctype {
			results = appendCapped(ctx, results, matchSiblings(doc.Children, pattern.Children, false, ctx))
		}

	case KindElement:
		if doc.Kind == KindElement {
			results = appendCapped(ctx, results, matchElementElement(doc, pattern, ctx))
		}

	case KindText:
		// Text patterns terminate recursion outright: no descendant
		// fallback even when exact is false.
		return matchTextPattern(doc, pattern)
	}

	if !exact {
		for _, child := range doc.Children {
			if ctx.capped() {
				break
			}

			results = appendCapped(ctx, results, matchSubtree(child, pattern, false, ctx))
		}
	}

	return results
}

// matchElementElement matches an Element document node against an Element
// pattern node: equal tag names, then attributes, then children (subject
// to the table/tbody compensation rule and the pattern's own "subseq"
// attribute), Cartesian-producted with the attribute bindings.
func matchElementElement(doc, pattern *Node, ctx *matchCtx) []Binding {
	if doc.Name != pattern.Name {
		return nil
	}

	attrBinding, ok := MatchAttributes(doc.Attrs, pattern.Attrs)
	if !ok {
		return nil
	}

	subseq := hasSubseqAttr(pattern.Attrs)
	patChildren := pattern.Children

	if ctx.tableBodyCompensation && isTableWithSoleTbody(pattern) {
		patChildren = pattern.Children[0].Children
	}

	siblingResults := matchSiblings(doc.Children, patChildren, subseq, ctx)

	return bindingProduct([]Binding{attrBinding}, siblingResults)
}

// isTableWithSoleTbody reports whether pattern is a <table> whose only
// child is a <tbody> element — the narrow case HTML parsers' automatic
// tbody insertion forces patterns to compensate for.
func isTableWithSoleTbody(pattern *Node) bool {
	return pattern.Name.Local == "table" &&
		len(pattern.Children) == 1 &&
		pattern.Children[0].IsElement("tbody")
}

func hasSubseqAttr(attrs AttrList) bool {
	_, ok := attrs.Get(specialAttrSubseq)

	return ok
}

// matchTextPattern implements the "any doc vs Text pattern" row of the
// match_subtree table. It never recurses: a text pattern only ever matches
// the document node placed directly at its position.
func matchTextPattern(doc, pattern *Node) []Binding {
	if v, ok := IsVariable(pattern.Text); ok {
		if v.Whole {
			// {{name:*}} at node position is ill-formed; Pattern
			// construction rejects this up front (see validatePattern),
			// so a valid compiled Pattern never reaches here with Whole
			// set. Defensively treat it as no match rather than panic.
			return nil
		}

		if doc.Kind != KindText {
			return nil
		}

		return []Binding{{v.Name: doc.Text}}
	}

	if doc.Kind != KindText {
		return nil
	}

	if b, ok := MatchText(doc.Text, pattern.Text); ok {
		return []Binding{b}
	}

	return nil
}

// MatchSiblings is the exported entry point to match_siblings, useful for
// testing the sibling-matching layer in isolation from element/attribute
// matching.
func MatchSiblings(docList, patList []*Node, subseq bool) []Binding {
	emitted := 0

	return matchSiblings(docList, patList, subseq, &matchCtx{tableBodyCompensation: true, emitted: &emitted})
}

// matchSiblings implements match_siblings: direct placement at every
// starting offset of the current level (or once, at offset 0, when subseq
// allows non-contiguous matching at the direct-placement layer too) plus
// descent of the whole sibling pattern into any single descendant.
func matchSiblings(docList, patList []*Node, subseq bool, ctx *matchCtx) []Binding {
	if len(patList) == 0 {
		return oneEmptyBinding()
	}

	if len(docList) == 0 {
		return nil
	}

	if whole, ok := wholeCaptureVariable(patList); ok {
		return []Binding{{whole.Name: SerializeAll(docList)}}
	}

	var results []Binding

	if ctx.capped() {
		return results
	}

	if subseq {
		results = appendCapped(ctx, results, matchSiblingsDirect(docList, patList, true, ctx))
	} else {
		for i := range docList {
			if ctx.capped() {
				break
			}

			results = appendCapped(ctx, results, matchSiblingsDirect(docList[i:], patList, false, ctx))
		}
	}

	for _, d := range docList {
		if ctx.capped() {
			break
		}

		results = appendCapped(ctx, results, matchSiblings(d.Children, patList, subseq, ctx))
	}

	return results
}

// wholeCaptureVariable recognizes the match_siblings whole-capture
// shortcut: pat_list is exactly one Text node whose content is {{name:*}}.
func wholeCaptureVariable(patList []*Node) (Variable, bool) {
	if len(patList) != 1 || patList[0].Kind != KindText {
		return Variable{}, false
	}

	v, ok := IsVariable(patList[0].Text)
	if !ok || !v.Whole {
		return Variable{}, false
	}

	return v, true
}

// MatchSiblingsDirect is the exported entry point to match_siblings_direct.
func MatchSiblingsDirect(docList, patList []*Node, subseq bool) []Binding {
	emitted := 0

	return matchSiblingsDirect(docList, patList, subseq, &matchCtx{tableBodyCompensation: true, emitted: &emitted})
}

// matchSiblingsDirect implements match_siblings_direct: a one-to-one
// alignment of pattern nodes against a document run, optionally with skip
// markers that consume any number of document nodes, and (when subseq is
// set) the option to skip a document node without consuming a pattern node.
func matchSiblingsDirect(docList, patList []*Node, subseq bool, ctx *matchCtx) []Binding {
	nonSkip := countNonSkip(patList)

	if nonSkip == 0 {
		return oneEmptyBinding()
	}

	if nonSkip > len(docList) {
		return nil
	}

	if ctx.capped() {
		return nil
	}

	if patList[0].Kind == KindText && IsSkip(patList[0].Text) {
		var results []Binding

		for i := 0; i <= len(docList); i++ {
			if ctx.capped() {
				break
			}

			results = appendCapped(ctx, results, matchSiblingsDirect(docList[i:], patList[1:], subseq, ctx))
		}

		return results
	}

	var results []Binding

	heads := matchSubtree(docList[0], patList[0], true, ctx)
	if len(heads) > 0 {
		tail := matchSiblingsDirect(docList[1:], patList[1:], subseq, ctx)
		results = appendCapped(ctx, results, bindingProduct(heads, tail))
	}

	if subseq {
		results = appendCapped(ctx, results, matchSiblingsDirect(docList[1:], patList, subseq, ctx))
	}

	return results
}

// countNonSkip counts pattern nodes that are not the "..." skip marker.
func countNonSkip(patList []*Node) int {
	count := 0

	for _, p := range patList {
		if p.Kind == KindText && IsSkip(p.Text) {
			continue
		}

		count++
	}

	return count
}
