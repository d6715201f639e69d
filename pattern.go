package hpattern

// Pattern is a compiled, normalized HTML-shaped tree with placeholders.
// Construct one with New; it is immutable afterward and safe to share
// across goroutines, with each call to Match operating on its own
// document tree (spec §5).
type Pattern struct {
	root *Node
	cfg  *patternConfig
}

// New compiles a pattern string. The string is parsed with a strict HTML
// parser (unlike document parsing, construction-time errors are
// surfaced), normalized once, and validated against the two ill-formed
// shapes spec §7 allows rejecting up front: a stray "}}" and a
// misplaced {{name:*}} whole-capture.
//
// Example:
//
//	pat, err := hpattern.New(`<ul><li>{{item}}</li></ul>`)
func New(s string, opts ...Option) (*Pattern, error) {
	raw, err := parsePatternStrict(s)
	if err != nil {
		return nil, err
	}

	root := Normalize(raw)

	if err := validatePattern(root); err != nil {
		return nil, err
	}

	return &Pattern{root: root, cfg: newPatternConfig(opts...)}, nil
}

// Match parses doc with a lenient HTML parser, normalizes it, and returns
// every binding produced by embedding the pattern into the document.
// Match cannot fail: malformed documents are tolerated the way a lenient
// HTML5 parser tolerates them, per spec §6/§7.
//
// With WithMaxBindings(n), n > 0, only the first n bindings in output
// order are returned.
func (p *Pattern) Match(doc string) []Binding {
	docRoot := Normalize(parseDocument(doc))

	emitted := 0
	ctx := &matchCtx{
		tableBodyCompensation: p.cfg.tableBodyCompensation,
		emitted:               &emitted,
	}

	results := matchSubtree(docRoot, p.root, false, ctx)
	if p.cfg.maxBindings > 0 && len(results) > p.cfg.maxBindings {
		results = results[:p.cfg.maxBindings]
	}

	return results
}
