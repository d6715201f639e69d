// Package hpattern extracts structured data from HTML documents by matching
// them against HTML-shaped patterns written in the same syntax as the
// target. A pattern is itself an HTML fragment containing named holes
// ({{name}}, {{name:*}}) and an optional sibling-gap marker (...); matching
// yields every embedding of the pattern into the document as a binding map
// from hole name to captured text.
//
// Construct a Pattern once with New, then call Match against any number of
// document strings:
//
//	pat, err := hpattern.New(`<ul><li>{{item}}</li></ul>`)
//	if err != nil {
//		// pattern is malformed HTML
//	}
//	bindings := pat.Match(doc)
//	for _, b := range bindings {
//		fmt.Println(b["item"])
//	}
//
// Matching is synchronous and allocation-heavy by design: it enumerates
// every distinct embedding of the pattern rather than the first or the
// "best" one. A compiled Pattern is immutable and safe to share across
// goroutines; each call to Match owns its own document tree.
package hpattern
