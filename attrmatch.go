package hpattern

import "strings"

// MatchAttributes matches a document attribute set against a pattern
// attribute set. Every pattern attribute (skipping special attributes like
// "subseq") must be satisfiable against the document; extra document
// attributes not mentioned in the pattern are always allowed.
func MatchAttributes(docAttrs, patAttrs AttrList) (Binding, bool) {
	result := Binding{}

	for _, pa := range patAttrs {
		if IsSpecialAttr(pa.Name.Local) {
			continue
		}

		docVal, ok := docAttrs.Get(pa.Name.Local)
		if !ok {
			return nil, false
		}

		if v, ok := IsVariable(pa.Value); ok {
			// A whole-subtree capture makes no sense as an attribute
			// value; treat it as a simple capture of the trimmed value.
			// validatePattern accepts {{name:*}} as an attribute value,
			// so this branch is reached with v.Whole true as well.
			result[v.Name] = strings.TrimSpace(docVal)

			continue
		}

		if strings.Contains(pa.Value, "{{") {
			m, ok := MatchText(docVal, pa.Value)
			if !ok {
				return nil, false
			}

			for k, val := range m {
				result[k] = val
			}

			continue
		}

		if !isTokenSubset(pa.Value, docVal) {
			return nil, false
		}
	}

	return result, true
}

// isTokenSubset reports whether every whitespace-separated token in pat
// also appears as a whitespace-separated token in doc. An empty pat is
// trivially a subset of anything.
func isTokenSubset(pat, doc string) bool {
	if strings.TrimSpace(pat) == "" {
		return true
	}

	docTokens := strings.Fields(doc)

	for _, tok := range strings.Fields(pat) {
		if !containsToken(docTokens, tok) {
			return false
		}
	}

	return true
}

func containsToken(tokens []string, tok string) bool {
	for _, t := range tokens {
		if t == tok {
			return true
		}
	}

	return false
}
