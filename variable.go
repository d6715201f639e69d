package hpattern

import "strings"

// specialAttrSubseq is the bare attribute that enables non-contiguous
// (subsequence) sibling matching inside the element that carries it.
const specialAttrSubseq = "subseq"

// skipMarker is the sibling-gap token: a text node whose trimmed content is
// exactly this string matches any number of intervening document siblings.
const skipMarker = "..."

// Variable is a parsed {{name}} / {{name:*}} placeholder descriptor.
type Variable struct {
	Name  string
	Whole bool // true for {{name:*}}, the whole-subtree capture form
}

// IsVariable recognizes placeholder syntax in a trimmed string. It returns
// the parsed descriptor and true when s is exactly "{{...}}"; any other
// shape (including a bare "{{name:something-else}}") returns false.
func IsVariable(s string) (Variable, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{{") || !strings.HasSuffix(s, "}}") {
		return Variable{}, false
	}

	inner := s[2 : len(s)-2]

	name, qualifier, hasQualifier := strings.Cut(inner, ":")
	if !hasQualifier {
		if name == "" {
			return Variable{}, false
		}

		return Variable{Name: name, Whole: false}, true
	}

	if qualifier != "*" || name == "" {
		return Variable{}, false
	}

	return Variable{Name: name, Whole: true}, true
}

// IsSkip reports whether the trimmed string is the sibling-gap marker "...".
func IsSkip(s string) bool {
	return strings.TrimSpace(s) == skipMarker
}

// IsSpecialAttr reports whether an attribute's local name is matching
// metadata rather than a constraint to check against the document — it
// tunes the matcher and is never required to be present on the document
// side.
func IsSpecialAttr(local string) bool {
	return local == specialAttrSubseq
}
