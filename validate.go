package hpattern

// validatePattern walks a normalized pattern tree and rejects the two
// "ill-formed input" shapes spec §7 allows implementations to catch at
// construction time instead of asserting on at match time: a {{name:*}}
// whole-capture that isn't the sole child of its parent, and a "}}"
// without a preceding "{{" in any text or attribute-value template.
func validatePattern(n *Node) error {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case KindDocument, KindElement:
		if err := validateChildPlacement(n.Children); err != nil {
			return err
		}

		if n.Kind == KindElement {
			for _, a := range n.Attrs {
				if IsSpecialAttr(a.Name.Local) {
					continue
				}

				if _, ok := IsVariable(a.Value); ok {
					continue
				}

				if err := ValidateTemplate(a.Value); err != nil {
					return err
				}
			}
		}

		for _, c := range n.Children {
			if err := validatePattern(c); err != nil {
				return err
			}
		}

	case KindText:
		if _, ok := IsVariable(n.Text); ok || IsSkip(n.Text) {
			return nil
		}

		return ValidateTemplate(n.Text)
	}

	return nil
}

// validateChildPlacement enforces that a whole-capture text node, if
// present among children, is the only child.
func validateChildPlacement(children []*Node) error {
	wholeCount := 0

	for _, c := range children {
		if c.Kind != KindText {
			continue
		}

		if v, ok := IsVariable(c.Text); ok && v.Whole {
			wholeCount++
		}
	}

	if wholeCount == 0 {
		return nil
	}

	if wholeCount == 1 && len(children) == 1 {
		return nil
	}

	return ErrMisplacedWholeCapture
}
