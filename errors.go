package hpattern

import (
	"errors"
	"fmt"
)

// ErrMisplacedWholeCapture is returned when a {{name:*}} meta-text node is
// not the sole child of its parent element after normalization (spec §3,
// §9: "implementations should prefer a clean construction-time error").
var ErrMisplacedWholeCapture = errors.New("hpattern: {{name:*}} must be the only child of its parent element")

// newConstructionError wraps a joined diagnostic string as the single
// descriptive error string required by spec §6's external interface.
func newConstructionError(diagnostics string) error {
	return fmt.Errorf("hpattern: %s", diagnostics)
}
