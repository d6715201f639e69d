package hpattern

// Option is a functional option for Pattern construction, following the
// teacher's functional-options idiom (Option/Config in the JSON comparer
// this package started from, HTMLOption/HTMLConfig in its HTML comparer).
type Option func(*patternConfig)

// patternConfig holds the small set of tunables a compiled Pattern can be
// built with. Unlike the teacher's Config (JSON field ignores, array-order
// toggles), there is no JSON-specific state here — matching is governed
// entirely by the pattern's own HTML shape, so only the two knobs spec §5
// and §9 explicitly call out as implementation-defined remain.
type patternConfig struct {
	maxBindings           int
	tableBodyCompensation bool
}

func newPatternConfig(opts ...Option) *patternConfig {
	cfg := &patternConfig{tableBodyCompensation: true}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithMaxBindings caps the number of bindings a Match call returns: Match
// keeps the first n bindings in output order. The search itself still
// enumerates every embedding before the list is cut. The default, 0, is
// unlimited: every binding is returned.
func WithMaxBindings(n int) Option {
	return func(c *patternConfig) {
		c.maxBindings = n
	}
}

// WithTableBodyCompensation toggles the <table>/<tbody> compensation rule
// described in spec §4.5 and §9. It defaults to enabled; disable it for
// callers whose documents are pre-normalized and don't need the
// auto-inserted-tbody workaround.
func WithTableBodyCompensation(enabled bool) Option {
	return func(c *patternConfig) {
		c.tableBodyCompensation = enabled
	}
}
