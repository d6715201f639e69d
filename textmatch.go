package hpattern

import (
	"errors"
	"strings"
	"sync"

	"github.com/grafana/regexp"
)

// ErrUnexpectedCloseBrace is returned when a pattern string contains "}}"
// with no preceding "{{" — an ill-formed pattern per spec §7 — and also
// when a "{{" is never closed by a "}}".
var ErrUnexpectedCloseBrace = errors.New("hpattern: unmatched \"}}\" in text pattern")

// templateCache memoizes the compiled regexp and hole names for a given
// pattern-text string, since Match invocations commonly reuse the same
// template text across many document nodes and many calls. Safe for
// concurrent use: a *Pattern may be shared across goroutines.
var templateCache sync.Map // map[string]*compiledTemplate

type compiledTemplate struct {
	re   *regexp.Regexp
	vars []string
	err  error
}

// MatchText matches a single (already-trimmed) document text against a
// (already-trimmed) pattern text. When patText contains both "{{" and "}}"
// it is treated as a template with greedy, anchored hole captures;
// otherwise it requires byte-for-byte equality.
func MatchText(docText, patText string) (Binding, bool) {
	if strings.Contains(patText, "{{") && strings.Contains(patText, "}}") {
		return matchTemplate(docText, patText)
	}

	if docText != patText {
		return nil, false
	}

	return Binding{}, true
}

func matchTemplate(docText, patText string) (Binding, bool) {
	tpl := compileTemplate(patText)
	if tpl.err != nil {
		// Ill-formed pattern text; callers that want a hard failure at
		// construction time check this via ValidateTemplate first. At
		// match time we simply never match.
		return nil, false
	}

	m := tpl.re.FindStringSubmatch(docText)
	if m == nil {
		return nil, false
	}

	b := make(Binding, len(tpl.vars))
	for i, name := range tpl.vars {
		b[name] = m[i+1]
	}

	return b, true
}

// ValidateTemplate surfaces ErrUnexpectedCloseBrace for pattern text that
// the reference implementation would assert on. Pattern construction calls
// this eagerly over every text node so malformed templates are rejected
// up front instead of silently never matching.
func ValidateTemplate(patText string) error {
	if !strings.Contains(patText, "{{") && !strings.Contains(patText, "}}") {
		return nil
	}

	return compileTemplate(patText).err
}

func compileTemplate(patText string) *compiledTemplate {
	if cached, ok := templateCache.Load(patText); ok {
		return cached.(*compiledTemplate)
	}

	tpl := buildTemplate(patText)
	actual, _ := templateCache.LoadOrStore(patText, tpl)

	return actual.(*compiledTemplate)
}

// buildTemplate turns pattern text containing {{name}} holes into an
// anchored regexp with one capture group per hole, scanning left to right.
// Literal segments between holes are escaped via regexp.QuoteMeta; each
// hole becomes a greedy "(.*)" capture.
func buildTemplate(patText string) *compiledTemplate {
	var (
		reBuilder strings.Builder
		vars      []string
		cur       = patText
	)

	reBuilder.WriteByte('^')

	for {
		openIdx := strings.Index(cur, "{{")
		if openIdx < 0 {
			if strings.Contains(cur, "}}") {
				return &compiledTemplate{err: ErrUnexpectedCloseBrace}
			}

			reBuilder.WriteString(regexp.QuoteMeta(cur))

			break
		}

		literal := cur[:openIdx]
		if strings.Contains(literal, "}}") {
			return &compiledTemplate{err: ErrUnexpectedCloseBrace}
		}

		reBuilder.WriteString(regexp.QuoteMeta(literal))

		rest := cur[openIdx+2:]

		closeIdx := strings.Index(rest, "}}")
		if closeIdx < 0 {
			return &compiledTemplate{err: ErrUnexpectedCloseBrace}
		}

		vars = append(vars, strings.TrimSpace(rest[:closeIdx]))
		reBuilder.WriteString("(.*)")
		cur = rest[closeIdx+2:]
	}

	reBuilder.WriteByte('$')

	re, err := regexp.Compile(reBuilder.String())
	if err != nil {
		return &compiledTemplate{err: err}
	}

	return &compiledTemplate{re: re, vars: vars}
}
