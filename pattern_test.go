package hpattern_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/monkescience/hpattern"
)

func bindingsOf(t *testing.T, patternSrc string, opts ...hpattern.Option) func(doc string) []hpattern.Binding {
	t.Helper()

	pat, err := hpattern.New(patternSrc, opts...)
	if err != nil {
		t.Fatalf("hpattern.New(%q) failed: %v", patternSrc, err)
	}

	return func(doc string) []hpattern.Binding {
		return pat.Match(doc)
	}
}

func TestMatch_Basic(t *testing.T) {
	// GIVEN: a document with a <ul> of three <li> items and a pattern
	// capturing each item's text.
	doc := `
<!DOCTYPE html>
<html lang="en">
	<head></head>
	<body>
		<ul>
			<li>1</li>
			<li>2</li>
			<li>3</li>
		</ul>
	</body>
</html>
`

	match := bindingsOf(t, `
<ul>
	<li>{{hoge}}</li>
</ul>
`)

	// WHEN: matching the pattern against the document.
	got := match(doc)

	// THEN: one binding per <li>, in document order.
	want := []hpattern.Binding{{"hoge": "1"}, {"hoge": "2"}, {"hoge": "3"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_Attribute(t *testing.T) {
	doc := `
<!DOCTYPE html>
<html lang="en">
	<head></head>
	<body>
		<div class="foo bar baz">
			hello
		</div>
	</body>
</html>
`

	cases := []struct {
		name    string
		pattern string
	}{
		{"no attribute constraint", `<div>{{foo}}</div>`},
		{"empty class constraint", `<div class="">{{foo}}</div>`},
		{"single class token", `<div class="foo">{{foo}}</div>`},
		{"two class tokens as subset", `<div class="foo bar">{{foo}}</div>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := bindingsOf(t, tc.pattern)(doc)
			want := []hpattern.Binding{{"foo": "hello"}}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("bindings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatch_AttributePattern(t *testing.T) {
	// GIVEN: two <a> elements, one nested inside a <p>.
	doc := `
<!DOCTYPE html>
<html lang="en">
	<head></head>
	<body>
		<a href="https://www.google.com">Google</a>
		<p>
			<a href="https://github.com">GitHub</a>
		</p>
	</body>
</html>
`

	match := bindingsOf(t, `<a href="{{url}}">{{link}}</a>`)

	got := match(doc)
	want := []hpattern.Binding{
		{"url": "https://www.google.com", "link": "Google"},
		{"url": "https://github.com", "link": "GitHub"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_Skip(t *testing.T) {
	// GIVEN: a pattern using "..." to skip over any number of intervening
	// siblings between the first and last captured <li>.
	doc := `
<!DOCTYPE html>
<html lang="en">
	<head></head>
	<body>
		<ul>
			<li>1</li>
			<li>2</li>
			<li>3</li>
		</ul>
	</body>
</html>
`

	match := bindingsOf(t, `
<ul>
	<li>{{hoge}}</li>
	...
	<li>{{moge}}</li>
</ul>
`)

	got := match(doc)

	// THEN: every (hoge, moge) pair with moge strictly after hoge is
	// reported, in ascending-starting-offset order.
	want := []hpattern.Binding{
		{"hoge": "1", "moge": "2"},
		{"hoge": "1", "moge": "3"},
		{"hoge": "2", "moge": "3"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_WholeSubtreeCapture(t *testing.T) {
	// GIVEN: a pattern that captures the entire serialized contents of
	// <body> via {{name:*}}.
	doc := `
<!DOCTYPE html>
<html lang="en">
	<head></head>
	<body>
		Hello
		<span>hoge</span>
		World
	</body>
</html>
`

	match := bindingsOf(t, `<body>{{body:*}}</body>`)

	got := match(doc)
	want := []hpattern.Binding{{"body": "Hello<span>hoge</span>World"}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_PartialTextTemplate(t *testing.T) {
	// GIVEN: a text template with two holes matched against each <li>'s
	// text by recursing into <ul>'s descendants.
	doc := `
<!DOCTYPE html>
<html lang="en">
	<head></head>
	<body>
		<ul>
			<li>Test 1, 2</li>
			<li>Test 3, 4</li>
			<li>Test 5, 6</li>
		</ul>
	</body>
</html>
`

	match := bindingsOf(t, `<ul>Test {{foo}}, {{bar}}</ul>`)

	got := match(doc)
	want := []hpattern.Binding{
		{"foo": "1", "bar": "2"},
		{"foo": "3", "bar": "4"},
		{"foo": "5", "bar": "6"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_SubseqAttribute(t *testing.T) {
	// GIVEN: a table whose rows aren't all of interest; "subseq" lets the
	// pattern's row list match a non-contiguous selection of <tr>s.
	doc := `
<table>
	<tbody>
		<tr><td>keep-a</td></tr>
		<tr><td>skip</td></tr>
		<tr><td>keep-b</td></tr>
	</tbody>
</table>
`

	match := bindingsOf(t, `
<table subseq>
	<tr><td>{{a}}</td></tr>
	<tr><td>{{b}}</td></tr>
</table>
`)

	got := match(doc)

	found := false

	for _, b := range got {
		if b["a"] == "keep-a" && b["b"] == "keep-b" {
			found = true

			break
		}
	}

	if !found {
		t.Errorf("expected a binding pairing keep-a/keep-b via subseq, got %v", got)
	}
}

func TestMatch_TableBodyCompensationRequiredForSubseq(t *testing.T) {
	// GIVEN: "subseq" is written on <table>, where a human naturally puts
	// it. The lenient parser auto-inserts a <tbody> around the pattern's
	// own <tr> list too, so without the compensation rule the subseq
	// behavior is absorbed by that inserted <tbody> level instead of
	// reaching the <tr> list it was meant to govern.
	doc := `
<table>
	<tbody>
		<tr><td>keep-a</td></tr>
		<tr><td>skip</td></tr>
		<tr><td>keep-b</td></tr>
	</tbody>
</table>
`
	patternSrc := `
<table subseq>
	<tr><td>{{a}}</td></tr>
	<tr><td>{{b}}</td></tr>
</table>
`

	withCompensation := bindingsOf(t, patternSrc)(doc)

	found := false

	for _, b := range withCompensation {
		if b["a"] == "keep-a" && b["b"] == "keep-b" {
			found = true

			break
		}
	}

	if !found {
		t.Errorf("expected a binding pairing keep-a/keep-b via subseq, got %v", withCompensation)
	}

	// WHEN: compensation is disabled, the non-contiguous keep-a/keep-b
	// pairing (which requires subseq to reach the <tr> list) is no longer
	// reachable, even though contiguous pairs may still appear.
	withoutCompensation := bindingsOf(t, patternSrc, hpattern.WithTableBodyCompensation(false))(doc)

	for _, b := range withoutCompensation {
		if b["a"] == "keep-a" && b["b"] == "keep-b" {
			t.Errorf("expected subseq to have no effect without table/tbody compensation, got %v", withoutCompensation)
		}
	}
}

func TestMatch_MaxBindingsCap(t *testing.T) {
	doc := `<ul><li>1</li><li>2</li><li>3</li><li>4</li></ul>`

	match := bindingsOf(t, `<ul><li>{{n}}</li></ul>`, hpattern.WithMaxBindings(2))

	got := match(doc)
	if len(got) != 2 {
		t.Errorf("expected exactly 2 bindings under the cap, got %d: %v", len(got), got)
	}
}

func TestNew_RejectsMisplacedWholeCapture(t *testing.T) {
	_, err := hpattern.New(`<li>{{item:*}}<span>extra</span></li>`)
	if err == nil {
		t.Fatal("expected an error for a whole-capture that isn't the sole child")
	}
}

func TestNew_RejectsUnmatchedCloseBrace(t *testing.T) {
	_, err := hpattern.New(`<li>oops}}</li>`)
	if err == nil {
		t.Fatal("expected an error for an unmatched \"}}\"")
	}
}
