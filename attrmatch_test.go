package hpattern

import "testing"

func TestMatchAttributes(t *testing.T) {
	cases := []struct {
		name     string
		docAttrs AttrList
		patAttrs AttrList
		wantOK   bool
	}{
		{
			name:     "no constraints always match",
			docAttrs: AttrList{{Name: QName{Local: "class"}, Value: "foo bar baz"}},
			patAttrs: nil,
			wantOK:   true,
		},
		{
			name:     "missing attribute fails",
			docAttrs: nil,
			patAttrs: AttrList{{Name: QName{Local: "href"}, Value: "x"}},
			wantOK:   false,
		},
		{
			name:     "token subset passes",
			docAttrs: AttrList{{Name: QName{Local: "class"}, Value: "foo bar baz"}},
			patAttrs: AttrList{{Name: QName{Local: "class"}, Value: "foo bar"}},
			wantOK:   true,
		},
		{
			name:     "token not present fails",
			docAttrs: AttrList{{Name: QName{Local: "class"}, Value: "foo bar baz"}},
			patAttrs: AttrList{{Name: QName{Local: "class"}, Value: "hoge"}},
			wantOK:   false,
		},
		{
			name:     "special subseq attribute never required on document",
			docAttrs: nil,
			patAttrs: AttrList{{Name: QName{Local: specialAttrSubseq}, Value: ""}},
			wantOK:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := MatchAttributes(tc.docAttrs, tc.patAttrs)
			if ok != tc.wantOK {
				t.Errorf("MatchAttributes() ok = %v, want %v", ok, tc.wantOK)
			}
		})
	}
}

func TestMatchAttributes_VariableCapture(t *testing.T) {
	doc := AttrList{{Name: QName{Local: "href"}, Value: "  https://example.com  "}}
	pat := AttrList{{Name: QName{Local: "href"}, Value: "{{url}}"}}

	b, ok := MatchAttributes(doc, pat)
	if !ok {
		t.Fatal("expected match")
	}

	if b["url"] != "https://example.com" {
		t.Errorf("url = %q, want trimmed value", b["url"])
	}
}

func TestMatchAttributes_TemplateValue(t *testing.T) {
	doc := AttrList{{Name: QName{Local: "href"}, Value: "/posts/42"}}
	pat := AttrList{{Name: QName{Local: "href"}, Value: "/posts/{{id}}"}}

	b, ok := MatchAttributes(doc, pat)
	if !ok {
		t.Fatal("expected match")
	}

	if b["id"] != "42" {
		t.Errorf("id = %q, want 42", b["id"])
	}
}
