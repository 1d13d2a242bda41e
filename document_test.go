package syntree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/syntree/green"
	"github.com/signadot/syntree/parse"
	"github.com/signadot/syntree/red"
	"github.com/signadot/syntree/token"
)

func mustParse(t *testing.T, in string) *Document {
	t.Helper()
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
		str  string
		err  bool
	}{
		{in: "", want: Path{}, str: "."},
		{in: ".", want: Path{}, str: "."},
		{in: "0", want: Path{0}, str: "0"},
		{in: "0.2.1", want: Path{0, 2, 1}, str: "0.2.1"},
		{in: "0..1", err: true},
		{in: "0.-1", err: true},
		{in: "a", err: true},
	}
	for _, tt := range tests {
		p, err := ParsePath(tt.in)
		if tt.err {
			if !errors.Is(err, ErrBadPath) {
				t.Errorf("ParsePath(%q) error = %v, want %v", tt.in, err, ErrBadPath)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePath(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, p); diff != "" {
			t.Errorf("ParsePath(%q) (-want +got):\n%s", tt.in, diff)
		}
		if p.String() != tt.str {
			t.Errorf("ParsePath(%q).String() = %q, want %q", tt.in, p.String(), tt.str)
		}
	}
}

func TestGet(t *testing.T) {
	doc := mustParse(t, `{a: 1, b: 2}`)
	tests := []struct {
		path string
		kind green.Kind
		text string
	}{
		{".", token.Document, `{a: 1, b: 2}`},
		{"0", token.Object, `{a: 1, b: 2}`},
		{"0.1", token.Field, "a: 1"},
		{"0.4.3", token.Number, "2"},
		{"0.5", token.RCurl, "}"},
	}
	for _, tt := range tests {
		e, err := doc.Get(MustPath(tt.path))
		if err != nil {
			t.Errorf("Get(%s): %v", tt.path, err)
			continue
		}
		if e.Kind() != tt.kind || e.String() != tt.text {
			t.Errorf("Get(%s) = %s %q, want %s %q", tt.path, e.Kind(), e.String(), tt.kind, tt.text)
		}
		if got := PathOf(e).String(); got != tt.path {
			t.Errorf("PathOf(Get(%s)) = %s", tt.path, got)
		}
	}
	for _, bad := range []string{"1", "0.6", "0.4.3.0"} {
		if _, err := doc.Get(MustPath(bad)); !errors.Is(err, ErrBadPath) {
			t.Errorf("Get(%s) error = %v, want %v", bad, err, ErrBadPath)
		}
	}
}

func TestReplace(t *testing.T) {
	in := `{a: 1, b: [2, 3], c: 4}`
	doc := mustParse(t, in)
	doc2, edited, err := doc.Replace(MustPath("0.4.3.4"), []byte("{x: y}"))
	if err != nil {
		t.Fatal(err)
	}
	want := `{a: 1, b: [2, {x: y}], c: 4}`
	if string(doc2.Text) != want || doc2.Root.String() != want {
		t.Errorf("Replace text = %q / %q, want %q", doc2.Text, doc2.Root.String(), want)
	}
	if edited.Kind() != token.Array || edited.String() != "[2, {x: y}]" {
		t.Errorf("edited = %s %q", edited.Kind(), edited.String())
	}
	if edited.Root() != doc2.Root {
		t.Error("edited node not in new document")
	}
	if string(doc.Text) != in || doc.Root.String() != in {
		t.Errorf("original document changed to %q", doc.Root.String())
	}

	// fields off the edited path are shared
	old, _ := doc.Get(MustPath("0.1"))
	cur, _ := doc2.Get(MustPath("0.1"))
	if red.GreenOf(old) != red.GreenOf(cur) {
		t.Error("unedited field not shared")
	}
	c, _ := doc2.Get(MustPath("0.7"))
	if c.String() != "c: 4" || c.TextOffset() != len(`{a: 1, b: [2, {x: y}], `) {
		t.Errorf("following field = %q at %d", c.String(), c.TextOffset())
	}

	reparsed, err := parse.Parse(doc2.Text)
	if err != nil {
		t.Fatal(err)
	}
	if reparsed.String() != doc2.Root.String() {
		t.Errorf("reparse = %q", reparsed.String())
	}
}

func TestReplaceErrors(t *testing.T) {
	doc := mustParse(t, `[a, b]`)
	tests := []struct {
		path string
		frag string
		err  error
	}{
		{".", "x", ErrBadPath},
		{"0.9", "x", ErrBadPath},
		{"0.1.0", "x", ErrBadPath},
		{"0.1", "x y", parse.ErrFragment},
		{"0.1", "[x", parse.ErrUnbalanced},
	}
	for _, tt := range tests {
		_, _, err := doc.Replace(MustPath(tt.path), []byte(tt.frag))
		if !errors.Is(err, tt.err) {
			t.Errorf("Replace(%s, %q) error = %v, want %v", tt.path, tt.frag, err, tt.err)
		}
	}
	if doc.Root.String() != "[a, b]" {
		t.Errorf("document changed to %q", doc.Root.String())
	}
}
