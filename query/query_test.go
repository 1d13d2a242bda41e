package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/syntree/parse"
	"github.com/signadot/syntree/red"
)

func texts(es []red.Element) []string {
	var res []string
	for _, e := range es {
		res = append(res, e.String())
	}
	return res
}

func TestFind(t *testing.T) {
	g, err := parse.Parse([]byte(`{a: 1, b: [2, "x"], c: {d: 3}}`))
	if err != nil {
		t.Fatal(err)
	}
	root := red.NewRoot(g)
	tests := []struct {
		q    string
		want []string
	}{
		{`kind == "Number"`, []string{"1", "2", "3"}},
		{`kind == "Field" && depth == 2`, []string{"a: 1", `b: [2, "x"]`, "c: {d: 3}"}},
		{`kind == "Field" && depth > 2`, []string{"d: 3"}},
		{`token && parent == "Array" && kind == "String"`, []string{`"x"`}},
		{`kind == "Literal" && index == 0`, []string{"a", "b", "c", "d"}},
		{`kind == "Object" && size < 10`, []string{"{d: 3}"}},
		{`start == 0 && !token`, []string{`{a: 1, b: [2, "x"], c: {d: 3}}`, `{a: 1, b: [2, "x"], c: {d: 3}}`}},
		{`kind == "Nothing"`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			q, err := Compile(tt.q)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Find(root, q)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, texts(got)); diff != "" {
				t.Errorf("Find(%s) (-want +got):\n%s", tt.q, diff)
			}
		})
	}
}

func TestMatchAgreesWithFind(t *testing.T) {
	g, err := parse.Parse([]byte("[a, [b, c]]"))
	if err != nil {
		t.Fatal(err)
	}
	root := red.NewRoot(g)
	q, err := Compile(`token && kind == "Literal" && index > 0 && depth == 3`)
	if err != nil {
		t.Fatal(err)
	}
	found, err := Find(root, q)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "c"}, texts(found)); diff != "" {
		t.Errorf("Find (-want +got):\n%s", diff)
	}
	for e := range root.Preorder() {
		ok, err := q.Match(e)
		if err != nil {
			t.Fatal(err)
		}
		want := e.String() == "b" || e.String() == "c"
		if _, isTok := e.(*red.Token); ok != (want && isTok) {
			t.Errorf("Match(%s %q) = %v", e.Kind(), e.String(), ok)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`kind ==`, `nosuchfield == 1`, `start + 1`} {
		if _, err := Compile(src); !errors.Is(err, ErrQuery) {
			t.Errorf("Compile(%q) error = %v, want %v", src, err, ErrQuery)
		}
	}
}
