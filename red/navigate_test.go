package red

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/syntree/green"
)

func TestAncestors(t *testing.T) {
	r := NewRoot(deepTree())
	l2 := nodeAt(t, r, 1, 1)
	var got []int
	for a := range l2.Ancestors() {
		got = append(got, a.TextOffset())
	}
	if diff := cmp.Diff([]int{1, 0}, got); diff != "" {
		t.Errorf("ancestor offsets (-want +got):\n%s", diff)
	}
	if l2.Root().Green() != r.Green() {
		t.Errorf("Root() does not reach the original root")
	}
}

func TestPreorder(t *testing.T) {
	r := NewRoot(deepTree())
	var got []string
	for e := range r.Preorder() {
		if tok, ok := e.(*Token); ok {
			got = append(got, tok.Text())
			continue
		}
		got = append(got, e.Kind().String())
	}
	want := []string{
		kRoot.String(), "x", kList.String(), "y", kList.String(), "z", ";", "w", ";",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("preorder (-want +got):\n%s", diff)
	}
}

func TestChildAt(t *testing.T) {
	r := NewRoot(deepTree())
	c, err := r.ChildAt(2)
	if err != nil {
		t.Fatal(err)
	}
	if c.TextOffset() != 5 || c.String() != ";" {
		t.Errorf("ChildAt(2) = %q@%d", c.String(), c.TextOffset())
	}
	if _, err := r.ChildAt(3); !errors.Is(err, green.ErrIndexOutOfRange) {
		t.Errorf("ChildAt(3) error = %v", err)
	}
}

func TestChildIndex(t *testing.T) {
	r := NewRoot(deepTree())
	i := 0
	for c := range r.Children() {
		got, ok := r.ChildIndex(c)
		if !ok || got != i {
			t.Errorf("ChildIndex(child %d) = %d, %v", i, got, ok)
		}
		i++
	}
	l2 := nodeAt(t, r, 1, 1)
	tok, err := l2.ChildAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.ChildIndex(tok); ok {
		t.Errorf("grandchild found among children")
	}
}

func TestChildIndexSharedGreen(t *testing.T) {
	x := green.NewToken(kIdent, "x")
	r := NewRoot(green.NewNode(kList, x, x, x))
	i := 0
	for c := range r.Children() {
		got, ok := r.ChildIndex(c)
		if !ok || got != i {
			t.Errorf("ChildIndex(child %d at %d) = %d, %v", i, c.TextOffset(), got, ok)
		}
		i++
	}
	third, err := r.ChildAt(2)
	if err != nil {
		t.Fatal(err)
	}
	got, err := third.(*Token).ReplaceWith(green.NewToken(kIdent, "y"))
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "xxy" {
		t.Errorf("ReplaceWith on shared token gave %q", got.String())
	}
}

func TestTokenReplaceWith(t *testing.T) {
	r := NewRoot(deepTree())
	tok, ok := r.TokenAtOffset(4)
	if !ok || tok.Text() != "w" {
		t.Fatalf("TokenAtOffset(4) = %v, %v", tok, ok)
	}
	got, err := tok.ReplaceWith(green.NewToken(kIdent, "WW"))
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "yz;WW" || got.Root().String() != "xyz;WW;" {
		t.Errorf("got %q in %q", got.String(), got.Root().String())
	}

	detached := NewToken(nil, 0, green.NewToken(kIdent, "q"))
	if _, err := detached.ReplaceWith(green.NewToken(kIdent, "r")); !errors.Is(err, ErrDetached) {
		t.Errorf("detached ReplaceWith error = %v", err)
	}
}

func TestTokenAtOffset(t *testing.T) {
	r := NewRoot(deepTree())
	tests := []struct {
		off  int
		want string
		ok   bool
	}{
		{0, "x", true},
		{2, "z", true},
		{3, ";", true},
		{5, ";", true},
		{6, ";", true},
		{7, "", false},
		{-1, "", false},
	}
	for _, tt := range tests {
		tok, ok := r.TokenAtOffset(tt.off)
		if ok != tt.ok {
			t.Errorf("TokenAtOffset(%d) ok = %v, want %v", tt.off, ok, tt.ok)
			continue
		}
		if ok && tok.Text() != tt.want {
			t.Errorf("TokenAtOffset(%d) = %q, want %q", tt.off, tok.Text(), tt.want)
		}
		if ok && !TextRange(tok).Contains(min(tt.off, 5)) {
			t.Errorf("TokenAtOffset(%d) range %v", tt.off, TextRange(tok))
		}
	}
}

func TestCoveringElement(t *testing.T) {
	r := NewRoot(deepTree())
	tests := []struct {
		r    Range
		want string
		kind green.Kind
	}{
		{Range{2, 4}, "z;", kList},
		{Range{1, 3}, "yz;w", kList},
		{Range{0, 6}, "xyz;w;", kRoot},
		{Range{4, 5}, "w", kIdent},
	}
	for _, tt := range tests {
		e := r.CoveringElement(tt.r)
		if e == nil {
			t.Errorf("CoveringElement(%v) = nil", tt.r)
			continue
		}
		if e.String() != tt.want || e.Kind() != tt.kind {
			t.Errorf("CoveringElement(%v) = %s %q, want %s %q", tt.r, e.Kind(), e.String(), tt.kind, tt.want)
		}
	}
	if e := r.CoveringElement(Range{3, 9}); e != nil {
		t.Errorf("out of range CoveringElement = %v", e)
	}
}

func TestRange(t *testing.T) {
	r := Range{Start: 2, End: 5}
	if r.Len() != 3 || !r.Contains(2) || r.Contains(5) {
		t.Errorf("Range %v Len/Contains wrong", r)
	}
	if !r.Covers(Range{3, 5}) || r.Covers(Range{1, 3}) {
		t.Errorf("Range %v Covers wrong", r)
	}
	if r.String() != "2..5" {
		t.Errorf("String() = %q", r.String())
	}
}
