package green

import (
	"errors"
	"testing"
)

const (
	kRoot Kind = iota
	kList
	kIdent
	kSemi
)

func TestNodeTextLen(t *testing.T) {
	a := NewNode(kList, NewToken(kIdent, "ab"), NewToken(kIdent, "cde"))
	root := NewNode(kRoot, a, NewToken(kSemi, ";"))
	if got := root.TextLen(); got != 6 {
		t.Errorf("TextLen() = %d, want 6", got)
	}
	if got := root.String(); got != "abcde;" {
		t.Errorf("String() = %q, want %q", got, "abcde;")
	}
	if got := root.NumChildren(); got != 2 {
		t.Errorf("NumChildren() = %d, want 2", got)
	}
	if root.Child(0) != Element(a) {
		t.Errorf("Child(0) is not the original node")
	}
}

func TestNodeChildrenRestartable(t *testing.T) {
	root := NewNode(kRoot, NewToken(kIdent, "x"), NewToken(kSemi, ";"))
	for range 2 {
		n := 0
		for i, c := range root.Children() {
			if i != n {
				t.Errorf("index %d, want %d", i, n)
			}
			if c != root.Child(i) {
				t.Errorf("child %d mismatch", i)
			}
			n++
		}
		if n != 2 {
			t.Errorf("got %d children, want 2", n)
		}
	}
}

func TestReplaceChild(t *testing.T) {
	a := NewNode(kList, NewToken(kIdent, "ab"))
	semi := NewToken(kSemi, ";")
	root := NewNode(kRoot, a, semi)

	got, err := root.ReplaceChild(1, NewToken(kSemi, "!!"))
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "ab!!" {
		t.Errorf("new String() = %q, want %q", got.String(), "ab!!")
	}
	if got.TextLen() != 4 {
		t.Errorf("new TextLen() = %d, want 4", got.TextLen())
	}
	if got.Kind() != root.Kind() {
		t.Errorf("kind changed from %v to %v", root.Kind(), got.Kind())
	}
	if got.Child(0) != Element(a) {
		t.Errorf("untouched child not shared")
	}
	if root.String() != "ab;" || root.Child(1) != Element(semi) {
		t.Errorf("original node modified: %q", root.String())
	}
}

func TestReplaceChildOutOfRange(t *testing.T) {
	root := NewNode(kRoot, NewToken(kIdent, "a"))
	for _, i := range []int{-1, 1, 10} {
		_, err := root.ReplaceChild(i, NewToken(kIdent, "b"))
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("ReplaceChild(%d) error = %v, want %v", i, err, ErrIndexOutOfRange)
		}
	}
	if root.String() != "a" {
		t.Errorf("root modified: %q", root.String())
	}
}

func TestReplaceChildNil(t *testing.T) {
	root := NewNode(kRoot, NewToken(kIdent, "a"))
	var tok *Token
	if _, err := root.ReplaceChild(0, tok); !errors.Is(err, ErrNilChild) {
		t.Errorf("error = %v, want %v", err, ErrNilChild)
	}
}

func TestKindString(t *testing.T) {
	const k Kind = 900
	if got := k.String(); got != "Kind(900)" {
		t.Errorf("String() = %q", got)
	}
	NameKind(k, "Widget")
	if got := k.String(); got != "Widget" {
		t.Errorf("String() = %q, want Widget", got)
	}
}
