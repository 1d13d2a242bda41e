package token

import (
	"fmt"

	"github.com/signadot/syntree/green"
)

// Syntax kinds of the bracketed notation. Node kinds come first.
const (
	Document green.Kind = iota
	Object
	Array
	Group
	Field

	Whitespace
	Newline
	Comment
	Literal
	Number
	String
	Tag
	Colon
	Comma
	LCurl
	RCurl
	LSquare
	RSquare
	LParen
	RParen
)

var kindNames = map[green.Kind]string{
	Document:   "Document",
	Object:     "Object",
	Array:      "Array",
	Group:      "Group",
	Field:      "Field",
	Whitespace: "Whitespace",
	Newline:    "Newline",
	Comment:    "Comment",
	Literal:    "Literal",
	Number:     "Number",
	String:     "String",
	Tag:        "Tag",
	Colon:      "Colon",
	Comma:      "Comma",
	LCurl:      "LCurl",
	RCurl:      "RCurl",
	LSquare:    "LSquare",
	RSquare:    "RSquare",
	LParen:     "LParen",
	RParen:     "RParen",
}

func init() {
	for k, name := range kindNames {
		green.NameKind(k, name)
	}
}

// Kinds returns all kinds of the notation, nodes first.
func Kinds() []green.Kind {
	res := make([]green.Kind, 0, len(kindNames))
	for k := Document; k <= RParen; k++ {
		res = append(res, k)
	}
	return res
}

// KindByName returns the kind with the given name.
func KindByName(name string) (green.Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

func IsNodeKind(k green.Kind) bool {
	return k <= Field
}

// IsTrivia reports whether tokens of kind k carry no syntax.
func IsTrivia(k green.Kind) bool {
	switch k {
	case Whitespace, Newline, Comment:
		return true
	}
	return false
}

// Closer returns the closing bracket kind for an opening bracket kind, and
// the node kind the brackets delimit.
func Closer(k green.Kind) (closer, node green.Kind, ok bool) {
	switch k {
	case LCurl:
		return RCurl, Object, true
	case LSquare:
		return RSquare, Array, true
	case LParen:
		return RParen, Group, true
	}
	return 0, 0, false
}

func IsCloser(k green.Kind) bool {
	switch k {
	case RCurl, RSquare, RParen:
		return true
	}
	return false
}

type Token struct {
	Kind   green.Kind
	Offset int
	Bytes  []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s@%d %q", t.Kind, t.Offset, t.Bytes)
}
