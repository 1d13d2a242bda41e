package token

import (
	"regexp"

	"github.com/signadot/syntree/green"
)

var numberRE = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Tokenize splits d into tokens. Every byte of d belongs to exactly one
// token, so concatenating the tokens' Bytes yields d.
func Tokenize(d []byte) ([]Token, error) {
	var res []Token
	n := len(d)
	i := 0
	for i < n {
		start := i
		var kind = Literal
		switch c := d[i]; c {
		case '\n':
			kind = Newline
			i++
		case ' ', '\t', '\r':
			kind = Whitespace
			for i < n && (d[i] == ' ' || d[i] == '\t' || d[i] == '\r') {
				i++
			}
		case '#':
			kind = Comment
			for i < n && d[i] != '\n' {
				i++
			}
		case '"':
			kind = String
			end, err := quotedEnd(d, i)
			if err != nil {
				return nil, ErrorAt(d, i, err)
			}
			i = end
		case ':':
			kind = Colon
			i++
		case ',':
			kind = Comma
			i++
		case '{':
			kind = LCurl
			i++
		case '}':
			kind = RCurl
			i++
		case '[':
			kind = LSquare
			i++
		case ']':
			kind = RSquare
			i++
		case '(':
			kind = LParen
			i++
		case ')':
			kind = RParen
			i++
		default:
			for i < n && !isDelim(d[i]) {
				i++
			}
			kind = literalKind(d[start:i])
		}
		res = append(res, Token{Kind: kind, Offset: start, Bytes: d[start:i]})
	}
	return res, nil
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '#', '"', ':', ',', '{', '}', '[', ']', '(', ')':
		return true
	}
	return false
}

func literalKind(lit []byte) green.Kind {
	switch {
	case lit[0] == '!':
		return Tag
	case numberRE.Match(lit):
		return Number
	}
	return Literal
}

// quotedEnd returns the offset just past the string starting at d[i].
func quotedEnd(d []byte, i int) (int, error) {
	n := len(d)
	for j := i + 1; j < n; j++ {
		switch d[j] {
		case '\\':
			if j+1 >= n {
				return 0, ErrUnterminated
			}
			switch d[j+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
			default:
				return 0, ErrBadEscape
			}
			j++
		case '"':
			return j + 1, nil
		case '\n':
			return 0, ErrUnterminated
		}
	}
	return 0, ErrUnterminated
}
