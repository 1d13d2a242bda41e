// Package token splits text in a small bracketed object notation into
// lossless tokens, and defines the notation's syntax kinds.
//
// The notation is a flow style subset of Tony: objects `{a: 1, b: [x y]}`,
// arrays, parenthesized groups, double quoted strings, numbers, bare
// literals, `!tags` and `#` comments. Whitespace, newlines and comments are
// kept as trivia tokens so that a tree built from the tokens renders back
// to the exact input.
package token
