// Package parse builds lossless green trees from text in the notation of
// package token.
//
// The root is a token.Document node. Bracketed spans become token.Object,
// token.Array and token.Group nodes which include their brackets; inside
// objects, `key: value` pairs become token.Field nodes. Trivia (spaces,
// newlines, comments) is kept in place, so the text of the tree is exactly
// the input.
//
// Parsing does not recover from errors: unbalanced brackets and malformed
// strings are reported as a *token.Error locating the problem.
package parse
