package encode

import "github.com/signadot/syntree/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeDepth limits the dump to n levels below the starting node. A
// negative n, the default, means no limit.
func EncodeDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

// EncodeTrivia controls whether whitespace, newline and comment tokens are
// dumped. They are by default.
func EncodeTrivia(v bool) EncodeOption {
	return func(es *EncState) { es.trivia = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
