package parse

import "github.com/signadot/syntree/green"

type parseOpts struct {
	cache *green.Cache
}

type ParseOption func(*parseOpts)

// ParseCache interns tokens and small nodes through c. Sharing a cache
// across parses of related texts lets their green trees share structure.
func ParseCache(c *green.Cache) ParseOption {
	return func(o *parseOpts) { o.cache = c }
}
