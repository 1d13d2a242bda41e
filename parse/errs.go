package parse

import "errors"

var (
	ErrUnbalanced = errors.New("unbalanced brackets")
	ErrFragment   = errors.New("fragment is not a single element")
)
