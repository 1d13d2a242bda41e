package green

import "errors"

var (
	ErrIndexOutOfRange = errors.New("child index out of range")
	ErrUnbalanced      = errors.New("unbalanced builder")
	ErrNilChild        = errors.New("nil child")
)
