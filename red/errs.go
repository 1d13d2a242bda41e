package red

import "errors"

var (
	ErrNotNode  = errors.New("element is not a node")
	ErrDetached = errors.New("element has no parent")
	ErrNotChild = errors.New("element is not a child")
)
