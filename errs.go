package syntree

import "errors"

var ErrBadPath = errors.New("bad path")
