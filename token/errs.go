package token

import (
	"errors"

	"github.com/signadot/syntree/textpos"
)

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrBadEscape    = errors.New("bad escape")
)

// Error locates an error at an offset of the input.
type Error struct {
	Err    error
	Offset int
	Pos    string
}

// ErrorAt wraps err with the position of off in d.
func ErrorAt(d []byte, off int, err error) *Error {
	return &Error{Err: err, Offset: off, Pos: textpos.NewIndex(d).Describe(off)}
}

func (e *Error) Error() string {
	return e.Err.Error() + " " + e.Pos
}

func (e *Error) Unwrap() error {
	return e.Err
}
