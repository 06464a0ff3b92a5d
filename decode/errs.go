package decode

import (
	"errors"
	"fmt"
)

// ErrParse marks malformed or truncated XML. A decode that fails with
// ErrParse surfaces no partial mapping.
var ErrParse = errors.New("parse error")

// ParseError carries the input position at which decoding failed.
type ParseError struct {
	Pos *Pos
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at %s: %v", ErrParse, e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func parseErrAt(doc *PosDoc, off int64, err error) error {
	return &ParseError{Pos: doc.Pos(int(off)), Err: err}
}
