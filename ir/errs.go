package ir

import "errors"

var (
	ErrBadJSON = errors.New("malformed body json")
)
