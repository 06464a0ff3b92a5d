package epath

import "errors"

// ErrPath marks a malformed path expression. Unlike a query with zero
// matches, which is an ordinary empty result, a bad expression always
// propagates.
var ErrPath = errors.New("malformed path")
