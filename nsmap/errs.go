package nsmap

import "errors"

// ErrResolve marks namespace resolution failures: expanding a shortened
// name whose prefix was never registered. The map is left untouched by a
// failed expansion.
var ErrResolve = errors.New("namespace resolution error")
