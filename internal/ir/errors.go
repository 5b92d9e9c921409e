package ir

import "errors"

// ErrWrongVariant is returned by checked downcasts when the node's tag
// does not match the requested variant.
var ErrWrongVariant = errors.New("wrong variant")
