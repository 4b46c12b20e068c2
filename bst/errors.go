package bst

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bst: invalid configuration")
	// ErrCorruptTree signals a violated structural invariant, as found by Check.
	ErrCorruptTree = errors.New("bst: corrupt tree")
)
