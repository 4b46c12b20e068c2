package bst

import (
	"fmt"

	"github.com/npillmayer/containers/compare"
)

// Config configures a tree.
type Config[T any] struct {
	// Comparator orders the payloads stored in the tree. Payloads which
	// compare equal are considered duplicates and are never stored twice.
	Comparator compare.Comparator[T]
}

func (cfg Config[T]) validate() error {
	if cfg.Comparator == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}
