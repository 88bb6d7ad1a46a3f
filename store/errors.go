package store

import (
	"errors"
)

// Hard failures returned by store operations wrap one of these sentinels, so
// callers classify with errors.Is regardless of the context added along the
// way.
var (
	// ErrDuplicateKey indicates a molecule or conformer id collision.
	ErrDuplicateKey = errors.New("duplicate id")

	// ErrNotFound indicates a referenced molecule or conformer is absent.
	// Delete-style operations treat a missing target as a soft condition
	// instead: they log a notice and return nil.
	ErrNotFound = errors.New("not found")
)
