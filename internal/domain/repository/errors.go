package repository

import "errors"

var (
	// ErrNotFound means no row matched both id and owner. A row owned by a
	// different user is reported identically to a missing id so ownership
	// cannot be probed.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is a uniqueness violation scoped to the owning user.
	ErrDuplicate = errors.New("duplicate")
)
