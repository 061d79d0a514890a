// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package rainbow

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a lookup miss: the queried prime or
	// position is not in the cache.
	ErrNotFound = errors.New("rainbow: not found in cache")

	// ErrOutOfRange indicates an index outside [1, size].
	ErrOutOfRange = errors.New("rainbow: index out of range")

	// ErrOutOfOrder indicates an insert that would break the sorted
	// order or duplicate an existing prime.
	ErrOutOfOrder = errors.New("rainbow: insert out of order")

	// ErrFrozen indicates a mutation on a frozen table.
	ErrFrozen = errors.New("rainbow: table is frozen")

	// ErrCorrupt indicates a snapshot that failed invariant checks.
	ErrCorrupt = errors.New("rainbow: corrupt snapshot")
)

// LookupError reports which key missed.
type LookupError struct {
	Kind string
	Key  uint64
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("rainbow: no entry with %s %d", e.Kind, e.Key)
}

func (e *LookupError) Unwrap() error {
	return ErrNotFound
}
