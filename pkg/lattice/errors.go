// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice mappings.
var (
	ErrInvalidPosition = errors.New("ring or position out of range")
	ErrDomain          = errors.New("input outside mapping domain")
)

// PositionError reports an out-of-range (ring, position) pair.
type PositionError struct {
	Ring int
	Pos  int
}

// Error implements the error interface.
func (e *PositionError) Error() string {
	return fmt.Sprintf("invalid position: ring %d, position %d", e.Ring, e.Pos)
}

// Unwrap returns the sentinel error.
func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

// DomainError reports an input the mapping does not cover.
type DomainError struct {
	Op     string
	Reason string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Unwrap returns the sentinel error.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}
