// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

import (
	"errors"
	"fmt"
)

// Sentinel errors for arithmetic operations.
var (
	// Representation errors
	ErrInvalidBase  = errors.New("base out of range [2, 2^31]")
	ErrBaseMismatch = errors.New("operands have different bases")
	ErrOverflow     = errors.New("value does not fit the target type")
	ErrParse        = errors.New("invalid numeral")

	// Operation errors
	ErrDivisionByZero = errors.New("division by zero")
	ErrDomain         = errors.New("input outside operation domain")
	ErrNoConvergence  = errors.New("series did not converge within the iteration budget")
)

// BaseMismatchError reports the two disagreeing bases.
type BaseMismatchError struct {
	Left  uint32
	Right uint32
}

// Error implements the error interface.
func (e *BaseMismatchError) Error() string {
	return fmt.Sprintf("operands have different bases: %d vs %d", e.Left, e.Right)
}

// Unwrap returns the sentinel error.
func (e *BaseMismatchError) Unwrap() error {
	return ErrBaseMismatch
}

// DomainError reports an input outside an operation's documented domain.
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

// ParseError reports where a numeral stopped being legal.
type ParseError struct {
	Input  string
	Base   uint32
	Offset int
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q (base %d) at offset %d: %s", e.Input, e.Base, e.Offset, e.Reason)
}

// Unwrap returns the sentinel error.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// OverflowError reports a conversion that would lose information.
type OverflowError struct {
	Op     string
	Target string
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: value does not fit %s", e.Op, e.Target)
}

// Unwrap returns the sentinel error.
func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
