// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package prime

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates an input outside an operation's domain,
	// such as NthPrime(0) or factoring zero.
	ErrDomain = errors.New("prime: input outside operation domain")

	// ErrCanceled indicates cooperative cancellation was observed
	// between outer-loop iterations.
	ErrCanceled = errors.New("prime: operation canceled")

	// ErrOverflow indicates the result does not fit in a uint64.
	ErrOverflow = errors.New("prime: result exceeds the native word")
)

// DomainError reports which operation rejected its input and why.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("prime: %s: %s", e.Op, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// canceled wraps the context's error under ErrCanceled so callers can
// match with errors.Is regardless of deadline vs explicit cancel.
func canceled(ctx context.Context) error {
	return fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
}
