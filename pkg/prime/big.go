// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package prime

import (
	"context"

	"github.com/AleutianAI/crystalline/pkg/abacus"
)

// IsPrimeAbacus runs the trial-division witness on values too large
// for a native word. Inputs that fit in a uint64 take the fast path.
//
// The candidate must be a positive integer. The stride and bound are
// the same as IsPrime: divisors 6k±1 up to the integer square root.
// Cancellation is observed between divisor pairs; expect long runs
// for genuinely large primes.
func (s *Service) IsPrimeAbacus(ctx context.Context, n *abacus.Abacus) (bool, error) {
	if !n.IsInteger() || n.Sign() < 0 {
		return false, &DomainError{Op: "IsPrimeAbacus", Reason: "candidate must be a nonnegative integer"}
	}
	if v, err := n.ToUint64(); err == nil {
		return s.IsPrime(ctx, v)
	}

	base := n.Base()
	small := func(v uint64) (*abacus.Abacus, error) {
		return abacus.FromUint64(base, v)
	}
	for _, p := range []uint64{2, 3} {
		d, err := small(p)
		if err != nil {
			return false, err
		}
		r, err := n.Mod(d)
		if err != nil {
			return false, err
		}
		if r.IsZero() {
			return false, nil
		}
	}

	limit, err := n.ISqrt()
	if err != nil {
		return false, err
	}
	two, err := small(2)
	if err != nil {
		return false, err
	}
	six, err := small(6)
	if err != nil {
		return false, err
	}
	d, err := small(5)
	if err != nil {
		return false, err
	}
	for {
		if ctx.Err() != nil {
			return false, canceled(ctx)
		}
		c, err := d.Cmp(limit)
		if err != nil {
			return false, err
		}
		if c > 0 {
			return true, nil
		}
		r, err := n.Mod(d)
		if err != nil {
			return false, err
		}
		if r.IsZero() {
			return false, nil
		}
		d2, err := d.Add(two)
		if err != nil {
			return false, err
		}
		r, err = n.Mod(d2)
		if err != nil {
			return false, err
		}
		if r.IsZero() {
			return false, nil
		}
		if d, err = d.Add(six); err != nil {
			return false, err
		}
	}
}
