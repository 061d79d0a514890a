// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package rainbow

import "context"

// Generator produces the n-th prime, 1-indexed. *prime.Service
// satisfies this. A service whose cache is the table being populated
// is fine: each call reads the frontier the previous insert advanced.
type Generator interface {
	NthPrime(ctx context.Context, n uint64) (uint64, error)
}

// PopulateCount fills the table with the first n primes. Resumes
// from the current size, so populating to a smaller n is a no-op.
func (t *Table) PopulateCount(ctx context.Context, gen Generator, n uint64) error {
	for k := t.MaxIndex() + 1; k <= n; k++ {
		p, err := gen.NthPrime(ctx, k)
		if err != nil {
			return err
		}
		if err := t.Insert(p); err != nil {
			return err
		}
	}
	return nil
}

// PopulateToPrime fills the table with every prime up to and
// including maxPrime.
func (t *Table) PopulateToPrime(ctx context.Context, gen Generator, maxPrime uint64) error {
	for {
		p, err := gen.NthPrime(ctx, t.MaxIndex()+1)
		if err != nil {
			return err
		}
		if p > maxPrime {
			return nil
		}
		if err := t.Insert(p); err != nil {
			return err
		}
	}
}
