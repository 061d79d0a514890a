// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package prime

import (
	"context"

	"github.com/AleutianAI/crystalline/pkg/lattice"
)

// Prime-position correspondence. The k-th prime occupies lattice
// slot k−1, so 2 sits at index 0 and the mapping wraps every
// lattice.PositionsPerLap primes. Many primes share a position; the
// smallest one is the canonical inverse.

// PositionOf maps a prime to its clock lattice position. Nonprime
// inputs are rejected.
func (s *Service) PositionOf(ctx context.Context, p uint64) (lattice.Position, error) {
	k, err := s.Index(ctx, p)
	if err != nil {
		return lattice.Position{}, err
	}
	return lattice.IndexToPosition(k - 1), nil
}

// PrimeAt returns the smallest prime mapped to a lattice position.
//
// The smallest prime index landing on the position's slot is the
// slot number plus one, so the answer is NthPrime of that index.
func (s *Service) PrimeAt(ctx context.Context, pos lattice.Position) (uint64, error) {
	slot, err := lattice.PositionToIndex(pos)
	if err != nil {
		return 0, err
	}
	return s.NthPrime(ctx, slot+1)
}
