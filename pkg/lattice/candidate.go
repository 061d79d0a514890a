// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

import "math"

// Candidate generation on ring 0. Positions 3, 6, and 9 carry the
// arithmetic progressions base + 12·magnitude for bases 5, 7, and 11;
// positions 0, 1, and 2 hold the lone primes 2, 3, and 5. The
// progressions enumerate every number in their residue class, so
// composites appear in them too and must be screened out by a real
// primality test.

// candidateBases maps a ring-0 position to its progression base.
// Zero marks positions that carry no candidates.
var candidateBases = [12]uint64{2, 3, 5, 5, 0, 0, 7, 0, 0, 11, 0, 0}

// CandidateAt returns the candidate base + 12·magnitude for a ring-0
// position.
//
// Positions 0, 1, and 2 are single shot: they yield 2, 3, and 5 at
// magnitude 0 and fail for any other magnitude. Positions 3, 6, and
// 9 are full progressions. All other positions carry no candidates.
func CandidateAt(pos int, magnitude uint64) (uint64, error) {
	if pos < 0 || pos >= RingSizes[0] {
		return 0, &PositionError{Ring: 0, Pos: pos}
	}
	base := candidateBases[pos]
	if base == 0 {
		return 0, &DomainError{Op: "CandidateAt", Reason: "position carries no candidates"}
	}
	if pos <= 2 {
		if magnitude != 0 {
			return 0, &DomainError{Op: "CandidateAt", Reason: "positions 0..2 only exist at magnitude 0"}
		}
		return base, nil
	}
	if magnitude > (math.MaxUint64-base)/12 {
		return 0, &DomainError{Op: "CandidateAt", Reason: "magnitude overflows the candidate"}
	}
	return base + magnitude*12, nil
}

// ReverseLookup decomposes a number into its ring-0 position and
// magnitude: n = base + 12·magnitude for the position's base. It
// works for primes and composites alike; numbers whose residue mod
// 12 matches no candidate class fail with ErrDomain.
func ReverseLookup(n uint64) (ring, pos int, magnitude uint64, err error) {
	if n < 2 {
		return 0, 0, 0, &DomainError{Op: "ReverseLookup", Reason: "numbers below 2 are off the lattice"}
	}
	var base uint64
	switch n % 12 {
	case 2:
		if n != 2 {
			return 0, 0, 0, &DomainError{Op: "ReverseLookup", Reason: "even numbers above 2 are off the lattice"}
		}
		pos, base = 0, 2
	case 3:
		if n != 3 {
			return 0, 0, 0, &DomainError{Op: "ReverseLookup", Reason: "multiples of 3 above 3 are off the lattice"}
		}
		pos, base = 1, 3
	case 5:
		pos, base = 3, 5
	case 7:
		pos, base = 6, 7
	case 11:
		pos, base = 9, 11
	default:
		return 0, 0, 0, &DomainError{Op: "ReverseLookup", Reason: "residue class carries no candidates"}
	}
	if n < base {
		return 0, 0, 0, &DomainError{Op: "ReverseLookup", Reason: "number below its class base"}
	}
	return 0, pos, (n - base) / 12, nil
}
