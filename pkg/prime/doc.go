// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package prime provides a deterministic prime service: primality
// testing, enumeration, counting, factorization, and the mapping
// between primes and clock lattice positions.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────┐
//	│                    Service                      │
//	│                                                 │
//	│  IsPrime ── trial division by 6k±1 up to ⌊√n⌋   │
//	│  NthPrime / NextPrime / PrevPrime ── 6k±1 walk  │
//	│  Factor / Totient ── trial division by primes   │
//	│  PositionOf / PrimeAt ── lattice correspondence │
//	└───────────┬─────────────────────┬───────────────┘
//	            │ short-circuit       │ big inputs
//	            ▼                     ▼
//	      Cache (rainbow)       pkg/abacus engine
//
// The trial-division witness is the only source of primality verdicts.
// FastWitness is a necessary-condition screen: a number that fails it
// is certainly composite, but passing it proves nothing. A Cache, when
// attached, short-circuits lookups for primes it already holds; it
// never changes a verdict because a populated cache holds every prime
// up to its maximum.
//
// Long operations accept a context.Context and observe cancellation
// between outer-loop iterations, returning ErrCanceled.
//
// # Thread Safety
//
// A Service is safe for concurrent use provided its attached Cache is
// frozen (fully populated, no further mutation). All other state is
// read-only after construction.
package prime
