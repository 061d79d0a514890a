// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package rainbow implements the rainbow cache: a growable table of
// primes dual-indexed by prime value and by 1-based prime index, with
// each entry carrying its clock lattice position.
//
// # Architecture
//
//	┌──────────────────────────────────────────────┐
//	│                   Table                      │
//	│  entries sorted by prime, index = i+1        │
//	│                                              │
//	│  LookupByPrime ──── binary search on prime   │
//	│  LookupByIndex ──── binary search on index   │
//	│  LookupByPosition ─ linear scan              │
//	│  NextInCache/PrevInCache ─ neighbor search   │
//	└──────────┬──────────────────┬────────────────┘
//	           │ populate         │ snapshot
//	           ▼                  ▼
//	     Generator (prime)   Store (BadgerDB)
//
// Both binary searches are valid because prime and index are
// co-monotone: the i-th entry holds the (i+1)-th prime. Growth
// doubles capacity; an insert either lands completely or leaves the
// table untouched.
//
// Population is deterministic: two fresh tables populated to the same
// bound encode to identical bytes (see Table.Bytes).
//
// # Thread Safety
//
// A Table is single-writer. Concurrent readers are allowed only after
// Freeze, which rejects all further mutation. The Store is safe for
// concurrent use; the underlying BadgerDB handles its own locking.
package rainbow
