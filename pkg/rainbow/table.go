// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package rainbow

import (
	"sort"

	"github.com/AleutianAI/crystalline/pkg/lattice"
)

// defaultCapacity is used when no initial capacity is given.
const defaultCapacity = 1000

// Entry is one cached prime with its 1-based index and lattice
// position.
type Entry struct {
	Prime    uint64
	Index    uint64
	Position lattice.Position
}

// Table is the rainbow cache. Entries are sorted by prime; the i-th
// entry has index i+1. Construct with New.
type Table struct {
	entries []Entry
	frozen  bool
}

// New allocates an empty table. A nonpositive capacity uses the
// default.
func New(initialCapacity int) *Table {
	if initialCapacity <= 0 {
		initialCapacity = defaultCapacity
	}
	return &Table{entries: make([]Entry, 0, initialCapacity)}
}

// ============================================================================
// Mutation
// ============================================================================

// Insert appends a prime to the cache. The prime must exceed
// MaxPrime: the table grows in strictly increasing order so both
// binary searches stay valid. The lattice position is derived from
// the entry's index.
//
// Insert is transactional: on failure the table is unchanged.
func (t *Table) Insert(p uint64) error {
	if t.frozen {
		return ErrFrozen
	}
	if len(t.entries) > 0 && p <= t.entries[len(t.entries)-1].Prime {
		return ErrOutOfOrder
	}
	index := uint64(len(t.entries)) + 1
	entry := Entry{
		Prime:    p,
		Index:    index,
		Position: lattice.IndexToPosition(index - 1),
	}
	t.grow(len(t.entries) + 1)
	t.entries = append(t.entries, entry)
	return nil
}

// grow doubles capacity until it covers n entries.
func (t *Table) grow(n int) {
	if cap(t.entries) >= n {
		return
	}
	newCap := cap(t.entries)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < n {
		newCap *= 2
	}
	grown := make([]Entry, len(t.entries), newCap)
	copy(grown, t.entries)
	t.entries = grown
}

// Freeze ends the population phase. A frozen table rejects inserts
// and may be shared across concurrent readers.
func (t *Table) Freeze() {
	t.frozen = true
}

// Frozen reports whether the table accepts further inserts.
func (t *Table) Frozen() bool {
	return t.frozen
}

// ============================================================================
// Lookup
// ============================================================================

// findPrime returns the slot holding p, or -1.
func (t *Table) findPrime(p uint64) int {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Prime >= p })
	if i < len(t.entries) && t.entries[i].Prime == p {
		return i
	}
	return -1
}

// LookupByPrime returns the index and position of a cached prime.
func (t *Table) LookupByPrime(p uint64) (uint64, lattice.Position, error) {
	i := t.findPrime(p)
	if i < 0 {
		return 0, lattice.Position{}, &LookupError{Kind: "prime", Key: p}
	}
	return t.entries[i].Index, t.entries[i].Position, nil
}

// LookupByIndex returns the prime and position at a 1-based index.
func (t *Table) LookupByIndex(k uint64) (uint64, lattice.Position, error) {
	if k == 0 || k > uint64(len(t.entries)) {
		return 0, lattice.Position{}, ErrOutOfRange
	}
	// Indices are dense, but search anyway so the co-monotone
	// invariant is what we rely on, not slice layout.
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Index >= k })
	if i == len(t.entries) || t.entries[i].Index != k {
		return 0, lattice.Position{}, &LookupError{Kind: "index", Key: k}
	}
	return t.entries[i].Prime, t.entries[i].Position, nil
}

// LookupByPosition returns the smallest cached prime at a lattice
// position. The scan is linear; positions are not indexed.
func (t *Table) LookupByPosition(pos lattice.Position) (uint64, error) {
	for i := range t.entries {
		p := &t.entries[i].Position
		if p.Ring == pos.Ring && p.Pos == pos.Pos {
			return t.entries[i].Prime, nil
		}
	}
	return 0, ErrNotFound
}

// NextInCache returns the smallest cached prime strictly above p.
func (t *Table) NextInCache(p uint64) (uint64, error) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Prime > p })
	if i == len(t.entries) {
		return 0, &LookupError{Kind: "successor of", Key: p}
	}
	return t.entries[i].Prime, nil
}

// PrevInCache returns the largest cached prime strictly below p.
func (t *Table) PrevInCache(p uint64) (uint64, error) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Prime >= p })
	if i == 0 {
		return 0, &LookupError{Kind: "predecessor of", Key: p}
	}
	return t.entries[i-1].Prime, nil
}

// Contains reports whether p is a cached prime.
func (t *Table) Contains(p uint64) bool {
	return t.findPrime(p) >= 0
}

// Size returns the number of cached primes.
func (t *Table) Size() int {
	return len(t.entries)
}

// MaxPrime returns the largest cached prime, 0 when empty.
func (t *Table) MaxPrime() uint64 {
	if len(t.entries) == 0 {
		return 0
	}
	return t.entries[len(t.entries)-1].Prime
}

// MaxIndex returns the index of the largest cached prime.
func (t *Table) MaxIndex() uint64 {
	return uint64(len(t.entries))
}

// Entry returns a copy of the entry at slot i (0-based).
func (t *Table) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(t.entries) {
		return Entry{}, ErrOutOfRange
	}
	return t.entries[i], nil
}

// ============================================================================
// prime.Cache surface
// ============================================================================

// The ok-bool forms below satisfy the prime service's Cache interface
// without coupling that package to this one's error types.

// PrimeAt returns the prime with 1-based index k.
func (t *Table) PrimeAt(k uint64) (uint64, bool) {
	p, _, err := t.LookupByIndex(k)
	return p, err == nil
}

// IndexOf returns the 1-based index of a cached prime.
func (t *Table) IndexOf(p uint64) (uint64, bool) {
	k, _, err := t.LookupByPrime(p)
	return k, err == nil
}

// NextAfter returns the smallest cached prime strictly above p.
func (t *Table) NextAfter(p uint64) (uint64, bool) {
	next, err := t.NextInCache(p)
	return next, err == nil
}

// PrevBefore returns the largest cached prime strictly below p.
func (t *Table) PrevBefore(p uint64) (uint64, bool) {
	prev, err := t.PrevInCache(p)
	return prev, err == nil
}
