// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

// sparseThresholdDenominator selects sparse form when fewer than 1/8
// of the digits are nonzero. A sparse digit costs twice a dense one
// (index plus value), so the break-even is 1/2; 1/8 leaves headroom
// for the bookkeeping around the pairs.
const sparseThresholdDenominator = 8

// SparseDigit is one nonzero digit and its index in the dense form.
type SparseDigit struct {
	Index int
	Digit uint32
}

// Sparse is the sparse representation of an Abacus value: only the
// nonzero digits, in increasing index order. Omitted indices are
// implicitly zero. Both forms agree on every index.
type Sparse struct {
	base      uint32
	sign      int
	precision int
	length    int
	digits    []SparseDigit
}

// ToSparse converts to the sparse form. The conversion is lossless.
func (a *Abacus) ToSparse() *Sparse {
	s := &Sparse{
		base:      a.base,
		sign:      a.sign,
		precision: a.precision,
		length:    len(a.digits),
	}
	for i, d := range a.digits {
		if d != 0 {
			s.digits = append(s.digits, SparseDigit{Index: i, Digit: d})
		}
	}
	return s
}

// ToDense converts back to the dense form. The conversion is lossless.
func (s *Sparse) ToDense() *Abacus {
	a := &Abacus{base: s.base, sign: s.sign, precision: s.precision}
	if s.length > 0 {
		a.digits = make([]uint32, s.length)
		for _, sd := range s.digits {
			a.digits[sd.Index] = sd.Digit
		}
	}
	a.normalize()
	return a
}

// Base returns the radix.
func (s *Sparse) Base() uint32 { return s.base }

// Sign returns -1, 0, or +1.
func (s *Sparse) Sign() int { return s.sign }

// Precision returns the count of fractional digits.
func (s *Sparse) Precision() int { return s.precision }

// Len returns the dense digit count the sparse form stands for.
func (s *Sparse) Len() int { return s.length }

// NonzeroCount returns the number of stored pairs.
func (s *Sparse) NonzeroCount() int { return len(s.digits) }

// Digit returns the digit at a dense index, zero when omitted.
func (s *Sparse) Digit(i int) uint32 {
	lo, hi := 0, len(s.digits)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case s.digits[mid].Index == i:
			return s.digits[mid].Digit
		case s.digits[mid].Index < i:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0
}

// DenseBytes returns the byte cost of the dense digit array.
func (a *Abacus) DenseBytes() int {
	return len(a.digits) * 4
}

// SparseBytes returns the byte cost of the sparse pair array.
func (s *Sparse) SparseBytes() int {
	return len(s.digits) * 12
}

// PrefersSparse reports whether the sparse form would be the cheaper
// representation for this value.
func (a *Abacus) PrefersSparse() bool {
	if len(a.digits) == 0 {
		return false
	}
	nonzero := 0
	for _, d := range a.digits {
		if d != 0 {
			nonzero++
		}
	}
	return nonzero*sparseThresholdDenominator < len(a.digits)
}
