// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

// DivMod returns (q, r) with a = q·b + r and 0 <= r < |b|.
//
// Operands must be integer-valued and share a base. The Euclidean
// convention keeps the remainder nonnegative regardless of signs.
// Unlike Add and Mul, DivMod allocates fresh outputs but is not
// documented as alias-safe for destinations because it has none.
func (a *Abacus) DivMod(b *Abacus) (*Abacus, *Abacus, error) {
	if a.base != b.base {
		return nil, nil, &BaseMismatchError{Left: a.base, Right: b.base}
	}
	if b.sign == 0 {
		return nil, nil, ErrDivisionByZero
	}
	if !a.IsInteger() || !b.IsInteger() {
		return nil, nil, &DomainError{Op: "DivMod", Reason: "fractional operand"}
	}
	base := uint64(a.base)
	ua := shiftDownDigits(a.digits, a.precision)
	ub := shiftDownDigits(b.digits, b.precision)
	qm, rm := divmodDigits(ua, ub, base)

	q := &Abacus{base: a.base, digits: qm}
	r := &Abacus{base: a.base, digits: rm}
	if a.sign >= 0 {
		q.sign = b.sign
		r.sign = 1
	} else if len(rm) == 0 {
		q.sign = -b.sign
		r.sign = 0
	} else {
		// Round the quotient away from zero so the remainder
		// stays in [0, |b|).
		q.sign = -b.sign
		q.digits = addDigits(qm, []uint32{1}, base)
		r.digits = subDigits(ub, rm, base)
		r.sign = 1
	}
	q.normalize()
	r.normalize()
	return q, r, nil
}

// Div returns the Euclidean quotient of a / b.
func (a *Abacus) Div(b *Abacus) (*Abacus, error) {
	q, _, err := a.DivMod(b)
	return q, err
}

// Mod returns the Euclidean remainder of a mod b, in [0, |b|).
func (a *Abacus) Mod(b *Abacus) (*Abacus, error) {
	_, r, err := a.DivMod(b)
	return r, err
}
