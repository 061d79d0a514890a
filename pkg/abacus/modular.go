// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

// Modular arithmetic over integer Abacus values. Every function
// requires a positive modulus and returns a residue in [0, m).

// ModAdd returns (a + b) mod m.
func ModAdd(a, b, m *Abacus) (*Abacus, error) {
	s, err := a.Add(b)
	if err != nil {
		return nil, err
	}
	return s.Mod(m)
}

// ModSub returns (a - b) mod m.
func ModSub(a, b, m *Abacus) (*Abacus, error) {
	d, err := a.Sub(b)
	if err != nil {
		return nil, err
	}
	return d.Mod(m)
}

// ModMul returns (a · b) mod m.
func ModMul(a, b, m *Abacus) (*Abacus, error) {
	p, err := a.Mul(b)
	if err != nil {
		return nil, err
	}
	return p.Mod(m)
}

// ModExp returns b^e mod m by binary exponentiation.
//
// # Inputs
//
//   - b: Base value.
//   - e: Exponent, must be a nonnegative integer.
//   - m: Modulus, must be positive.
//
// # Outputs
//
//   - *Abacus: b^e mod m, in [0, m). b^0 is 1 mod m.
//   - error: ErrDivisionByZero for m = 0, ErrDomain for negative or
//     fractional exponents, ErrBaseMismatch across bases.
func ModExp(b, e, m *Abacus) (*Abacus, error) {
	if b.base != e.base || b.base != m.base {
		return nil, &BaseMismatchError{Left: b.base, Right: m.base}
	}
	if m.sign == 0 {
		return nil, ErrDivisionByZero
	}
	if m.sign < 0 {
		return nil, &DomainError{Op: "ModExp", Reason: "negative modulus"}
	}
	if e.sign < 0 || !e.IsInteger() {
		return nil, &DomainError{Op: "ModExp", Reason: "exponent must be a nonnegative integer"}
	}

	one, err := FromInt64(b.base, 1)
	if err != nil {
		return nil, err
	}
	result, err := one.Mod(m)
	if err != nil {
		return nil, err
	}
	sq, err := b.Mod(m)
	if err != nil {
		return nil, err
	}
	base := uint64(b.base)
	exp := shiftDownDigits(e.digits, e.precision)
	for len(exp) > 0 {
		var bit uint64
		exp, bit = divmodScalarDigits(exp, 2, base)
		if bit == 1 {
			if result, err = ModMul(result, sq, m); err != nil {
				return nil, err
			}
		}
		if len(exp) > 0 {
			if sq, err = ModMul(sq, sq, m); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// ModInverse returns x with (a · x) ≡ 1 (mod m), via the extended
// Euclidean algorithm. Fails with ErrDomain when gcd(a, m) != 1.
func ModInverse(a, m *Abacus) (*Abacus, error) {
	if a.base != m.base {
		return nil, &BaseMismatchError{Left: a.base, Right: m.base}
	}
	if m.sign <= 0 {
		return nil, &DomainError{Op: "ModInverse", Reason: "modulus must be positive"}
	}
	r0, err := a.Mod(m)
	if err != nil {
		return nil, err
	}
	r1 := m.Copy()
	s0, err := FromInt64(a.base, 1)
	if err != nil {
		return nil, err
	}
	s1, err := New(a.base)
	if err != nil {
		return nil, err
	}
	for !r1.IsZero() {
		q, r, err := r0.DivMod(r1)
		if err != nil {
			return nil, err
		}
		qs, err := q.Mul(s1)
		if err != nil {
			return nil, err
		}
		sNext, err := s0.Sub(qs)
		if err != nil {
			return nil, err
		}
		r0, r1 = r1, r
		s0, s1 = s1, sNext
	}
	one, err := FromInt64(a.base, 1)
	if err != nil {
		return nil, err
	}
	c, err := r0.Cmp(one)
	if err != nil {
		return nil, err
	}
	if c != 0 {
		return nil, &DomainError{Op: "ModInverse", Reason: "value is not invertible modulo m"}
	}
	return s0.Mod(m)
}
