// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. GCD(0, 0) is 0.
func GCD(a, b *Abacus) (*Abacus, error) {
	if a.base != b.base {
		return nil, &BaseMismatchError{Left: a.base, Right: b.base}
	}
	if !a.IsInteger() || !b.IsInteger() {
		return nil, &DomainError{Op: "GCD", Reason: "fractional operand"}
	}
	x := a.Abs()
	y := b.Abs()
	for !y.IsZero() {
		r, err := x.Mod(y)
		if err != nil {
			return nil, err
		}
		x, y = y, r
	}
	return x, nil
}

// LCM returns the least common multiple of |a| and |b|. LCM with a
// zero operand is 0.
func LCM(a, b *Abacus) (*Abacus, error) {
	if a.IsZero() || b.IsZero() {
		return New(a.base)
	}
	g, err := GCD(a, b)
	if err != nil {
		return nil, err
	}
	q, err := a.Abs().Div(g)
	if err != nil {
		return nil, err
	}
	return q.Mul(b.Abs())
}

// Coprime reports whether gcd(a, b) = 1.
func Coprime(a, b *Abacus) (bool, error) {
	g, err := GCD(a, b)
	if err != nil {
		return false, err
	}
	one, err := FromInt64(a.base, 1)
	if err != nil {
		return false, err
	}
	c, err := g.Cmp(one)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}
