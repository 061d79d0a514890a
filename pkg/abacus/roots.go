// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

// Sqrt returns the square root of a nonnegative value to the given
// fractional precision.
//
// The input is rescaled to 2·precision fractional digits and the
// integer square root of that scaled magnitude is taken by Newton
// iteration, which bounds the error by one unit in the last place:
// |result − √a| < base^−precision.
func (a *Abacus) Sqrt(precision int) (*Abacus, error) {
	if a.sign < 0 {
		return nil, &DomainError{Op: "Sqrt", Reason: "negative input"}
	}
	if precision < 0 {
		return nil, &DomainError{Op: "Sqrt", Reason: "negative precision"}
	}
	if a.sign == 0 {
		z, err := New(a.base)
		if err != nil {
			return nil, err
		}
		return z.WithPrecision(precision)
	}
	var scaled []uint32
	if shift := 2*precision - a.precision; shift >= 0 {
		if len(a.digits)+shift > maxDigits {
			return nil, &OverflowError{Op: "Sqrt", Target: "digit index"}
		}
		scaled = shiftUpDigits(a.digits, shift)
	} else {
		scaled = shiftDownDigits(a.digits, -shift)
	}
	out := &Abacus{
		base:      a.base,
		sign:      1,
		precision: precision,
		digits:    isqrtDigits(scaled, uint64(a.base)),
	}
	out.normalize()
	return out, nil
}

// ISqrt returns floor(√a) for a nonnegative integer value.
func (a *Abacus) ISqrt() (*Abacus, error) {
	if a.sign < 0 {
		return nil, &DomainError{Op: "ISqrt", Reason: "negative input"}
	}
	if !a.IsInteger() {
		return nil, &DomainError{Op: "ISqrt", Reason: "fractional input"}
	}
	mag := shiftDownDigits(a.digits, a.precision)
	out := &Abacus{
		base:   a.base,
		sign:   1,
		digits: isqrtDigits(mag, uint64(a.base)),
	}
	out.normalize()
	return out, nil
}

// Root returns floor(a^(1/k)) for a nonnegative integer value and
// k >= 1. Even k with a negative input is a domain error.
func (a *Abacus) Root(k uint64) (*Abacus, error) {
	if k == 0 {
		return nil, &DomainError{Op: "Root", Reason: "zeroth root"}
	}
	if a.sign < 0 {
		return nil, &DomainError{Op: "Root", Reason: "negative input"}
	}
	if !a.IsInteger() {
		return nil, &DomainError{Op: "Root", Reason: "fractional input"}
	}
	mag := shiftDownDigits(a.digits, a.precision)
	out := &Abacus{
		base:   a.base,
		sign:   1,
		digits: irootDigits(mag, k, uint64(a.base)),
	}
	out.normalize()
	return out, nil
}
