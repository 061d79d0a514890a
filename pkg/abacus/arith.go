// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

// Add returns a + b.
//
// Operands must share a base. Mixed precisions align to the larger
// one by zero-extending the lower-precision operand. The receiver and
// argument are never modified, so a.Add(a) is safe.
func (a *Abacus) Add(b *Abacus) (*Abacus, error) {
	if a.base != b.base {
		return nil, &BaseMismatchError{Left: a.base, Right: b.base}
	}
	prec := maxPrecision(a, b)
	da, db := alignDigits(a, b)
	out := &Abacus{base: a.base, precision: prec}
	switch {
	case a.sign == 0:
		out.sign = b.sign
		out.digits = append([]uint32(nil), db...)
	case b.sign == 0:
		out.sign = a.sign
		out.digits = append([]uint32(nil), da...)
	case a.sign == b.sign:
		out.sign = a.sign
		out.digits = addDigits(da, db, uint64(a.base))
	default:
		switch cmpDigits(trimDigits(da), trimDigits(db)) {
		case 1:
			out.sign = a.sign
			out.digits = subDigits(da, db, uint64(a.base))
		case -1:
			out.sign = b.sign
			out.digits = subDigits(db, da, uint64(a.base))
		}
	}
	out.normalize()
	return out, nil
}

// Sub returns a - b. Same base and alias rules as Add.
func (a *Abacus) Sub(b *Abacus) (*Abacus, error) {
	return a.Add(b.Neg())
}

// Neg returns -a. Negating zero yields zero.
func (a *Abacus) Neg() *Abacus {
	out := a.Copy()
	out.sign = -out.sign
	return out
}

// Abs returns |a|.
func (a *Abacus) Abs() *Abacus {
	out := a.Copy()
	if out.sign < 0 {
		out.sign = 1
	}
	return out
}

// Mul returns a · b by the schoolbook method.
//
// The result precision is the sum of the operand precisions; its
// length is at most len(a)+len(b).
func (a *Abacus) Mul(b *Abacus) (*Abacus, error) {
	if a.base != b.base {
		return nil, &BaseMismatchError{Left: a.base, Right: b.base}
	}
	if len(a.digits)+len(b.digits) > maxDigits {
		return nil, &OverflowError{Op: "Mul", Target: "digit index"}
	}
	out := &Abacus{
		base:      a.base,
		sign:      a.sign * b.sign,
		precision: a.precision + b.precision,
		digits:    mulDigits(a.digits, b.digits, uint64(a.base)),
	}
	out.normalize()
	return out, nil
}

// MulScalar returns a · s for a small nonnegative scalar.
func (a *Abacus) MulScalar(s uint32) *Abacus {
	out := &Abacus{
		base:      a.base,
		sign:      a.sign,
		precision: a.precision,
		digits:    mulScalarDigits(a.digits, uint64(s), uint64(a.base)),
	}
	out.normalize()
	return out
}

// ShiftLeft returns a · base^n.
func (a *Abacus) ShiftLeft(n int) (*Abacus, error) {
	if n < 0 {
		return nil, &DomainError{Op: "ShiftLeft", Reason: "negative shift"}
	}
	if len(a.digits)+n > maxDigits {
		return nil, &OverflowError{Op: "ShiftLeft", Target: "digit index"}
	}
	out := &Abacus{
		base:      a.base,
		sign:      a.sign,
		precision: a.precision,
		digits:    shiftUpDigits(a.digits, n),
	}
	out.normalize()
	return out, nil
}

// ShiftRight returns a / base^n, truncated toward zero.
func (a *Abacus) ShiftRight(n int) (*Abacus, error) {
	if n < 0 {
		return nil, &DomainError{Op: "ShiftRight", Reason: "negative shift"}
	}
	out := &Abacus{
		base:      a.base,
		sign:      a.sign,
		precision: a.precision,
		digits:    shiftDownDigits(a.digits, n),
	}
	out.normalize()
	return out, nil
}

// Pow returns a^e for a nonnegative integer exponent.
//
// a^0 is 1 in a's base. The result precision is a.Precision()·e, so
// large exponents on fractional values can exceed the digit budget.
func (a *Abacus) Pow(e uint64) (*Abacus, error) {
	if e == 0 {
		return FromInt64(a.base, 1)
	}
	if a.precision != 0 && uint64(a.precision)*e > maxDigits {
		return nil, &OverflowError{Op: "Pow", Target: "digit index"}
	}
	if len(a.digits) > 0 && uint64(len(a.digits))*e > maxDigits {
		return nil, &OverflowError{Op: "Pow", Target: "digit index"}
	}
	sign := 1
	if a.sign < 0 && e%2 == 1 {
		sign = -1
	}
	if a.sign == 0 {
		sign = 0
	}
	out := &Abacus{
		base:      a.base,
		sign:      sign,
		precision: a.precision * int(e),
		digits:    powScalarDigits(a.digits, e, uint64(a.base)),
	}
	if a.sign == 0 {
		out.digits = nil
	}
	out.normalize()
	return out, nil
}

// ConvertBase re-encodes an integer value in a new radix.
//
// Only integer values convert exactly; fractional precision is a
// domain error because base-p fractions have no finite image in an
// unrelated base.
func (a *Abacus) ConvertBase(newBase uint32) (*Abacus, error) {
	if err := checkBase(newBase); err != nil {
		return nil, err
	}
	if !a.IsInteger() {
		return nil, &DomainError{Op: "ConvertBase", Reason: "fractional value"}
	}
	if newBase == a.base {
		c, err := a.WithPrecision(0)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	out := &Abacus{base: newBase, sign: a.sign}
	mag := shiftDownDigits(a.digits, a.precision)
	for len(mag) > 0 {
		q, r := divmodScalarDigits(mag, uint64(newBase), uint64(a.base))
		out.digits = append(out.digits, uint32(r))
		mag = q
	}
	out.normalize()
	return out, nil
}
