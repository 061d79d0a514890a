// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

import (
	"math"
)

// MaxBase is the largest supported radix.
const MaxBase = uint32(1) << 31

// maxDigits caps the digit index at 2^31 entries.
const maxDigits = 1 << 31

// Abacus is an arbitrary-precision number in a caller-chosen base.
//
// The value is sign · Σ digits[i] · base^(i − precision), digits least
// significant first. The zero value of the struct is not usable; use
// New or a From* constructor.
type Abacus struct {
	base      uint32
	sign      int
	digits    []uint32
	precision int
}

// New returns the canonical zero in the given base.
//
// # Inputs
//
//   - base: Radix, in [2, 2^31].
//
// # Outputs
//
//   - *Abacus: Zero with sign 0 and no digits.
//   - error: ErrInvalidBase when base is out of range.
func New(base uint32) (*Abacus, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	return &Abacus{base: base}, nil
}

// FromInt64 encodes v in the given base with precision 0.
func FromInt64(base uint32, v int64) (*Abacus, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	a := &Abacus{base: base}
	if v == 0 {
		return a, nil
	}
	mag := uint64(v)
	a.sign = 1
	if v < 0 {
		a.sign = -1
		mag = uint64(-v)
	}
	a.digits = digitsFromUint64(mag, uint64(base))
	return a, nil
}

// FromUint64 encodes v in the given base with precision 0.
func FromUint64(base uint32, v uint64) (*Abacus, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	a := &Abacus{base: base}
	if v > 0 {
		a.sign = 1
		a.digits = digitsFromUint64(v, uint64(base))
	}
	return a, nil
}

// FromFloat64 encodes f to the given fractional precision.
//
// The conversion rounds f·base^precision to the nearest integer, so
// digits beyond what a float64 carries are lost. Infinities and NaN
// are domain errors; magnitudes whose scaled form exceeds the uint64
// range overflow.
func FromFloat64(base uint32, f float64, precision int) (*Abacus, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	if precision < 0 {
		return nil, &DomainError{Op: "FromFloat64", Reason: "negative precision"}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &DomainError{Op: "FromFloat64", Reason: "not a finite number"}
	}
	scaled := math.Round(f * math.Pow(float64(base), float64(precision)))
	if math.Abs(scaled) >= math.MaxUint64 {
		return nil, &OverflowError{Op: "FromFloat64", Target: "scaled integer"}
	}
	a := &Abacus{base: base, precision: precision}
	if scaled == 0 {
		return a, nil
	}
	a.sign = 1
	if scaled < 0 {
		a.sign = -1
		scaled = -scaled
	}
	a.digits = digitsFromUint64(uint64(scaled), uint64(base))
	return a, nil
}

// Base returns the radix.
func (a *Abacus) Base() uint32 { return a.base }

// Sign returns -1, 0, or +1.
func (a *Abacus) Sign() int { return a.sign }

// Precision returns the count of fractional digits.
func (a *Abacus) Precision() int { return a.precision }

// Len returns the number of stored digits.
func (a *Abacus) Len() int { return len(a.digits) }

// IsZero reports whether the value is canonical zero.
func (a *Abacus) IsZero() bool { return a.sign == 0 }

// IsInteger reports whether the value has no nonzero fractional digit.
func (a *Abacus) IsInteger() bool {
	for i := 0; i < a.precision && i < len(a.digits); i++ {
		if a.digits[i] != 0 {
			return false
		}
	}
	return true
}

// Digit returns the digit at the given index (0 = least significant,
// counted over the full scaled sequence). Out-of-range indices are
// implicitly zero.
func (a *Abacus) Digit(i int) uint32 {
	if i < 0 || i >= len(a.digits) {
		return 0
	}
	return a.digits[i]
}

// Copy returns an independent deep copy.
func (a *Abacus) Copy() *Abacus {
	out := &Abacus{base: a.base, sign: a.sign, precision: a.precision}
	if len(a.digits) > 0 {
		out.digits = make([]uint32, len(a.digits))
		copy(out.digits, a.digits)
	}
	return out
}

// Cmp compares a and b numerically. Returns -1, 0, or +1.
//
// Operands must share a base; precisions are aligned before the
// magnitude comparison.
func (a *Abacus) Cmp(b *Abacus) (int, error) {
	if a.base != b.base {
		return 0, &BaseMismatchError{Left: a.base, Right: b.base}
	}
	if a.sign != b.sign {
		if a.sign < b.sign {
			return -1, nil
		}
		return 1, nil
	}
	if a.sign == 0 {
		return 0, nil
	}
	da, db := alignDigits(a, b)
	c := cmpDigits(trimDigits(da), trimDigits(db))
	return c * a.sign, nil
}

// ToInt64 converts an integer-valued Abacus to int64.
//
// Fractional digits are truncated toward zero. Magnitudes beyond the
// int64 range fail with ErrOverflow.
func (a *Abacus) ToInt64() (int64, error) {
	mag := shiftDownDigits(a.digits, a.precision)
	v, ok := uint64FromDigits(mag, uint64(a.base))
	if !ok {
		return 0, &OverflowError{Op: "ToInt64", Target: "int64"}
	}
	if a.sign >= 0 {
		if v > math.MaxInt64 {
			return 0, &OverflowError{Op: "ToInt64", Target: "int64"}
		}
		return int64(v), nil
	}
	const minInt64Mag = uint64(1) << 63
	if v > minInt64Mag {
		return 0, &OverflowError{Op: "ToInt64", Target: "int64"}
	}
	if v == minInt64Mag {
		return math.MinInt64, nil
	}
	return -int64(v), nil
}

// ToUint64 converts a nonnegative integer-valued Abacus to uint64.
//
// Fractional digits are truncated toward zero.
func (a *Abacus) ToUint64() (uint64, error) {
	if a.sign < 0 {
		return 0, &DomainError{Op: "ToUint64", Reason: "negative value"}
	}
	mag := shiftDownDigits(a.digits, a.precision)
	v, ok := uint64FromDigits(mag, uint64(a.base))
	if !ok {
		return 0, &OverflowError{Op: "ToUint64", Target: "uint64"}
	}
	return v, nil
}

// ToFloat64 approximates the value as a float64. Lossy past 53 bits.
func (a *Abacus) ToFloat64() float64 {
	var v float64
	for i := len(a.digits) - 1; i >= 0; i-- {
		v = v*float64(a.base) + float64(a.digits[i])
	}
	v /= math.Pow(float64(a.base), float64(a.precision))
	return float64(a.sign) * v
}

// WithPrecision returns the value rescaled to exactly p fractional
// digits. Raising precision is exact; lowering truncates toward zero.
func (a *Abacus) WithPrecision(p int) (*Abacus, error) {
	if p < 0 {
		return nil, &DomainError{Op: "WithPrecision", Reason: "negative precision"}
	}
	out := &Abacus{base: a.base, sign: a.sign, precision: p}
	switch {
	case p == a.precision:
		out.digits = append([]uint32(nil), a.digits...)
	case p > a.precision:
		if len(a.digits)+(p-a.precision) > maxDigits {
			return nil, &OverflowError{Op: "WithPrecision", Target: "digit index"}
		}
		out.digits = shiftUpDigits(a.digits, p-a.precision)
	default:
		out.digits = shiftDownDigits(a.digits, a.precision-p)
	}
	out.normalize()
	return out, nil
}

// Truncate drops fractional digits below precision p, toward zero.
func (a *Abacus) Truncate(p int) (*Abacus, error) {
	if p >= a.precision {
		return a.Copy(), nil
	}
	return a.WithPrecision(p)
}

// Round rescales to precision p, rounding half away from zero on the
// first dropped digit.
func (a *Abacus) Round(p int) (*Abacus, error) {
	if p < 0 {
		return nil, &DomainError{Op: "Round", Reason: "negative precision"}
	}
	if p >= a.precision {
		return a.WithPrecision(p)
	}
	drop := a.precision - p
	mag := shiftDownDigits(a.digits, drop)
	if first := a.Digit(drop - 1); uint64(first)*2 >= uint64(a.base) {
		mag = addDigits(mag, []uint32{1}, uint64(a.base))
	}
	out := &Abacus{base: a.base, sign: a.sign, precision: p, digits: mag}
	out.normalize()
	return out, nil
}

// normalize restores canonical form after a digit-level edit.
func (a *Abacus) normalize() {
	a.digits = trimDigits(a.digits)
	if len(a.digits) == 0 {
		a.sign = 0
	} else if a.sign == 0 {
		a.sign = 1
	}
}

// checkBase validates the radix range.
func checkBase(base uint32) error {
	if base < 2 || base > MaxBase {
		return ErrInvalidBase
	}
	return nil
}

// alignDigits returns both digit slices scaled to the larger of the
// two precisions. Neither input is modified.
func alignDigits(a, b *Abacus) ([]uint32, []uint32) {
	if a.precision == b.precision {
		return a.digits, b.digits
	}
	if a.precision < b.precision {
		return shiftUpDigits(a.digits, b.precision-a.precision), b.digits
	}
	return a.digits, shiftUpDigits(b.digits, a.precision-b.precision)
}

// maxPrecision returns the larger precision of the two operands.
func maxPrecision(a, b *Abacus) int {
	if a.precision > b.precision {
		return a.precision
	}
	return b.precision
}
