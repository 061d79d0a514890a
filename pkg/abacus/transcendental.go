// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

import "math"

// Elementary functions by truncated series, evaluated on scaled
// integers at a working precision above the requested one. The guard
// digits absorb the one-ulp truncation of each series term, so the
// final result is within base^-precision of the true value.

// maxSeriesIterations bounds every series loop. Inputs inside the
// documented domains converge well below this; hitting it means the
// input slipped past a domain check.
const maxSeriesIterations = 4096

// expDomainLimit bounds |x| for Exp.
const expDomainLimit = 128

// trigDomainLimit bounds |x| for Sin and Cos.
const trigDomainLimit = 64

// guardDigits returns the extra working digits for a series at the
// given base: enough headroom for maxSeriesIterations accumulated
// one-ulp truncations plus a safety margin.
func guardDigits(base uint32) int {
	return 4 + len(digitsFromUint64(maxSeriesIterations, uint64(base)))
}

// expGuardDigits widens the exp working precision with the input
// magnitude. The series does not alternate, so a one-ulp truncation
// injected at an early term is amplified by up to e^|x| in the final
// sum; that costs |x|·log_base(e) digits of headroom on top of the
// flat per-term guard.
func expGuardDigits(a *Abacus) int {
	xf := math.Abs(a.ToFloat64())
	return guardDigits(a.base) + int(math.Ceil(xf/math.Log(float64(a.base)))) + 1
}

// Exp returns e^a to the given fractional precision.
//
// Domain: |a| <= 128. Uses the Taylor series Σ a^k / k!, truncated
// when a term vanishes at the working precision, which is scaled
// with |a| so the result stays within base^-precision across the
// whole domain.
func (a *Abacus) Exp(precision int) (*Abacus, error) {
	if precision < 0 {
		return nil, &DomainError{Op: "Exp", Reason: "negative precision"}
	}
	if err := checkMagnitudeLimit(a, expDomainLimit, "Exp"); err != nil {
		return nil, err
	}
	wp := precision + expGuardDigits(a)
	x, err := a.WithPrecision(wp)
	if err != nil {
		return nil, err
	}
	sum, err := scaledOne(a.base, wp)
	if err != nil {
		return nil, err
	}
	term := sum.Copy()
	for k := uint64(1); ; k++ {
		if k > maxSeriesIterations {
			return nil, ErrNoConvergence
		}
		if term, err = scaledMul(term, x, wp); err != nil {
			return nil, err
		}
		term = divScalarKeepPrecision(term, k)
		if term.IsZero() {
			break
		}
		if sum, err = sum.Add(term); err != nil {
			return nil, err
		}
	}
	return sum.WithPrecision(precision)
}

// Sin returns sin(a) to the given fractional precision.
//
// Domain: |a| <= 64 radians. No argument reduction is performed; the
// Taylor series alternates and the factorial denominator dominates
// within the domain.
func (a *Abacus) Sin(precision int) (*Abacus, error) {
	return a.sinCos(precision, true)
}

// Cos returns cos(a) to the given fractional precision. Domain as Sin.
func (a *Abacus) Cos(precision int) (*Abacus, error) {
	return a.sinCos(precision, false)
}

func (a *Abacus) sinCos(precision int, sine bool) (*Abacus, error) {
	op := "Cos"
	if sine {
		op = "Sin"
	}
	if precision < 0 {
		return nil, &DomainError{Op: op, Reason: "negative precision"}
	}
	if err := checkMagnitudeLimit(a, trigDomainLimit, op); err != nil {
		return nil, err
	}
	wp := precision + guardDigits(a.base)
	x, err := a.WithPrecision(wp)
	if err != nil {
		return nil, err
	}
	x2, err := scaledMul(x, x, wp)
	if err != nil {
		return nil, err
	}
	var term *Abacus
	if sine {
		term = x.Copy()
	} else {
		if term, err = scaledOne(a.base, wp); err != nil {
			return nil, err
		}
	}
	sum := term.Copy()
	for k := uint64(1); ; k++ {
		if k > maxSeriesIterations {
			return nil, ErrNoConvergence
		}
		if term, err = scaledMul(term, x2, wp); err != nil {
			return nil, err
		}
		// sin: divide by (2k)(2k+1); cos: by (2k-1)(2k).
		d1, d2 := 2*k, 2*k+1
		if !sine {
			d1, d2 = 2*k-1, 2*k
		}
		term = divScalarKeepPrecision(term, d1*d2).Neg()
		if term.IsZero() {
			break
		}
		if sum, err = sum.Add(term); err != nil {
			return nil, err
		}
	}
	return sum.WithPrecision(precision)
}

// Log returns the natural logarithm of a positive value to the given
// fractional precision.
//
// The argument is reduced into [1/2, 2] by repeated square roots
// (each halving the logarithm), then log(x) = 2·atanh((x−1)/(x+1))
// is evaluated by series; |((x−1)/(x+1))| <= 1/3 after reduction.
func (a *Abacus) Log(precision int) (*Abacus, error) {
	if precision < 0 {
		return nil, &DomainError{Op: "Log", Reason: "negative precision"}
	}
	if a.sign <= 0 {
		return nil, &DomainError{Op: "Log", Reason: "input must be positive"}
	}
	wp := precision + guardDigits(a.base)
	x, err := a.WithPrecision(wp)
	if err != nil {
		return nil, err
	}
	two, err := FromInt64(a.base, 2)
	if err != nil {
		return nil, err
	}
	half := divScalarKeepPrecision(mustScaledOne(a.base, wp), 2)

	doublings := 0
	for i := 0; ; i++ {
		if i > maxSeriesIterations {
			return nil, ErrNoConvergence
		}
		cHigh, err := x.Cmp(two)
		if err != nil {
			return nil, err
		}
		cLow, err := x.Cmp(half)
		if err != nil {
			return nil, err
		}
		if cHigh <= 0 && cLow >= 0 {
			break
		}
		if x, err = x.Sqrt(wp); err != nil {
			return nil, err
		}
		doublings++
	}

	one := mustScaledOne(a.base, wp)
	num, err := x.Sub(one)
	if err != nil {
		return nil, err
	}
	den, err := x.Add(one)
	if err != nil {
		return nil, err
	}
	u, err := scaledDiv(num, den, wp)
	if err != nil {
		return nil, err
	}
	u2, err := scaledMul(u, u, wp)
	if err != nil {
		return nil, err
	}
	sum := u.Copy()
	term := u.Copy()
	for k := uint64(1); ; k++ {
		if k > maxSeriesIterations {
			return nil, ErrNoConvergence
		}
		if term, err = scaledMul(term, u2, wp); err != nil {
			return nil, err
		}
		contrib := divScalarKeepPrecision(term, 2*k+1)
		if contrib.IsZero() {
			break
		}
		if sum, err = sum.Add(contrib); err != nil {
			return nil, err
		}
	}
	// log(a) = 2^doublings · 2 · atanh(u)
	for i := 0; i <= doublings; i++ {
		sum = sum.MulScalar(2)
	}
	return sum.WithPrecision(precision)
}

// =============================================================================
// Scaled helpers
// =============================================================================

// scaledOne returns 1 at the given working precision.
func scaledOne(base uint32, wp int) (*Abacus, error) {
	one, err := FromInt64(base, 1)
	if err != nil {
		return nil, err
	}
	return one.WithPrecision(wp)
}

// mustScaledOne is scaledOne for bases already validated by a caller.
func mustScaledOne(base uint32, wp int) *Abacus {
	one, err := scaledOne(base, wp)
	if err != nil {
		panic(err)
	}
	return one
}

// scaledMul multiplies two values and truncates back to wp digits.
func scaledMul(a, b *Abacus, wp int) (*Abacus, error) {
	p, err := a.Mul(b)
	if err != nil {
		return nil, err
	}
	return p.WithPrecision(wp)
}

// scaledDiv returns a/b at wp fractional digits, truncated toward
// zero. b must be nonzero.
func scaledDiv(a, b *Abacus, wp int) (*Abacus, error) {
	if b.sign == 0 {
		return nil, ErrDivisionByZero
	}
	da, db := alignDigits(a, b)
	q, _ := divmodDigits(shiftUpDigits(da, wp), db, uint64(a.base))
	out := &Abacus{base: a.base, sign: a.sign * b.sign, precision: wp, digits: q}
	out.normalize()
	return out, nil
}

// divScalarKeepPrecision divides by a small positive scalar without
// changing the precision, truncating toward zero.
func divScalarKeepPrecision(a *Abacus, s uint64) *Abacus {
	q, _ := divmodScalarDigits(a.digits, s, uint64(a.base))
	out := &Abacus{base: a.base, sign: a.sign, precision: a.precision, digits: q}
	out.normalize()
	return out
}

// checkMagnitudeLimit rejects inputs whose magnitude exceeds the
// documented series domain.
func checkMagnitudeLimit(a *Abacus, limit int64, op string) error {
	bound, err := FromInt64(a.base, limit)
	if err != nil {
		return err
	}
	c, err := a.Abs().Cmp(bound)
	if err != nil {
		return err
	}
	if c > 0 {
		return &DomainError{Op: op, Reason: "input outside the documented series domain"}
	}
	return nil
}
