// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

// Unsigned digit-slice kernels. All slices are least-significant-first
// with every digit < base, and results are trimmed so the top digit is
// nonzero. The empty slice is zero. Bases fit in 31 bits, so a digit
// product plus carries stays below 2^63 in uint64 arithmetic.

// trimDigits drops high-order zero digits.
func trimDigits(d []uint32) []uint32 {
	n := len(d)
	for n > 0 && d[n-1] == 0 {
		n--
	}
	return d[:n]
}

// cmpDigits compares two trimmed magnitudes. Returns -1, 0, or +1.
func cmpDigits(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addDigits returns a + b.
func addDigits(a, b []uint32, base uint64) []uint32 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint32, 0, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		s := carry
		if i < len(a) {
			s += uint64(a[i])
		}
		if i < len(b) {
			s += uint64(b[i])
		}
		out = append(out, uint32(s%base))
		carry = s / base
	}
	if carry > 0 {
		out = append(out, uint32(carry))
	}
	return out
}

// subDigits returns a - b. Requires a >= b.
func subDigits(a, b []uint32, base uint64) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint64
	for i := range a {
		ai := uint64(a[i])
		bi := borrow
		if i < len(b) {
			bi += uint64(b[i])
		}
		if ai >= bi {
			out[i] = uint32(ai - bi)
			borrow = 0
		} else {
			out[i] = uint32(ai + base - bi)
			borrow = 1
		}
	}
	return trimDigits(out)
}

// mulDigits returns a * b by the schoolbook method, O(len(a)*len(b)).
func mulDigits(a, b []uint32, base uint64) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	acc := make([]uint64, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry uint64
		for j, bj := range b {
			cur := acc[i+j] + uint64(ai)*uint64(bj) + carry
			acc[i+j] = cur % base
			carry = cur / base
		}
		for k := i + len(b); carry > 0; k++ {
			cur := acc[k] + carry
			acc[k] = cur % base
			carry = cur / base
		}
	}
	out := make([]uint32, len(acc))
	for i, v := range acc {
		out[i] = uint32(v)
	}
	return trimDigits(out)
}

// mulScalarDigits returns a * s for a small scalar s < 2^31.
func mulScalarDigits(a []uint32, s, base uint64) []uint32 {
	if s == 0 || len(a) == 0 {
		return nil
	}
	out := make([]uint32, 0, len(a)+2)
	var carry uint64
	for _, d := range a {
		cur := uint64(d)*s + carry
		out = append(out, uint32(cur%base))
		carry = cur / base
	}
	for carry > 0 {
		out = append(out, uint32(carry%base))
		carry /= base
	}
	return out
}

// divmodScalarDigits returns (a / s, a mod s) for a scalar divisor.
// The caller guarantees s > 0 and s*base < 2^64.
func divmodScalarDigits(a []uint32, s, base uint64) ([]uint32, uint64) {
	if len(a) == 0 {
		return nil, 0
	}
	q := make([]uint32, len(a))
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		cur := rem*base + uint64(a[i])
		q[i] = uint32(cur / s)
		rem = cur % s
	}
	return trimDigits(q), rem
}

// divmodDigits returns (u / v, u mod v). Requires v nonzero. Long
// division: one quotient digit per step, found by binary search over
// the digit range since the base is arbitrary.
func divmodDigits(u, v []uint32, base uint64) ([]uint32, []uint32) {
	u = trimDigits(u)
	v = trimDigits(v)
	if cmpDigits(u, v) < 0 {
		rem := make([]uint32, len(u))
		copy(rem, u)
		return nil, rem
	}
	q := make([]uint32, len(u))
	var rem []uint32
	for i := len(u) - 1; i >= 0; i-- {
		// rem = rem*base + u[i]
		rem = append(rem, 0)
		copy(rem[1:], rem)
		rem[0] = u[i]
		rem = trimDigits(rem)
		if cmpDigits(rem, v) < 0 {
			continue
		}
		lo, hi := uint64(1), base-1
		for lo < hi {
			mid := lo + (hi-lo+1)/2
			if cmpDigits(mulScalarDigits(v, mid, base), rem) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		q[i] = uint32(lo)
		rem = subDigits(rem, mulScalarDigits(v, lo, base), base)
	}
	return trimDigits(q), rem
}

// shiftUpDigits returns a * base^n (n zero digits prepended).
func shiftUpDigits(a []uint32, n int) []uint32 {
	if len(a) == 0 || n == 0 {
		out := make([]uint32, len(a))
		copy(out, a)
		return out
	}
	out := make([]uint32, n+len(a))
	copy(out[n:], a)
	return out
}

// shiftDownDigits returns a / base^n (n low digits dropped).
func shiftDownDigits(a []uint32, n int) []uint32 {
	if n >= len(a) {
		return nil
	}
	out := make([]uint32, len(a)-n)
	copy(out, a[n:])
	return trimDigits(out)
}

// digitsFromUint64 encodes v in the given base.
func digitsFromUint64(v, base uint64) []uint32 {
	var out []uint32
	for v > 0 {
		out = append(out, uint32(v%base))
		v /= base
	}
	return out
}

// uint64FromDigits decodes a magnitude, reporting overflow.
func uint64FromDigits(d []uint32, base uint64) (uint64, bool) {
	var v uint64
	for i := len(d) - 1; i >= 0; i-- {
		if v > (^uint64(0)-uint64(d[i]))/base {
			return 0, false
		}
		v = v*base + uint64(d[i])
	}
	return v, true
}

// powScalarDigits returns a^e by binary exponentiation.
func powScalarDigits(a []uint32, e uint64, base uint64) []uint32 {
	result := []uint32{1}
	sq := trimDigits(a)
	for e > 0 {
		if e&1 == 1 {
			result = mulDigits(result, sq, base)
		}
		e >>= 1
		if e > 0 {
			sq = mulDigits(sq, sq, base)
		}
	}
	return result
}

// isqrtDigits returns floor(sqrt(n)) by Newton iteration. The initial
// guess base^ceil(len/2) bounds the root from above, so the sequence
// decreases monotonically until it crosses the floor.
func isqrtDigits(n []uint32, base uint64) []uint32 {
	n = trimDigits(n)
	if len(n) == 0 {
		return nil
	}
	if len(n) == 1 && n[0] < 2 {
		out := make([]uint32, 1)
		out[0] = n[0]
		return out
	}
	x := make([]uint32, (len(n)+1)/2+1)
	x[len(x)-1] = 1
	for {
		q, _ := divmodDigits(n, x, base)
		t := addDigits(x, q, base)
		t, _ = divmodScalarDigits(t, 2, base)
		if cmpDigits(t, x) >= 0 {
			return x
		}
		x = t
	}
}

// irootDigits returns floor(n^(1/k)) by Newton iteration, k >= 1.
func irootDigits(n []uint32, k uint64, base uint64) []uint32 {
	n = trimDigits(n)
	if k == 1 || len(n) == 0 {
		out := make([]uint32, len(n))
		copy(out, n)
		return out
	}
	if len(n) == 1 && n[0] == 1 {
		return []uint32{1}
	}
	// Initial guess base^ceil(len/k) >= n^(1/k).
	guessLen := (len(n) + int(k) - 1) / int(k)
	x := make([]uint32, guessLen+1)
	x[len(x)-1] = 1
	for {
		// t = ((k-1)*x + n/x^(k-1)) / k
		xk1 := powScalarDigits(x, k-1, base)
		q, _ := divmodDigits(n, xk1, base)
		t := addDigits(mulScalarDigits(x, k-1, base), q, base)
		t, _ = divmodScalarDigits(t, k, base)
		if cmpDigits(t, x) >= 0 {
			return x
		}
		x = t
	}
}
