// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package prime

import "context"

// Factor is one prime power in a factorization.
type Factor struct {
	Prime    uint64
	Exponent uint32
}

// Factorization lists prime powers in increasing prime order; the
// product of Prime^Exponent recovers the input.
type Factorization []Factor

// Product multiplies the factorization back together.
func (f Factorization) Product() uint64 {
	n := uint64(1)
	for _, pf := range f {
		for e := uint32(0); e < pf.Exponent; e++ {
			n *= pf.Prime
		}
	}
	return n
}

// Factor decomposes n into prime powers by trial division in prime
// order. Factoring 0 fails; 1 yields the empty factorization.
func (s *Service) Factor(ctx context.Context, n uint64) (Factorization, error) {
	if n == 0 {
		return nil, &DomainError{Op: "Factor", Reason: "zero has no factorization"}
	}
	if n == 1 {
		return Factorization{}, nil
	}

	var factors Factorization
	rest := n
	rest = extractFactor(&factors, rest, 2)
	rest = extractFactor(&factors, rest, 3)
	i := 0
	for d := uint64(5); rest > 1 && d <= rest/d; d += 6 {
		if i%cancelCheckInterval == 0 && ctx.Err() != nil {
			return nil, canceled(ctx)
		}
		i++
		rest = extractFactor(&factors, rest, d)
		rest = extractFactor(&factors, rest, d+2)
	}
	// A leftover above 1 is prime: every divisor up to its square
	// root has been removed.
	if rest > 1 {
		factors = append(factors, Factor{Prime: rest, Exponent: 1})
	}
	return factors, nil
}

// extractFactor divides out every power of p, recording the exponent.
func extractFactor(factors *Factorization, n, p uint64) uint64 {
	var e uint32
	for n%p == 0 {
		n /= p
		e++
	}
	if e > 0 {
		*factors = append(*factors, Factor{Prime: p, Exponent: e})
	}
	return n
}

// Totient computes Euler's φ(n) from the factorization using
// φ(n) = Π p^(e−1)·(p−1). φ(0) is undefined; φ(1) = 1.
func (s *Service) Totient(ctx context.Context, n uint64) (uint64, error) {
	if n == 0 {
		return 0, &DomainError{Op: "Totient", Reason: "phi(0) is undefined"}
	}
	factors, err := s.Factor(ctx, n)
	if err != nil {
		return 0, err
	}
	phi := uint64(1)
	for _, f := range factors {
		phi *= f.Prime - 1
		for e := uint32(1); e < f.Exponent; e++ {
			phi *= f.Prime
		}
	}
	return phi, nil
}

// GCD computes the greatest common divisor by Euclid's algorithm.
// GCD(0, 0) = 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Coprime reports whether gcd(a, b) = 1.
func Coprime(a, b uint64) bool {
	return GCD(a, b) == 1
}
