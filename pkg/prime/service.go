// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package prime

import (
	"context"
	"math"

	"github.com/AleutianAI/crystalline/pkg/logging"
)

// cancelCheckInterval bounds how many outer-loop iterations run
// between context checks.
const cancelCheckInterval = 1024

// Cache is the read surface the service uses to short-circuit
// enumeration. Implementations must hold every prime from 2 up to
// MaxPrime with 1-based indices; a gap would turn a miss into a wrong
// composite verdict.
type Cache interface {
	// Contains reports whether p is a cached prime.
	Contains(p uint64) bool

	// MaxPrime returns the largest cached prime, 0 when empty.
	MaxPrime() uint64

	// MaxIndex returns the index of the largest cached prime, which
	// equals the cache size.
	MaxIndex() uint64

	// PrimeAt returns the prime with 1-based index k.
	PrimeAt(k uint64) (uint64, bool)

	// IndexOf returns the 1-based index of a cached prime.
	IndexOf(p uint64) (uint64, bool)

	// NextAfter returns the smallest cached prime strictly above p.
	NextAfter(p uint64) (uint64, bool)

	// PrevBefore returns the largest cached prime strictly below p.
	PrevBefore(p uint64) (uint64, bool)
}

// Service answers primality and enumeration queries. The zero value
// is not usable; construct with NewService.
type Service struct {
	cache   Cache
	log     *logging.Logger
	metrics *Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithCache attaches a populated cache for lookup short-circuits.
func WithCache(c Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithLogger overrides the default logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService builds a prime service.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.Default()
	}
	return s
}

// ============================================================================
// Primality
// ============================================================================

// FastWitness is the mod-12 screen: primes above 3 fall in the
// residue classes {1, 5, 7, 11}. A false return is a definite
// composite; a true return decides nothing and must be confirmed by
// IsPrime.
func FastWitness(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	switch n % 12 {
	case 1, 5, 7, 11:
		return true
	}
	return false
}

// IsPrime reports whether n is prime by deterministic trial division.
//
// Values at most 3 are tabulated. Multiples of 2 and 3 are rejected
// outright, then divisors of the form 6k±1 are tried up to ⌊√n⌋. A
// cached prime short-circuits to true; a miss below the cache's
// maximum short-circuits to false.
func (s *Service) IsPrime(ctx context.Context, n uint64) (bool, error) {
	if n < 4 {
		return n == 2 || n == 3, nil
	}
	if n%2 == 0 || n%3 == 0 {
		return false, nil
	}
	if s.cache != nil {
		if s.cache.Contains(n) {
			s.metrics.observeCacheHit()
			return true, nil
		}
		if n <= s.cache.MaxPrime() {
			s.metrics.observeCacheHit()
			return false, nil
		}
		s.metrics.observeCacheMiss()
	}
	return trialDivide(ctx, n, s.metrics)
}

// trialDivide runs the 6k±1 witness. The caller has already disposed
// of n < 4 and multiples of 2 and 3.
func trialDivide(ctx context.Context, n uint64, m *Metrics) (bool, error) {
	m.observeTrialDivision()
	i := 0
	for d := uint64(5); d <= n/d; d += 6 {
		if i%cancelCheckInterval == 0 && ctx.Err() != nil {
			return false, canceled(ctx)
		}
		i++
		if n%d == 0 || n%(d+2) == 0 {
			return false, nil
		}
	}
	return true, nil
}

// ============================================================================
// Enumeration
// ============================================================================

// NthPrime returns the n-th prime, 1-indexed: NthPrime(1) = 2.
func (s *Service) NthPrime(ctx context.Context, n uint64) (uint64, error) {
	if n == 0 {
		return 0, &DomainError{Op: "NthPrime", Reason: "indices start at 1"}
	}
	if n == 1 {
		return 2, nil
	}
	if n == 2 {
		return 3, nil
	}
	if s.cache != nil {
		if p, ok := s.cache.PrimeAt(n); ok {
			s.metrics.observeCacheHit()
			return p, nil
		}
	}

	// Resume enumeration from the cache frontier when possible.
	count, p := uint64(2), uint64(3)
	if s.cache != nil {
		if mi := s.cache.MaxIndex(); mi >= 2 && mi < n {
			count, p = mi, s.cache.MaxPrime()
		}
		s.log.Debug("nth prime beyond cache, enumerating", "n", n, "from", p)
	}
	for count < n {
		next, err := s.nextAfter(ctx, p)
		if err != nil {
			return 0, err
		}
		p = next
		count++
	}
	return p, nil
}

// NextPrime returns the smallest prime strictly greater than p.
func (s *Service) NextPrime(ctx context.Context, p uint64) (uint64, error) {
	if s.cache != nil && p < s.cache.MaxPrime() {
		if next, ok := s.cache.NextAfter(p); ok {
			s.metrics.observeCacheHit()
			return next, nil
		}
	}
	return s.nextAfter(ctx, p)
}

// PrevPrime returns the largest prime strictly smaller than p. There
// is no prime below 2.
func (s *Service) PrevPrime(ctx context.Context, p uint64) (uint64, error) {
	if p <= 2 {
		return 0, &DomainError{Op: "PrevPrime", Reason: "no prime below 2"}
	}
	if p == 3 {
		return 2, nil
	}
	if s.cache != nil && p <= s.cache.MaxPrime() {
		if prev, ok := s.cache.PrevBefore(p); ok {
			s.metrics.observeCacheHit()
			return prev, nil
		}
	}
	// Walk down through 6k±1 candidates.
	c := p - 1
	if c%2 == 0 {
		c--
	}
	for i := 0; c >= 5; i++ {
		if i%cancelCheckInterval == 0 && ctx.Err() != nil {
			return 0, canceled(ctx)
		}
		if r := c % 6; r == 1 || r == 5 {
			ok, err := s.IsPrime(ctx, c)
			if err != nil {
				return 0, err
			}
			if ok {
				return c, nil
			}
		}
		c -= 2
	}
	if p > 3 {
		return 3, nil
	}
	return 2, nil
}

// nextAfter walks the 6k±1 wheel upward from p, testing each
// candidate until a prime confirms.
func (s *Service) nextAfter(ctx context.Context, p uint64) (uint64, error) {
	if p < 2 {
		return 2, nil
	}
	if p == 2 {
		return 3, nil
	}
	if p < 5 {
		return 5, nil
	}
	c := p + 1
	for c%6 != 1 && c%6 != 5 {
		c++
	}
	for i := 0; ; i++ {
		if i%cancelCheckInterval == 0 && ctx.Err() != nil {
			return 0, canceled(ctx)
		}
		ok, err := s.IsPrime(ctx, c)
		if err != nil {
			return 0, err
		}
		if ok {
			return c, nil
		}
		if c > math.MaxUint64-4 {
			return 0, ErrOverflow
		}
		if c%6 == 5 {
			c += 2
		} else {
			c += 4
		}
	}
}

// Range returns all primes in [lo, hi] in increasing order.
func (s *Service) Range(ctx context.Context, lo, hi uint64) ([]uint64, error) {
	var primes []uint64
	if lo < 2 {
		lo = 2
	}
	if lo > hi {
		return nil, nil
	}
	p := lo - 1
	for {
		next, err := s.NextPrime(ctx, p)
		if err != nil {
			return nil, err
		}
		if next > hi {
			return primes, nil
		}
		primes = append(primes, next)
		p = next
	}
}

// ============================================================================
// Counting and gaps
// ============================================================================

// CountBelow returns the number of primes strictly less than n.
func (s *Service) CountBelow(ctx context.Context, n uint64) (uint64, error) {
	if n <= 2 {
		return 0, nil
	}
	return s.CountRange(ctx, 2, n-1)
}

// CountRange returns the number of primes in [a, b] inclusive.
func (s *Service) CountRange(ctx context.Context, a, b uint64) (uint64, error) {
	if a > b {
		return 0, nil
	}
	var count uint64
	if a < 2 {
		a = 2
	}
	p := a - 1
	for {
		next, err := s.NextPrime(ctx, p)
		if err != nil {
			return 0, err
		}
		if next > b || next < p {
			return count, nil
		}
		count++
		p = next
	}
}

// GapNext returns the gap from a prime to its successor.
func (s *Service) GapNext(ctx context.Context, p uint64) (uint64, error) {
	ok, err := s.IsPrime(ctx, p)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &DomainError{Op: "GapNext", Reason: "input is not prime"}
	}
	next, err := s.NextPrime(ctx, p)
	if err != nil {
		return 0, err
	}
	return next - p, nil
}

// GapPrev returns the gap from a prime to its predecessor.
func (s *Service) GapPrev(ctx context.Context, p uint64) (uint64, error) {
	ok, err := s.IsPrime(ctx, p)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &DomainError{Op: "GapPrev", Reason: "input is not prime"}
	}
	prev, err := s.PrevPrime(ctx, p)
	if err != nil {
		return 0, err
	}
	return p - prev, nil
}

// Index returns the 1-based index of a prime: Index(2) = 1.
func (s *Service) Index(ctx context.Context, p uint64) (uint64, error) {
	ok, err := s.IsPrime(ctx, p)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &DomainError{Op: "Index", Reason: "input is not prime"}
	}
	if s.cache != nil {
		if k, ok := s.cache.IndexOf(p); ok {
			s.metrics.observeCacheHit()
			return k, nil
		}
	}
	count, err := s.CountRange(ctx, 2, p)
	if err != nil {
		return 0, err
	}
	return count, nil
}
