// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abInt(t *testing.T, v int64) *Abacus {
	t.Helper()
	a, err := FromInt64(10, v)
	require.NoError(t, err)
	return a
}

func TestModExp(t *testing.T) {
	tests := []struct {
		name    string
		b, e, m int64
		want    int64
	}{
		{"seven_to_128_mod_13", 7, 128, 13, 3},
		{"zero_exponent", 5, 0, 7, 1},
		{"zero_exponent_mod_one", 5, 0, 1, 0},
		{"identity_base", 1, 1000, 17, 1},
		{"small", 2, 10, 1000, 24},
		{"negative_base", -2, 3, 5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ModExp(abInt(t, tt.b), abInt(t, tt.e), abInt(t, tt.m))
			require.NoError(t, err)
			got, err := r.ToInt64()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModExpZeroModulus(t *testing.T) {
	_, err := ModExp(abInt(t, 2), abInt(t, 3), abInt(t, 0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestModExpNegativeExponent(t *testing.T) {
	_, err := ModExp(abInt(t, 2), abInt(t, -1), abInt(t, 7))
	assert.ErrorIs(t, err, ErrDomain)
}

func TestModExpLargeExponent(t *testing.T) {
	// 2^1000 mod 1009 (1009 is prime, so Fermat gives 2^1008 ≡ 1).
	r, err := ModExp(abInt(t, 2), abInt(t, 1008), abInt(t, 1009))
	require.NoError(t, err)
	got, err := r.ToInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestModInverse(t *testing.T) {
	tests := []struct {
		a, m, want int64
	}{
		{3, 7, 5},
		{12, 7, 3}, // 12 ≡ 5, 5·3 = 15 ≡ 1
		{7, 13, 2},
		{1, 5, 1},
	}
	for _, tt := range tests {
		inv, err := ModInverse(abInt(t, tt.a), abInt(t, tt.m))
		require.NoError(t, err)
		got, err := inv.ToInt64()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "inverse of %d mod %d", tt.a, tt.m)

		// (a · inv) mod m == 1
		p, err := ModMul(abInt(t, tt.a), inv, abInt(t, tt.m))
		require.NoError(t, err)
		one, err := p.ToInt64()
		require.NoError(t, err)
		assert.Equal(t, int64(1), one)
	}
}

func TestModInverseNotInvertible(t *testing.T) {
	_, err := ModInverse(abInt(t, 6), abInt(t, 9))
	assert.ErrorIs(t, err, ErrDomain)
}

func TestModAddSubMul(t *testing.T) {
	m := abInt(t, 12)

	s, err := ModAdd(abInt(t, 10), abInt(t, 5), m)
	require.NoError(t, err)
	v, _ := s.ToInt64()
	assert.Equal(t, int64(3), v)

	d, err := ModSub(abInt(t, 3), abInt(t, 5), m)
	require.NoError(t, err)
	v, _ = d.ToInt64()
	assert.Equal(t, int64(10), v, "Euclidean remainder stays nonnegative")

	p, err := ModMul(abInt(t, 7), abInt(t, 7), m)
	require.NoError(t, err)
	v, _ = p.ToInt64()
	assert.Equal(t, int64(1), v, "7² ≡ 1 (mod 12) for every prime above 3")
}

func TestGCDAndLCM(t *testing.T) {
	tests := []struct {
		a, b, gcd, lcm int64
	}{
		{12, 18, 6, 36},
		{17, 13, 1, 221},
		{0, 5, 5, 0},
		{0, 0, 0, 0},
		{-12, 18, 6, 36},
	}
	for _, tt := range tests {
		g, err := GCD(abInt(t, tt.a), abInt(t, tt.b))
		require.NoError(t, err)
		got, err := g.ToInt64()
		require.NoError(t, err)
		assert.Equal(t, tt.gcd, got, "gcd(%d, %d)", tt.a, tt.b)

		l, err := LCM(abInt(t, tt.a), abInt(t, tt.b))
		require.NoError(t, err)
		got, err = l.ToInt64()
		require.NoError(t, err)
		assert.Equal(t, tt.lcm, got, "lcm(%d, %d)", tt.a, tt.b)
	}
}

func TestCoprime(t *testing.T) {
	ok, err := Coprime(abInt(t, 8), abInt(t, 15))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Coprime(abInt(t, 8), abInt(t, 12))
	require.NoError(t, err)
	assert.False(t, ok)
}
