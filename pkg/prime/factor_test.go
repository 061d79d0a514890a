// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package prime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactor(t *testing.T) {
	s := NewService()
	ctx := context.Background()

	tests := []struct {
		name string
		n    uint64
		want Factorization
	}{
		{"n_360", 360, Factorization{{2, 3}, {3, 2}, {5, 1}}},
		{"prime", 97, Factorization{{97, 1}}},
		{"prime_square", 49, Factorization{{7, 2}}},
		{"semiprime", 91, Factorization{{7, 1}, {13, 1}}},
		{"power_of_two", 1024, Factorization{{2, 10}}},
		{"one", 1, Factorization{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Factor(ctx, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.n > 1 {
				assert.Equal(t, tt.n, got.Product())
			}
		})
	}

	_, err := s.Factor(ctx, 0)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestFactorIsCanonical(t *testing.T) {
	s := NewService()
	got, err := s.Factor(context.Background(), 2*2*3*5*5*5*13)
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Prime, got[i].Prime, "factors must increase")
	}
	assert.Equal(t, uint64(2*2*3*5*5*5*13), got.Product())
}

func TestTotient(t *testing.T) {
	s := NewService()
	ctx := context.Background()

	tests := []struct{ n, want uint64 }{
		{1, 1},
		{2, 1},
		{9, 6},
		{12, 4},
		{97, 96},
		{360, 96},
		{1024, 512},
	}
	for _, tt := range tests {
		got, err := s.Totient(ctx, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "phi(%d)", tt.n)
	}

	_, err := s.Totient(ctx, 0)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestGCDCoprime(t *testing.T) {
	assert.Equal(t, uint64(6), GCD(54, 24))
	assert.Equal(t, uint64(7), GCD(7, 0))
	assert.Equal(t, uint64(0), GCD(0, 0))
	assert.True(t, Coprime(8, 15))
	assert.False(t, Coprime(12, 18))
	assert.True(t, Coprime(1, 1))
}
