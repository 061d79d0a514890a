// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

import (
	"errors"
	"testing"
)

func TestCandidateAt(t *testing.T) {
	tests := []struct {
		pos       int
		magnitude uint64
		want      uint64
	}{
		{0, 0, 2},
		{1, 0, 3},
		{2, 0, 5},
		{3, 0, 5},
		{3, 1, 17},
		{3, 2, 29},
		{3, 5, 65}, // composite 5·13; the progression still yields it
		{6, 0, 7},
		{6, 1, 19},
		{9, 0, 11},
		{9, 1, 23},
		{9, 3, 47},
	}
	for _, tt := range tests {
		got, err := CandidateAt(tt.pos, tt.magnitude)
		if err != nil {
			t.Fatalf("CandidateAt(%d, %d): %v", tt.pos, tt.magnitude, err)
		}
		if got != tt.want {
			t.Errorf("CandidateAt(%d, %d) = %d, want %d", tt.pos, tt.magnitude, got, tt.want)
		}
	}
}

func TestCandidateAtErrors(t *testing.T) {
	// Single-shot positions reject nonzero magnitudes.
	if _, err := CandidateAt(0, 1); !errors.Is(err, ErrDomain) {
		t.Errorf("CandidateAt(0, 1): want ErrDomain, got %v", err)
	}
	// Positions without a candidate class.
	for _, pos := range []int{4, 5, 7, 8, 10, 11} {
		if _, err := CandidateAt(pos, 0); !errors.Is(err, ErrDomain) {
			t.Errorf("CandidateAt(%d, 0): want ErrDomain, got %v", pos, err)
		}
	}
	if _, err := CandidateAt(12, 0); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("CandidateAt(12, 0): want ErrInvalidPosition, got %v", err)
	}
}

func TestReverseLookup(t *testing.T) {
	tests := []struct {
		n         uint64
		pos       int
		magnitude uint64
	}{
		{2, 0, 0},
		{3, 1, 0},
		{5, 3, 0},
		{17, 3, 1},
		{29, 3, 2},
		{7, 6, 0},
		{19, 6, 1},
		{11, 9, 0},
		{23, 9, 1},
		{65, 3, 5}, // composite, still on the lattice
	}
	for _, tt := range tests {
		ring, pos, mag, err := ReverseLookup(tt.n)
		if err != nil {
			t.Fatalf("ReverseLookup(%d): %v", tt.n, err)
		}
		if ring != 0 || pos != tt.pos || mag != tt.magnitude {
			t.Errorf("ReverseLookup(%d) = (%d, %d, %d), want (0, %d, %d)",
				tt.n, ring, pos, mag, tt.pos, tt.magnitude)
		}
	}
}

func TestReverseLookupRejectsOffLattice(t *testing.T) {
	// Residues divisible by 2 or 3 carry no candidates beyond the
	// bases themselves: even numbers, multiples of 3, 12k+1 squares
	// of lattice candidates like 25.
	for _, n := range []uint64{0, 1, 4, 6, 8, 9, 10, 12, 14, 15, 16, 21, 25} {
		if _, _, _, err := ReverseLookup(n); !errors.Is(err, ErrDomain) {
			t.Errorf("ReverseLookup(%d): want ErrDomain, got %v", n, err)
		}
	}
}

func TestCandidateReverseRoundTrip(t *testing.T) {
	for _, pos := range []int{3, 6, 9} {
		for mag := uint64(0); mag < 50; mag++ {
			c, err := CandidateAt(pos, mag)
			if err != nil {
				t.Fatalf("CandidateAt(%d, %d): %v", pos, mag, err)
			}
			_, gotPos, gotMag, err := ReverseLookup(c)
			if err != nil {
				t.Fatalf("ReverseLookup(%d): %v", c, err)
			}
			if gotPos != pos || gotMag != mag {
				t.Errorf("round trip (%d, %d) -> %d -> (%d, %d)", pos, mag, c, gotPos, gotMag)
			}
		}
	}
}
